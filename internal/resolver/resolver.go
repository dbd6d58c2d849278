// Package resolver orchestrates fetching for a classified input: which
// fetcher operations run, in what order, and which failures are fatal to the
// request versus degraded to an empty section.
package resolver

import (
	"context"

	"github.com/nishanrajkantan/insta-saver/internal/domain"
)

// Result types returned to the client.
const (
	TypeProfile      = "profile"
	TypeProfilePosts = "profile_posts"
	TypePost         = "post"
	TypeStory        = "story"
)

// Result is the payload of one successful resolve.
type Result struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// ProfileData is the initial profile-load payload: the base profile plus the
// three independently fetched sections.
type ProfileData struct {
	Username   string        `json:"username"`
	FullName   string        `json:"fullName"`
	ProfilePic string        `json:"profilePic"`
	UserID     string        `json:"userId"`
	Stories    []domain.Post `json:"stories"`
	Highlights []domain.Post `json:"highlights"`
	Posts      []domain.Post `json:"posts"`
	NextCursor string        `json:"nextCursor,omitempty"`
}

// DownloadTarget is a directly downloadable media URL.
type DownloadTarget struct {
	URL  string
	Type domain.MediaType
}

type Client interface {
	// Resolve classifies the input and runs the matching fetch branch.
	Resolve(ctx context.Context, input, cursor string) (*Result, error)

	// ResolveDownloadTarget re-resolves full post detail before a download,
	// bounded by a timeout; on failure it falls back to the caller's known
	// thumbnail so the download can still produce something.
	ResolveDownloadTarget(ctx context.Context, shortcode, fallbackThumbnail string) (*DownloadTarget, error)
}
