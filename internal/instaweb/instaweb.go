// Package instaweb talks to Instagram's own web surface: the legacy __a=1
// profile JSON, the session-gated reels_media stories feed, and the public
// post page whose OG tags serve as the last-resort post source.
package instaweb

import (
	"context"

	"github.com/nishanrajkantan/insta-saver/internal/domain"
)

//go:generate mockgen -source=instaweb.go -destination=mocks/mock_client.go -package=mocks

type Client interface {
	// FetchUserProfile loads a profile with its first timeline page. An error
	// means Instagram refused or redirected the request.
	FetchUserProfile(ctx context.Context, username string) (*domain.Profile, error)

	// FetchStories lists the user's active stories. Requires a configured
	// session cookie; without one it returns an empty list.
	FetchStories(ctx context.Context, userID string) ([]domain.Story, error)

	// FetchPost resolves a post from the public page's OG tags.
	FetchPost(ctx context.Context, shortcode string) (*domain.Post, error)

	// HasSession reports whether a session cookie is configured.
	HasSession() bool
}
