// Package fetcher defines the client for the RapidAPI Instagram scraping
// proxy. Implementations convert upstream failures into empty results: list
// operations return empty collections, single-entity operations return an
// error the orchestrator decides how to surface. Nothing at this layer is
// fatal.
package fetcher

import (
	"context"

	"github.com/nishanrajkantan/insta-saver/internal/domain"
)

//go:generate mockgen -source=fetcher.go -destination=mocks/mock_client.go -package=mocks

type Client interface {
	// FetchUserInfo resolves the base profile record. An error means the
	// profile is unavailable (missing, private, or rate-limited).
	FetchUserInfo(ctx context.Context, username string) (*domain.BasicProfile, error)

	// FetchUserPosts fetches one page of a user's feed. Upstream failures
	// degrade to an empty page, never an error: callers treat the result as
	// "zero posts", not as a hard failure.
	FetchUserPosts(ctx context.Context, username, cursor string) (domain.PostsPage, error)

	// FetchPost resolves full post detail by shortcode, with carousel slides
	// already expanded.
	FetchPost(ctx context.Context, shortcode string) (*domain.Post, error)

	// FetchStory resolves a story by id through the post-detail endpoint;
	// stories and posts share a media representation upstream.
	FetchStory(ctx context.Context, storyID string) (*domain.Post, error)

	// FetchUserHighlights lists a user's highlight covers. Empty on failure.
	FetchUserHighlights(ctx context.Context, username string) ([]domain.Post, error)

	// FetchHighlightStories expands one highlight reel, probing a fixed
	// sequence of candidate endpoint spellings. Empty when all fail.
	FetchHighlightStories(ctx context.Context, highlightID string) ([]domain.Post, error)

	// FetchUserStories lists a user's active stories. Gated by configuration
	// and disabled by default; when disabled it returns an empty list.
	FetchUserStories(ctx context.Context, userID string) ([]domain.Post, error)
}
