package resolverimpl

import (
	"context"

	"github.com/nishanrajkantan/insta-saver/internal/classifier"
	"github.com/nishanrajkantan/insta-saver/internal/domain"
	"github.com/nishanrajkantan/insta-saver/internal/resolver"
	"github.com/nishanrajkantan/insta-saver/pkg/errors"
	"golang.org/x/sync/errgroup"
)

func (r *ResolverImpl) Resolve(ctx context.Context, input, cursor string) (*resolver.Result, error) {
	cls := classifier.Classify(input)

	switch cls.Kind {
	case classifier.KindStory:
		return r.resolveStory(ctx, cls.StoryID)
	case classifier.KindProfile:
		if cursor != "" {
			return r.resolveProfilePosts(ctx, cls.Username, cursor)
		}
		return r.resolveProfile(ctx, cls.Username)
	case classifier.KindPost:
		return r.resolvePost(ctx, cls.Shortcode)
	default:
		return nil, errors.Wrap(errors.ErrBadInput, "could not recognize the URL; expected a profile, post, reel, or story link")
	}
}

func (r *ResolverImpl) resolveStory(ctx context.Context, storyID string) (*resolver.Result, error) {
	story, err := r.Fetcher.FetchStory(ctx, storyID)
	if err != nil {
		r.Logger.Warn("Story resolve failed", "story_id", storyID, "error", err)
		return nil, errors.Wrap(errors.ErrUnprocessable, "could not fetch story; it might be expired or private")
	}

	return &resolver.Result{
		Type: resolver.TypeStory,
		Data: []domain.Post{*story},
	}, nil
}

// resolvePost tries the API post detail first and falls back to the public
// post page's OG tags when the API fails. The OG payload carries less detail
// (no carousel expansion) but works even when every JSON surface is blocked.
func (r *ResolverImpl) resolvePost(ctx context.Context, shortcode string) (*resolver.Result, error) {
	post, err := r.Fetcher.FetchPost(ctx, shortcode)
	if err != nil {
		r.Logger.Warn("Post detail fetch failed, trying public page", "shortcode", shortcode, "error", err)
		post, err = r.Web.FetchPost(ctx, shortcode)
	}
	if err != nil {
		r.Logger.Warn("Post resolve failed", "shortcode", shortcode, "error", err)
		return nil, errors.Wrap(errors.ErrUnprocessable, "could not fetch post; it might be private or deleted")
	}

	return &resolver.Result{
		Type: resolver.TypePost,
		Data: []domain.Post{*post},
	}, nil
}

// resolveProfilePosts serves a pagination continuation: only the next page of
// posts is fetched; profile metadata, stories, and highlights are not touched
// again.
func (r *ResolverImpl) resolveProfilePosts(ctx context.Context, username, cursor string) (*resolver.Result, error) {
	page, err := r.Fetcher.FetchUserPosts(ctx, username, cursor)
	if err != nil {
		r.Logger.Warn("Posts page fetch failed", "username", username, "error", err)
		page = domain.PostsPage{}
	}

	return &resolver.Result{
		Type: resolver.TypeProfilePosts,
		Data: page,
	}, nil
}

// resolveProfile handles an initial profile load. Base profile info is
// required and fetched first; posts, stories, and highlights then fan out
// concurrently, and each of the three may fail on its own: a failed section
// becomes an empty list without blocking the other two.
func (r *ResolverImpl) resolveProfile(ctx context.Context, username string) (*resolver.Result, error) {
	info, err := r.Fetcher.FetchUserInfo(ctx, username)
	if err != nil {
		r.Logger.Warn("Profile info fetch failed", "username", username, "error", err)
		return nil, errors.Wrap(errors.ErrUnprocessable, "could not fetch profile; the account might be private or the API limit may have been reached")
	}

	var (
		page       domain.PostsPage
		stories    []domain.Post
		highlights []domain.Post
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := r.Fetcher.FetchUserPosts(gctx, username, "")
		if err != nil {
			r.Logger.Warn("Posts section failed", "username", username, "error", err)
			return nil
		}
		page = result
		return nil
	})
	g.Go(func() error {
		result, err := r.Fetcher.FetchUserStories(gctx, info.UserID)
		if err != nil {
			r.Logger.Warn("Stories section failed", "username", username, "error", err)
			return nil
		}
		stories = result
		return nil
	})
	g.Go(func() error {
		result, err := r.Fetcher.FetchUserHighlights(gctx, username)
		if err != nil {
			r.Logger.Warn("Highlights section failed", "username", username, "error", err)
			return nil
		}
		highlights = result
		return nil
	})
	_ = g.Wait()

	return &resolver.Result{
		Type: resolver.TypeProfile,
		Data: resolver.ProfileData{
			Username:   info.Username,
			FullName:   info.FullName,
			ProfilePic: info.ProfilePic,
			UserID:     info.UserID,
			Stories:    emptyIfNil(stories),
			Highlights: emptyIfNil(highlights),
			Posts:      emptyIfNil(page.Posts),
			NextCursor: page.NextCursor,
		},
	}, nil
}

func emptyIfNil(posts []domain.Post) []domain.Post {
	if posts == nil {
		return []domain.Post{}
	}
	return posts
}
