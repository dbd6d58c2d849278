package fetcherimpl

import (
	"context"
	"fmt"
	"net/url"

	"github.com/nishanrajkantan/insta-saver/internal/domain"
	"github.com/nishanrajkantan/insta-saver/internal/normalizer"
	"github.com/nishanrajkantan/insta-saver/pkg/errors"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

func (r *RapidAPI) FetchUserInfo(ctx context.Context, username string) (*domain.BasicProfile, error) {
	r.logger.Info("Fetching user info", "username", username)

	query := url.Values{}
	query.Set("id_or_username", username)

	json, err := r.getJSON(ctx, r.endpoint("/api/v1/info", query))
	if err != nil {
		return nil, err
	}

	data := json.Get("data")
	if !data.Exists() {
		return nil, fmt.Errorf("info payload missing data: %w", errors.ErrNotFound)
	}
	// Some envelope variants nest the record one level deeper.
	if user := data.Get("user"); user.Exists() {
		data = user
	}

	name := data.Get("username").String()
	return &domain.BasicProfile{
		Username:   name,
		FullName:   firstNonEmpty(data.Get("full_name").String(), name),
		ProfilePic: data.Get("profile_pic_url").String(),
		UserID:     firstNonEmpty(data.Get("pk").String(), data.Get("id").String()),
	}, nil
}

// FetchUserPosts never propagates an upstream failure: a non-2xx status, a
// parse error, or a network error all degrade to an empty page so one bad
// section cannot sink a whole profile response.
func (r *RapidAPI) FetchUserPosts(ctx context.Context, username, cursor string) (domain.PostsPage, error) {
	query := url.Values{}
	query.Set("username", username)
	query.Set("limit", fmt.Sprintf("%d", postsPageSize))
	query.Set("include_captions", "true")
	if cursor != "" {
		query.Set("cursor", cursor)
	}

	postsURL := r.endpoint("/api/v1/posts", query)
	r.logger.Info("Fetching user posts", "username", username, "cursor", cursor)

	json, err := r.getJSON(ctx, postsURL)
	if err != nil {
		r.logger.Warn("Posts fetch failed, returning empty page", "username", username, "error", err)
		return domain.PostsPage{}, nil
	}

	items := json.Get("data.posts").Array()
	posts := make([]domain.Post, 0, len(items))
	for _, item := range items {
		if post := normalizer.FromFeedItem(item); post != nil {
			posts = append(posts, *post)
		}
	}

	return domain.PostsPage{
		Posts:      posts,
		NextCursor: json.Get("data.next_cursor").String(),
	}, nil
}

func (r *RapidAPI) FetchUserHighlights(ctx context.Context, username string) ([]domain.Post, error) {
	r.logger.Info("Fetching user highlights", "username", username)

	query := url.Values{}
	query.Set("id_or_username", username)

	json, err := r.getJSON(ctx, r.endpoint("/api/v1/highlights", query))
	if err != nil {
		r.logger.Warn("Highlights fetch failed, returning empty list", "username", username, "error", err)
		return nil, nil
	}

	items := json.Get("data.items").Array()
	if len(items) == 0 {
		items = json.Get("data.highlights").Array()
	}

	highlights := lo.FilterMap(items, func(item gjson.Result, _ int) (domain.Post, bool) {
		post := normalizer.FromHighlight(item)
		if post == nil {
			return domain.Post{}, false
		}
		return *post, true
	})
	return highlights, nil
}

// FetchUserStories is the deliberate toggle point for story fetching. With
// the flag off (the default) it is a no-op: story fetching burns upstream
// quota fast and most profiles have none.
func (r *RapidAPI) FetchUserStories(ctx context.Context, userID string) ([]domain.Post, error) {
	if !r.storiesOn {
		r.logger.Info("User stories fetching disabled by config")
		return nil, nil
	}

	query := url.Values{}
	query.Set("id_or_username", userID)

	json, err := r.getJSON(ctx, r.endpoint("/api/v1/stories", query))
	if err != nil {
		r.logger.Warn("Stories fetch failed, returning empty list", "user_id", userID, "error", err)
		return nil, nil
	}

	items := json.Get("data.items").Array()
	if len(items) == 0 {
		items = json.Get("data.stories").Array()
	}

	stories := lo.FilterMap(items, func(item gjson.Result, _ int) (domain.Post, bool) {
		post := normalizer.FromHighlightStory(item)
		if post == nil {
			return domain.Post{}, false
		}
		return *post, true
	})
	return stories, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
