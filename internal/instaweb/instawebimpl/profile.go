package instawebimpl

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nishanrajkantan/insta-saver/internal/domain"
	"github.com/nishanrajkantan/insta-saver/internal/normalizer"
	"github.com/nishanrajkantan/insta-saver/pkg/errors"
	"github.com/tidwall/gjson"
)

// Profile pages are capped at the first grid's worth of posts.
const timelinePageSize = 12

func (w *WebImpl) FetchUserProfile(ctx context.Context, username string) (*domain.Profile, error) {
	url := fmt.Sprintf("%s/%s/?__a=1&__d=dis", w.baseURL, username)
	w.logger.Info("Fetching web profile", "username", username)

	status, body, err := w.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("profile request: %w", err)
	}

	// A redirect means Instagram is blocking the request, not that the
	// profile moved.
	if status == http.StatusMovedPermanently || status == http.StatusFound {
		w.logger.Warn("Instagram redirected profile request", "username", username)
		return nil, fmt.Errorf("profile request blocked: %w", errors.ErrUpstream)
	}
	if status < 200 || status > 299 {
		w.logger.Warn("Profile request failed", "username", username, "status", status)
		return nil, fmt.Errorf("profile status %d: %w", status, errors.ErrNotFound)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("profile payload not JSON: %w", errors.ErrUpstream)
	}

	json := gjson.ParseBytes(body)

	// The user record moved between envelope versions; probe each spelling.
	user := json.Get("graphql.user")
	if !user.Exists() {
		user = json.Get("data.user")
	}
	if !user.Exists() {
		user = json.Get("user")
	}
	if !user.Exists() {
		return nil, fmt.Errorf("no user in profile payload: %w", errors.ErrNotFound)
	}

	edges := user.Get("edge_owner_to_timeline_media.edges").Array()
	if len(edges) > timelinePageSize {
		edges = edges[:timelinePageSize]
	}

	posts := make([]domain.Post, 0, len(edges))
	for _, edge := range edges {
		if post := normalizer.FromTimelineEdge(edge); post != nil {
			posts = append(posts, *post)
		}
	}

	return &domain.Profile{
		BasicProfile: domain.BasicProfile{
			Username: user.Get("username").String(),
			FullName: user.Get("full_name").String(),
			ProfilePic: firstNonEmpty(
				user.Get("profile_pic_url_hd").String(),
				user.Get("profile_pic_url").String(),
			),
			UserID: user.Get("id").String(),
		},
		Posts: posts,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
