package fetcherimpl

import (
	"context"
	"fmt"
	"net/url"

	"github.com/nishanrajkantan/insta-saver/internal/domain"
	"github.com/nishanrajkantan/insta-saver/internal/normalizer"
	"github.com/nishanrajkantan/insta-saver/pkg/errors"
)

func (r *RapidAPI) FetchPost(ctx context.Context, shortcode string) (*domain.Post, error) {
	r.logger.Info("Fetching post detail", "shortcode", shortcode)

	query := url.Values{}
	query.Set("code", shortcode)

	json, err := r.getJSON(ctx, r.endpoint("/api/v1/post-info", query))
	if err != nil {
		return nil, err
	}

	// Envelope varies: the post sits either under data.post or directly
	// under data.
	item := json.Get("data.post")
	if !item.Exists() {
		item = json.Get("data")
	}

	post := normalizer.FromPostDetail(item, shortcode)
	if post == nil {
		return nil, fmt.Errorf("post %s has no usable payload: %w", shortcode, errors.ErrNotFound)
	}
	return post, nil
}

func (r *RapidAPI) FetchStory(ctx context.Context, storyID string) (*domain.Post, error) {
	r.logger.Info("Fetching story detail", "story_id", storyID)

	// Same endpoint as posts; it accepts media ids as well as shortcodes.
	query := url.Values{}
	query.Set("code_or_id_or_url", storyID)

	json, err := r.getJSON(ctx, r.endpoint("/api/v1/post-info", query))
	if err != nil {
		return nil, err
	}

	story := normalizer.FromStoryDetail(json.Get("data"), storyID)
	if story == nil {
		return nil, fmt.Errorf("story %s has no usable payload: %w", storyID, errors.ErrNotFound)
	}
	return story, nil
}
