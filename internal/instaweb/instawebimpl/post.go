package instawebimpl

import (
	"context"
	"fmt"

	"github.com/nishanrajkantan/insta-saver/internal/domain"
	"github.com/nishanrajkantan/insta-saver/internal/normalizer"
	"github.com/nishanrajkantan/insta-saver/pkg/errors"
)

// FetchPost resolves a post from the public page's OG tags. Least detail,
// fewest assumptions: this works when every JSON surface is blocked.
func (w *WebImpl) FetchPost(ctx context.Context, shortcode string) (*domain.Post, error) {
	url := fmt.Sprintf("%s/p/%s/", w.baseURL, shortcode)
	w.logger.Info("Fetching post page for OG tags", "shortcode", shortcode)

	status, body, err := w.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("post page request: %w", err)
	}
	if status < 200 || status > 299 {
		return nil, fmt.Errorf("post page status %d: %w", status, errors.ErrNotFound)
	}

	post := normalizer.FromOGTags(string(body), shortcode)
	if post == nil {
		return nil, fmt.Errorf("post page has no OG media tags: %w", errors.ErrNotFound)
	}
	return post, nil
}
