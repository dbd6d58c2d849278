package resolverimpl

import (
	"context"
	"time"

	"github.com/nishanrajkantan/insta-saver/internal/domain"
	"github.com/nishanrajkantan/insta-saver/internal/resolver"
	"github.com/nishanrajkantan/insta-saver/pkg/errors"
)

type postOutcome struct {
	post *domain.Post
	err  error
}

// ResolveDownloadTarget always re-resolves full post detail before a
// download, even when list data is already at hand: the list endpoint's
// carousel flag is unreliable and only detail data is trusted. The
// re-resolution races a timer; when the timer wins, the in-flight fetch is
// abandoned (its late result is discarded, never applied) and the known
// thumbnail is used instead of blocking the download indefinitely.
func (r *ResolverImpl) ResolveDownloadTarget(ctx context.Context, shortcode, fallbackThumbnail string) (*resolver.DownloadTarget, error) {
	outcome := make(chan postOutcome, 1)
	go func() {
		post, err := r.Fetcher.FetchPost(ctx, shortcode)
		outcome <- postOutcome{post: post, err: err}
	}()

	timer := time.NewTimer(r.detailTimeout)
	defer timer.Stop()

	select {
	case out := <-outcome:
		if out.err == nil && out.post.URL != "" {
			return &resolver.DownloadTarget{
				URL:  out.post.URL,
				Type: downloadType(out.post),
			}, nil
		}
		r.Logger.Warn("Post detail re-resolution failed", "shortcode", shortcode, "error", out.err)
	case <-timer.C:
		r.Logger.Warn("Post detail re-resolution timed out", "shortcode", shortcode, "timeout", r.detailTimeout.String())
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if fallbackThumbnail != "" {
		r.Logger.Info("Falling back to list thumbnail for download", "shortcode", shortcode)
		return &resolver.DownloadTarget{
			URL:  fallbackThumbnail,
			Type: domain.MediaTypeImage,
		}, nil
	}

	return nil, errors.Wrap(errors.ErrNotFound, "media URL not found")
}

// downloadType flattens the post type for filename purposes: anything that is
// not a video downloads as an image.
func downloadType(post *domain.Post) domain.MediaType {
	if post.Type == domain.MediaTypeVideo {
		return domain.MediaTypeVideo
	}
	return domain.MediaTypeImage
}
