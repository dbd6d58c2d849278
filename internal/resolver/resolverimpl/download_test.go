package resolverimpl

import (
	"context"
	"testing"
	"time"

	"github.com/nishanrajkantan/insta-saver/internal/domain"
	"github.com/nishanrajkantan/insta-saver/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResolveDownloadTargetUsesDetail(t *testing.T) {
	r, mockFetcher, _ := newTestResolver(t)

	post := &domain.Post{Type: domain.MediaTypeVideo, URL: "https://cdn.example.com/v.mp4"}
	mockFetcher.EXPECT().FetchPost(gomock.Any(), "ABC123").Return(post, nil)

	target, err := r.ResolveDownloadTarget(context.Background(), "ABC123", "https://cdn.example.com/thumb.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/v.mp4", target.URL)
	assert.Equal(t, domain.MediaTypeVideo, target.Type)
}

func TestResolveDownloadTargetCarouselDownloadsAsImage(t *testing.T) {
	r, mockFetcher, _ := newTestResolver(t)

	post := &domain.Post{Type: domain.MediaTypeCarousel, URL: "https://cdn.example.com/first.jpg"}
	mockFetcher.EXPECT().FetchPost(gomock.Any(), "ABC123").Return(post, nil)

	target, err := r.ResolveDownloadTarget(context.Background(), "ABC123", "")
	require.NoError(t, err)
	assert.Equal(t, domain.MediaTypeImage, target.Type)
}

func TestResolveDownloadTargetFallsBackOnFailure(t *testing.T) {
	r, mockFetcher, _ := newTestResolver(t)

	mockFetcher.EXPECT().FetchPost(gomock.Any(), "ABC123").
		Return(nil, errors.Wrap(errors.ErrUpstream, "blocked"))

	target, err := r.ResolveDownloadTarget(context.Background(), "ABC123", "https://cdn.example.com/thumb.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/thumb.jpg", target.URL)
	assert.Equal(t, domain.MediaTypeImage, target.Type)
}

func TestResolveDownloadTargetTimeoutFallsBack(t *testing.T) {
	r, mockFetcher, _ := newTestResolver(t)
	r.detailTimeout = 20 * time.Millisecond

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	mockFetcher.EXPECT().FetchPost(gomock.Any(), "ABC123").
		DoAndReturn(func(context.Context, string) (*domain.Post, error) {
			// Outlive the timer; the late result must be discarded.
			<-release
			return &domain.Post{Type: domain.MediaTypeVideo, URL: "https://cdn.example.com/late.mp4"}, nil
		})

	start := time.Now()
	target, err := r.ResolveDownloadTarget(context.Background(), "ABC123", "https://cdn.example.com/thumb.jpg")
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, "https://cdn.example.com/thumb.jpg", target.URL, "late fetch result must not win over the timer")
}

func TestResolveDownloadTargetNoFallback(t *testing.T) {
	r, mockFetcher, _ := newTestResolver(t)

	mockFetcher.EXPECT().FetchPost(gomock.Any(), "ABC123").
		Return(nil, errors.Wrap(errors.ErrUpstream, "blocked"))

	target, err := r.ResolveDownloadTarget(context.Background(), "ABC123", "")
	assert.Nil(t, target)
	assert.True(t, errors.IsNotFound(err))
}

func TestResolveDownloadTargetEmptyDetailURLFallsBack(t *testing.T) {
	r, mockFetcher, _ := newTestResolver(t)

	mockFetcher.EXPECT().FetchPost(gomock.Any(), "ABC123").
		Return(&domain.Post{Type: domain.MediaTypeImage}, nil)

	target, err := r.ResolveDownloadTarget(context.Background(), "ABC123", "https://cdn.example.com/thumb.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/thumb.jpg", target.URL)
}
