package normalizer

import (
	"fmt"

	"github.com/nishanrajkantan/insta-saver/internal/domain"
	"github.com/tidwall/gjson"
)

// FromTimelineEdge normalizes one edge of a GraphQL profile timeline
// (edge_owner_to_timeline_media). Sidecar posts are flagged as carousels but
// not expanded; only the post-detail endpoint is trusted for expansion.
func FromTimelineEdge(edge gjson.Result) *domain.Post {
	node := edge.Get("node")
	if !node.Exists() {
		return nil
	}

	shortcode := node.Get("shortcode").String()

	mediaType := domain.MediaTypeImage
	switch {
	case node.Get("is_video").Bool():
		mediaType = domain.MediaTypeVideo
	case node.Get("__typename").String() == "GraphSidecar":
		mediaType = domain.MediaTypeCarousel
	}

	return &domain.Post{
		ID:   node.Get("id").String(),
		Type: mediaType,
		Thumbnail: firstNonEmpty(
			node.Get("display_url").String(),
			node.Get("thumbnail_src").String(),
		),
		URL:       fmt.Sprintf("https://www.instagram.com/p/%s/", shortcode),
		Title:     node.Get("edge_media_to_caption.edges.0.node.text").String(),
		Shortcode: shortcode,
	}
}

// FromReelItem normalizes one item of the reels_media stories feed.
func FromReelItem(item gjson.Result) *domain.Story {
	if !item.Exists() || !item.IsObject() {
		return nil
	}

	mediaType := domain.MediaTypeImage
	if item.Get("media_type").Int() == mediaTypeCodeVideo {
		mediaType = domain.MediaTypeVideo
	}

	return &domain.Story{
		ID:        item.Get("id").String(),
		Type:      mediaType,
		Thumbnail: item.Get("image_versions2.candidates.0.url").String(),
		URL: firstNonEmpty(
			item.Get("video_versions.0.url").String(),
			item.Get("image_versions2.candidates.0.url").String(),
		),
		ExpiresAt: item.Get("expiring_at_timestamp").Int(),
	}
}
