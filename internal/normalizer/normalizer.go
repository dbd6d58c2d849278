// Package normalizer maps the upstream's shape-varying raw JSON into the
// canonical domain records. The upstream never sends a type tag, so each
// function probes for the distinguishing fields of the shape it understands
// and degrades to empty values instead of failing when fields are absent.
package normalizer

import (
	"github.com/nishanrajkantan/insta-saver/internal/domain"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

// Numeric media-type sentinels used by the private-API shapes.
const (
	mediaTypeCodeVideo    = 2
	mediaTypeCodeCarousel = 8
)

// FromFeedItem normalizes one item of the paginated user-posts endpoint.
// Carousel detection ORs three independent signals because the upstream is
// inconsistent about which of them it populates: any one of them true is
// enough to call the item a carousel.
func FromFeedItem(item gjson.Result) *domain.Post {
	if !item.Exists() || !item.IsObject() {
		return nil
	}

	slides := item.Get("carousel_media").Array()

	thumbnail := firstNonEmpty(
		item.Get("image.0.url").String(),
		item.Get("thumbnail_url").String(),
		item.Get("image_versions2.candidates.0.url").String(),
		item.Get("carousel_media.0.image_versions2.candidates.0.url").String(),
	)

	post := &domain.Post{
		ID:        firstNonEmpty(item.Get("id").String(), item.Get("pk").String()),
		Thumbnail: thumbnail,
		Title:     captionText(item),
		Shortcode: item.Get("code").String(),
	}

	mediaTypeCode := item.Get("media_type").Int()
	isCarousel := mediaTypeCode == mediaTypeCodeCarousel ||
		item.Get("carousel_media_count").Int() > 0 ||
		len(slides) > 0

	switch {
	case isCarousel:
		post.Type = domain.MediaTypeCarousel
		post.Media = lo.Map(slides, func(m gjson.Result, _ int) domain.Media {
			return slideFromPrivateItem(m, false)
		})
	case mediaTypeCode == mediaTypeCodeVideo:
		post.Type = domain.MediaTypeVideo
	default:
		post.Type = domain.MediaTypeImage
	}

	return post
}

// FromPostDetail normalizes the single-post endpoint payload. The same
// logical endpoint serves two incompatible carousel encodings: GraphQL
// "sidecar edges" and the private-API "carousel_media" list; whichever is
// present wins. Slide URLs are rewritten through the media proxy because the
// raw hosts reject hotlinked requests.
func FromPostDetail(item gjson.Result, shortcode string) *domain.Post {
	if !item.Exists() || !item.IsObject() {
		return nil
	}

	primaryURL := firstNonEmpty(
		item.Get("video_versions.0.url").String(),
		item.Get("image_versions2.candidates.0.url").String(),
		item.Get("display_url").String(),
	)

	var media []domain.Media
	if edges := item.Get("edge_sidecar_to_children.edges").Array(); len(edges) > 0 {
		media = lo.Map(edges, func(edge gjson.Result, _ int) domain.Media {
			node := edge.Get("node")
			rawURL := firstNonEmpty(
				node.Get("video_url").String(),
				node.Get("display_url").String(),
			)
			slideType := domain.MediaTypeImage
			if node.Get("is_video").Bool() {
				slideType = domain.MediaTypeVideo
			}
			return domain.Media{
				Type:      slideType,
				URL:       ProxyURL(rawURL),
				Thumbnail: ProxyURL(node.Get("display_url").String()),
			}
		})
	} else if slides := item.Get("carousel_media").Array(); len(slides) > 0 {
		media = lo.Map(slides, func(m gjson.Result, _ int) domain.Media {
			return slideFromPrivateItem(m, true)
		})
	}

	post := &domain.Post{
		ID: firstNonEmpty(item.Get("id").String(), item.Get("pk").String(), shortcode),
		Thumbnail: firstNonEmpty(
			item.Get("image_versions2.candidates.0.url").String(),
			item.Get("display_url").String(),
		),
		URL: primaryURL,
		Title: firstNonEmpty(
			captionText(item),
			item.Get("edge_media_to_caption.edges.0.node.text").String(),
		),
		Shortcode: firstNonEmpty(
			item.Get("code").String(),
			item.Get("shortcode").String(),
			shortcode,
		),
		Media: media,
	}

	switch {
	case len(media) > 0:
		post.Type = domain.MediaTypeCarousel
	case item.Get("is_video").Bool(), item.Get("media_type").Int() == mediaTypeCodeVideo:
		post.Type = domain.MediaTypeVideo
	default:
		post.Type = domain.MediaTypeImage
	}

	return post
}

// FromStoryDetail normalizes a story fetched through the post-detail
// endpoint; stories and posts share a media representation upstream.
func FromStoryDetail(item gjson.Result, storyID string) *domain.Post {
	if !item.Exists() || !item.IsObject() {
		return nil
	}

	mediaType := domain.MediaTypeImage
	if item.Get("media_type").Int() == mediaTypeCodeVideo {
		mediaType = domain.MediaTypeVideo
	}

	return &domain.Post{
		ID:        firstNonEmpty(item.Get("id").String(), item.Get("pk").String(), storyID),
		Type:      mediaType,
		Thumbnail: item.Get("image_versions2.candidates.0.url").String(),
		URL: firstNonEmpty(
			item.Get("video_versions.0.url").String(),
			item.Get("image_versions2.candidates.0.url").String(),
		),
		Title:     "Instagram Story",
		Shortcode: firstNonEmpty(item.Get("code").String(), storyID),
	}
}

// FromHighlight normalizes one highlight reel into its cover representation.
// No media expansion happens here; expanding a highlight is a separate
// best-effort probe. The cover thumbnail is proxied.
func FromHighlight(item gjson.Result) *domain.Post {
	if !item.Exists() || !item.IsObject() {
		return nil
	}

	rawThumbnail := firstNonEmpty(
		item.Get("cover_media.cropped_image_version.url").String(),
		item.Get("cover_media.image_versions2.candidates.0.url").String(),
		item.Get("cover_media.url").String(),
		item.Get("thumbnail_src").String(),
		item.Get("url").String(),
	)

	id := firstNonEmpty(item.Get("id").String(), item.Get("pk").String())

	return &domain.Post{
		ID:        id,
		Type:      domain.MediaTypeHighlight,
		Thumbnail: ProxyURL(rawThumbnail),
		Title:     firstNonEmpty(item.Get("title").String(), "Highlight"),
		Shortcode: id,
	}
}

// FromHighlightStory normalizes one story item inside an expanded highlight
// reel. Both URLs are proxied.
func FromHighlightStory(item gjson.Result) *domain.Post {
	if !item.Exists() || !item.IsObject() {
		return nil
	}

	mediaURL := firstNonEmpty(
		item.Get("video_versions.0.url").String(),
		item.Get("image_versions2.candidates.0.url").String(),
		item.Get("display_url").String(),
	)
	thumbnail := firstNonEmpty(
		item.Get("image_versions2.candidates.0.url").String(),
		item.Get("display_url").String(),
	)

	mediaType := domain.MediaTypeImage
	if item.Get("is_video").Bool() || item.Get("media_type").Int() == mediaTypeCodeVideo {
		mediaType = domain.MediaTypeVideo
	}

	return &domain.Post{
		ID:        firstNonEmpty(item.Get("id").String(), item.Get("pk").String()),
		Type:      mediaType,
		Thumbnail: ProxyURL(thumbnail),
		URL:       ProxyURL(mediaURL),
		Title:     "Highlight Story",
		Shortcode: firstNonEmpty(item.Get("code").String(), item.Get("id").String()),
	}
}

// slideFromPrivateItem maps one carousel_media entry. Detail-level slides are
// proxied; list-level slides keep the raw URLs the client previews with.
func slideFromPrivateItem(m gjson.Result, proxied bool) domain.Media {
	slideType := domain.MediaTypeImage
	if m.Get("media_type").Int() == mediaTypeCodeVideo {
		slideType = domain.MediaTypeVideo
	}

	rawURL := firstNonEmpty(
		m.Get("video_versions.0.url").String(),
		m.Get("image_versions2.candidates.0.url").String(),
	)
	rawThumbnail := m.Get("image_versions2.candidates.0.url").String()

	if proxied {
		return domain.Media{
			Type:      slideType,
			URL:       ProxyURL(rawURL),
			Thumbnail: ProxyURL(rawThumbnail),
		}
	}
	return domain.Media{
		Type:      slideType,
		URL:       rawURL,
		Thumbnail: rawThumbnail,
	}
}

// captionText handles both caption encodings: an object with a text field and
// a plain string.
func captionText(item gjson.Result) string {
	caption := item.Get("caption")
	if caption.Type == gjson.String {
		return caption.String()
	}
	return caption.Get("text").String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
