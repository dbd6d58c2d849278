package normalizer

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nishanrajkantan/insta-saver/internal/domain"
)

// FromOGTags extracts a post from the Open Graph meta tags of a raw post
// page. This is the least detailed but most robust fallback: it works even
// when every JSON surface is blocked, and it deliberately assumes nothing
// about any JSON shape. Returns nil when the page carries neither an og:image
// nor an og:video.
func FromOGTags(html, shortcode string) *domain.Post {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	meta := func(property string) string {
		content, _ := doc.Find(fmt.Sprintf(`meta[property=%q]`, property)).Attr("content")
		return content
	}

	image := meta("og:image")
	video := meta("og:video")
	if image == "" && video == "" {
		return nil
	}

	mediaType := domain.MediaTypeImage
	if video != "" {
		mediaType = domain.MediaTypeVideo
	}

	return &domain.Post{
		ID:          shortcode,
		Type:        mediaType,
		Thumbnail:   image,
		URL:         firstNonEmpty(video, image),
		Title:       meta("og:title"),
		Description: meta("og:description"),
		Shortcode:   shortcode,
	}
}
