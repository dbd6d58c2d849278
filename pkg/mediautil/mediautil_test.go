package mediautil

import (
	"testing"

	"github.com/nishanrajkantan/insta-saver/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestExtension(t *testing.T) {
	assert.Equal(t, "mp4", Extension(domain.MediaTypeVideo))
	assert.Equal(t, "jpg", Extension(domain.MediaTypeImage))
	assert.Equal(t, "jpg", Extension(domain.MediaTypeCarousel))
}

func TestSanitizeToken(t *testing.T) {
	assert.Equal(t, "ABC123", SanitizeToken("ABC123"))
	assert.Equal(t, "a-b_c", SanitizeToken("a-b_c"))
	assert.Equal(t, "abc", SanitizeToken(`a/b"c<>`))
	assert.Equal(t, "", SanitizeToken("../.."))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "instagram-ABC123.mp4", Filename("ABC123", domain.MediaTypeVideo))
	assert.Equal(t, "instagram-ABC123.jpg", Filename("ABC123", domain.MediaTypeImage))

	// An empty shortcode falls back to a timestamp token.
	generated := Filename("", domain.MediaTypeImage)
	assert.Regexp(t, `^instagram-\d+\.jpg$`, generated)
}

func TestContentTypeOrDefault(t *testing.T) {
	assert.Equal(t, "video/mp4", ContentTypeOrDefault("video/mp4", "image/jpeg"))
	assert.Equal(t, "image/jpeg", ContentTypeOrDefault("", "image/jpeg"))
}
