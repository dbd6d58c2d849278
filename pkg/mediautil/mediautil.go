package mediautil

import (
	"fmt"
	"strings"
	"time"

	"github.com/nishanrajkantan/insta-saver/internal/domain"
)

// Extension returns the download file extension for a media type.
func Extension(t domain.MediaType) string {
	if t == domain.MediaTypeVideo {
		return "mp4"
	}
	return "jpg"
}

// SanitizeToken strips characters that are unsafe inside a filename token.
func SanitizeToken(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == '-' || r == '_':
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Filename synthesizes the attachment filename for a downloaded post.
// Example: Filename("ABC123", MediaTypeVideo) -> "instagram-ABC123.mp4"
func Filename(shortcode string, t domain.MediaType) string {
	token := SanitizeToken(shortcode)
	if token == "" {
		token = fmt.Sprintf("%d", time.Now().UnixMilli())
	}
	return fmt.Sprintf("instagram-%s.%s", token, Extension(t))
}

// ContentTypeOrDefault passes through the upstream content type, falling back
// when the upstream did not send one.
func ContentTypeOrDefault(ct, fallback string) string {
	if ct == "" {
		return fallback
	}
	return ct
}
