// Package classifier routes an arbitrary Instagram URL (or bare username) to
// the fetch strategy that can resolve it. Pure string work, no I/O.
package classifier

import (
	"fmt"
	"net/url"
	"strings"
)

type Kind string

const (
	KindProfile Kind = "profile"
	KindPost    Kind = "post"
	KindStory   Kind = "story"
	KindUnknown Kind = "unknown"
)

// Classification is the outcome of classifying one input string. Only the
// identifying tokens relevant to Kind are set.
type Classification struct {
	Kind      Kind
	Username  string
	Shortcode string
	StoryID   string
}

const instagramDomain = "instagram.com"

// NormalizeInput turns a bare username (optionally @-prefixed) into a
// canonical profile URL; inputs already containing the Instagram domain are
// returned trimmed but otherwise untouched.
func NormalizeInput(input string) string {
	input = strings.TrimSpace(input)
	if strings.Contains(input, instagramDomain) {
		return input
	}
	username := strings.TrimPrefix(strings.Trim(input, "/"), "@")
	return fmt.Sprintf("https://www.instagram.com/%s/", username)
}

// Classify parses the input and determines what kind of content it points at.
// Story paths are checked before the single-segment profile heuristic because
// /stories/<user>/<id> has multiple segments and must not fall through.
func Classify(input string) Classification {
	normalized := NormalizeInput(input)

	u, err := url.Parse(normalized)
	if err != nil || u.Host == "" {
		return Classification{Kind: KindUnknown}
	}

	segments := pathSegments(u.Path)

	if len(segments) >= 3 && segments[0] == "stories" {
		return Classification{
			Kind:     KindStory,
			Username: segments[1],
			StoryID:  segments[2],
		}
	}

	if len(segments) >= 2 {
		switch segments[0] {
		case "p", "reel", "reels":
			return Classification{
				Kind:      KindPost,
				Shortcode: segments[1],
			}
		}
	}

	if len(segments) == 1 {
		return Classification{
			Kind:     KindProfile,
			Username: segments[0],
		}
	}

	return Classification{Kind: KindUnknown}
}

func pathSegments(path string) []string {
	var segments []string
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}
