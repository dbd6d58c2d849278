package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare username",
			input: "nasa",
			want:  "https://www.instagram.com/nasa/",
		},
		{
			name:  "at-prefixed username",
			input: "@nasa",
			want:  "https://www.instagram.com/nasa/",
		},
		{
			name:  "username with whitespace",
			input: "  nasa  ",
			want:  "https://www.instagram.com/nasa/",
		},
		{
			name:  "full URL passes through",
			input: "https://www.instagram.com/nasa/",
			want:  "https://www.instagram.com/nasa/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeInput(tt.input))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Classification
	}{
		{
			name:  "profile URL with single segment",
			input: "https://www.instagram.com/nasa/",
			want:  Classification{Kind: KindProfile, Username: "nasa"},
		},
		{
			name:  "bare username classifies as profile",
			input: "nasa",
			want:  Classification{Kind: KindProfile, Username: "nasa"},
		},
		{
			name:  "post URL",
			input: "https://www.instagram.com/p/ABC123/",
			want:  Classification{Kind: KindPost, Shortcode: "ABC123"},
		},
		{
			name:  "reel URL",
			input: "https://www.instagram.com/reel/XYZ789/",
			want:  Classification{Kind: KindPost, Shortcode: "XYZ789"},
		},
		{
			name:  "reels URL variant",
			input: "https://www.instagram.com/reels/XYZ789/",
			want:  Classification{Kind: KindPost, Shortcode: "XYZ789"},
		},
		{
			name:  "story URL takes precedence over segment count",
			input: "https://www.instagram.com/stories/nasa/1234567890/",
			want:  Classification{Kind: KindStory, Username: "nasa", StoryID: "1234567890"},
		},
		{
			name:  "post URL without trailing slash",
			input: "https://www.instagram.com/p/ABC123",
			want:  Classification{Kind: KindPost, Shortcode: "ABC123"},
		},
		{
			name:  "two unrecognized segments",
			input: "https://www.instagram.com/nasa/followers/",
			want:  Classification{Kind: KindUnknown},
		},
		{
			name:  "unparsable URL",
			input: "https://instagram.com/%zz",
			want:  Classification{Kind: KindUnknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.input))
		})
	}
}
