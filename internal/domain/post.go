package domain

// MediaType classifies a post or a single attachment.
type MediaType string

const (
	MediaTypeImage     MediaType = "image"
	MediaTypeVideo     MediaType = "video"
	MediaTypeCarousel  MediaType = "carousel"
	MediaTypeHighlight MediaType = "highlight"
)

// Media is a single carousel slide or resolved attachment. It is owned by
// exactly one Post and is never shared between posts.
type Media struct {
	Type      MediaType `json:"type"`
	URL       string    `json:"url"`
	Thumbnail string    `json:"thumbnail,omitempty"`
}

// Post is the canonical record every upstream response shape is normalized
// into. Media is populated only for carousels, in upstream slide order.
type Post struct {
	ID          string    `json:"id"`
	Type        MediaType `json:"type"`
	Thumbnail   string    `json:"thumbnail"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Shortcode   string    `json:"shortcode,omitempty"`
	Media       []Media   `json:"media,omitempty"`
}

// IsCarousel reports whether the post carries expanded slides.
func (p *Post) IsCarousel() bool {
	return p.Type == MediaTypeCarousel && len(p.Media) > 0
}

// PostsPage is one page of a user's feed plus the opaque upstream cursor.
// An empty NextCursor means no more pages are known to exist.
type PostsPage struct {
	Posts      []Post `json:"posts"`
	NextCursor string `json:"nextCursor,omitempty"`
}
