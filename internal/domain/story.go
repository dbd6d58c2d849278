package domain

// Story is an ephemeral story item. Stories are never persisted; they live
// only for the duration of the request that fetched them.
type Story struct {
	ID        string    `json:"id"`
	Type      MediaType `json:"type"`
	Thumbnail string    `json:"thumbnail"`
	URL       string    `json:"url"`
	ExpiresAt int64     `json:"expiresAt,omitempty"`
}
