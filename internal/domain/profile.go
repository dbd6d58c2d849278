package domain

// BasicProfile is the minimal profile record the info endpoint yields.
type BasicProfile struct {
	Username   string `json:"username"`
	FullName   string `json:"fullName"`
	ProfilePic string `json:"profilePic"`
	UserID     string `json:"userId"`
}

// Profile is a user profile together with the first page of timeline posts.
type Profile struct {
	BasicProfile
	Posts      []Post `json:"posts"`
	NextCursor string `json:"nextCursor,omitempty"`
}
