package domain

// User is an author identity referenced by articles and comments.
// Users are seeded once and immutable at runtime.
type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
