package domain

// Topic is a named category that articles belong to.
// Topics are seeded once and immutable at runtime.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImgURL      string `json:"img_url"`
}
