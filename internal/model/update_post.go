package model

// UpdatePostDTO overwrites title and content. Ownership never changes.
type UpdatePostDTO struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
