package domain

// Tag is a free-form label. Tags carry no relationships.
type Tag struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Color *string `json:"color"`
}
