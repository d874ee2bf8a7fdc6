package domain

import "time"

// Comment is a standalone note. Comments carry no relationships.
type Comment struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
