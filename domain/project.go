package domain

import (
	"encoding/json"
	"time"
)

// Project groups tasks, optionally in pursuit of a goal.
type Project struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Color       *string    `json:"color"`
	Space       Space      `json:"space"`
	GoalID      *int64     `json:"goal_id"`
	ArchivedAt  *time.Time `json:"archived_at"`
	CreatedAt   time.Time  `json:"created_at"`

	// TaskIDs lists the identities of the project's tasks.
	TaskIDs []int64 `json:"tasks"`
}

func (p *Project) IsArchived() bool {
	return p != nil && p.ArchivedAt != nil
}

func (p Project) MarshalJSON() ([]byte, error) {
	if p.TaskIDs == nil {
		p.TaskIDs = []int64{}
	}
	type alias Project
	return json.Marshal(struct {
		alias
		IsArchived bool `json:"is_archived"`
	}{alias(p), p.ArchivedAt != nil})
}
