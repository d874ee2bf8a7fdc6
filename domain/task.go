package domain

import (
	"encoding/json"
	"time"
)

// Task represents a single actionable item, optionally attached to a project.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *Date      `json:"due_date"`
	DueTime     *TimeOfDay `json:"due_time"`
	Decisive    bool       `json:"decisive"`
	Space       Space      `json:"space"`
	ProjectID   *int64     `json:"project_id"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.CompletedAt != nil
}

func (t Task) MarshalJSON() ([]byte, error) {
	type alias Task
	return json.Marshal(struct {
		alias
		IsCompleted bool `json:"is_completed"`
	}{alias(t), t.CompletedAt != nil})
}
