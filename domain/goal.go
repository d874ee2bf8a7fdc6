package domain

import (
	"encoding/json"
	"time"
)

// Goal is a longer-term objective, optionally pinned to a month of a year.
// A month is only meaningful together with a year.
type Goal struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Month      *int       `json:"month"`
	Year       *int       `json:"year"`
	AchievedAt *time.Time `json:"achieved_at"`
	CreatedAt  time.Time  `json:"created_at"`

	// ProjectIDs lists the identities of the goal's projects.
	ProjectIDs []int64 `json:"projects"`
}

func (g *Goal) IsAchieved() bool {
	return g != nil && g.AchievedAt != nil
}

func (g Goal) MarshalJSON() ([]byte, error) {
	if g.ProjectIDs == nil {
		g.ProjectIDs = []int64{}
	}
	type alias Goal
	return json.Marshal(struct {
		alias
		IsAchieved bool `json:"is_achieved"`
	}{alias(g), g.AchievedAt != nil})
}
