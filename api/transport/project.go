package transport

import (
	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/repository"
	"github.com/taskdesk/backend/pkg/optional"
)

// CreateProjectRequest is the POST /projects/ payload.
type CreateProjectRequest struct {
	Title       optional.Field[string]       `json:"title"`
	Description optional.Field[string]       `json:"description"`
	Color       optional.Field[string]       `json:"color"`
	Space       optional.Field[domain.Space] `json:"space"`
	GoalID      optional.Field[int64]        `json:"goal_id"`
}

func (r CreateProjectRequest) Validate() error {
	return firstError(
		fieldRequired("title", r.Title),
		checkString("title", r.Title, 1, 255),
		fieldRequired("description", r.Description),
		checkString("description", r.Description, 1, 255),
		checkColor("color", r.Color),
		fieldRequired("space", r.Space),
		checkSpace("space", r.Space),
		checkInt64("goal_id", r.GoalID),
	)
}

// Project materializes the validated payload.
func (r CreateProjectRequest) Project() *domain.Project {
	title, _ := r.Title.Get()
	description, _ := r.Description.Get()
	space, _ := r.Space.Get()
	return &domain.Project{
		Title:       title,
		Description: description,
		Color:       r.Color.Ptr(),
		Space:       space,
		GoalID:      r.GoalID.Ptr(),
	}
}

// UpdateProjectRequest is the PUT /projects/{id} payload.
type UpdateProjectRequest struct {
	Title       optional.Field[string]       `json:"title"`
	Description optional.Field[string]       `json:"description"`
	Color       optional.Field[string]       `json:"color"`
	Space       optional.Field[domain.Space] `json:"space"`
	GoalID      optional.Field[int64]        `json:"goal_id"`
}

func (r UpdateProjectRequest) Validate() error {
	return firstError(
		fieldNotNull("title", r.Title),
		checkString("title", r.Title, 1, 255),
		fieldNotNull("description", r.Description),
		checkString("description", r.Description, 1, 255),
		checkColor("color", r.Color),
		fieldNotNull("space", r.Space),
		checkSpace("space", r.Space),
		checkInt64("goal_id", r.GoalID),
	)
}

// Patch translates the payload into a persistence patch.
func (r UpdateProjectRequest) Patch() repository.ProjectPatch {
	return repository.ProjectPatch{
		Title:       r.Title,
		Description: r.Description,
		Color:       r.Color,
		Space:       r.Space,
		GoalID:      r.GoalID,
	}
}
