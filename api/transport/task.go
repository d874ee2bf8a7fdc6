package transport

import (
	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/repository"
	"github.com/taskdesk/backend/pkg/optional"
)

// CreateTaskRequest is the POST /tasks/ payload.
type CreateTaskRequest struct {
	Title       optional.Field[string]           `json:"title"`
	Description optional.Field[string]           `json:"description"`
	DueDate     optional.Field[domain.Date]      `json:"due_date"`
	DueTime     optional.Field[domain.TimeOfDay] `json:"due_time"`
	Decisive    optional.Field[bool]             `json:"decisive"`
	Space       optional.Field[domain.Space]     `json:"space"`
	ProjectID   optional.Field[int64]            `json:"project_id"`
}

func (r CreateTaskRequest) Validate() error {
	return firstError(
		fieldRequired("title", r.Title),
		checkString("title", r.Title, 1, 255),
		checkString("description", r.Description, 1, 255),
		checkDate("due_date", r.DueDate),
		checkTimeOfDay("due_time", r.DueTime),
		fieldNotNull("decisive", r.Decisive),
		checkBool("decisive", r.Decisive),
		fieldRequired("space", r.Space),
		checkSpace("space", r.Space),
		checkInt64("project_id", r.ProjectID),
	)
}

// Task materializes the validated payload, applying defaults.
func (r CreateTaskRequest) Task() *domain.Task {
	title, _ := r.Title.Get()
	space, _ := r.Space.Get()
	decisive, _ := r.Decisive.Get()
	return &domain.Task{
		Title:       title,
		Description: r.Description.Ptr(),
		DueDate:     r.DueDate.Ptr(),
		DueTime:     r.DueTime.Ptr(),
		Decisive:    decisive,
		Space:       space,
		ProjectID:   r.ProjectID.Ptr(),
	}
}

// UpdateTaskRequest is the PUT /tasks/{id} payload. Omitted fields keep the
// persisted value; explicit nulls are rejected for the semantically required
// fields.
type UpdateTaskRequest struct {
	Title       optional.Field[string]           `json:"title"`
	Description optional.Field[string]           `json:"description"`
	DueDate     optional.Field[domain.Date]      `json:"due_date"`
	DueTime     optional.Field[domain.TimeOfDay] `json:"due_time"`
	Decisive    optional.Field[bool]             `json:"decisive"`
	Space       optional.Field[domain.Space]     `json:"space"`
	ProjectID   optional.Field[int64]            `json:"project_id"`
}

func (r UpdateTaskRequest) Validate() error {
	return firstError(
		fieldNotNull("title", r.Title),
		checkString("title", r.Title, 1, 255),
		checkString("description", r.Description, 1, 255),
		checkDate("due_date", r.DueDate),
		checkTimeOfDay("due_time", r.DueTime),
		fieldNotNull("decisive", r.Decisive),
		checkBool("decisive", r.Decisive),
		fieldNotNull("space", r.Space),
		checkSpace("space", r.Space),
		checkInt64("project_id", r.ProjectID),
	)
}

// Patch translates the payload into a persistence patch.
func (r UpdateTaskRequest) Patch() repository.TaskPatch {
	return repository.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		DueTime:     r.DueTime,
		Decisive:    r.Decisive,
		Space:       r.Space,
		ProjectID:   r.ProjectID,
	}
}
