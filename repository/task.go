package repository

import (
	"context"
	"time"

	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/pkg/optional"
)

// TaskFilter narrows task listings. Nil pointers mean "no constraint".
type TaskFilter struct {
	Completed *bool
	Decisive  *bool
	Search    string
	Space     *domain.Space
	ProjectID *int64
	// Inbox selects tasks with no project; mutually exclusive with ProjectID.
	Inbox   bool
	DueFrom *domain.Date
	DueTo   *domain.Date
	Limit   int
	Offset  int
}

// TaskPatch is a partial update. Unset fields keep the persisted value;
// fields explicitly set to null clear the column.
type TaskPatch struct {
	Title       optional.Field[string]
	Description optional.Field[string]
	DueDate     optional.Field[domain.Date]
	DueTime     optional.Field[domain.TimeOfDay]
	Decisive    optional.Field[bool]
	Space       optional.Field[domain.Space]
	ProjectID   optional.Field[int64]
	CompletedAt optional.Field[time.Time]
}

// IsEmpty reports whether the patch touches no fields.
func (p TaskPatch) IsEmpty() bool {
	return !p.Title.IsSet() && !p.Description.IsSet() && !p.DueDate.IsSet() &&
		!p.DueTime.IsSet() && !p.Decisive.IsSet() && !p.Space.IsSet() &&
		!p.ProjectID.IsSet() && !p.CompletedAt.IsSet()
}

type TaskRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	// ListToday returns tasks created or completed on the current calendar
	// day in server-local time.
	ListToday(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// Update applies the patch and returns the updated row. An empty patch
	// behaves as GetByID, including the not-found case.
	Update(ctx context.Context, id int64, patch TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}
