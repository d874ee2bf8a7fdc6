package repository

import (
	"context"
	"time"

	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/pkg/optional"
)

// ProjectFilter narrows project listings.
type ProjectFilter struct {
	Archived *bool
	Space    *domain.Space
	Search   string
}

// ProjectPatch is a partial update for a project row.
type ProjectPatch struct {
	Title       optional.Field[string]
	Description optional.Field[string]
	Color       optional.Field[string]
	Space       optional.Field[domain.Space]
	GoalID      optional.Field[int64]
	ArchivedAt  optional.Field[time.Time]
}

func (p ProjectPatch) IsEmpty() bool {
	return !p.Title.IsSet() && !p.Description.IsSet() && !p.Color.IsSet() &&
		!p.Space.IsSet() && !p.GoalID.IsSet() && !p.ArchivedAt.IsSet()
}

type ProjectRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]domain.Project, error)
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, id int64, patch ProjectPatch) (*domain.Project, error)
	// Delete removes the project and its tasks in a single transaction.
	Delete(ctx context.Context, id int64) error
}
