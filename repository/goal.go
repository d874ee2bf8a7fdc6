package repository

import (
	"context"
	"time"

	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/pkg/optional"
)

// GoalFilter narrows goal listings. Month is only honored together with Year;
// the pairing rule is enforced upstream.
type GoalFilter struct {
	Achieved *bool
	Year     *int
	Month    *int
	Search   string
}

// GoalPatch is a partial update for a goal row.
type GoalPatch struct {
	Title      optional.Field[string]
	Month      optional.Field[int]
	Year       optional.Field[int]
	AchievedAt optional.Field[time.Time]
}

func (p GoalPatch) IsEmpty() bool {
	return !p.Title.IsSet() && !p.Month.IsSet() && !p.Year.IsSet() &&
		!p.AchievedAt.IsSet()
}

type GoalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Goal, error)
	List(ctx context.Context, filter GoalFilter) ([]domain.Goal, error)
	Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
	Update(ctx context.Context, id int64, patch GoalPatch) (*domain.Goal, error)
	// Delete removes the goal, its projects and those projects' tasks in a
	// single transaction.
	Delete(ctx context.Context, id int64) error
}
