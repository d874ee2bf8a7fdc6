package goal

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/repository"
	"github.com/taskdesk/backend/pkg/optional"
)

// UseCase implements goal operations: listing with filters, CRUD,
// achieve/restore transitions and the transitive cascading delete.
type UseCase struct {
	goals  repository.GoalRepository
	logger *zap.Logger
}

func New(goals repository.GoalRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		goals:  goals,
		logger: logger,
	}
}

func (uc *UseCase) List(ctx context.Context, filter repository.GoalFilter) ([]domain.Goal, error) {
	return uc.goals.List(ctx, filter)
}

func (uc *UseCase) Get(ctx context.Context, id int64) (*domain.Goal, error) {
	return uc.goals.GetByID(ctx, id)
}

func (uc *UseCase) Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	return uc.goals.Create(ctx, goal)
}

func (uc *UseCase) Update(ctx context.Context, id int64, patch repository.GoalPatch) (*domain.Goal, error) {
	return uc.goals.Update(ctx, id, patch)
}

// Delete removes the goal and, transactionally, its projects and their tasks.
func (uc *UseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.goals.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("goal deleted with its projects", zap.Int64("goal_id", id))
	return nil
}

// Achieve stamps the goal as achieved now.
func (uc *UseCase) Achieve(ctx context.Context, id int64) (*domain.Goal, error) {
	return uc.goals.Update(ctx, id, repository.GoalPatch{
		AchievedAt: optional.Of(time.Now().UTC()),
	})
}

// Restore clears the achievement stamp.
func (uc *UseCase) Restore(ctx context.Context, id int64) (*domain.Goal, error) {
	return uc.goals.Update(ctx, id, repository.GoalPatch{
		AchievedAt: optional.Null[time.Time](),
	})
}
