package project

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/repository"
	"github.com/taskdesk/backend/pkg/optional"
)

// UseCase implements project operations: listing with filters, CRUD with the
// goal referential check, archive/restore transitions and the cascading
// delete of child tasks.
type UseCase struct {
	projects repository.ProjectRepository
	goals    repository.GoalRepository
	logger   *zap.Logger
}

func New(projects repository.ProjectRepository, goals repository.GoalRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		projects: projects,
		goals:    goals,
		logger:   logger,
	}
}

func (uc *UseCase) List(ctx context.Context, filter repository.ProjectFilter) ([]domain.Project, error) {
	return uc.projects.List(ctx, filter)
}

func (uc *UseCase) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return uc.projects.GetByID(ctx, id)
}

func (uc *UseCase) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if err := uc.checkGoal(ctx, project.GoalID); err != nil {
		return nil, err
	}
	return uc.projects.Create(ctx, project)
}

func (uc *UseCase) Update(ctx context.Context, id int64, patch repository.ProjectPatch) (*domain.Project, error) {
	if goalID, ok := patch.GoalID.Get(); ok {
		if err := uc.checkGoal(ctx, &goalID); err != nil {
			return nil, err
		}
	}
	return uc.projects.Update(ctx, id, patch)
}

// Delete removes the project and, transactionally, its tasks.
func (uc *UseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.projects.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("project deleted with its tasks", zap.Int64("project_id", id))
	return nil
}

// Archive stamps the project as archived now.
func (uc *UseCase) Archive(ctx context.Context, id int64) (*domain.Project, error) {
	return uc.projects.Update(ctx, id, repository.ProjectPatch{
		ArchivedAt: optional.Of(time.Now().UTC()),
	})
}

// Restore clears the archive stamp.
func (uc *UseCase) Restore(ctx context.Context, id int64) (*domain.Project, error) {
	return uc.projects.Update(ctx, id, repository.ProjectPatch{
		ArchivedAt: optional.Null[time.Time](),
	})
}

func (uc *UseCase) checkGoal(ctx context.Context, goalID *int64) error {
	if goalID == nil {
		return nil
	}
	if _, err := uc.goals.GetByID(ctx, *goalID); err != nil {
		return err
	}
	return nil
}
