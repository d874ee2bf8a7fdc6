package task

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/repository"
	"github.com/taskdesk/backend/pkg/optional"
)

// UseCase implements task operations: listing with filters, CRUD with the
// project referential check, and the complete/reopen transitions.
type UseCase struct {
	tasks    repository.TaskRepository
	projects repository.ProjectRepository
	logger   *zap.Logger
}

func New(tasks repository.TaskRepository, projects repository.ProjectRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:    tasks,
		projects: projects,
		logger:   logger,
	}
}

func (uc *UseCase) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	return uc.tasks.List(ctx, filter)
}

// Today returns tasks created or completed on the current calendar day.
func (uc *UseCase) Today(ctx context.Context) ([]domain.Task, error) {
	return uc.tasks.ListToday(ctx)
}

func (uc *UseCase) Get(ctx context.Context, id int64) (*domain.Task, error) {
	return uc.tasks.GetByID(ctx, id)
}

func (uc *UseCase) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if err := uc.checkProject(ctx, task.ProjectID); err != nil {
		return nil, err
	}
	return uc.tasks.Create(ctx, task)
}

func (uc *UseCase) Update(ctx context.Context, id int64, patch repository.TaskPatch) (*domain.Task, error) {
	if projectID, ok := patch.ProjectID.Get(); ok {
		if err := uc.checkProject(ctx, &projectID); err != nil {
			return nil, err
		}
	}
	return uc.tasks.Update(ctx, id, patch)
}

func (uc *UseCase) Delete(ctx context.Context, id int64) error {
	return uc.tasks.Delete(ctx, id)
}

// Complete stamps the task as completed now.
func (uc *UseCase) Complete(ctx context.Context, id int64) (*domain.Task, error) {
	return uc.tasks.Update(ctx, id, repository.TaskPatch{
		CompletedAt: optional.Of(time.Now().UTC()),
	})
}

// Reopen clears the completion stamp.
func (uc *UseCase) Reopen(ctx context.Context, id int64) (*domain.Task, error) {
	return uc.tasks.Update(ctx, id, repository.TaskPatch{
		CompletedAt: optional.Null[time.Time](),
	})
}

// checkProject verifies the referenced project exists before a task write.
// A nil reference is the inbox and always passes.
func (uc *UseCase) checkProject(ctx context.Context, projectID *int64) error {
	if projectID == nil {
		return nil
	}
	if _, err := uc.projects.GetByID(ctx, *projectID); err != nil {
		return err
	}
	return nil
}
