package comment

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/repository"
)

// UseCase implements plain comment CRUD.
type UseCase struct {
	comments repository.CommentRepository
	logger   *zap.Logger
}

func New(comments repository.CommentRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{comments: comments, logger: logger}
}

func (uc *UseCase) List(ctx context.Context) ([]domain.Comment, error) {
	return uc.comments.List(ctx)
}

func (uc *UseCase) Get(ctx context.Context, id int64) (*domain.Comment, error) {
	return uc.comments.GetByID(ctx, id)
}

func (uc *UseCase) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	return uc.comments.Create(ctx, comment)
}

func (uc *UseCase) Update(ctx context.Context, id int64, patch repository.CommentPatch) (*domain.Comment, error) {
	return uc.comments.Update(ctx, id, patch)
}

func (uc *UseCase) Delete(ctx context.Context, id int64) error {
	return uc.comments.Delete(ctx, id)
}
