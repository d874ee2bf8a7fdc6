package tag

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/repository"
)

// UseCase implements plain tag CRUD. Tags have no relationships and no
// transitions.
type UseCase struct {
	tags   repository.TagRepository
	logger *zap.Logger
}

func New(tags repository.TagRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{tags: tags, logger: logger}
}

func (uc *UseCase) List(ctx context.Context) ([]domain.Tag, error) {
	return uc.tags.List(ctx)
}

func (uc *UseCase) Get(ctx context.Context, id int64) (*domain.Tag, error) {
	return uc.tags.GetByID(ctx, id)
}

func (uc *UseCase) Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	return uc.tags.Create(ctx, tag)
}

func (uc *UseCase) Update(ctx context.Context, id int64, patch repository.TagPatch) (*domain.Tag, error) {
	return uc.tags.Update(ctx, id, patch)
}

func (uc *UseCase) Delete(ctx context.Context, id int64) error {
	return uc.tags.Delete(ctx, id)
}
