package repository

import (
	"context"

	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/pkg/optional"
)

// TagPatch is a partial update for a tag row.
type TagPatch struct {
	Title optional.Field[string]
	Color optional.Field[string]
}

func (p TagPatch) IsEmpty() bool {
	return !p.Title.IsSet() && !p.Color.IsSet()
}

type TagRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Tag, error)
	List(ctx context.Context) ([]domain.Tag, error)
	Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error)
	Update(ctx context.Context, id int64, patch TagPatch) (*domain.Tag, error)
	Delete(ctx context.Context, id int64) error
}
