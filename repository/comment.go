package repository

import (
	"context"

	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/pkg/optional"
)

// CommentPatch is a partial update for a comment row.
type CommentPatch struct {
	Text optional.Field[string]
}

func (p CommentPatch) IsEmpty() bool {
	return !p.Text.IsSet()
}

type CommentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
	List(ctx context.Context) ([]domain.Comment, error)
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	Update(ctx context.Context, id int64, patch CommentPatch) (*domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}
