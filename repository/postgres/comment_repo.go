package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/repository"
)

var commentTable = table[domain.Comment]{
	name:    "comment",
	entity:  "comment",
	columns: "id, text, created_at",
	scan:    scanComment,
}

type commentRepository struct {
	pool *pgxpool.Pool
}

// NewCommentRepository returns a Postgres-backed implementation of CommentRepository.
func NewCommentRepository(pool *pgxpool.Pool) repository.CommentRepository {
	return &commentRepository{pool: pool}
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	return commentTable.getOne(ctx, r.pool, id)
}

func (r *commentRepository) List(ctx context.Context) ([]domain.Comment, error) {
	query := "SELECT " + commentTable.columns + " FROM comment ORDER BY id"
	return commentTable.selectMany(ctx, r.pool, query)
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	if comment == nil {
		return nil, domain.ErrInvalidPayload
	}
	return commentTable.insertOne(ctx, r.pool,
		[]string{"text"},
		[]any{comment.Text},
	)
}

func (r *commentRepository) Update(ctx context.Context, id int64, patch repository.CommentPatch) (*domain.Comment, error) {
	upd := &updateBuilder{}
	setField(upd, "text", patch.Text)
	return commentTable.updateOne(ctx, r.pool, id, upd)
}

func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	return commentTable.deleteOne(ctx, r.pool, id)
}

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var comment domain.Comment
	if err := row.Scan(&comment.ID, &comment.Text, &comment.CreatedAt); err != nil {
		return nil, err
	}
	return &comment, nil
}
