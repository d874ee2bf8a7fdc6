package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/repository"
)

var tagTable = table[domain.Tag]{
	name:    "tag",
	entity:  "tag",
	columns: "id, title, color",
	scan:    scanTag,
}

type tagRepository struct {
	pool *pgxpool.Pool
}

// NewTagRepository returns a Postgres-backed implementation of TagRepository.
func NewTagRepository(pool *pgxpool.Pool) repository.TagRepository {
	return &tagRepository{pool: pool}
}

func (r *tagRepository) GetByID(ctx context.Context, id int64) (*domain.Tag, error) {
	return tagTable.getOne(ctx, r.pool, id)
}

func (r *tagRepository) List(ctx context.Context) ([]domain.Tag, error) {
	query := "SELECT " + tagTable.columns + " FROM tag ORDER BY id"
	return tagTable.selectMany(ctx, r.pool, query)
}

func (r *tagRepository) Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	if tag == nil {
		return nil, domain.ErrInvalidPayload
	}
	return tagTable.insertOne(ctx, r.pool,
		[]string{"title", "color"},
		[]any{tag.Title, tag.Color},
	)
}

func (r *tagRepository) Update(ctx context.Context, id int64, patch repository.TagPatch) (*domain.Tag, error) {
	upd := &updateBuilder{}
	setField(upd, "title", patch.Title)
	setField(upd, "color", patch.Color)
	return tagTable.updateOne(ctx, r.pool, id, upd)
}

func (r *tagRepository) Delete(ctx context.Context, id int64) error {
	return tagTable.deleteOne(ctx, r.pool, id)
}

func scanTag(row pgx.Row) (*domain.Tag, error) {
	var tag domain.Tag
	if err := row.Scan(&tag.ID, &tag.Title, &tag.Color); err != nil {
		return nil, err
	}
	return &tag, nil
}
