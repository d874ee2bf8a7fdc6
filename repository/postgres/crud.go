package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/pkg/optional"
)

// Querier is the subset of pgx operations the repositories need. Both
// *pgxpool.Pool and pgx.Tx satisfy it, so the same code path serves plain
// statements and transactional cascades.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// db is Querier plus transaction support. *pgxpool.Pool satisfies it; the
// repositories with cascading deletes hold this instead of the concrete pool.
type db interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// table maps one entity kind onto its storage: table name, the noun used in
// not-found errors, the select list and the row scanner.
type table[T any] struct {
	name    string
	entity  string
	columns string
	scan    func(row pgx.Row) (*T, error)
}

// insertOne inserts a row and returns it in full, server-assigned fields
// included.
func (t table[T]) insertOne(ctx context.Context, q Querier, cols []string, args []any) (*T, error) {
	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		t.name, strings.Join(cols, ", "), strings.Join(placeholders, ", "), t.columns,
	)
	return t.scan(q.QueryRow(ctx, query, args...))
}

// getOne fetches a row by id, translating the no-rows case into the entity's
// not-found error.
func (t table[T]) getOne(ctx context.Context, q Querier, id int64) (*T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", t.columns, t.name)
	row, err := t.scan(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound(t.entity, id)
		}
		return nil, err
	}
	return row, nil
}

// updateOne applies the accumulated SET clauses and returns the updated row.
// With no clauses it degenerates to getOne, not-found behavior included.
func (t table[T]) updateOne(ctx context.Context, q Querier, id int64, upd *updateBuilder) (*T, error) {
	if len(upd.sets) == 0 {
		return t.getOne(ctx, q, id)
	}
	args := append(upd.args, id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		t.name, strings.Join(upd.sets, ", "), len(args), t.columns,
	)
	row, err := t.scan(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound(t.entity, id)
		}
		return nil, err
	}
	return row, nil
}

// deleteOne removes a row by id; zero affected rows means not-found.
func (t table[T]) deleteOne(ctx context.Context, q Querier, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", t.name)
	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound(t.entity, id)
	}
	return nil
}

// selectMany runs a listing query and scans every row.
func (t table[T]) selectMany(ctx context.Context, q Querier, query string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := t.scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// selectIDs runs a single-column id query, used to attach child identities
// to parent responses.
func selectIDs(ctx context.Context, q Querier, query string, args ...any) ([]int64, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// updateBuilder accumulates SET clauses with positional placeholders.
type updateBuilder struct {
	sets []string
	args []any
}

func (b *updateBuilder) set(col string, val any) {
	b.args = append(b.args, val)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", col, len(b.args)))
}

// setField applies a presence-tracked patch field: unset fields are skipped,
// explicit nulls clear the column.
func setField[T any](b *updateBuilder, col string, f optional.Field[T]) {
	if !f.IsSet() {
		return
	}
	if f.IsNull() {
		b.set(col, nil)
		return
	}
	v, _ := f.Get()
	b.set(col, v)
}

// condBuilder accumulates WHERE conditions with positional placeholders.
type condBuilder struct {
	conds []string
	args  []any
}

func (b *condBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *condBuilder) where(cond string) {
	b.conds = append(b.conds, cond)
}

func (b *condBuilder) clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}
