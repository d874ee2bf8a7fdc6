package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/repository"
)

var goalTable = table[domain.Goal]{
	name:    "goal",
	entity:  "goal",
	columns: "id, title, month, year, achieved_at, created_at",
	scan:    scanGoal,
}

type goalRepository struct {
	pool db
}

// NewGoalRepository returns a Postgres-backed implementation of GoalRepository.
func NewGoalRepository(pool *pgxpool.Pool) repository.GoalRepository {
	return &goalRepository{pool: pool}
}

func (r *goalRepository) GetByID(ctx context.Context, id int64) (*domain.Goal, error) {
	goal, err := goalTable.getOne(ctx, r.pool, id)
	if err != nil {
		return nil, err
	}
	if err := r.attachProjectIDs(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (r *goalRepository) List(ctx context.Context, filter repository.GoalFilter) ([]domain.Goal, error) {
	b := &condBuilder{}

	if filter.Achieved != nil {
		if *filter.Achieved {
			b.where("achieved_at IS NOT NULL")
		} else {
			b.where("achieved_at IS NULL")
		}
	}
	if filter.Year != nil {
		b.where(fmt.Sprintf("year = %s", b.arg(*filter.Year)))
		if filter.Month != nil {
			b.where(fmt.Sprintf("month = %s", b.arg(*filter.Month)))
		}
	}
	if filter.Search != "" {
		b.where(fmt.Sprintf("title ILIKE %s", b.arg("%"+filter.Search+"%")))
	}

	query := "SELECT " + goalTable.columns + " FROM goal" + b.clause() + " ORDER BY id"
	goals, err := goalTable.selectMany(ctx, r.pool, query, b.args...)
	if err != nil {
		return nil, err
	}
	for i := range goals {
		if err := r.attachProjectIDs(ctx, &goals[i]); err != nil {
			return nil, err
		}
	}
	return goals, nil
}

func (r *goalRepository) Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	if goal == nil {
		return nil, domain.ErrInvalidPayload
	}
	cols := []string{"title", "month", "year"}
	args := []any{goal.Title, goal.Month, goal.Year}
	created, err := goalTable.insertOne(ctx, r.pool, cols, args)
	if err != nil {
		return nil, err
	}
	created.ProjectIDs = []int64{}
	return created, nil
}

func (r *goalRepository) Update(ctx context.Context, id int64, patch repository.GoalPatch) (*domain.Goal, error) {
	upd := &updateBuilder{}
	setField(upd, "title", patch.Title)
	setField(upd, "month", patch.Month)
	setField(upd, "year", patch.Year)
	setField(upd, "achieved_at", patch.AchievedAt)
	goal, err := goalTable.updateOne(ctx, r.pool, id, upd)
	if err != nil {
		return nil, err
	}
	if err := r.attachProjectIDs(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// Delete removes the goal, its projects and those projects' tasks. The
// cascade is transitive and runs in one transaction.
func (r *goalRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		"DELETE FROM task WHERE project_id IN (SELECT id FROM project WHERE goal_id = $1)", id,
	); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, "DELETE FROM project WHERE goal_id = $1", id); err != nil {
		return err
	}
	if err := goalTable.deleteOne(ctx, tx, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *goalRepository) attachProjectIDs(ctx context.Context, goal *domain.Goal) error {
	ids, err := selectIDs(ctx, r.pool, "SELECT id FROM project WHERE goal_id = $1 ORDER BY id", goal.ID)
	if err != nil {
		return err
	}
	goal.ProjectIDs = ids
	return nil
}

func scanGoal(row pgx.Row) (*domain.Goal, error) {
	var goal domain.Goal
	if err := row.Scan(
		&goal.ID,
		&goal.Title,
		&goal.Month,
		&goal.Year,
		&goal.AchievedAt,
		&goal.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &goal, nil
}
