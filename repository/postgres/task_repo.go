package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/repository"
)

var taskTable = table[domain.Task]{
	name:    "task",
	entity:  "task",
	columns: "id, title, description, due_date, due_time, decisive, space, project_id, completed_at, created_at",
	scan:    scanTask,
}

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	return taskTable.getOne(ctx, r.pool, id)
}

func (r *taskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	query, args := buildTaskListQuery(filter)
	return taskTable.selectMany(ctx, r.pool, query, args...)
}

// buildTaskListQuery translates a TaskFilter into SQL. Incomplete tasks sort
// before completed ones, each group newest-first, ties broken by id.
func buildTaskListQuery(filter repository.TaskFilter) (string, []any) {
	b := &condBuilder{}

	if filter.Completed != nil {
		if *filter.Completed {
			b.where("completed_at IS NOT NULL")
		} else {
			b.where("completed_at IS NULL")
		}
	}
	if filter.Search != "" {
		clause := "%" + filter.Search + "%"
		b.where(fmt.Sprintf("(title ILIKE %s OR description ILIKE %s)", b.arg(clause), b.arg(clause)))
	}
	if filter.Space != nil {
		b.where(fmt.Sprintf("space = %s", b.arg(*filter.Space)))
	}
	if filter.ProjectID != nil {
		b.where(fmt.Sprintf("project_id = %s", b.arg(*filter.ProjectID)))
	} else if filter.Inbox {
		b.where("project_id IS NULL")
	}
	if filter.Decisive != nil {
		b.where(fmt.Sprintf("decisive = %s", b.arg(*filter.Decisive)))
	}
	if filter.DueFrom != nil {
		b.where(fmt.Sprintf("due_date >= %s", b.arg(*filter.DueFrom)))
	}
	if filter.DueTo != nil {
		b.where(fmt.Sprintf("due_date <= %s", b.arg(*filter.DueTo)))
	}

	query := "SELECT " + taskTable.columns + " FROM task" + b.clause() +
		" ORDER BY completed_at DESC NULLS FIRST, created_at DESC, id DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %s", b.arg(filter.Limit))
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %s", b.arg(filter.Offset))
	}

	return query, b.args
}

func (r *taskRepository) ListToday(ctx context.Context) ([]domain.Task, error) {
	query := "SELECT " + taskTable.columns + " FROM task" +
		" WHERE created_at::date = CURRENT_DATE OR completed_at::date = CURRENT_DATE"
	return taskTable.selectMany(ctx, r.pool, query)
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}
	cols := []string{"title", "description", "due_date", "due_time", "decisive", "space", "project_id"}
	args := []any{task.Title, task.Description, task.DueDate, task.DueTime, task.Decisive, task.Space, task.ProjectID}
	return taskTable.insertOne(ctx, r.pool, cols, args)
}

func (r *taskRepository) Update(ctx context.Context, id int64, patch repository.TaskPatch) (*domain.Task, error) {
	upd := &updateBuilder{}
	setField(upd, "title", patch.Title)
	setField(upd, "description", patch.Description)
	setField(upd, "due_date", patch.DueDate)
	setField(upd, "due_time", patch.DueTime)
	setField(upd, "decisive", patch.Decisive)
	setField(upd, "space", patch.Space)
	setField(upd, "project_id", patch.ProjectID)
	setField(upd, "completed_at", patch.CompletedAt)
	return taskTable.updateOne(ctx, r.pool, id, upd)
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	return taskTable.deleteOne(ctx, r.pool, id)
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var task domain.Task
	if err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.DueDate,
		&task.DueTime,
		&task.Decisive,
		&task.Space,
		&task.ProjectID,
		&task.CompletedAt,
		&task.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &task, nil
}
