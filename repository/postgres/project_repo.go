package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/repository"
)

var projectTable = table[domain.Project]{
	name:    "project",
	entity:  "project",
	columns: "id, title, description, color, space, goal_id, archived_at, created_at",
	scan:    scanProject,
}

type projectRepository struct {
	pool db
}

// NewProjectRepository returns a Postgres-backed implementation of ProjectRepository.
func NewProjectRepository(pool *pgxpool.Pool) repository.ProjectRepository {
	return &projectRepository{pool: pool}
}

func (r *projectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	project, err := projectTable.getOne(ctx, r.pool, id)
	if err != nil {
		return nil, err
	}
	if err := r.attachTaskIDs(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (r *projectRepository) List(ctx context.Context, filter repository.ProjectFilter) ([]domain.Project, error) {
	b := &condBuilder{}

	if filter.Archived != nil {
		if *filter.Archived {
			b.where("archived_at IS NOT NULL")
		} else {
			b.where("archived_at IS NULL")
		}
	}
	if filter.Space != nil {
		b.where(fmt.Sprintf("space = %s", b.arg(*filter.Space)))
	}
	if filter.Search != "" {
		clause := "%" + filter.Search + "%"
		b.where(fmt.Sprintf("(title ILIKE %s OR description ILIKE %s)", b.arg(clause), b.arg(clause)))
	}

	query := "SELECT " + projectTable.columns + " FROM project" + b.clause() + " ORDER BY id"
	projects, err := projectTable.selectMany(ctx, r.pool, query, b.args...)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if err := r.attachTaskIDs(ctx, &projects[i]); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if project == nil {
		return nil, domain.ErrInvalidPayload
	}
	cols := []string{"title", "description", "color", "space", "goal_id"}
	args := []any{project.Title, project.Description, project.Color, project.Space, project.GoalID}
	created, err := projectTable.insertOne(ctx, r.pool, cols, args)
	if err != nil {
		return nil, err
	}
	created.TaskIDs = []int64{}
	return created, nil
}

func (r *projectRepository) Update(ctx context.Context, id int64, patch repository.ProjectPatch) (*domain.Project, error) {
	upd := &updateBuilder{}
	setField(upd, "title", patch.Title)
	setField(upd, "description", patch.Description)
	setField(upd, "color", patch.Color)
	setField(upd, "space", patch.Space)
	setField(upd, "goal_id", patch.GoalID)
	setField(upd, "archived_at", patch.ArchivedAt)
	project, err := projectTable.updateOne(ctx, r.pool, id, upd)
	if err != nil {
		return nil, err
	}
	if err := r.attachTaskIDs(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes the project together with its tasks. Both statements run in
// one transaction so a failure leaves the store untouched.
func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM task WHERE project_id = $1", id); err != nil {
		return err
	}
	if err := projectTable.deleteOne(ctx, tx, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *projectRepository) attachTaskIDs(ctx context.Context, project *domain.Project) error {
	ids, err := selectIDs(ctx, r.pool, "SELECT id FROM task WHERE project_id = $1 ORDER BY id", project.ID)
	if err != nil {
		return err
	}
	project.TaskIDs = ids
	return nil
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var project domain.Project
	if err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.Color,
		&project.Space,
		&project.GoalID,
		&project.ArchivedAt,
		&project.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &project, nil
}
