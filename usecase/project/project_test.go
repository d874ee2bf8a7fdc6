package project

import (
	"context"
	"testing"

	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/repository"
	"github.com/taskdesk/backend/pkg/optional"
)

type fakeProjectRepo struct {
	repository.ProjectRepository

	lastPatch repository.ProjectPatch
	deleted   []int64
}

func (f *fakeProjectRepo) Create(_ context.Context, project *domain.Project) (*domain.Project, error) {
	out := *project
	out.ID = 1
	return &out, nil
}

func (f *fakeProjectRepo) Update(_ context.Context, id int64, patch repository.ProjectPatch) (*domain.Project, error) {
	f.lastPatch = patch
	return &domain.Project{ID: id}, nil
}

func (f *fakeProjectRepo) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeGoalRepo struct {
	repository.GoalRepository

	existing map[int64]bool
}

func (f *fakeGoalRepo) GetByID(_ context.Context, id int64) (*domain.Goal, error) {
	if !f.existing[id] {
		return nil, domain.NotFound("goal", id)
	}
	return &domain.Goal{ID: id}, nil
}

func TestCreateRejectsMissingGoal(t *testing.T) {
	uc := New(&fakeProjectRepo{}, &fakeGoalRepo{}, nil)

	goalID := int64(3)
	_, err := uc.Create(context.Background(), &domain.Project{
		Title:       "garden",
		Description: "plants and soil",
		GoalID:      &goalID,
	})
	if err == nil || err.Error() != "goal with id=3 not found" {
		t.Errorf("got %v, want goal with id=3 not found", err)
	}
}

func TestCreateWithoutGoal(t *testing.T) {
	uc := New(&fakeProjectRepo{}, &fakeGoalRepo{}, nil)

	created, err := uc.Create(context.Background(), &domain.Project{
		Title:       "garden",
		Description: "plants and soil",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("id = %d", created.ID)
	}
}

func TestUpdateChecksReassignedGoal(t *testing.T) {
	projects := &fakeProjectRepo{}
	uc := New(projects, &fakeGoalRepo{existing: map[int64]bool{3: true}}, nil)

	_, err := uc.Update(context.Background(), 1, repository.ProjectPatch{
		GoalID: optional.Of(int64(3)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = uc.Update(context.Background(), 1, repository.ProjectPatch{
		GoalID: optional.Of(int64(4)),
	})
	if err == nil || err.Error() != "goal with id=4 not found" {
		t.Errorf("got %v, want goal with id=4 not found", err)
	}
}

func TestArchiveAndRestore(t *testing.T) {
	projects := &fakeProjectRepo{}
	uc := New(projects, &fakeGoalRepo{}, nil)

	if _, err := uc.Archive(context.Background(), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stamp, ok := projects.lastPatch.ArchivedAt.Get(); !ok || stamp.IsZero() {
		t.Error("archive must stamp the current time")
	}

	if _, err := uc.Restore(context.Background(), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !projects.lastPatch.ArchivedAt.IsNull() {
		t.Error("restore must clear the archive stamp")
	}
}

func TestDeleteDelegatesToRepository(t *testing.T) {
	projects := &fakeProjectRepo{}
	uc := New(projects, &fakeGoalRepo{}, nil)

	if err := uc.Delete(context.Background(), 8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects.deleted) != 1 || projects.deleted[0] != 8 {
		t.Errorf("deleted = %v", projects.deleted)
	}
}
