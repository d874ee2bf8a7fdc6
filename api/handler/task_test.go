package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/valyala/fasthttp"

	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/repository"
	taskUC "github.com/taskdesk/backend/usecase/task"
)

type stubTaskRepo struct {
	tasks map[int64]*domain.Task
}

func (s *stubTaskRepo) GetByID(_ context.Context, id int64) (*domain.Task, error) {
	task, ok := s.tasks[id]
	if !ok {
		return nil, domain.NotFound("task", id)
	}
	return task, nil
}

func (s *stubTaskRepo) List(_ context.Context, _ repository.TaskFilter) ([]domain.Task, error) {
	out := []domain.Task{}
	for _, task := range s.tasks {
		out = append(out, *task)
	}
	return out, nil
}

func (s *stubTaskRepo) ListToday(_ context.Context) ([]domain.Task, error) {
	return s.List(context.Background(), repository.TaskFilter{})
}

func (s *stubTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	out := *task
	out.ID = int64(len(s.tasks) + 1)
	s.tasks[out.ID] = &out
	return &out, nil
}

func (s *stubTaskRepo) Update(_ context.Context, id int64, patch repository.TaskPatch) (*domain.Task, error) {
	task, ok := s.tasks[id]
	if !ok {
		return nil, domain.NotFound("task", id)
	}
	if title, ok := patch.Title.Get(); ok {
		task.Title = title
	}
	if patch.CompletedAt.IsSet() {
		if stamp, ok := patch.CompletedAt.Get(); ok {
			task.CompletedAt = &stamp
		} else {
			task.CompletedAt = nil
		}
	}
	return task, nil
}

func (s *stubTaskRepo) Delete(_ context.Context, id int64) error {
	if _, ok := s.tasks[id]; !ok {
		return domain.NotFound("task", id)
	}
	delete(s.tasks, id)
	return nil
}

type stubProjectRepo struct {
	repository.ProjectRepository
}

func (s *stubProjectRepo) GetByID(_ context.Context, id int64) (*domain.Project, error) {
	return nil, domain.NotFound("project", id)
}

func newTaskHandler(seed ...*domain.Task) (*TaskHandler, *stubTaskRepo) {
	repo := &stubTaskRepo{tasks: map[int64]*domain.Task{}}
	for _, task := range seed {
		repo.tasks[task.ID] = task
	}
	uc := taskUC.New(repo, &stubProjectRepo{}, nil)
	return NewTaskHandler(uc, nil, nil, 50), repo
}

func newRequestCtx(method, uri, body string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	return ctx
}

func TestTaskCreate(t *testing.T) {
	h, repo := newTaskHandler()

	ctx := newRequestCtx(http.MethodPost, "/api/private/tasks/", `{"title": "walk the dog", "space": 1}`)
	h.Create(ctx)

	if ctx.Response.StatusCode() != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	body := string(ctx.Response.Body())
	if !strings.Contains(body, `"status":"ok"`) || !strings.Contains(body, `"title":"walk the dog"`) {
		t.Errorf("body = %s", body)
	}
	if len(repo.tasks) != 1 {
		t.Errorf("stored tasks = %d", len(repo.tasks))
	}
}

func TestTaskCreateValidationError(t *testing.T) {
	h, _ := newTaskHandler()

	ctx := newRequestCtx(http.MethodPost, "/api/private/tasks/", `{"space": 1}`)
	h.Create(ctx)

	if ctx.Response.StatusCode() != http.StatusBadRequest {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}
	want := `{"status":"error","error":{"code":"bad_request","message":"title field required"}}`
	if string(ctx.Response.Body()) != want {
		t.Errorf("body = %s", ctx.Response.Body())
	}
}

func TestTaskCreateMissingProject(t *testing.T) {
	h, _ := newTaskHandler()

	ctx := newRequestCtx(http.MethodPost, "/api/private/tasks/", `{"title": "walk the dog", "space": 1, "project_id": 9}`)
	h.Create(ctx)

	if ctx.Response.StatusCode() != http.StatusNotFound {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}
	if !strings.Contains(string(ctx.Response.Body()), "project with id=9 not found") {
		t.Errorf("body = %s", ctx.Response.Body())
	}
}

func TestTaskGetInvalidID(t *testing.T) {
	h, _ := newTaskHandler()

	ctx := newRequestCtx(http.MethodGet, "/api/private/tasks/abc", "")
	ctx.SetUserValue("id", "abc")
	h.Get(ctx)

	if ctx.Response.StatusCode() != http.StatusBadRequest {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}
	if !strings.Contains(string(ctx.Response.Body()), "id value is not a valid integer") {
		t.Errorf("body = %s", ctx.Response.Body())
	}
}

func TestTaskGetNotFound(t *testing.T) {
	h, _ := newTaskHandler()

	ctx := newRequestCtx(http.MethodGet, "/api/private/tasks/5", "")
	ctx.SetUserValue("id", "5")
	h.Get(ctx)

	if ctx.Response.StatusCode() != http.StatusNotFound {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}
	want := `{"status":"error","error":{"code":"not_found","message":"task with id=5 not found"}}`
	if string(ctx.Response.Body()) != want {
		t.Errorf("body = %s", ctx.Response.Body())
	}
}

func TestTaskListEnvelope(t *testing.T) {
	h, _ := newTaskHandler(
		&domain.Task{ID: 1, Title: "walk the dog", Space: domain.SpacePersonal},
		&domain.Task{ID: 2, Title: "file the report", Space: domain.SpaceWork},
	)

	ctx := newRequestCtx(http.MethodGet, "/api/private/tasks/", "")
	h.List(ctx)

	if ctx.Response.StatusCode() != http.StatusOK {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}

	var envelope struct {
		Status string            `json:"status"`
		Data   []json.RawMessage `json:"data"`
		Count  int               `json:"count"`
	}
	if err := json.Unmarshal(ctx.Response.Body(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Status != "ok" || envelope.Count != 2 || len(envelope.Data) != 2 {
		t.Errorf("envelope = %+v", envelope)
	}
}

func TestTaskListBadLimit(t *testing.T) {
	h, _ := newTaskHandler()

	ctx := newRequestCtx(http.MethodGet, "/api/private/tasks/?limit=100", "")
	h.List(ctx)

	if ctx.Response.StatusCode() != http.StatusBadRequest {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}
	if !strings.Contains(string(ctx.Response.Body()), "limit ensure this value is less than or equal to 50") {
		t.Errorf("body = %s", ctx.Response.Body())
	}
}

func TestTaskUpdateEmptyBody(t *testing.T) {
	h, _ := newTaskHandler(&domain.Task{ID: 3, Title: "walk the dog", Space: domain.SpacePersonal})

	ctx := newRequestCtx(http.MethodPut, "/api/private/tasks/3", "")
	ctx.SetUserValue("id", "3")
	h.Update(ctx)

	if ctx.Response.StatusCode() != http.StatusOK {
		t.Fatalf("status = %d, body = %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	if !strings.Contains(string(ctx.Response.Body()), `"title":"walk the dog"`) {
		t.Errorf("body = %s", ctx.Response.Body())
	}
}

func TestTaskCompleteReopenLifecycle(t *testing.T) {
	h, repo := newTaskHandler()

	ctx := newRequestCtx(http.MethodPost, "/api/private/tasks/", `{"title": "buy milk", "space": 2}`)
	h.Create(ctx)
	if ctx.Response.StatusCode() != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	if !strings.Contains(string(ctx.Response.Body()), `"completed_at":null`) {
		t.Fatalf("created task must start incomplete: %s", ctx.Response.Body())
	}

	ctx = newRequestCtx(http.MethodPost, "/api/private/tasks/1/complete", "")
	ctx.SetUserValue("id", "1")
	h.Complete(ctx)
	if ctx.Response.StatusCode() != http.StatusOK {
		t.Fatalf("complete status = %d, body = %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	body := string(ctx.Response.Body())
	if !strings.Contains(body, `"is_completed":true`) || strings.Contains(body, `"completed_at":null`) {
		t.Errorf("complete must stamp the task: %s", body)
	}
	if repo.tasks[1].CompletedAt == nil {
		t.Error("completion stamp missing from the stored task")
	}

	ctx = newRequestCtx(http.MethodPost, "/api/private/tasks/1/reopen", "")
	ctx.SetUserValue("id", "1")
	h.Reopen(ctx)
	if ctx.Response.StatusCode() != http.StatusOK {
		t.Fatalf("reopen status = %d, body = %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	body = string(ctx.Response.Body())
	if !strings.Contains(body, `"is_completed":false`) || !strings.Contains(body, `"completed_at":null`) {
		t.Errorf("reopen must clear the stamp: %s", body)
	}
	if repo.tasks[1].CompletedAt != nil {
		t.Error("completion stamp must be cleared on the stored task")
	}
}

func TestTaskDelete(t *testing.T) {
	h, repo := newTaskHandler(&domain.Task{ID: 4, Title: "walk the dog", Space: domain.SpacePersonal})

	ctx := newRequestCtx(http.MethodDelete, "/api/private/tasks/4", "")
	ctx.SetUserValue("id", "4")
	h.Delete(ctx)

	if ctx.Response.StatusCode() != http.StatusNoContent {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}
	if len(repo.tasks) != 0 {
		t.Errorf("task not deleted")
	}
}
