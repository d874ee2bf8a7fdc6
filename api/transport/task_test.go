package transport

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/taskdesk/backend/domain"
)

func decodeCreateTask(t *testing.T, body string) CreateTaskRequest {
	t.Helper()
	var req CreateTaskRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return req
}

func TestCreateTaskValidate(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "missing title",
			body:    `{"space": 1}`,
			wantErr: "title field required",
		},
		{
			name:    "null title",
			body:    `{"title": null, "space": 1}`,
			wantErr: "title none is not an allowed value",
		},
		{
			name:    "empty title",
			body:    `{"title": "", "space": 1}`,
			wantErr: "title ensure this value has at least 1 characters",
		},
		{
			name:    "title too long",
			body:    `{"title": "` + strings.Repeat("a", 256) + `", "space": 1}`,
			wantErr: "title ensure this value has at most 255 characters",
		},
		{
			name:    "title wrong type",
			body:    `{"title": 42, "space": 1}`,
			wantErr: "title str type expected",
		},
		{
			name:    "bad due date",
			body:    `{"title": "walk the dog", "due_date": "31.12.2026", "space": 1}`,
			wantErr: "due_date invalid isoformat",
		},
		{
			name:    "bad due time",
			body:    `{"title": "walk the dog", "due_time": "9pm", "space": 1}`,
			wantErr: "due_time invalid isoformat",
		},
		{
			name:    "decisive wrong type",
			body:    `{"title": "walk the dog", "decisive": "yes", "space": 1}`,
			wantErr: "decisive value could not be parsed to a boolean",
		},
		{
			name:    "missing space",
			body:    `{"title": "walk the dog"}`,
			wantErr: "space field required",
		},
		{
			name:    "space out of range",
			body:    `{"title": "walk the dog", "space": 3}`,
			wantErr: "space 3 is not a valid Space",
		},
		{
			name:    "space wrong type",
			body:    `{"title": "walk the dog", "space": "work"}`,
			wantErr: "space value is not a valid integer",
		},
		{
			name:    "project id wrong type",
			body:    `{"title": "walk the dog", "space": 1, "project_id": "first"}`,
			wantErr: "project_id value is not a valid integer",
		},
		{
			name: "minimal valid",
			body: `{"title": "walk the dog", "space": 1}`,
		},
		{
			name: "full valid",
			body: `{"title": "walk the dog", "description": "around the block",
				"due_date": "2026-09-01", "due_time": "18:30:00",
				"decisive": true, "space": 2, "project_id": 7}`,
		},
		{
			name: "nullable fields accept null",
			body: `{"title": "walk the dog", "space": 1, "description": null,
				"due_date": null, "due_time": null, "project_id": null}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := decodeCreateTask(t, tc.body)
			err := req.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %q, got none", tc.wantErr)
			}
			if err.Error() != tc.wantErr {
				t.Errorf("got %q, want %q", err.Error(), tc.wantErr)
			}
			if !domain.IsDomainError(err, domain.ErrCodeBadRequest) {
				t.Errorf("expected bad_request classification, got %v", err)
			}
		})
	}
}

func TestCreateTaskDefaults(t *testing.T) {
	req := decodeCreateTask(t, `{"title": "walk the dog", "space": 1}`)
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	task := req.Task()
	if task.Title != "walk the dog" {
		t.Errorf("title = %q", task.Title)
	}
	if task.Space != domain.SpacePersonal {
		t.Errorf("space = %v", task.Space)
	}
	if task.Decisive {
		t.Error("decisive must default to false")
	}
	if task.Description != nil || task.DueDate != nil || task.DueTime != nil || task.ProjectID != nil {
		t.Error("omitted nullable fields must materialize as nil")
	}
}

func TestUpdateTaskValidate(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "empty payload keeps everything",
			body: `{}`,
		},
		{
			name: "partial payload",
			body: `{"decisive": true}`,
		},
		{
			name:    "null title rejected",
			body:    `{"title": null}`,
			wantErr: "title none is not an allowed value",
		},
		{
			name:    "null space rejected",
			body:    `{"space": null}`,
			wantErr: "space none is not an allowed value",
		},
		{
			name: "clearing project allowed",
			body: `{"project_id": null}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req UpdateTaskRequest
			if err := json.Unmarshal([]byte(tc.body), &req); err != nil {
				t.Fatalf("decode: %v", err)
			}
			err := req.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tc.wantErr {
				t.Errorf("got %v, want %q", err, tc.wantErr)
			}
		})
	}
}

func TestUpdateTaskPatch(t *testing.T) {
	var req UpdateTaskRequest
	if err := json.Unmarshal([]byte(`{"title": "new title", "project_id": null}`), &req); err != nil {
		t.Fatalf("decode: %v", err)
	}

	patch := req.Patch()
	if title, ok := patch.Title.Get(); !ok || title != "new title" {
		t.Errorf("title not carried over: %v %v", title, ok)
	}
	if !patch.ProjectID.IsNull() {
		t.Error("null project_id must survive into the patch")
	}
	if patch.Description.IsSet() {
		t.Error("omitted description must stay unset")
	}

	var empty UpdateTaskRequest
	if !empty.Patch().IsEmpty() {
		t.Error("zero payload must produce an empty patch")
	}
}
