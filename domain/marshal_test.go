package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestTaskMarshalDerivedCompletion(t *testing.T) {
	task := Task{ID: 1, Title: "buy milk", Space: SpaceWork, CreatedAt: time.Now()}

	out, err := json.Marshal(task)
	if err != nil {
		t.Fatal(err)
	}
	body := string(out)
	if !strings.Contains(body, `"is_completed":false`) {
		t.Errorf("missing derived flag: %s", body)
	}
	if !strings.Contains(body, `"completed_at":null`) {
		t.Errorf("completed_at must serialize as explicit null: %s", body)
	}

	now := time.Now()
	task.CompletedAt = &now
	out, err = json.Marshal(task)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), `"is_completed":true`) {
		t.Errorf("missing derived flag after completion: %s", out)
	}
}

func TestProjectMarshalEmptyChildren(t *testing.T) {
	project := Project{ID: 2, Title: "garden", Description: "yard work", Space: SpacePersonal}

	out, err := json.Marshal(project)
	if err != nil {
		t.Fatal(err)
	}
	body := string(out)
	if !strings.Contains(body, `"tasks":[]`) {
		t.Errorf("child ids must serialize as an empty list, got %s", body)
	}
	if !strings.Contains(body, `"is_archived":false`) {
		t.Errorf("missing derived flag: %s", body)
	}
}

func TestGoalMarshalEmptyChildren(t *testing.T) {
	goal := Goal{ID: 3, Title: "read more"}

	out, err := json.Marshal(goal)
	if err != nil {
		t.Fatal(err)
	}
	body := string(out)
	if !strings.Contains(body, `"projects":[]`) {
		t.Errorf("child ids must serialize as an empty list, got %s", body)
	}
	if !strings.Contains(body, `"is_achieved":false`) {
		t.Errorf("missing derived flag: %s", body)
	}
}
