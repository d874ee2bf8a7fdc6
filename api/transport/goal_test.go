package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/taskdesk/backend/domain"
)

func TestCreateGoalValidate(t *testing.T) {
	year := time.Now().Year()

	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "missing title",
			body:    `{}`,
			wantErr: "title field required",
		},
		{
			name: "title only",
			body: `{"title": "learn piano"}`,
		},
		{
			name: "full period",
			body: fmt.Sprintf(`{"title": "learn piano", "month": 6, "year": %d}`, year),
		},
		{
			name: "year only",
			body: fmt.Sprintf(`{"title": "learn piano", "year": %d}`, year),
		},
		{
			name:    "month without year",
			body:    `{"title": "learn piano", "month": 6}`,
			wantErr: "Request should contain both the year and month",
		},
		{
			name:    "month too small",
			body:    `{"title": "learn piano", "month": 0, "year": 2100}`,
			wantErr: "month ensure this value is greater than or equal to 1",
		},
		{
			name:    "month too large",
			body:    `{"title": "learn piano", "month": 13, "year": 2100}`,
			wantErr: "month ensure this value is less than or equal to 12",
		},
		{
			name:    "year in the past",
			body:    fmt.Sprintf(`{"title": "learn piano", "month": 6, "year": %d}`, year-1),
			wantErr: fmt.Sprintf("year ensure this value is greater than or equal to %d", year),
		},
		{
			name:    "month wrong type",
			body:    `{"title": "learn piano", "month": "june", "year": 2100}`,
			wantErr: "month value is not a valid integer",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req CreateGoalRequest
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

func TestUpdateGoalValidate(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name: "empty payload",
			body: `{}`,
		},
		{
			name: "clearing the period",
			body: `{"month": null, "year": null}`,
		},
		{
			name:    "month set without year",
			body:    `{"month": 6}`,
			wantErr: domain.ErrMonthRequiresYear,
		},
		{
			name: "month and year together",
			body: `{"month": 6, "year": 2100}`,
		},
		{
			name:    "null title rejected",
			body:    `{"title": null}`,
			wantErr: domain.NewError(domain.ErrCodeBadRequest, "title none is not an allowed value"),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req UpdateGoalRequest
			if err := json.Unmarshal([]byte(tc.body), &req); err != nil {
				t.Fatalf("decode: %v", err)
			}
			err := req.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tc.wantErr.Error() {
				t.Errorf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestUpdateGoalMonthRequiresYearIsDomainError(t *testing.T) {
	var req UpdateGoalRequest
	if err := json.Unmarshal([]byte(`{"month": 3}`), &req); err != nil {
		t.Fatal(err)
	}
	err := req.Validate()
	if !errors.Is(err, domain.ErrMonthRequiresYear) {
		t.Fatalf("expected ErrMonthRequiresYear, got %v", err)
	}
}
