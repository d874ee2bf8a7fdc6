package handler

import (
	"fmt"
	"testing"
	"time"

	"github.com/taskdesk/backend/domain"
)

func TestParseGoalFilter(t *testing.T) {
	year := time.Now().Year()

	cases := []struct {
		name    string
		query   string
		wantErr string
	}{
		{
			name:  "empty",
			query: "",
		},
		{
			name:  "year and month",
			query: fmt.Sprintf("year=%d&month=6", year),
		},
		{
			name:  "year alone",
			query: fmt.Sprintf("year=%d", year),
		},
		{
			name:    "month without year",
			query:   "month=6",
			wantErr: "Request should contain both the year and month",
		},
		{
			name:    "month out of range",
			query:   fmt.Sprintf("year=%d&month=13", year),
			wantErr: "month ensure this value is less than or equal to 12",
		},
		{
			name:    "month below range",
			query:   fmt.Sprintf("year=%d&month=0", year),
			wantErr: "month ensure this value is greater than or equal to 1",
		},
		{
			name:    "year in the past",
			query:   fmt.Sprintf("year=%d", year-1),
			wantErr: fmt.Sprintf("year ensure this value is greater than or equal to %d", year),
		},
		{
			name:    "year wrong type",
			query:   "year=soon",
			wantErr: "year value is not a valid integer",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseGoalFilter(parseArgs(tc.query))
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tc.wantErr {
				t.Errorf("got %v, want %q", err, tc.wantErr)
			}
			if !domain.IsDomainError(err, domain.ErrCodeBadRequest) {
				t.Errorf("expected bad_request classification, got %v", err)
			}
		})
	}
}
