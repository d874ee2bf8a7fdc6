package transport

import (
	"time"

	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/repository"
	"github.com/taskdesk/backend/pkg/optional"
)

var (
	monthMin = 1
	monthMax = 12
)

// CreateGoalRequest is the POST /goals/ payload.
type CreateGoalRequest struct {
	Title optional.Field[string] `json:"title"`
	Month optional.Field[int]    `json:"month"`
	Year  optional.Field[int]    `json:"year"`
}

func (r CreateGoalRequest) Validate() error {
	yearMin := time.Now().Year()
	if err := firstError(
		fieldRequired("title", r.Title),
		checkString("title", r.Title, 1, 255),
		checkInt("month", r.Month, &monthMin, &monthMax),
		checkInt("year", r.Year, &yearMin, nil),
	); err != nil {
		return err
	}
	return checkMonthYearPair(r.Month, r.Year)
}

// Goal materializes the validated payload.
func (r CreateGoalRequest) Goal() *domain.Goal {
	title, _ := r.Title.Get()
	return &domain.Goal{
		Title: title,
		Month: r.Month.Ptr(),
		Year:  r.Year.Ptr(),
	}
}

// UpdateGoalRequest is the PUT /goals/{id} payload.
type UpdateGoalRequest struct {
	Title optional.Field[string] `json:"title"`
	Month optional.Field[int]    `json:"month"`
	Year  optional.Field[int]    `json:"year"`
}

func (r UpdateGoalRequest) Validate() error {
	yearMin := time.Now().Year()
	if err := firstError(
		fieldNotNull("title", r.Title),
		checkString("title", r.Title, 1, 255),
		checkInt("month", r.Month, &monthMin, &monthMax),
		checkInt("year", r.Year, &yearMin, nil),
	); err != nil {
		return err
	}
	if _, ok := r.Month.Get(); ok {
		return checkMonthYearPair(r.Month, r.Year)
	}
	return nil
}

// Patch translates the payload into a persistence patch.
func (r UpdateGoalRequest) Patch() repository.GoalPatch {
	return repository.GoalPatch{
		Title: r.Title,
		Month: r.Month,
		Year:  r.Year,
	}
}

// checkMonthYearPair enforces the cross-field rule: a month may only be
// supplied together with a year.
func checkMonthYearPair(month, year optional.Field[int]) error {
	if _, ok := month.Get(); !ok {
		return nil
	}
	if _, ok := year.Get(); !ok {
		return domain.ErrMonthRequiresYear
	}
	return nil
}
