package transport

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/pkg/optional"
)

// Validation reports the FIRST failing field in payload declaration order as
// a bad_request domain error with the field name and a reason.
const (
	msgRequired = "field required"
	msgNone     = "none is not an allowed value"
	msgStrType  = "str type expected"
	msgIntType  = "value is not a valid integer"
	msgBoolType = "value could not be parsed to a boolean"
	msgISO      = "invalid isoformat"
)

// colorPattern is the canonical hex color form: '#' plus exactly six hex
// digits.
var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// fieldRequired rejects fields that are absent or explicitly null.
func fieldRequired[T any](name string, f optional.Field[T]) *domain.Error {
	if !f.IsSet() {
		return domain.BadRequest(name, msgRequired)
	}
	return fieldNotNull(name, f)
}

// fieldNotNull rejects fields explicitly sent as JSON null.
func fieldNotNull[T any](name string, f optional.Field[T]) *domain.Error {
	if f.IsNull() {
		return domain.BadRequest(name, msgNone)
	}
	return nil
}

func checkString(name string, f optional.Field[string], minLen, maxLen int) *domain.Error {
	if !f.IsSet() || f.IsNull() {
		return nil
	}
	if f.Err() != nil {
		return domain.BadRequest(name, msgStrType)
	}
	v, _ := f.Get()
	if n := utf8.RuneCountInString(v); n < minLen {
		return domain.BadRequest(name, fmt.Sprintf("ensure this value has at least %d characters", minLen))
	} else if n > maxLen {
		return domain.BadRequest(name, fmt.Sprintf("ensure this value has at most %d characters", maxLen))
	}
	return nil
}

func checkInt(name string, f optional.Field[int], ge, le *int) *domain.Error {
	if !f.IsSet() || f.IsNull() {
		return nil
	}
	if f.Err() != nil {
		return domain.BadRequest(name, msgIntType)
	}
	v, _ := f.Get()
	if ge != nil && v < *ge {
		return domain.BadRequest(name, fmt.Sprintf("ensure this value is greater than or equal to %d", *ge))
	}
	if le != nil && v > *le {
		return domain.BadRequest(name, fmt.Sprintf("ensure this value is less than or equal to %d", *le))
	}
	return nil
}

func checkInt64(name string, f optional.Field[int64]) *domain.Error {
	if !f.IsSet() || f.IsNull() {
		return nil
	}
	if f.Err() != nil {
		return domain.BadRequest(name, msgIntType)
	}
	return nil
}

func checkBool(name string, f optional.Field[bool]) *domain.Error {
	if !f.IsSet() || f.IsNull() {
		return nil
	}
	if f.Err() != nil {
		return domain.BadRequest(name, msgBoolType)
	}
	return nil
}

func checkDate(name string, f optional.Field[domain.Date]) *domain.Error {
	if !f.IsSet() || f.IsNull() {
		return nil
	}
	if f.Err() != nil {
		return domain.BadRequest(name, msgISO)
	}
	return nil
}

func checkTimeOfDay(name string, f optional.Field[domain.TimeOfDay]) *domain.Error {
	if !f.IsSet() || f.IsNull() {
		return nil
	}
	if f.Err() != nil {
		return domain.BadRequest(name, msgISO)
	}
	return nil
}

func checkSpace(name string, f optional.Field[domain.Space]) *domain.Error {
	if !f.IsSet() || f.IsNull() {
		return nil
	}
	if f.Err() != nil {
		return domain.BadRequest(name, msgIntType)
	}
	v, _ := f.Get()
	if !v.Valid() {
		return domain.BadRequest(name, fmt.Sprintf("%d is not a valid Space", int(v)))
	}
	return nil
}

func checkColor(name string, f optional.Field[string]) *domain.Error {
	if !f.IsSet() || f.IsNull() {
		return nil
	}
	if f.Err() != nil {
		return domain.BadRequest(name, msgStrType)
	}
	v, _ := f.Get()
	if !colorPattern.MatchString(v) {
		return domain.BadRequest(name, fmt.Sprintf("string does not match regex %q", colorPattern.String()))
	}
	return nil
}

// firstError returns the first non-nil validation failure.
func firstError(errs ...*domain.Error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
