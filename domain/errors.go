package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
// The values double as the machine-readable `error.code` field of the API
// error envelope, hence the snake_case.
type ErrorCode string

const (
	ErrCodeBadRequest         ErrorCode = "bad_request"
	ErrCodeForbidden          ErrorCode = "forbidden"
	ErrCodeNotFound           ErrorCode = "not_found"
	ErrCodeUnprocessable      ErrorCode = "unprocessable_entity"
	ErrCodeServiceUnavailable ErrorCode = "service_unavailable"
	ErrCodeInternal           ErrorCode = "server_error"
)

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// BadRequest builds a validation error for a single offending field.
func BadRequest(field, reason string) *Error {
	return NewError(ErrCodeBadRequest, fmt.Sprintf("%s %s", field, reason))
}

// Common domain errors.
var (
	ErrForbidden         = NewError(ErrCodeForbidden, "Invalid token")
	ErrInvalidPayload    = NewError(ErrCodeBadRequest, "invalid payload")
	ErrMonthRequiresYear = NewError(
		ErrCodeBadRequest, "Request should contain both the year and month",
	)
)

// NotFound builds the canonical not-found error for an addressed or
// referenced entity, naming the offending id.
func NotFound(entity string, id int64) *Error {
	return NewError(ErrCodeNotFound, fmt.Sprintf("%s with id=%d not found", entity, id))
}

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
