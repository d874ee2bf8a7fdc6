// Package optional implements a JSON field wrapper that distinguishes
// between a field absent from the payload, a field explicitly set to null,
// and a field carrying a value. Partial-update payloads need all three
// states: omitted fields keep the persisted value, while explicit nulls are
// validated against the field's nullability.
package optional

import (
	"bytes"
	"encoding/json"
)

// Field wraps a value of type T with JSON presence tracking.
// The zero value represents a field that was absent from the payload.
type Field[T any] struct {
	value T
	set   bool
	null  bool
	err   error
}

// Of returns a Field carrying the given value.
func Of[T any](value T) Field[T] {
	return Field[T]{value: value, set: true}
}

// Null returns a Field that was explicitly set to null.
func Null[T any]() Field[T] {
	return Field[T]{set: true, null: true}
}

// IsSet reports whether the field was present in the payload at all.
func (f Field[T]) IsSet() bool {
	return f.set
}

// IsNull reports whether the field was explicitly set to JSON null.
func (f Field[T]) IsNull() bool {
	return f.set && f.null
}

// Err returns the decode error, if the field was present but its value could
// not be decoded into T. Decoding errors are deferred to validation so the
// offending field can be named in the response.
func (f Field[T]) Err() error {
	return f.err
}

// Get returns the value and whether a usable value is present.
func (f Field[T]) Get() (T, bool) {
	if !f.set || f.null || f.err != nil {
		var zero T
		return zero, false
	}
	return f.value, true
}

// Ptr returns a pointer to the value, or nil when the field is unset, null
// or undecodable.
func (f Field[T]) Ptr() *T {
	if v, ok := f.Get(); ok {
		return &v
	}
	return nil
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.set = true
	if bytes.Equal(data, []byte("null")) {
		f.null = true
		return nil
	}
	if err := json.Unmarshal(data, &f.value); err != nil {
		// Swallow the error here so sibling fields still decode; validation
		// surfaces it with the field's name attached.
		f.err = err
	}
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.set || f.null {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
