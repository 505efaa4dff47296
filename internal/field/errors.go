// Package field maps raw AIS field values to validated domain values. Each
// function is pure and total over its raw domain: it yields a value, nil for
// the field's "not available" sentinel, or a *FieldError.
package field

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is wrapped by every *FieldError.
var ErrOutOfRange = errors.New("field value out of range")

// FieldError reports a raw value that is neither valid nor the sentinel.
type FieldError struct {
	Field string
	Raw   int64
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: raw value %d", e.Field, e.Raw)
}

func (e *FieldError) Unwrap() error { return ErrOutOfRange }

func outOfRange(name string, raw int64) error {
	return &FieldError{Field: name, Raw: raw}
}
