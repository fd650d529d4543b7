// Package apperr defines the error kinds shared by every aggregate.
//
// Aggregates declare their own sentinels (ErrItemNotFound, ErrDuplicateNationalID, ...)
// wrapping one of the kinds below, so the transport layer can map errors to
// status codes without knowing every sentinel.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the kind of every "no record with that identifier" error.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is the kind of every uniqueness violation.
	ErrDuplicate = errors.New("duplicate identity")

	// ErrValidation is the kind matched by errors.Is for any *ValidationError.
	ErrValidation = errors.New("validation failed")
)

// ValidationError reports an input that violates a stated constraint.
// It is always returned before any state is touched.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// Validationf creates a ValidationError with a formatted reason.
func Validationf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// AsValidation extracts the ValidationError from an error chain.
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
