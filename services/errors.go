package services

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the services
var (
	// ErrNotFound is returned when a referenced profile, question, or shared
	// profile does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNoCandidates is returned by discovery when the candidate pool is
	// empty after exclusion. It is an explicit end-of-queue signal, not a
	// failure.
	ErrNoCandidates = errors.New("no more candidates")

	// ErrConditionFailed signals a lost conditional write. Callers treat it
	// as "someone else got there first" and re-read instead of failing.
	ErrConditionFailed = errors.New("conditional check failed")
)

// ValidationError reports a malformed input rejected at the service boundary
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for a single field
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidationError reports whether err is a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
