package common

import "strings"

// ValidationError carries every violation found while checking a request,
// so the caller sees all problems at once instead of one per attempt.
type ValidationError struct {
	Violations []string
}

// NewValidationError builds a ValidationError from the given violations.
func NewValidationError(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// Error joins all violations into a single comma-separated message.
func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, ",")
}
