package validate

import (
	"github.com/arthur-debert/docgen/pkg/errors"
)

// ValidationError is the coded error carrying every violation of a
// configuration. A configuration that produced one must never reach a
// rendering gateway.
type ValidationError struct {
	*errors.DocgenError
	Violations []Violation
}

// Unwrap exposes the coded error for errors.Is/As chains
func (e *ValidationError) Unwrap() error {
	return e.DocgenError
}

// Err wraps violations into a ValidationError, or returns nil when there
// are none
func Err(violations []Violation) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{
		DocgenError: errors.Newf(errors.ErrValidation, "configuration has %d validation violation(s)", len(violations)),
		Violations:  violations,
	}
}
