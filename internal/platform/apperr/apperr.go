// Package apperr classifies domain errors so handlers can pick a status
// without inspecting messages.
package apperr

import (
	"errors"
	"fmt"
)

// ValidationError is a structural problem with client input, detected
// before the store is touched.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Rule)
}

// Invalid returns a *ValidationError for field.
func Invalid(field, rule string) error {
	return &ValidationError{Field: field, Rule: rule}
}

// IsValidation reports whether err wraps a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrUnknownReference is wrapped when an insert names a row that does not
// exist (a foreign key violation).
var ErrUnknownReference = errors.New("referenced record does not exist")
