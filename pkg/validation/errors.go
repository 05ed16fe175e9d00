// Package validation checks user and item input before anything is stored.
//
// Validators are plain functions. Each returns the field failures it found as
// Errors (empty when the input is acceptable) and a separate error only when a
// lookup against the store itself failed.
package validation

import (
	"strings"

	"github.com/amirasaad/market/pkg/domain"
)

// FieldError is a single failed rule on a single input field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Errors is the list of field failures found by a validator.
// It satisfies errors.Is(err, domain.ErrValidation).
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e Errors) Unwrap() error {
	return domain.ErrValidation
}

// Err returns e as an error, or nil when there are no failures.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Has reports whether field has at least one failure.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func (e *Errors) add(field, reason string) {
	*e = append(*e, FieldError{Field: field, Reason: reason})
}
