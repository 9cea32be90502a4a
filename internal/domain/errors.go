package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when a record does not exist or is hidden from the caller.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the caller is known but may not act on the record.
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthenticated is returned when an operation needs a caller identity.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrInvalidCredentials is returned when login fails.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already taken")
)

// FieldError is a validation failure on a single input field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries every field error found in one input.
type ValidationError struct {
	Errors []FieldError
}

// NewValidationError builds a ValidationError from a field -> reason map, sorted by field.
func NewValidationError(fields map[string]string) *ValidationError {
	ve := &ValidationError{Errors: make([]FieldError, 0, len(fields))}
	for field, reason := range fields {
		ve.Errors = append(ve.Errors, FieldError{Field: field, Reason: reason})
	}
	sort.Slice(ve.Errors, func(i, j int) bool { return ve.Errors[i].Field < ve.Errors[j].Field })
	return ve
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the errors as a field -> reason map.
func (e *ValidationError) Fields() map[string]string {
	out := make(map[string]string, len(e.Errors))
	for _, fe := range e.Errors {
		out[fe.Field] = fe.Reason
	}
	return out
}
