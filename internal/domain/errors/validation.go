package errors

import (
	"net/http"
	"sort"
	"strings"
)

// ValidationError carries per-field messages for a rejected payload or query.
type ValidationError struct {
	fields map[string][]string
}

// NewValidationError creates an empty ValidationError.
func NewValidationError() *ValidationError {
	return &ValidationError{fields: make(map[string][]string)}
}

// Add records a message for field.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.fields[field] = append(e.fields[field], message)

	return e
}

// HasErrors reports whether any field failed.
func (e *ValidationError) HasErrors() bool {
	return len(e.fields) > 0
}

// Fields returns the failing field names in order.
func (e *ValidationError) Fields() []string {
	names := make([]string, 0, len(e.fields))
	for name := range e.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.fields))
	for _, name := range e.Fields() {
		parts = append(parts, name+": "+strings.Join(e.fields[name], ", "))
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// Is lets errors.Is match ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

func (e *ValidationError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

func (e *ValidationError) Message() string {
	return ErrValidationFailed.Message()
}

// Details maps each field to its messages.
func (e *ValidationError) Details() any {
	return e.fields
}
