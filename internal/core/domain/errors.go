package domain

import (
	"errors"
	"strings"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidAssignee = errors.New("invalid assignee")
)

const (
	RuleRequired     = "required"
	RuleMin          = "min"
	RuleMax          = "max"
	RuleOneOf        = "oneof"
	RuleAfterOrEqual = "after_or_equal"
	RuleExists       = "exists"
)

type FieldViolation struct {
	Field string
	Rule  string
}

// ValidationError collects every field constraint a payload broke.
type ValidationError struct {
	Violations []FieldViolation
}

func NewValidationError(field, rule string) *ValidationError {
	return &ValidationError{Violations: []FieldViolation{{Field: field, Rule: rule}}}
}

func (e *ValidationError) Add(field, rule string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Rule: rule})
}

// OrNil returns nil when nothing was collected so callers can return it
// directly as an error.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Violations) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Rule)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
