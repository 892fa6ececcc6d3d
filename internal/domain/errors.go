package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAgentNotFound is returned when no agent has the requested code.
	ErrAgentNotFound = errors.New("agent not found")
	// ErrInvalidStatus is matched by every *InvalidStatusError.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrMissingField is matched by every *MissingFieldError.
	ErrMissingField = errors.New("missing field")
)

// InvalidStatusError carries the rejected value and the accepted set.
type InvalidStatusError struct {
	Value string
	Valid []AgentStatus
}

func (e *InvalidStatusError) Error() string {
	names := make([]string, len(e.Valid))
	for i, s := range e.Valid {
		names[i] = string(s)
	}
	return fmt.Sprintf("invalid status %q (valid: %s)", e.Value, strings.Join(names, ", "))
}

func (e *InvalidStatusError) Is(target error) bool {
	return target == ErrInvalidStatus
}

// MissingFieldError names a required request field that was empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing %q", e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
