// Package errs holds the failure taxonomy shared by every lifecycle.
//
// Callers discriminate with errors.Is against the sentinels below; the typed
// errors carry extra context and unwrap to their sentinel.
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrPermissionDenied       = errors.New("permission denied")
	ErrInvalidTransition      = errors.New("invalid transition")
	ErrNotFound               = errors.New("not found")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrValidation             = errors.New("validation error")
)

// TransitionError reports a status change that is not reachable from the
// entity's current status.
type TransitionError struct {
	Entity    string
	ID        string
	From      string
	Attempted string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition: %s %s cannot go from %s to %s", e.Entity, e.ID, e.From, e.Attempted)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// Transition builds a *TransitionError.
func Transition(entity, id, from, attempted string) error {
	return &TransitionError{Entity: entity, ID: id, From: from, Attempted: attempted}
}

// PermissionError names the role and action that were refused.
type PermissionError struct {
	Role   string
	Action string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: role %s may not %s", e.Role, e.Action)
}

func (e *PermissionError) Unwrap() error { return ErrPermissionDenied }

// NotFound wraps ErrNotFound with the entity kind and id.
func NotFound(entity, id string) error {
	return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
}

// Conflict wraps ErrConcurrentModification with the versions involved.
func Conflict(entity, id string, expected, actual int64) error {
	return fmt.Errorf("%s %s: expected version %d, found %d: %w", entity, id, expected, actual, ErrConcurrentModification)
}

// Invalid wraps ErrValidation with a field-level message.
func Invalid(field, msg string) error {
	return fmt.Errorf("%s: %s: %w", field, msg, ErrValidation)
}
