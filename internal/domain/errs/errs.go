// Package errs holds the error kinds shared by the order and report workflows.
//
// Callers match kinds with errors.Is; the HTTP boundary maps each kind to a status code.
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidState           = errors.New("invalid state")
	ErrIllegalStateTransition = errors.New("illegal state transition")
	ErrIllegalAccess          = errors.New("illegal access")
	ErrTechnicianUnavailable  = errors.New("technician unavailable")
	ErrDatabase               = errors.New("database error")
	ErrUnknownState           = errors.New("unknown state")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrAlreadyExists          = errors.New("already exists")
)

// InvalidState builds a validation failure with a field-specific message.
func InvalidState(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}

// IllegalAccess builds an access denial carrying the reason.
func IllegalAccess(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIllegalAccess, fmt.Sprintf(format, args...))
}

// UnknownState reports a persisted status string that maps to no known state.
func UnknownState(raw string) error {
	return fmt.Errorf("%w: %q", ErrUnknownState, raw)
}

// IllegalTransitionError is returned when an action is not permitted from the current state.
type IllegalTransitionError struct {
	State  string
	Action string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s from %s", ErrIllegalStateTransition, e.Action, e.State)
}

func (e *IllegalTransitionError) Is(target error) bool {
	return target == ErrIllegalStateTransition
}

// DatabaseError wraps a store failure. The cause stays reachable through errors.Unwrap.
type DatabaseError struct {
	Op  string
	Err error
}

func NewDatabaseError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &DatabaseError{Op: op, Err: err}
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrDatabase, e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error { return e.Err }

func (e *DatabaseError) Is(target error) bool {
	return target == ErrDatabase
}

// TechnicianUnavailable wraps an optional directory failure cause.
func TechnicianUnavailable(cause error) error {
	if cause == nil {
		return ErrTechnicianUnavailable
	}
	return fmt.Errorf("%w: %w", ErrTechnicianUnavailable, cause)
}
