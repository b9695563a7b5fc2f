package engine

import (
	"errors"
	"fmt"
)

// ErrSlotUnreadable is wrapped by writes refused after a failed load.
var ErrSlotUnreadable = errors.New("saved state could not be read; refusing to overwrite it")

// ValidationError is bad input to a mutation. No state was changed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NotFoundError means an operation referenced an unknown habit or template.
type NotFoundError struct {
	Kind string // "habit" or "template"
	ID   int
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// PersistenceError reports a failed read or write of the durable slot.
// The in-memory state stays authoritative when it is returned from a mutation.
type PersistenceError struct {
	Op  string // "load" or "save"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s state: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
