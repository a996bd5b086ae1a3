package interfaces

import (
	"errors"
	"fmt"
)

// ErrPersistenceFailure matches every StoreError via errors.Is.
var ErrPersistenceFailure = errors.New("persistence failure")

// StoreError describes a failed read or write of a persisted collection.
type StoreError struct {
	Op     string
	Entity string
	ID     string
	Err    error
}

func NewStoreError(op, entity, id string, err error) *StoreError {
	return &StoreError{Op: op, Entity: entity, ID: id, Err: err}
}

func (e *StoreError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Entity, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == ErrPersistenceFailure
}
