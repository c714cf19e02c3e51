package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a primary-key lookup matches no record.
var ErrNotFound = errors.New("record not found")

// StorageError wraps a failed store transaction. Failures are not retried
// by the core; individual puts and deletes are idempotent, so callers may
// safely retry the whole logical operation from scratch.
type StorageError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// WrapErr wraps a driver error as a StorageError, passing ErrNotFound
// through untouched so callers can match on it.
func WrapErr(op, collection string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) {
		return err
	}
	return &StorageError{Op: op, Collection: collection, Err: err}
}
