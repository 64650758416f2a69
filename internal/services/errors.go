package services

import (
	"errors"
	"fmt"
)

// ErrNotFound means the target application id has no matching record.
var ErrNotFound = errors.New("application not found")

// ValidationError names the field that failed validation on create or update.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

func requiredField(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "must not be empty"}
}

// StorageError wraps a failure from the backing store. The store never
// retries; retry policy belongs to the caller.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
