package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// Domain errors.
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrEmptyDescription  = errors.New("description cannot be empty")
	ErrInvalidTaskID     = errors.New("task ID must be a positive integer")
	ErrInvalidListFormat = errors.New("list format must be table, json or yaml")
)

// ValidationError reports bad user input. No mutation happens when it is returned.
type ValidationError struct {
	Err   error  // Underlying sentinel (e.g. ErrEmptyDescription)
	Field string // Offending input field
	Value string // Offending input value
}

func (e *ValidationError) Error() string {
	if e.Field == "description" {
		return e.Err.Error()
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NotFoundError reports that no task exists with the given ID.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task not found: %d", e.ID)
}

// Is makes errors.Is(err, ErrTaskNotFound) hold for NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrTaskNotFound
}

// StorageError wraps a failure of the underlying database.
type StorageError struct {
	Err error
	Op  string // Operation that failed, e.g. "insert task"
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// FilesystemError reports that the data directory could not be created or accessed.
type FilesystemError struct {
	Err  error
	Path string
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("filesystem: %s: %v", e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}
