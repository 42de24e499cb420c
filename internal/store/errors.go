package store

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName rejects task names that are empty or whitespace-only.
	ErrEmptyName = errors.New("task name must not be empty")
	// ErrNotFound marks operations referencing an unknown task id.
	ErrNotFound = errors.New("task not found")
)

type OpError struct {
	Op  string
	ID  string
	Err error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID != "" {
		return fmt.Sprintf("%s task %s: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("%s task: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapTaskErr(op, id string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, ID: id, Err: err}
}
