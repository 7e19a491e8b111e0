package jsonbuf

import (
	"errors"
	"fmt"
)

// Core error definitions. Every write failure wraps one of these
// sentinels, so callers can classify with errors.Is.
var (
	// Capacity errors
	ErrBufferFull = errors.New("buffer capacity exceeded")

	// Structural errors
	ErrDepthLimit        = errors.New("nesting depth limit exceeded")
	ErrNotInObject       = errors.New("key outside of object")
	ErrContainerMismatch = errors.New("container kind mismatch")
	ErrNoOpenContainer   = errors.New("no open container")
	ErrRootComplete      = errors.New("root value already written")
	ErrUnclosedContainer = errors.New("unclosed container")

	// Formatting errors
	ErrNonFiniteNumber = errors.New("non-finite number")
)

// WriteError represents a write failure with essential context.
type WriteError struct {
	Op      string // Operation that failed
	Offset  int    // Write cursor at the time of failure
	Message string // Human-readable error message
	Err     error  // Underlying sentinel error
}

func (e *WriteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("jsonbuf: %s failed at offset %d: %s", e.Op, e.Offset, e.Message)
	}
	return fmt.Sprintf("jsonbuf: %s failed at offset %d: %v", e.Op, e.Offset, e.Err)
}

// Unwrap returns the underlying error for error chain support.
func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is.
func (e *WriteError) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*WriteError); ok {
		return e.Op == targetErr.Op && errors.Is(e.Err, targetErr.Err)
	}
	return errors.Is(e.Err, target)
}
