package service

import (
	"errors"
	"fmt"
)

// Common service errors. Domain sentinels (domain.ErrInvalidDate and friends)
// pass through unchanged inside ReadingServiceError and are matched with
// errors.Is.
var (
	// ErrInvalidParams indicates fortune-cycle parameters outside their
	// accepted range. API layer should map this to HTTP 500; it is a
	// configuration fault, not a client one.
	ErrInvalidParams = errors.New("invalid reading parameters")

	// ErrNilDependency indicates a required constructor dependency was nil.
	ErrNilDependency = errors.New("required dependency is nil")
)

// ReadingServiceError is a custom error type for reading service errors.
type ReadingServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ReadingServiceError.
func (e *ReadingServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("reading service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("reading service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ReadingServiceError) Unwrap() error {
	return e.Err
}

// NewReadingServiceError creates a new ReadingServiceError.
func NewReadingServiceError(operation, message string, err error) *ReadingServiceError {
	return &ReadingServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
