// Package errs defines the error taxonomy shared by all resource
// controllers: validation, not-found, conflict, and store failures.
// Handlers translate these into HTTP status codes.
package errs

import "fmt"

// ValidationError reports one or more violated input rules.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 1 {
		return e.Details[0]
	}
	return fmt.Sprintf("validation failed: %d violations", len(e.Details))
}

// NotFoundError means no document matched the request.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// ConflictError reports a uniqueness or singleton violation.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// StoreError wraps a failed database operation.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error during %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func Validation(details ...string) *ValidationError {
	return &ValidationError{Details: details}
}

func NotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

func Conflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func Store(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}
