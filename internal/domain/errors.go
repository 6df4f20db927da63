package domain

import "fmt"

// ValidationError reports a client-supplied value that breaks a business rule.
// It carries the field the message belongs to so handlers can render
// field-level errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports a lookup for a record that does not exist.
type NotFoundError struct {
	Resource string
	ID       any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Resource, e.ID)
}

// ConflictError reports an operation against a record already in a terminal
// state. The state is left unchanged.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ExternalServiceError wraps a failure from an outbound collaborator. The
// primary operation it followed may already be committed.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

var (
	ErrNoInventory     = &ValidationError{Field: "inventory", Message: "inventory must be greater than 0"}
	ErrAlreadyReturned = &ConflictError{Message: "The book has already been returned."}
)
