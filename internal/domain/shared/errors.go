package shared

import (
	"fmt"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrInsufficientBalance = NewDomainError("INSUFFICIENT_BALANCE", "Insufficient balance available")
)

// ValidationError reports a single violated field rule. It is always
// recoverable by the caller: Field and Message are safe to return to
// the end user, Code is a 400-style machine code.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a field-level validation error with the
// default 400 machine code.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Code:    400,
	}
}

// ValidationErrors aggregates all rule violations found on an entity
// so callers can report every failing field at once.
type ValidationErrors []*ValidationError

// Error implements the error interface
func (e ValidationErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := ""
	for i, v := range e {
		if i > 0 {
			msg += "; "
		}
		msg += v.Error()
	}
	return msg
}

// First returns the first violation, or nil when empty
func (e ValidationErrors) First() *ValidationError {
	if len(e) == 0 {
		return nil
	}
	return e[0]
}

// IntegrityError reports a storage-layer constraint violation
// (uniqueness, foreign-key restrict, check constraint). The operation
// is rejected with no partial write; it is not a process failure.
type IntegrityError struct {
	Constraint string
	Op         string
	Err        error
}

// Error implements the error interface
func (e *IntegrityError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("%s: constraint %q violated: %v", e.Op, e.Constraint, e.Err)
	}
	return fmt.Sprintf("%s: integrity constraint violated: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/errors.As
func (e *IntegrityError) Unwrap() error {
	return e.Err
}
