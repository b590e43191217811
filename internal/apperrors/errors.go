package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrLinkage indicates a transaction is missing required linkage fields
// (owner, type, amount, reference) and may not produce ledger postings.
var ErrLinkage = errors.New("transaction linkage error")

// ErrReconciliation indicates a post-posting integrity check failed. The
// mutation that triggered it has been rolled back.
var ErrReconciliation = errors.New("ledger reconciliation failed")

// ErrConcurrency indicates a backing-store conflict (serialization failure,
// deadlock). Retryable by the caller; never auto-retried internally.
var ErrConcurrency = errors.New("concurrent modification conflict")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
// Repositories return these so handlers can map failures without inspecting
// driver errors.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates a 404 AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
