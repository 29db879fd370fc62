package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound             = errors.New("resource not found")
	ErrBillNotFound         = errors.New("bill not found")
	ErrExpenseNotFound      = errors.New("expense not found")
	ErrConfirmationRequired = errors.New("destructive action requires confirmation")
	ErrUnknownCollection    = errors.New("unknown ledger collection")
	ErrStorageUnavailable   = errors.New("ledger storage unavailable")
	ErrArchiveUnavailable   = errors.New("invoice archive is not configured")
	ErrInvalidEmail         = errors.New("invalid email address")
)

// ValidationError reports a rejected form field. The operation that returned
// it made no change.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ErrObjectNotFound is returned by object storage when a key is absent.
var ErrObjectNotFound = errors.New("object not found")
