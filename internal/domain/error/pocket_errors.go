// Package error defines domain-specific errors for the PocketFin application.
package error

import "errors"

// Pocket domain errors.
var (
	// ErrPocketNotFound is returned when a pocket is not found in the system.
	ErrPocketNotFound = errors.New("pocket not found")

	// ErrNotAuthorizedToModifyPocket is returned when user is not authorized to modify a pocket.
	ErrNotAuthorizedToModifyPocket = errors.New("not authorized to modify pocket")

	// ErrCannotDeleteDefaultPocket is returned when attempting to delete the default pocket.
	ErrCannotDeleteDefaultPocket = errors.New("cannot delete the default pocket")

	// ErrNoDefaultPocket is returned when a user has no default pocket to fall back to.
	ErrNoDefaultPocket = errors.New("no default pocket")

	// ErrInvalidTransfer is returned when a transfer request is malformed
	// (same source and destination, or non-positive amount).
	ErrInvalidTransfer = errors.New("invalid transfer")

	// ErrInsufficientFunds is returned when a transfer would drive the source
	// pocket balance below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// PocketErrorCode defines error codes for pocket errors.
// Format: PKT-XXYYYY where XX is category and YYYY is specific error.
type PocketErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodePocketNotFound      PocketErrorCode = "PKT-010001"
	ErrCodeNotAuthorizedPocket PocketErrorCode = "PKT-010002"
	ErrCodeMissingPocketFields PocketErrorCode = "PKT-010003"

	// Deletion errors (02XXXX)
	ErrCodeCannotDeleteDefault PocketErrorCode = "PKT-020001"
	ErrCodeNoDefaultPocket     PocketErrorCode = "PKT-020002"

	// Transfer errors (03XXXX)
	ErrCodeInvalidTransfer   PocketErrorCode = "PKT-030001"
	ErrCodeInsufficientFunds PocketErrorCode = "PKT-030002"
)

// PocketError represents a pocket error with code and message.
type PocketError struct {
	Code    PocketErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PocketError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PocketError) Unwrap() error {
	return e.Err
}

// NewPocketError creates a new PocketError with the given code and message.
func NewPocketError(code PocketErrorCode, message string, err error) *PocketError {
	return &PocketError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
