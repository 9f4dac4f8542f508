// Package error defines domain-specific errors for the PocketFin application.
package error

import "errors"

// Recurring transaction domain errors.
var (
	// ErrRecurringNotFound is returned when a recurring transaction is not found.
	ErrRecurringNotFound = errors.New("recurring transaction not found")

	// ErrNotAuthorizedToModifyRecurring is returned when user is not authorized to modify a recurring transaction.
	ErrNotAuthorizedToModifyRecurring = errors.New("not authorized to modify recurring transaction")

	// ErrInvalidRecurringFrequency is returned when the frequency is invalid.
	ErrInvalidRecurringFrequency = errors.New("invalid recurring frequency")
)

// RecurringErrorCode defines error codes for recurring transaction errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecurringErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeRecurringNotFound         RecurringErrorCode = "REC-010001"
	ErrCodeNotAuthorizedRecurring    RecurringErrorCode = "REC-010002"
	ErrCodeInvalidRecurringFrequency RecurringErrorCode = "REC-010003"
	ErrCodeMissingRecurringFields    RecurringErrorCode = "REC-010004"
)

// RecurringError represents a recurring transaction error with code and message.
type RecurringError struct {
	Code    RecurringErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecurringError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecurringError) Unwrap() error {
	return e.Err
}

// NewRecurringError creates a new RecurringError with the given code and message.
func NewRecurringError(code RecurringErrorCode, message string, err error) *RecurringError {
	return &RecurringError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
