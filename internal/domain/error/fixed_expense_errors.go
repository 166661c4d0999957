package error

import "errors"

// Fixed expense domain errors.
var (
	// ErrFixedExpenseNotFound is returned when a fixed expense template does not exist.
	ErrFixedExpenseNotFound = errors.New("fixed expense not found")

	// ErrInvalidFixedExpenseAmount is returned when the template amount is not strictly positive.
	ErrInvalidFixedExpenseAmount = errors.New("invalid fixed expense amount")

	// ErrInvalidFixedExpenseDay is returned when the scheduling day is outside 1-31.
	ErrInvalidFixedExpenseDay = errors.New("day must be between 1 and 31")

	// ErrFixedExpenseAlreadyPaid is returned when the template already has a payment in the month.
	ErrFixedExpenseAlreadyPaid = errors.New("fixed expense already paid for this month")

	// ErrInvalidYearMonth is returned when a month is not formatted as YYYY-MM.
	ErrInvalidYearMonth = errors.New("invalid month, expected YYYY-MM")
)

// FixedExpenseErrorCode defines error codes for fixed expense errors.
// Format: FXE-XXYYYY where XX is category and YYYY is specific error.
type FixedExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeFixedExpenseNotFound           FixedExpenseErrorCode = "FXE-010001"
	ErrCodeInvalidFixedExpenseAmount      FixedExpenseErrorCode = "FXE-010002"
	ErrCodeInvalidFixedExpenseDay         FixedExpenseErrorCode = "FXE-010003"
	ErrCodeFixedExpenseAlreadyPaid        FixedExpenseErrorCode = "FXE-010004"
	ErrCodeInvalidYearMonth               FixedExpenseErrorCode = "FXE-010005"
	ErrCodeFixedExpenseEmptyDescription   FixedExpenseErrorCode = "FXE-010006"
	ErrCodeInvalidPaymentDate             FixedExpenseErrorCode = "FXE-010007"
	ErrCodeFixedExpenseDescriptionTooLong FixedExpenseErrorCode = "FXE-010008"

	// Internal errors (99XXXX)
	ErrCodeFixedExpenseInternalError FixedExpenseErrorCode = "FXE-990001"
)

// FixedExpenseError represents a fixed expense error with code and message.
type FixedExpenseError struct {
	Code    FixedExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FixedExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FixedExpenseError) Unwrap() error {
	return e.Err
}

// NewFixedExpenseError creates a new FixedExpenseError with the given code and message.
func NewFixedExpenseError(code FixedExpenseErrorCode, message string, err error) *FixedExpenseError {
	return &FixedExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
