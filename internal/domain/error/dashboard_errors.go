package error

import "errors"

// Dashboard domain errors.
var (
	// ErrMissingStartDate is returned when end_date is given without start_date.
	ErrMissingStartDate = errors.New("start_date is required")

	// ErrMissingEndDate is returned when start_date is given without end_date.
	ErrMissingEndDate = errors.New("end_date is required")

	// ErrInvalidDateFormat is returned when date format is invalid.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidPreset is returned when a range preset is unknown.
	ErrInvalidPreset = errors.New("preset must be: this_month, last_month, last_3_months, or this_year")

	// ErrInvalidMetric is returned when a comparison metric is unknown.
	ErrInvalidMetric = errors.New("invalid comparison metric")

	// ErrInvalidPeriod is returned when a comparison period cannot be resolved.
	ErrInvalidPeriod = errors.New("invalid comparison period")

	// ErrInvalidYears is returned when the year-over-year list is empty or malformed.
	ErrInvalidYears = errors.New("years must be a non-empty list of four digit years")

	// ErrInvalidGrouping is returned when a breakdown grouping is unknown.
	ErrInvalidGrouping = errors.New("group_by must be: category, method, known_methods, or cash")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingStartDate  DashboardErrorCode = "DSH-010001"
	ErrCodeMissingEndDate    DashboardErrorCode = "DSH-010002"
	ErrCodeInvalidPreset     DashboardErrorCode = "DSH-010003"
	ErrCodeInvalidMetric     DashboardErrorCode = "DSH-010004"
	ErrCodeInvalidPeriod     DashboardErrorCode = "DSH-010005"
	ErrCodeInvalidDateFormat DashboardErrorCode = "DSH-010006"
	ErrCodeInvalidYears      DashboardErrorCode = "DSH-010007"
	ErrCodeInvalidGrouping   DashboardErrorCode = "DSH-010008"
	ErrCodeInvalidType       DashboardErrorCode = "DSH-010009"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
