package error

import "errors"

// Recurrence domain errors.
var (
	// ErrInvalidInterval is returned when a recurrence interval is unrecognized.
	// This is fatal to a generation run: silently skipping it would corrupt the series.
	ErrInvalidInterval = errors.New("invalid recurrence interval")

	// ErrInvalidDuration is returned when a recurrence duration is unrecognized.
	ErrInvalidDuration = errors.New("invalid recurrence duration")
)

// RecurrenceErrorCode defines error codes for recurrence errors.
type RecurrenceErrorCode string

const (
	ErrCodeInvalidInterval RecurrenceErrorCode = "RCR-010001"
	ErrCodeInvalidDuration RecurrenceErrorCode = "RCR-010002"
)

// RecurrenceError represents a recurrence error with code and message.
type RecurrenceError struct {
	Code    RecurrenceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecurrenceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecurrenceError) Unwrap() error {
	return e.Err
}

// NewRecurrenceError creates a new RecurrenceError with the given code and message.
func NewRecurrenceError(code RecurrenceErrorCode, message string, err error) *RecurrenceError {
	return &RecurrenceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
