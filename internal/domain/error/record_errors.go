// Package error defines domain-specific errors for the finance tracker.
package error

import "errors"

// Record domain errors.
var (
	// ErrRecordNotFound is returned when a finance record is not found.
	ErrRecordNotFound = errors.New("record not found")

	// ErrNotAuthorizedToModifyRecord is returned when a user tries to touch a record they do not own.
	ErrNotAuthorizedToModifyRecord = errors.New("not authorized to modify record")

	// ErrInvalidRecordType is returned when the record direction is neither entrada nor saida.
	ErrInvalidRecordType = errors.New("invalid record type")

	// ErrInvalidRecordAmount is returned when the record amount is not strictly positive.
	ErrInvalidRecordAmount = errors.New("invalid record amount")

	// ErrInvalidClassification is returned when the record classification is unknown.
	ErrInvalidClassification = errors.New("invalid record classification")
)

// RecordErrorCode defines error codes for record errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecordErrorCode string

const (
	ErrCodeRecordNotFound        RecordErrorCode = "REC-010001"
	ErrCodeNotAuthorizedRecord   RecordErrorCode = "REC-010002"
	ErrCodeInvalidRecordType     RecordErrorCode = "REC-010003"
	ErrCodeInvalidRecordAmount   RecordErrorCode = "REC-010004"
	ErrCodeInvalidClassification RecordErrorCode = "REC-010005"
)

// RecordError represents a record error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
