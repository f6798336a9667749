package error

import (
	"errors"
	"time"
)

// Report domain errors. These are expected, user-facing business conditions,
// not systemic failures.
var (
	// ErrReportPlanRequired is returned when the user's plan does not include reports.
	ErrReportPlanRequired = errors.New("report generation requires the premium plan")

	// ErrReportTypeNotConfigured is returned when the user has no report type set.
	ErrReportTypeNotConfigured = errors.New("report type not configured")

	// ErrReportCooldownActive is returned when a report was requested within the last 24 hours.
	ErrReportCooldownActive = errors.New("report cooldown active")

	// ErrReportQuotaExceeded is returned when the monthly report quota is exhausted.
	ErrReportQuotaExceeded = errors.New("monthly report quota exceeded")

	// ErrInsufficientReportData is returned when the user has too few records for
	// a meaningful report. This failure still records the attempt.
	ErrInsufficientReportData = errors.New("insufficient data for report")
)

// ReportErrorCode defines error codes for report errors.
type ReportErrorCode string

const (
	ErrCodeReportPlanRequired      ReportErrorCode = "RPT-010001"
	ErrCodeReportTypeNotConfigured ReportErrorCode = "RPT-010002"
	ErrCodeReportCooldownActive    ReportErrorCode = "RPT-010003"
	ErrCodeReportQuotaExceeded     ReportErrorCode = "RPT-010004"
	ErrCodeInsufficientReportData  ReportErrorCode = "RPT-010005"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error

	// CooldownEndsAt is set on cooldown rejections.
	CooldownEndsAt *time.Time
	// Limit and Current are set on quota rejections.
	Limit   int
	Current int
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
