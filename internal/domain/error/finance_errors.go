package error

import (
	"errors"
	"fmt"
)

// Finance domain errors.
var (
	// ErrNoAdjustmentNeeded is returned when the declared target balance already
	// matches the computed balance within the monetary epsilon.
	ErrNoAdjustmentNeeded = errors.New("no balance adjustment needed")

	// ErrAdjustmentLimitReached is returned when the monthly balance adjustment
	// cap has been exhausted.
	ErrAdjustmentLimitReached = errors.New("monthly adjustment limit reached")
)

// FinanceErrorCode defines error codes for finance errors.
type FinanceErrorCode string

const (
	ErrCodeNoAdjustmentNeeded FinanceErrorCode = "FIN-010001"

	// ErrCodeAdjustmentLimitReached is the wire code consumed by the frontend to
	// render the precise limit message.
	ErrCodeAdjustmentLimitReached FinanceErrorCode = "LIMITE_AJUSTE_ATINGIDO"
)

// FinanceError represents a finance error with code and message.
type FinanceError struct {
	Code    FinanceErrorCode
	Message string
	Err     error

	// Limit and Current are populated on adjustment-cap rejections so the
	// caller can render "3 of 3 used" style messages.
	Limit   int
	Current int
}

// Error implements the error interface.
func (e *FinanceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FinanceError) Unwrap() error {
	return e.Err
}

// NewFinanceError creates a new FinanceError with the given code and message.
func NewFinanceError(code FinanceErrorCode, message string, err error) *FinanceError {
	return &FinanceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewAdjustmentLimitError creates the policy-rejection error for the monthly
// balance adjustment cap, carrying the limit and the current count.
func NewAdjustmentLimitError(limit, current int) *FinanceError {
	return &FinanceError{
		Code:    ErrCodeAdjustmentLimitReached,
		Message: fmt.Sprintf("monthly balance adjustment limit reached (%d of %d)", current, limit),
		Err:     ErrAdjustmentLimitReached,
		Limit:   limit,
		Current: current,
	}
}
