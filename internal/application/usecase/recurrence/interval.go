// Package recurrence contains the recurring-record generation and buffering engine.
package recurrence

import (
	"fmt"
	"time"

	"github.com/fincontrol/backend/internal/domain/entity"
	domainerror "github.com/fincontrol/backend/internal/domain/error"
)

const (
	// BatchSize is how many occurrences an open-ended series materializes per batch.
	BatchSize = 4

	// MinFutureItems is the buffer guard: an open-ended group with fewer future
	// occurrences than this gets extended by one batch.
	MinFutureItems = 2
)

// AdvanceDateByInterval returns the next occurrence date after the given one.
// Month and year steps use calendar arithmetic, so end-of-month dates follow
// standard calendar rollover (Jan 31 + 1 month lands in early March on
// non-leap years).
func AdvanceDateByInterval(date time.Time, interval entity.RecurrenceInterval) (time.Time, error) {
	switch interval {
	case entity.IntervalSemanal:
		return date.AddDate(0, 0, 7), nil
	case entity.IntervalMensal:
		return date.AddDate(0, 1, 0), nil
	case entity.IntervalTrimestral:
		return date.AddDate(0, 3, 0), nil
	case entity.IntervalSemestral:
		return date.AddDate(0, 6, 0), nil
	case entity.IntervalAnual:
		return date.AddDate(1, 0, 0), nil
	default:
		return time.Time{}, domainerror.NewRecurrenceError(
			domainerror.ErrCodeInvalidInterval,
			fmt.Sprintf("unrecognized recurrence interval %q", interval),
			domainerror.ErrInvalidInterval,
		)
	}
}

// CalculateEndDate returns the terminal date of a recurring series, or nil for
// an indefinite duration (the series has no terminus).
func CalculateEndDate(startDate time.Time, duration entity.RecurrenceDuration) (*time.Time, error) {
	switch duration {
	case entity.DurationTresMeses:
		end := startDate.AddDate(0, 3, 0)
		return &end, nil
	case entity.DurationSeisMeses:
		end := startDate.AddDate(0, 6, 0)
		return &end, nil
	case entity.DurationDozeMeses:
		end := startDate.AddDate(0, 12, 0)
		return &end, nil
	case entity.DurationIndeterminado:
		return nil, nil
	default:
		return nil, domainerror.NewRecurrenceError(
			domainerror.ErrCodeInvalidDuration,
			fmt.Sprintf("unrecognized recurrence duration %q", duration),
			domainerror.ErrInvalidDuration,
		)
	}
}

// dayStart normalizes a timestamp to UTC midnight. All date-only comparisons
// in this package go through it.
func dayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
