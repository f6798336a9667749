package recurrence

import (
	"time"

	"github.com/fincontrol/backend/internal/domain/entity"
)

// GenerateRecurrenceDates turns a start date, interval and duration policy into
// the ordered occurrence dates of a series. The start date is always the first
// element.
//
// Finite durations advance until the next step would pass the end date, so the
// last date is always <= CalculateEndDate(start, duration); if the very first
// advance already overshoots, the sequence is just the start date. Indefinite
// durations materialize exactly BatchSize additional occurrences, the initial
// buffer of an unbounded series.
//
// The result is a fully materialized slice, not a stream: callers persist the
// whole batch atomically.
func GenerateRecurrenceDates(
	startDate time.Time,
	interval entity.RecurrenceInterval,
	duration entity.RecurrenceDuration,
) ([]time.Time, error) {
	dates := []time.Time{startDate}

	if duration == entity.DurationIndeterminado {
		current := startDate
		for i := 0; i < BatchSize; i++ {
			next, err := AdvanceDateByInterval(current, interval)
			if err != nil {
				return nil, err
			}
			dates = append(dates, next)
			current = next
		}
		return dates, nil
	}

	endDate, err := CalculateEndDate(startDate, duration)
	if err != nil {
		return nil, err
	}

	current := startDate
	for {
		next, err := AdvanceDateByInterval(current, interval)
		if err != nil {
			return nil, err
		}
		if next.After(*endDate) {
			break
		}
		dates = append(dates, next)
		current = next
	}

	return dates, nil
}
