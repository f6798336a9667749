package recurrence

import (
	"errors"
	"testing"
	"time"

	"github.com/fincontrol/backend/internal/domain/entity"
	domainerror "github.com/fincontrol/backend/internal/domain/error"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestAdvanceDateByInterval(t *testing.T) {
	start := date(2025, time.January, 15)

	tests := []struct {
		name     string
		interval entity.RecurrenceInterval
		expected time.Time
	}{
		{"weekly adds seven days", entity.IntervalSemanal, date(2025, time.January, 22)},
		{"monthly adds one month", entity.IntervalMensal, date(2025, time.February, 15)},
		{"quarterly adds three months", entity.IntervalTrimestral, date(2025, time.April, 15)},
		{"semiannual adds six months", entity.IntervalSemestral, date(2025, time.July, 15)},
		{"annual adds one year", entity.IntervalAnual, date(2026, time.January, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AdvanceDateByInterval(start, tt.interval)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}

	t.Run("end of month follows calendar rollover", func(t *testing.T) {
		got, err := AdvanceDateByInterval(date(2025, time.January, 31), entity.IntervalMensal)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 2025 is not a leap year, so Jan 31 + 1 month rolls into March.
		if !got.Equal(date(2025, time.March, 3)) {
			t.Errorf("expected 2025-03-03, got %v", got)
		}
	})

	t.Run("unknown interval returns coded error", func(t *testing.T) {
		_, err := AdvanceDateByInterval(start, entity.RecurrenceInterval("quinzenal"))
		if err == nil {
			t.Fatal("expected error for unknown interval")
		}
		var recErr *domainerror.RecurrenceError
		if !errors.As(err, &recErr) {
			t.Fatalf("expected RecurrenceError, got %T", err)
		}
		if recErr.Code != domainerror.ErrCodeInvalidInterval {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidInterval, recErr.Code)
		}
	})
}

func TestCalculateEndDate(t *testing.T) {
	start := date(2025, time.January, 15)

	tests := []struct {
		name     string
		duration entity.RecurrenceDuration
		expected time.Time
	}{
		{"three months", entity.DurationTresMeses, date(2025, time.April, 15)},
		{"six months", entity.DurationSeisMeses, date(2025, time.July, 15)},
		{"twelve months", entity.DurationDozeMeses, date(2026, time.January, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateEndDate(start, tt.duration)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got == nil {
				t.Fatal("expected end date, got nil")
			}
			if !got.Equal(tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}

	t.Run("indefinite duration has no end date", func(t *testing.T) {
		got, err := CalculateEndDate(start, entity.DurationIndeterminado)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil end date, got %v", got)
		}
	})

	t.Run("unknown duration returns coded error", func(t *testing.T) {
		_, err := CalculateEndDate(start, entity.RecurrenceDuration("2_meses"))
		if err == nil {
			t.Fatal("expected error for unknown duration")
		}
		var recErr *domainerror.RecurrenceError
		if !errors.As(err, &recErr) {
			t.Fatalf("expected RecurrenceError, got %T", err)
		}
		if recErr.Code != domainerror.ErrCodeInvalidDuration {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidDuration, recErr.Code)
		}
	})
}
