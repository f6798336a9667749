package recurrence

import (
	"testing"
	"time"

	"github.com/fincontrol/backend/internal/domain/entity"
)

func TestGenerateRecurrenceDates(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		interval entity.RecurrenceInterval
		duration entity.RecurrenceDuration
		expected []time.Time
	}{
		{
			name:     "monthly over three months includes the end date",
			start:    date(2025, time.January, 15),
			interval: entity.IntervalMensal,
			duration: entity.DurationTresMeses,
			expected: []time.Time{
				date(2025, time.January, 15),
				date(2025, time.February, 15),
				date(2025, time.March, 15),
				date(2025, time.April, 15),
			},
		},
		{
			name:     "weekly over three months stops before the end date",
			start:    date(2025, time.January, 1),
			interval: entity.IntervalSemanal,
			duration: entity.DurationTresMeses,
			expected: []time.Time{
				date(2025, time.January, 1),
				date(2025, time.January, 8),
				date(2025, time.January, 15),
				date(2025, time.January, 22),
				date(2025, time.January, 29),
				date(2025, time.February, 5),
				date(2025, time.February, 12),
				date(2025, time.February, 19),
				date(2025, time.February, 26),
				date(2025, time.March, 5),
				date(2025, time.March, 12),
				date(2025, time.March, 19),
				date(2025, time.March, 26),
			},
		},
		{
			name:     "annual over three months yields only the start",
			start:    date(2025, time.January, 15),
			interval: entity.IntervalAnual,
			duration: entity.DurationTresMeses,
			expected: []time.Time{
				date(2025, time.January, 15),
			},
		},
		{
			name:     "semiannual over twelve months",
			start:    date(2025, time.March, 10),
			interval: entity.IntervalSemestral,
			duration: entity.DurationDozeMeses,
			expected: []time.Time{
				date(2025, time.March, 10),
				date(2025, time.September, 10),
				date(2026, time.March, 10),
			},
		},
		{
			name:     "indefinite materializes one batch beyond the start",
			start:    date(2025, time.January, 15),
			interval: entity.IntervalMensal,
			duration: entity.DurationIndeterminado,
			expected: []time.Time{
				date(2025, time.January, 15),
				date(2025, time.February, 15),
				date(2025, time.March, 15),
				date(2025, time.April, 15),
				date(2025, time.May, 15),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateRecurrenceDates(tt.start, tt.interval, tt.duration)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d dates, got %d: %v", len(tt.expected), len(got), got)
			}
			for i, want := range tt.expected {
				if !got[i].Equal(want) {
					t.Errorf("date %d: expected %v, got %v", i, want, got[i])
				}
			}
		})
	}

	t.Run("invalid interval propagates error", func(t *testing.T) {
		_, err := GenerateRecurrenceDates(date(2025, time.January, 1), "diario", entity.DurationTresMeses)
		if err == nil {
			t.Fatal("expected error for unknown interval")
		}
	})
}
