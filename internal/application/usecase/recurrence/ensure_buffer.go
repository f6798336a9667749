package recurrence

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fincontrol/backend/internal/application/adapter"
	"github.com/fincontrol/backend/internal/domain/entity"
)

// EnsureRecurrenceBufferOutput reports what the maintenance pass did.
type EnsureRecurrenceBufferOutput struct {
	GroupsExtended int
	RecordsCreated int
}

// EnsureRecurrenceBufferUseCase lazily extends open-ended recurring series so
// that each keeps at least MinFutureItems occurrences ahead of today. It is
// meant to run opportunistically before serving a user's data, not on a
// schedule.
type EnsureRecurrenceBufferUseCase struct {
	recordRepo adapter.RecordRepository
	clock      adapter.Clock
}

// NewEnsureRecurrenceBufferUseCase creates a new EnsureRecurrenceBufferUseCase instance.
func NewEnsureRecurrenceBufferUseCase(recordRepo adapter.RecordRepository, clock adapter.Clock) *EnsureRecurrenceBufferUseCase {
	return &EnsureRecurrenceBufferUseCase{
		recordRepo: recordRepo,
		clock:      clock,
	}
}

// Execute runs the two-guard buffer check. Guard 1 is a cheap existence check
// that skips users with no open-ended series at all; guard 2 counts future
// occurrences per group, so the cost stays O(distinct infinite groups) rather
// than O(all records).
func (uc *EnsureRecurrenceBufferUseCase) Execute(ctx context.Context, userID uuid.UUID) (*EnsureRecurrenceBufferOutput, error) {
	output := &EnsureRecurrenceBufferOutput{}

	hasInfinite := true
	infiniteCount, err := uc.recordRepo.CountByFilter(ctx, adapter.RecordFilter{
		UserID:     userID,
		IsInfinite: &hasInfinite,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check for open-ended series: %w", err)
	}
	if infiniteCount == 0 {
		return output, nil
	}

	groupIDs, err := uc.recordRepo.FindInfiniteGroupIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list open-ended groups: %w", err)
	}

	today := dayStart(uc.clock.Now())

	for _, groupID := range groupIDs {
		groupID := groupID
		futureCount, err := uc.recordRepo.CountByFilter(ctx, adapter.RecordFilter{
			UserID:            userID,
			RecurrenceGroupID: &groupID,
			AfterDate:         &today,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to count future occurrences: %w", err)
		}
		if futureCount >= MinFutureItems {
			continue
		}

		created, err := uc.generateMoreRecurrences(ctx, groupID, today)
		if err != nil {
			return nil, err
		}
		if created > 0 {
			output.GroupsExtended++
			output.RecordsCreated += created
		}
	}

	if output.RecordsCreated > 0 {
		slog.Info("Extended recurrence buffer",
			"userID", userID,
			"groupsExtended", output.GroupsExtended,
			"recordsCreated", output.RecordsCreated,
		)
	}

	return output, nil
}

// generateMoreRecurrences appends one batch to the group, cloning the
// chronologically last record. A group with no last record or no recorded
// interval is malformed; extending it is silently skipped rather than failing
// the caller.
func (uc *EnsureRecurrenceBufferUseCase) generateMoreRecurrences(ctx context.Context, groupID uuid.UUID, today time.Time) (int, error) {
	last, err := uc.recordRepo.FindLastInGroup(ctx, groupID)
	if err != nil {
		return 0, fmt.Errorf("failed to find last record of group: %w", err)
	}
	if last == nil || last.RecurrenceInterval == nil {
		slog.Debug("Skipping malformed recurrence group", "groupID", groupID)
		return 0, nil
	}

	interval := *last.RecurrenceInterval
	current := last.TransactionDate

	records := make([]*entity.Record, 0, BatchSize)
	for i := 0; i < BatchSize; i++ {
		next, err := AdvanceDateByInterval(current, interval)
		if err != nil {
			return 0, err
		}

		record := entity.NewRecord(
			last.UserID,
			last.Amount,
			last.Type,
			last.Category,
			last.Source,
			last.Destination,
			last.Classification,
			next,
		)
		record.RecurrenceGroupID = &groupID
		record.RecurrenceInterval = &interval
		record.IsInfinite = true
		record.IsFuture = next.After(today)

		records = append(records, record)
		current = next
	}

	if err := uc.recordRepo.CreateBatch(ctx, records); err != nil {
		return 0, fmt.Errorf("failed to extend recurrence group: %w", err)
	}

	return len(records), nil
}
