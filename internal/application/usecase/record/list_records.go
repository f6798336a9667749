package record

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fincontrol/backend/internal/application/adapter"
	"github.com/fincontrol/backend/internal/application/usecase/recurrence"
	"github.com/fincontrol/backend/internal/domain/entity"
)

// ListRecordsInput represents the filter for listing records.
type ListRecordsInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.RecordType
	Category  *string
}

// ListRecordsOutput represents the output of listing records.
type ListRecordsOutput struct {
	Records []*entity.Record
	Total   int
}

// ListRecordsUseCase serves a user's records. Before reading it runs the two
// opportunistic maintenance passes: the recurrence buffer extension and the
// is_future flag sync, so the data handed out is always consistent with today.
type ListRecordsUseCase struct {
	recordRepo   adapter.RecordRepository
	ensureBuffer *recurrence.EnsureRecurrenceBufferUseCase
	syncFlags    *recurrence.SyncFutureFlagsUseCase
}

// NewListRecordsUseCase creates a new ListRecordsUseCase instance.
func NewListRecordsUseCase(
	recordRepo adapter.RecordRepository,
	ensureBuffer *recurrence.EnsureRecurrenceBufferUseCase,
	syncFlags *recurrence.SyncFutureFlagsUseCase,
) *ListRecordsUseCase {
	return &ListRecordsUseCase{
		recordRepo:   recordRepo,
		ensureBuffer: ensureBuffer,
		syncFlags:    syncFlags,
	}
}

// Execute runs the maintenance passes and returns the filtered records.
// Maintenance failures are logged but never block the read: stale flags are a
// display issue, a failed listing is an outage.
func (uc *ListRecordsUseCase) Execute(ctx context.Context, input ListRecordsInput) (*ListRecordsOutput, error) {
	if _, err := uc.ensureBuffer.Execute(ctx, input.UserID); err != nil {
		slog.Error("Recurrence buffer maintenance failed", "userID", input.UserID, "error", err)
	}
	if _, err := uc.syncFlags.Execute(ctx, input.UserID); err != nil {
		slog.Error("is_future sync failed", "userID", input.UserID, "error", err)
	}

	records, err := uc.recordRepo.FindByFilter(ctx, adapter.RecordFilter{
		UserID:    input.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Type:      input.Type,
		Category:  input.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	return &ListRecordsOutput{
		Records: records,
		Total:   len(records),
	}, nil
}
