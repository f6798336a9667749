package recurrence

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fincontrol/backend/internal/application/adapter"
)

// SyncFutureFlagsUseCase reconciles the cached is_future flag of every record
// of a user against wall-clock "today". The flag's only legal transition is
// "today crosses the record's date", which nothing observes until a sync pass
// runs. This is cache correction, not a structural change, and no other code
// path may set the flag from "now".
type SyncFutureFlagsUseCase struct {
	recordRepo adapter.RecordRepository
	clock      adapter.Clock
}

// NewSyncFutureFlagsUseCase creates a new SyncFutureFlagsUseCase instance.
func NewSyncFutureFlagsUseCase(recordRepo adapter.RecordRepository, clock adapter.Clock) *SyncFutureFlagsUseCase {
	return &SyncFutureFlagsUseCase{
		recordRepo: recordRepo,
		clock:      clock,
	}
}

// Execute runs both correction passes and returns the total rows touched.
// Running it twice in a row touches zero rows the second time.
func (uc *SyncFutureFlagsUseCase) Execute(ctx context.Context, userID uuid.UUID) (int64, error) {
	today := dayStart(uc.clock.Now())

	markedFuture, err := uc.recordRepo.BulkSetIsFuture(ctx, userID, today, true)
	if err != nil {
		return 0, fmt.Errorf("failed to mark future records: %w", err)
	}

	markedPast, err := uc.recordRepo.BulkSetIsFuture(ctx, userID, today, false)
	if err != nil {
		return markedFuture, fmt.Errorf("failed to mark past records: %w", err)
	}

	total := markedFuture + markedPast
	if total > 0 {
		slog.Debug("Synced is_future flags",
			"userID", userID,
			"markedFuture", markedFuture,
			"markedPast", markedPast,
		)
	}

	return total, nil
}
