package record

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fincontrol/backend/internal/application/adapter"
	domainerror "github.com/fincontrol/backend/internal/domain/error"
)

// DeleteRecordInput represents the input for record deletion. With
// DeleteFuture set on a recurring record, the record and every later
// occurrence of the same group are removed.
type DeleteRecordInput struct {
	UserID       uuid.UUID
	RecordID     uuid.UUID
	DeleteFuture bool
}

// DeleteRecordOutput reports how many records were removed.
type DeleteRecordOutput struct {
	DeletedCount int64
}

// DeleteRecordUseCase handles record deletion, including the
// "this and all future occurrences" cascade for recurring records.
type DeleteRecordUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewDeleteRecordUseCase creates a new DeleteRecordUseCase instance.
func NewDeleteRecordUseCase(recordRepo adapter.RecordRepository) *DeleteRecordUseCase {
	return &DeleteRecordUseCase{
		recordRepo: recordRepo,
	}
}

// Execute deletes the record after an ownership check.
func (uc *DeleteRecordUseCase) Execute(ctx context.Context, input DeleteRecordInput) (*DeleteRecordOutput, error) {
	record, err := uc.recordRepo.FindByID(ctx, input.RecordID)
	if err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotFound,
			"record not found",
			domainerror.ErrRecordNotFound,
		)
	}
	if record.UserID != input.UserID {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeNotAuthorizedRecord,
			"record does not belong to user",
			domainerror.ErrNotAuthorizedToModifyRecord,
		)
	}

	if input.DeleteFuture && record.RecurrenceGroupID != nil {
		deleted, err := uc.recordRepo.DeleteGroupFrom(ctx, *record.RecurrenceGroupID, record.TransactionDate)
		if err != nil {
			return nil, fmt.Errorf("failed to delete recurring records: %w", err)
		}
		slog.Info("Deleted recurring records from date",
			"userID", input.UserID,
			"groupID", *record.RecurrenceGroupID,
			"deleted", deleted,
		)
		return &DeleteRecordOutput{DeletedCount: deleted}, nil
	}

	if err := uc.recordRepo.Delete(ctx, record.ID); err != nil {
		return nil, fmt.Errorf("failed to delete record: %w", err)
	}

	return &DeleteRecordOutput{DeletedCount: 1}, nil
}
