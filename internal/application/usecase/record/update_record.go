package record

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincontrol/backend/internal/application/adapter"
	"github.com/fincontrol/backend/internal/domain/entity"
	domainerror "github.com/fincontrol/backend/internal/domain/error"
)

// UpdateRecordInput represents the input for record update. Nil pointers leave
// the corresponding field untouched.
type UpdateRecordInput struct {
	UserID          uuid.UUID
	RecordID        uuid.UUID
	Amount          *decimal.Decimal
	Type            *entity.RecordType
	Category        *string
	Source          *string
	Destination     *string
	Classification  *entity.Classification
	TransactionDate *time.Time
}

// UpdateRecordOutput represents the output of record update.
type UpdateRecordOutput struct {
	Record *entity.Record
}

// UpdateRecordUseCase handles direct record edits.
type UpdateRecordUseCase struct {
	recordRepo adapter.RecordRepository
	clock      adapter.Clock
}

// NewUpdateRecordUseCase creates a new UpdateRecordUseCase instance.
func NewUpdateRecordUseCase(recordRepo adapter.RecordRepository, clock adapter.Clock) *UpdateRecordUseCase {
	return &UpdateRecordUseCase{
		recordRepo: recordRepo,
		clock:      clock,
	}
}

// Execute applies the requested changes after an ownership check.
func (uc *UpdateRecordUseCase) Execute(ctx context.Context, input UpdateRecordInput) (*UpdateRecordOutput, error) {
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

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidRecordAmount,
				"amount must be greater than zero",
				domainerror.ErrInvalidRecordAmount,
			)
		}
		record.Amount = *input.Amount
	}
	if input.Type != nil {
		if !entity.IsValidRecordType(*input.Type) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidRecordType,
				"record type must be 'entrada' or 'saida'",
				domainerror.ErrInvalidRecordType,
			)
		}
		record.Type = *input.Type
	}
	if input.Category != nil {
		record.Category = *input.Category
	}
	if input.Source != nil {
		record.Source = *input.Source
	}
	if input.Destination != nil {
		record.Destination = *input.Destination
	}
	if input.Classification != nil {
		if !entity.IsValidClassification(*input.Classification) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidClassification,
				"unknown record classification",
				domainerror.ErrInvalidClassification,
			)
		}
		record.Classification = input.Classification
	}
	if input.TransactionDate != nil {
		date := dayStart(*input.TransactionDate)
		record.TransactionDate = date
		record.IsFuture = date.After(dayStart(uc.clock.Now()))
	}
	record.UpdatedAt = uc.clock.Now().UTC()

	if err := uc.recordRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	return &UpdateRecordOutput{Record: record}, nil
}
