// Package record contains finance record CRUD use cases.
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

// CreateRecordInput represents the input for manual record creation.
type CreateRecordInput struct {
	UserID          uuid.UUID
	Amount          decimal.Decimal
	Type            entity.RecordType
	Category        string
	Source          string
	Destination     string
	Classification  *entity.Classification
	TransactionDate time.Time
}

// CreateRecordOutput represents the output of record creation.
type CreateRecordOutput struct {
	Record *entity.Record
}

// CreateRecordUseCase handles manual (non-recurring) record creation.
type CreateRecordUseCase struct {
	recordRepo adapter.RecordRepository
	clock      adapter.Clock
}

// NewCreateRecordUseCase creates a new CreateRecordUseCase instance.
func NewCreateRecordUseCase(recordRepo adapter.RecordRepository, clock adapter.Clock) *CreateRecordUseCase {
	return &CreateRecordUseCase{
		recordRepo: recordRepo,
		clock:      clock,
	}
}

// Execute validates and persists the record.
func (uc *CreateRecordUseCase) Execute(ctx context.Context, input CreateRecordInput) (*CreateRecordOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidRecordAmount,
		)
	}
	if !entity.IsValidRecordType(input.Type) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordType,
			"record type must be 'entrada' or 'saida'",
			domainerror.ErrInvalidRecordType,
		)
	}
	if input.Classification != nil && !entity.IsValidClassification(*input.Classification) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidClassification,
			"unknown record classification",
			domainerror.ErrInvalidClassification,
		)
	}

	date := dayStart(input.TransactionDate)
	record := entity.NewRecord(
		input.UserID,
		input.Amount,
		input.Type,
		input.Category,
		input.Source,
		input.Destination,
		input.Classification,
		date,
	)
	record.IsFuture = date.After(dayStart(uc.clock.Now()))

	if err := uc.recordRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	return &CreateRecordOutput{Record: record}, nil
}

// dayStart normalizes a timestamp to UTC midnight.
func dayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
