package recurrence

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincontrol/backend/internal/application/adapter"
	"github.com/fincontrol/backend/internal/domain/entity"
	domainerror "github.com/fincontrol/backend/internal/domain/error"
)

// CreateRecurrentRecordsInput represents the input for recurring record creation.
type CreateRecurrentRecordsInput struct {
	UserID         uuid.UUID
	Amount         decimal.Decimal
	Type           entity.RecordType
	Category       string
	Source         string
	Destination    string
	Classification *entity.Classification
	StartDate      time.Time
	Interval       entity.RecurrenceInterval
	Duration       entity.RecurrenceDuration
}

// CreateRecurrentRecordsOutput represents the output of recurring record creation.
type CreateRecurrentRecordsOutput struct {
	Records           []*entity.Record
	RecurrenceGroupID uuid.UUID
	Count             int
}

// CreateRecurrentRecordsUseCase creates the full occurrence set of a recurring
// definition as persisted records sharing one group id.
type CreateRecurrentRecordsUseCase struct {
	recordRepo adapter.RecordRepository
	clock      adapter.Clock
}

// NewCreateRecurrentRecordsUseCase creates a new CreateRecurrentRecordsUseCase instance.
func NewCreateRecurrentRecordsUseCase(recordRepo adapter.RecordRepository, clock adapter.Clock) *CreateRecurrentRecordsUseCase {
	return &CreateRecurrentRecordsUseCase{
		recordRepo: recordRepo,
		clock:      clock,
	}
}

// Execute generates and persists all occurrences of the series in one batch.
func (uc *CreateRecurrentRecordsUseCase) Execute(ctx context.Context, input CreateRecurrentRecordsInput) (*CreateRecurrentRecordsOutput, error) {
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

	// isInfinite comes from the duration enum and nothing else: the buffer
	// maintenance logic keys off this exact flag.
	isInfinite := input.Duration == entity.DurationIndeterminado

	dates, err := GenerateRecurrenceDates(dayStart(input.StartDate), input.Interval, input.Duration)
	if err != nil {
		return nil, err
	}

	groupID := uuid.New()
	interval := input.Interval
	today := dayStart(uc.clock.Now())

	records := make([]*entity.Record, len(dates))
	for i, date := range dates {
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
		record.RecurrenceGroupID = &groupID
		record.RecurrenceInterval = &interval
		record.IsInfinite = isInfinite
		record.IsFuture = date.After(today)
		records[i] = record
	}

	if err := uc.recordRepo.CreateBatch(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to create recurring records: %w", err)
	}

	slog.Info("Created recurring records",
		"userID", input.UserID,
		"groupID", groupID,
		"interval", interval,
		"duration", input.Duration,
		"count", len(records),
	)

	return &CreateRecurrentRecordsOutput{
		Records:           records,
		RecurrenceGroupID: groupID,
		Count:             len(records),
	}, nil
}
