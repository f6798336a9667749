package finance

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

const (
	// MaxMonthlyAdjustments caps balance adjustments per user per calendar
	// month. Unconstrained manual overrides would let users fabricate history
	// and distort every trend chart.
	MaxMonthlyAdjustments = 3

	// AdjustmentCategory is the sentinel category of adjustment records.
	AdjustmentCategory = "Ajuste de Saldo"

	// AdjustmentCounterparty is the synthetic counterparty on both sides of an
	// adjustment record.
	AdjustmentCounterparty = "Ajuste Manual"
)

// adjustmentEpsilon guards against floating-point near-equality: differences
// below one cent are treated as "already balanced".
var adjustmentEpsilon = decimal.NewFromFloat(0.01)

// AdjustBalanceInput represents the input for a balance adjustment.
type AdjustBalanceInput struct {
	UserID        uuid.UUID
	TargetBalance decimal.Decimal
}

// AdjustmentSummary describes the reconciliation that was applied.
type AdjustmentSummary struct {
	PreviousBalance decimal.Decimal   `json:"previousBalance"`
	TargetBalance   decimal.Decimal   `json:"targetBalance"`
	Difference      decimal.Decimal   `json:"difference"`
	Type            entity.RecordType `json:"tipo"`
}

// AdjustBalanceOutput represents the output of a balance adjustment.
type AdjustBalanceOutput struct {
	Message    string            `json:"message"`
	Record     *entity.Record    `json:"record"`
	Adjustment AdjustmentSummary `json:"adjustment"`
}

// AdjustBalanceUseCase reconciles a declared target balance against the
// computed running balance by creating a synthetic adjustment record.
type AdjustBalanceUseCase struct {
	recordRepo adapter.RecordRepository
	clock      adapter.Clock
}

// NewAdjustBalanceUseCase creates a new AdjustBalanceUseCase instance.
func NewAdjustBalanceUseCase(recordRepo adapter.RecordRepository, clock adapter.Clock) *AdjustBalanceUseCase {
	return &AdjustBalanceUseCase{
		recordRepo: recordRepo,
		clock:      clock,
	}
}

// Execute computes the user's true global balance from all records, then
// creates one adjustment record for the difference. The monthly cap check and
// the insert run inside a single transaction so two concurrent requests cannot
// both squeeze under the cap.
func (uc *AdjustBalanceUseCase) Execute(ctx context.Context, input AdjustBalanceInput) (*AdjustBalanceOutput, error) {
	records, err := uc.recordRepo.FindByFilter(ctx, adapter.RecordFilter{UserID: input.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	var currentBalance decimal.Decimal
	for _, record := range records {
		if record.Type == entity.RecordTypeEntrada {
			currentBalance = currentBalance.Add(record.Amount)
		} else {
			currentBalance = currentBalance.Sub(record.Amount)
		}
	}

	difference := input.TargetBalance.Sub(currentBalance)
	if difference.Abs().LessThan(adjustmentEpsilon) {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeNoAdjustmentNeeded,
			"balance already matches the requested value",
			domainerror.ErrNoAdjustmentNeeded,
		)
	}

	recordType := entity.RecordTypeSaida
	if difference.IsPositive() {
		recordType = entity.RecordTypeEntrada
	}

	now := uc.clock.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonthStart := monthStart.AddDate(0, 1, 0)
	classification := entity.ClassificationAjusteSaldo

	var created *entity.Record
	err = uc.recordRepo.WithinTransaction(ctx, func(txRepo adapter.RecordRepository) error {
		count, err := txRepo.CountByFilter(ctx, adapter.RecordFilter{
			UserID:         input.UserID,
			Classification: &classification,
			StartDate:      &monthStart,
			BeforeDate:     &nextMonthStart,
		})
		if err != nil {
			return fmt.Errorf("failed to count adjustments this month: %w", err)
		}
		if count >= MaxMonthlyAdjustments {
			return domainerror.NewAdjustmentLimitError(MaxMonthlyAdjustments, int(count))
		}

		record := entity.NewRecord(
			input.UserID,
			difference.Abs(),
			recordType,
			AdjustmentCategory,
			AdjustmentCounterparty,
			AdjustmentCounterparty,
			&classification,
			dayStart(now),
		)
		created = record
		return txRepo.Create(ctx, record)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Applied balance adjustment",
		"userID", input.UserID,
		"previousBalance", currentBalance,
		"targetBalance", input.TargetBalance,
		"difference", difference,
	)

	return &AdjustBalanceOutput{
		Message: "Saldo ajustado com sucesso",
		Record:  created,
		Adjustment: AdjustmentSummary{
			PreviousBalance: currentBalance,
			TargetBalance:   input.TargetBalance,
			Difference:      difference,
			Type:            recordType,
		},
	}, nil
}
