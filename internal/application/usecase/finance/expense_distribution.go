package finance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincontrol/backend/internal/application/adapter"
	"github.com/fincontrol/backend/internal/domain/entity"
)

// GetExpenseDistributionInput represents the filter for the distribution view.
type GetExpenseDistributionInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Category  *string
}

// GetExpenseDistributionUseCase groups filtered outflows by category. Balance
// adjustment records are excluded: a manual balance override must never show
// up as a spending category.
type GetExpenseDistributionUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewGetExpenseDistributionUseCase creates a new GetExpenseDistributionUseCase instance.
func NewGetExpenseDistributionUseCase(recordRepo adapter.RecordRepository) *GetExpenseDistributionUseCase {
	return &GetExpenseDistributionUseCase{
		recordRepo: recordRepo,
	}
}

// Execute returns categories sorted descending by amount, each with its share
// of the adjustment-excluded total.
func (uc *GetExpenseDistributionUseCase) Execute(ctx context.Context, input GetExpenseDistributionInput) ([]entity.CategoryShare, error) {
	outflow := entity.RecordTypeSaida
	records, err := uc.recordRepo.FindByFilter(ctx, adapter.RecordFilter{
		UserID:    input.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Category:  input.Category,
		Type:      &outflow,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load outflow records: %w", err)
	}

	totals := make(map[string]decimal.Decimal)
	var grandTotal decimal.Decimal
	for _, record := range records {
		if record.Classification != nil && *record.Classification == entity.ClassificationAjusteSaldo {
			continue
		}
		totals[record.Category] = totals[record.Category].Add(record.Amount)
		grandTotal = grandTotal.Add(record.Amount)
	}

	shares := make([]entity.CategoryShare, 0, len(totals))
	for category, amount := range totals {
		percentage := decimal.Zero
		if grandTotal.IsPositive() {
			percentage = amount.Div(grandTotal).Mul(oneHundred)
		}
		shares = append(shares, entity.CategoryShare{
			Category:   category,
			Amount:     amount,
			Percentage: percentage,
		})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Amount.Equal(shares[j].Amount) {
			return shares[i].Category < shares[j].Category
		}
		return shares[i].Amount.GreaterThan(shares[j].Amount)
	})

	return shares, nil
}
