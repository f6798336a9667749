// Package finance contains the financial KPI/aggregation engine.
package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincontrol/backend/internal/application/adapter"
	"github.com/fincontrol/backend/internal/domain/entity"
)

const trailingMeanMonths = 6

var oneHundred = decimal.NewFromInt(100)

// GetKPIsInput represents the caller's view filter. A date range only takes
// effect when both bounds are present.
type GetKPIsInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.RecordType
	Category  *string
}

// GetKPIsUseCase computes the dashboard KPIs for a user. Most metrics come
// from the filtered record set; the trailing monthly mean and the
// period-over-period variances come from the user's full record set, so they
// stay stable no matter what view filter is active.
type GetKPIsUseCase struct {
	recordRepo adapter.RecordRepository
	clock      adapter.Clock
}

// NewGetKPIsUseCase creates a new GetKPIsUseCase instance.
func NewGetKPIsUseCase(recordRepo adapter.RecordRepository, clock adapter.Clock) *GetKPIsUseCase {
	return &GetKPIsUseCase{
		recordRepo: recordRepo,
		clock:      clock,
	}
}

// Execute computes the KPI set. Nothing is cached; every call recomputes from
// the record store.
func (uc *GetKPIsUseCase) Execute(ctx context.Context, input GetKPIsInput) (*entity.FinanceKPIs, error) {
	filtered, err := uc.recordRepo.FindByFilter(ctx, adapter.RecordFilter{
		UserID:    input.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Type:      input.Type,
		Category:  input.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load filtered records: %w", err)
	}

	all, err := uc.recordRepo.FindByFilter(ctx, adapter.RecordFilter{UserID: input.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	var totalInflow, totalOutflow decimal.Decimal
	var inflowCount, outflowCount int64
	for _, record := range filtered {
		if record.Type == entity.RecordTypeEntrada {
			totalInflow = totalInflow.Add(record.Amount)
			inflowCount++
		} else {
			totalOutflow = totalOutflow.Add(record.Amount)
			outflowCount++
		}
	}

	profit := totalInflow.Sub(totalOutflow)

	margin := decimal.Zero
	if totalInflow.IsPositive() {
		margin = profit.Div(totalInflow).Mul(oneHundred)
	}

	avgOutflow := decimal.Zero
	if outflowCount > 0 {
		avgOutflow = totalOutflow.Div(decimal.NewFromInt(outflowCount))
	}
	avgInflow := decimal.Zero
	if inflowCount > 0 {
		avgInflow = totalInflow.Div(decimal.NewFromInt(inflowCount))
	}

	now := uc.clock.Now().UTC()
	monthlyMean := uc.trailingMonthlyMean(all, now)

	currentOutflow, previousOutflow := uc.periodOutflows(all, input, now)
	absoluteVariation := currentOutflow.Sub(previousOutflow)
	percentVariation := decimal.Zero
	if previousOutflow.IsPositive() {
		percentVariation = absoluteVariation.Div(previousOutflow).Mul(oneHundred)
	}

	return &entity.FinanceKPIs{
		Balance:           profit,
		TotalInflow:       totalInflow,
		TotalOutflow:      totalOutflow,
		NetProfit:         profit,
		NetMargin:         margin,
		AvgOutflowTicket:  avgOutflow,
		AvgInflowTicket:   avgInflow,
		MonthlyMean:       monthlyMean,
		MonthlyVariation:  percentVariation,
		OutflowVariation:  percentVariation,
		AbsoluteVariation: absoluteVariation,
		TransactionCount:  len(filtered),
	}, nil
}

// trailingMonthlyMean averages outflows over the last six calendar months
// ("this month" through five months back). The divisor is always six: months
// with no data contribute zero rather than being excluded, so a sparse history
// does not inflate the baseline.
func (uc *GetKPIsUseCase) trailingMonthlyMean(records []*entity.Record, now time.Time) decimal.Decimal {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	windowStart := monthStart.AddDate(0, -(trailingMeanMonths - 1), 0)
	windowEnd := monthStart.AddDate(0, 1, 0)

	var total decimal.Decimal
	for _, record := range records {
		if record.Type != entity.RecordTypeSaida {
			continue
		}
		date := record.TransactionDate
		if date.Before(windowStart) || !date.Before(windowEnd) {
			continue
		}
		total = total.Add(record.Amount)
	}

	return total.Div(decimal.NewFromInt(trailingMeanMonths))
}

// periodOutflows sums outflows for the current comparison period and the
// immediately preceding one. With an explicit date filter the previous period
// spans the same number of days, ending the day before the current start;
// without one it is simply last calendar month versus this calendar month.
// Both sums run over the full record set: the previous period lies outside the
// caller's filter by definition.
func (uc *GetKPIsUseCase) periodOutflows(records []*entity.Record, input GetKPIsInput, now time.Time) (current, previous decimal.Decimal) {
	var curStart, curEnd, prevStart, prevEnd time.Time

	if input.StartDate != nil && input.EndDate != nil {
		curStart = dayStart(*input.StartDate)
		curEnd = dayStart(*input.EndDate)
		days := int(curEnd.Sub(curStart).Hours()/24) + 1
		prevEnd = curStart.AddDate(0, 0, -1)
		prevStart = prevEnd.AddDate(0, 0, -(days - 1))
	} else {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		curStart = monthStart
		curEnd = monthStart.AddDate(0, 1, -1)
		prevStart = monthStart.AddDate(0, -1, 0)
		prevEnd = monthStart.AddDate(0, 0, -1)
	}

	current = sumOutflowsBetween(records, curStart, curEnd)
	previous = sumOutflowsBetween(records, prevStart, prevEnd)
	return current, previous
}

// sumOutflowsBetween sums outflow amounts with transaction dates in [start, end].
func sumOutflowsBetween(records []*entity.Record, start, end time.Time) decimal.Decimal {
	var total decimal.Decimal
	for _, record := range records {
		if record.Type != entity.RecordTypeSaida {
			continue
		}
		date := record.TransactionDate
		if date.Before(start) || date.After(end) {
			continue
		}
		total = total.Add(record.Amount)
	}
	return total
}

// dayStart normalizes a timestamp to UTC midnight.
func dayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
