package finance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincontrol/backend/internal/domain/entity"
)

func TestGetExpenseDistributionUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("groups outflows by category sorted by amount", func(t *testing.T) {
		repo := newRecordRepo(t)
		uc := NewGetExpenseDistributionUseCase(repo)
		userID := uuid.New()

		seedRecord(t, ctx, repo, userID, 300, entity.RecordTypeSaida, "Aluguel", date(2025, time.June, 1))
		seedRecord(t, ctx, repo, userID, 100, entity.RecordTypeSaida, "Internet", date(2025, time.June, 2))
		seedRecord(t, ctx, repo, userID, 100, entity.RecordTypeSaida, "Aluguel", date(2025, time.June, 3))
		// Inflows never show up in the distribution.
		seedRecord(t, ctx, repo, userID, 900, entity.RecordTypeEntrada, "Vendas", date(2025, time.June, 4))

		shares, err := uc.Execute(ctx, GetExpenseDistributionInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(shares) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(shares))
		}
		if shares[0].Category != "Aluguel" || !shares[0].Amount.Equal(decimal.NewFromInt(400)) {
			t.Errorf("expected Aluguel 400 first, got %s %s", shares[0].Category, shares[0].Amount)
		}
		if shares[1].Category != "Internet" || !shares[1].Amount.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected Internet 100 second, got %s %s", shares[1].Category, shares[1].Amount)
		}
		if !shares[0].Percentage.Equal(decimal.NewFromInt(80)) {
			t.Errorf("expected 80%%, got %s", shares[0].Percentage)
		}
		if !shares[1].Percentage.Equal(decimal.NewFromInt(20)) {
			t.Errorf("expected 20%%, got %s", shares[1].Percentage)
		}
	})

	t.Run("balance adjustments are excluded", func(t *testing.T) {
		repo := newRecordRepo(t)
		uc := NewGetExpenseDistributionUseCase(repo)
		userID := uuid.New()

		seedRecord(t, ctx, repo, userID, 300, entity.RecordTypeSaida, "Aluguel", date(2025, time.June, 1))

		adjustment := entity.NewRecord(userID, decimal.NewFromInt(500), entity.RecordTypeSaida,
			AdjustmentCategory, AdjustmentCounterparty, AdjustmentCounterparty, nil, date(2025, time.June, 2))
		classification := entity.ClassificationAjusteSaldo
		adjustment.Classification = &classification
		if err := repo.Create(ctx, adjustment); err != nil {
			t.Fatalf("failed to seed adjustment: %v", err)
		}

		shares, err := uc.Execute(ctx, GetExpenseDistributionInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(shares) != 1 {
			t.Fatalf("expected 1 category, got %d", len(shares))
		}
		if shares[0].Category != "Aluguel" {
			t.Errorf("expected only Aluguel, got %s", shares[0].Category)
		}
		// The adjustment is also excluded from the percentage base.
		if !shares[0].Percentage.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected 100%%, got %s", shares[0].Percentage)
		}
	})

	t.Run("equal amounts fall back to alphabetical order", func(t *testing.T) {
		repo := newRecordRepo(t)
		uc := NewGetExpenseDistributionUseCase(repo)
		userID := uuid.New()

		seedRecord(t, ctx, repo, userID, 100, entity.RecordTypeSaida, "Mercado", date(2025, time.June, 1))
		seedRecord(t, ctx, repo, userID, 100, entity.RecordTypeSaida, "Internet", date(2025, time.June, 2))

		shares, err := uc.Execute(ctx, GetExpenseDistributionInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(shares) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(shares))
		}
		if shares[0].Category != "Internet" || shares[1].Category != "Mercado" {
			t.Errorf("expected alphabetical tie-break, got %s then %s", shares[0].Category, shares[1].Category)
		}
	})

	t.Run("date filter narrows the distribution", func(t *testing.T) {
		repo := newRecordRepo(t)
		uc := NewGetExpenseDistributionUseCase(repo)
		userID := uuid.New()

		seedRecord(t, ctx, repo, userID, 300, entity.RecordTypeSaida, "Aluguel", date(2025, time.June, 1))
		seedRecord(t, ctx, repo, userID, 100, entity.RecordTypeSaida, "Internet", date(2025, time.May, 1))

		start := date(2025, time.June, 1)
		end := date(2025, time.June, 30)
		shares, err := uc.Execute(ctx, GetExpenseDistributionInput{
			UserID:    userID,
			StartDate: &start,
			EndDate:   &end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(shares) != 1 || shares[0].Category != "Aluguel" {
			t.Fatalf("expected only June's Aluguel, got %+v", shares)
		}
	})
}
