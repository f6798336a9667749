package finance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincontrol/backend/internal/domain/entity"
	domainerror "github.com/fincontrol/backend/internal/domain/error"
	"github.com/fincontrol/backend/test/mock"
)

func TestAdjustBalanceUseCase(t *testing.T) {
	ctx := context.Background()
	today := date(2025, time.June, 15)

	t.Run("creates an inflow adjustment when the target is above the balance", func(t *testing.T) {
		repo := newRecordRepo(t)
		uc := NewAdjustBalanceUseCase(repo, mock.NewClock(today))
		userID := uuid.New()

		seedRecord(t, ctx, repo, userID, 1000, entity.RecordTypeEntrada, "Vendas", date(2025, time.June, 1))
		seedRecord(t, ctx, repo, userID, 200, entity.RecordTypeSaida, "Aluguel", date(2025, time.June, 2))

		output, err := uc.Execute(ctx, AdjustBalanceInput{
			UserID:        userID,
			TargetBalance: decimal.NewFromInt(1000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Record.Type != entity.RecordTypeEntrada {
			t.Errorf("expected entrada adjustment, got %s", output.Record.Type)
		}
		if !output.Record.Amount.Equal(decimal.NewFromInt(200)) {
			t.Errorf("expected amount 200, got %s", output.Record.Amount)
		}
		if output.Record.Category != AdjustmentCategory {
			t.Errorf("expected category %q, got %q", AdjustmentCategory, output.Record.Category)
		}
		if output.Record.Classification == nil || *output.Record.Classification != entity.ClassificationAjusteSaldo {
			t.Error("expected ajuste_saldo classification")
		}
		if !output.Record.TransactionDate.Equal(today) {
			t.Errorf("expected adjustment dated today, got %v", output.Record.TransactionDate)
		}

		if !output.Adjustment.PreviousBalance.Equal(decimal.NewFromInt(800)) {
			t.Errorf("expected previous balance 800, got %s", output.Adjustment.PreviousBalance)
		}
		if !output.Adjustment.Difference.Equal(decimal.NewFromInt(200)) {
			t.Errorf("expected difference 200, got %s", output.Adjustment.Difference)
		}
	})

	t.Run("creates an outflow adjustment when the target is below the balance", func(t *testing.T) {
		repo := newRecordRepo(t)
		uc := NewAdjustBalanceUseCase(repo, mock.NewClock(today))
		userID := uuid.New()

		seedRecord(t, ctx, repo, userID, 1000, entity.RecordTypeEntrada, "Vendas", date(2025, time.June, 1))

		output, err := uc.Execute(ctx, AdjustBalanceInput{
			UserID:        userID,
			TargetBalance: decimal.NewFromInt(700),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Record.Type != entity.RecordTypeSaida {
			t.Errorf("expected saida adjustment, got %s", output.Record.Type)
		}
		if !output.Record.Amount.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected amount 300, got %s", output.Record.Amount)
		}
		if !output.Adjustment.Difference.Equal(decimal.NewFromInt(-300)) {
			t.Errorf("expected difference -300, got %s", output.Adjustment.Difference)
		}
	})

	t.Run("sub-cent difference needs no adjustment", func(t *testing.T) {
		repo := newRecordRepo(t)
		uc := NewAdjustBalanceUseCase(repo, mock.NewClock(today))
		userID := uuid.New()

		seedRecord(t, ctx, repo, userID, 800, entity.RecordTypeEntrada, "Vendas", date(2025, time.June, 1))

		_, err := uc.Execute(ctx, AdjustBalanceInput{
			UserID:        userID,
			TargetBalance: decimal.NewFromFloat(800.005),
		})
		if !errors.Is(err, domainerror.ErrNoAdjustmentNeeded) {
			t.Errorf("expected ErrNoAdjustmentNeeded, got %v", err)
		}

		// A full cent is a real difference again.
		_, err = uc.Execute(ctx, AdjustBalanceInput{
			UserID:        userID,
			TargetBalance: decimal.NewFromFloat(800.02),
		})
		if err != nil {
			t.Errorf("expected one-cent difference to be adjustable, got %v", err)
		}
	})

	t.Run("fourth adjustment in a month is rejected with the limit code", func(t *testing.T) {
		repo := newRecordRepo(t)
		uc := NewAdjustBalanceUseCase(repo, mock.NewClock(today))
		userID := uuid.New()

		targets := []int64{100, 200, 300}
		for _, target := range targets {
			if _, err := uc.Execute(ctx, AdjustBalanceInput{
				UserID:        userID,
				TargetBalance: decimal.NewFromInt(target),
			}); err != nil {
				t.Fatalf("adjustment to %d failed: %v", target, err)
			}
		}

		_, err := uc.Execute(ctx, AdjustBalanceInput{
			UserID:        userID,
			TargetBalance: decimal.NewFromInt(400),
		})
		if !errors.Is(err, domainerror.ErrAdjustmentLimitReached) {
			t.Fatalf("expected ErrAdjustmentLimitReached, got %v", err)
		}

		var finErr *domainerror.FinanceError
		if !errors.As(err, &finErr) {
			t.Fatalf("expected FinanceError, got %T", err)
		}
		if finErr.Code != domainerror.ErrCodeAdjustmentLimitReached {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeAdjustmentLimitReached, finErr.Code)
		}
		if finErr.Limit != MaxMonthlyAdjustments || finErr.Current != MaxMonthlyAdjustments {
			t.Errorf("expected limit/current %d/%d, got %d/%d",
				MaxMonthlyAdjustments, MaxMonthlyAdjustments, finErr.Limit, finErr.Current)
		}
	})

	t.Run("the cap resets on a new month", func(t *testing.T) {
		repo := newRecordRepo(t)
		clock := mock.NewClock(today)
		uc := NewAdjustBalanceUseCase(repo, clock)
		userID := uuid.New()

		for _, target := range []int64{100, 200, 300} {
			if _, err := uc.Execute(ctx, AdjustBalanceInput{
				UserID:        userID,
				TargetBalance: decimal.NewFromInt(target),
			}); err != nil {
				t.Fatalf("adjustment to %d failed: %v", target, err)
			}
		}

		clock.Set(date(2025, time.July, 1))

		if _, err := uc.Execute(ctx, AdjustBalanceInput{
			UserID:        userID,
			TargetBalance: decimal.NewFromInt(400),
		}); err != nil {
			t.Errorf("expected adjustment in a fresh month to succeed, got %v", err)
		}
	})
}
