package alert

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincontrol/backend/internal/application/adapter"
	"github.com/fincontrol/backend/internal/application/usecase/finance"
	"github.com/fincontrol/backend/internal/domain/entity"
	"github.com/fincontrol/backend/internal/integration/persistence"
	"github.com/fincontrol/backend/test/mock"
)

// fakeAlertService captures the request and returns canned alerts.
type fakeAlertService struct {
	available bool
	request   *adapter.AlertRequest
	alerts    []*adapter.Alert
	err       error
}

func (s *fakeAlertService) IsAvailable() bool { return s.available }

func (s *fakeAlertService) GenerateAlerts(_ context.Context, request adapter.AlertRequest) ([]*adapter.Alert, error) {
	s.request = &request
	return s.alerts, s.err
}

func newAlertFixture(t *testing.T, service adapter.AlertService) (*GenerateAlertsUseCase, adapter.UserRepository, adapter.RecordRepository) {
	t.Helper()
	db := mock.NewTestDB(t)
	userRepo := persistence.NewUserRepository(db)
	recordRepo := persistence.NewRecordRepository(db)
	clock := mock.NewClock(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC))
	uc := NewGenerateAlertsUseCase(
		finance.NewGetKPIsUseCase(recordRepo, clock),
		finance.NewGetExpenseDistributionUseCase(recordRepo),
		userRepo,
		service,
	)
	return uc, userRepo, recordRepo
}

func TestGenerateAlertsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the snapshot to the alert service", func(t *testing.T) {
		service := &fakeAlertService{
			available: true,
			alerts: []*adapter.Alert{
				{Severity: "atencao", Title: "Gastos altos", Message: "Aluguel domina as saidas"},
			},
		}
		uc, userRepo, recordRepo := newAlertFixture(t, service)

		user := entity.NewUser("maria@example.com", "Maria", "hash")
		if err := userRepo.Create(ctx, user); err != nil {
			t.Fatalf("failed to seed user: %v", err)
		}
		record := entity.NewRecord(user.ID, decimal.NewFromInt(300), entity.RecordTypeSaida,
			"Aluguel", "", "", nil, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
		if err := recordRepo.Create(ctx, record); err != nil {
			t.Fatalf("failed to seed record: %v", err)
		}

		alerts, err := uc.Execute(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(alerts) != 1 || alerts[0].Severity != "atencao" {
			t.Errorf("expected the service's alerts back, got %+v", alerts)
		}

		if service.request == nil {
			t.Fatal("expected the service to receive a request")
		}
		if service.request.UserName != "Maria" {
			t.Errorf("expected user name Maria, got %q", service.request.UserName)
		}
		if service.request.KPIs == nil || !service.request.KPIs.TotalOutflow.Equal(decimal.NewFromInt(300)) {
			t.Error("expected the KPI snapshot in the request")
		}
		if len(service.request.TopCategories) != 1 || service.request.TopCategories[0].Category != "Aluguel" {
			t.Errorf("expected the category breakdown in the request, got %+v", service.request.TopCategories)
		}
	})

	t.Run("unconfigured service yields no alerts", func(t *testing.T) {
		uc, userRepo, _ := newAlertFixture(t, &fakeAlertService{available: false})

		user := entity.NewUser("maria@example.com", "Maria", "hash")
		if err := userRepo.Create(ctx, user); err != nil {
			t.Fatalf("failed to seed user: %v", err)
		}

		alerts, err := uc.Execute(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(alerts) != 0 {
			t.Errorf("expected no alerts, got %d", len(alerts))
		}
	})

	t.Run("service failure degrades to an empty list", func(t *testing.T) {
		service := &fakeAlertService{available: true, err: errors.New("model overloaded")}
		uc, userRepo, _ := newAlertFixture(t, service)

		user := entity.NewUser("maria@example.com", "Maria", "hash")
		if err := userRepo.Create(ctx, user); err != nil {
			t.Fatalf("failed to seed user: %v", err)
		}

		alerts, err := uc.Execute(ctx, user.ID)
		if err != nil {
			t.Fatalf("alert failure must not fail the request, got %v", err)
		}
		if len(alerts) != 0 {
			t.Errorf("expected empty alerts on failure, got %d", len(alerts))
		}
	})
}
