package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fincontrol/backend/internal/application/adapter"
	"github.com/fincontrol/backend/internal/domain/entity"
	"github.com/fincontrol/backend/internal/integration/persistence"
	"github.com/fincontrol/backend/test/mock"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// fixture wires the eligibility gate against a fresh database.
type fixture struct {
	db         *gorm.DB
	userRepo   adapter.UserRepository
	reportRepo adapter.ReportRepository
	recordRepo adapter.RecordRepository
	clock      *mock.Clock
	gate       *CanGenerateReportUseCase
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()
	db := mock.NewTestDB(t)
	f := &fixture{
		db:         db,
		userRepo:   persistence.NewUserRepository(db),
		reportRepo: persistence.NewReportRepository(db),
		recordRepo: persistence.NewRecordRepository(db),
		clock:      mock.NewClock(now),
	}
	f.gate = NewCanGenerateReportUseCase(f.userRepo, f.reportRepo, f.recordRepo, f.clock)
	return f
}

func (f *fixture) seedUser(t *testing.T, ctx context.Context, plan entity.Plan, reportType entity.ReportType) *entity.User {
	t.Helper()
	user := entity.NewUser("premium@example.com", "Maria", "hash")
	user.Plan = plan
	user.ReportType = reportType
	if err := f.userRepo.Create(ctx, user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func (f *fixture) seedRecords(t *testing.T, ctx context.Context, userID uuid.UUID, count int, day time.Time) {
	t.Helper()
	for i := 0; i < count; i++ {
		record := entity.NewRecord(userID, decimal.NewFromInt(10), entity.RecordTypeSaida, "Mercado", "", "", nil, day)
		if err := f.recordRepo.Create(ctx, record); err != nil {
			t.Fatalf("failed to seed record: %v", err)
		}
	}
}

func TestCanGenerateReportUseCase(t *testing.T) {
	ctx := context.Background()
	now := date(2025, time.June, 15)

	t.Run("non premium plan is blocked first", func(t *testing.T) {
		f := newFixture(t, now)
		user := f.seedUser(t, ctx, entity.PlanEssencial, entity.ReportTypeMensal)

		gate, err := f.gate.Execute(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gate.Allowed {
			t.Error("expected not allowed")
		}
		if gate.Reason != ReasonPlanRequired {
			t.Errorf("expected reason %s, got %s", ReasonPlanRequired, gate.Reason)
		}
		if !gate.BlocksCreation {
			t.Error("plan rejection must block creation")
		}
	})

	t.Run("unconfigured report type is blocked", func(t *testing.T) {
		f := newFixture(t, now)
		user := f.seedUser(t, ctx, entity.PlanPremium, entity.ReportTypeNenhum)

		gate, err := f.gate.Execute(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gate.Reason != ReasonTypeNotConfigured {
			t.Errorf("expected reason %s, got %s", ReasonTypeNotConfigured, gate.Reason)
		}
		if !gate.BlocksCreation {
			t.Error("type rejection must block creation")
		}
	})

	t.Run("cooldown blocks within 24 hours and carries its end", func(t *testing.T) {
		f := newFixture(t, now)
		user := f.seedUser(t, ctx, entity.PlanPremium, entity.ReportTypeMensal)
		f.seedRecords(t, ctx, user.ID, 10, date(2025, time.June, 10))

		requestedAt := now.Add(-6 * time.Hour)
		previous := entity.NewReport(user.ID, entity.ReportTypeMensal, requestedAt, true, []string{user.Email})
		if err := f.reportRepo.Create(ctx, previous); err != nil {
			t.Fatalf("failed to seed report: %v", err)
		}

		gate, err := f.gate.Execute(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gate.Reason != ReasonCooldownActive {
			t.Errorf("expected reason %s, got %s", ReasonCooldownActive, gate.Reason)
		}
		if gate.CooldownEndsAt == nil {
			t.Fatal("expected cooldown end timestamp")
		}
		want := requestedAt.Add(ReportCooldown)
		if !gate.CooldownEndsAt.Equal(want) {
			t.Errorf("expected cooldown end %v, got %v", want, *gate.CooldownEndsAt)
		}
	})

	t.Run("a non-quota attempt also arms the cooldown", func(t *testing.T) {
		f := newFixture(t, now)
		user := f.seedUser(t, ctx, entity.PlanPremium, entity.ReportTypeMensal)
		f.seedRecords(t, ctx, user.ID, 10, date(2025, time.June, 10))

		attempt := entity.NewReport(user.ID, entity.ReportTypeMensal, now.Add(-time.Hour), false, []string{user.Email})
		if err := f.reportRepo.Create(ctx, attempt); err != nil {
			t.Fatalf("failed to seed attempt: %v", err)
		}

		gate, err := f.gate.Execute(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gate.Reason != ReasonCooldownActive {
			t.Errorf("expected reason %s, got %s", ReasonCooldownActive, gate.Reason)
		}
	})

	t.Run("monthly quota blocks the fourth counted request", func(t *testing.T) {
		f := newFixture(t, now)
		user := f.seedUser(t, ctx, entity.PlanPremium, entity.ReportTypeMensal)
		f.seedRecords(t, ctx, user.ID, 10, date(2025, time.June, 10))

		for day := 1; day <= 3; day++ {
			rep := entity.NewReport(user.ID, entity.ReportTypeMensal, date(2025, time.June, day), true, []string{user.Email})
			if err := f.reportRepo.Create(ctx, rep); err != nil {
				t.Fatalf("failed to seed report: %v", err)
			}
		}

		gate, err := f.gate.Execute(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gate.Reason != ReasonQuotaExceeded {
			t.Errorf("expected reason %s, got %s", ReasonQuotaExceeded, gate.Reason)
		}
		if gate.Limit != MaxMonthlyReports || gate.Current != MaxMonthlyReports {
			t.Errorf("expected limit/current %d/%d, got %d/%d",
				MaxMonthlyReports, MaxMonthlyReports, gate.Limit, gate.Current)
		}
	})

	t.Run("non-counting attempts never consume quota", func(t *testing.T) {
		f := newFixture(t, now)
		user := f.seedUser(t, ctx, entity.PlanPremium, entity.ReportTypeMensal)
		f.seedRecords(t, ctx, user.ID, 10, date(2025, time.June, 10))

		for day := 1; day <= 5; day++ {
			rep := entity.NewReport(user.ID, entity.ReportTypeMensal, date(2025, time.June, day), false, []string{user.Email})
			if err := f.reportRepo.Create(ctx, rep); err != nil {
				t.Fatalf("failed to seed attempt: %v", err)
			}
		}

		gate, err := f.gate.Execute(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !gate.Allowed {
			t.Errorf("expected allowed despite attempts, got reason %s", gate.Reason)
		}
	})

	t.Run("too little data is a soft rejection", func(t *testing.T) {
		f := newFixture(t, now)
		user := f.seedUser(t, ctx, entity.PlanPremium, entity.ReportTypeMensal)
		// 4 old records: below both thresholds.
		f.seedRecords(t, ctx, user.ID, 4, date(2025, time.January, 10))

		gate, err := f.gate.Execute(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gate.Reason != ReasonInsufficientData {
			t.Errorf("expected reason %s, got %s", ReasonInsufficientData, gate.Reason)
		}
		if gate.BlocksCreation {
			t.Error("insufficient data must not block recording the attempt")
		}
	})

	t.Run("ten records overall are sufficient even when old", func(t *testing.T) {
		f := newFixture(t, now)
		user := f.seedUser(t, ctx, entity.PlanPremium, entity.ReportTypeMensal)
		f.seedRecords(t, ctx, user.ID, 10, date(2024, time.June, 10))

		gate, err := f.gate.Execute(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !gate.Allowed {
			t.Errorf("expected allowed, got reason %s", gate.Reason)
		}
	})

	t.Run("five recent records are sufficient on their own", func(t *testing.T) {
		f := newFixture(t, now)
		user := f.seedUser(t, ctx, entity.PlanPremium, entity.ReportTypeMensal)
		f.seedRecords(t, ctx, user.ID, 5, date(2025, time.June, 10))

		gate, err := f.gate.Execute(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !gate.Allowed {
			t.Errorf("expected allowed, got reason %s", gate.Reason)
		}
	})
}
