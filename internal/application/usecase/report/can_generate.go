// Package report contains report eligibility and request use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fincontrol/backend/internal/application/adapter"
	"github.com/fincontrol/backend/internal/domain/entity"
)

const (
	// MaxMonthlyReports caps quota-consuming report requests per calendar month.
	MaxMonthlyReports = 3

	// ReportCooldown is the minimum gap between two report requests.
	ReportCooldown = 24 * time.Hour

	// MinTotalRecords and MinRecentRecords define data sufficiency: a report
	// needs at least MinTotalRecords records overall, or MinRecentRecords
	// within the trailing RecentWindowDays.
	MinTotalRecords  = 10
	MinRecentRecords = 5
	RecentWindowDays = 30
)

// BlockReason identifies which eligibility check failed.
type BlockReason string

const (
	ReasonPlanRequired      BlockReason = "plano_insuficiente"
	ReasonTypeNotConfigured BlockReason = "tipo_nao_configurado"
	ReasonCooldownActive    BlockReason = "aguarde_24_horas"
	ReasonQuotaExceeded     BlockReason = "limite_mensal_atingido"
	ReasonInsufficientData  BlockReason = "dados_insuficientes"
)

// CanGenerateReportOutput is the structured eligibility verdict. When
// BlocksCreation is false (only the data-sufficiency failure), the caller
// still records the attempt so the user sees it, without consuming quota:
// too little data is a data problem, not an abuse problem.
type CanGenerateReportOutput struct {
	Allowed        bool
	Reason         BlockReason
	BlocksCreation bool
	CooldownEndsAt *time.Time
	Limit          int
	Current        int
}

// CanGenerateReportUseCase evaluates the report gates in strict order; the
// first failing check wins.
type CanGenerateReportUseCase struct {
	userRepo   adapter.UserRepository
	reportRepo adapter.ReportRepository
	recordRepo adapter.RecordRepository
	clock      adapter.Clock
}

// NewCanGenerateReportUseCase creates a new CanGenerateReportUseCase instance.
func NewCanGenerateReportUseCase(
	userRepo adapter.UserRepository,
	reportRepo adapter.ReportRepository,
	recordRepo adapter.RecordRepository,
	clock adapter.Clock,
) *CanGenerateReportUseCase {
	return &CanGenerateReportUseCase{
		userRepo:   userRepo,
		reportRepo: reportRepo,
		recordRepo: recordRepo,
		clock:      clock,
	}
}

// Execute runs the gates: plan, configured type, cooldown, monthly quota, data
// sufficiency.
func (uc *CanGenerateReportUseCase) Execute(ctx context.Context, userID uuid.UUID) (*CanGenerateReportOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if user.Plan != entity.PlanPremium {
		return &CanGenerateReportOutput{
			Reason:         ReasonPlanRequired,
			BlocksCreation: true,
		}, nil
	}

	if user.ReportType == entity.ReportTypeNenhum {
		return &CanGenerateReportOutput{
			Reason:         ReasonTypeNotConfigured,
			BlocksCreation: true,
		}, nil
	}

	now := uc.clock.Now().UTC()

	last, err := uc.reportRepo.FindLastByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load last report: %w", err)
	}
	if last != nil && now.Sub(last.RequestedAt) < ReportCooldown {
		cooldownEnd := last.RequestedAt.Add(ReportCooldown)
		return &CanGenerateReportOutput{
			Reason:         ReasonCooldownActive,
			BlocksCreation: true,
			CooldownEndsAt: &cooldownEnd,
		}, nil
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	counted, err := uc.reportRepo.CountQuotaInPeriod(ctx, userID, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to count reports this month: %w", err)
	}
	if counted >= MaxMonthlyReports {
		return &CanGenerateReportOutput{
			Reason:         ReasonQuotaExceeded,
			BlocksCreation: true,
			Limit:          MaxMonthlyReports,
			Current:        int(counted),
		}, nil
	}

	total, err := uc.recordRepo.CountByFilter(ctx, adapter.RecordFilter{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}
	windowStart := now.AddDate(0, 0, -RecentWindowDays)
	recent, err := uc.recordRepo.CountByFilter(ctx, adapter.RecordFilter{
		UserID:    userID,
		AfterDate: &windowStart,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count recent records: %w", err)
	}
	if total < MinTotalRecords && recent < MinRecentRecords {
		return &CanGenerateReportOutput{
			Reason:         ReasonInsufficientData,
			BlocksCreation: false,
		}, nil
	}

	return &CanGenerateReportOutput{Allowed: true}, nil
}
