package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fincontrol/backend/internal/application/adapter"
	"github.com/fincontrol/backend/internal/application/usecase/finance"
	"github.com/fincontrol/backend/internal/domain/entity"
	domainerror "github.com/fincontrol/backend/internal/domain/error"
)

// RequestReportOutput represents the output of a report request.
type RequestReportOutput struct {
	Report *entity.Report
}

// RequestReportUseCase runs the eligibility gate, persists the report request
// and ships the KPI snapshot to the external automation webhook, which owns
// rendering and delivery of the report document.
type RequestReportUseCase struct {
	canGenerate *CanGenerateReportUseCase
	getKPIs     *finance.GetKPIsUseCase
	userRepo    adapter.UserRepository
	reportRepo  adapter.ReportRepository
	dispatcher  adapter.ReportDispatcher
	mailer      adapter.ReportMailer
	clock       adapter.Clock
}

// NewRequestReportUseCase creates a new RequestReportUseCase instance.
func NewRequestReportUseCase(
	canGenerate *CanGenerateReportUseCase,
	getKPIs *finance.GetKPIsUseCase,
	userRepo adapter.UserRepository,
	reportRepo adapter.ReportRepository,
	dispatcher adapter.ReportDispatcher,
	mailer adapter.ReportMailer,
	clock adapter.Clock,
) *RequestReportUseCase {
	return &RequestReportUseCase{
		canGenerate: canGenerate,
		getKPIs:     getKPIs,
		userRepo:    userRepo,
		reportRepo:  reportRepo,
		dispatcher:  dispatcher,
		mailer:      mailer,
		clock:       clock,
	}
}

// Execute performs the report request. An insufficient-data rejection still
// records the attempt (not counting toward quota) before returning the error;
// every other rejection creates nothing.
func (uc *RequestReportUseCase) Execute(ctx context.Context, userID uuid.UUID) (*RequestReportOutput, error) {
	gate, err := uc.canGenerate.Execute(ctx, userID)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	now := uc.clock.Now().UTC()

	if !gate.Allowed {
		if !gate.BlocksCreation {
			attempt := entity.NewReport(userID, user.ReportType, now, false, []string{user.Email})
			if createErr := uc.reportRepo.Create(ctx, attempt); createErr != nil {
				return nil, fmt.Errorf("failed to record report attempt: %w", createErr)
			}
		}
		return nil, gateError(gate)
	}

	kpis, err := uc.getKPIs.Execute(ctx, finance.GetKPIsInput{UserID: userID})
	if err != nil {
		return nil, err
	}

	rep := entity.NewReport(userID, user.ReportType, now, true, []string{user.Email})
	if err := uc.reportRepo.Create(ctx, rep); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	// Dispatch and confirmation are best-effort: the report row stands either
	// way, and the automation side retries on its own schedule.
	if err := uc.dispatcher.Dispatch(ctx, adapter.DispatchReportInput{
		ReportID:    rep.ID,
		UserID:      userID,
		Email:       user.Email,
		Name:        user.Name,
		ReportType:  user.ReportType,
		RequestedAt: now,
		KPIs:        kpis,
	}); err != nil {
		slog.Error("Report webhook dispatch failed", "reportID", rep.ID, "error", err)
	}

	if uc.mailer != nil {
		if err := uc.mailer.SendConfirmation(ctx, user.Email, user.Name, now); err != nil {
			slog.Error("Report confirmation email failed", "reportID", rep.ID, "error", err)
		}
	}

	return &RequestReportOutput{Report: rep}, nil
}

// gateError maps an eligibility verdict to the coded domain error the
// controller layer renders.
func gateError(gate *CanGenerateReportOutput) error {
	switch gate.Reason {
	case ReasonPlanRequired:
		return domainerror.NewReportError(
			domainerror.ErrCodeReportPlanRequired,
			"report generation requires the premium plan",
			domainerror.ErrReportPlanRequired,
		)
	case ReasonTypeNotConfigured:
		return domainerror.NewReportError(
			domainerror.ErrCodeReportTypeNotConfigured,
			"configure a report type before requesting reports",
			domainerror.ErrReportTypeNotConfigured,
		)
	case ReasonCooldownActive:
		reportErr := domainerror.NewReportError(
			domainerror.ErrCodeReportCooldownActive,
			"a report was already requested in the last 24 hours",
			domainerror.ErrReportCooldownActive,
		)
		reportErr.CooldownEndsAt = gate.CooldownEndsAt
		return reportErr
	case ReasonQuotaExceeded:
		reportErr := domainerror.NewReportError(
			domainerror.ErrCodeReportQuotaExceeded,
			"monthly report quota exhausted",
			domainerror.ErrReportQuotaExceeded,
		)
		reportErr.Limit = gate.Limit
		reportErr.Current = gate.Current
		return reportErr
	default:
		return domainerror.NewReportError(
			domainerror.ErrCodeInsufficientReportData,
			"not enough records for a meaningful report",
			domainerror.ErrInsufficientReportData,
		)
	}
}
