// Package alert contains the AI-generated finance alert use case.
package alert

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fincontrol/backend/internal/application/adapter"
	"github.com/fincontrol/backend/internal/application/usecase/finance"
)

// GenerateAlertsUseCase builds a KPI snapshot and asks the alert service for
// short advisory alerts. Alerts never block a request: any failure degrades to
// an empty list.
type GenerateAlertsUseCase struct {
	getKPIs         *finance.GetKPIsUseCase
	getDistribution *finance.GetExpenseDistributionUseCase
	userRepo        adapter.UserRepository
	alertService    adapter.AlertService
}

// NewGenerateAlertsUseCase creates a new GenerateAlertsUseCase instance.
func NewGenerateAlertsUseCase(
	getKPIs *finance.GetKPIsUseCase,
	getDistribution *finance.GetExpenseDistributionUseCase,
	userRepo adapter.UserRepository,
	alertService adapter.AlertService,
) *GenerateAlertsUseCase {
	return &GenerateAlertsUseCase{
		getKPIs:         getKPIs,
		getDistribution: getDistribution,
		userRepo:        userRepo,
		alertService:    alertService,
	}
}

// Execute returns the alerts for the user's current financial snapshot.
func (uc *GenerateAlertsUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]*adapter.Alert, error) {
	if uc.alertService == nil || !uc.alertService.IsAvailable() {
		return []*adapter.Alert{}, nil
	}

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	kpis, err := uc.getKPIs.Execute(ctx, finance.GetKPIsInput{UserID: userID})
	if err != nil {
		return nil, err
	}

	distribution, err := uc.getDistribution.Execute(ctx, finance.GetExpenseDistributionInput{UserID: userID})
	if err != nil {
		return nil, err
	}
	if len(distribution) > 5 {
		distribution = distribution[:5]
	}

	alerts, err := uc.alertService.GenerateAlerts(ctx, adapter.AlertRequest{
		UserName:      user.Name,
		KPIs:          kpis,
		TopCategories: distribution,
	})
	if err != nil {
		slog.Warn("Alert generation failed", "userID", userID, "error", err)
		return []*adapter.Alert{}, nil
	}

	return alerts, nil
}
