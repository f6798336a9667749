package adapter

import (
	"context"

	"github.com/fincontrol/backend/internal/domain/entity"
)

// Alert is one AI-generated finance alert shown on the dashboard.
type Alert struct {
	Severity string `json:"severidade"` // info | atencao | critico
	Title    string `json:"titulo"`
	Message  string `json:"mensagem"`
}

// AlertRequest carries the financial snapshot the alert generator reasons over.
type AlertRequest struct {
	UserName      string
	KPIs          *entity.FinanceKPIs
	TopCategories []entity.CategoryShare
}

// AlertService generates advisory alerts from a KPI snapshot. Alerts are
// best-effort: callers treat failures as "no alerts", never as request errors.
type AlertService interface {
	// IsAvailable checks if the alert service is configured.
	IsAvailable() bool

	// GenerateAlerts produces a short list of alerts for the snapshot.
	GenerateAlerts(ctx context.Context, request AlertRequest) ([]*Alert, error)
}
