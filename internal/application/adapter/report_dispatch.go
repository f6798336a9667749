package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fincontrol/backend/internal/domain/entity"
)

// DispatchReportInput is the payload shipped to the external automation
// webhook, which owns report rendering and email delivery of the document.
type DispatchReportInput struct {
	ReportID    uuid.UUID           `json:"reportId"`
	UserID      uuid.UUID           `json:"userId"`
	Email       string              `json:"email"`
	Name        string              `json:"name"`
	ReportType  entity.ReportType   `json:"tipoRelatorio"`
	RequestedAt time.Time           `json:"solicitadoEm"`
	KPIs        *entity.FinanceKPIs `json:"kpis"`
}

// ReportDispatcher posts the report payload to the external automation webhook.
type ReportDispatcher interface {
	Dispatch(ctx context.Context, input DispatchReportInput) error
}

// ReportMailer sends the report confirmation email to the user. Delivery of
// the report document itself belongs to the webhook side.
type ReportMailer interface {
	SendConfirmation(ctx context.Context, to, name string, requestedAt time.Time) error
}
