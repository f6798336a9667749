package dto

import (
	"github.com/fincontrol/backend/internal/application/usecase/finance"
	"github.com/fincontrol/backend/internal/domain/entity"
)

// AdjustBalanceRequest represents the request body for a balance adjustment.
type AdjustBalanceRequest struct {
	TargetBalance float64 `json:"saldoDesejado" binding:"required"`
}

// AdjustBalanceResponse represents the response for a balance adjustment.
type AdjustBalanceResponse struct {
	Message    string                    `json:"message"`
	Record     RecordResponse            `json:"record"`
	Adjustment finance.AdjustmentSummary `json:"adjustment"`
}

// KPIResponse wraps the KPI value object. The KPI JSON field names are owned
// by the entity itself.
type KPIResponse struct {
	KPIs *entity.FinanceKPIs `json:"kpis"`
}

// DistributionResponse represents the expense distribution response.
type DistributionResponse struct {
	Distribution []entity.CategoryShare `json:"distribuicao"`
}
