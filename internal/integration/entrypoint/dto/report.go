package dto

import (
	"time"

	"github.com/fincontrol/backend/internal/application/usecase/report"
	"github.com/fincontrol/backend/internal/domain/entity"
)

// ReportResponse represents a report request in API responses.
type ReportResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"tipoRelatorio"`
	RequestedAt time.Time `json:"solicitadoEm"`
	Recipients  []string  `json:"destinatarios"`
}

// ReportEligibilityResponse represents the eligibility verdict for report
// generation.
type ReportEligibilityResponse struct {
	Allowed        bool       `json:"permitido"`
	Reason         string     `json:"motivo,omitempty"`
	CooldownEndsAt *time.Time `json:"aguardeAte,omitempty"`
	Limit          int        `json:"limite,omitempty"`
	Current        int        `json:"atual,omitempty"`
}

// ToReportResponse converts a domain Report entity to a ReportResponse DTO.
func ToReportResponse(r *entity.Report) ReportResponse {
	return ReportResponse{
		ID:          r.ID.String(),
		Type:        string(r.Type),
		RequestedAt: r.RequestedAt,
		Recipients:  r.Recipients,
	}
}

// ToReportEligibilityResponse converts the gate verdict to its DTO.
func ToReportEligibilityResponse(gate *report.CanGenerateReportOutput) ReportEligibilityResponse {
	response := ReportEligibilityResponse{
		Allowed:        gate.Allowed,
		CooldownEndsAt: gate.CooldownEndsAt,
		Limit:          gate.Limit,
		Current:        gate.Current,
	}
	if !gate.Allowed {
		response.Reason = string(gate.Reason)
	}
	return response
}
