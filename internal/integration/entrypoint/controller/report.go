package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fincontrol/backend/internal/application/usecase/report"
	domainerror "github.com/fincontrol/backend/internal/domain/error"
	"github.com/fincontrol/backend/internal/integration/entrypoint/dto"
	"github.com/fincontrol/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles report request endpoints.
type ReportController struct {
	requestUseCase     *report.RequestReportUseCase
	canGenerateUseCase *report.CanGenerateReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	requestUseCase *report.RequestReportUseCase,
	canGenerateUseCase *report.CanGenerateReportUseCase,
) *ReportController {
	return &ReportController{
		requestUseCase:     requestUseCase,
		canGenerateUseCase: canGenerateUseCase,
	}
}

// Request handles POST /reports requests.
func (c *ReportController) Request(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.requestUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToReportResponse(output.Report))
}

// Eligibility handles GET /reports/eligibility requests. It exposes the gate
// verdict without creating anything, so the frontend can disable the button.
func (c *ReportController) Eligibility(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	gate, err := c.canGenerateUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to evaluate report eligibility",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportEligibilityResponse(gate))
}

// handleReportError maps report domain errors to HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		status := http.StatusForbidden
		switch {
		case errors.Is(err, domainerror.ErrReportCooldownActive),
			errors.Is(err, domainerror.ErrReportQuotaExceeded):
			status = http.StatusTooManyRequests
		case errors.Is(err, domainerror.ErrInsufficientReportData):
			status = http.StatusUnprocessableEntity
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}
