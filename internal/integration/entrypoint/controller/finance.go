package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fincontrol/backend/internal/application/usecase/finance"
	"github.com/fincontrol/backend/internal/domain/entity"
	domainerror "github.com/fincontrol/backend/internal/domain/error"
	"github.com/fincontrol/backend/internal/integration/entrypoint/dto"
	"github.com/fincontrol/backend/internal/integration/entrypoint/middleware"
)

// FinanceController handles KPI, distribution and balance adjustment endpoints.
type FinanceController struct {
	getKPIsUseCase         *finance.GetKPIsUseCase
	getDistributionUseCase *finance.GetExpenseDistributionUseCase
	adjustBalanceUseCase   *finance.AdjustBalanceUseCase
}

// NewFinanceController creates a new finance controller instance.
func NewFinanceController(
	getKPIsUseCase *finance.GetKPIsUseCase,
	getDistributionUseCase *finance.GetExpenseDistributionUseCase,
	adjustBalanceUseCase *finance.AdjustBalanceUseCase,
) *FinanceController {
	return &FinanceController{
		getKPIsUseCase:         getKPIsUseCase,
		getDistributionUseCase: getDistributionUseCase,
		adjustBalanceUseCase:   adjustBalanceUseCase,
	}
}

// GetKPIs handles GET /finance/kpis requests.
func (c *FinanceController) GetKPIs(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := finance.GetKPIsInput{
		UserID: userID,
	}

	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err == nil {
			input.StartDate = &startDate
		}
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err == nil {
			input.EndDate = &endDate
		}
	}
	if typeStr := ctx.Query("tipo"); typeStr != "" {
		recordType := entity.RecordType(typeStr)
		input.Type = &recordType
	}
	if category := ctx.Query("categoria"); category != "" {
		input.Category = &category
	}

	kpis, err := c.getKPIsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute KPIs",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.KPIResponse{KPIs: kpis})
}

// GetDistribution handles GET /finance/distribution requests.
func (c *FinanceController) GetDistribution(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := finance.GetExpenseDistributionInput{
		UserID: userID,
	}

	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err == nil {
			input.StartDate = &startDate
		}
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err == nil {
			input.EndDate = &endDate
		}
	}

	distribution, err := c.getDistributionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute expense distribution",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.DistributionResponse{Distribution: distribution})
}

// AdjustBalance handles POST /finance/adjust-balance requests.
func (c *FinanceController) AdjustBalance(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.AdjustBalanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := finance.AdjustBalanceInput{
		UserID:        userID,
		TargetBalance: decimal.NewFromFloat(req.TargetBalance),
	}

	output, err := c.adjustBalanceUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AdjustBalanceResponse{
		Message:    output.Message,
		Record:     dto.ToRecordResponse(output.Record),
		Adjustment: output.Adjustment,
	})
}

// handleFinanceError maps finance domain errors to HTTP responses.
func (c *FinanceController) handleFinanceError(ctx *gin.Context, err error) {
	var financeErr *domainerror.FinanceError
	if errors.As(err, &financeErr) {
		status := http.StatusBadRequest
		if errors.Is(err, domainerror.ErrAdjustmentLimitReached) {
			status = http.StatusTooManyRequests
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: financeErr.Message,
			Code:  string(financeErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}
