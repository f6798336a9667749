package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fincontrol/backend/internal/application/adapter"
	"github.com/fincontrol/backend/internal/application/usecase/alert"
	domainerror "github.com/fincontrol/backend/internal/domain/error"
	"github.com/fincontrol/backend/internal/integration/entrypoint/dto"
	"github.com/fincontrol/backend/internal/integration/entrypoint/middleware"
)

// AlertController handles AI-generated finance alert endpoints.
type AlertController struct {
	generateUseCase *alert.GenerateAlertsUseCase
}

// AlertListResponse represents the alert list response.
type AlertListResponse struct {
	Alerts []*adapter.Alert `json:"alertas"`
}

// NewAlertController creates a new alert controller instance.
func NewAlertController(generateUseCase *alert.GenerateAlertsUseCase) *AlertController {
	return &AlertController{
		generateUseCase: generateUseCase,
	}
}

// List handles GET /alerts requests.
func (c *AlertController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	alerts, err := c.generateUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to generate alerts",
		})
		return
	}

	ctx.JSON(http.StatusOK, AlertListResponse{Alerts: alerts})
}
