package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincontrol/backend/internal/application/usecase/record"
	"github.com/fincontrol/backend/internal/application/usecase/recurrence"
	"github.com/fincontrol/backend/internal/domain/entity"
	domainerror "github.com/fincontrol/backend/internal/domain/error"
	"github.com/fincontrol/backend/internal/integration/entrypoint/dto"
	"github.com/fincontrol/backend/internal/integration/entrypoint/middleware"
)

// RecordController handles finance record endpoints.
type RecordController struct {
	listUseCase            *record.ListRecordsUseCase
	createUseCase          *record.CreateRecordUseCase
	createRecurrentUseCase *recurrence.CreateRecurrentRecordsUseCase
	updateUseCase          *record.UpdateRecordUseCase
	deleteUseCase          *record.DeleteRecordUseCase
}

// NewRecordController creates a new record controller instance.
func NewRecordController(
	listUseCase *record.ListRecordsUseCase,
	createUseCase *record.CreateRecordUseCase,
	createRecurrentUseCase *recurrence.CreateRecurrentRecordsUseCase,
	updateUseCase *record.UpdateRecordUseCase,
	deleteUseCase *record.DeleteRecordUseCase,
) *RecordController {
	return &RecordController{
		listUseCase:            listUseCase,
		createUseCase:          createUseCase,
		createRecurrentUseCase: createRecurrentUseCase,
		updateUseCase:          updateUseCase,
		deleteUseCase:          deleteUseCase,
	}
}

// List handles GET /records requests.
func (c *RecordController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := record.ListRecordsInput{
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

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve records",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecordListResponse(output.Records))
}

// Create handles POST /records requests.
func (c *RecordController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
		})
		return
	}

	input := record.CreateRecordInput{
		UserID:          userID,
		Amount:          decimal.NewFromFloat(req.Amount),
		Type:            entity.RecordType(req.Type),
		Category:        req.Category,
		Source:          req.Source,
		Destination:     req.Destination,
		TransactionDate: date,
	}
	if req.Classification != nil {
		classification := entity.Classification(*req.Classification)
		input.Classification = &classification
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecordResponse(output.Record))
}

// CreateRecurrent handles POST /records/recurrent requests.
func (c *RecordController) CreateRecurrent(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateRecurrentRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start date format. Use YYYY-MM-DD",
		})
		return
	}

	input := recurrence.CreateRecurrentRecordsInput{
		UserID:      userID,
		Amount:      decimal.NewFromFloat(req.Amount),
		Type:        entity.RecordType(req.Type),
		Category:    req.Category,
		Source:      req.Source,
		Destination: req.Destination,
		StartDate:   startDate,
		Interval:    entity.RecurrenceInterval(req.Interval),
		Duration:    entity.RecurrenceDuration(req.Duration),
	}
	if req.Classification != nil {
		classification := entity.Classification(*req.Classification)
		input.Classification = &classification
	}

	output, err := c.createRecurrentUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	records := make([]dto.RecordResponse, len(output.Records))
	for i, rec := range output.Records {
		records[i] = dto.ToRecordResponse(rec)
	}

	ctx.JSON(http.StatusCreated, dto.CreateRecurrentRecordResponse{
		RecurrenceGroupID: output.RecurrenceGroupID.String(),
		Count:             output.Count,
		Records:           records,
	})
}

// Update handles PATCH /records/:id requests.
func (c *RecordController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	recordID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid record ID format",
		})
		return
	}

	var req dto.UpdateRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := record.UpdateRecordInput{
		UserID:   userID,
		RecordID: recordID,
		Category: req.Category,
		Source:   req.Source,
		Destination: req.Destination,
	}

	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Type != nil {
		recordType := entity.RecordType(*req.Type)
		input.Type = &recordType
	}
	if req.Classification != nil {
		classification := entity.Classification(*req.Classification)
		input.Classification = &classification
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
			})
			return
		}
		input.TransactionDate = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecordResponse(output.Record))
}

// Delete handles DELETE /records/:id requests. With ?deleteFuture=true on a
// recurring record, the record and all its later occurrences are removed.
func (c *RecordController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	recordID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid record ID format",
		})
		return
	}

	input := record.DeleteRecordInput{
		UserID:       userID,
		RecordID:     recordID,
		DeleteFuture: ctx.Query("deleteFuture") == "true",
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteRecordResponse{
		DeletedCount: output.DeletedCount,
	})
}

// handleRecordError maps record domain errors to HTTP responses.
func (c *RecordController) handleRecordError(ctx *gin.Context, err error) {
	var recordErr *domainerror.RecordError
	if errors.As(err, &recordErr) {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, domainerror.ErrRecordNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domainerror.ErrNotAuthorizedToModifyRecord):
			status = http.StatusForbidden
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: recordErr.Message,
			Code:  string(recordErr.Code),
		})
		return
	}

	var recurrenceErr *domainerror.RecurrenceError
	if errors.As(err, &recurrenceErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: recurrenceErr.Message,
			Code:  string(recurrenceErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}
