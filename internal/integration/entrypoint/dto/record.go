package dto

import (
	"time"

	"github.com/fincontrol/backend/internal/domain/entity"
)

// CreateRecordRequest represents the request body for record creation.
type CreateRecordRequest struct {
	Amount         float64 `json:"valor" binding:"required"`
	Type           string  `json:"tipo" binding:"required,oneof=entrada saida"`
	Category       string  `json:"categoria" binding:"required,min=1,max=100"`
	Source         string  `json:"de,omitempty"`
	Destination    string  `json:"para,omitempty"`
	Classification *string `json:"classificacao,omitempty" binding:"omitempty,oneof=fixo variavel recorrente ajuste_saldo"`
	Date           string  `json:"data" binding:"required"`
}

// CreateRecurrentRecordRequest represents the request body for recurring
// record creation.
type CreateRecurrentRecordRequest struct {
	Amount         float64 `json:"valor" binding:"required"`
	Type           string  `json:"tipo" binding:"required,oneof=entrada saida"`
	Category       string  `json:"categoria" binding:"required,min=1,max=100"`
	Source         string  `json:"de,omitempty"`
	Destination    string  `json:"para,omitempty"`
	Classification *string `json:"classificacao,omitempty" binding:"omitempty,oneof=fixo variavel recorrente ajuste_saldo"`
	StartDate      string  `json:"dataInicio" binding:"required"`
	Interval       string  `json:"intervalo" binding:"required,oneof=semanal mensal trimestral semestral anual"`
	Duration       string  `json:"duracao" binding:"required,oneof=3_meses 6_meses 12_meses indeterminado"`
}

// UpdateRecordRequest represents the request body for record update.
type UpdateRecordRequest struct {
	Amount         *float64 `json:"valor,omitempty"`
	Type           *string  `json:"tipo,omitempty" binding:"omitempty,oneof=entrada saida"`
	Category       *string  `json:"categoria,omitempty" binding:"omitempty,min=1,max=100"`
	Source         *string  `json:"de,omitempty"`
	Destination    *string  `json:"para,omitempty"`
	Classification *string  `json:"classificacao,omitempty" binding:"omitempty,oneof=fixo variavel recorrente ajuste_saldo"`
	Date           *string  `json:"data,omitempty"`
}

// RecordResponse represents a single record in API responses.
type RecordResponse struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	Amount             string    `json:"valor"`
	Type               string    `json:"tipo"`
	Category           string    `json:"categoria"`
	Source             string    `json:"de,omitempty"`
	Destination        string    `json:"para,omitempty"`
	Classification     *string   `json:"classificacao,omitempty"`
	Date               string    `json:"data"`
	RecurrenceGroupID  *string   `json:"grupoRecorrencia,omitempty"`
	RecurrenceInterval *string   `json:"intervalo,omitempty"`
	IsInfinite         bool      `json:"recorrenciaIndeterminada"`
	IsFuture           bool      `json:"futuro"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// RecordListResponse represents the response for listing records.
type RecordListResponse struct {
	Records []RecordResponse `json:"records"`
	Total   int              `json:"total"`
}

// CreateRecurrentRecordResponse represents the response for recurring record
// creation.
type CreateRecurrentRecordResponse struct {
	RecurrenceGroupID string           `json:"grupoRecorrencia"`
	Count             int              `json:"quantidade"`
	Records           []RecordResponse `json:"records"`
}

// DeleteRecordResponse represents the response for record deletion.
type DeleteRecordResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// ToRecordResponse converts a domain Record entity to a RecordResponse DTO.
func ToRecordResponse(record *entity.Record) RecordResponse {
	response := RecordResponse{
		ID:          record.ID.String(),
		UserID:      record.UserID.String(),
		Amount:      record.Amount.String(),
		Type:        string(record.Type),
		Category:    record.Category,
		Source:      record.Source,
		Destination: record.Destination,
		Date:        record.TransactionDate.Format("2006-01-02"),
		IsInfinite:  record.IsInfinite,
		IsFuture:    record.IsFuture,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}

	if record.Classification != nil {
		classification := string(*record.Classification)
		response.Classification = &classification
	}
	if record.RecurrenceGroupID != nil {
		groupID := record.RecurrenceGroupID.String()
		response.RecurrenceGroupID = &groupID
	}
	if record.RecurrenceInterval != nil {
		interval := string(*record.RecurrenceInterval)
		response.RecurrenceInterval = &interval
	}

	return response
}

// ToRecordListResponse converts a slice of records to a RecordListResponse.
func ToRecordListResponse(records []*entity.Record) RecordListResponse {
	responses := make([]RecordResponse, len(records))
	for i, record := range records {
		responses[i] = ToRecordResponse(record)
	}
	return RecordListResponse{
		Records: responses,
		Total:   len(responses),
	}
}
