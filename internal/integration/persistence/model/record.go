// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincontrol/backend/internal/domain/entity"
)

// RecordModel represents the records table in the database.
type RecordModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type            string          `gorm:"type:varchar(10);not null;index"`
	Category        string          `gorm:"type:varchar(100);not null"`
	Source          string          `gorm:"type:varchar(255)"`
	Destination     string          `gorm:"type:varchar(255)"`
	Classification  *string         `gorm:"type:varchar(20);index"`
	TransactionDate time.Time       `gorm:"type:date;not null;index"`

	RecurrenceGroupID  *uuid.UUID `gorm:"type:uuid;index"`
	RecurrenceInterval *string    `gorm:"type:varchar(20)"`
	IsInfinite         bool       `gorm:"default:false;index"`
	IsFuture           bool       `gorm:"default:false;index"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the RecordModel.
func (RecordModel) TableName() string {
	return "records"
}

// ToEntity converts a RecordModel to a domain Record entity.
func (m *RecordModel) ToEntity() *entity.Record {
	var classification *entity.Classification
	if m.Classification != nil {
		c := entity.Classification(*m.Classification)
		classification = &c
	}
	var interval *entity.RecurrenceInterval
	if m.RecurrenceInterval != nil {
		i := entity.RecurrenceInterval(*m.RecurrenceInterval)
		interval = &i
	}

	return &entity.Record{
		ID:                 m.ID,
		UserID:             m.UserID,
		Amount:             m.Amount,
		Type:               entity.RecordType(m.Type),
		Category:           m.Category,
		Source:             m.Source,
		Destination:        m.Destination,
		Classification:     classification,
		TransactionDate:    m.TransactionDate.UTC(),
		RecurrenceGroupID:  m.RecurrenceGroupID,
		RecurrenceInterval: interval,
		IsInfinite:         m.IsInfinite,
		IsFuture:           m.IsFuture,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// RecordFromEntity creates a RecordModel from a domain Record entity.
func RecordFromEntity(record *entity.Record) *RecordModel {
	var classification *string
	if record.Classification != nil {
		c := string(*record.Classification)
		classification = &c
	}
	var interval *string
	if record.RecurrenceInterval != nil {
		i := string(*record.RecurrenceInterval)
		interval = &i
	}

	return &RecordModel{
		ID:                 record.ID,
		UserID:             record.UserID,
		Amount:             record.Amount,
		Type:               string(record.Type),
		Category:           record.Category,
		Source:             record.Source,
		Destination:        record.Destination,
		Classification:     classification,
		TransactionDate:    record.TransactionDate,
		RecurrenceGroupID:  record.RecurrenceGroupID,
		RecurrenceInterval: interval,
		IsInfinite:         record.IsInfinite,
		IsFuture:           record.IsFuture,
		CreatedAt:          record.CreatedAt,
		UpdatedAt:          record.UpdatedAt,
	}
}
