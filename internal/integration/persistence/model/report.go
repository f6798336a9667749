package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/fincontrol/backend/internal/domain/entity"
)

// ReportModel represents the reports table in the database.
type ReportModel struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;index"`
	Type              string         `gorm:"type:varchar(10);not null"`
	RequestedAt       time.Time      `gorm:"not null;index"`
	CountsTowardQuota bool           `gorm:"default:true"`
	Recipients        pq.StringArray `gorm:"type:text[]"`
	CreatedAt         time.Time      `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the ReportModel.
func (ReportModel) TableName() string {
	return "reports"
}

// ToEntity converts a ReportModel to a domain Report entity.
func (m *ReportModel) ToEntity() *entity.Report {
	return &entity.Report{
		ID:                m.ID,
		UserID:            m.UserID,
		Type:              entity.ReportType(m.Type),
		RequestedAt:       m.RequestedAt,
		CountsTowardQuota: m.CountsTowardQuota,
		Recipients:        []string(m.Recipients),
		CreatedAt:         m.CreatedAt,
	}
}

// ReportFromEntity creates a ReportModel from a domain Report entity.
func ReportFromEntity(report *entity.Report) *ReportModel {
	return &ReportModel{
		ID:                report.ID,
		UserID:            report.UserID,
		Type:              string(report.Type),
		RequestedAt:       report.RequestedAt,
		CountsTowardQuota: report.CountsTowardQuota,
		Recipients:        pq.StringArray(report.Recipients),
		CreatedAt:         report.CreatedAt,
	}
}
