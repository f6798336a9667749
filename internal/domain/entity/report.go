package entity

import (
	"time"

	"github.com/google/uuid"
)

// Report represents one report request made by a user.
//
// CountsTowardQuota is false for attempts recorded purely for visibility, such
// as a request that failed the data-sufficiency check: the user sees the
// attempt, but it does not consume the monthly quota.
type Report struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Type              ReportType
	RequestedAt       time.Time
	CountsTowardQuota bool
	Recipients        []string
	CreatedAt         time.Time
}

// NewReport creates a new Report entity.
func NewReport(userID uuid.UUID, reportType ReportType, requestedAt time.Time, countsTowardQuota bool, recipients []string) *Report {
	return &Report{
		ID:                uuid.New(),
		UserID:            userID,
		Type:              reportType,
		RequestedAt:       requestedAt,
		CountsTowardQuota: countsTowardQuota,
		Recipients:        recipients,
		CreatedAt:         time.Now().UTC(),
	}
}
