package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fincontrol/backend/internal/domain/entity"
)

// ReportRepository defines the interface for report request persistence.
type ReportRepository interface {
	// Create persists a report request.
	Create(ctx context.Context, report *entity.Report) error

	// FindLastByUser retrieves the most recent report request for the user,
	// regardless of whether it counted toward the quota. Returns (nil, nil)
	// when the user never requested a report.
	FindLastByUser(ctx context.Context, userID uuid.UUID) (*entity.Report, error)

	// CountQuotaInPeriod counts quota-consuming report requests made within
	// [start, end).
	CountQuotaInPeriod(ctx context.Context, userID uuid.UUID, start, end time.Time) (int64, error)
}
