package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fincontrol/backend/internal/application/adapter"
	"github.com/fincontrol/backend/internal/domain/entity"
	"github.com/fincontrol/backend/internal/integration/persistence/model"
)

// reportRepository implements the adapter.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) adapter.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// Create persists a report request.
func (r *reportRepository) Create(ctx context.Context, report *entity.Report) error {
	reportModel := model.ReportFromEntity(report)
	result := r.db.WithContext(ctx).Create(reportModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindLastByUser retrieves the most recent report request for the user.
// Returns (nil, nil) when the user never requested a report.
func (r *reportRepository) FindLastByUser(ctx context.Context, userID uuid.UUID) (*entity.Report, error) {
	var reportModel model.ReportModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("requested_at DESC").
		First(&reportModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return reportModel.ToEntity(), nil
}

// CountQuotaInPeriod counts quota-consuming report requests made within
// [start, end).
func (r *reportRepository) CountQuotaInPeriod(ctx context.Context, userID uuid.UUID, start, end time.Time) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ReportModel{}).
		Where("user_id = ?", userID).
		Where("counts_toward_quota = ?", true).
		Where("requested_at >= ? AND requested_at < ?", start, end).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
