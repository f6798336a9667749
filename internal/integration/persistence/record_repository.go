// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fincontrol/backend/internal/application/adapter"
	"github.com/fincontrol/backend/internal/domain/entity"
	domainerror "github.com/fincontrol/backend/internal/domain/error"
	"github.com/fincontrol/backend/internal/integration/persistence/model"
)

// recordRepository implements the adapter.RecordRepository interface.
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new record repository instance.
func NewRecordRepository(db *gorm.DB) adapter.RecordRepository {
	return &recordRepository{
		db: db,
	}
}

// applyFilter translates a RecordFilter into WHERE clauses. StartDate and
// EndDate are inclusive, AfterDate and BeforeDate are strict.
func (r *recordRepository) applyFilter(query *gorm.DB, filter adapter.RecordFilter) *gorm.DB {
	query = query.Where("user_id = ?", filter.UserID)

	if filter.StartDate != nil {
		query = query.Where("transaction_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("transaction_date <= ?", *filter.EndDate)
	}
	if filter.AfterDate != nil {
		query = query.Where("transaction_date > ?", *filter.AfterDate)
	}
	if filter.BeforeDate != nil {
		query = query.Where("transaction_date < ?", *filter.BeforeDate)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Classification != nil {
		query = query.Where("classification = ?", string(*filter.Classification))
	}
	if filter.RecurrenceGroupID != nil {
		query = query.Where("recurrence_group_id = ?", *filter.RecurrenceGroupID)
	}
	if filter.IsInfinite != nil {
		query = query.Where("is_infinite = ?", *filter.IsInfinite)
	}
	if filter.IsFuture != nil {
		query = query.Where("is_future = ?", *filter.IsFuture)
	}

	return query
}

// Create creates a new record in the database.
func (r *recordRepository) Create(ctx context.Context, record *entity.Record) error {
	recordModel := model.RecordFromEntity(record)
	result := r.db.WithContext(ctx).Create(recordModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateBatch inserts all records in a single statement. The insert is
// all-or-nothing.
func (r *recordRepository) CreateBatch(ctx context.Context, records []*entity.Record) error {
	if len(records) == 0 {
		return nil
	}

	recordModels := make([]*model.RecordModel, len(records))
	for i, record := range records {
		recordModels[i] = model.RecordFromEntity(record)
	}

	result := r.db.WithContext(ctx).Create(&recordModels)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a record by its ID.
func (r *recordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Record, error) {
	var recordModel model.RecordModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return recordModel.ToEntity(), nil
}

// FindByFilter retrieves records matching the filter, newest first.
func (r *recordRepository) FindByFilter(ctx context.Context, filter adapter.RecordFilter) ([]*entity.Record, error) {
	var recordModels []model.RecordModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&model.RecordModel{}), filter)
	result := query.Order("transaction_date DESC, created_at DESC").Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.Record, len(recordModels))
	for i, rm := range recordModels {
		records[i] = rm.ToEntity()
	}
	return records, nil
}

// FindLastInGroup retrieves the chronologically last record of a recurrence
// group. Returns (nil, nil) when the group is empty.
func (r *recordRepository) FindLastInGroup(ctx context.Context, groupID uuid.UUID) (*entity.Record, error) {
	var recordModel model.RecordModel
	result := r.db.WithContext(ctx).
		Where("recurrence_group_id = ?", groupID).
		Order("transaction_date DESC").
		First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return recordModel.ToEntity(), nil
}

// CountByFilter counts records matching the filter.
func (r *recordRepository) CountByFilter(ctx context.Context, filter adapter.RecordFilter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&model.RecordModel{}), filter)
	result := query.Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// FindInfiniteGroupIDs returns the distinct group ids of the user's open-ended
// recurring series.
func (r *recordRepository) FindInfiniteGroupIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var groupIDs []uuid.UUID
	result := r.db.WithContext(ctx).
		Model(&model.RecordModel{}).
		Where("user_id = ?", userID).
		Where("is_infinite = ?", true).
		Where("recurrence_group_id IS NOT NULL").
		Distinct().
		Pluck("recurrence_group_id", &groupIDs)
	if result.Error != nil {
		return nil, result.Error
	}
	return groupIDs, nil
}

// Update updates an existing record in the database.
func (r *recordRepository) Update(ctx context.Context, record *entity.Record) error {
	recordModel := model.RecordFromEntity(record)
	result := r.db.WithContext(ctx).Save(recordModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete deletes a record from the database.
func (r *recordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.RecordModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteGroupFrom deletes every record of the group dated on or after the
// given date.
func (r *recordRepository) DeleteGroupFrom(ctx context.Context, groupID uuid.UUID, from time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("recurrence_group_id = ?", groupID).
		Where("transaction_date >= ?", from).
		Delete(&model.RecordModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// BulkSetIsFuture reconciles the cached is_future flag against the given
// "today". Records already carrying the right flag are untouched, so repeated
// calls on the same day affect zero rows.
func (r *recordRepository) BulkSetIsFuture(ctx context.Context, userID uuid.UUID, today time.Time, future bool) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&model.RecordModel{}).
		Where("user_id = ?", userID).
		Where("is_future = ?", !future)

	if future {
		query = query.Where("transaction_date > ?", today)
	} else {
		query = query.Where("transaction_date <= ?", today)
	}

	result := query.Updates(map[string]interface{}{
		"is_future":  future,
		"updated_at": time.Now().UTC(),
	})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// WithinTransaction runs fn against a repository bound to a single database
// transaction.
func (r *recordRepository) WithinTransaction(ctx context.Context, fn func(repo adapter.RecordRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRecordRepository(tx))
	})
}
