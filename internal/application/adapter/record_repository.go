// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fincontrol/backend/internal/domain/entity"
)

// RecordFilter defines filter options for querying finance records.
// StartDate/EndDate are inclusive bounds on the transaction date;
// AfterDate/BeforeDate are strict bounds, used where "strictly after today"
// semantics matter (future-occurrence counting, trailing windows).
type RecordFilter struct {
	UserID            uuid.UUID
	StartDate         *time.Time
	EndDate           *time.Time
	AfterDate         *time.Time
	BeforeDate        *time.Time
	Type              *entity.RecordType
	Category          *string
	Classification    *entity.Classification
	RecurrenceGroupID *uuid.UUID
	IsInfinite        *bool
	IsFuture          *bool
}

// RecordRepository defines the interface for finance record persistence.
type RecordRepository interface {
	// Create creates a single record.
	Create(ctx context.Context, record *entity.Record) error

	// CreateBatch inserts all records in one statement. The insert is
	// all-or-nothing: a recurrence batch is never partially persisted.
	CreateBatch(ctx context.Context, records []*entity.Record) error

	// FindByID retrieves a record by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Record, error)

	// FindByFilter retrieves records matching the filter, ordered by
	// transaction date descending.
	FindByFilter(ctx context.Context, filter RecordFilter) ([]*entity.Record, error)

	// FindLastInGroup retrieves the chronologically last record of a recurrence
	// group. Returns (nil, nil) when the group has no records.
	FindLastInGroup(ctx context.Context, groupID uuid.UUID) (*entity.Record, error)

	// CountByFilter counts records matching the filter.
	CountByFilter(ctx context.Context, filter RecordFilter) (int64, error)

	// FindInfiniteGroupIDs returns the distinct group ids of the user's
	// open-ended recurring series.
	FindInfiniteGroupIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// Update updates an existing record.
	Update(ctx context.Context, record *entity.Record) error

	// Delete deletes a record by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteGroupFrom deletes every record of the group dated on or after the
	// given date. Returns the number of rows deleted.
	DeleteGroupFrom(ctx context.Context, groupID uuid.UUID, from time.Time) (int64, error)

	// BulkSetIsFuture reconciles the cached is_future flag against the given
	// "today". With future=true it flips records dated strictly after today
	// that are flagged false; with future=false it flips records dated on or
	// before today that are flagged true. Returns rows touched. Idempotent.
	BulkSetIsFuture(ctx context.Context, userID uuid.UUID, today time.Time, future bool) (int64, error)

	// WithinTransaction runs fn against a repository bound to a single database
	// transaction. Used to make check-then-insert sequences atomic.
	WithinTransaction(ctx context.Context, fn func(repo RecordRepository) error) error
}
