// Package mock provides shared test doubles: an in-memory database, a
// controllable clock and an embedded Redis.
package mock

import (
	"database/sql"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fincontrol/backend/internal/integration/persistence/model"
)

// NewTestDB opens a fresh in-memory SQLite database with the application
// schema migrated. Each call returns an isolated database, so tests never
// share state.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	// A single connection keeps the in-memory database alive and serializes
	// access, which SQLite requires anyway.
	dbSQL.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.RecordModel{},
		&model.ReportModel{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	t.Cleanup(func() {
		_ = dbSQL.Close()
	})

	return db
}
