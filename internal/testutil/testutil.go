// Package testutil provides shared helpers for package tests. Tests run
// against an in-memory SQLite database, so the Postgres-only pieces (the
// stamp trigger, pg error codes) are exercised indirectly through the
// usecase pre-checks.
package testutil

import (
	"io"
	"testing"

	"kbeauty-insider/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a fresh in-memory database with the full schema.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&entity.Profile{},
		&entity.Procedure{},
		&entity.Clinic{},
		&entity.Reservation{},
		&entity.Stamp{},
		&entity.Setting{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// NewTestLogger returns a logger that discards output so test runs stay
// readable.
func NewTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
