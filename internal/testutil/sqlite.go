// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"hospital-api-server/internal/store/sqlstore"
)

// NewSQLStore opens a migrated in-memory SQLite store private to t.
// The database name is uniquified so tests in one process never share tables.
func NewSQLStore(t testing.TB) *sqlstore.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:hospital_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:  gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	s := sqlstore.New(db)
	if err := s.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}
