// Package testutil opens migrated throwaway databases for package tests.
package testutil

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"palmcafe/internal/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultBaseline is the first invoice number of a fresh test database.
const DefaultBaseline int64 = 1000

// PoolSize is the number of connections a test database keeps open, so
// concurrent callers really run overlapping transactions.
const PoolSize = 4

// BusyTimeoutMillis bounds how long a transaction waits for the write lock.
const BusyTimeoutMillis = 10000

// NewDB returns a private, migrated, file-backed SQLite database in WAL mode.
// Transactions begin IMMEDIATE: writers queue on the database lock for up to
// BusyTimeoutMillis instead of failing on a lock upgrade, while readers on the
// other connections proceed.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	return NewDBWithBaseline(t, DefaultBaseline)
}

func NewDBWithBaseline(t *testing.T, baseline int64) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_txlock=immediate",
		filepath.Join(t.TempDir(), "palmcafe.db"), BusyTimeoutMillis)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Discard,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(PoolSize)
	sqlDB.SetMaxIdleConns(PoolSize)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(context.Background(), db, baseline))
	return db
}

// FailCreatesOn makes every INSERT into table fail with err. It lets tests
// break a unit of work half way through.
func FailCreatesOn(t *testing.T, db *gorm.DB, table string, err error) {
	t.Helper()
	name := "testutil:fail_" + table
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register(name, func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			_ = tx.AddError(err)
		}
	}))
}
