package testutil

import (
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DatabaseDSNEnv names the variable that points integration tests at a
// disposable PostgreSQL instance.
const DatabaseDSNEnv = "TEST_DATABASE_DSN"

// DatabaseAvailable checks if an integration database is configured.
func DatabaseAvailable() bool {
	return os.Getenv(DatabaseDSNEnv) != ""
}

// SkipIfDatabaseUnavailable skips the test if no integration database is
// configured.
func SkipIfDatabaseUnavailable(t *testing.T) {
	t.Helper()
	if !DatabaseAvailable() {
		t.Skipf("%s not set", DatabaseDSNEnv)
	}
}

// OpenDatabase connects to the integration database and closes the
// connection pool when the test finishes.
func OpenDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	SkipIfDatabaseUnavailable(t)

	db, err := gorm.Open(postgres.Open(os.Getenv(DatabaseDSNEnv)), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// TruncateTables clears the given tables between tests, resetting identity
// sequences so generated IDs start from 1 again.
func TruncateTables(t *testing.T, db *gorm.DB, tables ...string) {
	t.Helper()
	for _, table := range tables {
		if err := db.Exec("TRUNCATE TABLE " + table + " RESTART IDENTITY CASCADE").Error; err != nil {
			t.Fatalf("failed to truncate %s: %v", table, err)
		}
	}
}
