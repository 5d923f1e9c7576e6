// Package databasetest provides transaction runners for service tests that use
// mocked repositories, and a connection helper for store integration tests.
package databasetest

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/daftar/internal/database"
)

// Inline runs fn directly with no transaction.
type Inline struct{}

func (Inline) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (Inline) WithinSnapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Recorder counts calls and runs fn inline. Tests use it to assert that an
// operation executed inside exactly one transaction.
type Recorder struct {
	Calls int
}

func (r *Recorder) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	r.Calls++
	return fn(ctx)
}

func (r *Recorder) WithinSnapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	r.Calls++
	return fn(ctx)
}

// Open connects to TEST_DATABASE_URL, migrates it and empties every table.
// The test is skipped when the variable is unset.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	_ = godotenv.Load("../../../.env")

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	db, err := database.New(url, database.Pool{MaxOpenConns: 10, MaxIdleConns: 2, ConnMaxLifetime: time.Minute})
	if err != nil {
		t.Fatalf("connecting to test database: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	ctx := context.Background()

	if err := database.Migrate(ctx, db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	if _, err := db.ExecContext(ctx, `
		TRUNCATE TABLE check_transitions, checks, receipt_vouchers, cash_accounts,
			invoice_lines, invoices, journal_lines, journal_entries, accounts,
			sequences, fiscal_years, persons, products
		RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("cleaning test database: %v", err)
	}

	return db
}
