package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// migrations are applied in order; index+1 is the schema version.
var migrations = [][]string{
	{
		`CREATE TABLE IF NOT EXISTS persons (
			id   BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id   BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE fiscal_years (
			id         BIGSERIAL PRIMARY KEY,
			name       TEXT NOT NULL,
			start_date DATE NOT NULL,
			end_date   DATE NOT NULL,
			is_active  BOOLEAN NOT NULL DEFAULT FALSE,
			closed     BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CHECK (end_date >= start_date)
		)`,
		`CREATE UNIQUE INDEX fiscal_years_one_active ON fiscal_years (is_active) WHERE is_active`,
		`CREATE TABLE sequences (
			fiscal_year_id BIGINT NOT NULL REFERENCES fiscal_years (id),
			kind           TEXT NOT NULL,
			last_no        BIGINT NOT NULL,
			PRIMARY KEY (fiscal_year_id, kind)
		)`,
		`CREATE TABLE accounts (
			id             BIGSERIAL PRIMARY KEY,
			fiscal_year_id BIGINT NOT NULL REFERENCES fiscal_years (id),
			code           TEXT NOT NULL,
			title          TEXT NOT NULL,
			level          INT NOT NULL,
			parent_code    TEXT,
			account_type   TEXT NOT NULL CHECK (account_type IN ('asset','liability','equity','income','expense')),
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (fiscal_year_id, code)
		)`,
		`CREATE TABLE journal_entries (
			id                BIGSERIAL PRIMARY KEY,
			fiscal_year_id    BIGINT NOT NULL REFERENCES fiscal_years (id),
			voucher_no        BIGINT,
			voucher_date      DATE NOT NULL,
			description       TEXT NOT NULL DEFAULT '',
			status            TEXT NOT NULL CHECK (status IN ('draft','posted')),
			source_type       TEXT,
			source_id         BIGINT,
			reverses_entry_id BIGINT UNIQUE REFERENCES journal_entries (id),
			created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			posted_at         TIMESTAMPTZ,
			UNIQUE (fiscal_year_id, voucher_no),
			CHECK ((status = 'posted') = (voucher_no IS NOT NULL))
		)`,
		`CREATE TABLE journal_lines (
			id          BIGSERIAL PRIMARY KEY,
			entry_id    BIGINT NOT NULL REFERENCES journal_entries (id) ON DELETE CASCADE,
			line_no     INT NOT NULL,
			account_id  BIGINT NOT NULL REFERENCES accounts (id),
			debit       BIGINT NOT NULL DEFAULT 0 CHECK (debit >= 0),
			credit      BIGINT NOT NULL DEFAULT 0 CHECK (credit >= 0),
			description TEXT NOT NULL DEFAULT '',
			person_id   BIGINT,
			CHECK ((debit = 0) <> (credit = 0))
		)`,
		`CREATE INDEX journal_lines_account ON journal_lines (account_id)`,
		`CREATE TABLE cash_accounts (
			id               BIGSERIAL PRIMARY KEY,
			name             TEXT NOT NULL,
			type             TEXT NOT NULL CHECK (type IN ('bank','cash','petty')),
			code             TEXT,
			sheba            TEXT,
			card_no          TEXT,
			chart_account_id BIGINT REFERENCES accounts (id),
			is_active        BOOLEAN NOT NULL DEFAULT TRUE,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE receipt_vouchers (
			id                          BIGSERIAL PRIMARY KEY,
			fiscal_year_id              BIGINT NOT NULL REFERENCES fiscal_years (id),
			voucher_no                  BIGINT,
			voucher_date                DATE NOT NULL,
			type                        TEXT NOT NULL CHECK (type IN ('receipt','payment','transfer')),
			cash_account_id             BIGINT NOT NULL REFERENCES cash_accounts (id),
			transfer_to_cash_account_id BIGINT REFERENCES cash_accounts (id),
			person_id                   BIGINT,
			amount                      BIGINT NOT NULL CHECK (amount > 0),
			bank_fee                    BIGINT NOT NULL DEFAULT 0 CHECK (bank_fee >= 0),
			description                 TEXT NOT NULL DEFAULT '',
			status                      TEXT NOT NULL CHECK (status IN ('draft','posted')),
			journal_entry_id            BIGINT REFERENCES journal_entries (id),
			created_at                  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (fiscal_year_id, voucher_no)
		)`,
		`CREATE TABLE checks (
			id               BIGSERIAL PRIMARY KEY,
			fiscal_year_id   BIGINT NOT NULL REFERENCES fiscal_years (id),
			type             TEXT NOT NULL CHECK (type IN ('receivable','payable')),
			check_no         TEXT NOT NULL,
			check_date       DATE NOT NULL,
			due_date         DATE NOT NULL,
			amount           BIGINT NOT NULL CHECK (amount > 0),
			cash_account_id  BIGINT NOT NULL REFERENCES cash_accounts (id),
			person_id        BIGINT NOT NULL,
			status           TEXT NOT NULL CHECK (status IN ('in_safe','collected','returned','spent')),
			journal_entry_id BIGINT REFERENCES journal_entries (id),
			created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE check_transitions (
			id               BIGSERIAL PRIMARY KEY,
			check_id         BIGINT NOT NULL REFERENCES checks (id),
			from_status      TEXT NOT NULL,
			to_status        TEXT NOT NULL,
			journal_entry_id BIGINT NOT NULL REFERENCES journal_entries (id),
			occurred_on      DATE NOT NULL,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE invoices (
			id               BIGSERIAL PRIMARY KEY,
			fiscal_year_id   BIGINT NOT NULL REFERENCES fiscal_years (id),
			invoice_no       BIGINT NOT NULL,
			invoice_type     TEXT NOT NULL CHECK (invoice_type IN ('proforma','sales','purchase')),
			person_id        BIGINT NOT NULL,
			invoice_date     DATE NOT NULL,
			due_date         DATE,
			description      TEXT NOT NULL DEFAULT '',
			status           TEXT NOT NULL CHECK (status IN ('draft','confirmed','returned')),
			journal_entry_id BIGINT REFERENCES journal_entries (id),
			return_entry_id  BIGINT REFERENCES journal_entries (id),
			created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (fiscal_year_id, invoice_type, invoice_no)
		)`,
		`CREATE TABLE invoice_lines (
			id               BIGSERIAL PRIMARY KEY,
			invoice_id       BIGINT NOT NULL REFERENCES invoices (id) ON DELETE CASCADE,
			line_no          INT NOT NULL,
			product_id       BIGINT NOT NULL,
			description      TEXT NOT NULL DEFAULT '',
			quantity         NUMERIC(18,4) NOT NULL,
			unit_price       BIGINT NOT NULL,
			discount_percent NUMERIC(7,4) NOT NULL DEFAULT 0,
			discount_amount  BIGINT NOT NULL DEFAULT 0,
			tax_percent      NUMERIC(7,4) NOT NULL DEFAULT 0,
			tax_amount       BIGINT NOT NULL DEFAULT 0
		)`,
	},
}

// Migrate brings the schema up to date.
func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning migration: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_version (version INT PRIMARY KEY)`); err != nil {
		return fmt.Errorf("creating schema_version: %w", err)
	}

	var version int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&version); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for i := version; i < len(migrations); i++ {
		for _, stmt := range migrations[i] {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migration v%d: %w", i+1, err)
			}
		}

		if _, err := tx.ExecContext(ctx, `INSERT INTO schema_version (version) VALUES ($1)`, i+1); err != nil {
			return fmt.Errorf("recording v%d: %w", i+1, err)
		}

		slog.Info("applied migration", "version", i+1)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migrations: %w", err)
	}

	return nil
}
