package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/daftar/internal/chart"
	"github.com/MrJamesThe3rd/daftar/internal/database"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, fiscal_year_id, code, title, level, parent_code, account_type, is_leaf, created_at
func scanAccount(s scanner) (*chart.Account, error) {
	var a chart.Account

	var parent sql.NullString

	var typ string

	if err := s.Scan(&a.ID, &a.FiscalYearID, &a.Code, &a.Title, &a.Level, &parent, &typ, &a.IsLeaf, &a.CreatedAt); err != nil {
		return nil, err
	}

	a.ParentCode = parent.String
	a.Type = chart.Type(typ)

	return &a, nil
}

const selectAccountColumns = `
	a.id, a.fiscal_year_id, a.code, a.title, a.level, a.parent_code, a.account_type,
	NOT EXISTS (
		SELECT 1 FROM accounts c WHERE c.fiscal_year_id = a.fiscal_year_id AND c.parent_code = a.code
	) AS is_leaf,
	a.created_at
`

func (s *Store) CreateAccount(ctx context.Context, a *chart.Account) error {
	query := `
		INSERT INTO accounts (fiscal_year_id, code, title, level, parent_code, account_type)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		RETURNING id, created_at
	`

	err := database.Conn(ctx, s.db).QueryRowContext(ctx, query,
		a.FiscalYearID, a.Code, a.Title, a.Level, a.ParentCode, a.Type,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", chart.ErrDuplicateCode, a.Code)
		}

		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

func (s *Store) GetAccount(ctx context.Context, id int64) (*chart.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts a WHERE a.id = $1`

	a, err := scanAccount(database.Conn(ctx, s.db).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", chart.ErrUnknownAccount, id)
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return a, nil
}

func (s *Store) GetAccountByCode(ctx context.Context, fiscalYearID int64, code string) (*chart.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts a WHERE a.fiscal_year_id = $1 AND a.code = $2`

	a, err := scanAccount(database.Conn(ctx, s.db).QueryRowContext(ctx, query, fiscalYearID, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: code %s", chart.ErrUnknownAccount, code)
		}

		return nil, fmt.Errorf("getting account by code: %w", err)
	}

	return a, nil
}

func (s *Store) ListAccounts(ctx context.Context, fiscalYearID int64) ([]*chart.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts a WHERE a.fiscal_year_id = $1 ORDER BY a.code`

	rows, err := database.Conn(ctx, s.db).QueryContext(ctx, query, fiscalYearID)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*chart.Account

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		accounts = append(accounts, a)
	}

	return accounts, rows.Err()
}

func (s *Store) CountAccounts(ctx context.Context, fiscalYearID int64) (int, error) {
	var n int
	if err := database.Conn(ctx, s.db).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM accounts WHERE fiscal_year_id = $1`, fiscalYearID).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting accounts: %w", err)
	}

	return n, nil
}

func (s *Store) LockAccount(ctx context.Context, id int64) error {
	var locked int64
	if err := database.Conn(ctx, s.db).QueryRowContext(ctx,
		`SELECT id FROM accounts WHERE id = $1 FOR UPDATE`, id).Scan(&locked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: id %d", chart.ErrUnknownAccount, id)
		}

		return fmt.Errorf("locking account: %w", err)
	}

	return nil
}

func (s *Store) HasPostings(ctx context.Context, id int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM journal_lines l
			JOIN journal_entries e ON e.id = l.entry_id
			WHERE l.account_id = $1 AND e.status = 'posted'
		)
	`

	var exists bool
	if err := database.Conn(ctx, s.db).QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking account postings: %w", err)
	}

	return exists, nil
}

func (s *Store) UpdateTitle(ctx context.Context, id int64, title string) error {
	res, err := database.Conn(ctx, s.db).ExecContext(ctx, `UPDATE accounts SET title = $2 WHERE id = $1`, id, title)
	if err != nil {
		return fmt.Errorf("renaming account: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: id %d", chart.ErrUnknownAccount, id)
	}

	return nil
}

// DeleteAccount reports rows still pointing at the account, such as draft
// lines or linked cash accounts, as ErrAccountInUse.
func (s *Store) DeleteAccount(ctx context.Context, id int64) error {
	if _, err := database.Conn(ctx, s.db).ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id); err != nil {
		if database.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: id %d is referenced", chart.ErrAccountInUse, id)
		}

		return fmt.Errorf("deleting account: %w", err)
	}

	return nil
}
