package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/daftar/internal/database"
	"github.com/MrJamesThe3rd/daftar/internal/fiscal"
)

// lockKey is the advisory lock taken while years are created.
const lockKey = 7340001

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

// Expected column order: id, name, start_date, end_date, is_active, closed, created_at
func scanYear(s scanner) (*fiscal.Year, error) {
	var y fiscal.Year
	if err := s.Scan(&y.ID, &y.Name, &y.StartDate, &y.EndDate, &y.IsActive, &y.Closed, &y.CreatedAt); err != nil {
		return nil, err
	}

	y.StartDate = fiscal.Day(y.StartDate)
	y.EndDate = fiscal.Day(y.EndDate)

	return &y, nil
}

const selectYearColumns = `id, name, start_date, end_date, is_active, closed, created_at`

func (s *Store) LockYears(ctx context.Context) error {
	if _, err := database.Conn(ctx, s.db).ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, lockKey); err != nil {
		return fmt.Errorf("acquiring fiscal year lock: %w", err)
	}

	return nil
}

func (s *Store) CreateYear(ctx context.Context, y *fiscal.Year) error {
	query := `
		INSERT INTO fiscal_years (name, start_date, end_date)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	if err := database.Conn(ctx, s.db).QueryRowContext(ctx, query, y.Name, y.StartDate, y.EndDate).Scan(&y.ID, &y.CreatedAt); err != nil {
		return fmt.Errorf("creating fiscal year: %w", err)
	}

	return nil
}

func (s *Store) GetYear(ctx context.Context, id int64) (*fiscal.Year, error) {
	query := `SELECT ` + selectYearColumns + ` FROM fiscal_years WHERE id = $1`

	y, err := scanYear(database.Conn(ctx, s.db).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", fiscal.ErrUnknownFiscalYear, id)
		}

		return nil, fmt.Errorf("getting fiscal year: %w", err)
	}

	return y, nil
}

func (s *Store) ListYears(ctx context.Context) ([]*fiscal.Year, error) {
	query := `SELECT ` + selectYearColumns + ` FROM fiscal_years ORDER BY start_date`

	rows, err := database.Conn(ctx, s.db).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing fiscal years: %w", err)
	}
	defer rows.Close()

	var years []*fiscal.Year

	for rows.Next() {
		y, err := scanYear(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning fiscal year: %w", err)
		}

		years = append(years, y)
	}

	return years, rows.Err()
}

func (s *Store) ActiveYear(ctx context.Context) (*fiscal.Year, error) {
	query := `SELECT ` + selectYearColumns + ` FROM fiscal_years WHERE is_active`

	y, err := scanYear(database.Conn(ctx, s.db).QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fiscal.ErrNoActiveYear
		}

		return nil, fmt.Errorf("getting active fiscal year: %w", err)
	}

	return y, nil
}

// SetActive must run inside a transaction; the partial unique index rejects a
// second active row, so the old one is cleared first.
func (s *Store) SetActive(ctx context.Context, id int64) error {
	q := database.Conn(ctx, s.db)

	if _, err := q.ExecContext(ctx, `UPDATE fiscal_years SET is_active = FALSE WHERE is_active AND id <> $1`, id); err != nil {
		return fmt.Errorf("deactivating fiscal years: %w", err)
	}

	if _, err := q.ExecContext(ctx, `UPDATE fiscal_years SET is_active = TRUE WHERE id = $1`, id); err != nil {
		return fmt.Errorf("activating fiscal year: %w", err)
	}

	return nil
}

func (s *Store) SetClosed(ctx context.Context, id int64) error {
	if _, err := database.Conn(ctx, s.db).ExecContext(ctx, `UPDATE fiscal_years SET closed = TRUE WHERE id = $1`, id); err != nil {
		return fmt.Errorf("closing fiscal year: %w", err)
	}

	return nil
}
