package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/daftar/internal/check"
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

// Expected column order: id, fiscal_year_id, type, check_no, check_date, due_date, amount,
// cash_account_id, person_id, status, journal_entry_id, created_at, updated_at
func scanCheck(s scanner) (*check.Check, error) {
	var c check.Check

	var typ, status string

	if err := s.Scan(
		&c.ID, &c.FiscalYearID, &typ, &c.CheckNo, &c.CheckDate, &c.DueDate, &c.Amount,
		&c.CashAccountID, &c.PersonID, &status, &c.JournalEntryID, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.Type = check.Type(typ)
	c.Status = check.Status(status)

	return &c, nil
}

const selectCheckColumns = `
	id, fiscal_year_id, type, check_no, check_date, due_date, amount,
	cash_account_id, person_id, status, journal_entry_id, created_at, updated_at
`

func (s *Store) CreateCheck(ctx context.Context, c *check.Check) error {
	query := `
		INSERT INTO checks (fiscal_year_id, type, check_no, check_date, due_date, amount,
			cash_account_id, person_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	if err := database.Conn(ctx, s.db).QueryRowContext(ctx, query,
		c.FiscalYearID, c.Type, c.CheckNo, c.CheckDate, c.DueDate, c.Amount,
		c.CashAccountID, c.PersonID, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return fmt.Errorf("creating check: %w", err)
	}

	return nil
}

func (s *Store) GetCheck(ctx context.Context, id int64) (*check.Check, error) {
	return s.getCheck(ctx, id, "")
}

func (s *Store) LockCheck(ctx context.Context, id int64) (*check.Check, error) {
	return s.getCheck(ctx, id, " FOR UPDATE")
}

func (s *Store) getCheck(ctx context.Context, id int64, lock string) (*check.Check, error) {
	query := `SELECT ` + selectCheckColumns + ` FROM checks WHERE id = $1` + lock

	c, err := scanCheck(database.Conn(ctx, s.db).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", check.ErrCheckNotFound, id)
		}

		return nil, fmt.Errorf("getting check: %w", err)
	}

	return c, nil
}

func (s *Store) ListChecks(ctx context.Context, filter check.ListFilter) ([]*check.Check, error) {
	query := `SELECT ` + selectCheckColumns + ` FROM checks WHERE fiscal_year_id = $1`

	args := []any{filter.FiscalYearID}

	add := func(clause string, v any) {
		args = append(args, v)
		query += fmt.Sprintf(" AND "+clause, len(args))
	}

	if filter.Type != nil {
		add("type = $%d", *filter.Type)
	}

	if filter.Status != nil {
		add("status = $%d", *filter.Status)
	}

	if filter.PersonID != nil {
		add("person_id = $%d", *filter.PersonID)
	}

	if filter.DueBefore != nil {
		add("due_date <= $%d", *filter.DueBefore)
	}

	query += " ORDER BY due_date, id"

	rows, err := database.Conn(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing checks: %w", err)
	}
	defer rows.Close()

	var checks []*check.Check

	for rows.Next() {
		c, err := scanCheck(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning check: %w", err)
		}

		checks = append(checks, c)
	}

	return checks, rows.Err()
}

func (s *Store) UpdateStatus(ctx context.Context, id int64, status check.Status, entryID int64) error {
	if _, err := database.Conn(ctx, s.db).ExecContext(ctx, `
		UPDATE checks SET status = $2, journal_entry_id = $3, updated_at = NOW()
		WHERE id = $1`, id, status, entryID); err != nil {
		return fmt.Errorf("updating check status: %w", err)
	}

	return nil
}

func (s *Store) AddTransition(ctx context.Context, t *check.Transition) error {
	query := `
		INSERT INTO check_transitions (check_id, from_status, to_status, journal_entry_id, occurred_on)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	if err := database.Conn(ctx, s.db).QueryRowContext(ctx, query,
		t.CheckID, t.From, t.To, t.JournalEntryID, t.OccurredOn,
	).Scan(&t.ID, &t.CreatedAt); err != nil {
		return fmt.Errorf("recording check transition: %w", err)
	}

	return nil
}

func (s *Store) ListTransitions(ctx context.Context, checkID int64) ([]*check.Transition, error) {
	rows, err := database.Conn(ctx, s.db).QueryContext(ctx, `
		SELECT id, check_id, from_status, to_status, journal_entry_id, occurred_on, created_at
		FROM check_transitions
		WHERE check_id = $1
		ORDER BY id`, checkID)
	if err != nil {
		return nil, fmt.Errorf("listing check transitions: %w", err)
	}
	defer rows.Close()

	var transitions []*check.Transition

	for rows.Next() {
		var t check.Transition

		var from, to string

		if err := rows.Scan(&t.ID, &t.CheckID, &from, &to, &t.JournalEntryID, &t.OccurredOn, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning check transition: %w", err)
		}

		t.From = check.Status(from)
		t.To = check.Status(to)
		transitions = append(transitions, &t)
	}

	return transitions, rows.Err()
}
