package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/daftar/internal/chart"
	"github.com/MrJamesThe3rd/daftar/internal/database"
	"github.com/MrJamesThe3rd/daftar/internal/journal"
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

// Expected column order: id, fiscal_year_id, voucher_no, voucher_date, description, status,
// source_type, source_id, reverses_entry_id, created_at, posted_at
func scanEntry(s scanner) (*journal.Entry, error) {
	var e journal.Entry

	var voucherNo sql.NullInt64

	var status string

	var sourceType sql.NullString

	if err := s.Scan(
		&e.ID, &e.FiscalYearID, &voucherNo, &e.VoucherDate, &e.Description, &status,
		&sourceType, &e.SourceID, &e.ReversesEntryID, &e.CreatedAt, &e.PostedAt,
	); err != nil {
		return nil, err
	}

	e.VoucherNo = voucherNo.Int64
	e.Status = journal.Status(status)
	e.SourceType = sourceType.String

	return &e, nil
}

const selectEntryColumns = `
	e.id, e.fiscal_year_id, e.voucher_no, e.voucher_date, e.description, e.status,
	e.source_type, e.source_id, e.reverses_entry_id, e.created_at, e.posted_at
`

func (s *Store) CreateEntry(ctx context.Context, e *journal.Entry) error {
	q := database.Conn(ctx, s.db)

	query := `
		INSERT INTO journal_entries (fiscal_year_id, voucher_no, voucher_date, description, status,
			source_type, source_id, reverses_entry_id, posted_at)
		VALUES ($1, NULLIF($2, 0), $3, $4, $5, NULLIF($6, ''), $7, $8,
			CASE WHEN $5 = 'posted' THEN NOW() END)
		RETURNING id, created_at, posted_at
	`

	err := q.QueryRowContext(ctx, query,
		e.FiscalYearID, e.VoucherNo, e.VoucherDate, e.Description, e.Status,
		e.SourceType, e.SourceID, e.ReversesEntryID,
	).Scan(&e.ID, &e.CreatedAt, &e.PostedAt)
	if err != nil {
		if database.IsUniqueViolation(err) && e.ReversesEntryID != nil {
			return fmt.Errorf("%w: entry %d", journal.ErrAlreadyReversed, *e.ReversesEntryID)
		}

		return fmt.Errorf("creating journal entry: %w", err)
	}

	return insertLines(ctx, q, e)
}

func insertLines(ctx context.Context, q database.Querier, e *journal.Entry) error {
	query := `
		INSERT INTO journal_lines (entry_id, line_no, account_id, debit, credit, description, person_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	for i := range e.Lines {
		l := &e.Lines[i]
		if err := q.QueryRowContext(ctx, query,
			e.ID, l.LineNo, l.AccountID, l.Debit, l.Credit, l.Description, l.PersonID,
		).Scan(&l.ID); err != nil {
			return fmt.Errorf("creating journal line %d: %w", l.LineNo, err)
		}
	}

	return nil
}

func (s *Store) GetEntry(ctx context.Context, id int64) (*journal.Entry, error) {
	return s.getEntry(ctx, id, "")
}

func (s *Store) LockEntry(ctx context.Context, id int64) (*journal.Entry, error) {
	return s.getEntry(ctx, id, " FOR UPDATE")
}

func (s *Store) getEntry(ctx context.Context, id int64, lock string) (*journal.Entry, error) {
	q := database.Conn(ctx, s.db)

	query := `SELECT ` + selectEntryColumns + ` FROM journal_entries e WHERE e.id = $1` + lock

	e, err := scanEntry(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", journal.ErrEntryNotFound, id)
		}

		return nil, fmt.Errorf("getting journal entry: %w", err)
	}

	if e.Lines, err = s.lines(ctx, q, id); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Store) lines(ctx context.Context, q database.Querier, entryID int64) ([]journal.Line, error) {
	query := `
		SELECT id, line_no, account_id, debit, credit, description, person_id
		FROM journal_lines
		WHERE entry_id = $1
		ORDER BY line_no
	`

	rows, err := q.QueryContext(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("listing journal lines: %w", err)
	}
	defer rows.Close()

	var lines []journal.Line

	for rows.Next() {
		var l journal.Line
		if err := rows.Scan(&l.ID, &l.LineNo, &l.AccountID, &l.Debit, &l.Credit, &l.Description, &l.PersonID); err != nil {
			return nil, fmt.Errorf("scanning journal line: %w", err)
		}

		lines = append(lines, l)
	}

	return lines, rows.Err()
}

func (s *Store) ListEntries(ctx context.Context, filter journal.ListFilter) ([]*journal.Entry, error) {
	query := `SELECT ` + selectEntryColumns + ` FROM journal_entries e WHERE e.fiscal_year_id = $1`

	args := []any{filter.FiscalYearID}

	add := func(clause string, v any) {
		args = append(args, v)
		query += fmt.Sprintf(" AND "+clause, len(args))
	}

	if filter.Status != nil {
		add("e.status = $%d", *filter.Status)
	}

	if filter.From != nil {
		add("e.voucher_date >= $%d", *filter.From)
	}

	if filter.To != nil {
		add("e.voucher_date <= $%d", *filter.To)
	}

	if filter.SourceType != "" {
		add("e.source_type = $%d", filter.SourceType)
	}

	if filter.SourceID != nil {
		add("e.source_id = $%d", *filter.SourceID)
	}

	query += " ORDER BY e.voucher_date, e.voucher_no NULLS LAST, e.id"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := database.Conn(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing journal entries: %w", err)
	}
	defer rows.Close()

	var entries []*journal.Entry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning journal entry: %w", err)
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (s *Store) ReplaceDraft(ctx context.Context, e *journal.Entry) error {
	q := database.Conn(ctx, s.db)

	res, err := q.ExecContext(ctx, `
		UPDATE journal_entries SET voucher_date = $2, description = $3
		WHERE id = $1 AND status = 'draft'`,
		e.ID, e.VoucherDate, e.Description)
	if err != nil {
		return fmt.Errorf("updating draft: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %d", journal.ErrEntryPosted, e.ID)
	}

	if _, err := q.ExecContext(ctx, `DELETE FROM journal_lines WHERE entry_id = $1`, e.ID); err != nil {
		return fmt.Errorf("clearing draft lines: %w", err)
	}

	return insertLines(ctx, q, e)
}

func (s *Store) DeleteEntry(ctx context.Context, id int64) error {
	if _, err := database.Conn(ctx, s.db).ExecContext(ctx,
		`DELETE FROM journal_entries WHERE id = $1 AND status = 'draft'`, id); err != nil {
		return fmt.Errorf("deleting draft: %w", err)
	}

	return nil
}

func (s *Store) MarkPosted(ctx context.Context, id int64, voucherNo int64) error {
	res, err := database.Conn(ctx, s.db).ExecContext(ctx, `
		UPDATE journal_entries SET status = 'posted', voucher_no = $2, posted_at = NOW()
		WHERE id = $1 AND status = 'draft'`, id, voucherNo)
	if err != nil {
		return fmt.Errorf("posting draft: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %d", journal.ErrEntryPosted, id)
	}

	return nil
}

func (s *Store) IsReversed(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := database.Conn(ctx, s.db).QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM journal_entries WHERE reverses_entry_id = $1)`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking reversal: %w", err)
	}

	return exists, nil
}

func (s *Store) NextVoucherNo(ctx context.Context, fiscalYearID int64) (int64, error) {
	return database.NextNumber(ctx, database.Conn(ctx, s.db), fiscalYearID, database.SeqJournal)
}

func (s *Store) ShareLockAccounts(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))

	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := `SELECT id FROM accounts WHERE id IN (` + strings.Join(placeholders, ", ") + `) ORDER BY id FOR SHARE`

	rows, err := database.Conn(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("locking accounts: %w", err)
	}

	return rows.Close()
}

func (s *Store) AccountTotals(ctx context.Context, a *chart.Account, asOf *time.Time) (debit, credit int64, err error) {
	query := `
		SELECT COALESCE(SUM(l.debit), 0), COALESCE(SUM(l.credit), 0)
		FROM journal_lines l
		JOIN journal_entries e ON e.id = l.entry_id
		JOIN accounts a ON a.id = l.account_id
		WHERE e.status = 'posted'
			AND a.fiscal_year_id = $1
			AND (a.code = $2 OR a.code LIKE $2 || '%')
			AND ($3::date IS NULL OR e.voucher_date <= $3::date)
	`

	if err := database.Conn(ctx, s.db).QueryRowContext(ctx, query, a.FiscalYearID, a.Code, asOf).Scan(&debit, &credit); err != nil {
		return 0, 0, fmt.Errorf("summing account %s: %w", a.Code, err)
	}

	return debit, credit, nil
}
