package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/MrJamesThe3rd/daftar/internal/database"
	"github.com/MrJamesThe3rd/daftar/internal/report"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// filter builds the WHERE clause shared by every report query over posted lines.
type filter struct {
	where string
	args  []any
}

func (f *filter) add(clause string, v any) {
	f.args = append(f.args, v)
	f.where += fmt.Sprintf(" AND "+clause, len(f.args))
}

func posted(period report.Period) *filter {
	f := &filter{where: "e.status = 'posted'"}

	if period.From != nil {
		f.add("e.voucher_date >= $%d", *period.From)
	}

	if period.To != nil {
		f.add("e.voucher_date <= $%d", *period.To)
	}

	return f
}

func (s *Store) Totals(ctx context.Context, fiscalYearID int64, period report.Period) (map[int64]report.Sums, error) {
	f := posted(period)
	f.add("e.fiscal_year_id = $%d", fiscalYearID)

	query := `
		SELECT l.account_id, SUM(l.debit), SUM(l.credit)
		FROM journal_lines l
		JOIN journal_entries e ON e.id = l.entry_id
		WHERE ` + f.where + `
		GROUP BY l.account_id`

	rows, err := database.Conn(ctx, s.db).QueryContext(ctx, query, f.args...)
	if err != nil {
		return nil, fmt.Errorf("summing account totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[int64]report.Sums)

	for rows.Next() {
		var (
			id int64
			s  report.Sums
		)

		if err := rows.Scan(&id, &s.Debit, &s.Credit); err != nil {
			return nil, fmt.Errorf("scanning account totals: %w", err)
		}

		totals[id] = s
	}

	return totals, rows.Err()
}

func (s *Store) Postings(ctx context.Context, accountIDs []int64, period report.Period) ([]report.Posting, error) {
	f := posted(period)
	f.add("l.account_id = ANY($%d)", pgtype.FlatArray[int64](accountIDs))

	query := `
		SELECT e.id, e.voucher_no, e.voucher_date, l.account_id,
			COALESCE(NULLIF(l.description, ''), e.description), l.debit, l.credit
		FROM journal_lines l
		JOIN journal_entries e ON e.id = l.entry_id
		WHERE ` + f.where + `
		ORDER BY e.voucher_date, e.voucher_no, l.line_no`

	rows, err := database.Conn(ctx, s.db).QueryContext(ctx, query, f.args...)
	if err != nil {
		return nil, fmt.Errorf("listing postings: %w", err)
	}
	defer rows.Close()

	var postings []report.Posting

	for rows.Next() {
		var p report.Posting
		if err := rows.Scan(&p.EntryID, &p.VoucherNo, &p.VoucherDate, &p.AccountID, &p.Description, &p.Debit, &p.Credit); err != nil {
			return nil, fmt.Errorf("scanning posting: %w", err)
		}

		postings = append(postings, p)
	}

	return postings, rows.Err()
}

func (s *Store) Opening(ctx context.Context, accountIDs []int64, period report.Period) (report.Sums, error) {
	var sums report.Sums

	if period.From == nil {
		return sums, nil
	}

	query := `
		SELECT COALESCE(SUM(l.debit), 0), COALESCE(SUM(l.credit), 0)
		FROM journal_lines l
		JOIN journal_entries e ON e.id = l.entry_id
		WHERE e.status = 'posted' AND l.account_id = ANY($1) AND e.voucher_date < $2`

	if err := database.Conn(ctx, s.db).QueryRowContext(ctx, query,
		pgtype.FlatArray[int64](accountIDs), *period.From,
	).Scan(&sums.Debit, &sums.Credit); err != nil {
		return sums, fmt.Errorf("summing opening balance: %w", err)
	}

	return sums, nil
}
