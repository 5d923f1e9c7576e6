package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/daftar/internal/database"
	"github.com/MrJamesThe3rd/daftar/internal/invoice"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, fiscal_year_id, invoice_no, invoice_type, person_id, invoice_date,
// due_date, description, status, journal_entry_id, return_entry_id, created_at, updated_at
func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var inv invoice.Invoice

	var typ, status string

	if err := s.Scan(
		&inv.ID, &inv.FiscalYearID, &inv.InvoiceNo, &typ, &inv.PersonID, &inv.InvoiceDate,
		&inv.DueDate, &inv.Description, &status, &inv.JournalEntryID, &inv.ReturnEntryID,
		&inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		return nil, err
	}

	inv.Type = invoice.Type(typ)
	inv.Status = invoice.Status(status)

	return &inv, nil
}

const selectInvoiceColumns = `
	id, fiscal_year_id, invoice_no, invoice_type, person_id, invoice_date,
	due_date, description, status, journal_entry_id, return_entry_id, created_at, updated_at
`

var seqKinds = map[invoice.Type]string{
	invoice.TypeSales:    database.SeqInvoiceSales,
	invoice.TypePurchase: database.SeqInvoicePurchase,
	invoice.TypeProforma: database.SeqInvoiceProforma,
}

func (s *Store) NextInvoiceNo(ctx context.Context, fiscalYearID int64, typ invoice.Type) (int64, error) {
	kind, ok := seqKinds[typ]
	if !ok {
		return 0, fmt.Errorf("%w: unknown type %q", invoice.ErrInvalidInvoice, typ)
	}

	return database.NextNumber(ctx, database.Conn(ctx, s.db), fiscalYearID, kind)
}

func (s *Store) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (fiscal_year_id, invoice_no, invoice_type, person_id, invoice_date,
			due_date, description, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	if err := database.Conn(ctx, s.db).QueryRowContext(ctx, query,
		inv.FiscalYearID, inv.InvoiceNo, inv.Type, inv.PersonID, inv.InvoiceDate,
		inv.DueDate, inv.Description, inv.Status,
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
		return fmt.Errorf("creating invoice: %w", err)
	}

	return s.insertLines(ctx, inv.ID, inv.Lines)
}

func (s *Store) insertLines(ctx context.Context, invoiceID int64, lines []invoice.Line) error {
	conn := database.Conn(ctx, s.db)

	for i := range lines {
		l := &lines[i]

		if err := conn.QueryRowContext(ctx, `
			INSERT INTO invoice_lines (invoice_id, line_no, product_id, description, quantity,
				unit_price, discount_percent, discount_amount, tax_percent, tax_amount)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id`,
			invoiceID, l.LineNo, l.ProductID, l.Description, l.Quantity,
			l.UnitPrice, l.DiscountPercent, l.DiscountAmount, l.TaxPercent, l.TaxAmount,
		).Scan(&l.ID); err != nil {
			return fmt.Errorf("inserting invoice line %d: %w", l.LineNo, err)
		}
	}

	return nil
}

func (s *Store) ReplaceLines(ctx context.Context, id int64, lines []invoice.Line) error {
	conn := database.Conn(ctx, s.db)

	if _, err := conn.ExecContext(ctx, `DELETE FROM invoice_lines WHERE invoice_id = $1`, id); err != nil {
		return fmt.Errorf("clearing invoice lines: %w", err)
	}

	if _, err := conn.ExecContext(ctx, `UPDATE invoices SET updated_at = NOW() WHERE id = $1`, id); err != nil {
		return fmt.Errorf("touching invoice: %w", err)
	}

	return s.insertLines(ctx, id, lines)
}

func (s *Store) GetInvoice(ctx context.Context, id int64) (*invoice.Invoice, error) {
	return s.getInvoice(ctx, id, "")
}

func (s *Store) LockInvoice(ctx context.Context, id int64) (*invoice.Invoice, error) {
	return s.getInvoice(ctx, id, " FOR UPDATE")
}

func (s *Store) getInvoice(ctx context.Context, id int64, lock string) (*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices WHERE id = $1` + lock

	inv, err := scanInvoice(database.Conn(ctx, s.db).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", invoice.ErrInvoiceNotFound, id)
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	if inv.Lines, err = s.lines(ctx, id); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Store) lines(ctx context.Context, invoiceID int64) ([]invoice.Line, error) {
	rows, err := database.Conn(ctx, s.db).QueryContext(ctx, `
		SELECT id, line_no, product_id, description, quantity, unit_price,
			discount_percent, discount_amount, tax_percent, tax_amount
		FROM invoice_lines
		WHERE invoice_id = $1
		ORDER BY line_no`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("listing invoice lines: %w", err)
	}
	defer rows.Close()

	var lines []invoice.Line

	for rows.Next() {
		var l invoice.Line
		if err := rows.Scan(
			&l.ID, &l.LineNo, &l.ProductID, &l.Description, &l.Quantity, &l.UnitPrice,
			&l.DiscountPercent, &l.DiscountAmount, &l.TaxPercent, &l.TaxAmount,
		); err != nil {
			return nil, fmt.Errorf("scanning invoice line: %w", err)
		}

		lines = append(lines, l)
	}

	return lines, rows.Err()
}

// ListInvoices returns headers only; Lines is left nil.
func (s *Store) ListInvoices(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices WHERE fiscal_year_id = $1`

	args := []any{filter.FiscalYearID}

	add := func(clause string, v any) {
		args = append(args, v)
		query += fmt.Sprintf(" AND "+clause, len(args))
	}

	if filter.Type != nil {
		add("invoice_type = $%d", *filter.Type)
	}

	if filter.Status != nil {
		add("status = $%d", *filter.Status)
	}

	if filter.PersonID != nil {
		add("person_id = $%d", *filter.PersonID)
	}

	if filter.From != nil {
		add("invoice_date >= $%d", *filter.From)
	}

	if filter.To != nil {
		add("invoice_date <= $%d", *filter.To)
	}

	query += " ORDER BY invoice_date, invoice_type, invoice_no"

	rows, err := database.Conn(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*invoice.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invoices = append(invoices, inv)
	}

	return invoices, rows.Err()
}

// SetStatus records the entry that moved the invoice into status: the posting
// entry on confirmation, the reversal on return.
func (s *Store) SetStatus(ctx context.Context, id int64, status invoice.Status, entryID int64) error {
	column := "journal_entry_id"
	if status == invoice.StatusReturned {
		column = "return_entry_id"
	}

	query := `UPDATE invoices SET status = $2, ` + column + ` = $3, updated_at = NOW() WHERE id = $1`

	if _, err := database.Conn(ctx, s.db).ExecContext(ctx, query, id, status, entryID); err != nil {
		return fmt.Errorf("updating invoice status: %w", err)
	}

	return nil
}

func (s *Store) DeleteInvoice(ctx context.Context, id int64) error {
	if _, err := database.Conn(ctx, s.db).ExecContext(ctx, `DELETE FROM invoices WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	return nil
}
