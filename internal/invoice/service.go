package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/daftar/internal/chart"
	"github.com/MrJamesThe3rd/daftar/internal/database"
	"github.com/MrJamesThe3rd/daftar/internal/fiscal"
	"github.com/MrJamesThe3rd/daftar/internal/journal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	// CreateInvoice inserts the invoice with its lines.
	CreateInvoice(ctx context.Context, inv *Invoice) error
	GetInvoice(ctx context.Context, id int64) (*Invoice, error)
	// LockInvoice reads the invoice and its lines FOR UPDATE.
	LockInvoice(ctx context.Context, id int64) (*Invoice, error)
	ListInvoices(ctx context.Context, filter ListFilter) ([]*Invoice, error)
	ReplaceLines(ctx context.Context, id int64, lines []Line) error
	SetStatus(ctx context.Context, id int64, status Status, entryID int64) error
	DeleteInvoice(ctx context.Context, id int64) error
	NextInvoiceNo(ctx context.Context, fiscalYearID int64, typ Type) (int64, error)
}

type Ledger interface {
	PostWithin(ctx context.Context, params journal.PostParams) (*journal.Entry, error)
	Reverse(ctx context.Context, params journal.ReverseParams) (*journal.Entry, error)
}

type Accounts interface {
	ResolveLeafByCode(ctx context.Context, fiscalYearID int64, code string) (*chart.Account, error)
}

type Years interface {
	EnsureOpen(ctx context.Context, id int64, date time.Time) (*fiscal.Year, error)
}

type Directory interface {
	RequirePerson(ctx context.Context, id int64) error
	RequireProducts(ctx context.Context, ids []int64) error
}

// Rules names the chart codes invoices post to.
type Rules struct {
	Receivable    string
	Payable       string
	Sales         string
	Purchases     string
	TaxPayable    string
	TaxReceivable string
}

type Service struct {
	repo      Repository
	ledger    Ledger
	accounts  Accounts
	years     Years
	directory Directory
	tx        database.TxRunner
	rules     Rules
}

func NewService(repo Repository, ledger Ledger, accounts Accounts, years Years, directory Directory, tx database.TxRunner, rules Rules) *Service {
	return &Service{repo: repo, ledger: ledger, accounts: accounts, years: years, directory: directory, tx: tx, rules: rules}
}

type CreateParams struct {
	FiscalYearID int64
	Type         Type
	PersonID     int64
	InvoiceDate  time.Time
	DueDate      *time.Time
	Description  string
	Lines        []Line
}

// Create stores a draft invoice numbered within its year and type.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Invoice, error) {
	if !params.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidInvoice, params.Type)
	}

	inv := &Invoice{
		FiscalYearID: params.FiscalYearID,
		Type:         params.Type,
		PersonID:     params.PersonID,
		InvoiceDate:  fiscal.Day(params.InvoiceDate),
		Description:  strings.TrimSpace(params.Description),
		Status:       StatusDraft,
		Lines:        numbered(params.Lines),
	}

	if params.DueDate != nil {
		due := fiscal.Day(*params.DueDate)
		if due.Before(inv.InvoiceDate) {
			return nil, fmt.Errorf("%w: due date precedes invoice date", ErrInvalidInvoice)
		}

		inv.DueDate = &due
	}

	if err := ValidateLines(inv.Lines); err != nil {
		return nil, err
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.years.EnsureOpen(ctx, inv.FiscalYearID, inv.InvoiceDate); err != nil {
			return err
		}

		if err := s.directory.RequirePerson(ctx, inv.PersonID); err != nil {
			return err
		}

		if err := s.directory.RequireProducts(ctx, productIDs(inv.Lines)); err != nil {
			return err
		}

		no, err := s.repo.NextInvoiceNo(ctx, inv.FiscalYearID, inv.Type)
		if err != nil {
			return err
		}

		inv.InvoiceNo = no

		return s.repo.CreateInvoice(ctx, inv)
	})
	if err != nil {
		return nil, err
	}

	return inv, nil
}

// UpdateLines replaces the lines of a draft invoice.
func (s *Service) UpdateLines(ctx context.Context, id int64, lines []Line) (*Invoice, error) {
	lines = numbered(lines)
	if err := ValidateLines(lines); err != nil {
		return nil, err
	}

	var inv *Invoice

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error

		inv, err = s.repo.LockInvoice(ctx, id)
		if err != nil {
			return err
		}

		if inv.Status != StatusDraft {
			return fmt.Errorf("%w: invoice %d is %s", ErrWrongStatus, inv.InvoiceNo, inv.Status)
		}

		if err := s.directory.RequireProducts(ctx, productIDs(lines)); err != nil {
			return err
		}

		if err := s.repo.ReplaceLines(ctx, id, lines); err != nil {
			return err
		}

		inv.Lines = lines

		return nil
	})
	if err != nil {
		return nil, err
	}

	return inv, nil
}

// Confirm posts a draft sales or purchase invoice to the ledger.
func (s *Service) Confirm(ctx context.Context, id int64) (*Invoice, error) {
	var inv *Invoice

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error

		inv, err = s.repo.LockInvoice(ctx, id)
		if err != nil {
			return err
		}

		switch inv.Status {
		case StatusDraft:
		case StatusConfirmed:
			return fmt.Errorf("%w: invoice %d", ErrAlreadyConfirmed, inv.InvoiceNo)
		default:
			return fmt.Errorf("%w: invoice %d is %s", ErrWrongStatus, inv.InvoiceNo, inv.Status)
		}

		if inv.Type == TypeProforma {
			return fmt.Errorf("%w: invoice %d", ErrNotPostable, inv.InvoiceNo)
		}

		if len(inv.Lines) == 0 {
			return fmt.Errorf("%w: invoice %d", ErrEmptyInvoice, inv.InvoiceNo)
		}

		lines, err := s.postingLines(ctx, inv)
		if err != nil {
			return err
		}

		entry, err := s.ledger.PostWithin(ctx, journal.PostParams{
			FiscalYearID: inv.FiscalYearID,
			Date:         inv.InvoiceDate,
			Description:  fmt.Sprintf("%s invoice %d", inv.Type, inv.InvoiceNo),
			Lines:        lines,
			SourceType:   journal.SourceInvoice,
			SourceID:     &inv.ID,
		})
		if err != nil {
			return err
		}

		if err := s.repo.SetStatus(ctx, inv.ID, StatusConfirmed, entry.ID); err != nil {
			return err
		}

		inv.Status = StatusConfirmed
		inv.JournalEntryID = &entry.ID

		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("invoice confirmed", "invoice_id", inv.ID, "type", inv.Type, "invoice_no", inv.InvoiceNo, "entry_id", *inv.JournalEntryID)

	return inv, nil
}

// postingLines builds the confirmation entry. Zero amounts produce no line.
func (s *Service) postingLines(ctx context.Context, inv *Invoice) ([]journal.Line, error) {
	t := inv.Totals()
	if t.Total == 0 {
		return nil, fmt.Errorf("%w: invoice %d", ErrZeroTotal, inv.InvoiceNo)
	}

	codes := []string{s.rules.Receivable, s.rules.Sales, s.rules.TaxPayable}
	if inv.Type == TypePurchase {
		codes = []string{s.rules.Payable, s.rules.Purchases, s.rules.TaxReceivable}
	}

	ids := make([]int64, len(codes))
	for i, code := range codes {
		a, err := s.accounts.ResolveLeafByCode(ctx, inv.FiscalYearID, code)
		if err != nil {
			return nil, fmt.Errorf("invoice posting account %s: %w", code, err)
		}

		ids[i] = a.ID
	}

	person, goods, tax := ids[0], ids[1], ids[2]

	var lines []journal.Line

	add := func(l journal.Line) {
		if l.Debit != 0 || l.Credit != 0 {
			lines = append(lines, l)
		}
	}

	if inv.Type == TypeSales {
		add(journal.Line{AccountID: person, Debit: t.Total, PersonID: &inv.PersonID})
		add(journal.Line{AccountID: goods, Credit: t.Net})
		add(journal.Line{AccountID: tax, Credit: t.Tax})
	} else {
		add(journal.Line{AccountID: goods, Debit: t.Net})
		add(journal.Line{AccountID: tax, Debit: t.Tax})
		add(journal.Line{AccountID: person, Credit: t.Total, PersonID: &inv.PersonID})
	}

	return lines, nil
}

// Return reverses a confirmed invoice's entry and marks it returned.
func (s *Service) Return(ctx context.Context, id int64, date time.Time) (*Invoice, error) {
	var inv *Invoice

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error

		inv, err = s.repo.LockInvoice(ctx, id)
		if err != nil {
			return err
		}

		if inv.Status != StatusConfirmed || inv.JournalEntryID == nil {
			return fmt.Errorf("%w: invoice %d is %s", ErrWrongStatus, inv.InvoiceNo, inv.Status)
		}

		entry, err := s.ledger.Reverse(ctx, journal.ReverseParams{
			EntryID:     *inv.JournalEntryID,
			Date:        date,
			Description: fmt.Sprintf("Return of %s invoice %d", inv.Type, inv.InvoiceNo),
		})
		if err != nil {
			return err
		}

		if err := s.repo.SetStatus(ctx, inv.ID, StatusReturned, entry.ID); err != nil {
			return err
		}

		inv.Status = StatusReturned
		inv.ReturnEntryID = &entry.ID

		return nil
	})
	if err != nil {
		return nil, err
	}

	return inv, nil
}

// Delete removes a draft invoice.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		inv, err := s.repo.LockInvoice(ctx, id)
		if err != nil {
			return err
		}

		if inv.Status != StatusDraft {
			return fmt.Errorf("%w: invoice %d is %s", ErrCannotDeletePosted, inv.InvoiceNo, inv.Status)
		}

		return s.repo.DeleteInvoice(ctx, id)
	})
}

func (s *Service) Get(ctx context.Context, id int64) (*Invoice, error) {
	return s.repo.GetInvoice(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx, filter)
}

func numbered(lines []Line) []Line {
	out := make([]Line, len(lines))
	for i, l := range lines {
		l.LineNo = i + 1
		l.Description = strings.TrimSpace(l.Description)
		out[i] = l
	}

	return out
}

func productIDs(lines []Line) []int64 {
	ids := make([]int64, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}

	return ids
}
