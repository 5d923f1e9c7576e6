package journal

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/daftar/internal/chart"
	"github.com/MrJamesThe3rd/daftar/internal/database"
	"github.com/MrJamesThe3rd/daftar/internal/fiscal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=journal
type Repository interface {
	// CreateEntry inserts the entry and its lines, numbering lines from 1.
	CreateEntry(ctx context.Context, e *Entry) error
	GetEntry(ctx context.Context, id int64) (*Entry, error)
	// LockEntry reads the entry and its lines FOR UPDATE.
	LockEntry(ctx context.Context, id int64) (*Entry, error)
	ListEntries(ctx context.Context, filter ListFilter) ([]*Entry, error)
	ReplaceDraft(ctx context.Context, e *Entry) error
	DeleteEntry(ctx context.Context, id int64) error
	MarkPosted(ctx context.Context, id int64, voucherNo int64) error
	IsReversed(ctx context.Context, id int64) (bool, error)
	NextVoucherNo(ctx context.Context, fiscalYearID int64) (int64, error)
	// ShareLockAccounts keeps the accounts from gaining children until the transaction ends.
	ShareLockAccounts(ctx context.Context, ids []int64) error
	// AccountTotals sums posted lines of the account and of any account below it.
	AccountTotals(ctx context.Context, a *chart.Account, asOf *time.Time) (debit, credit int64, err error)
}

type Accounts interface {
	GetAccount(ctx context.Context, id int64) (*chart.Account, error)
}

type Years interface {
	EnsureOpen(ctx context.Context, id int64, date time.Time) (*fiscal.Year, error)
}

type Service struct {
	repo     Repository
	accounts Accounts
	years    Years
	tx       database.TxRunner
}

func NewService(repo Repository, accounts Accounts, years Years, tx database.TxRunner) *Service {
	return &Service{repo: repo, accounts: accounts, years: years, tx: tx}
}

type PostParams struct {
	FiscalYearID int64
	Date         time.Time
	Description  string
	Lines        []Line
	SourceType   string
	SourceID     *int64
}

// PostEntry validates and posts an entry in its own transaction, or in the
// caller's when ctx already carries one.
func (s *Service) PostEntry(ctx context.Context, params PostParams) (*Entry, error) {
	var e *Entry

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error

		e, err = s.post(ctx, params, nil)

		return err
	})
	if err != nil {
		return nil, err
	}

	return e, nil
}

// PostWithin posts using the transaction carried by ctx. Callers that must
// commit their own rows together with the entry use it from inside WithinTx.
func (s *Service) PostWithin(ctx context.Context, params PostParams) (*Entry, error) {
	return s.post(ctx, params, nil)
}

func (s *Service) post(ctx context.Context, params PostParams, reverses *int64) (*Entry, error) {
	date := fiscal.Day(params.Date)

	if _, err := s.years.EnsureOpen(ctx, params.FiscalYearID, date); err != nil {
		return nil, err
	}

	if err := ValidateLines(params.Lines); err != nil {
		return nil, err
	}

	if err := s.checkAccounts(ctx, params.FiscalYearID, params.Lines, true); err != nil {
		return nil, err
	}

	no, err := s.repo.NextVoucherNo(ctx, params.FiscalYearID)
	if err != nil {
		return nil, err
	}

	e := &Entry{
		FiscalYearID:    params.FiscalYearID,
		VoucherNo:       no,
		VoucherDate:     date,
		Description:     strings.TrimSpace(params.Description),
		Status:          StatusPosted,
		SourceType:      params.SourceType,
		SourceID:        params.SourceID,
		ReversesEntryID: reverses,
		Lines:           numbered(params.Lines),
	}

	if err := s.repo.CreateEntry(ctx, e); err != nil {
		return nil, err
	}

	debit, _ := e.Totals()
	slog.Info("journal entry posted", "entry_id", e.ID, "fiscal_year_id", e.FiscalYearID, "voucher_no", no, "amount", debit)

	return e, nil
}

// checkAccounts ensures every line's account belongs to the year and, when
// leafOnly is set, takes postings.
func (s *Service) checkAccounts(ctx context.Context, fiscalYearID int64, lines []Line, leafOnly bool) error {
	ids := make([]int64, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.AccountID)
	}

	slices.Sort(ids)
	ids = slices.Compact(ids)

	if leafOnly {
		if err := s.repo.ShareLockAccounts(ctx, ids); err != nil {
			return err
		}
	}

	for _, id := range ids {
		a, err := s.accounts.GetAccount(ctx, id)
		if err != nil {
			return err
		}

		if a.FiscalYearID != fiscalYearID {
			return fmt.Errorf("%w: account %s belongs to another fiscal year", ErrUnknownAccount, a.Code)
		}

		if leafOnly && !a.IsLeaf {
			return fmt.Errorf("%w: %s %s", ErrNotLeafAccount, a.Code, a.Title)
		}
	}

	return nil
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

type DraftParams struct {
	FiscalYearID int64
	Date         time.Time
	Description  string
	Lines        []Line
}

// SaveDraft stores an editable entry. Drafts may be short or unbalanced; they
// are fully validated when posted.
func (s *Service) SaveDraft(ctx context.Context, params DraftParams) (*Entry, error) {
	e := &Entry{
		FiscalYearID: params.FiscalYearID,
		VoucherDate:  fiscal.Day(params.Date),
		Description:  strings.TrimSpace(params.Description),
		Status:       StatusDraft,
		Lines:        numbered(params.Lines),
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.checkDraft(ctx, e); err != nil {
			return err
		}

		return s.repo.CreateEntry(ctx, e)
	})
	if err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) UpdateDraft(ctx context.Context, id int64, params DraftParams) (*Entry, error) {
	var e *Entry

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.lockDraft(ctx, id)
		if err != nil {
			return err
		}

		e = &Entry{
			ID:           id,
			FiscalYearID: current.FiscalYearID,
			VoucherDate:  fiscal.Day(params.Date),
			Description:  strings.TrimSpace(params.Description),
			Status:       StatusDraft,
			Lines:        numbered(params.Lines),
			CreatedAt:    current.CreatedAt,
		}

		if err := s.checkDraft(ctx, e); err != nil {
			return err
		}

		return s.repo.ReplaceDraft(ctx, e)
	})
	if err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) DeleteDraft(ctx context.Context, id int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.lockDraft(ctx, id); err != nil {
			return err
		}

		return s.repo.DeleteEntry(ctx, id)
	})
}

// PostDraft validates a draft like a new entry and assigns its voucher number.
func (s *Service) PostDraft(ctx context.Context, id int64) (*Entry, error) {
	var e *Entry

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error

		e, err = s.lockDraft(ctx, id)
		if err != nil {
			return err
		}

		if _, err := s.years.EnsureOpen(ctx, e.FiscalYearID, e.VoucherDate); err != nil {
			return err
		}

		if err := ValidateLines(e.Lines); err != nil {
			return err
		}

		if err := s.checkAccounts(ctx, e.FiscalYearID, e.Lines, true); err != nil {
			return err
		}

		no, err := s.repo.NextVoucherNo(ctx, e.FiscalYearID)
		if err != nil {
			return err
		}

		if err := s.repo.MarkPosted(ctx, id, no); err != nil {
			return err
		}

		e.VoucherNo = no
		e.Status = StatusPosted

		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("journal draft posted", "entry_id", e.ID, "voucher_no", e.VoucherNo)

	return e, nil
}

func (s *Service) checkDraft(ctx context.Context, e *Entry) error {
	if _, err := s.years.EnsureOpen(ctx, e.FiscalYearID, e.VoucherDate); err != nil {
		return err
	}

	if err := validateDraftLines(e.Lines); err != nil {
		return err
	}

	return s.checkAccounts(ctx, e.FiscalYearID, e.Lines, false)
}

func (s *Service) lockDraft(ctx context.Context, id int64) (*Entry, error) {
	e, err := s.repo.LockEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	if e.Status == StatusPosted {
		return nil, fmt.Errorf("%w: voucher %d", ErrEntryPosted, e.VoucherNo)
	}

	return e, nil
}

type ReverseParams struct {
	EntryID     int64
	Date        time.Time
	Description string
}

// Reverse posts the mirror image of a posted entry. The original stays
// untouched and can be reversed only once.
func (s *Service) Reverse(ctx context.Context, params ReverseParams) (*Entry, error) {
	var e *Entry

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		original, err := s.repo.LockEntry(ctx, params.EntryID)
		if err != nil {
			return err
		}

		if original.Status != StatusPosted {
			return fmt.Errorf("%w: entry %d", ErrNotPosted, original.ID)
		}

		reversed, err := s.repo.IsReversed(ctx, original.ID)
		if err != nil {
			return err
		}

		if reversed {
			return fmt.Errorf("%w: voucher %d", ErrAlreadyReversed, original.VoucherNo)
		}

		date := params.Date
		if date.IsZero() {
			date = original.VoucherDate
		}

		description := params.Description
		if strings.TrimSpace(description) == "" {
			description = fmt.Sprintf("Reversal of voucher %d", original.VoucherNo)
		}

		e, err = s.post(ctx, PostParams{
			FiscalYearID: original.FiscalYearID,
			Date:         date,
			Description:  description,
			Lines:        swapSides(original.Lines),
			SourceType:   SourceReversal,
			SourceID:     &original.ID,
		}, &original.ID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Entry, error) {
	return s.repo.GetEntry(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Entry, error) {
	return s.repo.ListEntries(ctx, filter)
}

// AccountBalance sums posted lines up to and including asOf, or all of them
// when asOf is nil. Group accounts include every account below them.
func (s *Service) AccountBalance(ctx context.Context, accountID int64, asOf *time.Time) (*Balance, error) {
	a, err := s.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	debit, credit, err := s.repo.AccountTotals(ctx, a, asOf)
	if err != nil {
		return nil, err
	}

	b := &Balance{AccountID: a.ID, DebitTotal: debit, CreditTotal: credit, Balance: credit - debit}
	if a.Type.DebitNormal() {
		b.Balance = debit - credit
	}

	return b, nil
}
