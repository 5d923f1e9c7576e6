package cash

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/daftar/internal/chart"
	"github.com/MrJamesThe3rd/daftar/internal/database"
	"github.com/MrJamesThe3rd/daftar/internal/fiscal"
	"github.com/MrJamesThe3rd/daftar/internal/journal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=cash
type Repository interface {
	CreateAccount(ctx context.Context, a *Account) error
	UpdateAccount(ctx context.Context, a *Account) error
	GetAccount(ctx context.Context, id int64) (*Account, error)
	ListAccounts(ctx context.Context) ([]*Account, error)
	IsAccountReferenced(ctx context.Context, id int64) (bool, error)
	DeleteAccount(ctx context.Context, id int64) error
	CreateVoucher(ctx context.Context, v *Voucher) error
	GetVoucher(ctx context.Context, id int64) (*Voucher, error)
	LockVoucher(ctx context.Context, id int64) (*Voucher, error)
	ListVouchers(ctx context.Context, filter VoucherFilter) ([]*Voucher, error)
	MarkVoucherPosted(ctx context.Context, id, voucherNo, entryID int64) error
	DeleteVoucher(ctx context.Context, id int64) error
	NextVoucherNo(ctx context.Context, fiscalYearID int64) (int64, error)
}

type Ledger interface {
	PostWithin(ctx context.Context, params journal.PostParams) (*journal.Entry, error)
}

type Accounts interface {
	GetAccount(ctx context.Context, id int64) (*chart.Account, error)
	ResolveLeafByCode(ctx context.Context, fiscalYearID int64, code string) (*chart.Account, error)
}

type Persons interface {
	RequirePerson(ctx context.Context, id int64) error
}

// Rules names the chart codes the counter-side of each voucher posts to.
type Rules struct {
	Receivable string
	Payable    string
	BankFees   string
}

type Service struct {
	repo     Repository
	ledger   Ledger
	accounts Accounts
	persons  Persons
	tx       database.TxRunner
	rules    Rules
}

func NewService(repo Repository, ledger Ledger, accounts Accounts, persons Persons, tx database.TxRunner, rules Rules) *Service {
	return &Service{repo: repo, ledger: ledger, accounts: accounts, persons: persons, tx: tx, rules: rules}
}

func (s *Service) CreateAccount(ctx context.Context, params AccountParams) (*Account, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	if err := s.checkChartAccount(ctx, params.ChartAccountID); err != nil {
		return nil, err
	}

	a := &Account{IsActive: true}
	apply(a, params)

	if err := s.repo.CreateAccount(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) UpdateAccount(ctx context.Context, id int64, params AccountParams) (*Account, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	if err := s.checkChartAccount(ctx, params.ChartAccountID); err != nil {
		return nil, err
	}

	a, err := s.repo.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	apply(a, params)

	if err := s.repo.UpdateAccount(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func apply(a *Account, p AccountParams) {
	a.Name = strings.TrimSpace(p.Name)
	a.Type = p.Type
	a.Code = strings.TrimSpace(p.Code)
	a.Sheba = strings.TrimSpace(p.Sheba)
	a.CardNo = strings.TrimSpace(p.CardNo)
	a.ChartAccountID = p.ChartAccountID

	if p.IsActive != nil {
		a.IsActive = *p.IsActive
	}
}

// checkChartAccount accepts only asset leaves as a cash account's ledger account.
func (s *Service) checkChartAccount(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}

	a, err := s.accounts.GetAccount(ctx, *id)
	if err != nil {
		return err
	}

	if a.Type != chart.TypeAsset || !a.IsLeaf {
		return fmt.Errorf("%w: ledger account %s must be an asset leaf", ErrInvalidCashAccount, a.Code)
	}

	return nil
}

func (s *Service) GetAccount(ctx context.Context, id int64) (*Account, error) {
	return s.repo.GetAccount(ctx, id)
}

func (s *Service) ListAccounts(ctx context.Context) ([]*Account, error) {
	return s.repo.ListAccounts(ctx)
}

func (s *Service) DeleteAccount(ctx context.Context, id int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetAccount(ctx, id); err != nil {
			return err
		}

		used, err := s.repo.IsAccountReferenced(ctx, id)
		if err != nil {
			return err
		}

		if used {
			return fmt.Errorf("%w: %d", ErrAccountInUse, id)
		}

		return s.repo.DeleteAccount(ctx, id)
	})
}

type ReceiptParams struct {
	FiscalYearID  int64
	CashAccountID int64
	PersonID      int64
	Amount        int64
	Date          time.Time
	Description   string
}

// PostReceipt records money received from a person: the cash account is
// debited and the person's receivable credited.
func (s *Service) PostReceipt(ctx context.Context, params ReceiptParams) (*Voucher, error) {
	return s.createAndPost(ctx, &Voucher{
		FiscalYearID:  params.FiscalYearID,
		VoucherDate:   params.Date,
		Type:          VoucherReceipt,
		CashAccountID: params.CashAccountID,
		PersonID:      &params.PersonID,
		Amount:        params.Amount,
		Description:   params.Description,
	})
}

type PaymentParams struct {
	FiscalYearID  int64
	CashAccountID int64
	PersonID      int64
	Amount        int64
	BankFee       int64
	Date          time.Time
	Description   string
}

// PostPayment records money paid to a person: the person's payable is debited
// and the cash account credited with the amount plus any bank fee.
func (s *Service) PostPayment(ctx context.Context, params PaymentParams) (*Voucher, error) {
	return s.createAndPost(ctx, &Voucher{
		FiscalYearID:  params.FiscalYearID,
		VoucherDate:   params.Date,
		Type:          VoucherPayment,
		CashAccountID: params.CashAccountID,
		PersonID:      &params.PersonID,
		Amount:        params.Amount,
		BankFee:       params.BankFee,
		Description:   params.Description,
	})
}

type TransferParams struct {
	FiscalYearID int64
	FromID       int64
	ToID         int64
	Amount       int64
	BankFee      int64
	Date         time.Time
	Description  string
}

// PostTransfer moves money between two cash accounts. A bank fee is borne by
// the source account.
func (s *Service) PostTransfer(ctx context.Context, params TransferParams) (*Voucher, error) {
	return s.createAndPost(ctx, &Voucher{
		FiscalYearID:  params.FiscalYearID,
		VoucherDate:   params.Date,
		Type:          VoucherTransfer,
		CashAccountID: params.FromID,
		TransferToID:  &params.ToID,
		Amount:        params.Amount,
		BankFee:       params.BankFee,
		Description:   params.Description,
	})
}

func (s *Service) createAndPost(ctx context.Context, v *Voucher) (*Voucher, error) {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.create(ctx, v); err != nil {
			return err
		}

		return s.post(ctx, v)
	})
	if err != nil {
		return nil, err
	}

	return v, nil
}

type VoucherParams struct {
	FiscalYearID  int64
	Type          VoucherType
	CashAccountID int64
	TransferToID  *int64
	PersonID      *int64
	Amount        int64
	BankFee       int64
	Date          time.Time
	Description   string
}

// CreateVoucher saves a draft voucher for later posting.
func (s *Service) CreateVoucher(ctx context.Context, params VoucherParams) (*Voucher, error) {
	v := &Voucher{
		FiscalYearID:  params.FiscalYearID,
		VoucherDate:   params.Date,
		Type:          params.Type,
		CashAccountID: params.CashAccountID,
		TransferToID:  params.TransferToID,
		PersonID:      params.PersonID,
		Amount:        params.Amount,
		BankFee:       params.BankFee,
		Description:   params.Description,
	}

	if err := s.tx.WithinTx(ctx, func(ctx context.Context) error { return s.create(ctx, v) }); err != nil {
		return nil, err
	}

	return v, nil
}

func (s *Service) create(ctx context.Context, v *Voucher) error {
	v.VoucherDate = fiscal.Day(v.VoucherDate)
	v.Description = strings.TrimSpace(v.Description)
	v.Status = StatusDraft

	if err := v.Validate(); err != nil {
		return err
	}

	if v.PersonID != nil {
		if err := s.persons.RequirePerson(ctx, *v.PersonID); err != nil {
			return err
		}
	}

	return s.repo.CreateVoucher(ctx, v)
}

func (s *Service) PostVoucher(ctx context.Context, id int64) (*Voucher, error) {
	var v *Voucher

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error

		v, err = s.lockDraft(ctx, id)
		if err != nil {
			return err
		}

		return s.post(ctx, v)
	})
	if err != nil {
		return nil, err
	}

	return v, nil
}

func (s *Service) DeleteVoucher(ctx context.Context, id int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.lockDraft(ctx, id); err != nil {
			return err
		}

		return s.repo.DeleteVoucher(ctx, id)
	})
}

func (s *Service) lockDraft(ctx context.Context, id int64) (*Voucher, error) {
	v, err := s.repo.LockVoucher(ctx, id)
	if err != nil {
		return nil, err
	}

	if v.Status == StatusPosted {
		return nil, fmt.Errorf("%w: voucher %d", ErrVoucherPosted, v.VoucherNo)
	}

	return v, nil
}

func (s *Service) GetVoucher(ctx context.Context, id int64) (*Voucher, error) {
	return s.repo.GetVoucher(ctx, id)
}

func (s *Service) ListVouchers(ctx context.Context, filter VoucherFilter) ([]*Voucher, error) {
	return s.repo.ListVouchers(ctx, filter)
}

// post turns a stored draft into a journal entry and numbers it. The caller
// owns the transaction.
func (s *Service) post(ctx context.Context, v *Voucher) error {
	lines, err := s.lines(ctx, v)
	if err != nil {
		return err
	}

	entry, err := s.ledger.PostWithin(ctx, journal.PostParams{
		FiscalYearID: v.FiscalYearID,
		Date:         v.VoucherDate,
		Description:  v.describe(),
		Lines:        lines,
		SourceType:   journal.SourceReceiptVoucher,
		SourceID:     &v.ID,
	})
	if err != nil {
		return err
	}

	no, err := s.repo.NextVoucherNo(ctx, v.FiscalYearID)
	if err != nil {
		return err
	}

	if err := s.repo.MarkVoucherPosted(ctx, v.ID, no, entry.ID); err != nil {
		return err
	}

	v.VoucherNo = no
	v.Status = StatusPosted
	v.JournalEntryID = &entry.ID

	slog.Info("cash voucher posted", "voucher_id", v.ID, "type", v.Type, "voucher_no", no, "entry_id", entry.ID)

	return nil
}

func (v *Voucher) describe() string {
	if v.Description != "" {
		return v.Description
	}

	return fmt.Sprintf("Cash %s", v.Type)
}

// lines builds the journal lines of a voucher.
func (s *Service) lines(ctx context.Context, v *Voucher) ([]journal.Line, error) {
	source, err := s.LedgerAccount(ctx, v.FiscalYearID, v.CashAccountID)
	if err != nil {
		return nil, err
	}

	var lines []journal.Line

	switch v.Type {
	case VoucherReceipt:
		receivable, err := s.accounts.ResolveLeafByCode(ctx, v.FiscalYearID, s.rules.Receivable)
		if err != nil {
			return nil, fmt.Errorf("receivable account: %w", err)
		}

		lines = []journal.Line{
			{AccountID: source.ID, Debit: v.Amount},
			{AccountID: receivable.ID, Credit: v.Amount, PersonID: v.PersonID},
		}
	case VoucherPayment:
		payable, err := s.accounts.ResolveLeafByCode(ctx, v.FiscalYearID, s.rules.Payable)
		if err != nil {
			return nil, fmt.Errorf("payable account: %w", err)
		}

		lines = []journal.Line{
			{AccountID: payable.ID, Debit: v.Amount, PersonID: v.PersonID},
			{AccountID: source.ID, Credit: v.Amount + v.BankFee},
		}
	case VoucherTransfer:
		dest, err := s.LedgerAccount(ctx, v.FiscalYearID, *v.TransferToID)
		if err != nil {
			return nil, err
		}

		lines = []journal.Line{
			{AccountID: dest.ID, Debit: v.Amount},
			{AccountID: source.ID, Credit: v.Amount + v.BankFee},
		}
	}

	if v.BankFee > 0 {
		fees, err := s.accounts.ResolveLeafByCode(ctx, v.FiscalYearID, s.rules.BankFees)
		if err != nil {
			return nil, fmt.Errorf("bank fee account: %w", err)
		}

		lines = append(lines, journal.Line{AccountID: fees.ID, Debit: v.BankFee, Description: "Bank fee"})
	}

	return lines, nil
}

// LedgerAccount resolves a cash account's chart account in the posting year.
func (s *Service) LedgerAccount(ctx context.Context, fiscalYearID, cashAccountID int64) (*chart.Account, error) {
	ca, err := s.repo.GetAccount(ctx, cashAccountID)
	if err != nil {
		return nil, err
	}

	if !ca.IsActive {
		return nil, fmt.Errorf("%w: %s", ErrInactiveAccount, ca.Name)
	}

	if ca.ChartAccountID == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoLedgerAccount, ca.Name)
	}

	linked, err := s.accounts.GetAccount(ctx, *ca.ChartAccountID)
	if err != nil {
		return nil, err
	}

	if linked.FiscalYearID == fiscalYearID {
		return linked, nil
	}

	a, err := s.accounts.ResolveLeafByCode(ctx, fiscalYearID, linked.Code)
	if errors.Is(err, chart.ErrUnknownAccount) {
		return nil, fmt.Errorf("%w: %s has no account %s in the posting year", ErrNoLedgerAccount, ca.Name, linked.Code)
	}

	return a, err
}
