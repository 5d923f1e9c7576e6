package check

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/daftar/internal/cash"
	"github.com/MrJamesThe3rd/daftar/internal/chart"
	"github.com/MrJamesThe3rd/daftar/internal/database"
	"github.com/MrJamesThe3rd/daftar/internal/fiscal"
	"github.com/MrJamesThe3rd/daftar/internal/journal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=check
type Repository interface {
	CreateCheck(ctx context.Context, c *Check) error
	GetCheck(ctx context.Context, id int64) (*Check, error)
	// LockCheck reads the check FOR UPDATE.
	LockCheck(ctx context.Context, id int64) (*Check, error)
	ListChecks(ctx context.Context, filter ListFilter) ([]*Check, error)
	UpdateStatus(ctx context.Context, id int64, status Status, entryID int64) error
	AddTransition(ctx context.Context, t *Transition) error
	ListTransitions(ctx context.Context, checkID int64) ([]*Transition, error)
}

type Ledger interface {
	PostWithin(ctx context.Context, params journal.PostParams) (*journal.Entry, error)
}

type Accounts interface {
	ResolveLeafByCode(ctx context.Context, fiscalYearID int64, code string) (*chart.Account, error)
}

type BankAccounts interface {
	GetAccount(ctx context.Context, id int64) (*cash.Account, error)
	LedgerAccount(ctx context.Context, fiscalYearID, cashAccountID int64) (*chart.Account, error)
}

type Persons interface {
	RequirePerson(ctx context.Context, id int64) error
}

// Rules names the chart codes behind each posting side except the bank.
type Rules struct {
	Receivable       string
	Payable          string
	ChecksReceivable string
	ChecksPayable    string
}

type Service struct {
	repo     Repository
	ledger   Ledger
	accounts Accounts
	banks    BankAccounts
	persons  Persons
	tx       database.TxRunner
	rules    Rules
}

func NewService(repo Repository, ledger Ledger, accounts Accounts, banks BankAccounts, persons Persons, tx database.TxRunner, rules Rules) *Service {
	return &Service{repo: repo, ledger: ledger, accounts: accounts, banks: banks, persons: persons, tx: tx, rules: rules}
}

type RegisterParams struct {
	FiscalYearID  int64
	Type          Type
	CheckNo       string
	CheckDate     time.Time
	DueDate       time.Time
	Amount        int64
	CashAccountID int64
	PersonID      int64
	Description   string
}

// Register puts a check in the safe and posts its registration entry.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*Check, error) {
	c := &Check{
		FiscalYearID:  params.FiscalYearID,
		Type:          params.Type,
		CheckNo:       strings.TrimSpace(params.CheckNo),
		CheckDate:     fiscal.Day(params.CheckDate),
		DueDate:       fiscal.Day(params.DueDate),
		Amount:        params.Amount,
		CashAccountID: params.CashAccountID,
		PersonID:      params.PersonID,
		Status:        StatusInSafe,
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.persons.RequirePerson(ctx, c.PersonID); err != nil {
			return err
		}

		if _, err := s.banks.GetAccount(ctx, c.CashAccountID); err != nil {
			return err
		}

		if err := s.repo.CreateCheck(ctx, c); err != nil {
			return err
		}

		return s.record(ctx, c, c.FiscalYearID, "", registration[c.Type], c.CheckDate, params.Description)
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

type TransitionParams struct {
	// FiscalYearID, when set, must be the check's own year.
	FiscalYearID int64
	Date         time.Time
	Description  string
}

// Collect deposits a receivable check into its bank account.
func (s *Service) Collect(ctx context.Context, id int64, params TransitionParams) (*Check, error) {
	return s.apply(ctx, id, ActionCollect, params)
}

// Spend clears a payable check from its bank account.
func (s *Service) Spend(ctx context.Context, id int64, params TransitionParams) (*Check, error) {
	return s.apply(ctx, id, ActionSpend, params)
}

// Return bounces a check back to the person's account.
func (s *Service) Return(ctx context.Context, id int64, params TransitionParams) (*Check, error) {
	return s.apply(ctx, id, ActionReturn, params)
}

func (s *Service) apply(ctx context.Context, id int64, action Action, params TransitionParams) (*Check, error) {
	var c *Check

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error

		c, err = s.repo.LockCheck(ctx, id)
		if err != nil {
			return err
		}

		rule, err := Next(c.Type, c.Status, action)
		if err != nil {
			return err
		}

		if params.FiscalYearID != 0 && params.FiscalYearID != c.FiscalYearID {
			return fmt.Errorf("%w: check %d is in year %d, not %d", ErrCrossYear, c.ID, c.FiscalYearID, params.FiscalYearID)
		}

		return s.record(ctx, c, c.FiscalYearID, c.Status, rule, fiscal.Day(params.Date), params.Description)
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

// record posts the rule's entry in the given year, moves the check to the
// rule's status and logs the transition. The caller owns the transaction.
func (s *Service) record(ctx context.Context, c *Check, yearID int64, from Status, rule Rule, date time.Time, description string) error {
	debit, err := s.account(ctx, c, yearID, rule.Debit)
	if err != nil {
		return err
	}

	credit, err := s.account(ctx, c, yearID, rule.Credit)
	if err != nil {
		return err
	}

	if strings.TrimSpace(description) == "" {
		description = fmt.Sprintf("Check %s %s", c.CheckNo, rule.To)
	}

	entry, err := s.ledger.PostWithin(ctx, journal.PostParams{
		FiscalYearID: yearID,
		Date:         date,
		Description:  description,
		Lines: []journal.Line{
			{AccountID: debit.ID, Debit: c.Amount, PersonID: personFor(c, rule.Debit)},
			{AccountID: credit.ID, Credit: c.Amount, PersonID: personFor(c, rule.Credit)},
		},
		SourceType: journal.SourceCheck,
		SourceID:   &c.ID,
	})
	if err != nil {
		return err
	}

	if err := s.repo.UpdateStatus(ctx, c.ID, rule.To, entry.ID); err != nil {
		return err
	}

	if err := s.repo.AddTransition(ctx, &Transition{
		CheckID:        c.ID,
		From:           from,
		To:             rule.To,
		JournalEntryID: entry.ID,
		OccurredOn:     date,
	}); err != nil {
		return err
	}

	c.Status = rule.To
	c.JournalEntryID = &entry.ID

	slog.Info("check transitioned", "check_id", c.ID, "from", from, "to", rule.To, "entry_id", entry.ID)

	return nil
}

func (s *Service) account(ctx context.Context, c *Check, yearID int64, side Side) (*chart.Account, error) {
	if side == SideBank {
		return s.banks.LedgerAccount(ctx, yearID, c.CashAccountID)
	}

	code := map[Side]string{
		SideReceivable:       s.rules.Receivable,
		SidePayable:          s.rules.Payable,
		SideChecksReceivable: s.rules.ChecksReceivable,
		SideChecksPayable:    s.rules.ChecksPayable,
	}[side]

	a, err := s.accounts.ResolveLeafByCode(ctx, yearID, code)
	if err != nil {
		return nil, fmt.Errorf("%s account: %w", side, err)
	}

	return a, nil
}

// personFor tags person sub-ledger lines with the check's person.
func personFor(c *Check, side Side) *int64 {
	if side == SideReceivable || side == SidePayable {
		return &c.PersonID
	}

	return nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Check, error) {
	return s.repo.GetCheck(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Check, error) {
	return s.repo.ListChecks(ctx, filter)
}

// History lists the check's transitions, oldest first.
func (s *Service) History(ctx context.Context, id int64) ([]*Transition, error) {
	if _, err := s.repo.GetCheck(ctx, id); err != nil {
		return nil, err
	}

	return s.repo.ListTransitions(ctx, id)
}
