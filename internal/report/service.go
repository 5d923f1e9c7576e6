package report

import (
	"context"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/daftar/internal/chart"
	"github.com/MrJamesThe3rd/daftar/internal/database"
	"github.com/MrJamesThe3rd/daftar/internal/fiscal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=report
type Repository interface {
	// Totals sums posted lines per account within the year and period.
	Totals(ctx context.Context, fiscalYearID int64, period Period) (map[int64]Sums, error)
	// Postings lists posted lines of the accounts ordered by voucher date and number.
	Postings(ctx context.Context, accountIDs []int64, period Period) ([]Posting, error)
	// Opening sums posted lines of the accounts dated strictly before period.From.
	Opening(ctx context.Context, accountIDs []int64, period Period) (Sums, error)
}

type Accounts interface {
	GetAccount(ctx context.Context, id int64) (*chart.Account, error)
	ListAccounts(ctx context.Context, fiscalYearID int64) ([]*chart.Account, error)
}

type Service struct {
	repo     Repository
	accounts Accounts
	tx       database.SnapshotRunner
}

func NewService(repo Repository, accounts Accounts, tx database.SnapshotRunner) *Service {
	return &Service{repo: repo, accounts: accounts, tx: tx}
}

func normalize(p Period) (Period, error) {
	if p.From != nil {
		p.From = new(fiscal.Day(*p.From))
	}

	if p.To != nil {
		p.To = new(fiscal.Day(*p.To))
	}

	if !p.valid() {
		return p, fmt.Errorf("%w: %s is after %s", ErrInvalidRange, p.From.Format("2006-01-02"), p.To.Format("2006-01-02"))
	}

	return p, nil
}

func (s *Service) TrialBalance(ctx context.Context, fiscalYearID int64, period Period, level int) (*TrialBalance, error) {
	if level < 0 || level > chart.MaxLevel {
		return nil, fmt.Errorf("%w: level %d", ErrInvalidRange, level)
	}

	period, err := normalize(period)
	if err != nil {
		return nil, err
	}

	var tb TrialBalance

	err = s.tx.WithinSnapshot(ctx, func(ctx context.Context) error {
		accounts, err := s.accounts.ListAccounts(ctx, fiscalYearID)
		if err != nil {
			return err
		}

		totals, err := s.repo.Totals(ctx, fiscalYearID, period)
		if err != nil {
			return err
		}

		tb = BuildTrialBalance(accounts, totals, level)

		return nil
	})
	if err != nil {
		return nil, err
	}

	tb.FiscalYearID = fiscalYearID
	tb.Period = period

	return &tb, nil
}

// Ledger lists the postings of an account. A group account's ledger covers
// every account below it.
func (s *Service) Ledger(ctx context.Context, accountID int64, period Period) (*Ledger, error) {
	period, err := normalize(period)
	if err != nil {
		return nil, err
	}

	var l Ledger

	err = s.tx.WithinSnapshot(ctx, func(ctx context.Context) error {
		account, err := s.accounts.GetAccount(ctx, accountID)
		if err != nil {
			return err
		}

		ids := []int64{account.ID}

		if !account.IsLeaf {
			all, err := s.accounts.ListAccounts(ctx, account.FiscalYearID)
			if err != nil {
				return err
			}

			for _, a := range all {
				if chart.Descends(a.Code, account.Code) {
					ids = append(ids, a.ID)
				}
			}
		}

		var opening Sums
		if period.From != nil {
			if opening, err = s.repo.Opening(ctx, ids, period); err != nil {
				return err
			}
		}

		postings, err := s.repo.Postings(ctx, ids, period)
		if err != nil {
			return err
		}

		l = BuildLedger(account, opening, postings)

		return nil
	})
	if err != nil {
		return nil, err
	}

	l.Period = period

	return &l, nil
}

// BalanceSheet reports balances up to and including asOf, or the whole year.
func (s *Service) BalanceSheet(ctx context.Context, fiscalYearID int64, asOf *time.Time) (*BalanceSheet, error) {
	period, err := normalize(Period{To: asOf})
	if err != nil {
		return nil, err
	}

	var bs BalanceSheet

	err = s.tx.WithinSnapshot(ctx, func(ctx context.Context) error {
		accounts, totals, err := s.load(ctx, fiscalYearID, period)
		if err != nil {
			return err
		}

		bs = BuildBalanceSheet(accounts, totals)

		return nil
	})
	if err != nil {
		return nil, err
	}

	bs.FiscalYearID = fiscalYearID
	bs.AsOf = period.To

	return &bs, nil
}

func (s *Service) ProfitLoss(ctx context.Context, fiscalYearID int64, period Period) (*ProfitLoss, error) {
	period, err := normalize(period)
	if err != nil {
		return nil, err
	}

	var pl ProfitLoss

	err = s.tx.WithinSnapshot(ctx, func(ctx context.Context) error {
		accounts, totals, err := s.load(ctx, fiscalYearID, period)
		if err != nil {
			return err
		}

		pl = BuildProfitLoss(accounts, totals)

		return nil
	})
	if err != nil {
		return nil, err
	}

	pl.FiscalYearID = fiscalYearID
	pl.Period = period

	return &pl, nil
}

func (s *Service) load(ctx context.Context, fiscalYearID int64, period Period) ([]*chart.Account, map[int64]Sums, error) {
	accounts, err := s.accounts.ListAccounts(ctx, fiscalYearID)
	if err != nil {
		return nil, nil, err
	}

	totals, err := s.repo.Totals(ctx, fiscalYearID, period)
	if err != nil {
		return nil, nil, err
	}

	return accounts, totals, nil
}
