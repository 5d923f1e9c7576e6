// Package report derives trial balance, ledger, balance sheet and profit and
// loss figures from posted journal lines. It keeps no state of its own.
package report

import (
	"sort"
	"time"

	"github.com/MrJamesThe3rd/daftar/internal/chart"
	"github.com/MrJamesThe3rd/daftar/internal/fault"
)

var ErrInvalidRange = fault.New(fault.KindValidation, "invalid_range", "report period is invalid")

// Sums are the posted debit and credit totals of one account.
type Sums struct {
	Debit  int64
	Credit int64
}

func (s Sums) Add(o Sums) Sums {
	return Sums{Debit: s.Debit + o.Debit, Credit: s.Credit + o.Credit}
}

// Sides splits the net amount into its debit or credit side. At most one
// side is non-zero.
func (s Sums) Sides() (debit, credit int64) {
	net := s.Debit - s.Credit
	if net > 0 {
		return net, 0
	}

	return 0, -net
}

type Period struct {
	From *time.Time
	To   *time.Time
}

func (p Period) valid() bool {
	return p.From == nil || p.To == nil || !p.To.Before(*p.From)
}

type TrialRow struct {
	AccountID     int64
	Code          string
	Title         string
	Level         int
	Type          chart.Type
	DebitTotal    int64
	CreditTotal   int64
	BalanceDebit  int64
	BalanceCredit int64
}

type TrialBalance struct {
	FiscalYearID int64
	Period       Period
	Level        int
	Rows         []TrialRow
	Total        TrialRow
}

// BuildTrialBalance lists every account with posted activity. With level > 0
// leaf totals are rolled up into their ancestor at that level; leaves already
// shallower than level are listed as they are.
func BuildTrialBalance(accounts []*chart.Account, totals map[int64]Sums, level int) TrialBalance {
	byCode := make(map[string]*chart.Account, len(accounts))
	for _, a := range accounts {
		byCode[a.Code] = a
	}

	rolled := make(map[string]Sums)

	for _, a := range accounts {
		s, ok := totals[a.ID]
		if !ok {
			continue
		}

		code := a.Code
		if level > 0 && a.Level > level {
			code = chart.CodeAtLevel(a.Code, level)
		}

		rolled[code] = rolled[code].Add(s)
	}

	tb := TrialBalance{Level: level}

	for code, s := range rolled {
		a := byCode[code]
		if a == nil {
			continue
		}

		dr, cr := s.Sides()
		tb.Rows = append(tb.Rows, TrialRow{
			AccountID: a.ID, Code: a.Code, Title: a.Title, Level: a.Level, Type: a.Type,
			DebitTotal: s.Debit, CreditTotal: s.Credit, BalanceDebit: dr, BalanceCredit: cr,
		})

		tb.Total.DebitTotal += s.Debit
		tb.Total.CreditTotal += s.Credit
		tb.Total.BalanceDebit += dr
		tb.Total.BalanceCredit += cr
	}

	sort.Slice(tb.Rows, func(i, j int) bool { return tb.Rows[i].Code < tb.Rows[j].Code })

	return tb
}

// Posting is one posted journal line as the ledger report sees it.
type Posting struct {
	EntryID     int64
	VoucherNo   int64
	VoucherDate time.Time
	AccountID   int64
	Description string
	Debit       int64
	Credit      int64
}

type LedgerRow struct {
	Posting
	BalanceDebit  int64
	BalanceCredit int64
}

type Ledger struct {
	Account *chart.Account
	Period  Period
	Opening Sums
	Rows    []LedgerRow
	Closing Sums
}

// BuildLedger runs a balance through postings, which must already be ordered
// by voucher date and number, starting from the opening sums.
func BuildLedger(account *chart.Account, opening Sums, postings []Posting) Ledger {
	l := Ledger{Account: account, Opening: opening}

	running := opening

	for _, p := range postings {
		running = running.Add(Sums{Debit: p.Debit, Credit: p.Credit})

		dr, cr := running.Sides()
		l.Rows = append(l.Rows, LedgerRow{Posting: p, BalanceDebit: dr, BalanceCredit: cr})
	}

	l.Closing = running

	return l
}

// Line is an account with its balance in the sign of its section.
type Line struct {
	AccountID int64
	Code      string
	Title     string
	Amount    int64
}

type BalanceSheet struct {
	FiscalYearID     int64
	AsOf             *time.Time
	Assets           []Line
	Liabilities      []Line
	Equity           []Line
	CurrentResult    int64
	TotalAssets      int64
	TotalLiabilities int64
	TotalEquity      int64
	Balanced         bool
}

// BuildBalanceSheet partitions leaf balances by account type. Income and
// expense accounts are not closed during the year, so their net is carried as
// the current result inside equity.
func BuildBalanceSheet(accounts []*chart.Account, totals map[int64]Sums) BalanceSheet {
	var bs BalanceSheet

	for _, a := range sortedLeaves(accounts) {
		s := totals[a.ID]
		if s == (Sums{}) {
			continue
		}

		switch a.Type {
		case chart.TypeAsset:
			bs.Assets = append(bs.Assets, line(a, s.Debit-s.Credit))
			bs.TotalAssets += s.Debit - s.Credit
		case chart.TypeLiability:
			bs.Liabilities = append(bs.Liabilities, line(a, s.Credit-s.Debit))
			bs.TotalLiabilities += s.Credit - s.Debit
		case chart.TypeEquity:
			bs.Equity = append(bs.Equity, line(a, s.Credit-s.Debit))
			bs.TotalEquity += s.Credit - s.Debit
		case chart.TypeIncome, chart.TypeExpense:
			bs.CurrentResult += s.Credit - s.Debit
		}
	}

	bs.TotalEquity += bs.CurrentResult
	bs.Balanced = bs.TotalAssets == bs.TotalLiabilities+bs.TotalEquity

	return bs
}

type ProfitLoss struct {
	FiscalYearID int64
	Period       Period
	Income       []Line
	Expense      []Line
	TotalIncome  int64
	TotalExpense int64
	Net          int64
}

func BuildProfitLoss(accounts []*chart.Account, totals map[int64]Sums) ProfitLoss {
	var pl ProfitLoss

	for _, a := range sortedLeaves(accounts) {
		s := totals[a.ID]
		if s == (Sums{}) {
			continue
		}

		switch a.Type {
		case chart.TypeIncome:
			pl.Income = append(pl.Income, line(a, s.Credit-s.Debit))
			pl.TotalIncome += s.Credit - s.Debit
		case chart.TypeExpense:
			pl.Expense = append(pl.Expense, line(a, s.Debit-s.Credit))
			pl.TotalExpense += s.Debit - s.Credit
		}
	}

	pl.Net = pl.TotalIncome - pl.TotalExpense

	return pl
}

func line(a *chart.Account, amount int64) Line {
	return Line{AccountID: a.ID, Code: a.Code, Title: a.Title, Amount: amount}
}

func sortedLeaves(accounts []*chart.Account) []*chart.Account {
	var leaves []*chart.Account

	for _, a := range accounts {
		if a.IsLeaf {
			leaves = append(leaves, a)
		}
	}

	sort.Slice(leaves, func(i, j int) bool { return leaves[i].Code < leaves[j].Code })

	return leaves
}
