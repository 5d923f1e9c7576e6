package report_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/daftar/internal/chart"
	"github.com/MrJamesThe3rd/daftar/internal/report"
)

func acct(id int64, code, title string, typ chart.Type, leaf bool) *chart.Account {
	level, _ := chart.LevelOf(code)
	return &chart.Account{ID: id, FiscalYearID: 1, Code: code, Title: title, Level: level, Type: typ, IsLeaf: leaf}
}

// chartOf is a small tree: each group has one general account with leaves.
var chartOf = []*chart.Account{
	acct(1, "1", "Assets", chart.TypeAsset, false),
	acct(11, "11", "Current assets", chart.TypeAsset, false),
	acct(1101, "1101", "Cash", chart.TypeAsset, true),
	acct(1102, "1102", "Bank", chart.TypeAsset, true),
	acct(1201, "1201", "Receivable", chart.TypeAsset, true),
	acct(3, "3", "Liabilities", chart.TypeLiability, false),
	acct(3101, "3101", "Payable", chart.TypeLiability, true),
	acct(5, "5", "Equity", chart.TypeEquity, false),
	acct(5101, "5101", "Capital", chart.TypeEquity, true),
	acct(6, "6", "Income", chart.TypeIncome, false),
	acct(6101, "6101", "Sales", chart.TypeIncome, true),
	acct(7, "7", "Expenses", chart.TypeExpense, false),
	acct(7101, "7101", "Purchases", chart.TypeExpense, true),
	acct(7203, "7203", "Bank fees", chart.TypeExpense, true),
}

func TestSums_Sides(t *testing.T) {
	tests := []struct {
		sums       report.Sums
		wantDebit  int64
		wantCredit int64
	}{
		{sums: report.Sums{Debit: 100, Credit: 40}, wantDebit: 60},
		{sums: report.Sums{Debit: 40, Credit: 100}, wantCredit: 60},
		{sums: report.Sums{Debit: 70, Credit: 70}},
		{},
	}

	for _, tt := range tests {
		dr, cr := tt.sums.Sides()
		assert.Equal(t, tt.wantDebit, dr)
		assert.Equal(t, tt.wantCredit, cr)
	}
}

func TestBuildTrialBalance(t *testing.T) {
	totals := map[int64]report.Sums{
		1101: {Debit: 1_000_000, Credit: 200_000},
		1102: {Debit: 300_000},
		5101: {Credit: 1_000_000},
		6101: {Credit: 300_000},
		7203: {Debit: 200_000},
	}

	t.Run("Leaves", func(t *testing.T) {
		tb := report.BuildTrialBalance(chartOf, totals, 0)

		require.Len(t, tb.Rows, 5)
		assert.Equal(t, "1101", tb.Rows[0].Code)
		assert.Equal(t, int64(800_000), tb.Rows[0].BalanceDebit)
		assert.Zero(t, tb.Rows[0].BalanceCredit)
		assert.Equal(t, tb.Total.DebitTotal, tb.Total.CreditTotal)
		assert.Equal(t, tb.Total.BalanceDebit, tb.Total.BalanceCredit)
	})

	t.Run("RolledUpToGroups", func(t *testing.T) {
		tb := report.BuildTrialBalance(chartOf, totals, 1)

		codes := make([]string, len(tb.Rows))
		for i, r := range tb.Rows {
			codes[i] = r.Code
		}

		assert.Equal(t, []string{"1", "5", "6", "7"}, codes)
		assert.Equal(t, int64(1_100_000), tb.Rows[0].BalanceDebit)
		assert.Equal(t, int64(1_300_000), tb.Rows[0].DebitTotal)
		assert.Equal(t, tb.Total.BalanceDebit, tb.Total.BalanceCredit)
	})

	t.Run("Empty", func(t *testing.T) {
		tb := report.BuildTrialBalance(chartOf, nil, 0)

		assert.Empty(t, tb.Rows)
		assert.Equal(t, report.TrialRow{}, tb.Total)
	})
}

func TestBuildLedger(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC) }

	l := report.BuildLedger(chartOf[2], report.Sums{Debit: 500}, []report.Posting{
		{EntryID: 1, VoucherNo: 4, VoucherDate: day(1), Debit: 200},
		{EntryID: 2, VoucherNo: 5, VoucherDate: day(2), Credit: 1_000},
		{EntryID: 3, VoucherNo: 6, VoucherDate: day(2), Debit: 100},
	})

	require.Len(t, l.Rows, 3)
	assert.Equal(t, int64(700), l.Rows[0].BalanceDebit)
	assert.Equal(t, int64(300), l.Rows[1].BalanceCredit)
	assert.Zero(t, l.Rows[1].BalanceDebit)
	assert.Equal(t, int64(200), l.Rows[2].BalanceCredit)
	assert.Equal(t, report.Sums{Debit: 800, Credit: 1_000}, l.Closing)
}

func TestBuildBalanceSheet(t *testing.T) {
	totals := map[int64]report.Sums{
		1101: {Debit: 1_000_000, Credit: 200_000},
		1201: {Debit: 1_100_000},
		3101: {Credit: 400_000},
		5101: {Credit: 1_000_000},
		6101: {Credit: 1_100_000},
		7101: {Debit: 400_000},
		7203: {Debit: 200_000},
	}

	bs := report.BuildBalanceSheet(chartOf, totals)

	assert.Equal(t, int64(1_900_000), bs.TotalAssets)
	assert.Equal(t, int64(400_000), bs.TotalLiabilities)
	assert.Equal(t, int64(500_000), bs.CurrentResult)
	assert.Equal(t, int64(1_500_000), bs.TotalEquity)
	assert.True(t, bs.Balanced)
	assert.Len(t, bs.Assets, 2)
	assert.Len(t, bs.Equity, 1)
}

func TestBuildProfitLoss(t *testing.T) {
	totals := map[int64]report.Sums{
		6101: {Debit: 100_000, Credit: 1_100_000},
		7101: {Debit: 400_000},
		7203: {Debit: 25_000},
	}

	pl := report.BuildProfitLoss(chartOf, totals)

	assert.Equal(t, int64(1_000_000), pl.TotalIncome)
	assert.Equal(t, int64(425_000), pl.TotalExpense)
	assert.Equal(t, int64(575_000), pl.Net)
	assert.Len(t, pl.Expense, 2)
}

func TestBuildProfitLoss_Empty(t *testing.T) {
	pl := report.BuildProfitLoss(chartOf, map[int64]report.Sums{})

	assert.Zero(t, pl.Net)
	assert.Empty(t, pl.Income)
}

// Any ledger made of balanced entries must produce a balanced sheet.
func TestBuildBalanceSheet_IdentityHoldsForBalancedLedgers(t *testing.T) {
	var leaves []*chart.Account

	for _, a := range chartOf {
		if a.IsLeaf {
			leaves = append(leaves, a)
		}
	}

	rng := rand.New(rand.NewPCG(42, 7))

	for run := range 200 {
		totals := make(map[int64]report.Sums)

		for range rng.IntN(30) {
			// One entry: a few debit lines against a few credit lines of equal sum.
			var sum int64

			for range 1 + rng.IntN(3) {
				amount := 1 + rng.Int64N(1_000_000)
				a := leaves[rng.IntN(len(leaves))]
				totals[a.ID] = totals[a.ID].Add(report.Sums{Debit: amount})
				sum += amount
			}

			credits := 1 + rng.IntN(3)
			for i := range credits {
				amount := sum / int64(credits-i)
				if i == credits-1 {
					amount = sum
				}

				sum -= amount

				a := leaves[rng.IntN(len(leaves))]
				totals[a.ID] = totals[a.ID].Add(report.Sums{Credit: amount})
			}
		}

		bs := report.BuildBalanceSheet(chartOf, totals)
		require.Truef(t, bs.Balanced, "run %d: assets %d, liabilities %d, equity %d",
			run, bs.TotalAssets, bs.TotalLiabilities, bs.TotalEquity)
	}
}
