package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/daftar/internal/chart"
	chartstore "github.com/MrJamesThe3rd/daftar/internal/chart/store"
	"github.com/MrJamesThe3rd/daftar/internal/database"
	"github.com/MrJamesThe3rd/daftar/internal/database/databasetest"
	"github.com/MrJamesThe3rd/daftar/internal/fiscal"
	fiscalstore "github.com/MrJamesThe3rd/daftar/internal/fiscal/store"
	"github.com/MrJamesThe3rd/daftar/internal/journal"
	journalstore "github.com/MrJamesThe3rd/daftar/internal/journal/store"
	"github.com/MrJamesThe3rd/daftar/internal/report"
	"github.com/MrJamesThe3rd/daftar/internal/report/store"
)

func date(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	reports *report.Service
	chart   *chart.Service
	year    *fiscal.Year
}

// setup books owner's capital, a cash sale and a bank fee, plus a draft that
// must never show up in a report.
func setup(t *testing.T) fixture {
	t.Helper()

	db := databasetest.Open(t)
	tx := database.NewTransactor(db)
	ctx := context.Background()

	years := fiscal.NewService(fiscalstore.New(db), tx)

	year, err := years.CreateYear(ctx, fiscal.CreateParams{
		Name:      "1403",
		StartDate: date(3, 20),
		EndDate:   time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	accounts := chart.NewService(chartstore.New(db), years, tx)

	_, err = accounts.SeedDefaultChart(ctx, year.ID)
	require.NoError(t, err)

	f := fixture{
		reports: report.NewService(store.New(db), accounts, tx),
		chart:   accounts,
		year:    year,
	}

	ledger := journal.NewService(journalstore.New(db), accounts, years, tx)

	post := func(d time.Time, desc, debit, credit string, amount int64) {
		_, err := ledger.PostEntry(ctx, journal.PostParams{
			FiscalYearID: year.ID,
			Date:         d,
			Description:  desc,
			Lines: []journal.Line{
				{AccountID: f.leaf(t, debit), Debit: amount},
				{AccountID: f.leaf(t, credit), Credit: amount},
			},
		})
		require.NoError(t, err)
	}

	post(date(4, 1), "Owner's capital", "1101", "5101", 1_000_000)
	post(date(5, 1), "Cash sale", "1101", "6101", 250_000)
	post(date(6, 1), "Bank fee", "7203", "1101", 40_000)

	_, err = ledger.SaveDraft(ctx, journal.DraftParams{
		FiscalYearID: year.ID,
		Date:         date(6, 2),
		Description:  "Unposted",
		Lines:        []journal.Line{{AccountID: f.leaf(t, "1101"), Debit: 999}},
	})
	require.NoError(t, err)

	return f
}

func (f fixture) leaf(t *testing.T, code string) int64 {
	t.Helper()

	a, err := f.chart.ResolveLeafByCode(context.Background(), f.year.ID, code)
	require.NoError(t, err)

	return a.ID
}

func TestStore_TrialBalance(t *testing.T) {
	f := setup(t)

	tb, err := f.reports.TrialBalance(context.Background(), f.year.ID, report.Period{}, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(1_290_000), tb.Total.DebitTotal)
	assert.Equal(t, tb.Total.DebitTotal, tb.Total.CreditTotal)
	assert.Equal(t, tb.Total.BalanceDebit, tb.Total.BalanceCredit)

	byCode := map[string]report.TrialRow{}
	for _, r := range tb.Rows {
		byCode[r.Code] = r
	}

	assert.Equal(t, int64(1_210_000), byCode["1101"].BalanceDebit)
	assert.Equal(t, int64(250_000), byCode["6101"].BalanceCredit)
}

func TestStore_TrialBalance_Period(t *testing.T) {
	f := setup(t)

	from, to := date(5, 1), date(5, 31)

	tb, err := f.reports.TrialBalance(context.Background(), f.year.ID, report.Period{From: &from, To: &to}, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(250_000), tb.Total.DebitTotal)

	for _, r := range tb.Rows {
		assert.Equal(t, 1, r.Level)
	}
}

func TestStore_Ledger(t *testing.T) {
	f := setup(t)

	from := date(5, 1)

	l, err := f.reports.Ledger(context.Background(), f.leaf(t, "1101"), report.Period{From: &from})
	require.NoError(t, err)

	assert.Equal(t, report.Sums{Debit: 1_000_000}, l.Opening)
	require.Len(t, l.Rows, 2)
	assert.Equal(t, "Cash sale", l.Rows[0].Description)
	assert.Equal(t, int64(1_250_000), l.Rows[0].BalanceDebit)
	assert.Equal(t, int64(1_210_000), l.Rows[1].BalanceDebit)
}

func TestStore_BalanceSheetAndProfitLoss(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	bs, err := f.reports.BalanceSheet(ctx, f.year.ID, nil)
	require.NoError(t, err)

	assert.True(t, bs.Balanced)
	assert.Equal(t, int64(1_210_000), bs.TotalAssets)
	assert.Equal(t, int64(210_000), bs.CurrentResult)
	assert.Equal(t, bs.TotalAssets, bs.TotalLiabilities+bs.TotalEquity)

	pl, err := f.reports.ProfitLoss(ctx, f.year.ID, report.Period{})
	require.NoError(t, err)

	assert.Equal(t, int64(250_000), pl.TotalIncome)
	assert.Equal(t, int64(40_000), pl.TotalExpense)
	assert.Equal(t, bs.CurrentResult, pl.Net)
}
