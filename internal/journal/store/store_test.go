package store_test

import (
	"context"
	"sync"
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
	"github.com/MrJamesThe3rd/daftar/internal/journal/store"
)

type fixture struct {
	journal *journal.Service
	chart   *chart.Service
	year    *fiscal.Year
}

func setup(t *testing.T) fixture {
	t.Helper()

	db := databasetest.Open(t)
	tx := database.NewTransactor(db)
	ctx := context.Background()

	years := fiscal.NewService(fiscalstore.New(db), tx)

	year, err := years.CreateYear(ctx, fiscal.CreateParams{
		Name:      "1403",
		StartDate: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	accounts := chart.NewService(chartstore.New(db), years, tx)

	_, err = accounts.SeedDefaultChart(ctx, year.ID)
	require.NoError(t, err)

	return fixture{
		journal: journal.NewService(store.New(db), accounts, years, tx),
		chart:   accounts,
		year:    year,
	}
}

func (f fixture) leaf(t *testing.T, code string) int64 {
	t.Helper()

	a, err := f.chart.ResolveLeafByCode(context.Background(), f.year.ID, code)
	require.NoError(t, err)

	return a.ID
}

func TestStore_PostAndBalance(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	cash, sales := f.leaf(t, "1101"), f.leaf(t, "6101")

	e, err := f.journal.PostEntry(ctx, journal.PostParams{
		FiscalYearID: f.year.ID,
		Date:         time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Description:  "Cash sale",
		Lines: []journal.Line{
			{AccountID: cash, Debit: 250_000},
			{AccountID: sales, Credit: 250_000},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), e.VoucherNo)

	stored, err := f.journal.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Lines, 2)
	assert.NotNil(t, stored.PostedAt)

	b, err := f.journal.AccountBalance(ctx, cash, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(250_000), b.Balance)

	group, err := f.chart.ResolveLeafByCode(ctx, f.year.ID, "1")
	require.ErrorIs(t, err, chart.ErrNotLeafAccount)
	assert.Nil(t, group)

	_, err = f.journal.Reverse(ctx, journal.ReverseParams{EntryID: e.ID})
	require.NoError(t, err)

	_, err = f.journal.Reverse(ctx, journal.ReverseParams{EntryID: e.ID})
	assert.ErrorIs(t, err, journal.ErrAlreadyReversed)

	b, err = f.journal.AccountBalance(ctx, cash, nil)
	require.NoError(t, err)
	assert.Zero(t, b.Balance)
}

func TestStore_ConcurrentPostsGetDistinctVoucherNumbers(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	cash, sales := f.leaf(t, "1101"), f.leaf(t, "6101")

	const n = 8

	var wg sync.WaitGroup

	numbers := make(chan int64, n)

	for range n {
		wg.Go(func() {
			e, err := f.journal.PostEntry(ctx, journal.PostParams{
				FiscalYearID: f.year.ID,
				Date:         time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
				Lines: []journal.Line{
					{AccountID: cash, Debit: 1000},
					{AccountID: sales, Credit: 1000},
				},
			})
			if assert.NoError(t, err) {
				numbers <- e.VoucherNo
			}
		})
	}

	wg.Wait()
	close(numbers)

	seen := make(map[int64]bool)
	for no := range numbers {
		assert.False(t, seen[no], "voucher %d allocated twice", no)
		seen[no] = true
	}

	assert.Len(t, seen, n)
}

func TestStore_PostedParentCannotGainChildren(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.journal.PostEntry(ctx, journal.PostParams{
		FiscalYearID: f.year.ID,
		Date:         time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Lines: []journal.Line{
			{AccountID: f.leaf(t, "7204"), Debit: 1000},
			{AccountID: f.leaf(t, "1101"), Credit: 1000},
		},
	})
	require.NoError(t, err)

	_, err = f.chart.CreateAccount(ctx, chart.CreateParams{
		FiscalYearID: f.year.ID, Code: "720401", Title: "Stationery", Type: chart.TypeExpense,
	})
	assert.ErrorIs(t, err, chart.ErrParentHasPostings)
}
