package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/daftar/internal/cash"
	"github.com/MrJamesThe3rd/daftar/internal/cash/store"
	"github.com/MrJamesThe3rd/daftar/internal/chart"
	chartstore "github.com/MrJamesThe3rd/daftar/internal/chart/store"
	"github.com/MrJamesThe3rd/daftar/internal/database"
	"github.com/MrJamesThe3rd/daftar/internal/database/databasetest"
	"github.com/MrJamesThe3rd/daftar/internal/directory"
	"github.com/MrJamesThe3rd/daftar/internal/fiscal"
	fiscalstore "github.com/MrJamesThe3rd/daftar/internal/fiscal/store"
	"github.com/MrJamesThe3rd/daftar/internal/journal"
	journalstore "github.com/MrJamesThe3rd/daftar/internal/journal/store"
)

var voucherDate = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

type fixture struct {
	cash     *cash.Service
	store    *store.Store
	journal  *journal.Service
	chart    *chart.Service
	year     *fiscal.Year
	personID int64
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

	f := fixture{
		store:   store.New(db),
		journal: journal.NewService(journalstore.New(db), accounts, years, tx),
		chart:   accounts,
		year:    year,
	}

	require.NoError(t, db.QueryRowContext(ctx, `INSERT INTO persons (name) VALUES ('Acme Trading') RETURNING id`).Scan(&f.personID))

	f.cash = cash.NewService(f.store, f.journal, accounts, directory.New(db), tx, cash.Rules{
		Receivable: "1201",
		Payable:    "3101",
		BankFees:   "7203",
	})

	return f
}

// bank opens a cash account on a new leaf under the bank accounts group.
func (f fixture) bank(t *testing.T, code, name string) *cash.Account {
	t.Helper()

	ctx := context.Background()

	leaf, err := f.chart.CreateAccount(ctx, chart.CreateParams{
		FiscalYearID: f.year.ID, Code: code, Title: name, Type: chart.TypeAsset,
	})
	require.NoError(t, err)

	a, err := f.cash.CreateAccount(ctx, cash.AccountParams{Name: name, Type: cash.AccountBank, ChartAccountID: &leaf.ID})
	require.NoError(t, err)

	return a
}

func (f fixture) balance(t *testing.T, chartAccountID int64) int64 {
	t.Helper()

	b, err := f.journal.AccountBalance(context.Background(), chartAccountID, nil)
	require.NoError(t, err)

	return b.Balance
}

func (f fixture) leaf(t *testing.T, code string) int64 {
	t.Helper()

	a, err := f.chart.ResolveLeafByCode(context.Background(), f.year.ID, code)
	require.NoError(t, err)

	return a.ID
}

func TestStore_TransferWithFee(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	bankA, bankB := f.bank(t, "110201", "Melli"), f.bank(t, "110202", "Mellat")

	_, err := f.cash.PostReceipt(ctx, cash.ReceiptParams{
		FiscalYearID: f.year.ID, CashAccountID: bankA.ID, PersonID: f.personID, Amount: 1_000_000, Date: voucherDate,
	})
	require.NoError(t, err)

	fees := f.leaf(t, "7203")
	beforeA, beforeB, beforeFees := f.balance(t, *bankA.ChartAccountID), f.balance(t, *bankB.ChartAccountID), f.balance(t, fees)

	v, err := f.cash.PostTransfer(ctx, cash.TransferParams{
		FiscalYearID: f.year.ID, FromID: bankA.ID, ToID: bankB.ID, Amount: 200_000, BankFee: 5_000, Date: voucherDate,
	})
	require.NoError(t, err)

	assert.Equal(t, cash.StatusPosted, v.Status)
	assert.Equal(t, int64(2), v.VoucherNo)

	entry, err := f.journal.Get(ctx, *v.JournalEntryID)
	require.NoError(t, err)
	assert.Len(t, entry.Lines, 3)

	assert.Equal(t, beforeA-205_000, f.balance(t, *bankA.ChartAccountID))
	assert.Equal(t, beforeB+200_000, f.balance(t, *bankB.ChartAccountID))
	assert.Equal(t, beforeFees+5_000, f.balance(t, fees))

	stored, err := f.cash.GetVoucher(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, bankB.ID, *stored.TransferToID)
	assert.Equal(t, int64(5_000), stored.BankFee)
}

func TestStore_ReferencedAccountCannotBeDeleted(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	used, idle := f.bank(t, "110201", "Melli"), f.bank(t, "110202", "Mellat")

	_, err := f.cash.PostReceipt(ctx, cash.ReceiptParams{
		FiscalYearID: f.year.ID, CashAccountID: used.ID, PersonID: f.personID, Amount: 10_000, Date: voucherDate,
	})
	require.NoError(t, err)

	referenced, err := f.store.IsAccountReferenced(ctx, used.ID)
	require.NoError(t, err)
	assert.True(t, referenced)

	referenced, err = f.store.IsAccountReferenced(ctx, idle.ID)
	require.NoError(t, err)
	assert.False(t, referenced)

	assert.ErrorIs(t, f.cash.DeleteAccount(ctx, used.ID), cash.ErrAccountInUse)

	// The foreign key backs the reference check when it is bypassed.
	assert.ErrorIs(t, f.store.DeleteAccount(ctx, used.ID), cash.ErrAccountInUse)

	require.NoError(t, f.cash.DeleteAccount(ctx, idle.ID))

	_, err = f.cash.GetAccount(ctx, idle.ID)
	assert.ErrorIs(t, err, cash.ErrAccountNotFound)
}

func TestStore_DraftVoucher(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	bank := f.bank(t, "110201", "Melli")

	draft, err := f.cash.CreateVoucher(ctx, cash.VoucherParams{
		FiscalYearID: f.year.ID, Type: cash.VoucherReceipt, CashAccountID: bank.ID,
		PersonID: &f.personID, Amount: 40_000, Date: voucherDate,
	})
	require.NoError(t, err)
	assert.Equal(t, cash.StatusDraft, draft.Status)
	assert.Zero(t, draft.VoucherNo)
	assert.Zero(t, f.balance(t, *bank.ChartAccountID))

	posted, err := f.cash.PostVoucher(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), posted.VoucherNo)
	assert.Equal(t, int64(40_000), f.balance(t, *bank.ChartAccountID))

	_, err = f.cash.PostVoucher(ctx, draft.ID)
	assert.ErrorIs(t, err, cash.ErrVoucherPosted)
	assert.ErrorIs(t, f.cash.DeleteVoucher(ctx, draft.ID), cash.ErrVoucherPosted)
}
