package cash_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/daftar/internal/cash"
	"github.com/MrJamesThe3rd/daftar/internal/chart"
	"github.com/MrJamesThe3rd/daftar/internal/database/databasetest"
	"github.com/MrJamesThe3rd/daftar/internal/journal"
)

const yearID = int64(1)

var (
	voucherDate = time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	rules       = cash.Rules{Receivable: "1201", Payable: "3101", BankFees: "7203"}
)

// Chart of the posting year: 101 cash on hand, 102 bank, 120 receivable,
// 310 payable, 720 bank fees. 900 is last year's bank account.
var chartAccounts = map[int64]*chart.Account{
	101: {ID: 101, FiscalYearID: yearID, Code: "1101", Type: chart.TypeAsset, IsLeaf: true},
	102: {ID: 102, FiscalYearID: yearID, Code: "1102", Type: chart.TypeAsset, IsLeaf: true},
	120: {ID: 120, FiscalYearID: yearID, Code: "1201", Type: chart.TypeAsset, IsLeaf: true},
	310: {ID: 310, FiscalYearID: yearID, Code: "3101", Type: chart.TypeLiability, IsLeaf: true},
	720: {ID: 720, FiscalYearID: yearID, Code: "7203", Type: chart.TypeExpense, IsLeaf: true},
	900: {ID: 900, FiscalYearID: 0, Code: "1102", Type: chart.TypeAsset, IsLeaf: true},
}

var cashAccounts = map[int64]*cash.Account{
	1: {ID: 1, Name: "Safe", Type: cash.AccountCash, ChartAccountID: new(int64(101)), IsActive: true},
	2: {ID: 2, Name: "Melli bank", Type: cash.AccountBank, ChartAccountID: new(int64(900)), IsActive: true},
	3: {ID: 3, Name: "Unlinked", Type: cash.AccountBank, IsActive: true},
	4: {ID: 4, Name: "Closed box", Type: cash.AccountPetty, ChartAccountID: new(int64(101))},
}

type mocks struct {
	repo     *cash.MockRepository
	ledger   *cash.MockLedger
	accounts *cash.MockAccounts
	persons  *cash.MockPersons
}

func newService(t *testing.T) (*cash.Service, mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mocks{
		repo:     cash.NewMockRepository(ctrl),
		ledger:   cash.NewMockLedger(ctrl),
		accounts: cash.NewMockAccounts(ctrl),
		persons:  cash.NewMockPersons(ctrl),
	}

	m.repo.EXPECT().GetAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64) (*cash.Account, error) {
			if a, ok := cashAccounts[id]; ok {
				return a, nil
			}

			return nil, cash.ErrAccountNotFound
		}).AnyTimes()
	m.accounts.EXPECT().GetAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64) (*chart.Account, error) {
			return chartAccounts[id], nil
		}).AnyTimes()
	m.accounts.EXPECT().ResolveLeafByCode(gomock.Any(), yearID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, code string) (*chart.Account, error) {
			for _, a := range chartAccounts {
				if a.FiscalYearID == yearID && a.Code == code {
					return a, nil
				}
			}

			return nil, chart.ErrUnknownAccount
		}).AnyTimes()
	m.persons.EXPECT().RequirePerson(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return cash.NewService(m.repo, m.ledger, m.accounts, m.persons, databasetest.Inline{}, rules), m
}

// expectPosting captures the posted lines and completes the voucher bookkeeping.
func expectPosting(m mocks, captured *journal.PostParams) {
	m.repo.EXPECT().CreateVoucher(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v *cash.Voucher) error {
			v.ID = 55
			return nil
		})
	m.ledger.EXPECT().PostWithin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p journal.PostParams) (*journal.Entry, error) {
			*captured = p
			return &journal.Entry{ID: 77}, journal.ValidateLines(p.Lines)
		})
	m.repo.EXPECT().NextVoucherNo(gomock.Any(), yearID).Return(int64(3), nil)
	m.repo.EXPECT().MarkVoucherPosted(gomock.Any(), int64(55), int64(3), int64(77)).Return(nil)
}

func TestService_PostTransfer_WithFee(t *testing.T) {
	svc, m := newService(t)

	var posted journal.PostParams
	expectPosting(m, &posted)

	got, err := svc.PostTransfer(context.Background(), cash.TransferParams{
		FiscalYearID: yearID, FromID: 1, ToID: 2, Amount: 200_000, BankFee: 5_000, Date: voucherDate,
	})
	require.NoError(t, err)

	assert.Equal(t, cash.StatusPosted, got.Status)
	assert.Equal(t, int64(3), got.VoucherNo)
	assert.Equal(t, int64(77), *got.JournalEntryID)

	require.Len(t, posted.Lines, 3)
	assert.Equal(t, journal.Line{AccountID: 102, Debit: 200_000}, posted.Lines[0])
	assert.Equal(t, journal.Line{AccountID: 101, Credit: 205_000}, posted.Lines[1])
	assert.Equal(t, int64(720), posted.Lines[2].AccountID)
	assert.Equal(t, int64(5_000), posted.Lines[2].Debit)
	assert.Equal(t, journal.SourceReceiptVoucher, posted.SourceType)
	assert.Equal(t, int64(55), *posted.SourceID)
}

func TestService_PostReceipt(t *testing.T) {
	svc, m := newService(t)

	var posted journal.PostParams
	expectPosting(m, &posted)

	_, err := svc.PostReceipt(context.Background(), cash.ReceiptParams{
		FiscalYearID: yearID, CashAccountID: 1, PersonID: 7, Amount: 90_000, Date: voucherDate,
	})
	require.NoError(t, err)

	require.Len(t, posted.Lines, 2)
	assert.Equal(t, int64(101), posted.Lines[0].AccountID)
	assert.Equal(t, int64(90_000), posted.Lines[0].Debit)
	assert.Equal(t, int64(120), posted.Lines[1].AccountID)
	assert.Equal(t, int64(90_000), posted.Lines[1].Credit)
	assert.Equal(t, int64(7), *posted.Lines[1].PersonID)
}

func TestService_PostPayment_WithFee(t *testing.T) {
	svc, m := newService(t)

	var posted journal.PostParams
	expectPosting(m, &posted)

	_, err := svc.PostPayment(context.Background(), cash.PaymentParams{
		FiscalYearID: yearID, CashAccountID: 2, PersonID: 7, Amount: 40_000, BankFee: 1_000, Date: voucherDate,
	})
	require.NoError(t, err)

	require.Len(t, posted.Lines, 3)
	assert.Equal(t, int64(310), posted.Lines[0].AccountID)
	assert.Equal(t, int64(40_000), posted.Lines[0].Debit)
	assert.Equal(t, int64(102), posted.Lines[1].AccountID)
	assert.Equal(t, int64(41_000), posted.Lines[1].Credit)
	assert.Equal(t, int64(1_000), posted.Lines[2].Debit)
}

func TestService_PostRejections(t *testing.T) {
	type testCase struct {
		name    string
		post    func(svc *cash.Service) error
		creates bool
		wantErr error
	}

	tests := []testCase{
		{
			name: "SameAccount",
			post: func(svc *cash.Service) error {
				_, err := svc.PostTransfer(context.Background(), cash.TransferParams{FiscalYearID: yearID, FromID: 1, ToID: 1, Amount: 10, Date: voucherDate})
				return err
			},
			wantErr: cash.ErrSameAccount,
		},
		{
			name: "ZeroAmount",
			post: func(svc *cash.Service) error {
				_, err := svc.PostReceipt(context.Background(), cash.ReceiptParams{FiscalYearID: yearID, CashAccountID: 1, PersonID: 7, Date: voucherDate})
				return err
			},
			wantErr: cash.ErrInvalidAmount,
		},
		{
			name: "NoLedgerAccount",
			post: func(svc *cash.Service) error {
				_, err := svc.PostReceipt(context.Background(), cash.ReceiptParams{FiscalYearID: yearID, CashAccountID: 3, PersonID: 7, Amount: 10, Date: voucherDate})
				return err
			},
			creates: true,
			wantErr: cash.ErrNoLedgerAccount,
		},
		{
			name: "InactiveAccount",
			post: func(svc *cash.Service) error {
				_, err := svc.PostReceipt(context.Background(), cash.ReceiptParams{FiscalYearID: yearID, CashAccountID: 4, PersonID: 7, Amount: 10, Date: voucherDate})
				return err
			},
			creates: true,
			wantErr: cash.ErrInactiveAccount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			if tt.creates {
				m.repo.EXPECT().CreateVoucher(gomock.Any(), gomock.Any()).Return(nil)
			}

			assert.ErrorIs(t, tt.post(svc), tt.wantErr)
		})
	}
}

func TestService_PostVoucher_AlreadyPosted(t *testing.T) {
	svc, m := newService(t)

	m.repo.EXPECT().LockVoucher(gomock.Any(), int64(55)).
		Return(&cash.Voucher{ID: 55, Status: cash.StatusPosted, VoucherNo: 3}, nil)

	_, err := svc.PostVoucher(context.Background(), 55)
	assert.ErrorIs(t, err, cash.ErrVoucherPosted)
}

func TestService_DeleteAccount_InUse(t *testing.T) {
	svc, m := newService(t)

	m.repo.EXPECT().IsAccountReferenced(gomock.Any(), int64(1)).Return(true, nil)

	assert.ErrorIs(t, svc.DeleteAccount(context.Background(), 1), cash.ErrAccountInUse)
}

func TestService_CreateAccount_RejectsNonAssetLedger(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.CreateAccount(context.Background(), cash.AccountParams{
		Name: "Card", Type: cash.AccountBank, ChartAccountID: new(int64(310)),
	})
	assert.ErrorIs(t, err, cash.ErrInvalidCashAccount)
}
