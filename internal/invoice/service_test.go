package invoice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/daftar/internal/chart"
	"github.com/MrJamesThe3rd/daftar/internal/database/databasetest"
	"github.com/MrJamesThe3rd/daftar/internal/fiscal"
	"github.com/MrJamesThe3rd/daftar/internal/invoice"
	"github.com/MrJamesThe3rd/daftar/internal/journal"
)

const yearID = int64(1)

var (
	invoiceDate = time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC)
	rules       = invoice.Rules{
		Receivable: "1201", Payable: "3101", Sales: "6101", Purchases: "7101",
		TaxPayable: "3103", TaxReceivable: "1203",
	}
	byCode = map[string]int64{"1201": 120, "3101": 310, "6101": 610, "7101": 710, "3103": 313, "1203": 123}
)

type mocks struct {
	repo      *invoice.MockRepository
	ledger    *invoice.MockLedger
	years     *invoice.MockYears
	directory *invoice.MockDirectory
}

func newService(t *testing.T) (*invoice.Service, mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mocks{
		repo:      invoice.NewMockRepository(ctrl),
		ledger:    invoice.NewMockLedger(ctrl),
		years:     invoice.NewMockYears(ctrl),
		directory: invoice.NewMockDirectory(ctrl),
	}

	accounts := invoice.NewMockAccounts(ctrl)
	accounts.EXPECT().ResolveLeafByCode(gomock.Any(), yearID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, code string) (*chart.Account, error) {
			return &chart.Account{ID: byCode[code], FiscalYearID: yearID, Code: code, IsLeaf: true}, nil
		}).AnyTimes()

	return invoice.NewService(m.repo, m.ledger, accounts, m.years, m.directory, databasetest.Inline{}, rules), m
}

func twoLines() []invoice.Line {
	return []invoice.Line{
		{LineNo: 1, ProductID: 1, Quantity: dec("1"), UnitPrice: 500_000, TaxPercent: dec("10")},
		{LineNo: 2, ProductID: 2, Quantity: dec("1"), UnitPrice: 500_000, TaxPercent: dec("10")},
	}
}

func draft(typ invoice.Type) *invoice.Invoice {
	return &invoice.Invoice{
		ID: 8, FiscalYearID: yearID, InvoiceNo: 3, Type: typ, PersonID: 7,
		InvoiceDate: invoiceDate, Status: invoice.StatusDraft, Lines: twoLines(),
	}
}

func TestService_Create(t *testing.T) {
	svc, m := newService(t)

	m.years.EXPECT().EnsureOpen(gomock.Any(), yearID, invoiceDate).Return(&fiscal.Year{ID: yearID}, nil)
	m.directory.EXPECT().RequirePerson(gomock.Any(), int64(7)).Return(nil)
	m.directory.EXPECT().RequireProducts(gomock.Any(), []int64{1, 2}).Return(nil)
	m.repo.EXPECT().NextInvoiceNo(gomock.Any(), yearID, invoice.TypeSales).Return(int64(4), nil)
	m.repo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
			inv.ID = 8
			return nil
		})

	got, err := svc.Create(context.Background(), invoice.CreateParams{
		FiscalYearID: yearID, Type: invoice.TypeSales, PersonID: 7,
		InvoiceDate: invoiceDate.Add(15 * time.Hour), Description: " September ", Lines: twoLines(),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4), got.InvoiceNo)
	assert.Equal(t, invoice.StatusDraft, got.Status)
	assert.Equal(t, invoiceDate, got.InvoiceDate)
	assert.Equal(t, "September", got.Description)
	assert.Equal(t, 2, got.Lines[1].LineNo)
}

func TestService_Create_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		params  invoice.CreateParams
		wantErr error
	}{
		{
			name:    "UnknownType",
			params:  invoice.CreateParams{Type: "credit_note", InvoiceDate: invoiceDate},
			wantErr: invoice.ErrInvalidInvoice,
		},
		{
			name: "DueBeforeDate",
			params: invoice.CreateParams{
				Type: invoice.TypeSales, InvoiceDate: invoiceDate, DueDate: new(invoiceDate.AddDate(0, 0, -1)),
			},
			wantErr: invoice.ErrInvalidInvoice,
		},
		{
			name: "ZeroQuantity",
			params: invoice.CreateParams{
				Type: invoice.TypeSales, InvoiceDate: invoiceDate,
				Lines: []invoice.Line{{ProductID: 1, Quantity: dec("0"), UnitPrice: 10}},
			},
			wantErr: invoice.ErrInvalidLine,
		},
		{
			name: "TaxOverHundred",
			params: invoice.CreateParams{
				Type: invoice.TypeSales, InvoiceDate: invoiceDate,
				Lines: []invoice.Line{{ProductID: 1, Quantity: dec("1"), UnitPrice: 10, TaxPercent: dec("100.5")}},
			},
			wantErr: invoice.ErrInvalidLine,
		},
		{
			name: "DiscountExceedsGross",
			params: invoice.CreateParams{
				Type: invoice.TypeSales, InvoiceDate: invoiceDate,
				Lines: []invoice.Line{{ProductID: 1, Quantity: dec("1"), UnitPrice: 10, DiscountAmount: 11}},
			},
			wantErr: invoice.ErrInvalidLine,
		},
		{
			name: "MissingProduct",
			params: invoice.CreateParams{
				Type: invoice.TypeSales, InvoiceDate: invoiceDate,
				Lines: []invoice.Line{{Quantity: dec("1"), UnitPrice: 10}},
			},
			wantErr: invoice.ErrInvalidLine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t)

			_, err := svc.Create(context.Background(), tt.params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_Confirm_Sales(t *testing.T) {
	svc, m := newService(t)

	m.repo.EXPECT().LockInvoice(gomock.Any(), int64(8)).Return(draft(invoice.TypeSales), nil)

	var posted journal.PostParams
	m.ledger.EXPECT().PostWithin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p journal.PostParams) (*journal.Entry, error) {
			posted = p
			return &journal.Entry{ID: 900}, journal.ValidateLines(p.Lines)
		})
	m.repo.EXPECT().SetStatus(gomock.Any(), int64(8), invoice.StatusConfirmed, int64(900)).Return(nil)

	got, err := svc.Confirm(context.Background(), 8)
	require.NoError(t, err)

	assert.Equal(t, invoice.StatusConfirmed, got.Status)
	assert.Equal(t, int64(900), *got.JournalEntryID)
	assert.Equal(t, journal.SourceInvoice, posted.SourceType)
	assert.Equal(t, int64(8), *posted.SourceID)
	require.Len(t, posted.Lines, 3)
	assert.Equal(t, journal.Line{AccountID: 120, Debit: 1_100_000, PersonID: new(int64(7))}, posted.Lines[0])
	assert.Equal(t, journal.Line{AccountID: 610, Credit: 1_000_000}, posted.Lines[1])
	assert.Equal(t, journal.Line{AccountID: 313, Credit: 100_000}, posted.Lines[2])
}

func TestService_Confirm_PurchaseWithoutTax(t *testing.T) {
	svc, m := newService(t)

	inv := draft(invoice.TypePurchase)
	for i := range inv.Lines {
		inv.Lines[i].TaxPercent = dec("0")
	}

	m.repo.EXPECT().LockInvoice(gomock.Any(), int64(8)).Return(inv, nil)

	var posted journal.PostParams
	m.ledger.EXPECT().PostWithin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p journal.PostParams) (*journal.Entry, error) {
			posted = p
			return &journal.Entry{ID: 901}, nil
		})
	m.repo.EXPECT().SetStatus(gomock.Any(), int64(8), invoice.StatusConfirmed, int64(901)).Return(nil)

	_, err := svc.Confirm(context.Background(), 8)
	require.NoError(t, err)

	require.Len(t, posted.Lines, 2)
	assert.Equal(t, journal.Line{AccountID: 710, Debit: 1_000_000}, posted.Lines[0])
	assert.Equal(t, journal.Line{AccountID: 310, Credit: 1_000_000, PersonID: new(int64(7))}, posted.Lines[1])
}

func TestService_Confirm_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		invoice func() *invoice.Invoice
		wantErr error
	}{
		{
			name: "AlreadyConfirmed",
			invoice: func() *invoice.Invoice {
				inv := draft(invoice.TypeSales)
				inv.Status = invoice.StatusConfirmed
				return inv
			},
			wantErr: invoice.ErrAlreadyConfirmed,
		},
		{
			name: "Returned",
			invoice: func() *invoice.Invoice {
				inv := draft(invoice.TypeSales)
				inv.Status = invoice.StatusReturned
				return inv
			},
			wantErr: invoice.ErrWrongStatus,
		},
		{
			name:    "Proforma",
			invoice: func() *invoice.Invoice { return draft(invoice.TypeProforma) },
			wantErr: invoice.ErrNotPostable,
		},
		{
			name: "NoLines",
			invoice: func() *invoice.Invoice {
				inv := draft(invoice.TypeSales)
				inv.Lines = nil
				return inv
			},
			wantErr: invoice.ErrEmptyInvoice,
		},
		{
			name: "ZeroTotal",
			invoice: func() *invoice.Invoice {
				inv := draft(invoice.TypeSales)
				inv.Lines = []invoice.Line{{ProductID: 1, Quantity: dec("1"), UnitPrice: 0}}
				return inv
			},
			wantErr: invoice.ErrZeroTotal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			m.repo.EXPECT().LockInvoice(gomock.Any(), int64(8)).Return(tt.invoice(), nil)

			_, err := svc.Confirm(context.Background(), 8)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_ConfirmTwice(t *testing.T) {
	svc, m := newService(t)

	inv := draft(invoice.TypeSales)
	m.repo.EXPECT().LockInvoice(gomock.Any(), int64(8)).Return(inv, nil).Times(2)
	m.ledger.EXPECT().PostWithin(gomock.Any(), gomock.Any()).Return(&journal.Entry{ID: 900}, nil)
	m.repo.EXPECT().SetStatus(gomock.Any(), int64(8), invoice.StatusConfirmed, int64(900)).Return(nil)

	_, err := svc.Confirm(context.Background(), 8)
	require.NoError(t, err)

	_, err = svc.Confirm(context.Background(), 8)
	assert.ErrorIs(t, err, invoice.ErrAlreadyConfirmed)
}

func TestService_Return(t *testing.T) {
	svc, m := newService(t)

	inv := draft(invoice.TypeSales)
	inv.Status = invoice.StatusConfirmed
	inv.JournalEntryID = new(int64(900))

	returnDate := invoiceDate.AddDate(0, 0, 5)

	m.repo.EXPECT().LockInvoice(gomock.Any(), int64(8)).Return(inv, nil)
	m.ledger.EXPECT().Reverse(gomock.Any(), journal.ReverseParams{
		EntryID: 900, Date: returnDate, Description: "Return of sales invoice 3",
	}).Return(&journal.Entry{ID: 950}, nil)
	m.repo.EXPECT().SetStatus(gomock.Any(), int64(8), invoice.StatusReturned, int64(950)).Return(nil)

	got, err := svc.Return(context.Background(), 8, returnDate)
	require.NoError(t, err)

	assert.Equal(t, invoice.StatusReturned, got.Status)
	assert.Equal(t, int64(950), *got.ReturnEntryID)
}

func TestService_Return_Draft(t *testing.T) {
	svc, m := newService(t)

	m.repo.EXPECT().LockInvoice(gomock.Any(), int64(8)).Return(draft(invoice.TypeSales), nil)

	_, err := svc.Return(context.Background(), 8, invoiceDate)
	assert.ErrorIs(t, err, invoice.ErrWrongStatus)
}

func TestService_Delete(t *testing.T) {
	tests := []struct {
		name    string
		status  invoice.Status
		wantErr error
	}{
		{name: "Draft", status: invoice.StatusDraft},
		{name: "Confirmed", status: invoice.StatusConfirmed, wantErr: invoice.ErrCannotDeletePosted},
		{name: "Returned", status: invoice.StatusReturned, wantErr: invoice.ErrCannotDeletePosted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)

			inv := draft(invoice.TypeSales)
			inv.Status = tt.status

			m.repo.EXPECT().LockInvoice(gomock.Any(), int64(8)).Return(inv, nil)

			if tt.wantErr == nil {
				m.repo.EXPECT().DeleteInvoice(gomock.Any(), int64(8)).Return(nil)
			}

			err := svc.Delete(context.Background(), 8)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestService_UpdateLines_Confirmed(t *testing.T) {
	svc, m := newService(t)

	inv := draft(invoice.TypeSales)
	inv.Status = invoice.StatusConfirmed

	m.repo.EXPECT().LockInvoice(gomock.Any(), int64(8)).Return(inv, nil)

	_, err := svc.UpdateLines(context.Background(), 8, twoLines())
	assert.ErrorIs(t, err, invoice.ErrWrongStatus)
}
