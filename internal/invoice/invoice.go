package invoice

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/daftar/internal/fault"
)

var (
	ErrAlreadyConfirmed   = fault.New(fault.KindStateConflict, "already_confirmed", "invoice is already confirmed")
	ErrWrongStatus        = fault.New(fault.KindStateConflict, "wrong_status", "invoice status does not allow this")
	ErrCannotDeletePosted = fault.New(fault.KindStateConflict, "cannot_delete_posted", "only draft invoices can be deleted")
	ErrEmptyInvoice       = fault.New(fault.KindValidation, "empty_invoice", "invoice has no lines")
	ErrNotPostable        = fault.New(fault.KindValidation, "not_postable", "proforma invoices are never posted")
	ErrZeroTotal          = fault.New(fault.KindValidation, "zero_total", "invoice total is zero")
	ErrInvalidInvoice     = fault.New(fault.KindValidation, "invalid_invoice", "invalid invoice")
	ErrInvalidLine        = fault.New(fault.KindValidation, "invalid_invoice_line", "invalid invoice line")
	ErrInvoiceNotFound    = fault.New(fault.KindNotFound, "invoice_not_found", "invoice not found")
)

type Type string

const (
	TypeProforma Type = "proforma"
	TypeSales    Type = "sales"
	TypePurchase Type = "purchase"
)

func (t Type) Valid() bool {
	return t == TypeProforma || t == TypeSales || t == TypePurchase
}

type Status string

const (
	StatusDraft     Status = "draft"
	StatusConfirmed Status = "confirmed"
	StatusReturned  Status = "returned"
)

// Line amounts are in minor units; percentages are 0..100.
type Line struct {
	ID              int64
	LineNo          int
	ProductID       int64
	Description     string
	Quantity        decimal.Decimal
	UnitPrice       int64
	DiscountPercent decimal.Decimal
	DiscountAmount  int64
	TaxPercent      decimal.Decimal
	TaxAmount       int64
}

type Invoice struct {
	ID             int64
	FiscalYearID   int64
	InvoiceNo      int64
	Type           Type
	PersonID       int64
	InvoiceDate    time.Time
	DueDate        *time.Time
	Description    string
	Status         Status
	JournalEntryID *int64
	ReturnEntryID  *int64
	Lines          []Line
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (inv *Invoice) Totals() Totals {
	return ComputeTotals(inv.Lines)
}

type LineTotals struct {
	Gross    int64
	Discount int64
	Net      int64
	Tax      int64
	Total    int64
}

type Totals struct {
	LineTotals
	Lines []LineTotals
}

var hundred = decimal.NewFromInt(100)

// maxAmount bounds line amounts so that invoice sums stay within int64.
const maxAmount = 1e15

// ComputeTotals prices each line and sums them. Percentage amounts are
// rounded half away from zero to the minor unit, line by line.
func ComputeTotals(lines []Line) Totals {
	var t Totals

	for _, l := range lines {
		lt := lineTotals(l)

		t.Gross += lt.Gross
		t.Discount += lt.Discount
		t.Net += lt.Net
		t.Tax += lt.Tax
		t.Total += lt.Total
		t.Lines = append(t.Lines, lt)
	}

	return t
}

func lineTotals(l Line) LineTotals {
	gross := l.Quantity.Mul(decimal.NewFromInt(l.UnitPrice)).Round(0).IntPart()
	discount := percentOf(gross, l.DiscountPercent) + l.DiscountAmount
	net := gross - discount
	tax := percentOf(net, l.TaxPercent) + l.TaxAmount

	return LineTotals{Gross: gross, Discount: discount, Net: net, Tax: tax, Total: net + tax}
}

func percentOf(amount int64, percent decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(percent).Div(hundred).Round(0).IntPart()
}

// ValidateLines rejects lines whose totals would be meaningless: non-positive
// quantities, negative prices, percentages outside 0..100, a discount larger
// than the line, or invoice sums that no longer fit in int64.
func ValidateLines(lines []Line) error {
	var sum LineTotals

	for i, l := range lines {
		n := i + 1

		switch {
		case l.ProductID <= 0:
			return fmt.Errorf("%w: line %d has no product", ErrInvalidLine, n)
		case !l.Quantity.IsPositive():
			return fmt.Errorf("%w: line %d quantity must be positive", ErrInvalidLine, n)
		case l.UnitPrice < 0 || l.DiscountAmount < 0 || l.TaxAmount < 0:
			return fmt.Errorf("%w: line %d has a negative amount", ErrInvalidLine, n)
		case outOfRange(l.DiscountPercent) || outOfRange(l.TaxPercent):
			return fmt.Errorf("%w: line %d percentage must be between 0 and 100", ErrInvalidLine, n)
		case l.DiscountAmount > maxAmount || l.TaxAmount > maxAmount,
			l.Quantity.Mul(decimal.NewFromInt(l.UnitPrice)).GreaterThan(decimal.NewFromInt(maxAmount)):
			return fmt.Errorf("%w: line %d amount is too large", ErrInvalidLine, n)
		}

		lt := lineTotals(l)
		if lt.Net < 0 {
			return fmt.Errorf("%w: line %d discount %d exceeds gross %d", ErrInvalidLine, n, lt.Discount, lt.Gross)
		}

		// Discount, net and tax never exceed gross or total, so these two bound every sum.
		if sum.Gross > math.MaxInt64-lt.Gross || sum.Total > math.MaxInt64-lt.Total {
			return fmt.Errorf("%w: line %d overflows the invoice total", ErrInvalidInvoice, n)
		}

		sum.Gross += lt.Gross
		sum.Total += lt.Total
	}

	return nil
}

func outOfRange(p decimal.Decimal) bool {
	return p.IsNegative() || p.GreaterThan(hundred)
}

type ListFilter struct {
	FiscalYearID int64
	Type         *Type
	Status       *Status
	PersonID     *int64
	From         *time.Time
	To           *time.Time
}
