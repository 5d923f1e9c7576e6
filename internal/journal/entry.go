package journal

import (
	"time"

	"github.com/MrJamesThe3rd/daftar/internal/chart"
	"github.com/MrJamesThe3rd/daftar/internal/fault"
)

var (
	ErrInsufficientLines = fault.New(fault.KindValidation, "insufficient_lines", "an entry needs at least two lines")
	ErrInvalidLine       = fault.New(fault.KindValidation, "invalid_line", "a line needs exactly one positive side")
	ErrUnbalancedEntry   = fault.New(fault.KindBalance, "unbalanced_entry", "debits and credits differ")
	ErrEntryNotFound     = fault.New(fault.KindNotFound, "entry_not_found", "journal entry not found")
	ErrEntryPosted       = fault.New(fault.KindStateConflict, "entry_posted", "posted entries are immutable")
	ErrNotPosted         = fault.New(fault.KindStateConflict, "entry_not_posted", "journal entry is not posted")
	ErrAlreadyReversed   = fault.New(fault.KindStateConflict, "already_reversed", "journal entry is already reversed")

	// Account failures share the chart's codes so callers match one sentinel.
	ErrUnknownAccount = chart.ErrUnknownAccount
	ErrNotLeafAccount = chart.ErrNotLeafAccount
)

type Status string

const (
	StatusDraft  Status = "draft"
	StatusPosted Status = "posted"
)

// Source types recorded on entries generated by other modules.
const (
	SourceReceiptVoucher = "receipt_voucher"
	SourceCheck          = "check"
	SourceInvoice        = "invoice"
	SourceReversal       = "reversal"
)

type Line struct {
	ID          int64
	LineNo      int
	AccountID   int64
	Debit       int64
	Credit      int64
	Description string
	PersonID    *int64
}

// Entry is a journal voucher. VoucherNo is zero until the entry is posted.
type Entry struct {
	ID              int64
	FiscalYearID    int64
	VoucherNo       int64
	VoucherDate     time.Time
	Description     string
	Status          Status
	SourceType      string
	SourceID        *int64
	ReversesEntryID *int64
	Lines           []Line
	CreatedAt       time.Time
	PostedAt        *time.Time
}

// Totals sums both sides of the entry.
func (e *Entry) Totals() (debit, credit int64) {
	for _, l := range e.Lines {
		debit += l.Debit
		credit += l.Credit
	}

	return debit, credit
}

// Balance of one account. Balance follows the account's normal side: positive
// means a debit balance for assets and expenses, a credit balance otherwise.
type Balance struct {
	AccountID   int64
	DebitTotal  int64
	CreditTotal int64
	Balance     int64
}

type ListFilter struct {
	FiscalYearID int64
	Status       *Status
	From         *time.Time
	To           *time.Time
	SourceType   string
	SourceID     *int64
	Limit        int
}
