package cash

import (
	"fmt"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/daftar/internal/fault"
)

var (
	ErrInvalidAmount      = fault.New(fault.KindValidation, "invalid_amount", "amount must be positive")
	ErrSameAccount        = fault.New(fault.KindValidation, "same_account", "cannot transfer to the same cash account")
	ErrInvalidVoucher     = fault.New(fault.KindValidation, "invalid_voucher", "invalid voucher")
	ErrInvalidCashAccount = fault.New(fault.KindValidation, "invalid_cash_account", "invalid cash account")
	ErrNoLedgerAccount    = fault.New(fault.KindValidation, "no_ledger_account", "cash account has no ledger account")
	ErrInactiveAccount    = fault.New(fault.KindStateConflict, "inactive_cash_account", "cash account is inactive")
	ErrVoucherPosted      = fault.New(fault.KindStateConflict, "voucher_posted", "voucher is already posted")
	ErrAccountInUse       = fault.New(fault.KindInUse, "cash_account_in_use", "cash account is referenced by vouchers or checks")
	ErrAccountNotFound    = fault.New(fault.KindNotFound, "cash_account_not_found", "cash account not found")
	ErrVoucherNotFound    = fault.New(fault.KindNotFound, "voucher_not_found", "voucher not found")
)

type AccountType string

const (
	AccountBank  AccountType = "bank"
	AccountCash  AccountType = "cash"
	AccountPetty AccountType = "petty"
)

func (t AccountType) Valid() bool {
	return t == AccountBank || t == AccountCash || t == AccountPetty
}

// Account is a cash box or bank account. It is not tied to a fiscal year;
// ChartAccountID is resolved by code in whichever year a voucher posts to.
type Account struct {
	ID             int64
	Name           string
	Type           AccountType
	Code           string
	Sheba          string
	CardNo         string
	ChartAccountID *int64
	IsActive       bool
	CreatedAt      time.Time
}

type VoucherType string

const (
	VoucherReceipt  VoucherType = "receipt"
	VoucherPayment  VoucherType = "payment"
	VoucherTransfer VoucherType = "transfer"
)

type Status string

const (
	StatusDraft  Status = "draft"
	StatusPosted Status = "posted"
)

// Voucher is a receipt, payment or transfer. VoucherNo is zero until posted.
type Voucher struct {
	ID             int64
	FiscalYearID   int64
	VoucherNo      int64
	VoucherDate    time.Time
	Type           VoucherType
	CashAccountID  int64
	TransferToID   *int64
	PersonID       *int64
	Amount         int64
	BankFee        int64
	Description    string
	Status         Status
	JournalEntryID *int64
	CreatedAt      time.Time
}

// Validate checks the fields each voucher type requires or forbids.
func (v *Voucher) Validate() error {
	if v.Amount <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidAmount, v.Amount)
	}

	if v.BankFee < 0 {
		return fmt.Errorf("%w: bank fee %d is negative", ErrInvalidAmount, v.BankFee)
	}

	switch v.Type {
	case VoucherTransfer:
		if v.TransferToID == nil {
			return fmt.Errorf("%w: transfer needs a destination account", ErrInvalidVoucher)
		}

		if *v.TransferToID == v.CashAccountID {
			return fmt.Errorf("%w: account %d", ErrSameAccount, v.CashAccountID)
		}

		if v.PersonID != nil {
			return fmt.Errorf("%w: transfer cannot name a person", ErrInvalidVoucher)
		}
	case VoucherReceipt, VoucherPayment:
		if v.PersonID == nil {
			return fmt.Errorf("%w: %s needs a person", ErrInvalidVoucher, v.Type)
		}

		if v.TransferToID != nil {
			return fmt.Errorf("%w: %s cannot name a destination account", ErrInvalidVoucher, v.Type)
		}

		if v.Type == VoucherReceipt && v.BankFee != 0 {
			return fmt.Errorf("%w: receipts carry no bank fee", ErrInvalidVoucher)
		}
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidVoucher, v.Type)
	}

	return nil
}

type AccountParams struct {
	Name           string
	Type           AccountType
	Code           string
	Sheba          string
	CardNo         string
	ChartAccountID *int64
	IsActive       *bool
}

func (p AccountParams) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCashAccount)
	}

	if !p.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidCashAccount, p.Type)
	}

	return nil
}

type VoucherFilter struct {
	FiscalYearID  int64
	Type          *VoucherType
	Status        *Status
	CashAccountID *int64
	From          *time.Time
	To            *time.Time
}
