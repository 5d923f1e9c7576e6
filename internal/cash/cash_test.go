package cash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/daftar/internal/cash"
)

func TestVoucher_Validate(t *testing.T) {
	tests := []struct {
		name    string
		voucher cash.Voucher
		wantErr error
	}{
		{
			name:    "Receipt",
			voucher: cash.Voucher{Type: cash.VoucherReceipt, CashAccountID: 1, PersonID: new(int64(7)), Amount: 100},
		},
		{
			name:    "PaymentWithFee",
			voucher: cash.Voucher{Type: cash.VoucherPayment, CashAccountID: 1, PersonID: new(int64(7)), Amount: 100, BankFee: 5},
		},
		{
			name:    "Transfer",
			voucher: cash.Voucher{Type: cash.VoucherTransfer, CashAccountID: 1, TransferToID: new(int64(2)), Amount: 100, BankFee: 5},
		},
		{
			name:    "ZeroAmount",
			voucher: cash.Voucher{Type: cash.VoucherReceipt, CashAccountID: 1, PersonID: new(int64(7))},
			wantErr: cash.ErrInvalidAmount,
		},
		{
			name:    "NegativeFee",
			voucher: cash.Voucher{Type: cash.VoucherPayment, CashAccountID: 1, PersonID: new(int64(7)), Amount: 100, BankFee: -1},
			wantErr: cash.ErrInvalidAmount,
		},
		{
			name:    "TransferToSelf",
			voucher: cash.Voucher{Type: cash.VoucherTransfer, CashAccountID: 1, TransferToID: new(int64(1)), Amount: 100},
			wantErr: cash.ErrSameAccount,
		},
		{
			name:    "TransferWithoutDestination",
			voucher: cash.Voucher{Type: cash.VoucherTransfer, CashAccountID: 1, Amount: 100},
			wantErr: cash.ErrInvalidVoucher,
		},
		{
			name:    "TransferWithPerson",
			voucher: cash.Voucher{Type: cash.VoucherTransfer, CashAccountID: 1, TransferToID: new(int64(2)), PersonID: new(int64(7)), Amount: 100},
			wantErr: cash.ErrInvalidVoucher,
		},
		{
			name:    "ReceiptWithoutPerson",
			voucher: cash.Voucher{Type: cash.VoucherReceipt, CashAccountID: 1, Amount: 100},
			wantErr: cash.ErrInvalidVoucher,
		},
		{
			name:    "ReceiptWithFee",
			voucher: cash.Voucher{Type: cash.VoucherReceipt, CashAccountID: 1, PersonID: new(int64(7)), Amount: 100, BankFee: 1},
			wantErr: cash.ErrInvalidVoucher,
		},
		{
			name:    "PaymentWithDestination",
			voucher: cash.Voucher{Type: cash.VoucherPayment, CashAccountID: 1, PersonID: new(int64(7)), TransferToID: new(int64(2)), Amount: 100},
			wantErr: cash.ErrInvalidVoucher,
		},
		{
			name:    "UnknownType",
			voucher: cash.Voucher{Type: "refund", CashAccountID: 1, Amount: 100},
			wantErr: cash.ErrInvalidVoucher,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.voucher.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
