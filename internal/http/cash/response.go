package cash

import (
	"time"

	"github.com/MrJamesThe3rd/daftar/internal/cash"
	"github.com/MrJamesThe3rd/daftar/internal/http/respond"
)

type accountResponse struct {
	ID             int64            `json:"id"`
	Name           string           `json:"name"`
	Type           cash.AccountType `json:"type"`
	Code           string           `json:"code,omitempty"`
	Sheba          string           `json:"sheba,omitempty"`
	CardNo         string           `json:"card_no,omitempty"`
	ChartAccountID *int64           `json:"chart_account_id,omitempty"`
	IsActive       bool             `json:"is_active"`
	CreatedAt      time.Time        `json:"created_at"`
}

func toAccountResponse(a *cash.Account) accountResponse {
	return accountResponse{
		ID:             a.ID,
		Name:           a.Name,
		Type:           a.Type,
		Code:           a.Code,
		Sheba:          a.Sheba,
		CardNo:         a.CardNo,
		ChartAccountID: a.ChartAccountID,
		IsActive:       a.IsActive,
		CreatedAt:      a.CreatedAt,
	}
}

type voucherResponse struct {
	ID             int64            `json:"id"`
	FiscalYearID   int64            `json:"fiscal_year_id"`
	VoucherNo      int64            `json:"voucher_no,omitempty"`
	VoucherDate    respond.Date     `json:"voucher_date"`
	Type           cash.VoucherType `json:"type"`
	CashAccountID  int64            `json:"cash_account_id"`
	TransferToID   *int64           `json:"transfer_to_cash_account_id,omitempty"`
	PersonID       *int64           `json:"person_id,omitempty"`
	Amount         int64            `json:"amount"`
	BankFee        int64            `json:"bank_fee"`
	Description    string           `json:"description"`
	Status         cash.Status      `json:"status"`
	JournalEntryID *int64           `json:"journal_entry_id,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

func toVoucherResponse(v *cash.Voucher) voucherResponse {
	return voucherResponse{
		ID:             v.ID,
		FiscalYearID:   v.FiscalYearID,
		VoucherNo:      v.VoucherNo,
		VoucherDate:    respond.Date{Time: v.VoucherDate},
		Type:           v.Type,
		CashAccountID:  v.CashAccountID,
		TransferToID:   v.TransferToID,
		PersonID:       v.PersonID,
		Amount:         v.Amount,
		BankFee:        v.BankFee,
		Description:    v.Description,
		Status:         v.Status,
		JournalEntryID: v.JournalEntryID,
		CreatedAt:      v.CreatedAt,
	}
}
