package report

import (
	"time"

	"github.com/MrJamesThe3rd/daftar/internal/chart"
	"github.com/MrJamesThe3rd/daftar/internal/http/respond"
	"github.com/MrJamesThe3rd/daftar/internal/report"
)

func date(t *time.Time) *respond.Date {
	if t == nil {
		return nil
	}

	return &respond.Date{Time: *t}
}

type trialRowResponse struct {
	AccountID     int64      `json:"account_id,omitempty"`
	Code          string     `json:"code,omitempty"`
	Title         string     `json:"title,omitempty"`
	Level         int        `json:"level,omitempty"`
	Type          chart.Type `json:"account_type,omitempty"`
	DebitTotal    int64      `json:"debit_total"`
	CreditTotal   int64      `json:"credit_total"`
	BalanceDebit  int64      `json:"balance_debit"`
	BalanceCredit int64      `json:"balance_credit"`
}

type trialBalanceResponse struct {
	FiscalYearID int64              `json:"fiscal_year_id"`
	From         *respond.Date      `json:"from,omitempty"`
	To           *respond.Date      `json:"to,omitempty"`
	Level        int                `json:"level,omitempty"`
	Rows         []trialRowResponse `json:"rows"`
	Total        trialRowResponse   `json:"total"`
}

func toTrialRow(r report.TrialRow) trialRowResponse {
	return trialRowResponse{
		AccountID:     r.AccountID,
		Code:          r.Code,
		Title:         r.Title,
		Level:         r.Level,
		Type:          r.Type,
		DebitTotal:    r.DebitTotal,
		CreditTotal:   r.CreditTotal,
		BalanceDebit:  r.BalanceDebit,
		BalanceCredit: r.BalanceCredit,
	}
}

func toTrialBalanceResponse(tb *report.TrialBalance) trialBalanceResponse {
	resp := trialBalanceResponse{
		FiscalYearID: tb.FiscalYearID,
		From:         date(tb.Period.From),
		To:           date(tb.Period.To),
		Level:        tb.Level,
		Rows:         make([]trialRowResponse, len(tb.Rows)),
		Total:        toTrialRow(tb.Total),
	}

	for i, r := range tb.Rows {
		resp.Rows[i] = toTrialRow(r)
	}

	return resp
}

type sidesResponse struct {
	Debit  int64 `json:"debit"`
	Credit int64 `json:"credit"`
}

type ledgerRowResponse struct {
	EntryID       int64        `json:"entry_id"`
	VoucherNo     int64        `json:"voucher_no"`
	VoucherDate   respond.Date `json:"voucher_date"`
	AccountID     int64        `json:"account_id"`
	Description   string       `json:"description"`
	Debit         int64        `json:"debit"`
	Credit        int64        `json:"credit"`
	BalanceDebit  int64        `json:"balance_debit"`
	BalanceCredit int64        `json:"balance_credit"`
}

type ledgerResponse struct {
	AccountID int64               `json:"account_id"`
	Code      string              `json:"code"`
	Title     string              `json:"title"`
	From      *respond.Date       `json:"from,omitempty"`
	To        *respond.Date       `json:"to,omitempty"`
	Opening   sidesResponse       `json:"opening"`
	Rows      []ledgerRowResponse `json:"rows"`
	Closing   sidesResponse       `json:"closing"`
}

func sides(s report.Sums) sidesResponse {
	dr, cr := s.Sides()
	return sidesResponse{Debit: dr, Credit: cr}
}

func toLedgerResponse(l *report.Ledger) ledgerResponse {
	resp := ledgerResponse{
		AccountID: l.Account.ID,
		Code:      l.Account.Code,
		Title:     l.Account.Title,
		From:      date(l.Period.From),
		To:        date(l.Period.To),
		Opening:   sides(l.Opening),
		Rows:      make([]ledgerRowResponse, len(l.Rows)),
		Closing:   sides(l.Closing),
	}

	for i, r := range l.Rows {
		resp.Rows[i] = ledgerRowResponse{
			EntryID:       r.EntryID,
			VoucherNo:     r.VoucherNo,
			VoucherDate:   respond.Date{Time: r.VoucherDate},
			AccountID:     r.AccountID,
			Description:   r.Description,
			Debit:         r.Debit,
			Credit:        r.Credit,
			BalanceDebit:  r.BalanceDebit,
			BalanceCredit: r.BalanceCredit,
		}
	}

	return resp
}

type lineResponse struct {
	AccountID int64  `json:"account_id"`
	Code      string `json:"code"`
	Title     string `json:"title"`
	Amount    int64  `json:"amount"`
}

func toLines(lines []report.Line) []lineResponse {
	resp := make([]lineResponse, len(lines))
	for i, l := range lines {
		resp[i] = lineResponse{AccountID: l.AccountID, Code: l.Code, Title: l.Title, Amount: l.Amount}
	}

	return resp
}

type balanceSheetResponse struct {
	FiscalYearID     int64          `json:"fiscal_year_id"`
	AsOf             *respond.Date  `json:"as_of,omitempty"`
	Assets           []lineResponse `json:"assets"`
	Liabilities      []lineResponse `json:"liabilities"`
	Equity           []lineResponse `json:"equity"`
	CurrentResult    int64          `json:"current_result"`
	TotalAssets      int64          `json:"total_assets"`
	TotalLiabilities int64          `json:"total_liabilities"`
	TotalEquity      int64          `json:"total_equity"`
	Balanced         bool           `json:"balanced"`
}

func toBalanceSheetResponse(bs *report.BalanceSheet) balanceSheetResponse {
	return balanceSheetResponse{
		FiscalYearID:     bs.FiscalYearID,
		AsOf:             date(bs.AsOf),
		Assets:           toLines(bs.Assets),
		Liabilities:      toLines(bs.Liabilities),
		Equity:           toLines(bs.Equity),
		CurrentResult:    bs.CurrentResult,
		TotalAssets:      bs.TotalAssets,
		TotalLiabilities: bs.TotalLiabilities,
		TotalEquity:      bs.TotalEquity,
		Balanced:         bs.Balanced,
	}
}

type profitLossResponse struct {
	FiscalYearID int64          `json:"fiscal_year_id"`
	From         *respond.Date  `json:"from,omitempty"`
	To           *respond.Date  `json:"to,omitempty"`
	Income       []lineResponse `json:"income"`
	Expense      []lineResponse `json:"expense"`
	TotalIncome  int64          `json:"total_income"`
	TotalExpense int64          `json:"total_expense"`
	Net          int64          `json:"net"`
}

func toProfitLossResponse(pl *report.ProfitLoss) profitLossResponse {
	return profitLossResponse{
		FiscalYearID: pl.FiscalYearID,
		From:         date(pl.Period.From),
		To:           date(pl.Period.To),
		Income:       toLines(pl.Income),
		Expense:      toLines(pl.Expense),
		TotalIncome:  pl.TotalIncome,
		TotalExpense: pl.TotalExpense,
		Net:          pl.Net,
	}
}
