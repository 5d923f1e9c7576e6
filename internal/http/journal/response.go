package journal

import (
	"time"

	"github.com/MrJamesThe3rd/daftar/internal/http/respond"
	"github.com/MrJamesThe3rd/daftar/internal/journal"
)

type lineResponse struct {
	LineNo      int    `json:"line_no"`
	AccountID   int64  `json:"account_id"`
	Debit       int64  `json:"debit"`
	Credit      int64  `json:"credit"`
	Description string `json:"description,omitempty"`
	PersonID    *int64 `json:"person_id,omitempty"`
}

type entryResponse struct {
	ID              int64          `json:"id"`
	FiscalYearID    int64          `json:"fiscal_year_id"`
	VoucherNo       int64          `json:"voucher_no,omitempty"`
	VoucherDate     respond.Date   `json:"voucher_date"`
	Description     string         `json:"description"`
	Status          journal.Status `json:"status"`
	SourceType      string         `json:"source_type,omitempty"`
	SourceID        *int64         `json:"source_id,omitempty"`
	ReversesEntryID *int64         `json:"reverses_entry_id,omitempty"`
	TotalDebit      int64          `json:"total_debit"`
	TotalCredit     int64          `json:"total_credit"`
	Lines           []lineResponse `json:"lines,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	PostedAt        *time.Time     `json:"posted_at,omitempty"`
}

func toResponse(e *journal.Entry) entryResponse {
	debit, credit := e.Totals()

	resp := entryResponse{
		ID:              e.ID,
		FiscalYearID:    e.FiscalYearID,
		VoucherNo:       e.VoucherNo,
		VoucherDate:     respond.Date{Time: e.VoucherDate},
		Description:     e.Description,
		Status:          e.Status,
		SourceType:      e.SourceType,
		SourceID:        e.SourceID,
		ReversesEntryID: e.ReversesEntryID,
		TotalDebit:      debit,
		TotalCredit:     credit,
		CreatedAt:       e.CreatedAt,
		PostedAt:        e.PostedAt,
	}

	for _, l := range e.Lines {
		resp.Lines = append(resp.Lines, lineResponse{
			LineNo:      l.LineNo,
			AccountID:   l.AccountID,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Description: l.Description,
			PersonID:    l.PersonID,
		})
	}

	return resp
}

func toResponseList(entries []*journal.Entry) []entryResponse {
	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toResponse(e)
	}

	return resp
}

type balanceResponse struct {
	AccountID   int64         `json:"account_id"`
	AsOf        *respond.Date `json:"as_of,omitempty"`
	DebitTotal  int64         `json:"debit_total"`
	CreditTotal int64         `json:"credit_total"`
	Balance     int64         `json:"balance"`
}
