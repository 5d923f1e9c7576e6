package invoice

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/daftar/internal/http/respond"
	"github.com/MrJamesThe3rd/daftar/internal/invoice"
)

type lineResponse struct {
	LineNo          int             `json:"line_no"`
	ProductID       int64           `json:"product_id"`
	Description     string          `json:"description,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       int64           `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountAmount  int64           `json:"discount_amount"`
	TaxPercent      decimal.Decimal `json:"tax_percent"`
	TaxAmount       int64           `json:"tax_amount"`
	Net             int64           `json:"net"`
	Tax             int64           `json:"tax"`
	Total           int64           `json:"total"`
}

type totalsResponse struct {
	Gross    int64 `json:"gross"`
	Discount int64 `json:"discount"`
	Net      int64 `json:"net"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

type invoiceResponse struct {
	ID             int64           `json:"id"`
	FiscalYearID   int64           `json:"fiscal_year_id"`
	InvoiceNo      int64           `json:"invoice_no"`
	Type           invoice.Type    `json:"invoice_type"`
	PersonID       int64           `json:"person_id"`
	InvoiceDate    respond.Date    `json:"invoice_date"`
	DueDate        *respond.Date   `json:"due_date,omitempty"`
	Description    string          `json:"description"`
	Status         invoice.Status  `json:"status"`
	JournalEntryID *int64          `json:"journal_entry_id,omitempty"`
	ReturnEntryID  *int64          `json:"return_entry_id,omitempty"`
	Lines          []lineResponse  `json:"lines,omitempty"`
	Totals         *totalsResponse `json:"totals,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func toResponse(inv *invoice.Invoice) invoiceResponse {
	t := inv.Totals()

	resp := invoiceResponse{
		ID:             inv.ID,
		FiscalYearID:   inv.FiscalYearID,
		InvoiceNo:      inv.InvoiceNo,
		Type:           inv.Type,
		PersonID:       inv.PersonID,
		InvoiceDate:    respond.Date{Time: inv.InvoiceDate},
		Description:    inv.Description,
		Status:         inv.Status,
		JournalEntryID: inv.JournalEntryID,
		ReturnEntryID:  inv.ReturnEntryID,
		Totals:         &totalsResponse{
			Gross:    t.Gross,
			Discount: t.Discount,
			Net:      t.Net,
			Tax:      t.Tax,
			Total:    t.Total,
		},
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}

	if inv.DueDate != nil {
		resp.DueDate = &respond.Date{Time: *inv.DueDate}
	}

	for i, l := range inv.Lines {
		resp.Lines = append(resp.Lines, lineResponse{
			LineNo:          l.LineNo,
			ProductID:       l.ProductID,
			Description:     l.Description,
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice,
			DiscountPercent: l.DiscountPercent,
			DiscountAmount:  l.DiscountAmount,
			TaxPercent:      l.TaxPercent,
			TaxAmount:       l.TaxAmount,
			Net:             t.Lines[i].Net,
			Tax:             t.Lines[i].Tax,
			Total:           t.Lines[i].Total,
		})
	}

	return resp
}
