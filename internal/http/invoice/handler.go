package invoice

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/daftar/internal/http/respond"
	"github.com/MrJamesThe3rd/daftar/internal/invoice"
)

type Handler struct {
	svc   *invoice.Service
	years respond.YearResolver
	now   func() time.Time
}

func NewHandler(svc *invoice.Service, years respond.YearResolver) *Handler {
	return &Handler{svc: svc, years: years, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Post("/totals", h.totals)
	r.Get("/{id}", h.get)
	r.Put("/{id}/lines", h.updateLines)
	r.Post("/{id}/confirm", h.confirm)
	r.Post("/{id}/return", h.returnInvoice)
	r.Delete("/{id}", h.delete)
}

type lineRequest struct {
	ProductID       int64           `json:"product_id" validate:"gt=0"`
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       int64           `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountAmount  int64           `json:"discount_amount"`
	TaxPercent      decimal.Decimal `json:"tax_percent"`
	TaxAmount       int64           `json:"tax_amount"`
}

type linesRequest struct {
	Lines []lineRequest `json:"lines" validate:"dive"`
}

func (req linesRequest) lines() []invoice.Line {
	lines := make([]invoice.Line, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = invoice.Line{
			ProductID:       l.ProductID,
			Description:     l.Description,
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice,
			DiscountPercent: l.DiscountPercent,
			DiscountAmount:  l.DiscountAmount,
			TaxPercent:      l.TaxPercent,
			TaxAmount:       l.TaxAmount,
		}
	}

	return lines
}

type createInvoiceRequest struct {
	linesRequest
	FiscalYearID *int64        `json:"fiscal_year_id"`
	Type         invoice.Type  `json:"invoice_type" validate:"required"`
	PersonID     int64         `json:"person_id" validate:"gt=0"`
	InvoiceDate  *respond.Date `json:"invoice_date"`
	DueDate      *respond.Date `json:"due_date"`
	Description  string        `json:"description"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	yearID, err := respond.Year(r.Context(), h.years, req.FiscalYearID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	params := invoice.CreateParams{
		FiscalYearID: yearID,
		Type:         req.Type,
		PersonID:     req.PersonID,
		InvoiceDate:  respond.DateOr(req.InvoiceDate, h.now),
		Description:  req.Description,
		Lines:        req.lines(),
	}

	if req.DueDate != nil {
		params.DueDate = &req.DueDate.Time
	}

	inv, err := h.svc.Create(r.Context(), params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(inv))
}

// totals prices lines without storing anything, for forms that show running totals.
func (h *Handler) totals(w http.ResponseWriter, r *http.Request) {
	var req linesRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	lines := req.lines()
	if err := invoice.ValidateLines(lines); err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(&invoice.Invoice{Lines: lines}).Totals)
}

func (h *Handler) updateLines(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req linesRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	inv, err := h.svc.UpdateLines(r.Context(), id, req.lines())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(inv))
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	inv, err := h.svc.Confirm(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(inv))
}

type returnRequest struct {
	Date *respond.Date `json:"date"`
}

func (h *Handler) returnInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req returnRequest
	if r.ContentLength != 0 && !respond.Decode(w, r, &req) {
		return
	}

	inv, err := h.svc.Return(r.Context(), id, respond.DateOr(req.Date, h.now))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(inv))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(inv))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	yearID, err := respond.QueryYear(r, h.years)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	filter := invoice.ListFilter{FiscalYearID: yearID}

	if s := r.URL.Query().Get("invoice_type"); s != "" {
		filter.Type = new(invoice.Type(s))
	}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(invoice.Status(s))
	}

	if filter.PersonID, err = respond.QueryID(r, "person_id"); err != nil {
		respond.Error(w, r, err)
		return
	}

	if filter.From, err = respond.QueryDate(r, "from"); err != nil {
		respond.Error(w, r, err)
		return
	}

	if filter.To, err = respond.QueryDate(r, "to"); err != nil {
		respond.Error(w, r, err)
		return
	}

	invoices, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	// Listed invoices carry no lines, so their totals are left out.
	resp := make([]invoiceResponse, len(invoices))
	for i, inv := range invoices {
		resp[i] = toResponse(inv)
		resp[i].Totals = nil
	}

	respond.JSON(w, http.StatusOK, resp)
}
