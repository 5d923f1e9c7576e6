package journal

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/daftar/internal/http/respond"
	"github.com/MrJamesThe3rd/daftar/internal/journal"
)

type Handler struct {
	svc   *journal.Service
	years respond.YearResolver
	now   func() time.Time
}

func NewHandler(svc *journal.Service, years respond.YearResolver) *Handler {
	return &Handler{svc: svc, years: years, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.post)
	r.Get("/", h.list)
	r.Get("/balances/{accountID}", h.balance)
	r.Post("/drafts", h.saveDraft)
	r.Put("/drafts/{id}", h.updateDraft)
	r.Delete("/drafts/{id}", h.deleteDraft)
	r.Post("/drafts/{id}/post", h.postDraft)
	r.Get("/{id}", h.get)
	r.Post("/{id}/reverse", h.reverse)
}

type lineRequest struct {
	AccountID   int64  `json:"account_id" validate:"gt=0"`
	Debit       int64  `json:"debit"`
	Credit      int64  `json:"credit"`
	Description string `json:"description"`
	PersonID    *int64 `json:"person_id"`
}

type entryRequest struct {
	FiscalYearID *int64        `json:"fiscal_year_id"`
	Date         *respond.Date `json:"date"`
	Description  string        `json:"description"`
	Lines        []lineRequest `json:"lines" validate:"dive"`
}

func (req entryRequest) lines() []journal.Line {
	lines := make([]journal.Line, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = journal.Line{
			AccountID:   l.AccountID,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Description: l.Description,
			PersonID:    l.PersonID,
		}
	}

	return lines
}

func (h *Handler) post(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	yearID, err := respond.Year(r.Context(), h.years, req.FiscalYearID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	e, err := h.svc.PostEntry(r.Context(), journal.PostParams{
		FiscalYearID: yearID,
		Date:         respond.DateOr(req.Date, h.now),
		Description:  req.Description,
		Lines:        req.lines(),
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(e))
}

func (h *Handler) saveDraft(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	yearID, err := respond.Year(r.Context(), h.years, req.FiscalYearID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	e, err := h.svc.SaveDraft(r.Context(), journal.DraftParams{
		FiscalYearID: yearID,
		Date:         respond.DateOr(req.Date, h.now),
		Description:  req.Description,
		Lines:        req.lines(),
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(e))
}

func (h *Handler) updateDraft(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req entryRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	yearID, err := respond.Year(r.Context(), h.years, req.FiscalYearID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	e, err := h.svc.UpdateDraft(r.Context(), id, journal.DraftParams{
		FiscalYearID: yearID,
		Date:         respond.DateOr(req.Date, h.now),
		Description:  req.Description,
		Lines:        req.lines(),
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(e))
}

func (h *Handler) deleteDraft(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := h.svc.DeleteDraft(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) postDraft(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	e, err := h.svc.PostDraft(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(e))
}

type reverseRequest struct {
	Date        *respond.Date `json:"date"`
	Description string        `json:"description"`
}

func (h *Handler) reverse(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req reverseRequest
	if r.ContentLength != 0 && !respond.Decode(w, r, &req) {
		return
	}

	params := journal.ReverseParams{EntryID: id, Description: req.Description}
	if req.Date != nil {
		params.Date = req.Date.Time
	}

	e, err := h.svc.Reverse(r.Context(), params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(e))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(e))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	yearID, err := respond.QueryYear(r, h.years)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	filter := journal.ListFilter{FiscalYearID: yearID, SourceType: r.URL.Query().Get("source_type")}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(journal.Status(s))
	}

	if filter.From, err = respond.QueryDate(r, "from"); err != nil {
		respond.Error(w, r, err)
		return
	}

	if filter.To, err = respond.QueryDate(r, "to"); err != nil {
		respond.Error(w, r, err)
		return
	}

	if filter.SourceID, err = respond.QueryID(r, "source_id"); err != nil {
		respond.Error(w, r, err)
		return
	}

	entries, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(entries))
}

func (h *Handler) balance(w http.ResponseWriter, r *http.Request) {
	accountID, err := respond.ID(r, "accountID")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	asOf, err := respond.QueryDate(r, "as_of")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	b, err := h.svc.AccountBalance(r.Context(), accountID, asOf)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := balanceResponse{
		AccountID:   b.AccountID,
		DebitTotal:  b.DebitTotal,
		CreditTotal: b.CreditTotal,
		Balance:     b.Balance,
	}

	if asOf != nil {
		resp.AsOf = &respond.Date{Time: *asOf}
	}

	respond.JSON(w, http.StatusOK, resp)
}
