package check

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/daftar/internal/check"
	"github.com/MrJamesThe3rd/daftar/internal/http/respond"
)

type Handler struct {
	svc   *check.Service
	years respond.YearResolver
	now   func() time.Time
}

func NewHandler(svc *check.Service, years respond.YearResolver) *Handler {
	return &Handler{svc: svc, years: years, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.register)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Get("/{id}/history", h.history)
	r.Post("/{id}/collect", h.transition(h.svc.Collect))
	r.Post("/{id}/spend", h.transition(h.svc.Spend))
	r.Post("/{id}/return", h.transition(h.svc.Return))
}

type checkResponse struct {
	ID             int64        `json:"id"`
	FiscalYearID   int64        `json:"fiscal_year_id"`
	Type           check.Type   `json:"type"`
	CheckNo        string       `json:"check_no"`
	CheckDate      respond.Date `json:"check_date"`
	DueDate        respond.Date `json:"due_date"`
	Amount         int64        `json:"amount"`
	CashAccountID  int64        `json:"cash_account_id"`
	PersonID       int64        `json:"person_id"`
	Status         check.Status `json:"status"`
	JournalEntryID *int64       `json:"journal_entry_id,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

func toResponse(c *check.Check) checkResponse {
	return checkResponse{
		ID:             c.ID,
		FiscalYearID:   c.FiscalYearID,
		Type:           c.Type,
		CheckNo:        c.CheckNo,
		CheckDate:      respond.Date{Time: c.CheckDate},
		DueDate:        respond.Date{Time: c.DueDate},
		Amount:         c.Amount,
		CashAccountID:  c.CashAccountID,
		PersonID:       c.PersonID,
		Status:         c.Status,
		JournalEntryID: c.JournalEntryID,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

type transitionResponse struct {
	From           check.Status `json:"from,omitempty"`
	To             check.Status `json:"to"`
	JournalEntryID int64        `json:"journal_entry_id"`
	OccurredOn     respond.Date `json:"occurred_on"`
	CreatedAt      time.Time    `json:"created_at"`
}

type registerRequest struct {
	FiscalYearID  *int64       `json:"fiscal_year_id"`
	Type          check.Type   `json:"type" validate:"required"`
	CheckNo       string       `json:"check_no" validate:"required"`
	CheckDate     respond.Date `json:"check_date"`
	DueDate       respond.Date `json:"due_date"`
	Amount        int64        `json:"amount"`
	CashAccountID int64        `json:"cash_account_id" validate:"gt=0"`
	PersonID      int64        `json:"person_id" validate:"gt=0"`
	Description   string       `json:"description"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	yearID, err := respond.Year(r.Context(), h.years, req.FiscalYearID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	c, err := h.svc.Register(r.Context(), check.RegisterParams{
		FiscalYearID:  yearID,
		Type:          req.Type,
		CheckNo:       req.CheckNo,
		CheckDate:     req.CheckDate.Time,
		DueDate:       req.DueDate.Time,
		Amount:        req.Amount,
		CashAccountID: req.CashAccountID,
		PersonID:      req.PersonID,
		Description:   req.Description,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(c))
}

type transitionRequest struct {
	FiscalYearID *int64        `json:"fiscal_year_id"`
	Date         *respond.Date `json:"date"`
	Description  string        `json:"description"`
}

// transition serves collect, spend and return. The posting year defaults to
// the check's own year inside the service, so no active year is looked up.
func (h *Handler) transition(apply func(ctx context.Context, id int64, params check.TransitionParams) (*check.Check, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := respond.ID(r, "id")
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		var req transitionRequest
		if r.ContentLength != 0 && !respond.Decode(w, r, &req) {
			return
		}

		params := check.TransitionParams{
			Date:        respond.DateOr(req.Date, h.now),
			Description: req.Description,
		}

		if req.FiscalYearID != nil {
			params.FiscalYearID = *req.FiscalYearID
		}

		c, err := apply(r.Context(), id, params)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, toResponse(c))
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c))
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	transitions, err := h.svc.History(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]transitionResponse, len(transitions))
	for i, t := range transitions {
		resp[i] = transitionResponse{
			From:           t.From,
			To:             t.To,
			JournalEntryID: t.JournalEntryID,
			OccurredOn:     respond.Date{Time: t.OccurredOn},
			CreatedAt:      t.CreatedAt,
		}
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	yearID, err := respond.QueryYear(r, h.years)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	filter := check.ListFilter{FiscalYearID: yearID}

	if s := r.URL.Query().Get("type"); s != "" {
		filter.Type = new(check.Type(s))
	}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(check.Status(s))
	}

	if filter.PersonID, err = respond.QueryID(r, "person_id"); err != nil {
		respond.Error(w, r, err)
		return
	}

	if filter.DueBefore, err = respond.QueryDate(r, "due_before"); err != nil {
		respond.Error(w, r, err)
		return
	}

	checks, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]checkResponse, len(checks))
	for i, c := range checks {
		resp[i] = toResponse(c)
	}

	respond.JSON(w, http.StatusOK, resp)
}
