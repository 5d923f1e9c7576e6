package report

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/daftar/internal/http/respond"
	"github.com/MrJamesThe3rd/daftar/internal/report"
)

type Handler struct {
	svc   *report.Service
	years respond.YearResolver
}

func NewHandler(svc *report.Service, years respond.YearResolver) *Handler {
	return &Handler{svc: svc, years: years}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/trial-balance", h.trialBalance)
	r.Get("/ledger/{accountID}", h.ledger)
	r.Get("/balance-sheet", h.balanceSheet)
	r.Get("/profit-loss", h.profitLoss)
}

func period(r *http.Request) (report.Period, error) {
	var (
		p   report.Period
		err error
	)

	if p.From, err = respond.QueryDate(r, "from"); err != nil {
		return p, err
	}

	p.To, err = respond.QueryDate(r, "to")

	return p, err
}

func (h *Handler) trialBalance(w http.ResponseWriter, r *http.Request) {
	yearID, err := respond.QueryYear(r, h.years)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	p, err := period(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var level int
	if s := r.URL.Query().Get("level"); s != "" {
		if level, err = strconv.Atoi(s); err != nil {
			respond.BadRequest(w, r, "level must be a number")
			return
		}
	}

	tb, err := h.svc.TrialBalance(r.Context(), yearID, p, level)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toTrialBalanceResponse(tb))
}

func (h *Handler) ledger(w http.ResponseWriter, r *http.Request) {
	accountID, err := respond.ID(r, "accountID")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	p, err := period(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	l, err := h.svc.Ledger(r.Context(), accountID, p)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toLedgerResponse(l))
}

func (h *Handler) balanceSheet(w http.ResponseWriter, r *http.Request) {
	yearID, err := respond.QueryYear(r, h.years)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	asOf, err := respond.QueryDate(r, "as_of")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	bs, err := h.svc.BalanceSheet(r.Context(), yearID, asOf)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toBalanceSheetResponse(bs))
}

func (h *Handler) profitLoss(w http.ResponseWriter, r *http.Request) {
	yearID, err := respond.QueryYear(r, h.years)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	p, err := period(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	pl, err := h.svc.ProfitLoss(r.Context(), yearID, p)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toProfitLossResponse(pl))
}
