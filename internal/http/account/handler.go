package account

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/daftar/internal/chart"
	"github.com/MrJamesThe3rd/daftar/internal/http/respond"
)

const maxTemplateSize = 2 << 20

type Handler struct {
	svc   *chart.Service
	years respond.YearResolver
}

func NewHandler(svc *chart.Service, years respond.YearResolver) *Handler {
	return &Handler{svc: svc, years: years}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Post("/seed", h.seed)
	r.Post("/import", h.importCSV)
	r.Post("/copy", h.copyChart)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.rename)
	r.Delete("/{id}", h.delete)
}

type accountResponse struct {
	ID           int64      `json:"id"`
	FiscalYearID int64      `json:"fiscal_year_id"`
	Code         string     `json:"code"`
	Title        string     `json:"title"`
	Level        int        `json:"level"`
	ParentCode   string     `json:"parent_code,omitempty"`
	Type         chart.Type `json:"account_type"`
	IsLeaf       bool       `json:"is_leaf"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toResponse(a *chart.Account) accountResponse {
	return accountResponse{
		ID:           a.ID,
		FiscalYearID: a.FiscalYearID,
		Code:         a.Code,
		Title:        a.Title,
		Level:        a.Level,
		ParentCode:   a.ParentCode,
		Type:         a.Type,
		IsLeaf:       a.IsLeaf,
		CreatedAt:    a.CreatedAt,
	}
}

type countResponse struct {
	FiscalYearID int64 `json:"fiscal_year_id"`
	Created      int   `json:"created"`
}

type createAccountRequest struct {
	FiscalYearID *int64     `json:"fiscal_year_id"`
	Code         string     `json:"code" validate:"required"`
	Title        string     `json:"title" validate:"required"`
	Type         chart.Type `json:"account_type" validate:"required"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	yearID, err := respond.Year(r.Context(), h.years, req.FiscalYearID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	a, err := h.svc.CreateAccount(r.Context(), chart.CreateParams{
		FiscalYearID: yearID,
		Code:         req.Code,
		Title:        req.Title,
		Type:         req.Type,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(a))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	yearID, err := respond.QueryYear(r, h.years)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	accounts, err := h.svc.ListAccounts(r.Context(), yearID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]accountResponse, len(accounts))
	for i, a := range accounts {
		resp[i] = toResponse(a)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	a, err := h.svc.GetAccount(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(a))
}

type renameRequest struct {
	Title string `json:"title" validate:"required"`
}

func (h *Handler) rename(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req renameRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	a, err := h.svc.RenameAccount(r.Context(), id, req.Title)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(a))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := h.svc.DeleteAccount(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) seed(w http.ResponseWriter, r *http.Request) {
	yearID, err := respond.QueryYear(r, h.years)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	n, err := h.svc.SeedDefaultChart(r.Context(), yearID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, countResponse{FiscalYearID: yearID, Created: n})
}

// importCSV takes the chart template as a multipart "file" field.
func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	yearID, err := respond.QueryYear(r, h.years)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(maxTemplateSize); err != nil {
		respond.BadRequest(w, r, "failed to parse form: "+err.Error())
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respond.BadRequest(w, r, "file field is required")
		return
	}
	defer file.Close()

	n, err := h.svc.ImportCSV(r.Context(), yearID, file)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, countResponse{FiscalYearID: yearID, Created: n})
}

type copyRequest struct {
	FromFiscalYearID int64 `json:"from_fiscal_year_id" validate:"gt=0"`
	ToFiscalYearID   int64 `json:"to_fiscal_year_id" validate:"gt=0,nefield=FromFiscalYearID"`
}

func (h *Handler) copyChart(w http.ResponseWriter, r *http.Request) {
	var req copyRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	n, err := h.svc.CopyChart(r.Context(), req.FromFiscalYearID, req.ToFiscalYearID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, countResponse{FiscalYearID: req.ToFiscalYearID, Created: n})
}
