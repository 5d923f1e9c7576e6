package fiscalyear

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/daftar/internal/fiscal"
	"github.com/MrJamesThe3rd/daftar/internal/http/respond"
)

type Handler struct {
	svc *fiscal.Service
}

func NewHandler(svc *fiscal.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/current", h.current)
	r.Get("/{id}", h.get)
	r.Post("/{id}/activate", h.activate)
	r.Post("/{id}/close", h.close)
}

type yearResponse struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	StartDate respond.Date `json:"start_date"`
	EndDate   respond.Date `json:"end_date"`
	IsActive  bool         `json:"is_active"`
	Closed    bool         `json:"closed"`
	CreatedAt time.Time    `json:"created_at"`
}

func toResponse(y *fiscal.Year) yearResponse {
	return yearResponse{
		ID:        y.ID,
		Name:      y.Name,
		StartDate: respond.Date{Time: y.StartDate},
		EndDate:   respond.Date{Time: y.EndDate},
		IsActive:  y.IsActive,
		Closed:    y.Closed,
		CreatedAt: y.CreatedAt,
	}
}

type createYearRequest struct {
	Name      string       `json:"name" validate:"required"`
	StartDate respond.Date `json:"start_date"`
	EndDate   respond.Date `json:"end_date"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createYearRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	y, err := h.svc.CreateYear(r.Context(), fiscal.CreateParams{
		Name:      req.Name,
		StartDate: req.StartDate.Time,
		EndDate:   req.EndDate.Time,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(y))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	years, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]yearResponse, len(years))
	for i, y := range years {
		resp[i] = toResponse(y)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
	y, err := h.svc.CurrentYear(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(y))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	y, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(y))
}

func (h *Handler) activate(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	y, err := h.svc.Activate(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(y))
}

func (h *Handler) close(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := h.svc.Close(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
