package cash

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/daftar/internal/cash"
	"github.com/MrJamesThe3rd/daftar/internal/http/respond"
)

type Handler struct {
	svc   *cash.Service
	years respond.YearResolver
	now   func() time.Time
}

func NewHandler(svc *cash.Service, years respond.YearResolver) *Handler {
	return &Handler{svc: svc, years: years, now: time.Now}
}

// AccountRoutes serves /cash-accounts.
func (h *Handler) AccountRoutes(r chi.Router) {
	r.Post("/", h.createAccount)
	r.Get("/", h.listAccounts)
	r.Get("/{id}", h.getAccount)
	r.Put("/{id}", h.updateAccount)
	r.Delete("/{id}", h.deleteAccount)
}

// VoucherRoutes serves /vouchers.
func (h *Handler) VoucherRoutes(r chi.Router) {
	r.Post("/receipts", h.postReceipt)
	r.Post("/payments", h.postPayment)
	r.Post("/transfers", h.postTransfer)
	r.Post("/", h.createVoucher)
	r.Get("/", h.listVouchers)
	r.Get("/{id}", h.getVoucher)
	r.Post("/{id}/post", h.postVoucher)
	r.Delete("/{id}", h.deleteVoucher)
}

type accountRequest struct {
	Name           string           `json:"name" validate:"required"`
	Type           cash.AccountType `json:"type" validate:"required"`
	Code           string           `json:"code"`
	Sheba          string           `json:"sheba"`
	CardNo         string           `json:"card_no"`
	ChartAccountID *int64           `json:"chart_account_id"`
	IsActive       *bool            `json:"is_active"`
}

func (req accountRequest) params() cash.AccountParams {
	return cash.AccountParams{
		Name:           req.Name,
		Type:           req.Type,
		Code:           req.Code,
		Sheba:          req.Sheba,
		CardNo:         req.CardNo,
		ChartAccountID: req.ChartAccountID,
		IsActive:       req.IsActive,
	}
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	a, err := h.svc.CreateAccount(r.Context(), req.params())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toAccountResponse(a))
}

func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req accountRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	a, err := h.svc.UpdateAccount(r.Context(), id, req.params())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toAccountResponse(a))
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.ListAccounts(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]accountResponse, len(accounts))
	for i, a := range accounts {
		resp[i] = toAccountResponse(a)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
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

	respond.JSON(w, http.StatusOK, toAccountResponse(a))
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
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

type voucherRequest struct {
	FiscalYearID  *int64        `json:"fiscal_year_id"`
	CashAccountID int64         `json:"cash_account_id" validate:"gt=0"`
	ToID          *int64        `json:"transfer_to_cash_account_id"`
	PersonID      *int64        `json:"person_id"`
	Amount        int64         `json:"amount"`
	BankFee       int64         `json:"bank_fee"`
	Date          *respond.Date `json:"date"`
	Description   string        `json:"description"`
}

// decodeVoucher decodes the body and resolves its fiscal year.
func (h *Handler) decodeVoucher(w http.ResponseWriter, r *http.Request) (voucherRequest, int64, bool) {
	var req voucherRequest
	if !respond.Decode(w, r, &req) {
		return req, 0, false
	}

	yearID, err := respond.Year(r.Context(), h.years, req.FiscalYearID)
	if err != nil {
		respond.Error(w, r, err)
		return req, 0, false
	}

	return req, yearID, true
}

func deref(id *int64) int64 {
	if id == nil {
		return 0
	}

	return *id
}

func (h *Handler) postReceipt(w http.ResponseWriter, r *http.Request) {
	req, yearID, ok := h.decodeVoucher(w, r)
	if !ok {
		return
	}

	v, err := h.svc.PostReceipt(r.Context(), cash.ReceiptParams{
		FiscalYearID:  yearID,
		CashAccountID: req.CashAccountID,
		PersonID:      deref(req.PersonID),
		Amount:        req.Amount,
		Date:          respond.DateOr(req.Date, h.now),
		Description:   req.Description,
	})
	h.writeVoucher(w, r, v, err)
}

func (h *Handler) postPayment(w http.ResponseWriter, r *http.Request) {
	req, yearID, ok := h.decodeVoucher(w, r)
	if !ok {
		return
	}

	v, err := h.svc.PostPayment(r.Context(), cash.PaymentParams{
		FiscalYearID:  yearID,
		CashAccountID: req.CashAccountID,
		PersonID:      deref(req.PersonID),
		Amount:        req.Amount,
		BankFee:       req.BankFee,
		Date:          respond.DateOr(req.Date, h.now),
		Description:   req.Description,
	})
	h.writeVoucher(w, r, v, err)
}

func (h *Handler) postTransfer(w http.ResponseWriter, r *http.Request) {
	req, yearID, ok := h.decodeVoucher(w, r)
	if !ok {
		return
	}

	v, err := h.svc.PostTransfer(r.Context(), cash.TransferParams{
		FiscalYearID: yearID,
		FromID:       req.CashAccountID,
		ToID:         deref(req.ToID),
		Amount:       req.Amount,
		BankFee:      req.BankFee,
		Date:         respond.DateOr(req.Date, h.now),
		Description:  req.Description,
	})
	h.writeVoucher(w, r, v, err)
}

type draftVoucherRequest struct {
	voucherRequest
	Type cash.VoucherType `json:"type" validate:"required"`
}

func (h *Handler) createVoucher(w http.ResponseWriter, r *http.Request) {
	var req draftVoucherRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	yearID, err := respond.Year(r.Context(), h.years, req.FiscalYearID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	v, err := h.svc.CreateVoucher(r.Context(), cash.VoucherParams{
		FiscalYearID:  yearID,
		Type:          req.Type,
		CashAccountID: req.CashAccountID,
		TransferToID:  req.ToID,
		PersonID:      req.PersonID,
		Amount:        req.Amount,
		BankFee:       req.BankFee,
		Date:          respond.DateOr(req.Date, h.now),
		Description:   req.Description,
	})
	h.writeVoucher(w, r, v, err)
}

func (h *Handler) writeVoucher(w http.ResponseWriter, r *http.Request, v *cash.Voucher, err error) {
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toVoucherResponse(v))
}

func (h *Handler) postVoucher(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	v, err := h.svc.PostVoucher(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toVoucherResponse(v))
}

func (h *Handler) deleteVoucher(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := h.svc.DeleteVoucher(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getVoucher(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	v, err := h.svc.GetVoucher(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toVoucherResponse(v))
}

func (h *Handler) listVouchers(w http.ResponseWriter, r *http.Request) {
	yearID, err := respond.QueryYear(r, h.years)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	filter := cash.VoucherFilter{FiscalYearID: yearID}

	if s := r.URL.Query().Get("type"); s != "" {
		filter.Type = new(cash.VoucherType(s))
	}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(cash.Status(s))
	}

	if filter.CashAccountID, err = respond.QueryID(r, "cash_account_id"); err != nil {
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

	vouchers, err := h.svc.ListVouchers(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]voucherResponse, len(vouchers))
	for i, v := range vouchers {
		resp[i] = toVoucherResponse(v)
	}

	respond.JSON(w, http.StatusOK, resp)
}
