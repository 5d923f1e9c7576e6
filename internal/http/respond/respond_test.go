package respond_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/daftar/internal/chart"
	"github.com/MrJamesThe3rd/daftar/internal/fiscal"
	"github.com/MrJamesThe3rd/daftar/internal/http/respond"
	"github.com/MrJamesThe3rd/daftar/internal/journal"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "Validation", err: journal.ErrInsufficientLines, wantStatus: http.StatusBadRequest, wantCode: "insufficient_lines"},
		{name: "Balance", err: fmt.Errorf("%w: 10 != 9", journal.ErrUnbalancedEntry), wantStatus: http.StatusUnprocessableEntity, wantCode: "unbalanced_entry"},
		{name: "Referential", err: chart.ErrUnknownAccount, wantStatus: http.StatusUnprocessableEntity},
		{name: "StateConflict", err: journal.ErrEntryPosted, wantStatus: http.StatusConflict},
		{name: "InUse", err: chart.ErrAccountInUse, wantStatus: http.StatusConflict},
		{name: "NotFound", err: fiscal.ErrNoActiveYear, wantStatus: http.StatusNotFound},
		{name: "Storage", err: fmt.Errorf("listing accounts: %w", context.DeadlineExceeded), wantStatus: http.StatusInternalServerError, wantCode: "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := respond.StatusOf(tt.err)

			assert.Equal(t, tt.wantStatus, status)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, code)
			}
		})
	}
}

func TestError_IncludesRequestID(t *testing.T) {
	h := respond.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, r, fmt.Errorf("%w: debit 10, credit 9", journal.ErrUnbalancedEntry))
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/journal", nil)
	req.Header.Set("X-Request-ID", "abc-123")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unbalanced_entry", body["code"])
	assert.Equal(t, "abc-123", body["request_id"])
	assert.Contains(t, body["error"], "debit 10, credit 9")
}

func TestRequestID_ReplacesUnsafeID(t *testing.T) {
	var seen string

	h := respond.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = respond.RequestIDFrom(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "<script>")

	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.NotEqual(t, "<script>", seen)
	assert.Len(t, seen, 36)
}

func TestError_HidesStorageDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Error(rec, httptest.NewRequest(http.MethodGet, "/", nil), fmt.Errorf("getting entry: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

type sampleRequest struct {
	Name   string        `json:"name" validate:"required"`
	Amount int64         `json:"amount" validate:"gt=0"`
	Date   *respond.Date `json:"date"`
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantStatus int
	}{
		{name: "Valid", body: `{"name":"rent","amount":5,"date":"2024-03-20"}`, wantOK: true},
		{name: "UnknownField", body: `{"name":"rent","amount":5,"colour":"red"}`, wantStatus: http.StatusBadRequest},
		{name: "TrailingData", body: `{"name":"rent","amount":5}{}`, wantStatus: http.StatusBadRequest},
		{name: "MissingRequired", body: `{"amount":5}`, wantStatus: http.StatusBadRequest},
		{name: "NonPositiveAmount", body: `{"name":"rent","amount":0}`, wantStatus: http.StatusBadRequest},
		{name: "BadDate", body: `{"name":"rent","amount":5,"date":"20/03/2024"}`, wantStatus: http.StatusBadRequest},
		{name: "TooLarge", body: `{"name":"` + strings.Repeat("x", 200) + `","amount":5}`, wantStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Body = http.MaxBytesReader(rec, req.Body, 100)

			var got sampleRequest
			ok := respond.Decode(rec, req, &got)

			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), got.Date.Time)
				return
			}

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestID(t *testing.T) {
	tests := []struct {
		param   string
		want    int64
		wantErr bool
	}{
		{param: "42", want: 42},
		{param: "0", wantErr: true},
		{param: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.param)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			got, err := respond.ID(req, "id")
			if tt.wantErr {
				assert.ErrorIs(t, err, respond.ErrBadParam)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type fixedYear struct {
	year *fiscal.Year
	err  error
}

func (f fixedYear) CurrentYear(context.Context) (*fiscal.Year, error) {
	return f.year, f.err
}

func TestQueryYear(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		years   fixedYear
		want    int64
		wantErr error
	}{
		{name: "Explicit", query: "?fiscal_year_id=3", want: 3},
		{name: "Active", years: fixedYear{year: &fiscal.Year{ID: 9}}, want: 9},
		{name: "NoActive", years: fixedYear{err: fiscal.ErrNoActiveYear}, wantErr: fiscal.ErrNoActiveYear},
		{name: "Malformed", query: "?fiscal_year_id=x", wantErr: respond.ErrBadParam},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := respond.QueryYear(httptest.NewRequest(http.MethodGet, "/"+tt.query, nil), tt.years)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
