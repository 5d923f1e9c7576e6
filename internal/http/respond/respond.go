// Package respond holds the JSON plumbing shared by the API handlers.
package respond

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/daftar/internal/fault"
	"github.com/MrJamesThe3rd/daftar/internal/fiscal"
)

// ErrBadParam rejects a malformed URL or query parameter.
var ErrBadParam = fault.New(fault.KindValidation, "bad_request", "invalid parameter")

type contextKey string

const requestIDKey contextKey = "request_id"

const RequestIDHeader = "X-Request-ID"

var validRequestID = regexp.MustCompile(`^[a-zA-Z0-9\-]{1,64}$`)

// RequestID tags each request with X-Request-ID, keeping a caller-supplied id
// only when it is short and plain.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if !validRequestID.MatchString(id) {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

var statusByKind = map[fault.Kind]int{
	fault.KindValidation:    http.StatusBadRequest,
	fault.KindStateConflict: http.StatusConflict,
	fault.KindReferential:   http.StatusUnprocessableEntity,
	fault.KindBalance:       http.StatusUnprocessableEntity,
	fault.KindInUse:         http.StatusConflict,
	fault.KindNotFound:      http.StatusNotFound,
}

// StatusOf returns the HTTP status for err and the code reported to clients.
func StatusOf(err error) (int, string) {
	fe, ok := fault.As(err)
	if !ok {
		return http.StatusInternalServerError, "internal_error"
	}

	status, ok := statusByKind[fe.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	return status, fe.Code
}

// Error writes err as a JSON error body. Storage failures are logged and
// reported without detail.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status, code := StatusOf(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path,
			"request_id", RequestIDFrom(r.Context()), "error", err)

		msg = "internal error"
	}

	write(w, status, errorResponse{Error: msg, Code: code, RequestID: RequestIDFrom(r.Context())})
}

// BadRequest reports malformed input that never reached a service.
func BadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	write(w, http.StatusBadRequest, errorResponse{Error: msg, Code: "bad_request", RequestID: RequestIDFrom(r.Context())})
}

func JSON(w http.ResponseWriter, status int, v any) {
	write(w, status, v)
}

func write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode reads a JSON body into v, rejecting unknown fields, trailing data and
// values that fail v's validate tags. It writes the error response itself and
// reports whether the handler may continue.
func Decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(v)
	if err == nil && dec.Decode(&struct{}{}) != io.EOF {
		err = errors.New("body must hold a single JSON object")
	}

	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			write(w, http.StatusRequestEntityTooLarge, errorResponse{
				Error: "request body too large", Code: "request_too_large", RequestID: RequestIDFrom(r.Context()),
			})

			return false
		}

		BadRequest(w, r, "invalid JSON body: "+err.Error())

		return false
	}

	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			BadRequest(w, r, fmt.Sprintf("field %s fails %q", verrs[0].Field(), verrs[0].Tag()))
			return false
		}

		BadRequest(w, r, err.Error())

		return false
	}

	return true
}

// ID parses a positive integer URL parameter.
func ID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrBadParam, name)
	}

	return id, nil
}

// QueryID parses an optional positive integer query parameter.
func QueryID(r *http.Request, name string) (*int64, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrBadParam, name)
	}

	return &id, nil
}

// QueryDate parses an optional YYYY-MM-DD query parameter.
func QueryDate(r *http.Request, name string) (*time.Time, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s wants YYYY-MM-DD", ErrBadParam, name)
	}

	return &t, nil
}

// Date is a calendar day in JSON, written as YYYY-MM-DD.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}

	d.Time = t

	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(time.DateOnly))
}

// DateOr returns the day d names, or today when it is nil.
func DateOr(d *Date, now func() time.Time) time.Time {
	if d == nil {
		return fiscal.Day(now())
	}

	return d.Time
}

type YearResolver interface {
	CurrentYear(ctx context.Context) (*fiscal.Year, error)
}

// Year returns id, or the active fiscal year's id when id is unset.
func Year(ctx context.Context, years YearResolver, id *int64) (int64, error) {
	if id != nil && *id > 0 {
		return *id, nil
	}

	y, err := years.CurrentYear(ctx)
	if err != nil {
		return 0, err
	}

	return y.ID, nil
}

// QueryYear resolves the fiscal_year_id query parameter the way Year does.
func QueryYear(r *http.Request, years YearResolver) (int64, error) {
	id, err := QueryID(r, "fiscal_year_id")
	if err != nil {
		return 0, err
	}

	return Year(r.Context(), years, id)
}
