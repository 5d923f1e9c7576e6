package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/daftar/internal/http/account"
	"github.com/MrJamesThe3rd/daftar/internal/http/cash"
	"github.com/MrJamesThe3rd/daftar/internal/http/check"
	"github.com/MrJamesThe3rd/daftar/internal/http/fiscalyear"
	"github.com/MrJamesThe3rd/daftar/internal/http/invoice"
	"github.com/MrJamesThe3rd/daftar/internal/http/journal"
	"github.com/MrJamesThe3rd/daftar/internal/http/report"
	"github.com/MrJamesThe3rd/daftar/internal/http/respond"
)

type Options struct {
	AllowedOrigins []string
	MaxBodyBytes   int64
}

type Handlers struct {
	Years    *fiscalyear.Handler
	Accounts *account.Handler
	Journal  *journal.Handler
	Cash     *cash.Handler
	Checks   *check.Handler
	Invoices *invoice.Handler
	Reports  *report.Handler
}

func New(opts Options, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(respond.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	if len(opts.AllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
			AllowedHeaders: []string{"Content-Type", respond.RequestIDHeader},
			ExposedHeaders: []string{respond.RequestIDHeader},
			MaxAge:         300,
		}))
	}

	if opts.MaxBodyBytes > 0 {
		router.Use(middleware.RequestSize(opts.MaxBodyBytes))
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/fiscal-years", h.Years.Routes)

		// Chart import takes multipart uploads, so accounts skips the JSON content-type check.
		r.Route("/accounts", h.Accounts.Routes)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))

			r.Route("/journal", h.Journal.Routes)
			r.Route("/cash-accounts", h.Cash.AccountRoutes)
			r.Route("/vouchers", h.Cash.VoucherRoutes)
			r.Route("/checks", h.Checks.Routes)
			r.Route("/invoices", h.Invoices.Routes)
		})

		r.Route("/reports", h.Reports.Routes)
	})

	return router
}
