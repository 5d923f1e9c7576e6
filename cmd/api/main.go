package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/daftar/internal/cash"
	cashStore "github.com/MrJamesThe3rd/daftar/internal/cash/store"
	"github.com/MrJamesThe3rd/daftar/internal/chart"
	chartStore "github.com/MrJamesThe3rd/daftar/internal/chart/store"
	"github.com/MrJamesThe3rd/daftar/internal/check"
	checkStore "github.com/MrJamesThe3rd/daftar/internal/check/store"
	"github.com/MrJamesThe3rd/daftar/internal/config"
	"github.com/MrJamesThe3rd/daftar/internal/database"
	"github.com/MrJamesThe3rd/daftar/internal/directory"
	"github.com/MrJamesThe3rd/daftar/internal/fiscal"
	fiscalStore "github.com/MrJamesThe3rd/daftar/internal/fiscal/store"
	daftarHttp "github.com/MrJamesThe3rd/daftar/internal/http"
	accountHandler "github.com/MrJamesThe3rd/daftar/internal/http/account"
	cashHandler "github.com/MrJamesThe3rd/daftar/internal/http/cash"
	checkHandler "github.com/MrJamesThe3rd/daftar/internal/http/check"
	yearHandler "github.com/MrJamesThe3rd/daftar/internal/http/fiscalyear"
	invoiceHandler "github.com/MrJamesThe3rd/daftar/internal/http/invoice"
	journalHandler "github.com/MrJamesThe3rd/daftar/internal/http/journal"
	reportHandler "github.com/MrJamesThe3rd/daftar/internal/http/report"
	"github.com/MrJamesThe3rd/daftar/internal/invoice"
	invoiceStore "github.com/MrJamesThe3rd/daftar/internal/invoice/store"
	"github.com/MrJamesThe3rd/daftar/internal/journal"
	journalStore "github.com/MrJamesThe3rd/daftar/internal/journal/store"
	"github.com/MrJamesThe3rd/daftar/internal/report"
	reportStore "github.com/MrJamesThe3rd/daftar/internal/report/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	var chartOpts []chart.Option
	if cfg.Chart.TemplatePath != "" {
		tmpl, err := chart.LoadTemplate(cfg.Chart.TemplatePath)
		if err != nil {
			slog.Error("failed to load chart template", "path", cfg.Chart.TemplatePath, "error", err)
			os.Exit(1)
		}

		chartOpts = append(chartOpts, chart.WithTemplate(tmpl))
	}

	var (
		tx  = database.NewTransactor(db)
		dir = directory.New(db)
	)

	var (
		yearService    = fiscal.NewService(fiscalStore.New(db), tx)
		chartService   = chart.NewService(chartStore.New(db), yearService, tx, chartOpts...)
		journalService = journal.NewService(journalStore.New(db), chartService, yearService, tx)
		cashService    = cash.NewService(cashStore.New(db), journalService, chartService, dir, tx, cash.Rules{
			Receivable: cfg.Posting.Receivable,
			Payable:    cfg.Posting.Payable,
			BankFees:   cfg.Posting.BankFees,
		})
		checkService = check.NewService(checkStore.New(db), journalService, chartService, cashService, dir, tx, check.Rules{
			Receivable:       cfg.Posting.Receivable,
			Payable:          cfg.Posting.Payable,
			ChecksReceivable: cfg.Posting.ChecksReceivable,
			ChecksPayable:    cfg.Posting.ChecksPayable,
		})
		invoiceService = invoice.NewService(invoiceStore.New(db), journalService, chartService, yearService, dir, tx, invoice.Rules{
			Receivable:    cfg.Posting.Receivable,
			Payable:       cfg.Posting.Payable,
			Sales:         cfg.Posting.Sales,
			Purchases:     cfg.Posting.Purchases,
			TaxPayable:    cfg.Posting.TaxPayable,
			TaxReceivable: cfg.Posting.TaxReceivable,
		})
		reportService = report.NewService(reportStore.New(db), chartService, tx)
	)

	router := daftarHttp.New(daftarHttp.Options{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		MaxBodyBytes:   cfg.HTTP.MaxBodyBytes,
	}, daftarHttp.Handlers{
		Years:    yearHandler.NewHandler(yearService),
		Accounts: accountHandler.NewHandler(chartService, yearService),
		Journal:  journalHandler.NewHandler(journalService, yearService),
		Cash:     cashHandler.NewHandler(cashService, yearService),
		Checks:   checkHandler.NewHandler(checkService, yearService),
		Invoices: invoiceHandler.NewHandler(invoiceService, yearService),
		Reports:  reportHandler.NewHandler(reportService, yearService),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
