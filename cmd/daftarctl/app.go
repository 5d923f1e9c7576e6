package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/daftar/internal/chart"
	chartStore "github.com/MrJamesThe3rd/daftar/internal/chart/store"
	"github.com/MrJamesThe3rd/daftar/internal/config"
	"github.com/MrJamesThe3rd/daftar/internal/database"
	"github.com/MrJamesThe3rd/daftar/internal/fiscal"
	fiscalStore "github.com/MrJamesThe3rd/daftar/internal/fiscal/store"
	"github.com/MrJamesThe3rd/daftar/internal/report"
	reportStore "github.com/MrJamesThe3rd/daftar/internal/report/store"
)

// app holds the services the commands share. It is filled in before any
// subcommand runs.
type app struct {
	cfg     *config.Config
	db      *sql.DB
	years   *fiscal.Service
	chart   *chart.Service
	reports *report.Service
}

func (a *app) open(ctx context.Context) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	var opts []chart.Option
	if cfg.Chart.TemplatePath != "" {
		tmpl, err := chart.LoadTemplate(cfg.Chart.TemplatePath)
		if err != nil {
			db.Close()
			return err
		}

		opts = append(opts, chart.WithTemplate(tmpl))
	}

	tx := database.NewTransactor(db)

	a.cfg = cfg
	a.db = db
	a.years = fiscal.NewService(fiscalStore.New(db), tx)
	a.chart = chart.NewService(chartStore.New(db), a.years, tx, opts...)
	a.reports = report.NewService(reportStore.New(db), a.chart, tx)

	return nil
}

func (a *app) close() {
	if a.db != nil {
		a.db.Close()
	}
}

// year returns id, or the active year when id is zero.
func (a *app) year(ctx context.Context, id int64) (*fiscal.Year, error) {
	if id != 0 {
		return a.years.Get(ctx, id)
	}

	return a.years.CurrentYear(ctx)
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}

	return &t, nil
}
