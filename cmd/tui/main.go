package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/daftar/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/daftar/internal/chart"
	chartStore "github.com/MrJamesThe3rd/daftar/internal/chart/store"
	"github.com/MrJamesThe3rd/daftar/internal/config"
	"github.com/MrJamesThe3rd/daftar/internal/database"
	"github.com/MrJamesThe3rd/daftar/internal/fiscal"
	fiscalStore "github.com/MrJamesThe3rd/daftar/internal/fiscal/store"
	"github.com/MrJamesThe3rd/daftar/internal/report"
	reportStore "github.com/MrJamesThe3rd/daftar/internal/report/store"
)

type model struct {
	appName       string
	yearService   *fiscal.Service
	reportService *report.Service
	scale         int32

	currentView View

	yearsView  view.YearsModel
	reportView view.ReportModel
}

type View int

const (
	ViewMenu    View = 0
	ViewYears   View = 1
	ViewReports View = 2
)

func initialModel() model {
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

	tx := database.NewTransactor(db)
	yearSvc := fiscal.NewService(fiscalStore.New(db), tx)
	chartSvc := chart.NewService(chartStore.New(db), yearSvc, tx)
	reportSvc := report.NewService(reportStore.New(db), chartSvc, tx)

	return model{
		appName:       cfg.App.Name,
		yearService:   yearSvc,
		reportService: reportSvc,
		scale:         cfg.App.AmountScale,
		currentView:   ViewMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewReports
				m.reportView = view.NewReportModel(m.reportService, m.yearService, m.scale)

				return m, m.reportView.Init()
			case "2":
				m.currentView = ViewYears
				m.yearsView = view.NewYearsModel(m.yearService)

				return m, m.yearsView.Init()
			}
		}

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewYears:
		var newModel tea.Model
		newModel, cmd = m.yearsView.Update(msg)
		m.yearsView = newModel.(view.YearsModel)
	case ViewReports:
		var newModel tea.Model
		newModel, cmd = m.reportView.Update(msg)
		m.reportView = newModel.(view.ReportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			m.appName + "\n\n" +
				"1. Browse Reports\n" +
				"2. Fiscal Years\n\n" +
				"q. Quit",
		)
	case ViewYears:
		return m.yearsView.View()
	case ViewReports:
		return m.reportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
