package view

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/daftar/internal/fiscal"
	"github.com/MrJamesThe3rd/daftar/internal/money"
	"github.com/MrJamesThe3rd/daftar/internal/report"
)

type ReportService interface {
	TrialBalance(ctx context.Context, fiscalYearID int64, period report.Period, level int) (*report.TrialBalance, error)
	BalanceSheet(ctx context.Context, fiscalYearID int64, asOf *time.Time) (*report.BalanceSheet, error)
	ProfitLoss(ctx context.Context, fiscalYearID int64, period report.Period) (*report.ProfitLoss, error)
}

type ReportKind int

const (
	ReportTrialBalance ReportKind = iota
	ReportBalanceSheet
	ReportProfitLoss
)

func (k ReportKind) String() string {
	switch k {
	case ReportTrialBalance:
		return "Trial Balance"
	case ReportBalanceSheet:
		return "Balance Sheet"
	case ReportProfitLoss:
		return "Profit & Loss"
	}

	return "Unknown"
}

type reportState int

const (
	reportStateBrowse reportState = iota
	reportStatePeriod
)

// ReportModel browses the reports of the active fiscal year.
type ReportModel struct {
	CommonModel
	reports ReportService
	years   YearService
	scale   int32

	state  reportState
	kind   ReportKind
	level  int
	year   *fiscal.Year
	period report.Period
	picker PeriodPicker
	table  table.Model

	summary string
	loading bool
	err     error
}

func NewReportModel(reports ReportService, years YearService, scale int32) ReportModel {
	t := table.New(table.WithFocused(true), table.WithHeight(18))

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ReportModel{
		reports: reports,
		years:   years,
		scale:   scale,
		table:   t,
		loading: true,
	}
}

func (m ReportModel) Title() string { return m.kind.String() }

func (m ReportModel) ShortHelp() string {
	if m.state == reportStatePeriod {
		return "Enter: select | Esc: cancel"
	}

	return "Esc: back | Tab: next report | p: period | l: level | r: refresh"
}

func (m ReportModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		m.loading = false
		m.err = msg.err

		if msg.err == nil {
			m.year = msg.year
			m.summary = msg.summary
			m.table.SetRows(nil)
			m.table.SetColumns(msg.columns)
			m.table.SetRows(msg.rows)
			m.table.GotoTop()
		}

		return m, nil

	case PeriodSelectedMsg:
		m.state = reportStateBrowse
		m.period = msg.Period
		m.loading = true

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.table.SetHeight(max(msg.Height-12, 5))

		return m, nil
	}

	if m.state == reportStatePeriod {
		if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc && m.picker.IsSelecting() {
			m.state = reportStateBrowse
			return m, nil
		}

		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)

		return m, cmd
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, Back
		case "tab":
			m.kind = (m.kind + 1) % 3
			m.loading = true

			return m, m.loadCmd()
		case "p":
			m.state = reportStatePeriod
			m.picker = NewPeriodPicker(m.year)

			return m, nil
		case "l":
			m.level = (m.level + 1) % 5
			if m.kind != ReportTrialBalance {
				return m, nil
			}

			m.loading = true

			return m, m.loadCmd()
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ReportModel) View() string {
	if m.state == reportStatePeriod {
		return lipgloss.NewStyle().Padding(2).Render(m.picker.View())
	}

	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading report...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n(Esc to back)")
	}

	header := fmt.Sprintf("%s | %s | Period: %s",
		activeStyle.Render(m.kind.String()), m.year.Name, activeStyle.Render(describePeriod(m.period)))
	if m.kind == ReportTrialBalance {
		level := "leaves"
		if m.level > 0 {
			level = fmt.Sprintf("level %d", m.level)
		}

		header += " | Level: " + activeStyle.Render(level)
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(header),
		tableView,
		m.summary,
		faintStyle.Render(m.ShortHelp()),
	))
}

type reportLoadedMsg struct {
	year    *fiscal.Year
	columns []table.Column
	rows    []table.Row
	summary string
	err     error
}

func (m ReportModel) loadCmd() tea.Cmd {
	kind, level, period, scale := m.kind, m.level, m.period, m.scale

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		y, err := m.years.CurrentYear(ctx)
		if err != nil {
			return reportLoadedMsg{err: err}
		}

		msg := reportLoadedMsg{year: y}

		switch kind {
		case ReportTrialBalance:
			tb, err := m.reports.TrialBalance(ctx, y.ID, period, level)
			if err != nil {
				return reportLoadedMsg{err: err}
			}

			msg.columns, msg.rows = trialBalanceTable(tb, scale)
		case ReportBalanceSheet:
			bs, err := m.reports.BalanceSheet(ctx, y.ID, period.To)
			if err != nil {
				return reportLoadedMsg{err: err}
			}

			msg.columns, msg.rows = balanceSheetTable(bs, scale)
			msg.summary = balanceSheetSummary(bs, scale)
		case ReportProfitLoss:
			pl, err := m.reports.ProfitLoss(ctx, y.ID, period)
			if err != nil {
				return reportLoadedMsg{err: err}
			}

			msg.columns, msg.rows = profitLossTable(pl, scale)
		}

		return msg
	}
}

func trialBalanceTable(tb *report.TrialBalance, scale int32) ([]table.Column, []table.Row) {
	columns := []table.Column{
		{Title: "Code", Width: 8},
		{Title: "Title", Width: 30},
		{Title: "Debit", Width: 16},
		{Title: "Credit", Width: 16},
		{Title: "Balance Dr", Width: 16},
		{Title: "Balance Cr", Width: 16},
	}

	rows := make([]table.Row, 0, len(tb.Rows)+1)
	add := func(code, title string, r report.TrialRow) {
		rows = append(rows, table.Row{
			code, title,
			money.Format(r.DebitTotal, scale),
			money.Format(r.CreditTotal, scale),
			money.Format(r.BalanceDebit, scale),
			money.Format(r.BalanceCredit, scale),
		})
	}

	for _, r := range tb.Rows {
		add(r.Code, r.Title, r)
	}

	add("", "TOTAL", tb.Total)

	return columns, rows
}

func statementColumns() []table.Column {
	return []table.Column{
		{Title: "Code", Width: 8},
		{Title: "Title", Width: 36},
		{Title: "Amount", Width: 18},
	}
}

func section(rows []table.Row, title string, lines []report.Line, total int64, scale int32) []table.Row {
	rows = append(rows, table.Row{"", title, ""})
	for _, l := range lines {
		rows = append(rows, table.Row{l.Code, "  " + l.Title, money.Format(l.Amount, scale)})
	}

	return append(rows, table.Row{"", "Total " + title, money.Format(total, scale)})
}

func balanceSheetTable(bs *report.BalanceSheet, scale int32) ([]table.Column, []table.Row) {
	var rows []table.Row

	rows = section(rows, "Assets", bs.Assets, bs.TotalAssets, scale)
	rows = section(rows, "Liabilities", bs.Liabilities, bs.TotalLiabilities, scale)

	equity := append(bs.Equity[:len(bs.Equity):len(bs.Equity)], report.Line{Title: "Current period result", Amount: bs.CurrentResult})
	rows = section(rows, "Equity", equity, bs.TotalEquity, scale)

	return statementColumns(), rows
}

func balanceSheetSummary(bs *report.BalanceSheet, scale int32) string {
	check := activeStyle.Render("balanced")
	if !bs.Balanced {
		check = errorStyle.Render("NOT balanced")
	}

	return fmt.Sprintf("Assets %s = Liabilities %s + Equity %s (%s)",
		money.Format(bs.TotalAssets, scale),
		money.Format(bs.TotalLiabilities, scale),
		money.Format(bs.TotalEquity, scale),
		check,
	)
}

func profitLossTable(pl *report.ProfitLoss, scale int32) ([]table.Column, []table.Row) {
	var rows []table.Row

	rows = section(rows, "Income", pl.Income, pl.TotalIncome, scale)
	rows = section(rows, "Expense", pl.Expense, pl.TotalExpense, scale)
	rows = append(rows, table.Row{"", "NET", money.Format(pl.Net, scale)})

	return statementColumns(), rows
}
