package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MrJamesThe3rd/daftar/internal/chart"
	"github.com/MrJamesThe3rd/daftar/internal/fiscal"
	"github.com/MrJamesThe3rd/daftar/internal/money"
	"github.com/MrJamesThe3rd/daftar/internal/report"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

func newTable(headers ...string) *table.Table {
	cell := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cell
		})
}

func renderYears(years []*fiscal.Year) string {
	t := newTable("ID", "NAME", "START", "END", "STATUS")

	for _, y := range years {
		status := "open"
		switch {
		case y.Closed:
			status = "closed"
		case y.IsActive:
			status = "active"
		}

		t.Row(strconv.FormatInt(y.ID, 10), y.Name, y.StartDate.Format(time.DateOnly), y.EndDate.Format(time.DateOnly), status)
	}

	return t.String()
}

func renderAccounts(accounts []*chart.Account) string {
	t := newTable("ID", "CODE", "TITLE", "TYPE", "LEAF")

	for _, a := range accounts {
		leaf := ""
		if a.IsLeaf {
			leaf = "yes"
		}

		// Indent titles by depth so the tree reads top-down.
		title := strings.Repeat("  ", max(a.Level-1, 0)) + a.Title
		t.Row(strconv.FormatInt(a.ID, 10), a.Code, title, string(a.Type), leaf)
	}

	return t.String()
}

func renderTrialBalance(tb *report.TrialBalance, scale int32) string {
	t := newTable("CODE", "TITLE", "DEBIT", "CREDIT", "BALANCE DR", "BALANCE CR")

	row := func(code, title string, r report.TrialRow) {
		t.Row(code, title,
			money.Format(r.DebitTotal, scale),
			money.Format(r.CreditTotal, scale),
			money.Format(r.BalanceDebit, scale),
			money.Format(r.BalanceCredit, scale),
		)
	}

	for _, r := range tb.Rows {
		row(r.Code, r.Title, r)
	}

	row("", "Total", tb.Total)

	return t.String()
}
