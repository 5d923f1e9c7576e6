package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrJamesThe3rd/daftar/internal/fiscal"
	"github.com/MrJamesThe3rd/daftar/internal/report"
)

// Span is a predefined or custom reporting period within a fiscal year.
type Span int

const (
	SpanWholeYear Span = iota
	SpanThisMonth
	SpanLastMonth
	SpanCustom
)

func (s Span) String() string {
	switch s {
	case SpanWholeYear:
		return "Whole Year"
	case SpanThisMonth:
		return "This Month"
	case SpanLastMonth:
		return "Last Month"
	case SpanCustom:
		return "Custom Range"
	}

	return "Unknown"
}

// spanPeriod resolves a predefined span against now, clipped to the year.
// The whole year is the open period.
func spanPeriod(s Span, now time.Time, y *fiscal.Year) report.Period {
	var start time.Time

	switch s {
	case SpanThisMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	case SpanLastMonth:
		start = time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, time.UTC)
	default:
		return report.Period{}
	}

	end := start.AddDate(0, 1, -1)

	if y != nil {
		if start.Before(y.StartDate) {
			start = y.StartDate
		}

		if end.After(y.EndDate) {
			end = y.EndDate
		}
	}

	return report.Period{From: &start, To: &end}
}

func describePeriod(p report.Period) string {
	if p.From == nil && p.To == nil {
		return "whole year"
	}

	return fmt.Sprintf("%s to %s", formatOptionalDate(p.From, "start"), formatOptionalDate(p.To, "end"))
}

// PeriodSelectedMsg is emitted when the user has picked a period.
type PeriodSelectedMsg struct {
	Period report.Period
}

type pickerState int

const (
	pickerStateSelect pickerState = iota
	pickerStateCustom
)

// PeriodPicker selects the reporting period.
type PeriodPicker struct {
	state    pickerState
	selected Span
	year     *fiscal.Year
	now      func() time.Time

	fromInput  textinput.Model
	toInput    textinput.Model
	focusIndex int

	err error
}

func NewPeriodPicker(year *fiscal.Year) PeriodPicker {
	fi := textinput.New()
	fi.Placeholder = "YYYY-MM-DD"
	fi.CharLimit = 10
	fi.Width = 12
	fi.Prompt = "From: "

	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = 10
	ti.Width = 12
	ti.Prompt = "To:   "

	return PeriodPicker{
		year:      year,
		now:       time.Now,
		fromInput: fi,
		toInput:   ti,
	}
}

func (m PeriodPicker) Update(msg tea.Msg) (PeriodPicker, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if m.state == pickerStateSelect {
			return m.updateSelect(key)
		}

		return m.updateCustom(key)
	}

	if m.state == pickerStateCustom {
		return m.updateInputs(msg)
	}

	return m, nil
}

func (m PeriodPicker) updateSelect(msg tea.KeyMsg) (PeriodPicker, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.selected > SpanWholeYear {
			m.selected--
		}
	case tea.KeyDown:
		if m.selected < SpanCustom {
			m.selected++
		}
	case tea.KeyEnter:
		if m.selected == SpanCustom {
			m.state = pickerStateCustom
			m.focusIndex = 0
			m.fromInput.Focus()

			return m, textinput.Blink
		}

		p := spanPeriod(m.selected, m.now(), m.year)

		return m, func() tea.Msg { return PeriodSelectedMsg{Period: p} }
	}

	return m, nil
}

func (m PeriodPicker) updateCustom(msg tea.KeyMsg) (PeriodPicker, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		m.focusIndex = (m.focusIndex + 1) % 2
		m.fromInput.Blur()
		m.toInput.Blur()

		if m.focusIndex == 0 {
			m.fromInput.Focus()
		} else {
			m.toInput.Focus()
		}

		return m, textinput.Blink

	case "enter":
		p, err := parsePeriod(m.fromInput.Value(), m.toInput.Value())
		if err != nil {
			m.err = err
			return m, nil
		}

		m.err = nil

		return m, func() tea.Msg { return PeriodSelectedMsg{Period: p} }

	case "esc":
		m.state = pickerStateSelect
		m.err = nil

		return m, nil
	}

	return m.updateInputs(msg)
}

// parsePeriod reads the custom range; either end may be left blank.
func parsePeriod(from, to string) (report.Period, error) {
	var p report.Period

	if from != "" {
		t, err := time.Parse(time.DateOnly, from)
		if err != nil {
			return p, fmt.Errorf("invalid from date (YYYY-MM-DD)")
		}

		p.From = &t
	}

	if to != "" {
		t, err := time.Parse(time.DateOnly, to)
		if err != nil {
			return p, fmt.Errorf("invalid to date (YYYY-MM-DD)")
		}

		p.To = &t
	}

	if p.From != nil && p.To != nil && p.To.Before(*p.From) {
		return p, fmt.Errorf("to date is before from date")
	}

	return p, nil
}

func (m PeriodPicker) updateInputs(msg tea.Msg) (PeriodPicker, tea.Cmd) {
	var from, to tea.Cmd

	m.fromInput, from = m.fromInput.Update(msg)
	m.toInput, to = m.toInput.Update(msg)

	return m, tea.Batch(from, to)
}

func (m PeriodPicker) View() string {
	errStr := ""
	if m.err != nil {
		errStr = errorStyle.Render(fmt.Sprintf("\n\nError: %v", m.err))
	}

	if m.state == pickerStateCustom {
		return fmt.Sprintf(
			"Enter Custom Range:\n\n%s\n%s\n\n(Enter to confirm, Tab to switch, Esc to back)%s",
			m.fromInput.View(),
			m.toInput.View(),
			errStr,
		)
	}

	s := "Select Period:\n\n"
	for i := SpanWholeYear; i <= SpanCustom; i++ {
		cursor := " "
		if m.selected == i {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %s\n", cursor, i)
	}

	s += "\n(Enter to select, Esc to back)"

	return s + errStr
}

// IsSelecting reports whether the picker shows the span list rather than the custom inputs.
func (m PeriodPicker) IsSelecting() bool {
	return m.state == pickerStateSelect
}
