package view

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/daftar/internal/fiscal"
)

type YearService interface {
	List(ctx context.Context) ([]*fiscal.Year, error)
	CurrentYear(ctx context.Context) (*fiscal.Year, error)
	CreateYear(ctx context.Context, params fiscal.CreateParams) (*fiscal.Year, error)
	Activate(ctx context.Context, id int64) (*fiscal.Year, error)
}

type yearsState int

const (
	yearsStateBrowse yearsState = iota
	yearsStateActivate
	yearsStateCreate
)

// YearsModel lists fiscal years and switches the active one.
type YearsModel struct {
	CommonModel
	years YearService

	state yearsState
	table table.Model
	list  []*fiscal.Year
	form  *huh.Form

	loading bool
	err     error
	status  string

	// Bound by pointer so the values survive model copies.
	input *yearInput
}

type yearInput struct {
	confirm bool
	name    string
	start   string
	end     string
}

func NewYearsModel(years YearService) YearsModel {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Name", Width: 20},
		{Title: "Start", Width: 12},
		{Title: "End", Width: 12},
		{Title: "Status", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

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

	return YearsModel{years: years, table: t, loading: true}
}

func (m YearsModel) Title() string { return "Fiscal Years" }

func (m YearsModel) ShortHelp() string {
	if m.state != yearsStateBrowse {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | a: activate | n: new year | r: refresh"
}

func (m YearsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m YearsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case yearsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.list = msg.years
		m.table.SetRows(yearRows(msg.years))

		return m, nil

	case yearSavedMsg:
		m.state = yearsStateBrowse
		m.form = nil
		m.table.Focus()

		m.status = msg.status
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		}

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.table.SetHeight(max(msg.Height-10, 5))

		return m, nil
	}

	if m.state != yearsStateBrowse {
		return m.updateForm(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "a":
			return m.enterActivate()
		case "n":
			return m.enterCreate()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m YearsModel) selected() *fiscal.Year {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.list) {
		return nil
	}

	return m.list[idx]
}

func (m YearsModel) enterActivate() (tea.Model, tea.Cmd) {
	y := m.selected()
	if y == nil || y.IsActive {
		return m, nil
	}

	m.input = &yearInput{}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Make %s the active fiscal year?", y.Name)).
				Description("New documents default to the active year.").
				Value(&m.input.confirm),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = yearsStateActivate
	m.table.Blur()

	return m, m.form.Init()
}

func (m YearsModel) enterCreate() (tea.Model, tea.Cmd) {
	m.input = &yearInput{}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.input.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("start").
				Title("Start date").
				Placeholder("YYYY-MM-DD").
				Value(&m.input.start).
				Validate(validDate),

			huh.NewInput().
				Key("end").
				Title("End date").
				Placeholder("YYYY-MM-DD").
				Value(&m.input.end).
				Validate(validDate),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = yearsStateCreate
	m.table.Blur()

	return m, m.form.Init()
}

func validDate(s string) error {
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}

	return nil
}

func (m YearsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		m.state = yearsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == yearsStateCreate {
		return m, m.createCmd()
	}

	if !m.input.confirm {
		m.state = yearsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	return m, m.activateCmd(m.selected())
}

func (m YearsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading fiscal years...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n(Esc to back)")
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(m.Title()), tableView)

	if m.state != yearsStateBrowse && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = faintStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content + "\n" + faintStyle.Render(m.ShortHelp()))
}

func yearRows(years []*fiscal.Year) []table.Row {
	rows := make([]table.Row, 0, len(years))

	for _, y := range years {
		status := "open"
		switch {
		case y.Closed:
			status = "closed"
		case y.IsActive:
			status = "active"
		}

		rows = append(rows, table.Row{
			strconv.FormatInt(y.ID, 10),
			y.Name,
			FormatDate(y.StartDate),
			FormatDate(y.EndDate),
			status,
		})
	}

	return rows
}

// Messages

type yearsLoadedMsg struct {
	years []*fiscal.Year
	err   error
}

func (m YearsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		years, err := m.years.List(ctx)

		return yearsLoadedMsg{years: years, err: err}
	}
}

type yearSavedMsg struct {
	status string
	err    error
}

func (m YearsModel) activateCmd(y *fiscal.Year) tea.Cmd {
	if y == nil {
		return nil
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if _, err := m.years.Activate(ctx, y.ID); err != nil {
			return yearSavedMsg{err: err}
		}

		return yearSavedMsg{status: fmt.Sprintf("%s is now active.", y.Name)}
	}
}

func (m YearsModel) createCmd() tea.Cmd {
	name := m.input.name
	start, _ := time.Parse(time.DateOnly, m.input.start)
	end, _ := time.Parse(time.DateOnly, m.input.end)

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		y, err := m.years.CreateYear(ctx, fiscal.CreateParams{Name: name, StartDate: start, EndDate: end})
		if err != nil {
			return yearSavedMsg{err: err}
		}

		return yearSavedMsg{status: fmt.Sprintf("Fiscal year %s created.", y.Name)}
	}
}
