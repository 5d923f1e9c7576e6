package view

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/daftar/internal/fiscal"
	"github.com/MrJamesThe3rd/daftar/internal/report"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var year1403 = &fiscal.Year{ID: 1, Name: "1403", StartDate: day(2024, 3, 20), EndDate: day(2025, 3, 20)}

func TestSpanPeriod(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		now      time.Time
		wantFrom *time.Time
		wantTo   *time.Time
	}{
		{name: "WholeYear", span: SpanWholeYear, now: day(2024, 8, 15)},
		{name: "ThisMonth", span: SpanThisMonth, now: day(2024, 8, 15), wantFrom: new(day(2024, 8, 1)), wantTo: new(day(2024, 8, 31))},
		{name: "LastMonthAcrossYearEnd", span: SpanLastMonth, now: day(2025, 1, 10), wantFrom: new(day(2024, 12, 1)), wantTo: new(day(2024, 12, 31))},
		{name: "ClippedToYearStart", span: SpanThisMonth, now: day(2024, 3, 25), wantFrom: new(day(2024, 3, 20)), wantTo: new(day(2024, 3, 31))},
		{name: "ClippedToYearEnd", span: SpanThisMonth, now: day(2025, 3, 5), wantFrom: new(day(2025, 3, 1)), wantTo: new(day(2025, 3, 20))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := spanPeriod(tt.span, tt.now, year1403)

			assert.Equal(t, tt.wantFrom, got.From)
			assert.Equal(t, tt.wantTo, got.To)
		})
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		want    report.Period
		wantErr bool
	}{
		{name: "Blank", want: report.Period{}},
		{name: "OnlyFrom", from: "2024-04-01", want: report.Period{From: new(day(2024, 4, 1))}},
		{name: "Both", from: "2024-04-01", to: "2024-06-30", want: report.Period{From: new(day(2024, 4, 1)), To: new(day(2024, 6, 30))}},
		{name: "Reversed", from: "2024-06-30", to: "2024-04-01", wantErr: true},
		{name: "BadLayout", from: "01/04/2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePeriod(tt.from, tt.to)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPeriodPicker_SelectThisMonth(t *testing.T) {
	p := NewPeriodPicker(year1403)
	p.now = func() time.Time { return day(2024, 8, 15) }

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(PeriodSelectedMsg)
	require.True(t, ok)
	assert.Equal(t, new(day(2024, 8, 1)), msg.Period.From)
	assert.Equal(t, new(day(2024, 8, 31)), msg.Period.To)
}

func TestPeriodPicker_CustomEntersInputs(t *testing.T) {
	p := NewPeriodPicker(year1403)

	for range 3 {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	}

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, p.IsSelecting())

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, p.IsSelecting())
}
