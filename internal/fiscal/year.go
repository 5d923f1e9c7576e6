package fiscal

import (
	"time"

	"github.com/MrJamesThe3rd/daftar/internal/fault"
)

var (
	ErrInvalidPeriod     = fault.New(fault.KindValidation, "invalid_period", "invalid fiscal period")
	ErrOverlappingPeriod = fault.New(fault.KindStateConflict, "overlapping_period", "fiscal year overlaps an existing year")
	ErrUnknownFiscalYear = fault.New(fault.KindReferential, "unknown_fiscal_year", "unknown fiscal year")
	ErrNoActiveYear      = fault.New(fault.KindNotFound, "no_active_year", "no active fiscal year")
	ErrNoYearForDate     = fault.New(fault.KindNotFound, "no_year_for_date", "no fiscal year covers the date")
	ErrYearClosed        = fault.New(fault.KindStateConflict, "year_closed", "fiscal year is closed")
	ErrActiveYear        = fault.New(fault.KindStateConflict, "active_year", "the active fiscal year cannot be closed")
	ErrDateOutOfPeriod   = fault.New(fault.KindValidation, "date_out_of_period", "date is outside the fiscal year")
)

// Year is a fiscal period. Every posting and report is scoped to exactly one.
type Year struct {
	ID        int64
	Name      string
	StartDate time.Time
	EndDate   time.Time
	IsActive  bool
	Closed    bool
	CreatedAt time.Time
}

// Contains reports whether d falls within the year, both ends inclusive.
func (y *Year) Contains(d time.Time) bool {
	d = Day(d)
	return !d.Before(y.StartDate) && !d.After(y.EndDate)
}

// Overlaps reports whether [start, end] intersects the year.
func (y *Year) Overlaps(start, end time.Time) bool {
	return !Day(end).Before(y.StartDate) && !Day(start).After(y.EndDate)
}

// Day truncates t to a UTC calendar date. All accounting dates are compared as days.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
