package view

import (
	"time"
)

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

func formatOptionalDate(t *time.Time, fallback string) string {
	if t == nil {
		return fallback
	}

	return FormatDate(*t)
}
