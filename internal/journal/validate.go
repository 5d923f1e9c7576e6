package journal

import (
	"fmt"
	"math"
)

// ValidateLines checks the shape of a postable entry: at least two lines, one
// positive side per line, and equal totals.
func ValidateLines(lines []Line) error {
	if len(lines) < 2 {
		return fmt.Errorf("%w: got %d", ErrInsufficientLines, len(lines))
	}

	var debit, credit int64

	for i, l := range lines {
		if err := validateLine(i, l); err != nil {
			return err
		}

		if debit > math.MaxInt64-l.Debit || credit > math.MaxInt64-l.Credit {
			return fmt.Errorf("%w: line %d overflows the entry total", ErrInvalidLine, i+1)
		}

		debit += l.Debit
		credit += l.Credit
	}

	if debit != credit {
		return fmt.Errorf("%w: debit %d, credit %d", ErrUnbalancedEntry, debit, credit)
	}

	return nil
}

// validateDraftLines checks each line but tolerates an unbalanced or short draft.
func validateDraftLines(lines []Line) error {
	for i, l := range lines {
		if err := validateLine(i, l); err != nil {
			return err
		}
	}

	return nil
}

func validateLine(i int, l Line) error {
	switch {
	case l.AccountID <= 0:
		return fmt.Errorf("%w: line %d has no account", ErrInvalidLine, i+1)
	case l.Debit < 0 || l.Credit < 0:
		return fmt.Errorf("%w: line %d is negative", ErrInvalidLine, i+1)
	case (l.Debit > 0) == (l.Credit > 0):
		return fmt.Errorf("%w: line %d has debit %d and credit %d", ErrInvalidLine, i+1, l.Debit, l.Credit)
	}

	return nil
}

// swapSides returns lines with debits and credits exchanged.
func swapSides(lines []Line) []Line {
	out := make([]Line, len(lines))
	for i, l := range lines {
		out[i] = Line{
			AccountID:   l.AccountID,
			Debit:       l.Credit,
			Credit:      l.Debit,
			Description: l.Description,
			PersonID:    l.PersonID,
		}
	}

	return out
}
