package journal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/daftar/internal/fault"
	"github.com/MrJamesThe3rd/daftar/internal/journal"
)

func TestValidateLines(t *testing.T) {
	tests := []struct {
		name    string
		lines   []journal.Line
		wantErr error
	}{
		{
			name: "Balanced",
			lines: []journal.Line{
				{AccountID: 1, Debit: 700},
				{AccountID: 2, Credit: 500},
				{AccountID: 3, Credit: 200},
			},
		},
		{
			name:    "SingleLine",
			lines:   []journal.Line{{AccountID: 1, Debit: 100}},
			wantErr: journal.ErrInsufficientLines,
		},
		{
			name:    "NoLines",
			wantErr: journal.ErrInsufficientLines,
		},
		{
			name:    "Unbalanced",
			lines:   []journal.Line{{AccountID: 1, Debit: 100}, {AccountID: 2, Credit: 99}},
			wantErr: fault.Balance,
		},
		{
			name:    "BothSides",
			lines:   []journal.Line{{AccountID: 1, Debit: 100, Credit: 100}, {AccountID: 2, Credit: 0, Debit: 0}},
			wantErr: journal.ErrInvalidLine,
		},
		{
			name:    "ZeroLine",
			lines:   []journal.Line{{AccountID: 1, Debit: 100}, {AccountID: 2, Credit: 100}, {AccountID: 3}},
			wantErr: journal.ErrInvalidLine,
		},
		{
			name:    "Negative",
			lines:   []journal.Line{{AccountID: 1, Debit: -100}, {AccountID: 2, Credit: -100}},
			wantErr: journal.ErrInvalidLine,
		},
		{
			name:    "NoAccount",
			lines:   []journal.Line{{Debit: 100}, {AccountID: 2, Credit: 100}},
			wantErr: journal.ErrInvalidLine,
		},
		{
			name: "Overflow",
			lines: []journal.Line{
				{AccountID: 1, Debit: math.MaxInt64},
				{AccountID: 1, Debit: 1},
				{AccountID: 2, Credit: 1},
			},
			wantErr: journal.ErrInvalidLine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := journal.ValidateLines(tt.lines)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
