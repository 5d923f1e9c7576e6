package money_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/daftar/internal/money"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		scale  int32
		want   string
	}{
		{name: "Zero", amount: 0, scale: 0, want: "0"},
		{name: "Grouped", amount: 1_100_000, scale: 0, want: "1,100,000"},
		{name: "Negative", amount: -25_000, scale: 0, want: "-25,000"},
		{name: "Cents", amount: 123_456, scale: 2, want: "1,234.56"},
		{name: "NegativeCents", amount: -50, scale: 2, want: "-0.50"},
		{name: "PaddedFraction", amount: 1_005, scale: 2, want: "10.05"},
		{name: "Large", amount: math.MaxInt64, scale: 0, want: "9,223,372,036,854,775,807"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.Format(tt.amount, tt.scale))
		})
	}
}
