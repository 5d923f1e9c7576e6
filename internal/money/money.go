// Package money renders minor-unit amounts for people.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Format renders amount with thousands grouping and scale digits after the point.
func Format(amount int64, scale int32) string {
	sign := ""
	d := decimal.New(amount, -scale)

	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	whole := d.Truncate(0)
	out := sign + printer.Sprintf("%d", whole.IntPart())

	if scale <= 0 {
		return out
	}

	// "0.50" -> ".50"
	return out + d.Sub(whole).StringFixed(scale)[1:]
}
