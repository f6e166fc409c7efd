package commands

import (
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

// formatAmount renders an amount with the currency symbol and two
// fractional digits, e.g. "$1234.50" or "-$700.00".
func formatAmount(symbol string, d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + symbol + d.Neg().StringFixed(2)
	}
	return symbol + d.StringFixed(2)
}

// signedAmount colors a net figure: green when positive, red when
// negative, plain when zero.
func signedAmount(symbol string, d decimal.Decimal) string {
	s := formatAmount(symbol, d)
	switch {
	case d.IsNegative():
		return color.RedString(s)
	case d.IsPositive():
		return color.GreenString(s)
	}
	return s
}
