// Package currency converts between the ₹-prefixed price strings used on the
// wire and exact decimal amounts used everywhere else. The symbol never
// leaves this package's two functions.
package currency

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Symbol is the currency prefix used by the ordering pages.
const Symbol = "₹"

// ErrInvalidAmount is returned when a price string cannot be parsed.
var ErrInvalidAmount = errors.New("invalid amount")

// Parse converts a price string like "₹120.50" to a decimal amount.
// A missing symbol and surrounding whitespace are tolerated.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, Symbol)
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// Format renders an amount as a ₹-prefixed string with two decimal places.
func Format(d decimal.Decimal) string {
	return Symbol + d.StringFixed(2)
}
