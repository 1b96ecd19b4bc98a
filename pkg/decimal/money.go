package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to cents, half away from zero
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// String returns the string representation with proper formatting
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Grouped returns the amount with two decimals and English thousands
// separators, e.g. 1234567.891 -> "1,234,567.89".
//
// Rounding to cents happens on the decimal first; the printer only sees a
// two-place value, so its own rounding mode never applies.
func (m Money) Grouped() string {
	cents := m.Round().InexactFloat64()
	p := message.NewPrinter(language.English)
	return p.Sprint(number.Decimal(cents, number.Scale(2)))
}

// FormatGrouped formats the amount as "$1,234.56"; negatives render as "$-1,234.56".
func (m Money) FormatGrouped() string {
	return "$" + m.Grouped()
}
