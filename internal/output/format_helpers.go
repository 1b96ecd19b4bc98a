package output

import (
	"strconv"

	money "github.com/rpgo/project-evaluator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD with thousands separators and 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).FormatGrouped()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats an input discount rate as entered, e.g. "5%" or "7.5%".
func FormatRate(rate decimal.Decimal) string { return rate.String() + "%" }

func intToString(i int) string { return strconv.Itoa(i) }
