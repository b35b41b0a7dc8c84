package output

import (
	"strconv"

	"github.com/ffplan/freedom-planner/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as currency with 2 decimals.
func FormatCurrency(amount decimal.Decimal) string { return money.Format(amount) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatYear renders a milestone year, or "never" when it was not reached.
func FormatYear(year int) string {
	if year == NotReached {
		return "never"
	}
	return "year " + strconv.Itoa(year)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
