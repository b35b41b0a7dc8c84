package money

import (
	"github.com/shopspring/decimal"
)

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// powPrecision bounds the digits kept while raising to an integer power so
// long terms (360+ months) do not grow the mantissa without limit.
const powPrecision = 24

// NonNegative clamps negative values to zero.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// OrDefault returns *p when set, otherwise def.
func OrDefault(p *decimal.Decimal, def decimal.Decimal) decimal.Decimal {
	if p == nil {
		return def
	}
	return *p
}

// Ptr returns a pointer to d, handy for optional fields in literals.
func Ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

// Cents rounds to two decimal places.
func Cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Annual converts a monthly amount to annual
func Annual(d decimal.Decimal) decimal.Decimal {
	return d.Mul(twelve)
}

// Monthly converts an annual amount to monthly
func Monthly(d decimal.Decimal) decimal.Decimal {
	return d.Div(twelve)
}

// PercentToMonthlyRate turns an annual percentage (6 for 6%) into the
// monthly fraction used for interest accrual.
func PercentToMonthlyRate(annualPercent decimal.Decimal) decimal.Decimal {
	return annualPercent.Div(hundred).Div(twelve)
}

// GrowthFactor returns 1 + pct/100.
func GrowthFactor(pct decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(pct.Div(hundred))
}

// PowInt raises base to a non-negative integer power by squaring.
func PowInt(base decimal.Decimal, n int) decimal.Decimal {
	result := decimal.NewFromInt(1)
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base).Truncate(powPrecision)
		}
		base = base.Mul(base).Truncate(powPrecision)
		n >>= 1
	}
	return result
}

// Min returns the minimum of two amounts
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Format renders an amount as currency with two decimals.
func Format(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
