// Package policy prepares policy illustrations for planning.
package policy

import (
	"github.com/ffplan/freedom-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// Combine sums several policy illustrations into one schedule, year by
// year. Only the years every policy covers are kept, and the result is
// numbered from 1 and rounded to cents.
func Combine(policies []domain.Policy) []domain.PolicyYear {
	if len(policies) == 0 {
		return nil
	}
	years := len(policies[0].Schedule)
	for _, p := range policies[1:] {
		if len(p.Schedule) < years {
			years = len(p.Schedule)
		}
	}

	combined := make([]domain.PolicyYear, years)
	for i := range combined {
		row := domain.PolicyYear{Year: i + 1}
		for _, p := range policies {
			src := p.Schedule[i]
			row.GuaranteedRequiredAnnualPremium = row.GuaranteedRequiredAnnualPremium.Add(src.GuaranteedRequiredAnnualPremium)
			row.TotalDeposit = row.TotalDeposit.Add(src.TotalDeposit)
			row.CumulativeCashValue = row.CumulativeCashValue.Add(src.CumulativeCashValue)
			row.TotalCashValue = row.TotalCashValue.Add(src.TotalCashValue)
			row.TotalDeathBenefit = row.TotalDeathBenefit.Add(src.TotalDeathBenefit)
			row.TotalCashPremiums = row.TotalCashPremiums.Add(src.TotalCashPremiums)
		}
		for _, v := range []*decimal.Decimal{
			&row.GuaranteedRequiredAnnualPremium, &row.TotalDeposit, &row.CumulativeCashValue,
			&row.TotalCashValue, &row.TotalDeathBenefit, &row.TotalCashPremiums,
		} {
			*v = v.Round(2)
		}
		combined[i] = row
	}
	return combined
}
