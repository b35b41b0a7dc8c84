package calculation

import (
	"github.com/ffplan/freedom-planner/internal/domain"
	"github.com/ffplan/freedom-planner/pkg/money"
	"github.com/shopspring/decimal"
)

// PolicyLoanFactors are the product multipliers that bound how much may be
// borrowed against a policy.
type PolicyLoanFactors struct {
	YearOne   decimal.Decimal // share of the first year's deposit
	CashValue decimal.Decimal // share of the prior year's cash value
	Deposit   decimal.Decimal // share of the prior year's deposit
}

// FactorsFrom extracts the policy loan factors from assumptions.
func FactorsFrom(a domain.Assumptions) PolicyLoanFactors {
	return PolicyLoanFactors{
		YearOne:   a.PolicyLoanFactorYearOne,
		CashValue: a.PolicyLoanFactorCashValue,
		Deposit:   a.PolicyLoanFactorDeposit,
	}
}

// Available returns the policy loan that may be taken in a one-based plan
// year. Year one lends against the first deposit; later years lend against
// the prior year's cash value and deposit less what is already borrowed.
// It is never negative.
func (f PolicyLoanFactors) Available(year int, schedule []domain.PolicyYear, startingBalance decimal.Decimal) decimal.Decimal {
	if year < 1 || year > len(schedule) {
		return zero
	}
	if year == 1 {
		return money.NonNegative(f.YearOne.Mul(schedule[0].TotalDeposit))
	}
	prior := schedule[year-2]
	gross := f.CashValue.Mul(prior.TotalCashValue).Add(f.Deposit.Mul(prior.TotalDeposit))
	return money.NonNegative(gross.Sub(startingBalance))
}

// accruePolicyLoanInterest compounds one month of interest onto the
// balance and returns the new balance and the interest charged.
func accruePolicyLoanInterest(balance, annualRate decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if !balance.IsPositive() {
		return balance, zero
	}
	interest := money.Cents(balance.Mul(money.PercentToMonthlyRate(money.NonNegative(annualRate))))
	return balance.Add(interest), interest
}
