package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Assumptions are the product constants the planner runs with.
// Rates are annual percentages; factors and equity are fractions.
type Assumptions struct {
	IncomeGrowthRate          decimal.Decimal `yaml:"income_growth_rate" json:"income_growth_rate"`
	InvestmentGrowthRate      decimal.Decimal `yaml:"investment_growth_rate" json:"investment_growth_rate"`
	PolicyLoanInterestRate    decimal.Decimal `yaml:"policy_loan_interest_rate" json:"policy_loan_interest_rate"`
	PolicyLoanFactorYearOne   decimal.Decimal `yaml:"policy_loan_factor_year_one" json:"policy_loan_factor_year_one"`
	PolicyLoanFactorCashValue decimal.Decimal `yaml:"policy_loan_factor_cash_value" json:"policy_loan_factor_cash_value"`
	PolicyLoanFactorDeposit   decimal.Decimal `yaml:"policy_loan_factor_deposit" json:"policy_loan_factor_deposit"`
	MinimumHelocEquity        decimal.Decimal `yaml:"minimum_heloc_equity" json:"minimum_heloc_equity"`
	AsOf                      Date            `yaml:"as_of" json:"as_of"`
}

// DefaultAssumptions returns the documented defaults. AsOf is left zero;
// the engine substitutes its clock.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		IncomeGrowthRate:          decimal.NewFromInt(3),
		InvestmentGrowthRate:      decimal.NewFromInt(4),
		PolicyLoanInterestRate:    decimal.NewFromInt(5),
		PolicyLoanFactorYearOne:   decimal.RequireFromString("0.90"),
		PolicyLoanFactorCashValue: decimal.RequireFromString("0.90"),
		PolicyLoanFactorDeposit:   decimal.RequireFromString("0.90"),
		MinimumHelocEquity:        decimal.RequireFromString("0.20"),
	}
}

// AssumptionOverrides is the optional per-case block. Nil fields keep the
// base value.
type AssumptionOverrides struct {
	IncomeGrowthRate          *decimal.Decimal `yaml:"income_growth_rate,omitempty" json:"income_growth_rate,omitempty"`
	InvestmentGrowthRate      *decimal.Decimal `yaml:"investment_growth_rate,omitempty" json:"investment_growth_rate,omitempty"`
	PolicyLoanInterestRate    *decimal.Decimal `yaml:"policy_loan_interest_rate,omitempty" json:"policy_loan_interest_rate,omitempty"`
	PolicyLoanFactorYearOne   *decimal.Decimal `yaml:"policy_loan_factor_year_one,omitempty" json:"policy_loan_factor_year_one,omitempty"`
	PolicyLoanFactorCashValue *decimal.Decimal `yaml:"policy_loan_factor_cash_value,omitempty" json:"policy_loan_factor_cash_value,omitempty"`
	PolicyLoanFactorDeposit   *decimal.Decimal `yaml:"policy_loan_factor_deposit,omitempty" json:"policy_loan_factor_deposit,omitempty"`
	MinimumHelocEquity        *decimal.Decimal `yaml:"minimum_heloc_equity,omitempty" json:"minimum_heloc_equity,omitempty"`
	AsOf                      *Date            `yaml:"as_of,omitempty" json:"as_of,omitempty"`
}

// Apply layers overrides on top of a.
func (a Assumptions) Apply(o *AssumptionOverrides) Assumptions {
	if o == nil {
		return a
	}
	set := func(dst *decimal.Decimal, src *decimal.Decimal) {
		if src != nil {
			*dst = *src
		}
	}
	set(&a.IncomeGrowthRate, o.IncomeGrowthRate)
	set(&a.InvestmentGrowthRate, o.InvestmentGrowthRate)
	set(&a.PolicyLoanInterestRate, o.PolicyLoanInterestRate)
	set(&a.PolicyLoanFactorYearOne, o.PolicyLoanFactorYearOne)
	set(&a.PolicyLoanFactorCashValue, o.PolicyLoanFactorCashValue)
	set(&a.PolicyLoanFactorDeposit, o.PolicyLoanFactorDeposit)
	set(&a.MinimumHelocEquity, o.MinimumHelocEquity)
	if o.AsOf != nil {
		a.AsOf = *o.AsOf
	}
	return a
}

// AsOfOr returns the configured as-of date, or now when none was set.
func (a Assumptions) AsOfOr(now time.Time) time.Time {
	if a.AsOf.IsZero() {
		return now
	}
	return a.AsOf.Time
}
