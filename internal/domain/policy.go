package domain

import (
	"github.com/shopspring/decimal"
)

// PolicyYear is one row of a policy illustration: what is paid in and what
// the policy is worth in a given policy year.
type PolicyYear struct {
	Year                            int             `yaml:"year" json:"year"`
	GuaranteedRequiredAnnualPremium decimal.Decimal `yaml:"guaranteed_required_annual_premium" json:"guaranteed_required_annual_premium"`
	TotalDeposit                    decimal.Decimal `yaml:"total_deposit" json:"total_deposit"`
	CumulativeCashValue             decimal.Decimal `yaml:"cumulative_cash_value" json:"cumulative_cash_value"`
	TotalCashValue                  decimal.Decimal `yaml:"total_cash_value" json:"total_cash_value"`
	TotalDeathBenefit               decimal.Decimal `yaml:"total_death_benefit" json:"total_death_benefit"`
	TotalCashPremiums               decimal.Decimal `yaml:"total_cash_premiums" json:"total_cash_premiums"`
}

// Cost is the premium plus deposit owed for the year.
func (p PolicyYear) Cost() decimal.Decimal {
	return p.GuaranteedRequiredAnnualPremium.Add(p.TotalDeposit)
}

// Policy is a single illustrated policy. Several may be combined into one
// schedule before planning.
type Policy struct {
	Name     string       `yaml:"name" json:"name"`
	Schedule []PolicyYear `yaml:"schedule" json:"schedule"`
}
