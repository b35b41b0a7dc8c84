package domain

import (
	"github.com/shopspring/decimal"
)

// Expenses holds the household's monthly living expenses by category.
// PolicyPremium is owned by the planner: it carries the premium share
// funded from the surplus budget in the current year.
type Expenses struct {
	Food                           decimal.Decimal `yaml:"food" json:"food"`
	ClothingPersonalItems          decimal.Decimal `yaml:"clothing_personal_items" json:"clothing_personal_items"`
	Entertainment                  decimal.Decimal `yaml:"entertainment" json:"entertainment"`
	Travel                         decimal.Decimal `yaml:"travel" json:"travel"`
	Education                      decimal.Decimal `yaml:"education" json:"education"`
	Gifts                          decimal.Decimal `yaml:"gifts" json:"gifts"`
	KidsActivities                 decimal.Decimal `yaml:"kids_activities" json:"kids_activities"`
	Daycare                        decimal.Decimal `yaml:"daycare" json:"daycare"`
	ChildSupport                   decimal.Decimal `yaml:"child_support" json:"child_support"`
	HealthGymFees                  decimal.Decimal `yaml:"health_gym_fees" json:"health_gym_fees"`
	ProfessionalFees               decimal.Decimal `yaml:"professional_fees" json:"professional_fees"`
	IncomeTax                      decimal.Decimal `yaml:"income_tax" json:"income_tax"`
	TermLifeInsurance              decimal.Decimal `yaml:"term_life_insurance" json:"term_life_insurance"`
	DisabilityCriticalIllness      decimal.Decimal `yaml:"di_ci_insurance" json:"di_ci_insurance"`
	VehiclesLease                  decimal.Decimal `yaml:"vehicles_lease" json:"vehicles_lease"`
	VehiclesInsurance              decimal.Decimal `yaml:"vehicles_insurance" json:"vehicles_insurance"`
	VehiclesGas                    decimal.Decimal `yaml:"vehicles_gas" json:"vehicles_gas"`
	VehiclesMaintenance            decimal.Decimal `yaml:"vehicles_maintenance" json:"vehicles_maintenance"`
	AdditionalExpectedExpenditures decimal.Decimal `yaml:"additional_expected_expenditures" json:"additional_expected_expenditures"`
	Other                          decimal.Decimal `yaml:"other" json:"other"`
	PolicyPremium                  decimal.Decimal `yaml:"monthly_policy_premium_expense" json:"monthly_policy_premium_expense"`
}

// ExpenseCategory names one line of the living-expense rollup.
type ExpenseCategory struct {
	Name   string
	Amount decimal.Decimal
}

// Categories lists every expense line in a fixed order.
func (e Expenses) Categories() []ExpenseCategory {
	return []ExpenseCategory{
		{"food", e.Food},
		{"clothing_personal_items", e.ClothingPersonalItems},
		{"entertainment", e.Entertainment},
		{"travel", e.Travel},
		{"education", e.Education},
		{"gifts", e.Gifts},
		{"kids_activities", e.KidsActivities},
		{"daycare", e.Daycare},
		{"child_support", e.ChildSupport},
		{"health_gym_fees", e.HealthGymFees},
		{"professional_fees", e.ProfessionalFees},
		{"income_tax", e.IncomeTax},
		{"term_life_insurance", e.TermLifeInsurance},
		{"di_ci_insurance", e.DisabilityCriticalIllness},
		{"vehicles_lease", e.VehiclesLease},
		{"vehicles_insurance", e.VehiclesInsurance},
		{"vehicles_gas", e.VehiclesGas},
		{"vehicles_maintenance", e.VehiclesMaintenance},
		{"additional_expected_expenditures", e.AdditionalExpectedExpenditures},
		{"other", e.Other},
		{"monthly_policy_premium_expense", e.PolicyPremium},
	}
}

// Total sums every category.
func (e Expenses) Total() decimal.Decimal {
	total := decimal.Zero
	for _, c := range e.Categories() {
		total = total.Add(c.Amount)
	}
	return total
}

// Totals carries the household rollups. The Monthly*/Annual* fields are
// recomputed by the planner; the reductions and policy loan rate are inputs.
type Totals struct {
	MonthlyReductionOnInvestmentAllotment decimal.Decimal  `yaml:"monthly_reduction_on_investment_accounts_allotment" json:"monthly_reduction_on_investment_accounts_allotment"`
	MonthlyReductionOnReplacedInsurance   decimal.Decimal  `yaml:"monthly_reduction_on_replaced_insurance_expenses" json:"monthly_reduction_on_replaced_insurance_expenses"`
	PolicyInterestRate                    *decimal.Decimal `yaml:"policy_interest_rate,omitempty" json:"policy_interest_rate,omitempty"` // annual percent

	MonthlyTotalIncome         decimal.Decimal `yaml:"calculated_monthly_total_income" json:"calculated_monthly_total_income"`
	MonthlyTotalExpenses       decimal.Decimal `yaml:"calculated_monthly_total_expenses" json:"calculated_monthly_total_expenses"`
	MonthlyInvestmentAllotment decimal.Decimal `yaml:"calculated_monthly_investment_allotment" json:"calculated_monthly_investment_allotment"`
	MonthlyPreliminarySurplus  decimal.Decimal `yaml:"calculated_monthly_preliminary_surplus_budget" json:"calculated_monthly_preliminary_surplus_budget"`
	MonthlyTotalReduction      decimal.Decimal `yaml:"calculated_monthly_total_reduction_in_expenses" json:"calculated_monthly_total_reduction_in_expenses"`
	MonthlyFinalSurplus        decimal.Decimal `yaml:"calculated_monthly_final_surplus_budget" json:"calculated_monthly_final_surplus_budget"`
	AnnualBudgetAvailable      decimal.Decimal `yaml:"calculated_annual_budget_available" json:"calculated_annual_budget_available"`
}

// FinancialState is the household's full financial picture at a point in
// time. It is a value record: Clone yields a copy sharing no memory.
type FinancialState struct {
	People      []Person     `yaml:"people" json:"people"`
	Property    *Property    `yaml:"property,omitempty" json:"property,omitempty"`
	Credit      []Credit     `yaml:"credit,omitempty" json:"credit,omitempty"`
	Loans       []Loan       `yaml:"loans,omitempty" json:"loans,omitempty"`
	Investments []Investment `yaml:"investments,omitempty" json:"investments,omitempty"`
	Expenses    Expenses     `yaml:"expenses" json:"expenses"`
	Totals      Totals       `yaml:"totals" json:"totals"`
}

// HasProperty reports whether the state carries secured debt.
func (s FinancialState) HasProperty() bool {
	return s.Property != nil
}

// Clone returns a deep copy of the state.
func (s FinancialState) Clone() FinancialState {
	out := s
	out.People = make([]Person, len(s.People))
	for i, p := range s.People {
		if p.YearOnYearGrowth != nil {
			g := *p.YearOnYearGrowth
			p.YearOnYearGrowth = &g
		}
		out.People[i] = p
	}
	out.Property = s.Property.Clone()
	if s.Credit != nil {
		out.Credit = append([]Credit(nil), s.Credit...)
	}
	if s.Loans != nil {
		out.Loans = make([]Loan, len(s.Loans))
		for i, l := range s.Loans {
			out.Loans[i] = l.Clone()
		}
	}
	if s.Investments != nil {
		out.Investments = make([]Investment, len(s.Investments))
		for i, inv := range s.Investments {
			if inv.AnnualGrowth != nil {
				g := *inv.AnnualGrowth
				inv.AnnualGrowth = &g
			}
			out.Investments[i] = inv
		}
	}
	if s.Totals.PolicyInterestRate != nil {
		r := *s.Totals.PolicyInterestRate
		out.Totals.PolicyInterestRate = &r
	}
	return out
}

// Case is a planning input: a financial snapshot plus the policy
// illustration(s) it will borrow against.
type Case struct {
	Name           string         `yaml:"name" json:"name"`
	FinancialState `yaml:",inline"`

	// Supplement marks that the client can top up a first-year premium the
	// HELOC room cannot fully cover.
	Supplement     bool                 `yaml:"supplement" json:"supplement"`
	Policies       []Policy             `yaml:"policies,omitempty" json:"policies,omitempty"`
	PolicySchedule []PolicyYear         `yaml:"policy_schedule,omitempty" json:"policy_schedule,omitempty"`
	Assumptions    *AssumptionOverrides `yaml:"assumptions,omitempty" json:"assumptions,omitempty"`
}
