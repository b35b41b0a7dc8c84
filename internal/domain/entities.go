package domain

import (
	"github.com/shopspring/decimal"
)

// Person is an income earner (or dependant) in the household.
type Person struct {
	Name                    string           `yaml:"name" json:"name"`
	Adult                   bool             `yaml:"adult" json:"adult"`
	MonthlyNetIncome        decimal.Decimal  `yaml:"monthly_net_income" json:"monthly_net_income"`
	MonthlyBonusesDividends decimal.Decimal  `yaml:"monthly_bonuses_dividends" json:"monthly_bonuses_dividends"`
	MonthlyOtherIncome      decimal.Decimal  `yaml:"monthly_other_income" json:"monthly_other_income"`
	YearOnYearGrowth        *decimal.Decimal `yaml:"year_on_year_growth,omitempty" json:"year_on_year_growth,omitempty"` // percent
}

// MonthlyIncome is net income plus bonuses and other income.
func (p Person) MonthlyIncome() decimal.Decimal {
	return p.MonthlyNetIncome.Add(p.MonthlyBonusesDividends).Add(p.MonthlyOtherIncome)
}

// ExtraPrincipalPayment is a one-off principal payment keyed by the
// loan-relative month number (1 = first month of the loan).
type ExtraPrincipalPayment struct {
	Month  int             `yaml:"month" json:"month"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// Loan is an amortizing debt. Mortgages and installment loans share it.
type Loan struct {
	Name                     string                  `yaml:"name" json:"name"`
	FinancedAmount           decimal.Decimal         `yaml:"financed_amount" json:"financed_amount"`
	StartDate                Date                    `yaml:"loan_start_date" json:"loan_start_date"`
	LengthInMonths           int                     `yaml:"loan_length_in_months" json:"loan_length_in_months"`
	InterestRate             decimal.Decimal         `yaml:"interest_rate" json:"interest_rate"` // annual percent
	CurrentBalance           decimal.Decimal         `yaml:"calculated_current_loan_balance" json:"calculated_current_loan_balance"`
	MonthlyPayment           decimal.Decimal         `yaml:"calculated_monthly_payment_expense" json:"calculated_monthly_payment_expense"`
	ExtraPrincipalPayments   []ExtraPrincipalPayment `yaml:"extra_principal_payments,omitempty" json:"extra_principal_payments,omitempty"`
	InitialMonthlyPayment    decimal.Decimal         `yaml:"initial_monthly_payment" json:"initial_monthly_payment"`
	RedirectedMonthlyPayment decimal.Decimal         `yaml:"redirected_monthly_payment_expense" json:"redirected_monthly_payment_expense"`
	FullyPaid                bool                    `yaml:"fully_paid" json:"fully_paid"`
}

// Clone returns a copy that shares no memory with l.
func (l Loan) Clone() Loan {
	out := l
	if l.ExtraPrincipalPayments != nil {
		out.ExtraPrincipalPayments = append([]ExtraPrincipalPayment(nil), l.ExtraPrincipalPayments...)
	}
	return out
}

// Credit is a revolving balance with an interest-only minimum payment.
type Credit struct {
	Name                     string          `yaml:"name" json:"name"`
	Limit                    decimal.Decimal `yaml:"limit" json:"limit"`
	Balance                  decimal.Decimal `yaml:"balance" json:"balance"`
	InterestRate             decimal.Decimal `yaml:"interest_rate" json:"interest_rate"` // annual percent
	MinimumPayment           decimal.Decimal `yaml:"calculated_monthly_minimum_payment_expense" json:"calculated_monthly_minimum_payment_expense"`
	InitialMinimumPayment    decimal.Decimal `yaml:"initial_monthly_minimum_payment" json:"initial_monthly_minimum_payment"`
	RedirectedMinimumPayment decimal.Decimal `yaml:"redirected_monthly_minimum_payment_expense" json:"redirected_monthly_minimum_payment_expense"`
	FullyPaid                bool            `yaml:"fully_paid" json:"fully_paid"`
}

// Heloc is a home equity line of credit secured against a property.
type Heloc struct {
	Balance       decimal.Decimal `yaml:"balance" json:"balance"`
	InterestRate  decimal.Decimal `yaml:"interest_rate" json:"interest_rate"` // annual percent
	RoomAvailable decimal.Decimal `yaml:"calculated_room_available" json:"calculated_room_available"`
}

// PropertyExpenses are the monthly carrying costs of a property.
type PropertyExpenses struct {
	PropertyTax       decimal.Decimal `yaml:"property_tax" json:"property_tax"`
	PropertyInsurance decimal.Decimal `yaml:"property_insurance" json:"property_insurance"`
	MortgageInsurance decimal.Decimal `yaml:"mortgage_insurance" json:"mortgage_insurance"`
	Utilities         decimal.Decimal `yaml:"utilities" json:"utilities"`
	CommunityFees     decimal.Decimal `yaml:"community_fees" json:"community_fees"`
}

// Total sums the carrying costs.
func (pe PropertyExpenses) Total() decimal.Decimal {
	return pe.PropertyTax.Add(pe.PropertyInsurance).Add(pe.MortgageInsurance).Add(pe.Utilities).Add(pe.CommunityFees)
}

// Property is the (optional) home backing the mortgage and HELOC.
type Property struct {
	Name          string           `yaml:"name" json:"name"`
	CurrentValue  decimal.Decimal  `yaml:"current_value" json:"current_value"`
	MinimumEquity *decimal.Decimal `yaml:"minimum_heloc_equity,omitempty" json:"minimum_heloc_equity,omitempty"` // fraction, e.g. 0.20
	Mortgage      *Loan            `yaml:"mortgage" json:"mortgage"`
	Heloc         *Heloc           `yaml:"heloc,omitempty" json:"heloc,omitempty"`
	Expenses      PropertyExpenses `yaml:"expenses" json:"expenses"`
	CurrentEquity decimal.Decimal  `yaml:"calculated_current_equity" json:"calculated_current_equity"`
}

// Clone returns a deep copy of the property.
func (p *Property) Clone() *Property {
	if p == nil {
		return nil
	}
	out := *p
	if p.MinimumEquity != nil {
		v := *p.MinimumEquity
		out.MinimumEquity = &v
	}
	if p.Mortgage != nil {
		m := p.Mortgage.Clone()
		out.Mortgage = &m
	}
	if p.Heloc != nil {
		h := *p.Heloc
		out.Heloc = &h
	}
	return &out
}

// Investment is a passive account grown once a year.
type Investment struct {
	Name             string           `yaml:"name" json:"name"`
	Balance          decimal.Decimal  `yaml:"balance" json:"balance"`
	MonthlyAllotment decimal.Decimal  `yaml:"monthly_allotment" json:"monthly_allotment"`
	AnnualGrowth     *decimal.Decimal `yaml:"annual_growth,omitempty" json:"annual_growth,omitempty"` // percent
}
