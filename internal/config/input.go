package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ffplan/freedom-planner/internal/calculation"
	"github.com/ffplan/freedom-planner/internal/domain"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of case files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a case from a YAML or JSON file. Files ending in .json
// are decoded as JSON; everything else as YAML.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Case, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var c *domain.Case
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		c, err = ip.ParseJSON(data)
	} else {
		c, err = ip.ParseYAML(data)
	}
	if err != nil {
		return nil, err
	}

	if err := ip.ValidateCase(c); err != nil {
		return nil, fmt.Errorf("case validation failed: %w", err)
	}
	return c, nil
}

// ParseYAML decodes a case without validating it. Unknown keys are rejected.
func (ip *InputParser) ParseYAML(data []byte) (*domain.Case, error) {
	var c domain.Case
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &c, nil
}

// ParseJSON decodes a case without validating it.
func (ip *InputParser) ParseJSON(data []byte) (*domain.Case, error) {
	var c domain.Case
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &c, nil
}

// ValidateCase checks the shape of a loaded case. Numeric edge cases the
// engine can coerce are left alone; anything it cannot plan is rejected.
func (ip *InputParser) ValidateCase(c *domain.Case) error {
	if c == nil {
		return errors.New("case is empty")
	}
	if len(c.People) == 0 {
		return errors.New("at least one person is required")
	}
	for i, p := range c.People {
		if err := nonNegative(fmt.Sprintf("people[%d] (%s)", i, p.Name), []namedAmount{
			{"monthly_net_income", p.MonthlyNetIncome},
			{"monthly_bonuses_dividends", p.MonthlyBonusesDividends},
			{"monthly_other_income", p.MonthlyOtherIncome},
		}); err != nil {
			return err
		}
	}

	if err := ip.validateProperty(c.Property); err != nil {
		return fmt.Errorf("property validation failed: %w", err)
	}

	for i, cr := range c.Credit {
		if err := nonNegative(fmt.Sprintf("credit[%d] (%s)", i, cr.Name), []namedAmount{
			{"balance", cr.Balance},
			{"interest_rate", cr.InterestRate},
			{"limit", cr.Limit},
		}); err != nil {
			return err
		}
	}
	for i, l := range c.Loans {
		if err := ip.validateLoan(l); err != nil {
			return fmt.Errorf("loans[%d] validation failed: %w", i, err)
		}
	}
	for i, inv := range c.Investments {
		if err := nonNegative(fmt.Sprintf("investments[%d] (%s)", i, inv.Name), []namedAmount{
			{"balance", inv.Balance},
			{"monthly_allotment", inv.MonthlyAllotment},
		}); err != nil {
			return err
		}
	}
	for _, e := range c.Expenses.Categories() {
		if e.Amount.IsNegative() {
			return fmt.Errorf("expense %s cannot be negative", e.Name)
		}
	}

	if len(c.PolicySchedule) == 0 && len(c.Policies) == 0 {
		return fmt.Errorf("a policy schedule or at least one policy is required: %w", calculation.ErrEmptyPolicySchedule)
	}
	for i, p := range c.Policies {
		if len(p.Schedule) == 0 {
			return fmt.Errorf("policies[%d] (%s): %w", i, p.Name, calculation.ErrEmptyPolicySchedule)
		}
	}

	if err := ip.validateAssumptions(c.Assumptions); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}
	return nil
}

func (ip *InputParser) validateProperty(p *domain.Property) error {
	if p == nil {
		return nil
	}
	if p.Mortgage == nil {
		return fmt.Errorf("property %q: %w", p.Name, calculation.ErrMissingMortgage)
	}
	if !p.CurrentValue.IsPositive() {
		return fmt.Errorf("property %q: current value must be positive", p.Name)
	}
	if p.MinimumEquity != nil && (p.MinimumEquity.IsNegative() || p.MinimumEquity.GreaterThan(decimal.NewFromInt(1))) {
		return fmt.Errorf("property %q: minimum HELOC equity must be between 0 and 1", p.Name)
	}
	if p.Heloc != nil {
		if err := nonNegative("heloc", []namedAmount{
			{"balance", p.Heloc.Balance},
			{"interest_rate", p.Heloc.InterestRate},
		}); err != nil {
			return err
		}
	}
	return ip.validateLoan(*p.Mortgage)
}

func (ip *InputParser) validateLoan(l domain.Loan) error {
	if err := calculation.ValidateLoan(l); err != nil {
		return err
	}
	if l.InterestRate.IsNegative() {
		return fmt.Errorf("loan %q: interest rate cannot be negative", l.Name)
	}
	for _, x := range l.ExtraPrincipalPayments {
		if x.Month < 1 || x.Amount.IsNegative() {
			return fmt.Errorf("loan %q: extra principal payments need a month from 1 and a non-negative amount", l.Name)
		}
	}
	return nil
}

func (ip *InputParser) validateAssumptions(o *domain.AssumptionOverrides) error {
	if o == nil {
		return nil
	}
	for _, f := range []struct {
		name  string
		value *decimal.Decimal
	}{
		{"policy_loan_factor_year_one", o.PolicyLoanFactorYearOne},
		{"policy_loan_factor_cash_value", o.PolicyLoanFactorCashValue},
		{"policy_loan_factor_deposit", o.PolicyLoanFactorDeposit},
		{"minimum_heloc_equity", o.MinimumHelocEquity},
	} {
		if v := f.value; v != nil && (v.IsNegative() || v.GreaterThan(decimal.NewFromInt(1))) {
			return fmt.Errorf("%s must be between 0 and 1", f.name)
		}
	}
	if o.PolicyLoanInterestRate != nil && o.PolicyLoanInterestRate.IsNegative() {
		return errors.New("policy_loan_interest_rate cannot be negative")
	}
	return nil
}

type namedAmount struct {
	name  string
	value decimal.Decimal
}

// nonNegative reports the first negative field, in the order given.
func nonNegative(owner string, fields []namedAmount) error {
	for _, f := range fields {
		if f.value.IsNegative() {
			return fmt.Errorf("%s: %s cannot be negative", owner, f.name)
		}
	}
	return nil
}

// SaveToFile writes a case as YAML, or as JSON when filename ends in .json.
func (ip *InputParser) SaveToFile(c *domain.Case, filename string) error {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		data, err = json.MarshalIndent(c, "", "  ")
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("failed to encode case: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// CreateExampleCase creates an example case: a couple with a mortgage, an
// empty HELOC, a credit card, a car loan and a ten year policy.
func (ip *InputParser) CreateExampleCase() *domain.Case {
	d := decimal.NewFromInt
	growth := decimal.NewFromFloat(2.5)
	minEquity := decimal.NewFromFloat(0.20)
	policyRate := d(5)

	cashValues := []int64{16000, 35000, 55000, 76000, 98000, 121000, 145000, 170000, 196000, 223000}
	schedule := make([]domain.PolicyYear, len(cashValues))
	for i, cv := range cashValues {
		schedule[i] = domain.PolicyYear{
			Year:                            i + 1,
			GuaranteedRequiredAnnualPremium: d(5000),
			TotalDeposit:                    d(20000),
			CumulativeCashValue:             d(cv),
			TotalCashValue:                  d(cv),
			TotalDeathBenefit:               d(1000000),
			TotalCashPremiums:               d(25000 * int64(i+1)),
		}
	}

	return &domain.Case{
		Name: "Example Household",
		FinancialState: domain.FinancialState{
			People: []domain.Person{
				{Name: "Jordan", Adult: true, MonthlyNetIncome: d(9000), MonthlyBonusesDividends: d(500), YearOnYearGrowth: &growth},
				{Name: "Casey", Adult: true, MonthlyNetIncome: d(6000)},
			},
			Property: &domain.Property{
				Name:          "Primary Residence",
				CurrentValue:  d(600000),
				MinimumEquity: &minEquity,
				Mortgage: &domain.Loan{
					Name:           "Mortgage",
					FinancedAmount: d(300000),
					StartDate:      domain.NewDate(2019, time.January, 1),
					LengthInMonths: 300,
					InterestRate:   d(4),
				},
				Heloc: &domain.Heloc{InterestRate: d(6)},
				Expenses: domain.PropertyExpenses{
					PropertyTax:       d(400),
					PropertyInsurance: d(120),
					Utilities:         d(250),
				},
			},
			Credit: []domain.Credit{
				{Name: "Visa", Limit: d(15000), Balance: d(10000), InterestRate: decimal.NewFromFloat(19.99)},
			},
			Loans: []domain.Loan{
				{
					Name:           "Car Loan",
					FinancedAmount: d(30000),
					StartDate:      domain.NewDate(2022, time.January, 1),
					LengthInMonths: 60,
					InterestRate:   d(6),
				},
			},
			Investments: []domain.Investment{
				{Name: "RRSP", Balance: d(40000), MonthlyAllotment: d(500)},
			},
			Expenses: domain.Expenses{
				Food:                  d(1500),
				ClothingPersonalItems: d(300),
				Entertainment:         d(400),
				Travel:                d(300),
				TermLifeInsurance:     d(150),
				VehiclesInsurance:     d(200),
				VehiclesGas:           d(250),
				Other:                 d(500),
			},
			Totals: domain.Totals{
				MonthlyReductionOnReplacedInsurance: d(150),
				PolicyInterestRate:                  &policyRate,
			},
		},
		PolicySchedule: schedule,
		Assumptions: &domain.AssumptionOverrides{
			AsOf: &domain.Date{Time: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
}
