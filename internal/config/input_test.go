package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ffplan/freedom-planner/internal/calculation"
	"github.com/ffplan/freedom-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalCase = `name: Renter
people:
  - name: Alex
    adult: true
    monthly_net_income: 6000
credit:
  - name: Card A
    balance: 3000
    interest_rate: 20
expenses:
  food: 1000
policy_schedule:
  - year: 1
    guaranteed_required_annual_premium: 0
    total_deposit: 2000
    total_cash_value: 1800
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_YAML(t *testing.T) {
	parser := NewInputParser()
	c, err := parser.LoadFromFile(writeTemp(t, "case.yaml", minimalCase))
	require.NoError(t, err)

	assert.Equal(t, "Renter", c.Name)
	require.Len(t, c.People, 1)
	assert.True(t, c.People[0].MonthlyNetIncome.Equal(decimal.NewFromInt(6000)))
	require.Len(t, c.Credit, 1)
	assert.True(t, c.Credit[0].InterestRate.Equal(decimal.NewFromInt(20)))
	assert.Nil(t, c.Property)
	require.Len(t, c.PolicySchedule, 1)
	assert.True(t, c.PolicySchedule[0].TotalCashValue.Equal(decimal.NewFromInt(1800)))
}

func TestLoadFromFile_JSON(t *testing.T) {
	content := `{
  "name": "Renter",
  "people": [{"name": "Alex", "adult": true, "monthly_net_income": "6000"}],
  "credit": [{"name": "Card A", "balance": 3000, "interest_rate": 20}],
  "expenses": {"food": 1000},
  "policies": [{"name": "P1", "schedule": [{"year": 1, "total_deposit": 2000, "total_cash_value": 1800}]}],
  "assumptions": {"as_of": "2024-01-01", "policy_loan_factor_year_one": 0.5}
}`
	parser := NewInputParser()
	c, err := parser.LoadFromFile(writeTemp(t, "case.json", content))
	require.NoError(t, err)

	assert.Equal(t, "Renter", c.Name)
	assert.True(t, c.People[0].MonthlyNetIncome.Equal(decimal.NewFromInt(6000)))
	require.Len(t, c.Policies, 1)
	require.NotNil(t, c.Assumptions)
	require.NotNil(t, c.Assumptions.AsOf)
	assert.Equal(t, "2024-01-01", c.Assumptions.AsOf.String())
	assert.Equal(t, "0.5", c.Assumptions.PolicyLoanFactorYearOne.String())
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	c, err := parser.LoadFromFile("nonexistent_file.yaml")
	assert.Error(t, err)
	assert.Nil(t, c)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(writeTemp(t, "bad.yaml", "people: [\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParseYAML_UnknownField(t *testing.T) {
	_, err := NewInputParser().ParseYAML([]byte("name: x\nsalary: 100\n"))
	assert.Error(t, err)
}

func TestParseYAML_Dates(t *testing.T) {
	c, err := NewInputParser().ParseYAML([]byte(`loans:
  - name: Car
    financed_amount: 30000
    loan_start_date: 2022-03-01
    loan_length_in_months: 60
    interest_rate: 6
assumptions:
  as_of: "2024-06"
`))
	require.NoError(t, err)
	require.Len(t, c.Loans, 1)
	assert.Equal(t, time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC), c.Loans[0].StartDate.Time)
	assert.Equal(t, "2024-06-01", c.Assumptions.AsOf.String())
}

func TestLoadFromFile_ExampleFixture(t *testing.T) {
	parser := NewInputParser()
	c, err := parser.LoadFromFile(filepath.Join("..", "..", "testdata", "example_case.yaml"))
	require.NoError(t, err)

	example := parser.CreateExampleCase()
	assert.Equal(t, example.Name, c.Name)
	require.NotNil(t, c.Property)
	assert.True(t, example.Property.Mortgage.FinancedAmount.Equal(c.Property.Mortgage.FinancedAmount))
	assert.True(t, example.Property.Mortgage.StartDate.Equal(c.Property.Mortgage.StartDate.Time))
	assert.Len(t, c.PolicySchedule, len(example.PolicySchedule))
	assert.True(t, example.Credit[0].InterestRate.Equal(c.Credit[0].InterestRate))
}

func validCase() *domain.Case {
	return NewInputParser().CreateExampleCase()
}

func TestValidateCase(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name    string
		mutate  func(c *domain.Case)
		wantErr string
		is      error
	}{
		{name: "example is valid", mutate: func(c *domain.Case) {}},
		{name: "no people", mutate: func(c *domain.Case) { c.People = nil }, wantErr: "at least one person"},
		{name: "negative income", mutate: func(c *domain.Case) {
			c.People[0].MonthlyNetIncome = decimal.NewFromInt(-1)
		}, wantErr: "monthly_net_income cannot be negative"},
		{name: "property without mortgage", mutate: func(c *domain.Case) {
			c.Property.Mortgage = nil
		}, is: calculation.ErrMissingMortgage},
		{name: "property without value", mutate: func(c *domain.Case) {
			c.Property.CurrentValue = decimal.Zero
		}, wantErr: "current value must be positive"},
		{name: "minimum equity out of range", mutate: func(c *domain.Case) {
			v := decimal.NewFromFloat(1.5)
			c.Property.MinimumEquity = &v
		}, wantErr: "minimum HELOC equity"},
		{name: "mortgage without term", mutate: func(c *domain.Case) {
			c.Property.Mortgage.LengthInMonths = 0
		}, is: calculation.ErrInvalidTerm},
		{name: "loan without start date", mutate: func(c *domain.Case) {
			c.Loans[0].StartDate = domain.Date{}
		}, is: calculation.ErrMissingStartDate},
		{name: "bad extra payment", mutate: func(c *domain.Case) {
			c.Loans[0].ExtraPrincipalPayments = []domain.ExtraPrincipalPayment{{Month: 0, Amount: decimal.NewFromInt(100)}}
		}, wantErr: "extra principal payments"},
		{name: "negative credit balance", mutate: func(c *domain.Case) {
			c.Credit[0].Balance = decimal.NewFromInt(-5)
		}, wantErr: "balance cannot be negative"},
		{name: "first negative credit field is named", mutate: func(c *domain.Case) {
			c.Credit[0].InterestRate = decimal.NewFromInt(-1)
			c.Credit[0].Limit = decimal.NewFromInt(-1)
		}, wantErr: "interest_rate cannot be negative"},
		{name: "first negative income field is named", mutate: func(c *domain.Case) {
			c.People[0].MonthlyNetIncome = decimal.NewFromInt(-1)
			c.People[0].MonthlyOtherIncome = decimal.NewFromInt(-1)
		}, wantErr: "monthly_net_income cannot be negative"},
		{name: "negative expense", mutate: func(c *domain.Case) {
			c.Expenses.Food = decimal.NewFromInt(-5)
		}, wantErr: "cannot be negative"},
		{name: "no schedule", mutate: func(c *domain.Case) {
			c.PolicySchedule = nil
		}, is: calculation.ErrEmptyPolicySchedule},
		{name: "policy with empty schedule", mutate: func(c *domain.Case) {
			c.Policies = []domain.Policy{{Name: "empty"}}
		}, is: calculation.ErrEmptyPolicySchedule},
		{name: "factor out of range", mutate: func(c *domain.Case) {
			v := decimal.NewFromInt(2)
			c.Assumptions.PolicyLoanFactorDeposit = &v
		}, wantErr: "policy_loan_factor_deposit must be between 0 and 1"},
		{name: "first factor out of range is named", mutate: func(c *domain.Case) {
			v := decimal.NewFromInt(2)
			c.Assumptions.PolicyLoanFactorCashValue = &v
			c.Assumptions.MinimumHelocEquity = &v
		}, wantErr: "policy_loan_factor_cash_value must be between 0 and 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCase()
			tt.mutate(c)
			err := parser.ValidateCase(c)
			switch {
			case tt.is != nil:
				assert.ErrorIs(t, err, tt.is)
			case tt.wantErr != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			default:
				assert.NoError(t, err)
			}
		})
	}

	assert.Error(t, parser.ValidateCase(nil))
}

func TestSaveToFile_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	example := parser.CreateExampleCase()

	for _, name := range []string{"case.yaml", "case.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, parser.SaveToFile(example, path))

			loaded, err := parser.LoadFromFile(path)
			require.NoError(t, err)
			assert.Equal(t, example.Name, loaded.Name)
			assert.True(t, example.Property.CurrentValue.Equal(loaded.Property.CurrentValue))
			assert.Equal(t, example.Loans[0].StartDate.String(), loaded.Loans[0].StartDate.String())
			assert.Equal(t, example.Assumptions.AsOf.String(), loaded.Assumptions.AsOf.String())
			require.Len(t, loaded.PolicySchedule, len(example.PolicySchedule))
			assert.True(t, example.PolicySchedule[9].TotalCashValue.Equal(loaded.PolicySchedule[9].TotalCashValue))
		})
	}
}

func TestExampleCasePlans(t *testing.T) {
	c := NewInputParser().CreateExampleCase()
	plan, err := calculation.NewPlanEngine().RunCase(c)
	require.NoError(t, err)
	assert.Greater(t, len(plan.Years), 1)
	assert.Equal(t, "2024-01-01", plan.AsOf.String())
}
