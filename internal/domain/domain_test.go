package domain

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDateText(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{"2024-06-15", NewDate(2024, time.June, 15)},
		{"2024-06", NewDate(2024, time.June, 1)},
		{"06/15/2024", NewDate(2024, time.June, 15)},
		{"", Date{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var d Date
			require.NoError(t, d.UnmarshalText([]byte(tt.in)))
			assert.True(t, tt.want.Equal(d.Time), "got %v", d)
		})
	}

	var d Date
	assert.Error(t, d.UnmarshalText([]byte("soon")))
	assert.Equal(t, "", Date{}.String())
	assert.Equal(t, "2024-06-15", NewDate(2024, time.June, 15).String())
}

func TestDateJSON(t *testing.T) {
	type holder struct {
		When Date `json:"when"`
	}
	data, err := json.Marshal(holder{When: NewDate(2023, time.March, 1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"when":"2023-03-01"}`, string(data))

	data, err = json.Marshal(holder{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"when":null}`, string(data))

	var h holder
	require.NoError(t, json.Unmarshal([]byte(`{"when":"2023-03-01"}`), &h))
	assert.Equal(t, "2023-03-01", h.When.String())
}

func TestDateYAML(t *testing.T) {
	var l Loan
	require.NoError(t, yaml.Unmarshal([]byte("name: car\nloan_start_date: 2022-01-01\nloan_length_in_months: 60\n"), &l))
	assert.Equal(t, "2022-01-01", l.StartDate.String())
	assert.Equal(t, 60, l.LengthInMonths)
}

func TestAssumptionsApply(t *testing.T) {
	base := DefaultAssumptions()
	assert.Equal(t, base, base.Apply(nil))

	half := dec("0.5")
	asOf := NewDate(2024, time.January, 1)
	got := base.Apply(&AssumptionOverrides{PolicyLoanFactorYearOne: &half, AsOf: &asOf})

	assert.True(t, got.PolicyLoanFactorYearOne.Equal(half))
	assert.True(t, got.PolicyLoanFactorCashValue.Equal(dec("0.9")))
	assert.True(t, got.MinimumHelocEquity.Equal(dec("0.2")))
	assert.Equal(t, asOf, got.AsOf)
	assert.True(t, base.AsOf.IsZero(), "base must not change")
}

func TestAssumptionsAsOfOr(t *testing.T) {
	now := time.Date(2030, time.May, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, now, DefaultAssumptions().AsOfOr(now))

	a := DefaultAssumptions()
	a.AsOf = NewDate(2024, time.January, 1)
	assert.Equal(t, a.AsOf.Time, a.AsOfOr(now))
}

func TestExpensesTotal(t *testing.T) {
	e := Expenses{Food: dec("1200"), Travel: dec("300"), Other: dec("40.50"), PolicyPremium: dec("100")}
	assert.True(t, e.Total().Equal(dec("1640.50")))
	assert.Len(t, e.Categories(), 21)
}

func sampleState() FinancialState {
	growth := dec("2.5")
	minEquity := dec("0.2")
	rate := dec("5")
	return FinancialState{
		People: []Person{{Name: "Jordan", MonthlyNetIncome: dec("9000"), YearOnYearGrowth: &growth}},
		Property: &Property{
			Name:          "Home",
			CurrentValue:  dec("600000"),
			MinimumEquity: &minEquity,
			Mortgage:      &Loan{Name: "Mortgage", CurrentBalance: dec("250000")},
			Heloc:         &Heloc{Balance: dec("0"), InterestRate: dec("6")},
		},
		Credit: []Credit{{Name: "Visa", Balance: dec("10000")}},
		Loans: []Loan{{
			Name:                   "Car",
			CurrentBalance:         dec("20000"),
			ExtraPrincipalPayments: []ExtraPrincipalPayment{{Month: 3, Amount: dec("1000")}},
		}},
		Investments: []Investment{{Name: "RRSP", Balance: dec("40000"), AnnualGrowth: &growth}},
		Totals:      Totals{PolicyInterestRate: &rate},
	}
}

func TestFinancialStateCloneIsDeep(t *testing.T) {
	orig := sampleState()
	c := orig.Clone()

	*c.People[0].YearOnYearGrowth = dec("9")
	c.Property.CurrentValue = dec("1")
	*c.Property.MinimumEquity = dec("0.9")
	c.Property.Mortgage.CurrentBalance = dec("1")
	c.Property.Heloc.Balance = dec("1")
	c.Credit[0].Balance = dec("1")
	c.Loans[0].ExtraPrincipalPayments[0].Amount = dec("1")
	*c.Investments[0].AnnualGrowth = dec("9")
	*c.Totals.PolicyInterestRate = dec("9")

	want := sampleState()
	assert.Equal(t, want, orig)
}

func TestFinancialStateCloneWithoutProperty(t *testing.T) {
	s := FinancialState{People: []Person{{Name: "Solo"}}}
	c := s.Clone()
	assert.Nil(t, c.Property)
	assert.False(t, c.HasProperty())
	assert.Nil(t, c.Credit)
	assert.Nil(t, c.Loans)
}

func TestCalculationsRoundAndClone(t *testing.T) {
	c := Calculations{
		EndingNetWorth:               dec("100.005"),
		CreditInitialMonthlyPayments: []decimal.Decimal{dec("1.234")},
		CreditPayments:               []DebtPayment{{Name: "Visa", Amount: dec("2.345")}},
	}
	c.Round()
	assert.Equal(t, "100.01", c.EndingNetWorth.StringFixed(2))
	assert.True(t, c.CreditInitialMonthlyPayments[0].Equal(dec("1.23")))
	assert.True(t, c.CreditPayments[0].Amount.Equal(dec("2.35")))

	cp := c.Clone()
	cp.CreditPayments[0].Amount = dec("0")
	cp.CreditInitialMonthlyPayments[0] = dec("0")
	assert.True(t, c.CreditPayments[0].Amount.Equal(dec("2.35")))
	assert.True(t, c.CreditInitialMonthlyPayments[0].Equal(dec("1.23")))
}
