package calculation

import (
	"testing"
	"time"

	"github.com/ffplan/freedom-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var testAsOf = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertMoney(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(2), msgAndArgs...)
}

func assertWithinCent(t *testing.T, want, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, want.Sub(got).Abs().LessThanOrEqual(dec("0.01")),
		append([]interface{}{"want %s got %s", want, got}, msgAndArgs...)...)
}

func newTestEngine() *PlanEngine {
	a := domain.DefaultAssumptions()
	a.AsOf = domain.Date{Time: testAsOf}
	return NewPlanEngineWithAssumptions(a)
}

func createLoan(name, financed, rate string, months int, start domain.Date) domain.Loan {
	return domain.Loan{
		Name:           name,
		FinancedAmount: dec(financed),
		InterestRate:   dec(rate),
		LengthInMonths: months,
		StartDate:      start,
	}
}

func flatSchedule(years int, premium, deposit string, cashValues ...string) []domain.PolicyYear {
	out := make([]domain.PolicyYear, years)
	for i := range out {
		cash := cashValues[len(cashValues)-1]
		if i < len(cashValues) {
			cash = cashValues[i]
		}
		out[i] = domain.PolicyYear{
			Year:                            i + 1,
			GuaranteedRequiredAnnualPremium: dec(premium),
			TotalDeposit:                    dec(deposit),
			TotalCashValue:                  dec(cash),
			CumulativeCashValue:             dec(cash),
		}
	}
	return out
}
