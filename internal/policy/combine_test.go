package policy

import (
	"testing"

	"github.com/ffplan/freedom-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func year(n int, premium, deposit, cash string) domain.PolicyYear {
	return domain.PolicyYear{
		Year:                            n,
		GuaranteedRequiredAnnualPremium: decimal.RequireFromString(premium),
		TotalDeposit:                    decimal.RequireFromString(deposit),
		TotalCashValue:                  decimal.RequireFromString(cash),
		CumulativeCashValue:             decimal.RequireFromString(cash),
	}
}

func TestCombine(t *testing.T) {
	t.Run("no policies", func(t *testing.T) {
		assert.Nil(t, Combine(nil))
	})

	t.Run("single policy passes through", func(t *testing.T) {
		got := Combine([]domain.Policy{{Name: "a", Schedule: []domain.PolicyYear{
			year(1, "1000", "5000", "4200.005"),
		}}})
		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].Year)
		assert.Equal(t, "4200.01", got[0].TotalCashValue.StringFixed(2))
	})

	t.Run("sums year by year over the shortest illustration", func(t *testing.T) {
		a := domain.Policy{Name: "a", Schedule: []domain.PolicyYear{
			year(1, "1000", "5000", "4000"),
			year(2, "1000", "5000", "9000"),
			year(3, "1000", "5000", "15000"),
		}}
		b := domain.Policy{Name: "b", Schedule: []domain.PolicyYear{
			year(1, "500.10", "2000", "1500.25"),
			year(2, "500.10", "2000", "3200.50"),
		}}
		got := Combine([]domain.Policy{a, b})
		require.Len(t, got, 2)
		assert.Equal(t, 2, got[1].Year)
		assert.True(t, got[0].GuaranteedRequiredAnnualPremium.Equal(decimal.RequireFromString("1500.10")))
		assert.True(t, got[0].TotalDeposit.Equal(decimal.NewFromInt(7000)))
		assert.True(t, got[1].TotalCashValue.Equal(decimal.RequireFromString("12200.50")))
		assert.True(t, got[1].Cost().Equal(decimal.RequireFromString("8500.10")))
	})
}
