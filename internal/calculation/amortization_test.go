package calculation

import (
	"testing"

	"github.com/ffplan/freedom-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumPrincipal(rows []AmortizationRow) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.PrincipalPayment)
	}
	return total
}

func TestAnnuityPayment(t *testing.T) {
	tests := []struct {
		name     string
		financed string
		rate     string
		months   int
		want     string
	}{
		{"twelve months at six percent", "12000", "6", 12, "1032.80"},
		{"thirty year mortgage", "300000", "4", 360, "1432.25"},
		{"zero rate is straight line", "1200", "0", 12, "100.00"},
		{"negative rate treated as zero", "1200", "-3", 12, "100.00"},
		{"no term", "1200", "5", 0, "0.00"},
		{"nothing financed", "0", "5", 12, "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMoney(t, tt.want, AnnuityPayment(dec(tt.financed), dec(tt.rate), tt.months))
		})
	}
}

func TestScheduleTwelveMonthScenario(t *testing.T) {
	loan := createLoan("car", "12000", "6", 12, domain.NewDate(2024, 1, 1))
	loan.MonthlyPayment = AnnuityPayment(loan.FinancedAmount, loan.InterestRate, loan.LengthInMonths)

	rows := Schedule(loan)

	require.Len(t, rows, 12)
	assert.Equal(t, 1, rows[0].Month)
	assertMoney(t, "12000.00", rows[0].StartBalance)
	assertMoney(t, "60.00", rows[0].InterestPayment)
	assertMoney(t, "0.00", rows[11].EndBalance)
	assert.True(t, rows[11].EndBalance.IsZero())
	assertWithinCent(t, loan.FinancedAmount, sumPrincipal(rows))

	t.Run("long terms", func(t *testing.T) {
		tests := []struct {
			name     string
			financed string
			rate     string
			months   int
		}{
			{"25 year mortgage", "487321.55", "5.375", 300},
			{"30 year mortgage", "250000", "3.25", 360},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				long := createLoan("mortgage", tt.financed, tt.rate, tt.months, domain.NewDate(2024, 1, 1))
				rows := Schedule(long)

				require.Len(t, rows, tt.months)
				assert.True(t, rows[len(rows)-1].EndBalance.IsZero())
				assertWithinCent(t, long.FinancedAmount, sumPrincipal(rows))
				for _, r := range rows {
					assertMoney(t, r.StartBalance.Sub(r.EndBalance).StringFixed(2), r.PrincipalPayment, "month %d", r.Month)
				}
			})
		}
	})
}

func TestScheduleDerivesPaymentWhenMissing(t *testing.T) {
	loan := createLoan("car", "12000", "6", 12, domain.NewDate(2024, 1, 1))

	rows := Schedule(loan)

	require.Len(t, rows, 12)
	assertMoney(t, "972.80", rows[0].PrincipalPayment)
	assert.True(t, rows[11].EndBalance.IsZero())
	assertWithinCent(t, loan.FinancedAmount, sumPrincipal(rows))
	assert.True(t, loan.MonthlyPayment.IsZero(), "input must not be modified")
}

func TestScheduleEarlyPayoff(t *testing.T) {
	loan := createLoan("car", "12000", "6", 12, domain.NewDate(2024, 1, 1))
	base := Schedule(loan)
	require.Len(t, base, 12)

	for _, k := range []int{1, 5, 11} {
		withExtra := loan.Clone()
		withExtra.ExtraPrincipalPayments = []domain.ExtraPrincipalPayment{{Month: k, Amount: base[k-1].EndBalance}}

		rows := Schedule(withExtra)
		require.Len(t, rows, k, "payoff at month %d", k)
		assert.True(t, rows[k-1].EndBalance.IsZero())
		assertWithinCent(t, loan.FinancedAmount, sumPrincipal(rows))
	}
}

func TestScheduleOvershootIsAbsorbed(t *testing.T) {
	loan := createLoan("car", "12000", "6", 12, domain.NewDate(2024, 1, 1))
	loan.ExtraPrincipalPayments = []domain.ExtraPrincipalPayment{{Month: 3, Amount: dec("50000")}}

	rows := Schedule(loan)

	require.Len(t, rows, 3)
	assert.True(t, rows[2].EndBalance.IsZero())
	assertMoney(t, rows[2].StartBalance.StringFixed(2), rows[2].PrincipalPayment)
	assertWithinCent(t, loan.FinancedAmount, sumPrincipal(rows))
}

func TestScheduleAppliesExtrasOnceInMonthOrder(t *testing.T) {
	loan := createLoan("car", "12000", "6", 12, domain.NewDate(2024, 1, 1))
	loan.ExtraPrincipalPayments = []domain.ExtraPrincipalPayment{
		{Month: 4, Amount: dec("500")},
		{Month: 2, Amount: dec("1000")},
	}
	base := Schedule(createLoan("car", "12000", "6", 12, domain.NewDate(2024, 1, 1)))
	rows := Schedule(loan)

	assertMoney(t, base[1].PrincipalPayment.Add(dec("1000")).StringFixed(2), rows[1].PrincipalPayment)
	assert.True(t, rows[3].PrincipalPayment.GreaterThan(dec("1400")))
	assert.Less(t, len(rows), 12)
}

func TestScheduleDegenerateInputs(t *testing.T) {
	tests := []struct {
		name string
		loan domain.Loan
	}{
		{"no start date", createLoan("x", "1000", "5", 12, domain.Date{})},
		{"zero term", createLoan("x", "1000", "5", 0, domain.NewDate(2024, 1, 1))},
		{"negative term", createLoan("x", "1000", "5", -3, domain.NewDate(2024, 1, 1))},
		{"negative financed", createLoan("x", "-1000", "5", 12, domain.NewDate(2024, 1, 1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, Schedule(tt.loan))
		})
	}
}

func TestScheduleIsIdempotent(t *testing.T) {
	loan := createLoan("mortgage", "250000", "3.75", 300, domain.NewDate(2020, 6, 1))
	loan.ExtraPrincipalPayments = []domain.ExtraPrincipalPayment{{Month: 40, Amount: dec("10000")}}

	first := Schedule(loan)
	second := Schedule(loan)

	assert.Equal(t, first, second)
	require.Len(t, loan.ExtraPrincipalPayments, 1)
}

func TestMonthInLoan(t *testing.T) {
	start := domain.NewDate(2023, 3, 15)
	assert.Equal(t, 10, MonthInLoan(start, testAsOf, 0))
	assert.Equal(t, 22, MonthInLoan(start, testAsOf, 12))
	assert.Equal(t, 0, MonthInLoan(start, testAsOf, -24))
	assert.Equal(t, 0, MonthInLoan(domain.Date{}, testAsOf, 5))
}

func TestBalanceAndPaymentAtOffset(t *testing.T) {
	// Loan started this month, so offset zero is the first row.
	loan := createLoan("car", "12000", "6", 12, domain.NewDate(2024, 1, 1))
	rows := Schedule(loan)

	assertMoney(t, rows[0].EndBalance.StringFixed(2), BalanceAt(loan, testAsOf, 0))
	assertMoney(t, rows[5].EndBalance.StringFixed(2), BalanceAt(loan, testAsOf, 5))
	assertMoney(t, "0.00", BalanceAt(loan, testAsOf, 12))
	assertMoney(t, "0.00", BalanceAt(loan, testAsOf, 400))

	assertMoney(t, "1032.80", MonthlyPaymentAt(loan, testAsOf, 0))
	last := rows[11]
	assertMoney(t, last.StartBalance.Add(last.InterestPayment).StringFixed(2), MonthlyPaymentAt(loan, testAsOf, 11))
	assertMoney(t, "0.00", MonthlyPaymentAt(loan, testAsOf, 12))
}

func TestSchedulePortions(t *testing.T) {
	loan := createLoan("car", "12000", "6", 12, domain.NewDate(2024, 1, 1))
	rows := Schedule(loan)

	principal, interest := SchedulePortions(loan, testAsOf, 0, 12)
	assertWithinCent(t, dec("12000"), principal)
	expectedInterest := decimal.Zero
	for _, r := range rows {
		expectedInterest = expectedInterest.Add(r.InterestPayment)
	}
	assert.True(t, interest.Equal(expectedInterest))

	principal, interest = SchedulePortions(loan, testAsOf, 12, 12)
	assert.True(t, principal.IsZero())
	assert.True(t, interest.IsZero())
}

func TestValidateLoan(t *testing.T) {
	good := createLoan("car", "10000", "5", 36, domain.NewDate(2023, 1, 1))
	assert.NoError(t, ValidateLoan(good))

	noTerm := good
	noTerm.LengthInMonths = 0
	assert.ErrorIs(t, ValidateLoan(noTerm), ErrInvalidTerm)

	noStart := good
	noStart.StartDate = domain.Date{}
	assert.ErrorIs(t, ValidateLoan(noStart), ErrMissingStartDate)

	negative := good
	negative.FinancedAmount = dec("-1")
	assert.Error(t, ValidateLoan(negative))
}
