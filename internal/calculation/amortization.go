package calculation

import (
	"sort"
	"time"

	"github.com/ffplan/freedom-planner/internal/domain"
	"github.com/ffplan/freedom-planner/pkg/dateutil"
	"github.com/ffplan/freedom-planner/pkg/money"
	"github.com/shopspring/decimal"
)

var (
	one  = decimal.NewFromInt(1)
	cent = decimal.RequireFromString("0.01")
	zero = decimal.Zero
)

// AmortizationRow is one month of a loan schedule. Amounts are rounded to
// cents; the running balance between rows is carried at full precision and
// the principal is the difference of the rounded balances.
type AmortizationRow struct {
	Month            int             `json:"month"`
	StartBalance     decimal.Decimal `json:"start_balance"`
	InterestPayment  decimal.Decimal `json:"interest_payment"`
	PrincipalPayment decimal.Decimal `json:"principal_payment"`
	EndBalance       decimal.Decimal `json:"end_balance"`
}

// AnnuityPayment is the level monthly payment that retires financed over
// months at annualRate percent. A zero rate falls back to straight-line.
func AnnuityPayment(financed, annualRate decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 || !financed.IsPositive() {
		return zero
	}
	r := money.PercentToMonthlyRate(money.NonNegative(annualRate))
	if r.IsZero() {
		return financed.Div(decimal.NewFromInt(int64(months)))
	}
	factor := money.PowInt(one.Add(r), months)
	return financed.Mul(r).Mul(factor).Div(factor.Sub(one))
}

// contractPayment is the payment a schedule is built with: the loan's own
// payment when set, otherwise the annuity payment rounded up to the cent.
func contractPayment(l domain.Loan) decimal.Decimal {
	if l.MonthlyPayment.IsPositive() {
		return l.MonthlyPayment
	}
	p := AnnuityPayment(money.NonNegative(l.FinancedAmount), l.InterestRate, l.LengthInMonths)
	rounded := p.Round(2)
	if rounded.LessThan(p) {
		rounded = rounded.Add(cent)
	}
	return rounded
}

// Schedule computes the month-by-month amortization of a loan, applying
// extra principal payments at their loan-relative month and stopping early
// once the balance reaches zero. It does not modify l.
func Schedule(l domain.Loan) []AmortizationRow {
	if l.LengthInMonths <= 0 || l.StartDate.IsZero() || !l.FinancedAmount.IsPositive() {
		return nil
	}

	rate := money.PercentToMonthlyRate(money.NonNegative(l.InterestRate))
	payment := contractPayment(l)

	extras := append([]domain.ExtraPrincipalPayment(nil), l.ExtraPrincipalPayments...)
	sort.SliceStable(extras, func(i, j int) bool { return extras[i].Month < extras[j].Month })

	rows := make([]AmortizationRow, 0, l.LengthInMonths)
	balance := l.FinancedAmount
	next := 0
	for month := 1; month <= l.LengthInMonths; month++ {
		interest := balance.Mul(rate)
		principal := payment.Sub(interest)
		end := balance.Sub(principal)

		for next < len(extras) && extras[next].Month < month {
			next++
		}
		for next < len(extras) && extras[next].Month == month {
			amount := money.NonNegative(extras[next].Amount)
			principal = principal.Add(amount)
			end = end.Sub(amount)
			next++
		}

		// Anything that would leave less than half a cent owing is payoff.
		if end.Round(2).Sign() <= 0 {
			principal = principal.Add(end)
			end = zero
		}

		// Principal is taken between the rounded balances so the column
		// always sums to the amount financed.
		rows = append(rows, AmortizationRow{
			Month:            month,
			StartBalance:     balance.Round(2),
			InterestPayment:  interest.Round(2),
			PrincipalPayment: balance.Round(2).Sub(end.Round(2)),
			EndBalance:       end.Round(2),
		})
		if end.IsZero() {
			break
		}
		balance = end
	}
	return rows
}

// MonthInLoan is the number of months elapsed from the loan's start to
// asOf, shifted by offset. It never goes below zero.
func MonthInLoan(start domain.Date, asOf time.Time, offset int) int {
	if start.IsZero() {
		return 0
	}
	m := dateutil.CalendarMonthsBetween(start.Time, asOf) + offset
	if m < 0 {
		return 0
	}
	return m
}

// BalanceAt returns the loan balance offset months from asOf: the end
// balance of the schedule row at that index, or zero once past the term.
func BalanceAt(l domain.Loan, asOf time.Time, offset int) decimal.Decimal {
	k := MonthInLoan(l.StartDate, asOf, offset)
	if k >= l.LengthInMonths {
		return zero
	}
	rows := Schedule(l)
	if k >= len(rows) {
		return zero
	}
	return rows[k].EndBalance
}

// MonthlyPaymentAt returns the regular payment due offset months from asOf.
// The final month's payment is only what is left to retire the loan, and
// nothing is due once the schedule has ended.
func MonthlyPaymentAt(l domain.Loan, asOf time.Time, offset int) decimal.Decimal {
	rows := Schedule(l)
	k := MonthInLoan(l.StartDate, asOf, offset)
	if k >= len(rows) {
		return zero
	}
	return regularPayment(rows[k], contractPayment(l))
}

func regularPayment(row AmortizationRow, payment decimal.Decimal) decimal.Decimal {
	return money.Min(payment, row.StartBalance.Add(row.InterestPayment)).Round(2)
}

// SchedulePortions sums the principal and interest carried by the next
// months regular payments, starting offset months from asOf. One-off extra
// payments are excluded.
func SchedulePortions(l domain.Loan, asOf time.Time, offset, months int) (principal, interest decimal.Decimal) {
	principal, interest = zero, zero
	rows := Schedule(l)
	payment := contractPayment(l)
	start := MonthInLoan(l.StartDate, asOf, offset)
	for i := start; i < len(rows) && i < start+months; i++ {
		p := regularPayment(rows[i], payment)
		principal = principal.Add(p.Sub(rows[i].InterestPayment))
		interest = interest.Add(rows[i].InterestPayment)
	}
	return principal, interest
}
