package calculation

import (
	"sort"
	"time"

	"github.com/ffplan/freedom-planner/internal/domain"
	"github.com/ffplan/freedom-planner/pkg/money"
	"github.com/shopspring/decimal"
)

// WaterfallResult summarizes one pass of freed funds over the consumer debts.
type WaterfallResult struct {
	Remaining      decimal.Decimal
	CreditPaid     decimal.Decimal
	LoanPaid       decimal.Decimal
	CreditPayments []domain.DebtPayment
	LoanPayments   []domain.DebtPayment
	// Monthly payments redirected by the debts touched in this pass.
	CreditRedirected decimal.Decimal
	LoanRedirected   decimal.Decimal
}

// Paid is the total applied to credit and loans.
func (r WaterfallResult) Paid() decimal.Decimal {
	return r.CreditPaid.Add(r.LoanPaid)
}

// byRateDesc returns indexes ordered by descending rate. Ties keep their
// input order.
func byRateDesc(n int, rate func(int) decimal.Decimal) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return rate(order[a]).GreaterThan(rate(order[b]))
	})
	return order
}

// PayDownDebts applies funds to revolving credit and then to installment
// loans, highest rate first within each type, retiring each debt before
// moving to the next. Loans are paid as one-off extra principal at their
// current month, offset months from asOf. Debts are updated in place and
// keep their order; the redirected payment of every debt touched is
// recorded on it.
func PayDownDebts(funds decimal.Decimal, credit []domain.Credit, loans []domain.Loan, asOf time.Time, offset int) WaterfallResult {
	res := WaterfallResult{Remaining: money.NonNegative(funds), CreditPaid: zero, LoanPaid: zero, CreditRedirected: zero, LoanRedirected: zero}

	for _, i := range byRateDesc(len(credit), func(i int) decimal.Decimal { return credit[i].InterestRate }) {
		c := &credit[i]
		if !res.Remaining.IsPositive() {
			break
		}
		if !c.Balance.IsPositive() {
			continue
		}
		pay := money.Min(res.Remaining, c.Balance)
		c.Balance = c.Balance.Sub(pay)
		refreshCredit(c)
		c.RedirectedMinimumPayment = money.NonNegative(c.InitialMinimumPayment.Sub(c.MinimumPayment))

		res.CreditRedirected = res.CreditRedirected.Add(c.RedirectedMinimumPayment)
		res.CreditPaid = res.CreditPaid.Add(pay)
		res.CreditPayments = append(res.CreditPayments, domain.DebtPayment{Name: c.Name, Amount: pay, FullyPaid: c.FullyPaid})
		res.Remaining = res.Remaining.Sub(pay)
	}

	for _, i := range byRateDesc(len(loans), func(i int) decimal.Decimal { return loans[i].InterestRate }) {
		l := &loans[i]
		if !res.Remaining.IsPositive() {
			break
		}
		if !l.CurrentBalance.IsPositive() {
			continue
		}
		pay := payLoan(l, res.Remaining, asOf, offset)
		l.RedirectedMonthlyPayment = money.NonNegative(l.InitialMonthlyPayment.Sub(l.MonthlyPayment))

		res.LoanRedirected = res.LoanRedirected.Add(l.RedirectedMonthlyPayment)
		res.LoanPaid = res.LoanPaid.Add(pay)
		res.LoanPayments = append(res.LoanPayments, domain.DebtPayment{Name: l.Name, Amount: pay, FullyPaid: l.FullyPaid})
		res.Remaining = res.Remaining.Sub(pay)
	}

	return res
}

// RedirectedSoFar sums the monthly payments every debt has redirected
// since the plan began.
func RedirectedSoFar(credit []domain.Credit, loans []domain.Loan) (creditMonthly, loanMonthly decimal.Decimal) {
	creditMonthly, loanMonthly = zero, zero
	for _, c := range credit {
		creditMonthly = creditMonthly.Add(c.RedirectedMinimumPayment)
	}
	for _, l := range loans {
		loanMonthly = loanMonthly.Add(l.RedirectedMonthlyPayment)
	}
	return creditMonthly, loanMonthly
}
