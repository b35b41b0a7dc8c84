package calculation

import (
	"time"

	"github.com/ffplan/freedom-planner/internal/domain"
	"github.com/ffplan/freedom-planner/pkg/money"
	"github.com/shopspring/decimal"
)

// MinimumPayment is the interest-only minimum on a revolving balance.
func MinimumPayment(c domain.Credit) decimal.Decimal {
	return money.NonNegative(c.Balance).Mul(money.PercentToMonthlyRate(money.NonNegative(c.InterestRate)))
}

// prepareLoan normalizes a loan before the first simulated year: it fixes
// the contract payment, records it as the initial payment and brings the
// balance up to asOf.
func prepareLoan(l *domain.Loan, asOf time.Time) {
	l.FinancedAmount = money.NonNegative(l.FinancedAmount)
	l.InterestRate = money.NonNegative(l.InterestRate)
	if !l.FullyPaid {
		l.MonthlyPayment = contractPayment(*l)
	}
	if !l.InitialMonthlyPayment.IsPositive() {
		l.InitialMonthlyPayment = l.MonthlyPayment
	}
	refreshLoan(l, asOf, 0)
}

// refreshLoan recomputes the balance of an amortizing loan offset months
// from asOf. A loan whose balance reaches zero is marked paid and stops
// carrying a payment.
func refreshLoan(l *domain.Loan, asOf time.Time, offset int) {
	if l.FullyPaid {
		l.CurrentBalance = zero
		l.MonthlyPayment = zero
		return
	}
	l.CurrentBalance = BalanceAt(*l, asOf, offset)
	if !l.CurrentBalance.IsPositive() {
		markLoanPaid(l)
	}
}

// payLoan inserts a one-off principal payment at the loan's current month
// and recomputes its balance. It returns the amount actually applied.
func payLoan(l *domain.Loan, amount decimal.Decimal, asOf time.Time, offset int) decimal.Decimal {
	amount = money.Min(money.NonNegative(amount), l.CurrentBalance)
	if !amount.IsPositive() {
		return zero
	}
	l.ExtraPrincipalPayments = append(l.ExtraPrincipalPayments, domain.ExtraPrincipalPayment{
		Month:  MonthInLoan(l.StartDate, asOf, offset) + 1,
		Amount: amount,
	})
	shortenTerm(l)
	l.CurrentBalance = BalanceAt(*l, asOf, offset)
	if !l.CurrentBalance.IsPositive() {
		markLoanPaid(l)
	}
	return amount
}

// shortenTerm trims the nominal term to the schedule length once extra
// payments retire the loan early.
func shortenTerm(l *domain.Loan) {
	rows := Schedule(*l)
	if len(rows) == 0 || len(rows) >= l.LengthInMonths {
		return
	}
	if rows[len(rows)-1].EndBalance.IsZero() {
		l.LengthInMonths = len(rows)
	}
}

func markLoanPaid(l *domain.Loan) {
	l.CurrentBalance = zero
	l.MonthlyPayment = zero
	l.FullyPaid = true
}

// refreshCredit recomputes the minimum payment of a revolving balance.
func refreshCredit(c *domain.Credit) {
	c.Balance = money.NonNegative(c.Balance)
	if c.Balance.IsZero() {
		c.MinimumPayment = zero
		c.FullyPaid = true
		return
	}
	c.MinimumPayment = money.Cents(MinimumPayment(*c))
}

func creditBalances(credit []domain.Credit) decimal.Decimal {
	total := zero
	for _, c := range credit {
		total = total.Add(c.Balance)
	}
	return total
}

func loanBalances(loans []domain.Loan) decimal.Decimal {
	total := zero
	for _, l := range loans {
		total = total.Add(l.CurrentBalance)
	}
	return total
}
