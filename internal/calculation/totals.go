package calculation

import (
	"github.com/ffplan/freedom-planner/internal/domain"
	"github.com/ffplan/freedom-planner/pkg/money"
	"github.com/shopspring/decimal"
)

// debtService is what the household budgets for debt each month. Payments
// redirected from retired debts stay budgeted: the cash is still spent,
// only its destination changed.
func debtService(s domain.FinancialState) decimal.Decimal {
	total := zero
	if s.Property != nil && s.Property.Mortgage != nil {
		total = total.Add(s.Property.Mortgage.MonthlyPayment)
	}
	for _, c := range s.Credit {
		total = total.Add(c.MinimumPayment).Add(c.RedirectedMinimumPayment)
	}
	for _, l := range s.Loans {
		total = total.Add(l.MonthlyPayment).Add(l.RedirectedMonthlyPayment)
	}
	return total
}

// RecalculateTotals rebuilds the income, expense and surplus rollups of a
// state in place. The surplus is a signed figure.
func RecalculateTotals(s *domain.FinancialState) {
	t := &s.Totals

	income := zero
	for _, p := range s.People {
		income = income.Add(p.MonthlyIncome())
	}

	allotments := zero
	for _, inv := range s.Investments {
		allotments = allotments.Add(inv.MonthlyAllotment)
	}
	allotments = money.NonNegative(allotments.Sub(t.MonthlyReductionOnInvestmentAllotment))

	expenses := s.Expenses.Total().Add(debtService(*s)).Add(allotments)
	if s.Property != nil {
		expenses = expenses.Add(s.Property.Expenses.Total())
	}

	t.MonthlyTotalIncome = money.Cents(income)
	t.MonthlyInvestmentAllotment = money.Cents(allotments)
	t.MonthlyTotalExpenses = money.Cents(expenses)
	t.MonthlyPreliminarySurplus = money.Cents(income.Sub(expenses))
	t.MonthlyTotalReduction = money.Cents(t.MonthlyReductionOnReplacedInsurance)
	t.MonthlyFinalSurplus = t.MonthlyPreliminarySurplus.Add(t.MonthlyTotalReduction)
	t.AnnualBudgetAvailable = money.Annual(t.MonthlyFinalSurplus)
}

// BalanceSheet returns total assets, total liabilities and net worth.
// The policy loan and cash value live outside the state and are passed in.
func BalanceSheet(s domain.FinancialState, policyLoan, cashValue decimal.Decimal) (assets, liabilities, netWorth decimal.Decimal) {
	assets = cashValue
	liabilities = policyLoan
	if s.Property != nil {
		assets = assets.Add(s.Property.CurrentValue)
		liabilities = liabilities.Add(mortgageBalance(s.Property)).Add(helocBalance(s.Property))
	}
	for _, inv := range s.Investments {
		assets = assets.Add(inv.Balance)
	}
	liabilities = liabilities.Add(creditBalances(s.Credit)).Add(loanBalances(s.Loans))
	return assets, liabilities, assets.Sub(liabilities)
}

// debtFree reports whether every debt, including the policy loan, is zero.
func debtFree(s domain.FinancialState, policyLoan decimal.Decimal) bool {
	if policyLoan.IsPositive() {
		return false
	}
	if creditBalances(s.Credit).IsPositive() || loanBalances(s.Loans).IsPositive() {
		return false
	}
	return !mortgageBalance(s.Property).IsPositive() && !helocBalance(s.Property).IsPositive()
}

// onlyHelocOwed reports whether the HELOC is the sole outstanding debt.
func onlyHelocOwed(s domain.FinancialState, policyLoan decimal.Decimal) bool {
	if !helocBalance(s.Property).IsPositive() {
		return false
	}
	return !policyLoan.IsPositive() &&
		!mortgageBalance(s.Property).IsPositive() &&
		!creditBalances(s.Credit).IsPositive() &&
		!loanBalances(s.Loans).IsPositive()
}

// onlyPolicyLoanOwed reports whether the policy loan is the sole
// outstanding debt.
func onlyPolicyLoanOwed(s domain.FinancialState, policyLoan decimal.Decimal) bool {
	if !policyLoan.IsPositive() {
		return false
	}
	return debtFree(s, zero)
}
