package output

import (
	"github.com/ffplan/freedom-planner/internal/calculation"
	"github.com/ffplan/freedom-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// NotReached marks a milestone the plan never reaches.
const NotReached = -1

// Milestones summarize when a plan clears each kind of debt and where it
// leaves the household.
type Milestones struct {
	YearsPlanned         int
	MortgageFreeYear     int
	HelocFreeYear        int
	ConsumerDebtFreeYear int
	DebtFreeYear         int
	// RegularDebtFreeYear is when the amortizing debts would clear on their
	// contract payments alone.
	RegularDebtFreeYear  int
	TotalPolicyLoanTaken decimal.Decimal
	FinalCashValue       decimal.Decimal
	StartingNetWorth     decimal.Decimal
	FinalNetWorth        decimal.Decimal
	NetWorthChange       decimal.Decimal
	// MonthlySurplus is the monthly budget each year had to repay with,
	// indexed by plan year.
	MonthlySurplus []decimal.Decimal
}

// AnalyzeMilestones walks a plan and finds the first year from which each
// balance stays at zero through the end of the plan.
func AnalyzeMilestones(plan *domain.Plan) Milestones {
	m := Milestones{
		MortgageFreeYear:     NotReached,
		HelocFreeYear:        NotReached,
		ConsumerDebtFreeYear: NotReached,
		DebtFreeYear:         NotReached,
		RegularDebtFreeYear:  NotReached,
		TotalPolicyLoanTaken: decimal.Zero,
	}
	if plan == nil || len(plan.Years) == 0 {
		return m
	}

	for _, y := range plan.Years {
		m.TotalPolicyLoanTaken = m.TotalPolicyLoanTaken.Add(y.Calculations.AdditionalPolicyLoanTaken)
		m.MonthlySurplus = append(m.MonthlySurplus, y.Calculations.MonthlySurplusBudget)
	}

	first, final := plan.Years[0], plan.Final()
	m.YearsPlanned = final.Year
	m.FinalCashValue = final.Calculations.EndingPolicyCashValue
	m.StartingNetWorth = first.Calculations.StartingNetWorth
	m.FinalNetWorth = final.Calculations.EndingNetWorth
	m.NetWorthChange = m.FinalNetWorth.Sub(m.StartingNetWorth)
	if y, ok := calculation.RegularDebtFreeYear(first.FinancialState, plan.AsOf.Time); ok {
		m.RegularDebtFreeYear = y
	}

	if plan.Secured {
		m.MortgageFreeYear = clearedFrom(plan.Years, func(y domain.PlanYear) decimal.Decimal {
			return y.Calculations.EndingMortgageBalance
		})
		m.HelocFreeYear = clearedFrom(plan.Years, func(y domain.PlanYear) decimal.Decimal {
			return y.Calculations.EndingHelocBalance
		})
	}
	m.ConsumerDebtFreeYear = clearedFrom(plan.Years, consumerDebt)
	m.DebtFreeYear = clearedFrom(plan.Years, func(y domain.PlanYear) decimal.Decimal {
		return y.Calculations.EndingLiabilities
	})
	return m
}

// YearsSaved is how many years sooner the plan clears the amortizing debts
// than regular payments would. ok is false when either year is unknown.
func (m Milestones) YearsSaved() (years int, ok bool) {
	if m.DebtFreeYear == NotReached || m.RegularDebtFreeYear == NotReached {
		return 0, false
	}
	return m.RegularDebtFreeYear - m.DebtFreeYear, true
}

func consumerDebt(y domain.PlanYear) decimal.Decimal {
	total := decimal.Zero
	for _, c := range y.Credit {
		total = total.Add(c.Balance)
	}
	for _, l := range y.Loans {
		total = total.Add(l.CurrentBalance)
	}
	return total
}

// clearedFrom returns the earliest year after which balance is never
// positive again, or NotReached.
func clearedFrom(years []domain.PlanYear, balance func(domain.PlanYear) decimal.Decimal) int {
	found := NotReached
	for i := len(years) - 1; i >= 0; i-- {
		if balance(years[i]).IsPositive() {
			break
		}
		found = years[i].Year
	}
	return found
}
