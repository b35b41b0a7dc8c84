package calculation

import (
	"time"

	"github.com/ffplan/freedom-planner/internal/domain"
)

// RegularPayoffYear is the plan year in which l would be retired on its
// contract payments alone, counting from asOf the way the engine does:
// year Y ends 12*Y months after asOf. ok is false when the loan has no
// schedule.
func RegularPayoffYear(l domain.Loan, asOf time.Time) (year int, ok bool) {
	rows := Schedule(l)
	if len(rows) == 0 {
		return 0, false
	}
	remaining := len(rows) - 1 - MonthInLoan(l.StartDate, asOf, 0)
	if remaining <= 0 {
		return 0, true
	}
	return (remaining + 11) / 12, true
}

// RegularDebtFreeYear is the latest RegularPayoffYear across the mortgage
// and installment loans of state. Revolving credit has no term and is left
// out. ok is false when nothing in state amortizes.
func RegularDebtFreeYear(state domain.FinancialState, asOf time.Time) (year int, ok bool) {
	consider := func(l domain.Loan) {
		if y, has := RegularPayoffYear(l, asOf); has {
			ok = true
			if y > year {
				year = y
			}
		}
	}
	if state.Property != nil && state.Property.Mortgage != nil {
		consider(*state.Property.Mortgage)
	}
	for _, l := range state.Loans {
		consider(l)
	}
	return year, ok
}
