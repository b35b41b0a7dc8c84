package output

import (
	"bytes"
	"fmt"

	"github.com/ffplan/freedom-planner/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(plan *domain.Plan) ([]byte, error) {
	if plan == nil {
		return nil, errNilPlan
	}
	var buf bytes.Buffer
	m := AnalyzeMilestones(plan)

	fmt.Fprintln(&buf, "FREEDOM PLAN SUMMARY")
	fmt.Fprintln(&buf, "================================")
	if plan.Name != "" {
		fmt.Fprintf(&buf, "Case: %s\n", plan.Name)
	}
	fmt.Fprintf(&buf, "As of: %s\n", plan.AsOf)
	fmt.Fprintf(&buf, "Years planned: %d\n", m.YearsPlanned)
	if plan.Exhausted {
		fmt.Fprintln(&buf, "Debt free: not within the policy schedule")
	} else {
		fmt.Fprintf(&buf, "Debt free: %s\n", FormatYear(m.DebtFreeYear))
	}
	if plan.Secured {
		fmt.Fprintf(&buf, "Mortgage free: %s\n", FormatYear(m.MortgageFreeYear))
		fmt.Fprintf(&buf, "HELOC free: %s\n", FormatYear(m.HelocFreeYear))
	}
	fmt.Fprintf(&buf, "Consumer debt free: %s\n", FormatYear(m.ConsumerDebtFreeYear))
	fmt.Fprintf(&buf, "Total policy loan taken: %s\n", FormatCurrency(m.TotalPolicyLoanTaken))
	fmt.Fprintf(&buf, "Final policy cash value: %s\n", FormatCurrency(m.FinalCashValue))
	fmt.Fprintf(&buf, "Final net worth: %s (Δ %s)\n", FormatCurrency(m.FinalNetWorth), FormatCurrency(m.NetWorthChange))
	fmt.Fprintln(&buf)

	for _, y := range plan.Years {
		if y.Year == 0 {
			continue
		}
		c := y.Calculations
		fmt.Fprintf(&buf, "Year %d: NetWorth=%s Surplus=%s/mo PolicyLoan=%s\n",
			y.Year,
			FormatCurrency(c.EndingNetWorth),
			FormatCurrency(c.MonthlySurplusBudget),
			FormatCurrency(c.EndingPolicyLoanBalance),
		)
	}
	return buf.Bytes(), nil
}
