package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ffplan/freedom-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleVerboseFormatter renders the full year-by-year ledger via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(plan *domain.Plan) ([]byte, error) {
	if plan == nil {
		return nil, errNilPlan
	}
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "DETAILED FINANCIAL FREEDOM PLAN")
	fmt.Fprintln(&buf, "=================================================================================")
	if plan.Name != "" {
		fmt.Fprintf(&buf, "Case:  %s\n", plan.Name)
	}
	fmt.Fprintf(&buf, "As of: %s\n", plan.AsOf)
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(plan.Assumptions) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	if len(plan.Years) == 0 {
		return buf.Bytes(), nil
	}
	writeStartingPosition(&buf, plan.Years[0])

	for _, y := range plan.Years[1:] {
		writeYear(&buf, plan.Secured, y)
	}

	m := AnalyzeMilestones(plan)
	fmt.Fprintln(&buf, "SUMMARY & MILESTONES")
	fmt.Fprintln(&buf, "====================")
	if plan.Exhausted {
		fmt.Fprintf(&buf, "Debt remains after the %d year policy schedule.\n", m.YearsPlanned)
	} else {
		fmt.Fprintf(&buf, "Debt free:               %s\n", FormatYear(m.DebtFreeYear))
	}
	if plan.Secured {
		fmt.Fprintf(&buf, "Mortgage free:           %s\n", FormatYear(m.MortgageFreeYear))
		fmt.Fprintf(&buf, "HELOC free:              %s\n", FormatYear(m.HelocFreeYear))
	}
	fmt.Fprintf(&buf, "Consumer debt free:      %s\n", FormatYear(m.ConsumerDebtFreeYear))
	fmt.Fprintf(&buf, "Total policy loan taken: %s\n", FormatCurrency(m.TotalPolicyLoanTaken))
	fmt.Fprintf(&buf, "Final cash value:        %s\n", FormatCurrency(m.FinalCashValue))
	if saved, ok := m.YearsSaved(); ok {
		fmt.Fprintf(&buf, "Regular payments:        %s (%d years saved)\n", FormatYear(m.RegularDebtFreeYear), saved)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "%-35s %15s %15s %15s\n", "", "START", "END", "DIFFERENCE")
	fmt.Fprintln(&buf, strings.Repeat("-", 83))
	first, final := plan.Years[0].Calculations, plan.Final().Calculations
	cmpLine(&buf, "Total assets", first.StartingAssets, final.EndingAssets)
	cmpLine(&buf, "Total liabilities", first.StartingLiabilities, final.EndingLiabilities)
	cmpLine(&buf, "Net worth", first.StartingNetWorth, final.EndingNetWorth)

	return buf.Bytes(), nil
}

func writeStartingPosition(buf *bytes.Buffer, y domain.PlanYear) {
	fmt.Fprintln(buf, "STARTING POSITION")
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	t := y.Totals
	line(buf, "Monthly income", t.MonthlyTotalIncome)
	line(buf, "Monthly expenses", t.MonthlyTotalExpenses)
	line(buf, "Monthly surplus", t.MonthlyFinalSurplus)
	if y.Property != nil {
		line(buf, "Property value", y.Property.CurrentValue)
		if m := y.Property.Mortgage; m != nil {
			line(buf, "Mortgage balance", m.CurrentBalance)
			line(buf, "Mortgage payment", m.MonthlyPayment)
		}
		if y.Property.Heloc != nil {
			line(buf, "HELOC balance", y.Property.Heloc.Balance)
			line(buf, "HELOC room", y.Property.Heloc.RoomAvailable)
		}
	}
	for _, c := range y.Credit {
		fmt.Fprintf(buf, "  %-33s %15s  @ %s, min %s\n", c.Name, FormatCurrency(c.Balance), FormatPercentage(c.InterestRate), FormatCurrency(c.MinimumPayment))
	}
	for _, l := range y.Loans {
		fmt.Fprintf(buf, "  %-33s %15s  @ %s, pmt %s\n", l.Name, FormatCurrency(l.CurrentBalance), FormatPercentage(l.InterestRate), FormatCurrency(l.MonthlyPayment))
	}
	line(buf, "Net worth", y.Calculations.EndingNetWorth)
	fmt.Fprintln(buf)
}

func writeYear(buf *bytes.Buffer, secured bool, y domain.PlanYear) {
	c := y.Calculations
	fmt.Fprintf(buf, "YEAR %d\n", y.Year)
	fmt.Fprintln(buf, strings.Repeat("=", 50))

	fmt.Fprintln(buf, "PREMIUM:")
	line(buf, "  Premium and deposit", c.PolicyPremiumCost)
	if c.PremiumFundedFromSurplus {
		fmt.Fprintf(buf, "  %-33s %15s\n", "Funded from", "surplus")
	} else {
		line(buf, "  Drawn on HELOC", c.FirstHelocDraw)
	}
	if c.SupplementRequiredForInitialPremium.IsPositive() {
		line(buf, "  Client supplement", c.SupplementRequiredForInitialPremium)
	}

	fmt.Fprintln(buf, "POLICY LOAN:")
	line(buf, "  Available", c.InitialNetPolicyLoanAvailable)
	line(buf, "  Taken", c.AdditionalPolicyLoanTaken)
	if secured {
		line(buf, "  Extra mortgage principal", c.AdditionalMortgagePrincipalPayment)
	}

	fmt.Fprintln(buf, "DEBTS PAID:")
	for _, p := range append(append([]domain.DebtPayment(nil), c.CreditPayments...), c.LoanPayments...) {
		label := "  " + p.Name
		if p.FullyPaid {
			label += " (paid off)"
		}
		line(buf, label, p.Amount)
	}
	line(buf, "  Total", c.TotalDebtPaidThisYear)
	line(buf, "  Redirected so far (annual)", c.TotalAnnualizedDebtPaymentsRedirectedSoFar)
	if secured {
		line(buf, "  Drawn back on HELOC", c.SecondHelocDraw)
	}

	fmt.Fprintln(buf, "REPAYMENT:")
	line(buf, "  Monthly surplus", c.MonthlySurplusBudget)
	line(buf, "  Policy loan interest", c.PolicyLoanInterestThisYear)
	line(buf, "  Policy loan from redirected", c.PolicyLoanRepaidFromRedirectedPayments)
	line(buf, "  Policy loan from surplus", c.PolicyLoanRepaidFromSurplus)
	if secured {
		line(buf, "  HELOC principal paid", c.AnnualizedHelocPrincipalPaid)
		line(buf, "  HELOC interest paid", c.AnnualizedHelocInterestPaid)
	}

	fmt.Fprintln(buf, "END OF YEAR:")
	if secured {
		line(buf, "  Mortgage balance", c.EndingMortgageBalance)
		line(buf, "  HELOC balance", c.EndingHelocBalance)
		line(buf, "  HELOC room", c.EndingHelocRoom)
	}
	line(buf, "  Policy loan balance", c.EndingPolicyLoanBalance)
	line(buf, "  Policy cash value", c.EndingPolicyCashValue)
	line(buf, "  Net worth", c.EndingNetWorth)
	fmt.Fprintln(buf)
}

func line(buf *bytes.Buffer, label string, amount decimal.Decimal) {
	fmt.Fprintf(buf, "%-35s %15s\n", label, FormatCurrency(amount))
}

func cmpLine(buf *bytes.Buffer, label string, start, end decimal.Decimal) {
	diff := end.Sub(start)
	fmt.Fprintf(buf, "%-35s %15s %15s %15s\n", label, FormatCurrency(start), FormatCurrency(end), FormatCurrency(diff))
}
