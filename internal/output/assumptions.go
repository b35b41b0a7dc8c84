package output

import (
	"fmt"

	"github.com/ffplan/freedom-planner/internal/domain"
)

// GenerateAssumptions lists the assumptions a plan ran with.
func GenerateAssumptions(a domain.Assumptions) []string {
	return []string{
		fmt.Sprintf("Income growth: %s%% annually (unless set per person)", a.IncomeGrowthRate.String()),
		fmt.Sprintf("Investment growth: %s%% annually (unless set per account)", a.InvestmentGrowthRate.String()),
		fmt.Sprintf("Policy loan interest: %s%% annually (unless set in totals)", a.PolicyLoanInterestRate.String()),
		fmt.Sprintf("Policy loan limit: year one %s of deposit, later %s of cash value and %s of deposit",
			a.PolicyLoanFactorYearOne.String(), a.PolicyLoanFactorCashValue.String(), a.PolicyLoanFactorDeposit.String()),
		fmt.Sprintf("Minimum HELOC equity: %s of property value", a.MinimumHelocEquity.String()),
	}
}
