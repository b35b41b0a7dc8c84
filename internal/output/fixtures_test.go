package output

import (
	"github.com/ffplan/freedom-planner/internal/domain"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type yearFixture struct {
	year                                   int
	mortgage, heloc, credit, policyLoan    string
	cash, taken, netWorth, surplus, assets string
}

func (f yearFixture) build() domain.PlanYear {
	liabilities := d(f.mortgage).Add(d(f.heloc)).Add(d(f.credit)).Add(d(f.policyLoan))
	return domain.PlanYear{
		Year: f.year,
		FinancialState: domain.FinancialState{
			Property: &domain.Property{
				Name:         "Home",
				CurrentValue: d("500000"),
				Mortgage:     &domain.Loan{Name: "Mortgage", CurrentBalance: d(f.mortgage)},
				Heloc:        &domain.Heloc{Balance: d(f.heloc)},
			},
			Credit: []domain.Credit{{Name: "Visa", Balance: d(f.credit)}},
		},
		Calculations: domain.Calculations{
			EndingMortgageBalance:     d(f.mortgage),
			EndingHelocBalance:        d(f.heloc),
			EndingPolicyLoanBalance:   d(f.policyLoan),
			EndingPolicyCashValue:     d(f.cash),
			AdditionalPolicyLoanTaken: d(f.taken),
			MonthlySurplusBudget:      d(f.surplus),
			EndingAssets:              d(f.assets),
			EndingLiabilities:         liabilities,
			EndingNetWorth:            d(f.netWorth),
		},
	}
}

// buildTestPlan is a hand-made three year plan that clears every debt by
// year 2.
func buildTestPlan() *domain.Plan {
	years := []domain.PlanYear{
		yearFixture{0, "100000", "0", "5000", "0", "0", "0", "400000", "3000", "505000"}.build(),
		yearFixture{1, "60000", "20000", "0", "10000", "30000", "30000", "440000", "3500", "530000"}.build(),
		yearFixture{2, "0", "0", "0", "0", "60000", "40000", "560000", "5000", "560000"}.build(),
	}
	years[0].Calculations.StartingNetWorth = d("400000")
	years[0].Calculations.StartingAssets = d("505000")
	years[0].Calculations.StartingLiabilities = d("105000")
	return &domain.Plan{
		Name:        "Test Case",
		AsOf:        domain.NewDate(2024, 1, 1),
		Secured:     true,
		Assumptions: domain.DefaultAssumptions(),
		Years:       years,
	}
}
