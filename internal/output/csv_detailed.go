package output

import (
	"bytes"
	"encoding/csv"

	"github.com/ffplan/freedom-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// ledgerColumn is one money column of the year-by-year ledger.
type ledgerColumn struct {
	header string
	value  func(c domain.Calculations) decimal.Decimal
}

func (c ledgerColumn) Header() string { return c.header }

var ledgerColumns = []ledgerColumn{
	{"StartingNetWorth", func(c domain.Calculations) decimal.Decimal { return c.StartingNetWorth }},
	{"PremiumAndDeposit", func(c domain.Calculations) decimal.Decimal { return c.PolicyPremiumCost }},
	{"FirstHelocDraw", func(c domain.Calculations) decimal.Decimal { return c.FirstHelocDraw }},
	{"SupplementRequired", func(c domain.Calculations) decimal.Decimal { return c.SupplementRequiredForInitialPremium }},
	{"PolicyLoanAvailable", func(c domain.Calculations) decimal.Decimal { return c.InitialNetPolicyLoanAvailable }},
	{"PolicyLoanTaken", func(c domain.Calculations) decimal.Decimal { return c.AdditionalPolicyLoanTaken }},
	{"ExtraMortgagePrincipal", func(c domain.Calculations) decimal.Decimal { return c.AdditionalMortgagePrincipalPayment }},
	{"DebtPaid", func(c domain.Calculations) decimal.Decimal { return c.TotalDebtPaidThisYear }},
	{"SecondHelocDraw", func(c domain.Calculations) decimal.Decimal { return c.SecondHelocDraw }},
	{"RedirectedSoFarAnnual", func(c domain.Calculations) decimal.Decimal { return c.TotalAnnualizedDebtPaymentsRedirectedSoFar }},
	{"MonthlySurplus", func(c domain.Calculations) decimal.Decimal { return c.MonthlySurplusBudget }},
	{"PolicyLoanInterest", func(c domain.Calculations) decimal.Decimal { return c.PolicyLoanInterestThisYear }},
	{"HelocPrincipalPaid", func(c domain.Calculations) decimal.Decimal { return c.AnnualizedHelocPrincipalPaid }},
	{"HelocInterestPaid", func(c domain.Calculations) decimal.Decimal { return c.AnnualizedHelocInterestPaid }},
	{"EndingMortgage", func(c domain.Calculations) decimal.Decimal { return c.EndingMortgageBalance }},
	{"EndingHeloc", func(c domain.Calculations) decimal.Decimal { return c.EndingHelocBalance }},
	{"EndingPolicyLoan", func(c domain.Calculations) decimal.Decimal { return c.EndingPolicyLoanBalance }},
	{"PolicyCashValue", func(c domain.Calculations) decimal.Decimal { return c.EndingPolicyCashValue }},
	{"EndingAssets", func(c domain.Calculations) decimal.Decimal { return c.EndingAssets }},
	{"EndingLiabilities", func(c domain.Calculations) decimal.Decimal { return c.EndingLiabilities }},
	{"EndingNetWorth", func(c domain.Calculations) decimal.Decimal { return c.EndingNetWorth }},
}

// CSVLedgerFormatter exports one row per plan year, year 0 included.
type CSVLedgerFormatter struct{}

func (c CSVLedgerFormatter) Name() string { return "csv" }

func (c CSVLedgerFormatter) Format(plan *domain.Plan) ([]byte, error) {
	if plan == nil {
		return nil, errNilPlan
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year"}
	for _, col := range ledgerColumns {
		header = append(header, col.header)
	}
	header = append(header, "PremiumFromSurplus")
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, y := range plan.Years {
		row := []string{intToString(y.Year)}
		for _, col := range ledgerColumns {
			row = append(row, col.value(y.Calculations).StringFixed(2))
		}
		row = append(row, boolToString(y.Calculations.PremiumFundedFromSurplus))
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
