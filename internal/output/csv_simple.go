package output

import (
	"bytes"
	"encoding/csv"

	"github.com/ffplan/freedom-planner/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per plan).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "summary-csv" }

func (c CSVSummarizer) Format(plan *domain.Plan) ([]byte, error) {
	if plan == nil {
		return nil, errNilPlan
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Case", "AsOf", "YearsPlanned", "Exhausted", "DebtFreeYear", "MortgageFreeYear", "HelocFreeYear", "ConsumerDebtFreeYear", "TotalPolicyLoanTaken", "FinalCashValue", "StartingNetWorth", "FinalNetWorth"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	m := AnalyzeMilestones(plan)
	row := []string{
		plan.Name,
		plan.AsOf.String(),
		intToString(m.YearsPlanned),
		boolToString(plan.Exhausted),
		intToString(m.DebtFreeYear),
		intToString(m.MortgageFreeYear),
		intToString(m.HelocFreeYear),
		intToString(m.ConsumerDebtFreeYear),
		m.TotalPolicyLoanTaken.StringFixed(2),
		m.FinalCashValue.StringFixed(2),
		m.StartingNetWorth.StringFixed(2),
		m.FinalNetWorth.StringFixed(2),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
