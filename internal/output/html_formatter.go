package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/ffplan/freedom-planner/internal/domain"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a self-contained HTML report with the ledger table.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/plan.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("plan").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"year": FormatYear,
	"cell": func(col ledgerColumn, c domain.Calculations) decimal.Decimal { return col.value(c) },
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// netWorthPoint feeds the chart script embedded in the report.
type netWorthPoint struct {
	Year     int    `json:"year"`
	NetWorth string `json:"net_worth"`
}

func (h HTMLFormatter) Format(plan *domain.Plan) ([]byte, error) {
	if plan == nil {
		return nil, errNilPlan
	}
	var buf bytes.Buffer

	points := make([]netWorthPoint, 0, len(plan.Years))
	for _, y := range plan.Years {
		points = append(points, netWorthPoint{Year: y.Year, NetWorth: y.Calculations.EndingNetWorth.StringFixed(2)})
	}

	data := struct {
		*domain.Plan
		Milestones  Milestones
		Assumptions []string
		Columns     []ledgerColumn
		Points      []netWorthPoint
	}{plan, AnalyzeMilestones(plan), GenerateAssumptions(plan.Assumptions), ledgerColumns, points}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
