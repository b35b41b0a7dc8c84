package output

import (
	"github.com/ffplan/freedom-planner/internal/domain"
	"github.com/goccy/go-json"
)

// JSONFormatter serializes the plan as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(plan *domain.Plan) ([]byte, error) {
	if plan == nil {
		return nil, errNilPlan
	}
	return json.MarshalIndent(plan, "", "  ")
}
