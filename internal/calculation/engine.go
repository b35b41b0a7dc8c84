package calculation

import (
	"fmt"
	"time"

	"github.com/ffplan/freedom-planner/internal/domain"
	"github.com/ffplan/freedom-planner/internal/policy"
)

// PlanEngine builds year-by-year debt freedom plans.
type PlanEngine struct {
	Assumptions domain.Assumptions
	Debug       bool // log every step of every year
	Logger      Logger
	now         func() time.Time
}

// PlanOptions tune a single plan run.
type PlanOptions struct {
	Name string
	// Supplement allows a first-year premium larger than the HELOC room to
	// be part-funded by the client.
	Supplement bool
}

// NewPlanEngine creates an engine with the default assumptions
func NewPlanEngine() *PlanEngine {
	return NewPlanEngineWithAssumptions(domain.DefaultAssumptions())
}

// NewPlanEngineWithAssumptions creates an engine with explicit assumptions
func NewPlanEngineWithAssumptions(a domain.Assumptions) *PlanEngine {
	return &PlanEngine{
		Assumptions: a,
		Logger:      NopLogger{},
		now:         time.Now,
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (pe *PlanEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// SetClock replaces the clock used when no as-of date is configured.
func (pe *PlanEngine) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	pe.now = now
}

// RunCase plans a loaded case. The case's own assumptions override the
// engine's, and multiple policies are combined into one schedule when no
// pre-combined schedule is given.
func (pe *PlanEngine) RunCase(c *domain.Case) (*domain.Plan, error) {
	if c == nil {
		return nil, fmt.Errorf("case is nil")
	}
	schedule := c.PolicySchedule
	if len(schedule) == 0 {
		schedule = policy.Combine(c.Policies)
	}

	engine := *pe
	engine.Assumptions = pe.Assumptions.Apply(c.Assumptions)

	plan, err := engine.BuildPlan(c.FinancialState, schedule, PlanOptions{Name: c.Name, Supplement: c.Supplement})
	if err != nil {
		return nil, fmt.Errorf("failed to plan case %q: %w", c.Name, err)
	}
	return plan, nil
}

// BuildPlan simulates state against the policy schedule. Year 0 of the
// result is the prepared input; each later year is derived from the one
// before it until every debt is paid or the schedule runs out.
func (pe *PlanEngine) BuildPlan(state domain.FinancialState, schedule []domain.PolicyYear, opts PlanOptions) (*domain.Plan, error) {
	if len(schedule) == 0 {
		return nil, ErrEmptyPolicySchedule
	}
	if state.Property != nil && state.Property.Mortgage == nil {
		return nil, fmt.Errorf("property %q: %w", state.Property.Name, ErrMissingMortgage)
	}

	logger := pe.Logger
	if logger == nil {
		logger = NopLogger{}
	}
	now := pe.now
	if now == nil {
		now = time.Now
	}
	asOf := pe.Assumptions.AsOfOr(now())

	sim := &simulator{
		assumptions: pe.Assumptions,
		factors:     FactorsFrom(pe.Assumptions),
		schedule:    schedule,
		asOf:        asOf,
		supplement:  opts.Supplement,
		debug:       pe.Debug,
		log:         logger,
	}

	plan := &domain.Plan{
		Name:        opts.Name,
		AsOf:        domain.Date{Time: asOf},
		Secured:     state.Property != nil,
		Assumptions: pe.Assumptions,
	}
	plan.Years = append(plan.Years, sim.prepare(state))

	// The schedule length bounds the loop whatever the balances do.
	for year := 1; year <= len(schedule); year++ {
		prev := plan.Years[len(plan.Years)-1]
		if debtFree(prev.FinancialState, prev.Calculations.EndingPolicyLoanBalance) {
			break
		}
		plan.Years = append(plan.Years, sim.simulateYear(prev, year))
	}

	final := plan.Final()
	plan.Exhausted = !debtFree(final.FinancialState, final.Calculations.EndingPolicyLoanBalance)
	if plan.Exhausted {
		logger.Warnf("policy schedule exhausted after %d years with debt outstanding", final.Year)
	} else {
		logger.Infof("debt free in year %d", final.Year)
	}
	return plan, nil
}
