package ppssp

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// GroupTuple controls one round of constraint generation: groups of Size
// members are formed until roughly Proportion of all projects is covered.
type GroupTuple struct {
	Size       int
	Proportion float64
}

// InstanceParameters specifies the configuration of a generated problem instance.
type InstanceParameters struct {
	NumProjects          int
	PlanningWindow       int
	BaseBudget           float64
	YearlyBudgetIncrease float64

	InitiationMaxProportion float64
	OngoingMaxProportion    float64

	PrerequisiteTuples []GroupTuple
	ExclusionTuples    []GroupTuple
	SynergyTuples      []GroupTuple

	DiscountRate float64

	// CostDuration overrides the log-normal sampling parameters. Nil selects
	// the defaults derived from the 2016 IIP data.
	CostDuration *CostDurationParams

	// ValueDist draws the per-period component of a project's total value.
	// Nil selects a discrete uniform distribution over {1, 2, 3, 4}.
	ValueDist distuv.Rander
	// ValueFactor scales the cost-correlated component of a project's total
	// value. Zero selects the default of 2.
	ValueFactor float64
}

// NewInstanceParameters returns parameters for the given instance size with
// all optional fields at their defaults.
func NewInstanceParameters(numProjects, planningWindow int, baseBudget, yearlyIncrease float64) *InstanceParameters {
	return &InstanceParameters{
		NumProjects:             numProjects,
		PlanningWindow:          planningWindow,
		BaseBudget:              baseBudget,
		YearlyBudgetIncrease:    yearlyIncrease,
		InitiationMaxProportion: 0.25,
		OngoingMaxProportion:    0.75,
		ValueFactor:             2,
	}
}

func (p *InstanceParameters) Validate() error {
	if p.NumProjects < 1 {
		return fmt.Errorf("num projects must be >= 1 (got %d)", p.NumProjects)
	}
	if p.PlanningWindow < 1 {
		return fmt.Errorf("planning window must be >= 1 (got %d)", p.PlanningWindow)
	}
	if p.InitiationMaxProportion < 0 || p.OngoingMaxProportion < 0 {
		return fmt.Errorf("budget proportions must be >= 0 (got %f, %f)",
			p.InitiationMaxProportion, p.OngoingMaxProportion)
	}
	if p.ValueFactor < 0 {
		return fmt.Errorf("value factor must be >= 0 (got %f)", p.ValueFactor)
	}
	for _, tuples := range [][]GroupTuple{p.PrerequisiteTuples, p.ExclusionTuples, p.SynergyTuples} {
		for _, t := range tuples {
			if t.Size < 2 {
				return fmt.Errorf("constraint group size must be >= 2 (got %d)", t.Size)
			}
			if t.Proportion < 0 || t.Proportion > 1 {
				return fmt.Errorf("constraint group proportion must be in [0, 1] (got %f)", t.Proportion)
			}
		}
	}
	return nil
}

func (p *InstanceParameters) valueFactor() float64 {
	if p.ValueFactor == 0 {
		return 2
	}
	return p.ValueFactor
}

func (p *InstanceParameters) costDuration() CostDurationParams {
	if p.CostDuration != nil {
		return *p.CostDuration
	}
	return DefaultCostDurationParams()
}
