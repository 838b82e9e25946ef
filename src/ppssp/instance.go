package ppssp

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Generate builds the random project set and its synergy groups from an
// explicit random source. Callers wanting the full instance aggregate use
// GenerateInstance; this entry point exists for tests and for callers that
// manage budget schedules themselves.
func Generate(params *InstanceParameters, src rand.Source) ([]*Project, []*Synergy, error) {
	if err := params.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid instance parameters: %w", err)
	}

	pairs, err := SampleCostDurations(params.NumProjects, params.costDuration(), src)
	if err != nil {
		return nil, nil, err
	}

	valueDist := params.ValueDist
	if valueDist == nil {
		valueDist = NewDiscreteUniform(1, 4, src)
	}

	projects := make([]*Project, params.NumProjects)
	for i := range params.NumProjects {
		duration, totalCost := pairs[i][0], pairs[i][1]
		if duration < 1 {
			return nil, nil, fmt.Errorf("%w: project %d sampled duration %d", ErrNonPositiveDuration, i+1, duration)
		}

		cost := fuzzyWeibullSpread(float64(totalCost), duration, src)

		// Rounding the total before spreading keeps the per-period values
		// summing exactly to it.
		totalValue := math.Round(randomProjectValue(float64(totalCost), duration, valueDist, params.valueFactor(), src))
		value := fuzzyWeibullSpread(totalValue, duration, src)

		projects[i] = newProject(i+1, duration, cost, value, float64(totalCost), totalValue)
	}

	synergies, err := newConstraintGenerator(projects, rand.New(src)).run(
		params.PrerequisiteTuples, params.ExclusionTuples, params.SynergyTuples)
	if err != nil {
		return nil, nil, err
	}
	return projects, synergies, nil
}

// GenerateInstance generates a complete problem instance from the given
// parameters and seed. Identical seed and parameters produce an identical
// instance; concurrent generations must not share a seed-derived source, so
// each call constructs its own.
func GenerateInstance(params *InstanceParameters, seed int64, identifier string) (*ProjectProblemInstance, error) {
	src := rand.NewPCG(uint64(seed), uint64(seed))
	projects, synergies, err := Generate(params, src)
	if err != nil {
		return nil, err
	}

	maxLength := 0
	for _, p := range projects {
		maxLength = max(maxLength, p.Duration)
	}

	// The budget window extends past the planning window so the longest
	// project stays funded even when it starts in the final period.
	budget := buildBudgetSchedule(params.PlanningWindow+maxLength, params.BaseBudget, params.YearlyBudgetIncrease)

	if identifier == "" {
		identifier = "Instance"
	}

	return &ProjectProblemInstance{
		Projects:         projects,
		Synergies:        synergies,
		Budget:           budget,
		InitiationBudget: scaleBudget(budget, params.InitiationMaxProportion),
		OngoingBudget:    scaleBudget(budget, params.OngoingMaxProportion),
		PlanningWindow:   params.PlanningWindow,
		BudgetWindow:     len(budget),
		NumProjects:      len(projects),
		MaxProjectLength: maxLength,
		DiscountRate:     params.DiscountRate,
		Identifier:       identifier,
		Parameters:       params,
	}, nil
}

// buildBudgetSchedule returns the strictly linear budget curve
// base + y*increase for y = 0..periods-1.
func buildBudgetSchedule(periods int, base, increase float64) []float64 {
	budget := make([]float64, periods)
	for y := range periods {
		budget[y] = base + float64(y)*increase
	}
	return budget
}

// scaleBudget derives a sub-budget ceiling. Initiation and ongoing ceilings
// are independent scalings of the full curve, not a partition of it.
func scaleBudget(budget []float64, proportion float64) []float64 {
	scaled := make([]float64, len(budget))
	for i, b := range budget {
		scaled[i] = b * proportion
	}
	return scaled
}
