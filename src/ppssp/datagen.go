package ppssp

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// Fuzzy Weibull allocation constants. The shape and scale of the allocation
// curve are themselves drawn per call, so two projects with identical totals
// still get different per-period profiles.
const (
	weibullShapeMean   = 1.589
	weibullShapeStdDev = 2
	weibullShapeMin    = 0.01
	weibullScaleMean   = 0.71
	weibullScaleStdDev = 0.3
	weibullScaleMin    = 0.1
)

// CostDurationParams describes the bivariate log-normal distribution that
// (duration, total cost) pairs are drawn from. The covariance matrix is
// [[LogVarDuration, Covariance], [Covariance, LogVarCost]].
type CostDurationParams struct {
	LogMeanDuration float64
	LogVarDuration  float64
	LogMeanCost     float64
	LogVarCost      float64
	Covariance      float64
}

// DefaultCostDurationParams returns the distribution parameters estimated
// from the log-scaled duration and cost data of the 2016 IIP.
func DefaultCostDurationParams() CostDurationParams {
	return CostDurationParams{
		LogMeanDuration: 2.191054,
		LogVarDuration:  0.246245,
		LogMeanCost:     6.642006,
		LogVarCost:      1.555780,
		Covariance:      0.374572,
	}
}

// SampleCostDurations draws n correlated (duration, total cost) pairs by
// sampling a bivariate normal over (log duration, log cost), exponentiating
// and rounding to the nearest integer. Pathological parameters can round a
// duration down to zero or below; callers are expected to reject such samples.
func SampleCostDurations(n int, p CostDurationParams, src rand.Source) ([][2]int, error) {
	sigma := mat.NewSymDense(2, []float64{
		p.LogVarDuration, p.Covariance,
		p.Covariance, p.LogVarCost,
	})
	normal, ok := distmv.NewNormal([]float64{p.LogMeanDuration, p.LogMeanCost}, sigma, src)
	if !ok {
		return nil, fmt.Errorf("%w: %+v", ErrCovarianceMatrix, p)
	}

	pairs := make([][2]int, n)
	x := make([]float64, 2)
	for i := range n {
		x = normal.Rand(x)
		pairs[i][0] = int(math.Round(math.Exp(x[0])))
		pairs[i][1] = int(math.Round(math.Exp(x[1])))
	}
	return pairs, nil
}

// fuzzyWeibullSpread breaks total into duration non-negative per-period
// amounts that sum to total exactly. Each of the first duration-1 periods
// receives the floor of its share under a randomly perturbed Weibull CDF;
// the final period absorbs the rounding residual.
func fuzzyWeibullSpread(total float64, duration int, src rand.Source) []float64 {
	shapeDist := distuv.Normal{Mu: weibullShapeMean, Sigma: weibullShapeStdDev, Src: src}
	shape := shapeDist.Rand()
	for shape < weibullShapeMin {
		shape = shapeDist.Rand()
	}
	scale := math.Max(distuv.Normal{Mu: weibullScaleMean, Sigma: weibullScaleStdDev, Src: src}.Rand(), weibullScaleMin)

	out := make([]float64, duration)
	allocated := 0.0
	prev := 0.0
	for t := range duration - 1 {
		sample := weibullCompletion(float64(t+1)/float64(duration), shape, scale)
		amount := math.Floor((sample - prev) * total)
		out[t] = amount
		allocated += amount
		prev = sample
	}
	out[duration-1] = total - allocated
	return out
}

// weibullCompletion evaluates the Weibull CDF at completion fraction f,
// normalized so that a full project (f = 1) maps to exactly 1. Inputs
// outside [0, 1) clamp to the nearest bound.
func weibullCompletion(f, shape, scale float64) float64 {
	if f < 0 {
		return 0
	}
	if f >= 1 {
		return 1
	}
	w := distuv.Weibull{K: shape, Lambda: scale}
	return w.CDF(f) / w.CDF(1)
}

// randomProjectValue derives a project's total value from its cost and
// duration: a uniform fraction of the scaled cost plus one draw from the
// value distribution for every period after the first.
func randomProjectValue(totalCost float64, duration int, dist distuv.Rander, factor float64, src rand.Source) float64 {
	value := distuv.Uniform{Min: 0, Max: 1, Src: src}.Rand() * totalCost * factor
	for range duration - 1 {
		value += dist.Rand()
	}
	return value
}

// DiscreteUniform draws integer-valued samples uniformly from {Min, ..., Max}.
// It is the default value distribution.
type DiscreteUniform struct {
	Min, Max int
	rnd      *rand.Rand
}

// NewDiscreteUniform returns a discrete uniform distribution over
// {min, ..., max} drawing from src.
func NewDiscreteUniform(min, max int, src rand.Source) *DiscreteUniform {
	return &DiscreteUniform{Min: min, Max: max, rnd: rand.New(src)}
}

func (d *DiscreteUniform) Rand() float64 {
	return float64(d.Min + d.rnd.IntN(d.Max-d.Min+1))
}
