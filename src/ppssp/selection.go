package ppssp

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/sampleuv"
)

// RouletteWheelSelect picks one candidate with probability proportional to
// its weight raised to alpha. Weights must be non-negative; alpha 1 uses the
// weights as given. Intended for downstream optimizers, not used by
// generation itself.
func RouletteWheelSelect[T any](candidates []T, weights []float64, alpha float64, src rand.Source) (T, error) {
	var zero T
	if len(candidates) == 0 || len(candidates) != len(weights) {
		return zero, ErrWeightMismatch
	}

	scaled := weights
	if alpha != 1 {
		scaled = make([]float64, len(weights))
		for i, w := range weights {
			scaled[i] = math.Pow(w, alpha)
		}
	}

	wheel := sampleuv.NewWeighted(scaled, src)
	index, ok := wheel.Take()
	if !ok {
		return zero, ErrZeroWeight
	}
	return candidates[index], nil
}
