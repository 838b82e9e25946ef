package ppssp

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouletteWheelSelectDegenerate(t *testing.T) {
	src := rand.NewPCG(1, 1)
	for range 20 {
		got, err := RouletteWheelSelect([]string{"a", "b", "c"}, []float64{0, 1, 0}, 1, src)
		require.NoError(t, err)
		assert.Equal(t, "b", got)
	}
}

func TestRouletteWheelSelectProportional(t *testing.T) {
	src := rand.NewPCG(2, 2)
	counts := map[string]int{}
	for range 2000 {
		got, err := RouletteWheelSelect([]string{"light", "heavy"}, []float64{1, 9}, 1, src)
		require.NoError(t, err)
		counts[got]++
	}
	assert.Greater(t, counts["heavy"], counts["light"])
	assert.Greater(t, counts["light"], 0)
}

func TestRouletteWheelSelectAlpha(t *testing.T) {
	// alpha 0 flattens all positive weights to 1, so both must appear.
	src := rand.NewPCG(3, 3)
	counts := map[string]int{}
	for range 500 {
		got, err := RouletteWheelSelect([]string{"a", "b"}, []float64{1, 1000}, 0, src)
		require.NoError(t, err)
		counts[got]++
	}
	assert.Greater(t, counts["a"], 100)
	assert.Greater(t, counts["b"], 100)
}

func TestRouletteWheelSelectErrors(t *testing.T) {
	src := rand.NewPCG(4, 4)

	_, err := RouletteWheelSelect([]int{}, []float64{}, 1, src)
	require.ErrorIs(t, err, ErrWeightMismatch)

	_, err = RouletteWheelSelect([]int{1, 2}, []float64{1}, 1, src)
	require.ErrorIs(t, err, ErrWeightMismatch)

	_, err = RouletteWheelSelect([]int{1, 2}, []float64{0, 0}, 1, src)
	require.ErrorIs(t, err, ErrZeroWeight)
}
