// SPDX-License-Identifier: MIT

package cli

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lplab/lp"
)

// twoRowSnapshot has an ineligible second row in the ratio test.
func twoRowSnapshot() lp.IterationSnapshot {
	return lp.IterationSnapshot{
		Index: 1,
		Tableau: [][]float64{
			{2, 1, 0, 8},
			{-1, 0, 1, 3},
			{4, 0, 0, 0},
			{4, 0, 0, 0},
		},
		Basis:  []int{1, 2},
		Pivot:  &lp.Pivot{Row: 0, Col: 0, Entering: 0, Leaving: 1},
		Ratios: []float64{4, math.Inf(1)},
	}
}

func TestRenderTextSnapshot(t *testing.T) {
	sol := lp.Solution{
		Status:     lp.StatusIterationLimit,
		Method:     lp.MethodSimplex,
		Iterations: []lp.IterationSnapshot{twoRowSnapshot()},
	}

	var sb strings.Builder
	require.NoError(t, RenderText(&sb, sol, true))

	want := strings.Join([]string{
		"method: simplex",
		"status: iteration-limit",
		"error: lp: iteration limit reached",
		"",
		"iteration 1: A1 enters, A2 leaves",
		"i | A1 | A2 | A3 | A0 | ratio",
		"A2 | [2.00] | 1.00 | 0.00 | 8.00 | 4.00",
		"A3 | -1.00 | 0.00 | 1.00 | 3.00 | ∞",
		"Cj | 4.00 | 0.00 | 0.00 | 0.00",
		"Δj | 4.00 | 0.00 | 0.00 | 0.00",
		"",
	}, "\n")
	assert.Equal(t, want, sb.String())
}

func TestRenderTextHidesIterations(t *testing.T) {
	sol := lp.Solution{
		Status:     lp.StatusIterationLimit,
		Method:     lp.MethodSimplex,
		Iterations: []lp.IterationSnapshot{twoRowSnapshot()},
	}

	var sb strings.Builder
	require.NoError(t, RenderText(&sb, sol, false))
	assert.NotContains(t, sb.String(), "iteration 1")
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "0", formatNumber(math.Copysign(0, -1)))
	assert.Equal(t, "0.5", formatNumber(0.5))
	assert.Equal(t, "(1, 2.25)", formatPoint([]float64{1, 2.25}))
	assert.Equal(t, "0.00", formatTableauCell(math.Copysign(0, -1)))
	assert.Equal(t, "-1.50", formatTableauCell(-1.5))
	assert.Equal(t, "∞", formatRatio(math.Inf(1)))
}

func TestSnapshotValueNullsInfiniteRatios(t *testing.T) {
	v := snapshotValue(twoRowSnapshot())

	ratios, ok := v["ratios"].([]any)
	require.True(t, ok)
	require.Len(t, ratios, 2)
	assert.Equal(t, 4.0, ratios[0])
	assert.Nil(t, ratios[1])

	pivot, ok := v["pivot"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "A1", pivot["entering"])
	assert.Equal(t, "A2", pivot["leaving"])
}
