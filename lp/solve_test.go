package lp_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/lplab/lp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolve_ScenarioA_AnyMethodIsGraphical: with n == 2 every requested
// method routes to the graphical solver.
func TestSolve_ScenarioA_AnyMethodIsGraphical(t *testing.T) {
	for _, m := range []lp.Method{lp.MethodGraphical, lp.MethodSimplex, lp.MethodGeneral, ""} {
		sol := lp.Solve(scenarioA(), m)
		assert.Equal(t, lp.MethodGraphical, sol.Method, "requested %q", m)
		assert.True(t, sol.Valid)
		assert.Equal(t, []float64{2, 6}, sol.Point)
		assert.Equal(t, 36.0, sol.Value)
	}
}

// TestSolve_ScenarioB_ThreeVarsIgnoreGraphical: n == 3 with "graphical"
// requested still runs the simplex.
func TestSolve_ScenarioB_ThreeVarsIgnoreGraphical(t *testing.T) {
	sol := lp.Solve(scenarioA3(), lp.MethodGraphical)

	require.Equal(t, lp.MethodSimplex, sol.Method)
	require.True(t, sol.Valid)
	require.NotEmpty(t, sol.Iterations)
	assert.InDelta(t, 36.0, sol.Value, 1e-9)
}

// TestSolve_InvalidProblem maps validation errors to the failed shape.
func TestSolve_InvalidProblem(t *testing.T) {
	p := scenarioA3()
	p.RHS = p.RHS[:2]
	sol := lp.Solve(p, lp.MethodSimplex)

	require.False(t, sol.Valid)
	require.Equal(t, lp.StatusFailed, sol.Status)
	require.ErrorIs(t, sol.Err(), lp.ErrDimensionMismatch)
	require.Empty(t, sol.Point)
	require.Zero(t, sol.Value)
	require.Empty(t, sol.Table.Headers)
	require.Empty(t, sol.Table.Rows)
	require.Nil(t, sol.Iterations)
}

// TestSolve_SignOverridesReachSolver: "-" on row 1 turns 0x1+2x2<=12 into
// 0x1-2x2<=12, which no longer bounds x2 at 6 in scenario A.
func TestSolve_SignOverridesReachSolver(t *testing.T) {
	p := scenarioA()
	p.ConstraintSigns = []lp.Sign{lp.SignNone, lp.SignMinus, lp.SignNone}
	sol := lp.Solve(p, lp.MethodGraphical)

	require.True(t, sol.Valid)
	assert.Equal(t, "0x₁ -2x₂ <= 12", sol.Table.Rows[1][0])
	// Best vertex is now (0, 9) with value 45.
	assert.InDelta(t, 0.0, sol.Point[0], 1e-12)
	assert.InDelta(t, 9.0, sol.Point[1], 1e-12)
	assert.InDelta(t, 45.0, sol.Value, 1e-12)
}

// TestSolve_Idempotent_Graphical diffs two graphical solves.
func TestSolve_Idempotent_Graphical(t *testing.T) {
	a := lp.Solve(scenarioA(), "")
	b := lp.Solve(scenarioA(), "")
	if diff := cmp.Diff(a, b, cmpopts.IgnoreUnexported(lp.Solution{})); diff != "" {
		t.Errorf("second solve differs (-first +second):\n%s", diff)
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "optimal", lp.StatusOptimal.String())
	assert.Equal(t, "unbounded", lp.StatusUnbounded.String())
	assert.Equal(t, "iteration-limit", lp.StatusIterationLimit.String())
	assert.Equal(t, "<=", lp.LE.String())
	assert.Equal(t, ">=", lp.GE.String())
}
