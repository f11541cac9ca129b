package simplex_test

import (
	"testing"

	"github.com/katalvlaran/linprog/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPhaseOne_FindsVertex verifies that Phase 1 lands on a basic feasible
// solution of the single-constraint scenario LP.
func TestPhaseOne_FindsVertex(t *testing.T) {
	lp := scenarioLP(t)

	x, basis, err := simplex.PhaseOne(lp, simplex.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, x, 3, "result lives in the equality-form variable set")
	assert.Equal(t, []int{0}, basis)
	assert.InDelta(t, 4.0, x[0], delta)

	// The pair must agree with the basis-evaluation contract.
	implied, err := simplex.BasicFeasibleSolution(lp, basis, 0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, implied, x, delta)
}

// TestPhaseOne_TwoConstraints drives a 2-constraint program to a feasible
// vertex with both structural variables basic.
func TestPhaseOne_TwoConstraints(t *testing.T) {
	lp := newLP(t, [][]float64{{1, 0}, {0, 1}}, []float64{2, 3}, []float64{1, 1}, false)

	x, basis, err := simplex.PhaseOne(lp, simplex.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, x, 4)
	assert.Equal(t, []int{0, 1}, basis)
	assert.InDelta(t, 2.0, x[0], delta)
	assert.InDelta(t, 3.0, x[1], delta)
	assert.Zero(t, x[2])
	assert.Zero(t, x[3])
}

// TestPhaseOne_Infeasible verifies the contradictory system
// x₁+x₂ = 1, x₁+x₂ = 2 is refuted with ErrInfeasible.
func TestPhaseOne_Infeasible(t *testing.T) {
	lp := newLP(t, [][]float64{{1, 1}, {1, 1}}, []float64{1, 2}, []float64{1, 1}, true)

	_, _, err := simplex.PhaseOne(lp, simplex.DefaultOptions())
	assert.ErrorIs(t, err, simplex.ErrInfeasible)
}

// TestPhaseOne_RedundantConstraint verifies that a duplicated row
// (x₁+x₂ = 1 twice) is detected as redundant and dropped during the
// drive-out stage rather than reported infeasible.
func TestPhaseOne_RedundantConstraint(t *testing.T) {
	lp := newLP(t, [][]float64{{1, 1}, {1, 1}}, []float64{1, 1}, []float64{1, 1}, true)

	x, basis, err := simplex.PhaseOne(lp, simplex.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, x, 2, "no slacks, artificials gone")
	assert.Equal(t, []int{0}, basis, "one constraint survives, one basic variable")
	assert.InDelta(t, 1.0, x[0], delta)
	assert.Zero(t, x[1])
}

// TestPhaseOne_NegativeRHS verifies canonicalization inside Phase 1:
// −x₁ ≤ −1 (i.e. x₁ ≥ 1) forces a structural variable into the start.
func TestPhaseOne_NegativeRHS(t *testing.T) {
	lp := newLP(t, [][]float64{{-1, 0}}, []float64{-1}, []float64{1, 1}, false)

	x, basis, err := simplex.PhaseOne(lp, simplex.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, x, 3)

	// Whatever vertex is chosen, it must satisfy the negated row x₁ − s = 1
	// with x ≥ 0.
	assert.InDelta(t, 1.0, x[0]-x[2], delta)
	for j, v := range x {
		assert.GreaterOrEqual(t, v, -simplex.DefaultFeasibilityTol, "component %d", j)
	}
	implied, err := simplex.BasicFeasibleSolution(lp, basis, 0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, implied, x, delta)
}

// TestPhaseOne_BadRule verifies rule validation propagates from the pivot
// step.
func TestPhaseOne_BadRule(t *testing.T) {
	opts := simplex.DefaultOptions()
	opts.PivotRule = simplex.PivotRule(9)

	_, _, err := simplex.PhaseOne(scenarioLP(t), opts)
	assert.ErrorIs(t, err, simplex.ErrBadPivotRule)
}
