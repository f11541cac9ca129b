package simplex_test

import (
	"testing"

	"github.com/katalvlaran/linprog/matrix"
	"github.com/katalvlaran/linprog/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wyndorLP is the classic max 3x₁+5x₂ s.t. x₁ ≤ 4, 2x₂ ≤ 12, 3x₁+2x₂ ≤ 18:
// optimum 36 at (2, 6). Enough pivots to exercise the path accumulator.
func wyndorLP(t *testing.T) *simplex.LP {
	t.Helper()

	return newLP(t,
		[][]float64{{1, 0}, {0, 2}, {3, 2}},
		[]float64{4, 12, 18},
		[]float64{3, 5},
		false)
}

// pathValues evaluates the equality-form objective along a solve path.
func pathValues(t *testing.T, lp *simplex.LP, path [][]float64) []float64 {
	t.Helper()
	eq, err := simplex.EqualityForm(lp)
	require.NoError(t, err)
	c := eq.C()

	values := make([]float64, len(path))
	for i, x := range path {
		v, dotErr := matrix.Dot(c, x)
		require.NoError(t, dotErr)
		values[i] = v
	}

	return values
}

// TestSolve_ScenarioOptimum solves the single-constraint scenario LP:
// optimum 12 at (4, 0), reached in at most two pivots.
func TestSolve_ScenarioOptimum(t *testing.T) {
	res, err := simplex.Solve(scenarioLP(t), simplex.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, res.Optimal)
	assert.InDelta(t, 12.0, res.Value, delta)
	assert.LessOrEqual(t, len(res.Path), 2)
	require.Equal(t, len(res.Path), len(res.Bases), "path and bases stay aligned")

	last := res.Path[len(res.Path)-1]
	assert.InDelta(t, 4.0, last[0], delta)
	assert.Zero(t, last[1])
}

// TestSolve_MonotoneAscent verifies the objective never decreases along the
// path, for every automatic pivot rule.
func TestSolve_MonotoneAscent(t *testing.T) {
	for _, rule := range []simplex.PivotRule{simplex.Bland, simplex.Dantzig, simplex.GreatestAscent} {
		opts := simplex.DefaultOptions()
		opts.PivotRule = rule

		res, err := simplex.Solve(wyndorLP(t), opts)
		require.NoError(t, err, "rule %v", rule)
		assert.True(t, res.Optimal, "rule %v", rule)
		assert.InDelta(t, 36.0, res.Value, delta, "rule %v", rule)

		values := pathValues(t, wyndorLP(t), res.Path)
		for i := 1; i < len(values); i++ {
			assert.GreaterOrEqual(t, values[i], values[i-1]-delta, "rule %v step %d", rule, i)
		}

		last := res.Path[len(res.Path)-1]
		assert.InDelta(t, 2.0, last[0], delta, "rule %v", rule)
		assert.InDelta(t, 6.0, last[1], delta, "rule %v", rule)
	}
}

// TestSolve_Unbounded verifies the unbounded scenario x₁ − x₂ ≤ 1 with both
// objective coefficients positive.
func TestSolve_Unbounded(t *testing.T) {
	lp := newLP(t, [][]float64{{1, -1}}, []float64{1}, []float64{1, 1}, false)

	_, err := simplex.Solve(lp, simplex.DefaultOptions())
	assert.ErrorIs(t, err, simplex.ErrUnbounded)
}

// TestSolve_Infeasible verifies that Phase-1 infeasibility propagates.
func TestSolve_Infeasible(t *testing.T) {
	lp := newLP(t, [][]float64{{1, 1}, {1, 1}}, []float64{1, 2}, []float64{1, 1}, true)

	_, err := simplex.Solve(lp, simplex.DefaultOptions())
	assert.ErrorIs(t, err, simplex.ErrInfeasible)
}

// TestSolve_IterationLimit verifies the early stop: the path is truncated
// and the result is not marked optimal.
func TestSolve_IterationLimit(t *testing.T) {
	// max x₂ on x₁+x₂ ≤ 4: Phase 1 lands on the x₁ vertex, so at least one
	// main-phase pivot is required and optimality stays unproven at the cap.
	lp := newLP(t, [][]float64{{1, 1}}, []float64{4}, []float64{0, 1}, false)
	opts := simplex.DefaultOptions()
	opts.IterationLimit = 1

	res, err := simplex.Solve(lp, opts)
	require.NoError(t, err)
	assert.False(t, res.Optimal, "the cap stops before the optimality proof")
	assert.Len(t, res.Path, 2, "start plus exactly one move")
}

// TestSolve_OptionValidation covers the negative limit and unknown rule.
func TestSolve_OptionValidation(t *testing.T) {
	opts := simplex.DefaultOptions()
	opts.IterationLimit = -3
	_, err := simplex.Solve(wyndorLP(t), opts)
	assert.ErrorIs(t, err, simplex.ErrBadInput)

	opts = simplex.DefaultOptions()
	opts.PivotRule = simplex.PivotRule(42)
	_, err = simplex.Solve(wyndorLP(t), opts)
	assert.ErrorIs(t, err, simplex.ErrBadPivotRule)
}

// TestSolve_WarmStartAccepted verifies a valid initial vertex replaces the
// Phase-1 start.
func TestSolve_WarmStartAccepted(t *testing.T) {
	opts := simplex.DefaultOptions()
	opts.InitialSolution = []float64{0, 4, 0} // the x₂ vertex of the scenario LP

	res, err := simplex.Solve(scenarioLP(t), opts)
	require.NoError(t, err)
	assert.False(t, res.InitialIgnored)
	assert.InDelta(t, 4.0, res.Path[0][1], delta, "the run must start at the supplied vertex")
	assert.Equal(t, []int{1}, res.Bases[0])
	assert.True(t, res.Optimal)
	assert.InDelta(t, 12.0, res.Value, delta)
}

// TestSolve_WarmStartRejected verifies an infeasible candidate is ignored
// with a notice, not an error.
func TestSolve_WarmStartRejected(t *testing.T) {
	opts := simplex.DefaultOptions()
	opts.InitialSolution = []float64{1, 1, 0} // A·x = 2 ≠ 4

	res, err := simplex.Solve(scenarioLP(t), opts)
	require.NoError(t, err)
	assert.True(t, res.InitialIgnored)
	assert.InDelta(t, 4.0, res.Path[0][0], delta, "the Phase-1 start must be kept")
	assert.True(t, res.Optimal)
}

// TestSolve_WarmStartBadShape verifies a wrongly sized candidate is an input
// error rather than a notice.
func TestSolve_WarmStartBadShape(t *testing.T) {
	opts := simplex.DefaultOptions()
	opts.InitialSolution = []float64{1, 1}

	_, err := simplex.Solve(scenarioLP(t), opts)
	assert.ErrorIs(t, err, simplex.ErrBadInput)
}

// TestSolve_WarmStartDegeneratePadding verifies that a vertex with fewer
// than m nonzeros gets its basis padded to exactly m members.
func TestSolve_WarmStartDegeneratePadding(t *testing.T) {
	// x₁ = 2, x₂ = 0 in equality form: support {0} but m = 2.
	lp := newLP(t, [][]float64{{1, 0}, {0, 1}}, []float64{2, 0}, []float64{1, 1}, true)
	opts := simplex.DefaultOptions()
	opts.InitialSolution = []float64{2, 0}

	res, err := simplex.Solve(lp, opts)
	require.NoError(t, err)
	assert.False(t, res.InitialIgnored)
	assert.Equal(t, []int{0, 1}, res.Bases[0], "support padded with the nonbasic index")
	assert.True(t, res.Optimal)
	assert.InDelta(t, 2.0, res.Value, delta)
}

// TestSolve_ManualRule runs a full solve with the injected chooser taking
// the first candidate each time (equivalent to Bland).
func TestSolve_ManualRule(t *testing.T) {
	opts := simplex.DefaultOptions()
	opts.PivotRule = simplex.ManualSelect
	calls := 0
	opts.Select = func(candidates []int) (int, error) {
		calls++

		return candidates[0], nil
	}

	res, err := simplex.Solve(wyndorLP(t), opts)
	require.NoError(t, err)
	assert.True(t, res.Optimal)
	assert.InDelta(t, 36.0, res.Value, delta)
	assert.Positive(t, calls, "the chooser must have been consulted")
}

// TestSolve_PathEntriesAreCopies verifies the path accumulates values, not
// aliases of the working buffers.
func TestSolve_PathEntriesAreCopies(t *testing.T) {
	lp := newLP(t, [][]float64{{1, 1}}, []float64{4}, []float64{0, 1}, false)

	res, err := simplex.Solve(lp, simplex.DefaultOptions())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(res.Path), 2)

	res.Path[0][0] = -999
	assert.NotEqual(t, res.Path[0][0], res.Path[1][0], "entries must be independent buffers")
	for i := 1; i < len(res.Path); i++ {
		assert.NotSame(t, &res.Path[0][0], &res.Path[i][0])
	}
}
