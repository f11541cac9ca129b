// Package simplex - the full-solve driver.
//
// Solve sequences Phase 1 and the pivot step into a complete run: obtain a
// starting basic feasible solution (or accept a caller-supplied one),
// iterate until optimality or the iteration cap, and hand back the whole
// trajectory for replay by a presentation layer.
package simplex

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/linprog/matrix"
)

// warmStart validates a caller-supplied initial solution against the
// equality-form program and derives a basis for it.
//
// The candidate is accepted when it satisfies A·x = b within tol, is
// nonnegative within tol, and has at most m nonzero entries. A degenerate
// support (< m nonzeros) is padded with nonbasic indices, largest first,
// until the basis has exactly m members. Returns ok=false for a candidate
// that fails the feasibility checks — a notice condition, not an error.
func warmStart(eq *LP, candidate []float64, tol float64) (x []float64, basis []int, ok bool, err error) {
	if len(candidate) != eq.n {
		return nil, nil, false, fmt.Errorf("initial solution should have length %d but was %d: %w", eq.n, len(candidate), ErrBadInput)
	}
	ax, err := matrix.MatVec(eq.a, candidate)
	if err != nil {
		return nil, nil, false, err
	}
	for i := range ax {
		if math.Abs(ax[i]-eq.b[i]) > tol {
			return nil, nil, false, nil
		}
	}
	basis = make([]int, 0, eq.m)
	for j, v := range candidate {
		if v < -tol {
			return nil, nil, false, nil
		}
		if v != 0 {
			basis = append(basis, j)
		}
	}
	if len(basis) > eq.m {
		return nil, nil, false, nil
	}

	// Degenerate support: pad with nonbasic indices, descending, until the
	// basis reaches size m.
	inBasis := make([]bool, eq.n)
	for _, j := range basis {
		inBasis[j] = true
	}
	for j := eq.n - 1; j >= 0 && len(basis) < eq.m; j-- {
		if !inBasis[j] {
			basis = append(basis, j)
		}
	}
	sort.Ints(basis)

	return append([]float64(nil), candidate...), basis, true, nil
}

// Solve runs the revised simplex method on lp to optimality (or to
// opts.IterationLimit) and returns the full trajectory.
//
// Flow: validate options → PhaseOne for a starting point → optionally adopt
// opts.InitialSolution when it passes the feasibility checks (otherwise
// Result.InitialIgnored is set and the Phase-1 start is kept) → pivot under
// opts.PivotRule until Optimal, appending every move to the path.
//
// Result.Path and Result.Bases hold one entry per visited vertex, the start
// included, each an independent copy. With an iteration limit the run may
// stop early; Result.Optimal then stays false — the answer is the best
// visited, not proven optimal.
//
// Errors: ErrBadPivotRule, ErrBadInput (negative limit, malformed warm
// start), ErrInfeasible from Phase 1, ErrUnbounded from the pivot step.
func Solve(lp *LP, opts Options) (Result, error) {
	if !opts.PivotRule.valid() {
		return Result{}, fmt.Errorf("Solve: rule %d: %w", int(opts.PivotRule), ErrBadPivotRule)
	}
	if opts.IterationLimit < 0 {
		return Result{}, fmt.Errorf("Solve: iteration limit must not be negative, got %d: %w", opts.IterationLimit, ErrBadInput)
	}
	eq, err := EqualityForm(lp)
	if err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}
	tol := opts.tol()

	x, basis, err := PhaseOne(lp, opts)
	if err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}

	var result Result
	if opts.InitialSolution != nil {
		wx, wbasis, ok, wErr := warmStart(eq, opts.InitialSolution, tol)
		switch {
		case wErr != nil:
			return Result{}, fmt.Errorf("Solve: %w", wErr)
		case ok:
			x, basis = wx, wbasis
		default:
			result.InitialIgnored = true // keep the Phase-1 start
		}
	}

	result.Path = [][]float64{append([]float64(nil), x...)}
	result.Bases = [][]int{append([]int(nil), basis...)}
	result.Value, err = matrix.Dot(eq.c, x)
	if err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}

	remaining := opts.IterationLimit // 0 means unlimited
	for {
		step, iterErr := Iterate(lp, x, basis, opts)
		if iterErr != nil {
			return Result{}, fmt.Errorf("Solve: %w", iterErr)
		}
		x, basis, result.Value = step.X, step.Basis, step.Value
		if step.Optimal {
			result.Optimal = true
			break
		}
		result.Path = append(result.Path, append([]float64(nil), x...))
		result.Bases = append(result.Bases, append([]int(nil), basis...))
		if opts.IterationLimit > 0 {
			if remaining--; remaining == 0 {
				break // cap reached; Optimal stays false
			}
		}
	}

	return result, nil
}
