// Package simplex: the single revised-simplex pivot.
package simplex

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/linprog/matrix"
)

// ratioTest computes the leaving variable for entering column k.
//
// The direction d solves A_B·d = A_k, aligned with the ascending basis;
// eligible leaving rows are those with d[i] > 0 (strict). Among the rows
// achieving the minimum ratio x[B[i]]/d[i], the smallest basic index wins —
// the lexicographic tie-break that, combined with Bland's entering rule,
// guarantees finite termination under degeneracy.
//
// Returns the step length t, the leaving index and d, or ErrUnbounded when
// no row is eligible.
func ratioTest(eq *LP, sub *matrix.Dense, sorted []int, x []float64, k int) (t float64, leave int, d []float64, err error) {
	col, err := eq.a.Col(k)
	if err != nil {
		return 0, 0, nil, err
	}
	d, err = matrix.Solve(sub, col)
	if err != nil {
		return 0, 0, nil, err
	}
	t, leave = math.Inf(1), -1
	for i, bi := range sorted { // ascending basis order ⇒ first strict min is the smallest index
		if d[i] <= 0 {
			continue
		}
		if ratio := x[bi] / d[i]; ratio < t {
			t, leave = ratio, bi
		}
	}
	if leave < 0 {
		return 0, 0, nil, fmt.Errorf("no leaving candidate for entering index %d: %w", k, ErrUnbounded)
	}

	return t, leave, d, nil
}

// Iterate executes a single iteration of the revised simplex method on lp,
// starting from the basic feasible solution x with basis.
//
// Preconditions (violations return the named sentinel):
//   - opts.PivotRule is a member of the enumeration — ErrBadPivotRule;
//   - x has the equality-form length — ErrBadInput;
//   - x equals the basic feasible solution implied by basis within the
//     feasibility tolerance — ErrBadInput (basis validation itself may
//     surface ErrInvalidBasis or ErrInfeasibleSolution first).
//
// When no nonbasic variable has a strictly positive reduced cost, the
// current point is optimal: the step echoes x and basis with Optimal true.
// Otherwise one pivot is performed under the entering rule, the leaving
// variable always being the smallest basic index achieving the minimum
// ratio. A direction admitting no leaving candidate returns ErrUnbounded.
//
// The returned Step owns fresh copies; the inputs are never mutated.
func Iterate(lp *LP, x []float64, basis []int, opts Options) (Step, error) {
	if !opts.PivotRule.valid() {
		return Step{}, fmt.Errorf("Iterate: rule %d: %w", int(opts.PivotRule), ErrBadPivotRule)
	}
	tol := opts.tol()
	eq, err := EqualityForm(lp)
	if err != nil {
		return Step{}, fmt.Errorf("Iterate: %w", err)
	}
	if len(x) != eq.n {
		return Step{}, fmt.Errorf("Iterate: x should have length %d but was %d: %w", eq.n, len(x), ErrBadInput)
	}

	// The supplied x must be the BFS the basis actually determines.
	implied, err := BasicFeasibleSolution(lp, basis, tol)
	if err != nil {
		return Step{}, fmt.Errorf("Iterate: %w", err)
	}
	for i := range x {
		if math.Abs(x[i]-implied[i]) > tol {
			return Step{}, fmt.Errorf("Iterate: basis %v corresponds to a different basic feasible solution: %w", basis, ErrBadInput)
		}
	}

	sorted, sub, err := validateBasis(eq, basis) // revalidated cheaply; basis was vetted above
	if err != nil {
		return Step{}, fmt.Errorf("Iterate: %w", err)
	}

	// Reduced costs r = c − Aᵀy with A_Bᵀ·y = c_B.
	cB := make([]float64, eq.m)
	inBasis := make([]bool, eq.n)
	for i, j := range sorted {
		cB[i] = eq.c[j]
		inBasis[j] = true
	}
	subT, err := matrix.Transpose(sub)
	if err != nil {
		return Step{}, fmt.Errorf("Iterate: %w", err)
	}
	y, err := matrix.Solve(subT, cB)
	if err != nil {
		return Step{}, fmt.Errorf("Iterate: %w", err)
	}
	aT, err := matrix.Transpose(eq.a)
	if err != nil {
		return Step{}, fmt.Errorf("Iterate: %w", err)
	}
	yTA, err := matrix.MatVec(aT, y)
	if err != nil {
		return Step{}, fmt.Errorf("Iterate: %w", err)
	}

	// Entering candidates: nonbasic indices with strictly positive reduced
	// cost, ascending.
	reduced := make([]float64, eq.n)
	var candidates []int
	for j := 0; j < eq.n; j++ {
		reduced[j] = eq.c[j] - yTA[j]
		if !inBasis[j] && reduced[j] > 0 {
			candidates = append(candidates, j)
		}
	}
	if len(candidates) == 0 {
		// Optimal: echo the inputs.
		value, dotErr := matrix.Dot(eq.c, x)
		if dotErr != nil {
			return Step{}, fmt.Errorf("Iterate: %w", dotErr)
		}

		return Step{
			X:       append([]float64(nil), x...),
			Basis:   append([]int(nil), sorted...),
			Value:   value,
			Optimal: true,
		}, nil
	}

	// Select the entering index k and run its ratio test.
	var (
		k, leave int
		t        float64
		d        []float64
	)
	switch opts.PivotRule {
	case Bland:
		k = candidates[0]
		t, leave, d, err = ratioTest(eq, sub, sorted, x, k)
	case Dantzig:
		k = candidates[0]
		for _, j := range candidates[1:] { // strict > keeps the first (smallest) index on ties
			if reduced[j] > reduced[k] {
				k = j
			}
		}
		t, leave, d, err = ratioTest(eq, sub, sorted, x, k)
	case GreatestAscent:
		// Full ratio test per candidate: maximize the achievable increase
		// t·r_k; ties resolve to the smallest entering index because the
		// ascending scan only replaces on a strict improvement.
		best := math.Inf(-1)
		for _, j := range candidates {
			tj, lj, dj, rtErr := ratioTest(eq, sub, sorted, x, j)
			if rtErr != nil {
				return Step{}, fmt.Errorf("Iterate: %w", rtErr)
			}
			if ascent := tj * reduced[j]; ascent > best {
				best, k, leave, t, d = ascent, j, lj, tj, dj
			}
		}
	case ManualSelect:
		if opts.Select == nil {
			return Step{}, fmt.Errorf("Iterate: ManualSelect requires Options.Select: %w", ErrBadInput)
		}
		k, err = opts.Select(append([]int(nil), candidates...))
		if err != nil {
			return Step{}, fmt.Errorf("Iterate: manual selection: %w: %v", ErrBadInput, err)
		}
		valid := false
		for _, j := range candidates {
			if j == k {
				valid = true
				break
			}
		}
		if !valid {
			return Step{}, fmt.Errorf("Iterate: manual selection %d not among candidates %v: %w", k, candidates, ErrBadInput)
		}
		t, leave, d, err = ratioTest(eq, sub, sorted, x, k)
	}
	if err != nil {
		return Step{}, fmt.Errorf("Iterate: %w", err)
	}

	// Apply the pivot: x_k ← t, basic components move along −t·d, then swap
	// k in for the leaving index.
	xNew := append([]float64(nil), x...)
	xNew[k] = t
	for i, bi := range sorted {
		xNew[bi] = x[bi] - t*d[i]
	}
	xNew[leave] = 0 // exact by construction of t; clear the roundoff residue
	basisNew := make([]int, 0, eq.m)
	for _, bi := range sorted {
		if bi != leave {
			basisNew = append(basisNew, bi)
		}
	}
	basisNew = append(basisNew, k)
	sort.Ints(basisNew)

	value, err := matrix.Dot(eq.c, xNew)
	if err != nil {
		return Step{}, fmt.Errorf("Iterate: %w", err)
	}

	return Step{X: xNew, Basis: basisNew, Value: value, Optimal: false}, nil
}
