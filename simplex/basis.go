// Package simplex: basis evaluation — basic feasible solutions and tableaus.
package simplex

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/linprog/matrix"
)

// validateBasis checks a proposed basis against an equality-form LP and
// materializes its column submatrix.
// A basis is valid iff it holds exactly m distinct in-range column indices
// whose m×m submatrix is invertible. Returns the ascending copy of the basis
// and the submatrix, or ErrInvalidBasis.
func validateBasis(eq *LP, basis []int) ([]int, *matrix.Dense, error) {
	if len(basis) != eq.m {
		return nil, nil, fmt.Errorf("basis has %d indices, want %d: %w", len(basis), eq.m, ErrInvalidBasis)
	}
	sorted := append([]int(nil), basis...)
	sort.Ints(sorted)
	for i, j := range sorted {
		if j < 0 || j >= eq.n {
			return nil, nil, fmt.Errorf("basis index %d out of range [0,%d): %w", j, eq.n, ErrInvalidBasis)
		}
		if i > 0 && sorted[i-1] == j {
			return nil, nil, fmt.Errorf("basis index %d repeated: %w", j, ErrInvalidBasis)
		}
	}
	sub, err := eq.a.Columns(sorted)
	if err != nil {
		return nil, nil, fmt.Errorf("basis columns: %w", ErrInvalidBasis)
	}
	if !matrix.Invertible(sub) {
		return nil, nil, fmt.Errorf("basis %v selects a singular submatrix: %w", sorted, ErrInvalidBasis)
	}

	return sorted, sub, nil
}

// BasicFeasibleSolution returns the basic feasible solution determined by
// basis.
//
// The LP is canonicalized first, so basis indexes the equality-form columns
// (structural variables then slacks, 0..n+m−1 for inequality input). The
// basic components solve A_B·x_B = b; every nonbasic component is exactly 0.
// tol is the primal feasibility tolerance (values <= 0 fall back to
// DefaultFeasibilityTol): the solution is feasible when x ≥ −tol
// componentwise.
//
// Errors:
//   - ErrInvalidBasis — wrong size, out-of-range or repeated index, or a
//     singular column submatrix.
//   - ErrInfeasibleSolution — the basis is valid but some component is below
//     −tol. The computed vector is still returned for diagnostics.
//
// Complexity: O(m³) for the linear solve after O(m·n) canonicalization.
func BasicFeasibleSolution(lp *LP, basis []int, tol float64) ([]float64, error) {
	eq, err := EqualityForm(lp)
	if err != nil {
		return nil, fmt.Errorf("BasicFeasibleSolution: %w", err)
	}
	if tol <= 0 {
		tol = DefaultFeasibilityTol
	}
	sorted, sub, err := validateBasis(eq, basis)
	if err != nil {
		return nil, fmt.Errorf("BasicFeasibleSolution: %w", err)
	}
	xB, err := matrix.Solve(sub, eq.b)
	if err != nil {
		// Invertible() accepted the submatrix but the factorization did not;
		// the basis sits on the rank tolerance boundary.
		return nil, fmt.Errorf("BasicFeasibleSolution: %v: %w", err, ErrInvalidBasis)
	}
	x := make([]float64, eq.n)
	for i, j := range sorted {
		x[j] = xB[i]
	}
	for _, v := range x {
		if v < -tol {
			return x, fmt.Errorf("BasicFeasibleSolution: component %g < %g: %w", v, -tol, ErrInfeasibleSolution)
		}
	}

	return x, nil
}

// AllBasicFeasibleSolutions enumerates every size-m subset of the
// equality-form columns in lexicographic order and returns the subsets that
// determine a basic feasible solution, with their bases and objective values
// (index-aligned). Subsets failing with ErrInvalidBasis or
// ErrInfeasibleSolution are skipped silently — an intentional filter, not
// error recovery; any other failure propagates.
//
// Cost is binomial(n, m) solves: exhaustive small-LP inspection only, the
// caller is responsible for keeping n and m tiny.
func AllBasicFeasibleSolutions(lp *LP) (solutions [][]float64, bases [][]int, values []float64, err error) {
	eq, err := EqualityForm(lp)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("AllBasicFeasibleSolutions: %w", err)
	}
	n, m := eq.n, eq.m
	solutions, bases, values = [][]float64{}, [][]int{}, []float64{}
	if m > n { // no size-m subsets exist
		return solutions, bases, values, nil
	}

	// First lexicographic combination: {0, 1, ..., m-1}.
	comb := make([]int, m)
	for i := range comb {
		comb[i] = i
	}
	for {
		x, bfsErr := BasicFeasibleSolution(lp, comb, DefaultFeasibilityTol)
		switch {
		case bfsErr == nil:
			value, dotErr := matrix.Dot(eq.c, x)
			if dotErr != nil {
				return nil, nil, nil, fmt.Errorf("AllBasicFeasibleSolutions: %w", dotErr)
			}
			solutions = append(solutions, x)
			bases = append(bases, append([]int(nil), comb...))
			values = append(values, value)
		case errors.Is(bfsErr, ErrInvalidBasis) || errors.Is(bfsErr, ErrInfeasibleSolution):
			// Skip: not every subset is a feasible basis.
		default:
			return nil, nil, nil, fmt.Errorf("AllBasicFeasibleSolutions: %w", bfsErr)
		}

		// Advance to the next lexicographic combination.
		i := m - 1
		for i >= 0 && comb[i] == i+n-m {
			i--
		}
		if i < 0 {
			break
		}
		comb[i]++
		for j := i + 1; j < m; j++ {
			comb[j] = comb[j-1] + 1
		}
	}

	return solutions, bases, values, nil
}

// Tableau returns the full (m+1)×(n+2) simplex tableau of lp at basis:
//
//	z − (c_N − yᵀA_N)·x_N = yᵀb    where  yᵀ = c_Bᵀ·A_B⁻¹
//	x_B + A_B⁻¹A_N·x_N    = A_B⁻¹b
//
// Column 0 is the z column (1 in row 0, zeros below); columns 1..n carry the
// negated reduced costs (row 0) above A_B⁻¹·A with an exact identity on the
// basic columns; column n+1 holds the objective value above the basic
// variable values. Row i ≥ 1 belongs to the i-th basis index in ascending
// order. Derived on demand, never cached.
//
// Returns ErrInvalidBasis under the same conditions as
// BasicFeasibleSolution. Complexity: O(m³ + m²n).
func Tableau(lp *LP, basis []int) (*matrix.Dense, error) {
	eq, err := EqualityForm(lp)
	if err != nil {
		return nil, fmt.Errorf("Tableau: %w", err)
	}
	sorted, sub, err := validateBasis(eq, basis)
	if err != nil {
		return nil, fmt.Errorf("Tableau: %w", err)
	}
	n, m := eq.n, eq.m

	aInv, err := matrix.Inverse(sub)
	if err != nil {
		return nil, fmt.Errorf("Tableau: %v: %w", err, ErrInvalidBasis)
	}

	// Dual vector yᵀ = c_Bᵀ·A_B⁻¹, computed as (A_B⁻¹)ᵀ·c_B.
	cB := make([]float64, m)
	inBasis := make([]bool, n)
	for i, j := range sorted {
		cB[i] = eq.c[j]
		inBasis[j] = true
	}
	aInvT, err := matrix.Transpose(aInv)
	if err != nil {
		return nil, fmt.Errorf("Tableau: %w", err)
	}
	y, err := matrix.MatVec(aInvT, cB)
	if err != nil {
		return nil, fmt.Errorf("Tableau: %w", err)
	}

	// Reduced-cost ingredients: yᵀA as one transposed mat-vec.
	aT, err := matrix.Transpose(eq.a)
	if err != nil {
		return nil, fmt.Errorf("Tableau: %w", err)
	}
	yTA, err := matrix.MatVec(aT, y)
	if err != nil {
		return nil, fmt.Errorf("Tableau: %w", err)
	}

	// Constraint block A_B⁻¹·A and right-hand side A_B⁻¹·b.
	body, err := matrix.Mul(aInv, eq.a)
	if err != nil {
		return nil, fmt.Errorf("Tableau: %w", err)
	}
	rhs, err := matrix.MatVec(aInv, eq.b)
	if err != nil {
		return nil, fmt.Errorf("Tableau: %w", err)
	}
	objective, err := matrix.Dot(y, eq.b)
	if err != nil {
		return nil, fmt.Errorf("Tableau: %w", err)
	}

	t, err := matrix.NewDense(m+1, n+2)
	if err != nil {
		return nil, fmt.Errorf("Tableau: %w", err)
	}
	// Indices below are in range by construction; Set cannot fail.
	_ = t.Set(0, 0, 1)
	_ = t.Set(0, n+1, objective)
	for j := 0; j < n; j++ {
		if !inBasis[j] { // basic reduced costs are identically zero
			_ = t.Set(0, j+1, -(eq.c[j] - yTA[j]))
		}
	}
	var v float64
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			v, _ = body.At(i, j)
			_ = t.Set(i+1, j+1, v)
		}
		_ = t.Set(i+1, n+1, rhs[i])
	}
	// Stamp an exact identity on the basic columns: A_B⁻¹·A_B is identity up
	// to roundoff, the tableau contract wants it exactly.
	for i, j := range sorted {
		for k := 0; k < m; k++ {
			_ = t.Set(k+1, j+1, 0)
		}
		_ = t.Set(i+1, j+1, 1)
	}

	return t, nil
}
