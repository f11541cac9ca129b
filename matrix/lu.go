// Package matrix: LU decomposition with partial pivoting and the LU-backed
// linear solvers (Solve, Inverse), following strict fail-fast patterns.
package matrix

import (
	"fmt"
	"math"
)

const zeroSum = 0.0 // accumulator reset value

// LU computes the factorization P·m = L·U of a square matrix m, where L is
// unit lower triangular, U is upper triangular and P is a row permutation.
// Blueprint:
//
//	Stage 1 (Validate): ensure m is square.
//	Stage 2 (Prepare): clone m into a combined in-place L/U buffer, perm = id.
//	Stage 3 (Execute): for each column pick the largest |pivot| at or below
//	                   the diagonal (lowest row index on ties — deterministic),
//	                   swap it up, then eliminate below it.
//	Stage 4 (Finalize): split the combined buffer into L and U.
//
// perm maps factored row i to the original row perm[i], i.e.
// m[perm[i]][j] == (L·U)[i][j]. Returns ErrNonSquare for non-square input
// and ErrSingular when a column has no nonzero pivot.
// Complexity: O(n³) time, O(n²) memory.
func LU(m *Dense) (l, u *Dense, perm []int, err error) {
	// Stage 1: Validate input is square.
	if m == nil {
		return nil, nil, nil, fmt.Errorf("LU: %w", ErrNilMatrix)
	}
	if m.r != m.c {
		return nil, nil, nil, fmt.Errorf("LU: non-square %dx%d: %w", m.r, m.c, ErrNonSquare)
	}
	n := m.r

	// Stage 2: Combined in-place factorization buffer and identity permutation.
	lu := m.Clone()
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	// Stage 3: Eliminate column by column with partial pivoting.
	var factor float64
	for k := 0; k < n; k++ {
		// Select the pivot row: largest |value| at or below the diagonal.
		pivotRow, pivotAbs := k, math.Abs(lu.data[k*n+k])
		for i := k + 1; i < n; i++ {
			if a := math.Abs(lu.data[i*n+k]); a > pivotAbs {
				pivotRow, pivotAbs = i, a
			}
		}
		if pivotAbs == 0 {
			return nil, nil, nil, fmt.Errorf("LU: zero pivot at %d: %w", k, ErrSingular)
		}
		if pivotRow != k {
			for j := 0; j < n; j++ {
				lu.data[k*n+j], lu.data[pivotRow*n+j] = lu.data[pivotRow*n+j], lu.data[k*n+j]
			}
			perm[k], perm[pivotRow] = perm[pivotRow], perm[k]
		}
		// Eliminate below the pivot; store the multiplier in the L slot.
		for i := k + 1; i < n; i++ {
			factor = lu.data[i*n+k] / lu.data[k*n+k]
			lu.data[i*n+k] = factor
			if factor == 0 {
				continue
			}
			for j := k + 1; j < n; j++ {
				lu.data[i*n+j] -= factor * lu.data[k*n+j]
			}
		}
	}

	// Stage 4: Split the combined buffer into L (unit diagonal) and U.
	l = &Dense{r: n, c: n, data: make([]float64, n*n)}
	u = &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		l.data[i*n+i] = 1
		for j := 0; j < i; j++ {
			l.data[i*n+j] = lu.data[i*n+j]
		}
		for j := i; j < n; j++ {
			u.data[i*n+j] = lu.data[i*n+j]
		}
	}

	return l, u, perm, nil
}

// luSolve solves L·U·x = b[perm] by forward then backward substitution.
// Shared backend for Solve and Inverse; inputs are trusted (produced by LU).
// Complexity: O(n²).
func luSolve(l, u *Dense, perm []int, b []float64) []float64 {
	n := l.r
	var sum float64
	// Forward substitution: L·y = P·b (unit diagonal, no division).
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum = zeroSum
		for k := 0; k < i; k++ {
			sum += l.data[i*n+k] * y[k]
		}
		y[i] = b[perm[i]] - sum
	}
	// Backward substitution: U·x = y. LU rejected zero pivots already.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum = zeroSum
		for k := i + 1; k < n; k++ {
			sum += u.data[i*n+k] * x[k]
		}
		x[i] = (y[i] - sum) / u.data[i*n+i]
	}

	return x
}

// Solve solves the square linear system a·x = b for x.
// Returns ErrNonSquare, ErrDimensionMismatch or ErrSingular on failure.
// Complexity: O(n³) dominated by the factorization.
func Solve(a *Dense, b []float64) ([]float64, error) {
	if a == nil {
		return nil, fmt.Errorf("Solve: %w", ErrNilMatrix)
	}
	if len(b) != a.r {
		return nil, fmt.Errorf("Solve: rhs length %d, want %d: %w", len(b), a.r, ErrDimensionMismatch)
	}
	l, u, perm, err := LU(a)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	return luSolve(l, u, perm, b), nil
}

// Inverse returns the inverse of the square matrix m: one factorization,
// then one pair of substitutions per identity column eᵢ.
// Returns ErrNonSquare or ErrSingular on failure.
// Complexity: O(n³) time, O(n²) memory.
func Inverse(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("Inverse: %w", ErrNilMatrix)
	}
	l, u, perm, err := LU(m)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	n := m.r
	inv := &Dense{r: n, c: n, data: make([]float64, n*n)}
	e := make([]float64, n) // current identity column
	for col := 0; col < n; col++ {
		e[col] = 1
		x := luSolve(l, u, perm, e)
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
		e[col] = 0
	}

	return inv, nil
}
