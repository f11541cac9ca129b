// Package matrix: numeric rank and invertibility checks.
package matrix

import "math"

// DefaultEpsilon is the non-negative tolerance under which an eliminated
// pivot is treated as zero during rank computation. Single source of truth
// for the package's structural checks.
const DefaultEpsilon = 1e-9

// Rank returns the numeric rank of m: the number of nonzero pivots found by
// Gaussian elimination with partial pivoting, where "nonzero" means
// |pivot| > eps. A non-positive eps falls back to DefaultEpsilon.
// Returns 0 for a nil matrix.
// Complexity: O(min(r,c)·r·c) time, O(r*c) memory for the working copy.
func Rank(m *Dense, eps float64) int {
	if m == nil {
		return 0
	}
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	w := m.Clone() // elimination scratch; the receiver is never mutated
	rank := 0
	for col := 0; col < w.c && rank < w.r; col++ {
		// Partial pivoting: pick the largest |entry| at or below row `rank`.
		pivotRow, pivotAbs := -1, eps
		for i := rank; i < w.r; i++ {
			if a := math.Abs(w.data[i*w.c+col]); a > pivotAbs {
				pivotRow, pivotAbs = i, a
			}
		}
		if pivotRow < 0 {
			continue // column is numerically zero below the current pivot rows
		}
		// Swap the pivot row into place.
		if pivotRow != rank {
			for j := 0; j < w.c; j++ {
				w.data[rank*w.c+j], w.data[pivotRow*w.c+j] = w.data[pivotRow*w.c+j], w.data[rank*w.c+j]
			}
		}
		// Eliminate the column below the pivot.
		pivot := w.data[rank*w.c+col]
		for i := rank + 1; i < w.r; i++ {
			factor := w.data[i*w.c+col] / pivot
			if factor == 0 {
				continue
			}
			for j := col; j < w.c; j++ {
				w.data[i*w.c+j] -= factor * w.data[rank*w.c+j]
			}
		}
		rank++
	}

	return rank
}

// Invertible reports whether m is square with full numeric rank under
// DefaultEpsilon. A nil matrix is not invertible.
// Complexity: O(n³).
func Invertible(m *Dense) bool {
	if m == nil || m.r != m.c {
		return false
	}

	return Rank(m, DefaultEpsilon) == m.r
}
