// SPDX-License-Identifier: MIT

// Package matrix: product kernels (Mul, MatVec, Transpose, Dot).
//
// Purpose:
//   - Deterministic dense products over the flat row-major buffer.
//   - Fixed loop orders (i→k→j for Mul) for reproducible floating-point sums.
//   - Zero-skip in inner loops: simplex matrices carry large identity blocks.

package matrix

import "fmt"

// ---------- operation tags for error context ----------

const (
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
	opDot       = "Dot"
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Mul returns the product a·b as a new Dense.
// Returns ErrNilMatrix on nil input and ErrDimensionMismatch when
// a.Cols != b.Rows.
//
// Determinism: fixed i→k→j loop order; skipping zero a[i,k] avoids useless
// multiplies without changing the summation order of nonzero terms.
// Complexity: O(r*n*c).
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d by %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}
	res := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	var av float64
	for i := 0; i < a.r; i++ {
		rowA := i * a.c
		rowR := i * res.c
		for k := 0; k < a.c; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB := k * b.c
			for j := 0; j < b.c; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// MatVec returns the product m·x as a fresh vector of length m.Rows().
// Returns ErrNilMatrix on nil m and ErrDimensionMismatch when
// len(x) != m.Cols().
// Complexity: O(r*c).
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opMatVec, ErrNilMatrix)
	}
	if len(x) != m.c {
		return nil, matrixErrorf(opMatVec, fmt.Errorf("vector length %d, want %d: %w", len(x), m.c, ErrDimensionMismatch))
	}
	out := make([]float64, m.r)
	var sum float64
	for i := 0; i < m.r; i++ {
		sum = 0
		row := i * m.c
		for j := 0; j < m.c; j++ {
			sum += m.data[row+j] * x[j]
		}
		out[i] = sum
	}

	return out, nil
}

// Transpose returns a new Dense with rows and columns swapped (mᵀ).
// The original is never mutated. Returns ErrNilMatrix on nil input.
// Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	res := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res, nil
}

// Dot returns the inner product of x and y.
// Returns ErrDimensionMismatch when the lengths differ.
// Complexity: O(n).
func Dot(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, matrixErrorf(opDot, fmt.Errorf("lengths %d and %d: %w", len(x), len(y), ErrDimensionMismatch))
	}
	var sum float64
	for i := range x {
		sum += x[i] * y[i]
	}

	return sum, nil
}
