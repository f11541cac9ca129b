// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of
//     panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Supply the shape surgery simplex canonicalization needs: column
//     selection, horizontal augmentation, row/column deletion, row negation.

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt         = "At"         // method tag used in error wrappers
	ctxSet        = "Set"        // method tag used in error wrappers
	ctxCol        = "Col"        // method tag used in error wrappers
	ctxNegateRow  = "NegateRow"  // method tag used in error wrappers
	ctxDropRow    = "DropRow"    // ctor tag for Dense.DropRow
	ctxDropColumn = "DropColumn" // ctor tag for Dense.DropColumn
	ctxColumns    = "Columns"    // ctor tag for Dense.Columns
)

// ---------- formatting literals ----------

const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
)

// denseErrorf wraps a sentinel with a uniform Dense context and callsite
// indices. Stable, human-friendly messages; preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (both > 0).
//   - data is a flat buffer of length r*c in row-major order
//     (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// Returns ErrBadShape when rows <= 0 or cols <= 0.
// Complexity: O(r*c) zero-init.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	// make() zero-fills the flat buffer deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a Dense from a slice of equally sized rows, copying the
// input (the result never aliases rows). Empty input or ragged rows return
// ErrBadShape.
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(rows[0])
	m := &Dense{r: len(rows), c: cols, data: make([]float64, len(rows)*cols)}
	for i, row := range rows {
		if len(row) != cols { // ragged input
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(row), cols, ErrBadShape)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Returns ErrBadShape when n <= 0. Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf bounds-checks (row, col) and computes the flat row-major offset.
// Returns the bare ErrOutOfRange sentinel; public methods wrap it with
// method name and coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At retrieves the element at position (i, j).
// Returns ErrOutOfRange on invalid indices. Complexity: O(1).
func (m *Dense) At(i, j int) (float64, error) {
	off, err := m.indexOf(i, j)
	if err != nil {
		return 0, denseErrorf(ctxAt, i, j, err)
	}

	return m.data[off], nil
}

// Set assigns v at position (i, j).
// Returns ErrOutOfRange on invalid indices. Complexity: O(1).
func (m *Dense) Set(i, j int, v float64) error {
	off, err := m.indexOf(i, j)
	if err != nil {
		return denseErrorf(ctxSet, i, j, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy; the result is independent of the original.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// Col copies column j into a fresh slice of length Rows().
// Returns ErrOutOfRange when j is invalid. Complexity: O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Columns materializes the submatrix made of the listed columns, in the
// given order (duplicates allowed). The copy is independent of the receiver.
// Returns ErrBadShape on an empty list and ErrOutOfRange on a bad index.
// Complexity: O(r*len(idx)).
func (m *Dense) Columns(idx []int) (*Dense, error) {
	if len(idx) == 0 {
		return nil, fmt.Errorf("Dense.%s: empty index list: %w", ctxColumns, ErrBadShape)
	}
	out := &Dense{r: m.r, c: len(idx), data: make([]float64, m.r*len(idx))}
	for k, j := range idx {
		if j < 0 || j >= m.c {
			return nil, denseErrorf(ctxColumns, 0, j, ErrOutOfRange)
		}
		for i := 0; i < m.r; i++ {
			out.data[i*out.c+k] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// Augment returns the horizontal concatenation [a | b].
// Returns ErrNilMatrix on nil input and ErrDimensionMismatch when the row
// counts differ. Complexity: O(r*(ca+cb)).
func Augment(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Augment: %w", ErrNilMatrix)
	}
	if a.r != b.r {
		return nil, fmt.Errorf("Augment: %dx%d with %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	out := &Dense{r: a.r, c: a.c + b.c, data: make([]float64, a.r*(a.c+b.c))}
	for i := 0; i < a.r; i++ {
		copy(out.data[i*out.c:], a.data[i*a.c:(i+1)*a.c])
		copy(out.data[i*out.c+a.c:], b.data[i*b.c:(i+1)*b.c])
	}

	return out, nil
}

// DropRow returns a copy of m with row i removed.
// Removing the last remaining row is ErrBadShape (a 0×c Dense is not legal).
// Complexity: O(r*c).
func (m *Dense) DropRow(i int) (*Dense, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxDropRow, i, 0, ErrOutOfRange)
	}
	if m.r == 1 {
		return nil, fmt.Errorf("Dense.%s(%d): would leave zero rows: %w", ctxDropRow, i, ErrBadShape)
	}
	out := &Dense{r: m.r - 1, c: m.c, data: make([]float64, (m.r-1)*m.c)}
	copy(out.data, m.data[:i*m.c])
	copy(out.data[i*m.c:], m.data[(i+1)*m.c:])

	return out, nil
}

// DropColumn returns a copy of m with column j removed.
// Removing the last remaining column is ErrBadShape.
// Complexity: O(r*c).
func (m *Dense) DropColumn(j int) (*Dense, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxDropColumn, 0, j, ErrOutOfRange)
	}
	if m.c == 1 {
		return nil, fmt.Errorf("Dense.%s(%d): would leave zero columns: %w", ctxDropColumn, j, ErrBadShape)
	}
	out := &Dense{r: m.r, c: m.c - 1, data: make([]float64, m.r*(m.c-1))}
	for i := 0; i < m.r; i++ {
		copy(out.data[i*out.c:], m.data[i*m.c:i*m.c+j])
		copy(out.data[i*out.c+j:], m.data[i*m.c+j+1:(i+1)*m.c])
	}

	return out, nil
}

// NegateRow multiplies row i by −1 in place. The only in-place mutator on
// Dense; canonicalization uses it on freshly cloned matrices.
// Complexity: O(c).
func (m *Dense) NegateRow(i int) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxNegateRow, i, 0, ErrOutOfRange)
	}
	for j := i * m.c; j < (i+1)*m.c; j++ {
		m.data[j] = -m.data[j]
	}

	return nil
}

// String renders the matrix row by row, one bracketed line per row.
// Intended for debugging and test failure messages, not machine parsing.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(fmtRowClose)
	}

	return sb.String()
}
