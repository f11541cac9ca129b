// Package simplex: linear program representation and canonicalization.
package simplex

import (
	"fmt"

	"github.com/katalvlaran/linprog/matrix"
)

// LP holds the coefficients and size of a linear program
//
//	inequality        equality
//	max c·x           max c·x
//	s.t A·x ≤ b       s.t A·x = b
//	     x ≥ 0             x ≥ 0
//
// with n decision variables and m constraints (nonnegativity excluded).
// An LP is immutable once constructed: every accessor returns a defensive
// copy, and canonicalization returns a new LP. Concurrent reads are safe.
type LP struct {
	n, m     int           // variable and constraint counts
	a        *matrix.Dense // m×n coefficient matrix
	b        []float64     // length-m right-hand side
	c        []float64     // length-n objective (maximized)
	equality bool          // true: A·x = b; false: A·x ≤ b
}

// New constructs an LP from an m×n coefficient matrix given as rows, the
// right-hand side b (length m) and the objective c (length n). equality
// selects between A·x = b and A·x ≤ b; x ≥ 0 always.
// All inputs are copied. Shape violations return ErrShapeMismatch.
func New(a [][]float64, b, c []float64, equality bool) (*LP, error) {
	am, err := matrix.FromRows(a)
	if err != nil {
		return nil, fmt.Errorf("simplex.New: A: %w", ErrShapeMismatch)
	}
	m, n := am.Rows(), am.Cols()
	if len(b) != m {
		return nil, fmt.Errorf("simplex.New: b should have length %d but was %d: %w", m, len(b), ErrShapeMismatch)
	}
	if len(c) != n {
		return nil, fmt.Errorf("simplex.New: c should have length %d but was %d: %w", n, len(c), ErrShapeMismatch)
	}

	return &LP{
		n:        n,
		m:        m,
		a:        am, // FromRows already copied
		b:        append([]float64(nil), b...),
		c:        append([]float64(nil), c...),
		equality: equality,
	}, nil
}

// fromParts assembles an LP taking ownership of its arguments. Internal
// fast path for canonicalization and Phase 1; callers must not retain or
// mutate the inputs afterwards.
func fromParts(a *matrix.Dense, b, c []float64, equality bool) *LP {
	return &LP{n: a.Cols(), m: a.Rows(), a: a, b: b, c: c, equality: equality}
}

// N returns the number of decision variables.
func (lp *LP) N() int { return lp.n }

// M returns the number of constraints, excluding nonnegativity.
func (lp *LP) M() int { return lp.m }

// IsEquality reports whether the constraints read A·x = b (true) or
// A·x ≤ b (false).
func (lp *LP) IsEquality() bool { return lp.equality }

// A returns a copy of the coefficient matrix.
func (lp *LP) A() *matrix.Dense { return lp.a.Clone() }

// B returns a copy of the right-hand side vector.
func (lp *LP) B() []float64 { return append([]float64(nil), lp.b...) }

// C returns a copy of the objective vector.
func (lp *LP) C() []float64 { return append([]float64(nil), lp.c...) }

// Coefficients returns n, m and copies of A, b, c in one call — the working
// set every solver stage starts from.
func (lp *LP) Coefficients() (n, m int, a *matrix.Dense, b, c []float64) {
	return lp.n, lp.m, lp.A(), lp.B(), lp.C()
}

// EqualityForm returns an equivalent LP in standard equality form with a
// nonnegative right-hand side:
//
//	inequality        equality
//	max c·x           max c·x
//	s.t A·x ≤ b       s.t A·x + I·s = b
//	     x ≥ 0             x, s ≥ 0
//
// Inequality input gains an m×m identity slack block in A and m zero
// objective entries; any row with b < 0 is negated on both sides. The result
// always has IsEquality() true and b ≥ 0 elementwise, so the transformation
// is idempotent: applying it to its own output is a coefficient-level no-op.
// Returns ErrNilLP on nil input; the receiver is never mutated.
func EqualityForm(lp *LP) (*LP, error) {
	if lp == nil {
		return nil, fmt.Errorf("EqualityForm: %w", ErrNilLP)
	}
	a := lp.a.Clone()
	b := lp.B()
	c := lp.C()

	if !lp.equality {
		// Append slack variables: A ← [A | I], c ← (c, 0).
		eye, err := matrix.Identity(lp.m)
		if err != nil {
			return nil, fmt.Errorf("EqualityForm: %w", err)
		}
		if a, err = matrix.Augment(a, eye); err != nil {
			return nil, fmt.Errorf("EqualityForm: %w", err)
		}
		c = append(c, make([]float64, lp.m)...)
	}

	// Ensure b ≥ 0: multiplying a row of A·x = b by −1 preserves it.
	for i := range b {
		if b[i] < 0 {
			b[i] = -b[i]
			if err := a.NegateRow(i); err != nil {
				return nil, fmt.Errorf("EqualityForm: %w", err)
			}
		}
	}

	return fromParts(a, b, c, true), nil
}
