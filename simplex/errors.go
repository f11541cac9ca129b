// SPDX-License-Identifier: MIT
// Package simplex: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// simplex package. All routines MUST return these sentinels and tests MUST
// check them via errors.Is. No routine panics on user-triggered conditions.

package simplex

import "errors"

// Every message is prefixed with "simplex: ..." for consistency and easy
// grepping. Do not %w-wrap these sentinels when returning directly; wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary when context is essential
// — callers still match with errors.Is.
var (
	// ErrShapeMismatch is returned at construction time when the length of b
	// or c disagrees with the dimensions of A.
	ErrShapeMismatch = errors.New("simplex: coefficient shape mismatch")

	// ErrInvalidBasis indicates that a proposed basis is not of size m, holds
	// an out-of-range or repeated index, or selects a singular column
	// submatrix.
	ErrInvalidBasis = errors.New("simplex: invalid basis")

	// ErrInfeasibleSolution indicates that a basis is valid (invertible) but
	// the basic solution it determines has a component below −tolerance.
	// The offending vector is returned alongside the error for diagnostics.
	ErrInfeasibleSolution = errors.New("simplex: basic solution is infeasible")

	// ErrInfeasible is returned by Phase 1 when the auxiliary optimum is
	// strictly negative: the linear program has no feasible point.
	ErrInfeasible = errors.New("simplex: linear program has no feasible solution")

	// ErrUnbounded is returned when an entering direction admits no leaving
	// candidate: the objective increases without bound.
	ErrUnbounded = errors.New("simplex: linear program is unbounded")

	// ErrBadPivotRule indicates an unrecognized pivot rule value.
	ErrBadPivotRule = errors.New("simplex: unknown pivot rule")

	// ErrBadInput is the generic input-contract violation: mismatched vector
	// lengths, an (x, basis) pair that disagrees, a negative iteration
	// limit, a manual selection outside the candidate set.
	ErrBadInput = errors.New("simplex: invalid input")

	// ErrNilLP indicates that a nil *LP was passed where a program is
	// required.
	ErrNilLP = errors.New("simplex: nil linear program")
)
