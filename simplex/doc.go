// Package simplex solves linear programs with the revised simplex method,
// exposing every intermediate the method visits — bases, basic feasible
// solutions, tableaus and the full pivot trajectory.
//
// 🚀 What is it?
//
//	A numerical optimization kernel for programs of the form
//
//	  max c·x   s.t.  A·x ≤ b, x ≥ 0    (or A·x = b, x ≥ 0)
//
//	built for inspection and replay rather than raw throughput:
//	  • LP — immutable coefficient container with canonicalization
//	    (EqualityForm: slack variables + nonnegative right-hand side)
//	  • BasicFeasibleSolution / AllBasicFeasibleSolutions / Tableau —
//	    read-only queries against any candidate basis
//	  • PhaseOne — initial vertex via the artificial-variable auxiliary LP,
//	    or proof of infeasibility
//	  • Iterate — one pivot under a selectable entering rule (Bland,
//	    Dantzig, GreatestAscent, ManualSelect)
//	  • Solve — the driver: Phase 1, optional warm start, pivot loop with an
//	    iteration cap, returning the whole solution path
//
// ✨ Guarantees:
//
//   - Deterministic: every tie (entering, leaving, drive-out order) is
//     pinned to a fixed index rule; no map iteration, no randomness.
//   - Anti-cycling: Bland's entering rule plus the smallest-index leaving
//     tie-break terminates finitely on degenerate programs.
//   - Monotone ascent: the objective never decreases along Result.Path.
//   - No shared mutable state: inputs are copied in, results copied out;
//     concurrent solves on the same LP are safe.
//
// ⚙️ Usage:
//
//	lp, err := simplex.New([][]float64{{1, 1}}, []float64{4}, []float64{3, 2}, false)
//	if err != nil { ... }
//	res, err := simplex.Solve(lp, simplex.DefaultOptions())
//	// res.Value == 12, res.Optimal == true, res.Path traces the vertices
//
// Exceptional outcomes are sentinel errors (errors.go): ErrInfeasible,
// ErrUnbounded, ErrInvalidBasis, ErrInfeasibleSolution, ErrBadPivotRule,
// ErrBadInput — match with errors.Is.
//
// Not a production solver: storage is dense, tolerances are fixed
// (DefaultFeasibilityTol), and cost per pivot is O(m³ + m·n) from refactoring
// the basis each step. Intended for teaching, verification and small models.
package simplex
