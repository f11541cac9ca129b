// Package simplex defines the pivot-rule enumeration, solver options and
// result types for the revised simplex engine.
package simplex

// DefaultFeasibilityTol is the primal feasibility tolerance: a vector is
// accepted as nonnegative when every component is ≥ −DefaultFeasibilityTol,
// and two solutions are "equal" when they agree componentwise within it.
const DefaultFeasibilityTol = 1e-7

// PivotRule selects the entering-variable policy of a simplex pivot.
//
//   - Bland          — smallest eligible index. Combined with the fixed
//     smallest-index leaving tie-break this is the classic anti-cycling
//     discipline: guaranteed finite termination, possibly more pivots.
//   - Dantzig        — most positive reduced cost (first found on ties).
//   - GreatestAscent — the candidate whose full ratio test yields the
//     largest objective increase t·r_k; ties go to the smallest index.
//     One ratio test per candidate, so the priciest rule per pivot.
//   - ManualSelect   — the entering index is chosen by an injected
//     SelectFunc; see Options.Select.
type PivotRule int

const (
	// Bland picks the smallest eligible entering index (anti-cycling).
	Bland PivotRule = iota

	// Dantzig picks the candidate with the most positive reduced cost.
	Dantzig

	// GreatestAscent picks the candidate maximizing the objective increase.
	GreatestAscent

	// ManualSelect delegates the choice to Options.Select.
	ManualSelect
)

// MinIndex is the textbook name for Bland's rule.
const MinIndex = Bland

// MaxReducedCost is the textbook name for Dantzig's rule.
const MaxReducedCost = Dantzig

// pivotRuleNames drives String(); order must follow the iota block above.
var pivotRuleNames = [...]string{"bland", "dantzig", "greatest_ascent", "manual_select"}

// String returns the canonical lower-case rule name, or "unknown" for values
// outside the enumeration.
func (r PivotRule) String() string {
	if !r.valid() {
		return "unknown"
	}

	return pivotRuleNames[r]
}

// valid reports whether r is a member of the enumeration.
func (r PivotRule) valid() bool { return r >= Bland && r <= ManualSelect }

// SelectFunc is the injected capability behind ManualSelect: it receives the
// eligible entering indices in ascending order (0-based, into the
// equality-form variable set) and must return one of them. The engine blocks
// on the call; how the choice is collected (console prompt, UI widget, test
// harness) is the caller's concern. Returning an error or an index outside
// the candidate set aborts the pivot with ErrBadInput.
type SelectFunc func(candidates []int) (int, error)

// Options configures PhaseOne, Iterate and Solve.
//
// The zero value is usable: Bland's rule, DefaultFeasibilityTol, no warm
// start, no iteration limit. Prefer DefaultOptions() for explicitness.
type Options struct {
	// PivotRule selects the entering-variable policy. Default: Bland.
	PivotRule PivotRule

	// FeasibilityTol is the primal feasibility tolerance; values <= 0 fall
	// back to DefaultFeasibilityTol.
	FeasibilityTol float64

	// InitialSolution optionally warm-starts Solve. It must have the
	// equality-form length; it replaces the Phase-1 starting point only when
	// it satisfies A·x = b and x ≥ 0 within tolerance with at most m nonzero
	// entries, and is ignored (Result.InitialIgnored) otherwise.
	InitialSolution []float64

	// IterationLimit caps the number of pivots in Solve; 0 means unlimited.
	// Negative values are rejected with ErrBadInput.
	IterationLimit int

	// Select supplies the entering choice for ManualSelect. Required when
	// that rule is in effect; ignored otherwise.
	Select SelectFunc
}

// DefaultOptions returns the documented defaults: Bland's rule and
// DefaultFeasibilityTol.
func DefaultOptions() Options {
	return Options{PivotRule: Bland, FeasibilityTol: DefaultFeasibilityTol}
}

// tol resolves the effective feasibility tolerance.
func (o Options) tol() float64 {
	if o.FeasibilityTol <= 0 {
		return DefaultFeasibilityTol
	}

	return o.FeasibilityTol
}

// Step is the outcome of a single simplex pivot (Iterate).
type Step struct {
	// X is the basic feasible solution after the pivot (equality-form
	// length). A fresh copy, never aliased to the caller's input.
	X []float64

	// Basis holds the basic column indices after the pivot, ascending.
	Basis []int

	// Value is the objective c·X.
	Value float64

	// Optimal reports that no eligible entering variable existed; X and
	// Basis then echo the inputs unchanged.
	Optimal bool
}

// Result is the outcome of a full Solve run.
type Result struct {
	// Path holds the basic feasible solution at the start and after every
	// pivot that moved, in order. Each entry is an independent copy.
	Path [][]float64

	// Bases holds the basis matching each Path entry, ascending indices.
	Bases [][]int

	// Value is the objective at the last Path entry.
	Value float64

	// Optimal reports that the last entry is proven optimal. It stays false
	// when the iteration limit stopped the run first.
	Optimal bool

	// InitialIgnored reports that a supplied Options.InitialSolution failed
	// validation and the Phase-1 starting point was used instead. A notice,
	// not an error.
	InitialIgnored bool
}
