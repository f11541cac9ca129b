// Package simplex: Phase 1 — manufacturing an initial basic feasible
// solution with artificial variables, or refuting feasibility.
package simplex

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/linprog/matrix"
)

// PhaseOne executes Phase 1 of the simplex method on lp and returns an
// initial basic feasible solution with its basis, both over the
// equality-form variable set.
//
// Algorithm:
//  1. Canonicalize lp, then augment with one artificial variable per
//     constraint: A' = [A | I], objective −1 on each artificial (maximizing
//     the negative sum, i.e. minimizing constraint violation). The
//     artificial basis with x_artificial = b is feasible by construction.
//  2. Pivot the auxiliary LP to optimality under opts.PivotRule. After every
//     pivot the auxiliary LP is rebuilt from its current tableau with all
//     nonbasic artificial columns pruned, so the artificial block only ever
//     shrinks.
//  3. An auxiliary optimum below −tol proves lp infeasible: ErrInfeasible.
//  4. Remaining basic artificials sit at level zero and are driven out in
//     descending basic-index order: pivot in any structural or slack column
//     with a nonzero coefficient on the artificial's row (smallest index
//     first), or, when the row is zero outside the artificial block, drop
//     the row entirely — the constraint is redundant.
//
// Errors: ErrInfeasible, ErrBadPivotRule, and anything Iterate surfaces.
func PhaseOne(lp *LP, opts Options) ([]float64, []int, error) {
	eq, err := EqualityForm(lp)
	if err != nil {
		return nil, nil, fmt.Errorf("PhaseOne: %w", err)
	}
	n, m := eq.n, eq.m

	// Auxiliary program: A' = [A | I], c' = (0,…,0,−1,…,−1).
	eye, err := matrix.Identity(m)
	if err != nil {
		return nil, nil, fmt.Errorf("PhaseOne: %w", err)
	}
	auxA, err := matrix.Augment(eq.a, eye)
	if err != nil {
		return nil, nil, fmt.Errorf("PhaseOne: %w", err)
	}
	auxC := make([]float64, n+m)
	basis := make([]int, m)
	x := make([]float64, n+m)
	for i := 0; i < m; i++ {
		auxC[n+i] = -1
		basis[i] = n + i
		x[n+i] = eq.b[i] // feasible by construction: artificials absorb b
	}
	aux := fromParts(auxA, eq.B(), auxC, true)

	// Pivot to auxiliary optimality, pruning nonbasic artificials each round.
	var value float64
	for {
		step, iterErr := Iterate(aux, x, basis, opts)
		if iterErr != nil {
			return nil, nil, fmt.Errorf("PhaseOne: %w", iterErr)
		}
		value, x, basis = step.Value, step.X, step.Basis

		// Rebuild (A, b) from the tableau at the current basis.
		t, tErr := Tableau(aux, basis)
		if tErr != nil {
			return nil, nil, fmt.Errorf("PhaseOne: %w", tErr)
		}
		total := aux.n
		body := make([][]float64, aux.m)
		rhs := make([]float64, aux.m)
		var v float64
		for i := 0; i < aux.m; i++ {
			body[i] = make([]float64, total)
			for j := 0; j < total; j++ {
				v, _ = t.At(i+1, j+1)
				body[i][j] = v
			}
			rhs[i], _ = t.At(i+1, total+1)
		}

		// Keep every original column plus only the artificials still basic.
		inBasis := make([]bool, total)
		for _, j := range basis {
			inBasis[j] = true
		}
		keep := make([]int, 0, total)
		newIndex := make([]int, total) // old column -> pruned column
		for j := 0; j < total; j++ {
			if j < n || inBasis[j] {
				newIndex[j] = len(keep)
				keep = append(keep, j)
			}
		}
		prunedA := make([][]float64, aux.m)
		for i := range body {
			prunedA[i] = make([]float64, len(keep))
			for k, j := range keep {
				prunedA[i][k] = body[i][j]
			}
		}
		prunedDense, frErr := matrix.FromRows(prunedA)
		if frErr != nil {
			return nil, nil, fmt.Errorf("PhaseOne: %w", frErr)
		}
		prunedC := make([]float64, len(keep))
		prunedX := make([]float64, len(keep))
		for k, j := range keep {
			prunedC[k] = aux.c[j]
			prunedX[k] = x[j]
		}
		for i, j := range basis {
			basis[i] = newIndex[j]
		}
		sort.Ints(basis)
		aux = fromParts(prunedDense, rhs, prunedC, true)
		x = prunedX

		if step.Optimal {
			break
		}
	}

	if value < -opts.tol() {
		return nil, nil, fmt.Errorf("PhaseOne: auxiliary optimum %g: %w", value, ErrInfeasible)
	}

	// Drive out basic artificials at zero level, highest basic index first.
	for len(basis) > 0 && basis[len(basis)-1] >= n {
		i := basis[len(basis)-1]

		// Locate the artificial's constraint row: its tableau column is an
		// identity column, so exactly one nonzero entry exists.
		col, colErr := aux.a.Col(i)
		if colErr != nil {
			return nil, nil, fmt.Errorf("PhaseOne: %w", colErr)
		}
		row := -1
		for r, v := range col {
			if v != 0 {
				if row >= 0 {
					return nil, nil, fmt.Errorf("PhaseOne: basic column %d has multiple nonzero rows: %w", i, ErrBadInput)
				}
				row = r
			}
		}
		if row < 0 {
			return nil, nil, fmt.Errorf("PhaseOne: basic column %d is zero: %w", i, ErrBadInput)
		}

		// A nonzero structural/slack coefficient on that row lets us swap the
		// artificial out without changing the (zero) objective.
		enter := -1
		var v float64
		for j := 0; j < n; j++ {
			v, _ = aux.a.At(row, j)
			if v != 0 {
				enter = j
				break
			}
		}

		a, b := aux.a, aux.b
		if enter >= 0 {
			// Exchange: i leaves, enter joins; refresh (A, b, x) from the
			// tableau at the new basis.
			next := make([]int, 0, len(basis))
			for _, bi := range basis {
				if bi != i {
					next = append(next, bi)
				}
			}
			next = append(next, enter)
			sort.Ints(next)
			basis = next

			t, tErr := Tableau(aux, basis)
			if tErr != nil {
				return nil, nil, fmt.Errorf("PhaseOne: %w", tErr)
			}
			body := make([][]float64, aux.m)
			b = make([]float64, aux.m)
			for r := 0; r < aux.m; r++ {
				body[r] = make([]float64, aux.n)
				for j := 0; j < aux.n; j++ {
					body[r][j], _ = t.At(r+1, j+1)
				}
				b[r], _ = t.At(r+1, aux.n+1)
			}
			if a, err = matrix.FromRows(body); err != nil {
				return nil, nil, fmt.Errorf("PhaseOne: %w", err)
			}
			x = make([]float64, aux.n)
			for r, bi := range basis {
				x[bi] = b[r]
			}
		} else {
			// The row is zero outside the artificial block: the constraint is
			// redundant, drop it outright.
			if a, err = a.DropRow(row); err != nil {
				return nil, nil, fmt.Errorf("PhaseOne: constraint %d: %w", row, err)
			}
			b = append(b[:row:row], b[row+1:]...)
		}

		// Remove the artificial column i everywhere.
		if a, err = a.DropColumn(i); err != nil {
			return nil, nil, fmt.Errorf("PhaseOne: column %d: %w", i, err)
		}
		c := append(append([]float64(nil), aux.c[:i]...), aux.c[i+1:]...)
		x = append(x[:i:i], x[i+1:]...)
		next := basis[:0]
		for _, bi := range basis {
			switch {
			case bi == i:
				// dropped with its column
			case bi > i:
				next = append(next, bi-1)
			default:
				next = append(next, bi)
			}
		}
		basis = next
		aux = fromParts(a, b, c, true)
	}

	return x, basis, nil
}
