// Package linprog is your in-memory playground for building, canonicalizing
// and solving linear programs with the revised simplex method.
//
// 🚀 What is linprog?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Dense matrices: construction, slicing, products, LU, rank
//		• LP modeling: inequality or equality form, slack augmentation
//		• Vertex analysis: basic feasible solutions & full tableaus
//		• Phase 1: feasibility via artificial variables, redundancy removal
//		• Phase 2: pivoting under Bland, Dantzig, greatest-ascent or a
//		  caller-supplied rule, with the full vertex path recorded
//
// ✨ Why choose linprog?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – every tie broken by smallest index, every run repeatable
//   - Pure Go – no cgo, no hidden deps
//   - Transparent – inspect every intermediate vertex, basis and tableau
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/  — dense float64 matrices: algebra, LU factorization, rank
//	simplex/ — LP types, canonicalization, Phase 1/2 and the solve driver
//
// Quick example, max 3x₁+2x₂ subject to x₁+x₂ ≤ 4:
//
//	lp, _ := simplex.New([][]float64{{1, 1}}, []float64{4}, []float64{3, 2}, false)
//	res, _ := simplex.Solve(lp, simplex.DefaultOptions())
//	// res.Value == 12 at x = (4, 0)
//
// Dive into the simplex package docs for pivot-rule details and the exact
// tableau layout.
//
//	go get github.com/katalvlaran/linprog
package linprog
