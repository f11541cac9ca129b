// Package matrix is the dense linear-algebra kernel backing linprog/simplex.
//
// 🚀 What does it provide?
//
//	A small, deterministic, pure-Go toolbox for the handful of operations a
//	revised simplex engine actually needs:
//	  • Dense — row-major float64 storage with checked At/Set accessors
//	  • Shape tools: Columns, Augment, DropRow/DropColumn, Identity
//	  • Products: Mul, MatVec, Transpose, Dot
//	  • Factorization: LU with partial pivoting, LU-based Solve and Inverse
//	  • Rank / Invertible — Gaussian rank under a fixed epsilon
//
// ✨ Design rules:
//
//   - No panics on user input — every public routine returns a sentinel
//     error (errors.go) matchable with errors.Is.
//   - Deterministic: fixed loop orders, no map iteration, no randomness.
//     Pivot selection takes the largest |value| with the lowest row index
//     on ties, so factorizations are reproducible bit for bit.
//   - Partial pivoting is for zero-pivot avoidance, not general stability
//     tuning: simplex bases routinely start with a zero in the corner
//     (slack column ahead of a structural one), which a naive Doolittle
//     scheme would misreport as singular.
//
// Complexity quicksheet: At/Set O(1); Mul O(r·n·c); LU/Solve/Inverse O(n³);
// Rank O(min(r,c)·r·c).
package matrix
