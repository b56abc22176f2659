// Package matrix offers the dense linear-algebra kernels behind the stochastic
// analytics packages.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy.
//   - Solve, Gaussian elimination with row pivoting for A·x = b. It fails with
//     ErrSingular instead of dividing by zero and never mutates its inputs.
//   - PowerIterate, the uniform-start power iteration used for steady-state
//     distributions, returning a Convergence record instead of failing on the
//     iteration cap.
//   - Reachability, the transitive closure of a matrix's positive entries, used
//     to find communicating classes of a chain.
//   - Small helpers: MatVec, VecMat, Sub, NormalizeRowsL1, RowSums, AllClose
//     and the ValidateX family.
//
// Matrices here are sized by the number of distinct states (single or double
// digits), so every kernel fully materialises its working buffers per call.
// No kernel keeps state between calls; concurrent use with distinct inputs is safe.
//
// See example_test.go for usage patterns.
package matrix
