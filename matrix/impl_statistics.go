// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide row-wise statistical transforms used to turn transition counts into
//     probabilities, as deterministic compositions over ew* micro-kernels.
//
// Exposed API:
//   - NormalizeRowsL1(X) -> (Y, norms)  // L1 row normalization (degenerate rows unchanged)
//   - RowSums(X)         -> sums        // Σ_j X[i,j] per row
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.

package matrix

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNormalizeRowsL1 = "NormalizeRowsL1"
	opRowSums         = "RowSums"
)

// normalizeRowsL1 scales each row to L1-norm 1 when possible.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Compute per-row L1 norms deterministically (Dense fast-path; At fallback).
//   - Stage 3: Build row scale factors (1/norm); for norm==0 use scale=1 to keep the row unchanged.
//   - Stage 4: Apply ewScaleRows to produce a normalized copy.
//
// Behavior highlights:
//   - Degenerate rows (norm==0) are left unchanged (stable policy); callers decide how to
//     repair them (markov.Build turns them into absorbing self-loops).
//
// Returns:
//   - Matrix: normalized copy.
//   - []float64: original per-row L1 norms.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) (+ O(r) auxiliary slices).
func normalizeRowsL1(X Matrix) (Matrix, []float64, error) {
	// Stage 1 (Validate): ensure X is present.
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}
	r, c := X.Rows(), X.Cols()
	norms := make([]float64, r)

	// Stage 2 (Execute): compute L1 norms per row.
	var i, j int
	var s, v float64
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			s = ZeroSum
			base := i * c
			for j = 0; j < c; j++ {
				v = d.data[base+j]
				if v < 0 {
					v = -v // abs
				}
				s += v
			}
			norms[i] = s
		}
	} else {
		var err error
		for i = 0; i < r; i++ {
			s = ZeroSum
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
				}
				if v < 0 {
					v = -v
				}
				s += v
			}
			norms[i] = s
		}
	}

	// Stage 3 (Prepare scales): 1/norm for normal rows; 1 for degenerate rows (leave unchanged).
	scale := make([]float64, r)
	for i = 0; i < r; i++ {
		if norms[i] > 0 {
			scale[i] = 1.0 / norms[i]
		} else {
			scale[i] = 1.0
		}
	}

	// Stage 4 (Apply): scale rows via the canonical ew micro-kernel.
	Y, err := ewScaleRows(X, scale)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}

	return Y, norms, nil
}

// rowSums returns r[i] = Σ_j X[i,j] as MatVec(X, ones).
// Complexity: O(r*c).
func rowSums(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	ones := make([]float64, X.Cols())
	for j := range ones {
		ones[j] = 1.0
	}
	sums, err := MatVec(X, ones)
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	return sums, nil
}
