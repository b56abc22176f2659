// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, and matrix–vector products in both
// orientations (m·x for column vectors, xᵀ·m for row vectors). All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across the package.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Solve, PowerIterate and Reachability live in dedicated kernel files (same package).
//   - All kernels use central validators and wrap via matrixErrorf.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial sum value for substitutions, dot products and similar.
const ZeroSum = 0.0

// ZeroPivot is the exact-zero pivot value; Solve compares |pivot| against its tolerance.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSub          = "Sub"
	opMatVec       = "MatVec"
	opVecMat       = "VecMat"
	opSolve        = "Solve"
	opPowerIterate = "PowerIterate"
	opReachability = "Reachability"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
//
// Notes:
//   - Wrapping nil with %w yields a non-nil error; gate calls with `if err != nil`.
//
// AI-Hints:
//   - Keep `tag` to the canonical op* constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, av+sign*bv); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
//
// AI-Hints: Sub(I, Q) builds the fundamental-matrix system of an absorbing chain.
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
//
// AI-Hints:
//   - Use *Dense to keep a single pass per row with flat indexing.
//   - Skipping zero x[j] helps when x is sparse-ish.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc, xv float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				xv = x[j]
				if xv != 0 { // skip zero multiplications
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// VecMat computes the row-vector product y = x * m, i.e. y[j] = Σ_i x[i]·m[i,j].
//
// Contract: m non-nil; x non-nil; len(x) == m.Rows().
// Determinism: fixed j-outer, i-inner accumulation order so that every y[j]
// sums its terms in increasing i.
// Complexity: Time O(r*c), Space O(c) for y.
//
// AI-Hints:
//   - One step of a Markov chain's distribution: π_{t+1} = VecMat(π_t, P).
func VecMat(x []float64, m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	y := make([]float64, m.Cols())
	vecMatInto(y, x, m)

	return y, nil
}

// vecMatInto writes x*m into dst without validation; shapes are the caller's contract.
// Shared by VecMat and PowerIterate so both accumulate in the same order.
func vecMatInto(dst, x []float64, m Matrix) {
	rows, cols := m.Rows(), m.Cols()
	var i, j int
	var acc float64
	if d, ok := m.(*Dense); ok {
		for j = 0; j < cols; j++ {
			acc = ZeroSum
			for i = 0; i < rows; i++ {
				acc += x[i] * d.data[i*cols+j]
			}
			dst[j] = acc
		}

		return
	}

	var v float64
	for j = 0; j < cols; j++ {
		acc = ZeroSum
		for i = 0; i < rows; i++ {
			v, _ = m.At(i, j) // bounds are guaranteed by the loop limits
			acc += x[i] * v
		}
		dst[j] = acc
	}
}
