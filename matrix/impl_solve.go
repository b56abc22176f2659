// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense linear solver Ax = b (Gaussian elimination with row pivoting).
//   - Shared by first-passage and absorption computations in the markov package.
//
// Contract:
//   - A square (n×n), len(b) == n, all entries finite.
//   - A and b are read-only: elimination runs on a private copy allocated per call,
//     so concurrent callers never share scratch buffers.

package matrix

import (
	"fmt"
	"math"
)

// Solve returns x such that A·x = b.
// MAIN DESCRIPTION:
//   - Gaussian elimination with row pivoting followed by back-substitution.
//
// Implementation:
//   - Stage 1: validate A (non-nil, square), len(b) == n and finiteness; copy A and b
//     into private row-major scratch.
//   - Stage 2: for each pivot column i: when |a[i,i]| ≤ pivot tolerance, swap in the
//     first subsequent row j with |a[j,i]| > tolerance (b swapped alongside); if none
//     exists the system is singular. Divide the pivot row (and b[i]) by the pivot,
//     then eliminate column i from every row below.
//   - Stage 3: back-substitute x[i] = b[i] − Σ_{j>i} a[i,j]·x[j] for i = n−1..0.
//
// Behavior highlights:
//   - A swap is attempted only when the current pivot is numerically zero; the
//     first qualifying row wins (deterministic).
//   - No iterative refinement; exact up to floating-point rounding.
//
// Inputs:
//   - A: square coefficient matrix (not mutated).
//   - b: right-hand side of length n (not mutated).
//   - opts: WithPivotTolerance (default DefaultPivotTolerance).
//
// Returns:
//   - []float64: fresh solution vector of length n.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shape / len(b)), ErrNaNInf (non-finite input),
//     ErrSingular (no usable pivot in some column).
//
// Determinism:
//   - Fixed i→j→k loop order; identical inputs give bit-identical outputs.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the private copy.
//
// AI-Hints:
//   - Pass *Dense to hit the flat-copy fast path.
//   - For many right-hand sides with the same A, a factorization would be cheaper;
//     the markov package deliberately solves each system independently.
func Solve(A Matrix, b []float64, opts ...Option) ([]float64, error) {
	// Stage 1 (Validate)
	if err := ValidateSquareNonNil(A); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := A.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateFiniteVec(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)
	tol := o.pivotTol

	// Stage 1 (Prepare): private copies; the caller's data is never touched.
	a, err := flatCopy(A)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	rhs := make([]float64, n)
	copy(rhs, b)

	// Stage 2 (Forward elimination)
	var i, j, k, base, pbase int
	var pivot, factor float64
	for i = 0; i < n; i++ {
		pbase = i * n
		if math.Abs(a[pbase+i]) <= tol {
			// Search subsequent rows for a usable pivot in column i.
			swapped := false
			for j = i + 1; j < n; j++ {
				if math.Abs(a[j*n+i]) > tol {
					swapRows(a, n, i, j)
					rhs[i], rhs[j] = rhs[j], rhs[i]
					swapped = true
					break
				}
			}
			if !swapped {
				return nil, matrixErrorf(opSolve, fmt.Errorf("column %d: %w", i, ErrSingular))
			}
		}

		// Normalize the pivot row so that a[i,i] == 1.
		pivot = a[pbase+i]
		for k = i; k < n; k++ {
			a[pbase+k] /= pivot
		}
		rhs[i] /= pivot

		// Eliminate column i from all rows below.
		for j = i + 1; j < n; j++ {
			base = j * n
			factor = a[base+i]
			if factor == 0 {
				continue
			}
			for k = i; k < n; k++ {
				a[base+k] -= factor * a[pbase+k]
			}
			rhs[j] -= factor * rhs[i]
		}
	}

	// Stage 3 (Back-substitution): unit diagonal after normalization.
	x := make([]float64, n)
	var sum float64
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		base = i * n
		for j = i + 1; j < n; j++ {
			sum += a[base+j] * x[j]
		}
		x[i] = rhs[i] - sum
	}

	return x, nil
}

// flatCopy returns a private row-major copy of a square matrix, rejecting non-finite entries.
// Complexity: O(n^2).
func flatCopy(m Matrix) ([]float64, error) {
	r, c := m.Rows(), m.Cols()
	out := make([]float64, r*c)
	if d, ok := m.(*Dense); ok {
		copy(out, d.data)
	} else {
		var i, j int
		var v float64
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
				}
				out[i*c+j] = v
			}
		}
	}
	if err := ValidateFiniteVec(out); err != nil {
		return nil, err
	}

	return out, nil
}

// swapRows exchanges rows i and j of an n-column row-major buffer in place.
func swapRows(a []float64, n, i, j int) {
	ri, rj := a[i*n:(i+1)*n], a[j*n:(j+1)*n]
	for k := 0; k < n; k++ {
		ri[k], rj[k] = rj[k], ri[k]
	}
}
