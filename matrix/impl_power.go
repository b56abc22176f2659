// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Power iteration for the left fixed point of a (row-stochastic) matrix: π = πP.
//   - Single kernel shared by the observed-chain and hidden-chain steady states.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// PowerIterate approximates the stationary row vector of P by repeated
// multiplication from the uniform distribution.
// MAIN DESCRIPTION:
//   - x₀ = (1/n, …, 1/n); x_{t+1} = normalize(x_t · P); stop once ‖x_{t+1} − x_t‖₁ < tol.
//
// Implementation:
//   - Stage 1: validate P (non-nil, square) and resolve tol/maxIter from options.
//   - Stage 2: iterate at most maxIter times; each step multiplies, renormalises by the
//     new sum, measures the L1 step and swaps buffers.
//   - Stage 3: return the latest iterate and a Convergence record.
//
// Behavior highlights:
//   - Exceeding maxIter is NOT an error: the best available iterate is returned with
//     Converged == false and the last Residual.
//   - Rows are not required to sum to 1; renormalisation keeps the iterate a distribution.
//   - With several closed classes the limit depends on the starting vector and is
//     reported as-is.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//   - ErrZeroMass when an iterate sums to exactly 0.
//   - ErrNaNInf when an iterate sum is not finite.
//
// Determinism:
//   - Fixed accumulation order (see vecMatInto); buffers are allocated per call.
//
// Complexity:
//   - Time O(k·n²) for k iterations, Space O(n).
//
// AI-Hints:
//   - Inspect Convergence.Residual when strict convergence matters (periodic chains
//     oscillate and never meet tol).
func PowerIterate(P Matrix, opts ...Option) ([]float64, Convergence, error) {
	var conv Convergence
	// Stage 1 (Validate)
	if err := ValidateSquareNonNil(P); err != nil {
		return nil, conv, matrixErrorf(opPowerIterate, err)
	}
	o := gatherOptions(opts...)
	n := P.Rows()

	// Stage 2 (Prepare): uniform start, two per-call buffers.
	cur := make([]float64, n)
	next := make([]float64, n)
	uniform := 1.0 / float64(n)
	for i := range cur {
		cur[i] = uniform
	}

	var sum float64
	for conv.Iterations < o.maxIter {
		vecMatInto(next, cur, P)
		conv.Iterations++

		sum = floats.Sum(next)
		if math.IsNaN(sum) || math.IsInf(sum, 0) {
			return nil, conv, matrixErrorf(opPowerIterate, fmt.Errorf("iteration %d: %w", conv.Iterations, ErrNaNInf))
		}
		if sum == 0 {
			return nil, conv, matrixErrorf(opPowerIterate, fmt.Errorf("iteration %d: %w", conv.Iterations, ErrZeroMass))
		}

		floats.Scale(1/sum, next)
		conv.Residual = floats.Distance(next, cur, 1)
		cur, next = next, cur
		if conv.Residual < o.tol {
			conv.Converged = true
			break
		}
	}

	// Stage 3 (Finalize)
	return cur, conv, nil
}
