// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense transitive closure (Warshall) over the positive-entry pattern of a square matrix.
//   - Used to split a chain's states into communicating classes.
//
// Contract:
//   - Square matrix; an entry > 0 is an edge i→j; every state reaches itself (0 steps).

package matrix

import "fmt"

// Reachability returns R with R[i,j] = 1 when j is reachable from i through a
// path of strictly positive entries (or i == j), and 0 otherwise.
// MAIN DESCRIPTION:
//   - Boolean closure of the support graph of m; the input is not mutated.
//
// Implementation:
//   - Stage 1: validate square non-nil input; seed a private bool buffer from m > 0
//     plus the diagonal.
//   - Stage 2: Warshall closure with fixed k → i → j loop order.
//   - Stage 3: materialise a 0/1 Dense.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Loop order is fixed (k → i → j).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// AI-Hints:
//   - i and j communicate iff R[i,j] == R[j,i] == 1.
//   - A class C is closed iff no i ∈ C reaches a state outside C.
func Reachability(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opReachability, err)
	}
	n := m.Rows()

	// Stage 1 (Seed)
	reach := make([]bool, n*n)
	var i, j, k, baseI, baseK int
	var v float64
	var err error
	for i = 0; i < n; i++ {
		baseI = i * n
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opReachability, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			reach[baseI+j] = i == j || v > 0
		}
	}

	// Stage 2 (Closure): i reaches j if i reaches k and k reaches j.
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			baseI = i * n
			if !reach[baseI+k] { // i cannot reach k: no improvement via k
				continue
			}
			for j = 0; j < n; j++ {
				if reach[baseK+j] {
					reach[baseI+j] = true
				}
			}
		}
	}

	// Stage 3 (Materialise)
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opReachability, err)
	}
	for i = range reach {
		if reach[i] {
			out.data[i] = 1
		}
	}

	return out, nil
}
