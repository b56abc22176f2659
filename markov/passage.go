// SPDX-License-Identifier: MIT
// Package: markov
//
// Purpose:
//   - Mean first-passage times E[T i→j] for every ordered pair of distinct states.

package markov

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stochastic/matrix"
)

// FirstPassage computes the expected number of steps to first reach j from i
// for every ordered pair i ≠ j.
// MAIN DESCRIPTION:
//   - For target j, build the N×N system whose row j is the identity row (x_j = 0)
//     and whose every other row k reads x_k − Σ_{l≠j} P[k][l]·x_l = 1; solve it and
//     read E[T i→j] = x_i.
//
// Implementation:
//   - Stage 1: validate the chain; resolve options.
//   - Stage 2: for each target j and each source i ≠ j build a fresh system and solve
//     it with matrix.Solve. Every pair gets its own solve; nothing is shared.
//   - Stage 3: collect x_i into Times[States[i]][States[j]].
//
// Behavior highlights:
//   - A singular system (typically an absorbing state other than the target, which
//     can never reach it) aborts with matrix.ErrSingular, wrapped with the pair.
//   - Under WithSkipSingular the pair is recorded in Singular and skipped instead.
//
// Errors:
//   - ErrNilChain, matrix.ErrSingular.
//
// Complexity:
//   - Time O(N²·N³) = O(N⁵), Space O(N²) per solve.
func FirstPassage(c *Chain, opts ...Option) (*FirstPassageTable, error) {
	// Stage 1 (Validate)
	if c == nil {
		return nil, markovErrorf(opFirstPassage, ErrNilChain)
	}
	o := gatherOptions(opts...)
	n := c.Len()

	table := &FirstPassageTable{Times: make(map[string]map[string]float64, n)}

	// Stage 2 (Solve per pair)
	var i, j int
	for j = 0; j < n; j++ {
		for i = 0; i < n; i++ {
			if i == j {
				continue
			}
			A, b, err := passageSystem(c.p, j)
			if err != nil {
				return nil, markovErrorf(opFirstPassage, err)
			}
			x, err := matrix.Solve(A, b, matrix.WithPivotTolerance(o.PivotTolerance))
			if err != nil {
				if o.SkipSingular && errors.Is(err, matrix.ErrSingular) {
					table.Singular = append(table.Singular, Pair{From: c.states[i], To: c.states[j]})
					continue
				}
				return nil, markovErrorf(opFirstPassage, fmt.Errorf("%q→%q: %w", c.states[i], c.states[j], err))
			}

			// Stage 3 (Collect)
			row, ok := table.Times[c.states[i]]
			if !ok {
				row = make(map[string]float64, n-1)
				table.Times[c.states[i]] = row
			}
			row[c.states[j]] = x[i]
		}
	}

	return table, nil
}

// passageSystem builds the coefficient matrix and right-hand side for target j.
func passageSystem(P *matrix.Dense, j int) (*matrix.Dense, []float64, error) {
	n := P.Rows()
	A, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, nil, err
	}
	b := make([]float64, n)
	var k, l int
	var v float64
	for k = 0; k < n; k++ {
		if k == j {
			continue // identity row forces x_j = 0, b_j = 0
		}
		b[k] = 1
		for l = 0; l < n; l++ {
			if l == j {
				continue
			}
			v, _ = P.At(k, l)
			if l == k {
				v = 1 - v
			} else {
				v = -v
			}
			if err = A.Set(k, l, v); err != nil {
				return nil, nil, err
			}
		}
	}

	return A, b, nil
}
