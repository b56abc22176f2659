// SPDX-License-Identifier: MIT
// Package: markov
//
// Purpose:
//   - Expected time to absorption for absorbing chains via the fundamental system (I − Q)·t = 1.

package markov

import (
	"github.com/katalvlaran/stochastic/matrix"
)

// Absorption computes the expected number of steps until a transient state
// reaches any absorbing state.
// MAIN DESCRIPTION:
//   - Absorbing states have P[i][i] == 1.0 exactly; every other state is transient.
//   - Q is the transient-to-transient block; (I − Q)·t = 1 is solved with matrix.Solve.
//
// Returns:
//   - (table, true, nil) when the chain has at least one absorbing and one transient state.
//   - (nil, false, nil) when either set is empty: the result is not applicable,
//     which is neither an error nor a zero table.
//
// Errors:
//   - ErrNilChain, matrix.ErrSingular (a transient class that can never be left).
//
// Complexity:
//   - Time O(N²) to split + O(T³) for the solve over T transient states.
func Absorption(c *Chain, opts ...Option) (*AbsorptionTable, bool, error) {
	if c == nil {
		return nil, false, markovErrorf(opAbsorption, ErrNilChain)
	}
	o := gatherOptions(opts...)
	n := c.Len()

	// Stage 1 (Split): exact equality on the diagonal.
	var absorbing, transient []int
	var v float64
	for i := 0; i < n; i++ {
		v, _ = c.p.At(i, i)
		if v == 1.0 {
			absorbing = append(absorbing, i)
		} else {
			transient = append(transient, i)
		}
	}
	if len(absorbing) == 0 || len(transient) == 0 {
		return nil, false, nil
	}

	// Stage 2 (System): (I − Q)·t = 1.
	Q, err := c.p.Induced(transient, transient)
	if err != nil {
		return nil, false, markovErrorf(opAbsorption, err)
	}
	I, err := matrix.IdentityLike(Q)
	if err != nil {
		return nil, false, markovErrorf(opAbsorption, err)
	}
	IQ, err := matrix.Sub(I, Q)
	if err != nil {
		return nil, false, markovErrorf(opAbsorption, err)
	}
	ones := make([]float64, len(transient))
	for i := range ones {
		ones[i] = 1
	}
	t, err := matrix.Solve(IQ, ones, matrix.WithPivotTolerance(o.PivotTolerance))
	if err != nil {
		return nil, false, markovErrorf(opAbsorption, err)
	}

	// Stage 3 (Map back)
	table := &AbsorptionTable{
		Absorbing: c.labels(absorbing),
		Transient: c.labels(transient),
		Times:     make(map[string]float64, len(transient)),
	}
	for k, idx := range transient {
		table.Times[c.states[idx]] = t[k]
	}

	return table, true, nil
}

// labels maps indices to state names.
func (c *Chain) labels(idx []int) []string {
	out := make([]string, len(idx))
	for k, i := range idx {
		out[k] = c.states[i]
	}

	return out
}
