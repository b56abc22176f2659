// SPDX-License-Identifier: MIT
package hmm

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/stochastic/matrix"
)

// Forward returns the total likelihood P(O | model) of obs.
// MAIN DESCRIPTION:
//   - α₀[i] = start[i]·e(i, o₀)
//   - αₜ[j] = (Σᵢ αₜ₋₁[i]·trans[i][j])·e(j, oₜ)
//   - P(O)  = Σᵢ α_{T−1}[i]
//
// Symbols missing from a state's emission table (or from the alphabet) use the
// unseen-emission probability, so an unexpected symbol never forces exact zero.
//
// Errors: ErrNilModel, ErrEmptyObservations.
// Complexity: Time O(T·N²), Space O(N) per step.
func (m *Model) Forward(obs []string) (float64, error) {
	if m == nil {
		return 0, hmmErrorf(opForward, ErrNilModel)
	}
	if len(obs) == 0 {
		return 0, hmmErrorf(opForward, ErrEmptyObservations)
	}
	n := len(m.states)

	alpha := make([]float64, n)
	var i int
	for i = 0; i < n; i++ {
		alpha[i] = m.start[i] * m.emission(i, obs[0])
	}

	var err error
	for t := 1; t < len(obs); t++ {
		// alpha[j] = Σᵢ alpha[i]·trans[i][j], accumulated in increasing i.
		if alpha, err = matrix.VecMat(alpha, m.trans); err != nil {
			return 0, hmmErrorf(opForward, err)
		}
		for i = 0; i < n; i++ {
			alpha[i] *= m.emission(i, obs[t])
		}
	}

	return floats.Sum(alpha), nil
}
