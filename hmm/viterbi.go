// SPDX-License-Identifier: MIT
package hmm

import "gonum.org/v1/gonum/floats"

// Viterbi returns the most likely hidden-state path for obs.
// MAIN DESCRIPTION:
//   - δ₀[i] = start[i]·e(i, o₀)
//   - δₜ[j] = maxᵢ(δₜ₋₁[i]·trans[i][j])·e(j, oₜ), ψₜ[j] = argmax
//   - the last state maximises δ_{T−1}; back-pointers are followed from T−1 to 1.
//
// Tie-break:
//   - Each predecessor scan is seeded with probability 0 and back-pointer 0; only a
//     strictly greater candidate replaces the best, so ties keep the lowest index
//     and a state unreachable from every predecessor keeps back-pointer 0.
//   - The final state is the first index holding the maximum of δ_{T−1}.
//
// Errors: ErrNilModel, ErrEmptyObservations.
// Complexity: Time O(T·N²), Space O(T·N) for the back-pointers.
func (m *Model) Viterbi(obs []string) (*Path, error) {
	if m == nil {
		return nil, hmmErrorf(opViterbi, ErrNilModel)
	}
	T := len(obs)
	if T == 0 {
		return nil, hmmErrorf(opViterbi, ErrEmptyObservations)
	}
	n := len(m.states)

	delta := make([]float64, n)
	next := make([]float64, n)
	back := make([][]int, T) // back[0] is unused
	var i, j, t, arg int
	var best, p, tij float64
	for i = 0; i < n; i++ {
		delta[i] = m.start[i] * m.emission(i, obs[0])
	}

	for t = 1; t < T; t++ {
		back[t] = make([]int, n)
		for j = 0; j < n; j++ {
			best, arg = 0, 0
			for i = 0; i < n; i++ {
				tij, _ = m.trans.At(i, j)
				p = delta[i] * tij
				if p > best {
					best, arg = p, i
				}
			}
			next[j] = best * m.emission(j, obs[t])
			back[t][j] = arg
		}
		delta, next = next, delta
	}

	// Termination: first index wins ties.
	last := floats.MaxIdx(delta)

	idx := make([]int, T)
	idx[T-1] = last
	for t = T - 1; t > 0; t-- {
		idx[t-1] = back[t][idx[t]]
	}
	path := &Path{States: make([]string, T), Probability: delta[last]}
	for t = range idx {
		path.States[t] = m.states[idx[t]]
	}

	return path, nil
}
