// SPDX-License-Identifier: MIT
package hmm

import (
	"github.com/katalvlaran/stochastic/markov"
	"github.com/katalvlaran/stochastic/matrix"
)

// SteadyState returns the long-run distribution of the hidden chain.
//
// It runs the same power iteration as markov.SteadyState over the transition
// table only; emissions play no role. Rows need not sum to 1 because every
// iterate is renormalised. A capped run is reported through Convergence.
//
// Errors: ErrNilModel, matrix.ErrZeroMass (e.g. an all-zero transition table).
// Complexity: O(k·N²) for k iterations.
func (m *Model) SteadyState() (*markov.Distribution, error) {
	if m == nil {
		return nil, hmmErrorf(opSteadyState, ErrNilModel)
	}
	pi, conv, err := matrix.PowerIterate(m.trans,
		matrix.WithTolerance(m.opts.tol),
		matrix.WithMaxIter(m.opts.maxIter),
	)
	if err != nil {
		return nil, hmmErrorf(opSteadyState, err)
	}

	return &markov.Distribution{
		States:      m.States(),
		Probs:       pi,
		Convergence: conv,
	}, nil
}

// Analyze runs Forward, Viterbi and SteadyState for obs.
//
// Errors: the first error of any of the three, tagged with Analyze.
func (m *Model) Analyze(obs []string) (*Report, error) {
	if m == nil {
		return nil, hmmErrorf(opAnalyze, ErrNilModel)
	}
	likelihood, err := m.Forward(obs)
	if err != nil {
		return nil, hmmErrorf(opAnalyze, err)
	}
	path, err := m.Viterbi(obs)
	if err != nil {
		return nil, hmmErrorf(opAnalyze, err)
	}
	steady, err := m.SteadyState()
	if err != nil {
		return nil, hmmErrorf(opAnalyze, err)
	}
	dominant, _ := steady.Dominant()

	return &Report{
		Observations: append([]string(nil), obs...),
		Likelihood:   likelihood,
		Path:         path,
		SteadyState:  steady,
		Dominant:     dominant,
	}, nil
}
