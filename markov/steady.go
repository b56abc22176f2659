// SPDX-License-Identifier: MIT
// Package: markov
//
// Purpose:
//   - Long-run behaviour of a chain: stationary distribution and mean recurrence times.

package markov

import (
	"fmt"

	"github.com/katalvlaran/stochastic/matrix"
)

// SteadyState approximates the stationary distribution π = πP by power iteration.
// MAIN DESCRIPTION:
//   - Uniform start; x ← xP renormalised by its sum; stop when the L1 step drops
//     below Tolerance or after MaxIter steps.
//
// Behavior highlights:
//   - Hitting MaxIter is not an error: the latest iterate is returned and
//     Distribution.Convergence.Converged is false.
//   - With several closed classes the result depends on the uniform start and is
//     reported as-is, unless WithRejectMultipleClosedClasses is set.
//
// Errors:
//   - ErrNilChain, ErrMultipleClosedClasses (opt-in), matrix.ErrZeroMass.
//
// Complexity:
//   - Time O(k·N²) for k iterations (+ O(N³) when the class check is enabled).
func SteadyState(c *Chain, opts ...Option) (*Distribution, error) {
	if c == nil {
		return nil, markovErrorf(opSteadyState, ErrNilChain)
	}
	o := gatherOptions(opts...)

	if o.RejectMultipleClosedClasses {
		classes, err := Classify(c)
		if err != nil {
			return nil, markovErrorf(opSteadyState, err)
		}
		closed := 0
		for _, cl := range classes {
			if cl.Closed {
				closed++
			}
		}
		if closed > 1 {
			return nil, markovErrorf(opSteadyState, fmt.Errorf("%d closed classes: %w", closed, ErrMultipleClosedClasses))
		}
	}

	pi, conv, err := matrix.PowerIterate(c.p, matrix.WithTolerance(o.Tolerance), matrix.WithMaxIter(o.MaxIter))
	if err != nil {
		return nil, markovErrorf(opSteadyState, err)
	}

	return &Distribution{
		States:      c.States(),
		Probs:       pi,
		Convergence: conv,
	}, nil
}

// RecurrenceTimes returns the mean recurrence time 1/π for every state of d.
// States with π == 0 never recur from the stationary regime; they are listed
// in Unreachable (in canonical order) rather than mapped to +Inf.
//
// A nil distribution yields an empty Recurrence.
//
// Complexity: O(N).
func RecurrenceTimes(d *Distribution) *Recurrence {
	if d == nil {
		return &Recurrence{Times: map[string]float64{}}
	}
	rec := &Recurrence{Times: make(map[string]float64, len(d.States))}
	for i, s := range d.States {
		if d.Probs[i] == 0 {
			rec.Unreachable = append(rec.Unreachable, s)
			continue
		}
		rec.Times[s] = 1.0 / d.Probs[i]
	}

	return rec
}
