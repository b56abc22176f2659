// SPDX-License-Identifier: MIT
// Package: markov
//
// Purpose:
//   - Split a chain into communicating classes and mark the closed (recurrent) ones.

package markov

import (
	"github.com/katalvlaran/stochastic/matrix"
)

// Classify partitions the states of c into communicating classes.
//
// Two states communicate when each reaches the other through transitions of
// positive probability. A class is closed when none of its states reaches a
// state outside it. Classes are returned ordered by their first state in the
// canonical order; states inside a class keep that order too.
//
// Errors: ErrNilChain.
// Complexity: O(N³) for the transitive closure.
func Classify(c *Chain) ([]Class, error) {
	if c == nil {
		return nil, markovErrorf(opClassify, ErrNilChain)
	}
	R, err := matrix.Reachability(c.p)
	if err != nil {
		return nil, markovErrorf(opClassify, err)
	}
	n := c.Len()

	reach := func(i, j int) bool {
		v, _ := R.At(i, j)
		return v != 0
	}

	assigned := make([]bool, n)
	var classes []Class
	var i, j, k int
	for i = 0; i < n; i++ {
		if assigned[i] {
			continue
		}
		var members []int
		for j = i; j < n; j++ {
			if !assigned[j] && reach(i, j) && reach(j, i) {
				assigned[j] = true
				members = append(members, j)
			}
		}

		closed := true
		inClass := make(map[int]bool, len(members))
		for _, m := range members {
			inClass[m] = true
		}
	scan:
		for _, m := range members {
			for k = 0; k < n; k++ {
				if !inClass[k] && reach(m, k) {
					closed = false
					break scan
				}
			}
		}

		classes = append(classes, Class{States: c.labels(members), Closed: closed})
	}

	return classes, nil
}
