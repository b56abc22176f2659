// SPDX-License-Identifier: MIT
// Package: markov
//
// Purpose:
//   - Chain: a row-stochastic transition matrix bound to a canonical state order.
//   - Build: estimate a Chain from one observed state sequence.

package markov

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/stochastic/matrix"
)

// Operation tags for error wrapping.
const (
	opBuild        = "Build"
	opNewChain     = "NewChain"
	opSteadyState  = "SteadyState"
	opFirstPassage = "FirstPassage"
	opAbsorption   = "Absorption"
	opClassify     = "Classify"
	opAnalyze      = "Analyze"
)

// markovErrorf wraps err with an operation tag; errors.Is keeps working.
func markovErrorf(tag string, err error) error {
	return fmt.Errorf("markov.%s: %w", tag, err)
}

// Chain is a finite first-order Markov chain.
//
// P is N×N and row-stochastic; row and column i belong to States[i].
// A Chain is immutable after construction and safe for concurrent analyses.
type Chain struct {
	states []string
	index  map[string]int
	p      *matrix.Dense
}

// NewChain binds a caller-supplied transition matrix to a state order.
//
// The matrix is copied. It must be square with len(states) rows, finite,
// non-negative and every row must sum to 1 within DefaultStochasticTolerance.
//
// Errors: ErrDuplicateState, ErrNotStochastic, matrix.ErrDimensionMismatch,
// matrix.ErrNilMatrix, matrix.ErrNaNInf.
func NewChain(states []string, p matrix.Matrix) (*Chain, error) {
	index, err := indexStates(states)
	if err != nil {
		return nil, markovErrorf(opNewChain, err)
	}
	if err = matrix.ValidateSquareNonNil(p); err != nil {
		return nil, markovErrorf(opNewChain, err)
	}
	if p.Rows() != len(states) {
		return nil, markovErrorf(opNewChain, fmt.Errorf("%d states for a %d×%d matrix: %w",
			len(states), p.Rows(), p.Cols(), matrix.ErrDimensionMismatch))
	}
	if err = matrix.ValidateRowStochastic(p, DefaultStochasticTolerance); err != nil {
		if errors.Is(err, matrix.ErrNotStochastic) {
			return nil, markovErrorf(opNewChain, fmt.Errorf("%w: %w", ErrNotStochastic, err))
		}
		return nil, markovErrorf(opNewChain, err)
	}

	return &Chain{
		states: append([]string(nil), states...),
		index:  index,
		p:      denseCopy(p),
	}, nil
}

// Build estimates a Chain from an observed state sequence.
// MAIN DESCRIPTION:
//   - Count transitions between consecutive labels and normalise every row.
//
// Implementation:
//   - Stage 1: resolve the state order (WithStateOrder, else sorted unique labels).
//   - Stage 2: counts[index(a)][index(b)]++ for each consecutive pair (a, b).
//   - Stage 3: L1-normalise rows; rows with no observed outgoing transition become
//     an absorbing self-loop (a single 1.0 on the diagonal).
//
// Behavior highlights:
//   - A sequence of length 1 yields no transitions: every row is absorbing.
//   - States listed in an explicit order but never observed are absorbing.
//
// Errors:
//   - ErrEmptySequence, ErrUnknownState (label missing from the explicit order),
//     ErrDuplicateState (explicit order lists a label twice).
//
// Complexity:
//   - Time O(L + N²) for a sequence of length L with N states (plus O(N log N) sorting).
func Build(seq []string, opts ...Option) (*Chain, error) {
	if len(seq) == 0 {
		return nil, markovErrorf(opBuild, ErrEmptySequence)
	}
	o := gatherOptions(opts...)

	// Stage 1 (Order)
	states := o.StateOrder
	if states == nil {
		states = sortedUnique(seq)
	}
	index, err := indexStates(states)
	if err != nil {
		return nil, markovErrorf(opBuild, err)
	}
	n := len(states)
	if n == 0 {
		return nil, markovErrorf(opBuild, fmt.Errorf("empty state order: %w", ErrUnknownState))
	}

	// Stage 2 (Count)
	counts, err := matrix.NewZeros(n, n)
	if err != nil {
		return nil, markovErrorf(opBuild, err)
	}
	positions := make([]int, len(seq))
	for t, label := range seq {
		i, ok := index[label]
		if !ok {
			return nil, markovErrorf(opBuild, fmt.Errorf("label %q at position %d: %w", label, t, ErrUnknownState))
		}
		positions[t] = i
	}
	var c float64
	for t := 1; t < len(positions); t++ {
		c, _ = counts.At(positions[t-1], positions[t])
		_ = counts.Set(positions[t-1], positions[t], c+1)
	}

	// Stage 3 (Normalise)
	norm, sums, err := matrix.NormalizeRowsL1(counts)
	if err != nil {
		return nil, markovErrorf(opBuild, err)
	}
	p := denseCopy(norm)
	for i := 0; i < n; i++ {
		if sums[i] == 0 {
			_ = p.Set(i, i, 1.0)
		}
	}

	return &Chain{
		states: append([]string(nil), states...),
		index:  index,
		p:      p,
	}, nil
}

// States returns a copy of the canonical state order.
func (c *Chain) States() []string { return append([]string(nil), c.states...) }

// Len returns the number of states.
func (c *Chain) Len() int { return len(c.states) }

// Index returns the position of state in the canonical order.
func (c *Chain) Index(state string) (int, bool) {
	i, ok := c.index[state]
	return i, ok
}

// Matrix returns a copy of the transition matrix.
func (c *Chain) Matrix() *matrix.Dense { return denseCopy(c.p) }

// Prob returns P[from][to]; unknown labels yield ErrUnknownState.
func (c *Chain) Prob(from, to string) (float64, error) {
	i, ok := c.index[from]
	if !ok {
		return 0, fmt.Errorf("markov: %q: %w", from, ErrUnknownState)
	}
	j, ok := c.index[to]
	if !ok {
		return 0, fmt.Errorf("markov: %q: %w", to, ErrUnknownState)
	}

	return c.p.At(i, j)
}

// Rows returns the transition matrix as a fresh [][]float64.
func (c *Chain) Rows() [][]float64 {
	out := make([][]float64, len(c.states))
	for i := range out {
		out[i], _ = c.p.Row(i)
	}

	return out
}

// sortedUnique returns the distinct labels of seq in lexicographic order.
func sortedUnique(seq []string) []string {
	seen := make(map[string]struct{}, len(seq))
	out := make([]string, 0, len(seq))
	for _, s := range seq {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

// indexStates builds the label → index lookup, rejecting duplicates.
func indexStates(states []string) (map[string]int, error) {
	index := make(map[string]int, len(states))
	for i, s := range states {
		if _, dup := index[s]; dup {
			return nil, fmt.Errorf("%q: %w", s, ErrDuplicateState)
		}
		index[s] = i
	}

	return index, nil
}

// denseCopy returns a *Dense clone of any Matrix.
func denseCopy(m matrix.Matrix) *matrix.Dense {
	if d, ok := m.(*matrix.Dense); ok {
		return d.Clone().(*matrix.Dense)
	}
	r, c := m.Rows(), m.Cols()
	out, _ := matrix.NewDense(r, c)
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, _ = m.At(i, j)
			_ = out.Set(i, j, v)
		}
	}

	return out
}
