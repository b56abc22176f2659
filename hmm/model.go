// SPDX-License-Identifier: MIT
// Package: hmm
//
// Purpose:
//   - Model: the indexed form of a Spec. Keys are resolved once so the dynamic
//     programs run over dense tables.

package hmm

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/stochastic/matrix"
)

const (
	opNew         = "New"
	opForward     = "Forward"
	opViterbi     = "Viterbi"
	opSteadyState = "SteadyState"
	opAnalyze     = "Analyze"
)

func hmmErrorf(tag string, err error) error {
	return fmt.Errorf("hmm.%s: %w", tag, err)
}

// Model is an immutable discrete HMM over indexed tables.
type Model struct {
	states    []string
	stateIdx  map[string]int
	symbols   []string
	symbolIdx map[string]int

	start []float64     // N
	trans *matrix.Dense // N×N
	emit  [][]float64   // N×M, unseen cells already filled

	opts Options
}

// New converts spec into a Model.
// MAIN DESCRIPTION:
//   - Resolve state and symbol names to indices once; fill dense start,
//     transition and emission tables.
//
// Implementation:
//   - Stage 1: index States (ErrNoStates, ErrDuplicateState).
//   - Stage 2: alphabet = sorted union of Emission keys.
//   - Stage 3: fill start/transition with 0 defaults and emission with the unseen
//     probability; reject keys naming undeclared states (ErrUnknownState) and
//     non-finite values (matrix.ErrNaNInf).
//
// Complexity: O(N² + N·M + M log M).
func New(spec Spec, opts ...Option) (*Model, error) {
	o := gatherOptions(opts...)

	// Stage 1 (States)
	n := len(spec.States)
	if n == 0 {
		return nil, hmmErrorf(opNew, ErrNoStates)
	}
	stateIdx := make(map[string]int, n)
	for i, s := range spec.States {
		if _, dup := stateIdx[s]; dup {
			return nil, hmmErrorf(opNew, fmt.Errorf("%q: %w", s, ErrDuplicateState))
		}
		stateIdx[s] = i
	}

	// Stage 2 (Alphabet)
	seen := make(map[string]struct{})
	for _, row := range spec.Emission {
		for sym := range row {
			seen[sym] = struct{}{}
		}
	}
	symbols := make([]string, 0, len(seen))
	for sym := range seen {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	symbolIdx := make(map[string]int, len(symbols))
	for k, sym := range symbols {
		symbolIdx[sym] = k
	}

	// Stage 3 (Tables)
	lookup := func(section, name string) (int, error) {
		i, ok := stateIdx[name]
		if !ok {
			return 0, fmt.Errorf("%s key %q: %w", section, name, ErrUnknownState)
		}
		return i, nil
	}

	start := make([]float64, n)
	for name, p := range spec.Start {
		i, err := lookup("start", name)
		if err != nil {
			return nil, hmmErrorf(opNew, err)
		}
		start[i] = p
	}
	if err := matrix.ValidateFiniteVec(start); err != nil {
		return nil, hmmErrorf(opNew, fmt.Errorf("start: %w", err))
	}

	trans, err := matrix.NewZeros(n, n)
	if err != nil {
		return nil, hmmErrorf(opNew, err)
	}
	for from, row := range spec.Transition {
		i, err := lookup("transition", from)
		if err != nil {
			return nil, hmmErrorf(opNew, err)
		}
		for to, p := range row {
			j, err := lookup("transition", to)
			if err != nil {
				return nil, hmmErrorf(opNew, err)
			}
			if err = trans.Set(i, j, p); err != nil {
				return nil, hmmErrorf(opNew, fmt.Errorf("transition %q→%q: %w", from, to, err))
			}
		}
	}

	emit := make([][]float64, n)
	for i := range emit {
		emit[i] = make([]float64, len(symbols))
		for k := range emit[i] {
			emit[i][k] = o.unseen
		}
	}
	for name, row := range spec.Emission {
		i, err := lookup("emission", name)
		if err != nil {
			return nil, hmmErrorf(opNew, err)
		}
		for sym, p := range row {
			if math.IsNaN(p) || math.IsInf(p, 0) {
				return nil, hmmErrorf(opNew, fmt.Errorf("emission %q/%q: %w", name, sym, matrix.ErrNaNInf))
			}
			emit[i][symbolIdx[sym]] = p
		}
	}

	return &Model{
		states:    append([]string(nil), spec.States...),
		stateIdx:  stateIdx,
		symbols:   symbols,
		symbolIdx: symbolIdx,
		start:     start,
		trans:     trans,
		emit:      emit,
		opts:      o,
	}, nil
}

// States returns a copy of the hidden-state order.
func (m *Model) States() []string { return append([]string(nil), m.states...) }

// Symbols returns a copy of the observation alphabet (sorted).
func (m *Model) Symbols() []string { return append([]string(nil), m.symbols...) }

// UnseenEmission returns the probability used for symbols missing from a state's table.
func (m *Model) UnseenEmission() float64 { return m.opts.unseen }

// emission returns P(symbol | state i); unknown symbols take the unseen probability.
func (m *Model) emission(i int, symbol string) float64 {
	k, ok := m.symbolIdx[symbol]
	if !ok {
		return m.opts.unseen
	}

	return m.emit[i][k]
}
