// SPDX-License-Identifier: MIT

// Package markov defines the chain type, result tables, sentinel errors and
// functional options for first-order discrete-time Markov chain analysis.
//
// Options:
//
//	– StateOrder:                  explicit canonical state ordering for Build (default: sorted unique labels).
//	– Tolerance:                   L1 stopping threshold for the steady-state iteration (default 1e-8).
//	– MaxIter:                     iteration cap for the steady-state iteration (default 1000).
//	– PivotTolerance:              zero-pivot threshold for the linear solves (default 1e-12).
//	– RejectMultipleClosedClasses: fail SteadyState on chains with more than one closed class.
//	– SkipSingular:                record singular first-passage pairs instead of failing.
//
// Errors (sentinel):
//
//	– ErrEmptySequence         if Build receives no observations.
//	– ErrUnknownState          if a label is missing from the explicit state order.
//	– ErrDuplicateState        if a state label is listed twice.
//	– ErrNotStochastic         if NewChain receives a matrix that is not row-stochastic.
//	– ErrNilChain              if a nil *Chain is passed to an analysis.
//	– ErrMultipleClosedClasses if rejection of multi-class chains is enabled and triggered.
package markov

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/stochastic/matrix"
)

// Sentinel errors returned by the markov package.
var (
	// ErrEmptySequence indicates that Build received an empty observation sequence.
	ErrEmptySequence = errors.New("markov: state sequence is empty")

	// ErrUnknownState indicates a label that does not belong to the chain's state order.
	ErrUnknownState = errors.New("markov: unknown state")

	// ErrDuplicateState indicates that a state order lists the same label twice.
	ErrDuplicateState = errors.New("markov: duplicate state in order")

	// ErrNotStochastic indicates that a supplied transition matrix is not row-stochastic.
	ErrNotStochastic = errors.New("markov: transition matrix is not row-stochastic")

	// ErrNilChain indicates that a nil *Chain was passed to an analysis.
	ErrNilChain = errors.New("markov: chain is nil")

	// ErrMultipleClosedClasses indicates that the chain has more than one closed
	// communicating class, so its stationary distribution is not unique.
	ErrMultipleClosedClasses = errors.New("markov: chain has more than one closed class")
)

const (
	// DefaultTolerance is the L1 distance between successive steady-state iterates
	// below which the iteration stops.
	DefaultTolerance = 1e-8

	// DefaultMaxIter caps the number of steady-state iterations.
	DefaultMaxIter = 1000

	// DefaultStochasticTolerance is the slack allowed on row sums when NewChain
	// validates a caller-supplied matrix.
	DefaultStochasticTolerance = 1e-9
)

// Options configures Build and the chain analyses.
//
// StateOrder                  – explicit canonical order; nil means sorted unique labels.
// Tolerance                   – steady-state stopping threshold. Must be > 0.
// MaxIter                     – steady-state iteration cap. Must be > 0.
// PivotTolerance              – zero-pivot threshold forwarded to matrix.Solve. Must be ≥ 0.
// RejectMultipleClosedClasses – SteadyState fails instead of reporting an order-dependent mixture.
// SkipSingular                – FirstPassage records singular pairs instead of aborting.
type Options struct {
	StateOrder                  []string
	Tolerance                   float64
	MaxIter                     int
	PivotTolerance              float64
	RejectMultipleClosedClasses bool
	SkipSingular                bool
}

// Option represents a functional option for configuring the markov package.
type Option func(*Options)

// WithStateOrder fixes the canonical state ordering used by Build.
// Every label of the sequence must appear in order; the order may list
// states that never occur (their rows become absorbing self-loops).
func WithStateOrder(order ...string) Option {
	cp := append([]string(nil), order...)
	return func(o *Options) {
		o.StateOrder = cp
	}
}

// WithTolerance sets the steady-state L1 stopping threshold.
// Panics on a non-positive or non-finite value.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic("markov: Tolerance must be a positive finite number")
	}
	return func(o *Options) {
		o.Tolerance = tol
	}
}

// WithMaxIter sets the steady-state iteration cap. Panics when maxIter <= 0.
func WithMaxIter(maxIter int) Option {
	if maxIter <= 0 {
		panic("markov: MaxIter must be positive")
	}
	return func(o *Options) {
		o.MaxIter = maxIter
	}
}

// WithPivotTolerance sets the zero-pivot threshold used by the linear solves.
// Panics on a negative or non-finite value.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic("markov: PivotTolerance must be a non-negative finite number")
	}
	return func(o *Options) {
		o.PivotTolerance = tol
	}
}

// WithRejectMultipleClosedClasses makes SteadyState fail with
// ErrMultipleClosedClasses when the chain has several closed classes.
func WithRejectMultipleClosedClasses() Option {
	return func(o *Options) {
		o.RejectMultipleClosedClasses = true
	}
}

// WithSkipSingular makes FirstPassage skip pairs whose system is singular
// and list them in FirstPassageTable.Singular.
func WithSkipSingular() Option {
	return func(o *Options) {
		o.SkipSingular = true
	}
}

// DefaultOptions returns an Options struct initialized with the documented defaults.
//
// Defaults:
//   - StateOrder:                  nil (sorted unique labels).
//   - Tolerance:                   DefaultTolerance.
//   - MaxIter:                     DefaultMaxIter.
//   - PivotTolerance:              matrix.DefaultPivotTolerance.
//   - RejectMultipleClosedClasses: false (report the mixture as-is).
//   - SkipSingular:                false (a singular pair aborts FirstPassage).
func DefaultOptions() Options {
	return Options{
		Tolerance:      DefaultTolerance,
		MaxIter:        DefaultMaxIter,
		PivotTolerance: matrix.DefaultPivotTolerance,
	}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Distribution is a probability vector over a fixed state order.
//
// Probs[i] belongs to States[i]. Convergence describes the iteration that
// produced it; a capped run is reported with Converged == false.
type Distribution struct {
	States      []string           `json:"states"`
	Probs       []float64          `json:"probs"`
	Convergence matrix.Convergence `json:"convergence"`
}

// Prob returns the probability of state and whether the state is known.
func (d *Distribution) Prob(state string) (float64, bool) {
	for i, s := range d.States {
		if s == state {
			return d.Probs[i], true
		}
	}

	return 0, false
}

// Map returns the distribution keyed by state label.
func (d *Distribution) Map() map[string]float64 {
	out := make(map[string]float64, len(d.States))
	for i, s := range d.States {
		out[s] = d.Probs[i]
	}

	return out
}

// Dominant returns the state with the largest probability.
// Ties keep the first state in order. Returns ("", 0) for a nil or empty distribution.
func (d *Distribution) Dominant() (string, float64) {
	if d == nil || len(d.Probs) == 0 {
		return "", 0
	}
	best := floats.MaxIdx(d.Probs)

	return d.States[best], d.Probs[best]
}

// Recurrence holds mean recurrence times 1/π for states with positive
// stationary mass. States with π == 0 are listed in Unreachable instead.
type Recurrence struct {
	Times       map[string]float64 `json:"times"`
	Unreachable []string           `json:"unreachable,omitempty"`
}

// Pair names an ordered (source, target) state pair.
type Pair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// FirstPassageTable maps source → target → expected number of steps to first
// reach target from source. Diagonal pairs are omitted.
//
// Singular lists the pairs skipped under WithSkipSingular; it is always empty
// in strict mode because a singular pair aborts the computation.
type FirstPassageTable struct {
	Times    map[string]map[string]float64 `json:"times"`
	Singular []Pair                        `json:"singular,omitempty"`
}

// Time returns E[T from→to] and whether it was computed.
func (t *FirstPassageTable) Time(from, to string) (float64, bool) {
	row, ok := t.Times[from]
	if !ok {
		return 0, false
	}
	v, ok := row[to]

	return v, ok
}

// AbsorptionTable maps each transient state to the expected number of steps
// until any absorbing state is reached.
type AbsorptionTable struct {
	Absorbing []string           `json:"absorbing"`
	Transient []string           `json:"transient"`
	Times     map[string]float64 `json:"times"`
}

// Class is a communicating class of a chain.
//
// Closed classes cannot be left and are recurrent; open classes are transient.
// States keep the chain's canonical order.
type Class struct {
	States []string `json:"states"`
	Closed bool     `json:"closed"`
}
