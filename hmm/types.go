// SPDX-License-Identifier: MIT
// Package: hmm
//
// Purpose:
//   - Spec (caller-facing, map-of-maps model description), sentinel errors,
//     options and result types of the HMM engine.

package hmm

import (
	"errors"
	"math"

	"github.com/katalvlaran/stochastic/markov"
)

// Sentinel errors returned by the hmm package.
var (
	// ErrNoStates indicates a Spec without hidden states.
	ErrNoStates = errors.New("hmm: model has no states")

	// ErrDuplicateState indicates a Spec listing the same hidden state twice.
	ErrDuplicateState = errors.New("hmm: duplicate state")

	// ErrUnknownState indicates a start/transition/emission key that is not a declared state.
	ErrUnknownState = errors.New("hmm: unknown state")

	// ErrEmptyObservations indicates an empty observation sequence.
	ErrEmptyObservations = errors.New("hmm: observation sequence is empty")

	// ErrNilModel indicates that a nil *Model was used.
	ErrNilModel = errors.New("hmm: model is nil")
)

const (
	// DefaultUnseenEmission is the probability used for an observation symbol
	// missing from a state's emission table.
	DefaultUnseenEmission = 1e-6

	// DefaultTolerance is the hidden steady-state stopping threshold.
	DefaultTolerance = markov.DefaultTolerance

	// DefaultMaxIter caps the hidden steady-state iteration.
	DefaultMaxIter = markov.DefaultMaxIter
)

// Spec describes a discrete HMM the way callers usually hold one: keyed maps.
//
// States fixes the canonical order of hidden states. Missing Start and
// Transition entries count as 0. Missing Emission entries take the unseen
// emission probability. The observation alphabet is the sorted union of all
// Emission keys. Rows need not sum to 1.
type Spec struct {
	States     []string                      `json:"states" yaml:"states" mapstructure:"states"`
	Start      map[string]float64            `json:"start" yaml:"start" mapstructure:"start"`
	Transition map[string]map[string]float64 `json:"transition" yaml:"transition" mapstructure:"transition"`
	Emission   map[string]map[string]float64 `json:"emission" yaml:"emission" mapstructure:"emission"`
}

// Options configures the engine.
type Options struct {
	unseen  float64
	tol     float64
	maxIter int
}

// Option mutates Options.
type Option func(*Options)

// WithUnseenEmission sets the probability of a symbol absent from a state's
// emission table. Panics on a negative or non-finite value.
func WithUnseenEmission(p float64) Option {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
		panic("hmm: unseen emission must be a non-negative finite number")
	}

	return func(o *Options) { o.unseen = p }
}

// WithTolerance sets the hidden steady-state stopping threshold (> 0).
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic("hmm: tolerance must be a positive finite number")
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIter sets the hidden steady-state iteration cap (> 0).
func WithMaxIter(n int) Option {
	if n <= 0 {
		panic("hmm: max iterations must be positive")
	}

	return func(o *Options) { o.maxIter = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		unseen:  DefaultUnseenEmission,
		tol:     DefaultTolerance,
		maxIter: DefaultMaxIter,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Path is the most likely hidden-state sequence for an observation sequence.
//
// Probability is the joint probability of the path and the observations under
// the model (subject to the unseen-emission policy).
type Path struct {
	States      []string `json:"states"`
	Probability float64  `json:"probability"`
}

// Report collects the three derived quantities of one model and sequence.
type Report struct {
	Observations []string             `json:"observations"`
	Likelihood   float64              `json:"likelihood"`
	Path         *Path                `json:"path"`
	SteadyState  *markov.Distribution `json:"steady_state"`
	Dominant     string               `json:"dominant"`
}
