// SPDX-License-Identifier: MIT
// Package: markov
//
// Purpose:
//   - One-call analysis bundling every derived quantity of a chain into a result
//     object the caller owns.

package markov

import (
	"errors"

	"github.com/katalvlaran/stochastic/matrix"
)

// Report collects every quantity derived from one chain.
//
// Absorption is nil when absorption analysis is not applicable, or when its
// system is singular (a closed class with no absorbing state); the latter also
// sets AbsorptionSingular.
// FirstPassage is computed in skip mode, so pairs that can never be reached
// appear in FirstPassage.Singular instead of failing the whole report.
type Report struct {
	States             []string           `json:"states"`
	Transitions        [][]float64        `json:"transitions"`
	SteadyState        *Distribution      `json:"steady_state"`
	Recurrence         *Recurrence        `json:"recurrence"`
	FirstPassage       *FirstPassageTable `json:"first_passage"`
	Absorption         *AbsorptionTable   `json:"absorption,omitempty"`
	AbsorptionSingular bool               `json:"absorption_singular,omitempty"`
	Classes            []Class            `json:"classes"`
	Dominant           string             `json:"dominant"`
}

// Analyze runs SteadyState, RecurrenceTimes, FirstPassage, Absorption and
// Classify on c and returns the combined Report.
//
// Options are forwarded to every analysis; WithSkipSingular is always applied
// to the first-passage table.
//
// Errors: the first error of any analysis, tagged with the failing operation.
func Analyze(c *Chain, opts ...Option) (*Report, error) {
	if c == nil {
		return nil, markovErrorf(opAnalyze, ErrNilChain)
	}

	steady, err := SteadyState(c, opts...)
	if err != nil {
		return nil, markovErrorf(opAnalyze, err)
	}
	passage, err := FirstPassage(c, append(append([]Option(nil), opts...), WithSkipSingular())...)
	if err != nil {
		return nil, markovErrorf(opAnalyze, err)
	}
	absorption, _, err := Absorption(c, opts...)
	singular := errors.Is(err, matrix.ErrSingular)
	if err != nil && !singular {
		return nil, markovErrorf(opAnalyze, err)
	}
	classes, err := Classify(c)
	if err != nil {
		return nil, markovErrorf(opAnalyze, err)
	}
	dominant, _ := steady.Dominant()

	return &Report{
		States:             c.States(),
		Transitions:        c.Rows(),
		SteadyState:        steady,
		Recurrence:         RecurrenceTimes(steady),
		FirstPassage:       passage,
		Absorption:         absorption,
		AbsorptionSingular: singular,
		Classes:            classes,
		Dominant:           dominant,
	}, nil
}
