// SPDX-License-Identifier: MIT
package mobility

import (
	"errors"
	"fmt"
	"math"
)

// State labels produced by the default binning.
const (
	Low      = "Low"
	Moderate = "Moderate"
	High     = "High"
)

var (
	// ErrBadBins indicates thresholds that are not strictly increasing or not finite.
	ErrBadBins = errors.New("mobility: bin thresholds must be finite and strictly increasing")

	// ErrMissingColumn indicates a CSV header without a required column.
	ErrMissingColumn = errors.New("mobility: required column missing")
)

// Bins splits a percent-change value into three right-closed intervals:
//
//	(−∞, LowMax]          → Low
//	(LowMax, ModerateMax] → Moderate
//	(ModerateMax, +∞]     → High
type Bins struct {
	LowMax      float64
	ModerateMax float64
}

// DefaultBins are the thresholds used for mobility percent-change data.
var DefaultBins = Bins{LowMax: -20, ModerateMax: 5}

// Validate reports ErrBadBins unless LowMax < ModerateMax and both are finite.
func (b Bins) Validate() error {
	if math.IsNaN(b.LowMax) || math.IsInf(b.LowMax, 0) ||
		math.IsNaN(b.ModerateMax) || math.IsInf(b.ModerateMax, 0) ||
		b.LowMax >= b.ModerateMax {
		return fmt.Errorf("%+v: %w", b, ErrBadBins)
	}

	return nil
}

// Label returns the state of v. NaN and −Inf fall outside every interval and
// report ok == false.
func (b Bins) Label(v float64) (state string, ok bool) {
	switch {
	case math.IsNaN(v), math.IsInf(v, -1):
		return "", false
	case v <= b.LowMax:
		return Low, true
	case v <= b.ModerateMax:
		return Moderate, true
	default:
		return High, true
	}
}

// Categorize labels every value with b, dropping values outside every interval.
// The order of the input is kept.
func Categorize(values []float64, b Bins) ([]string, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := b.Label(v); ok {
			out = append(out, s)
		}
	}

	return out, nil
}
