// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public kernels consume ...Option.
//
// Notes:
//   - Solve reads pivotTol only.
//   - PowerIterate reads tol and maxIter only.
//   - ValidateRowStochastic takes its tolerance explicitly; callers usually pass DefaultEpsilon.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks
	// (row-stochastic sums, closeness in tests).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf is the NaN/Inf guard policy of every new Dense.
	DefaultValidateNaNInf = true

	// DefaultPivotTolerance is the magnitude at or below which a pivot counts as zero
	// in Solve and a row swap is attempted.
	DefaultPivotTolerance = 1e-12
)

// Iteration policy.
const (
	// DefaultTolerance is the L1 distance between successive iterates below which
	// PowerIterate stops.
	DefaultTolerance = 1e-8

	// DefaultMaxIter caps the number of PowerIterate steps.
	DefaultMaxIter = 1000
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotTolInvalid  = "matrix: WithPivotTolerance: tol must be finite, non-negative"
	panicToleranceInvalid = "matrix: WithTolerance: tol must be finite, > 0"
	panicMaxIterInvalid   = "matrix: WithMaxIter: maxIter must be > 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	// numeric policy
	pivotTol float64 // >= 0; DefaultPivotTolerance

	// iteration policy
	tol     float64 // > 0; DefaultTolerance
	maxIter int     // > 0; DefaultMaxIter
}

// ---------- Constructors (WithX) ----------

// WithPivotTolerance sets the zero-pivot threshold for Solve.
// A tolerance of 0 reproduces exact-zero pivot detection.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithTolerance sets the convergence threshold for PowerIterate.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIter sets the iteration cap for PowerIterate.
func WithMaxIter(maxIter int) Option {
	if maxIter <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = maxIter }
}

// --------------------------- Option Resolution ---------------------------

// NewMatrixOptions resolves option setters against documented defaults.
// Pure function; last-writer-wins for repeated setters.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// PivotTolerance returns the resolved zero-pivot threshold.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// Tolerance returns the resolved convergence threshold.
func (o Options) Tolerance() float64 { return o.tol }

// MaxIter returns the resolved iteration cap.
func (o Options) MaxIter() int { return o.maxIter }

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		pivotTol: DefaultPivotTolerance,
		tol:      DefaultTolerance,
		maxIter:  DefaultMaxIter,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
//   - Stage 1: start from defaultOptions().
//   - Stage 2: apply setters in order (last-writer-wins); nil setters are skipped.
//
// Complexity: Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
