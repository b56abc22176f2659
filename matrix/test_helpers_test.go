// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/stochastic/matrix"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths.
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one *Dense to isolate path differences.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense or aborts the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// mustRows builds a *Dense from literal rows or aborts the test.
func mustRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		tb.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// randomStochastic fills an n×n row-stochastic matrix with strictly positive
// entries from a fixed seed, so every state communicates.
func randomStochastic(tb testing.TB, n int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := mustDense(tb, n, n)
	var i, j int
	var s float64
	row := make([]float64, n)
	for i = 0; i < n; i++ {
		s = 0
		for j = 0; j < n; j++ {
			row[j] = rng.Float64() + 0.01
			s += row[j]
		}
		for j = 0; j < n; j++ {
			if err := m.Set(i, j, row[j]/s); err != nil {
				tb.Fatalf("Set: %v", err)
			}
		}
	}

	return m
}

// requireVecInDelta asserts element-wise |want[i]-got[i]| ≤ delta.
func requireVecInDelta(t *testing.T, want, got []float64, delta float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDeltaf(t, want[i], got[i], delta, "index %d", i)
	}
}
