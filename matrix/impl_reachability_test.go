// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/stochastic/matrix"
	"github.com/stretchr/testify/require"
)

// TestReachability_Chain checks the closure of a one-way path with an absorbing end.
func TestReachability_Chain(t *testing.T) {
	P := mustRows(t, [][]float64{
		{0.5, 0.5, 0},
		{0, 0.5, 0.5},
		{0, 0, 1},
	})
	R, err := matrix.Reachability(P)
	require.NoError(t, err)

	want := mustRows(t, [][]float64{
		{1, 1, 1},
		{0, 1, 1},
		{0, 0, 1},
	})
	ok, err := matrix.AllClose(R, want, 0, 0)
	require.NoError(t, err)
	require.True(t, ok, "got %v", R)
}

// TestReachability_DiagonalAlwaysSet covers states with no outgoing mass.
func TestReachability_DiagonalAlwaysSet(t *testing.T) {
	Z := mustDense(t, 3, 3)
	R, err := matrix.Reachability(hide{Z})
	require.NoError(t, err)
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	ok, err := matrix.AllClose(R, I, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestReachability_Cycle links every state through a cycle.
func TestReachability_Cycle(t *testing.T) {
	P := mustRows(t, [][]float64{
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{1, 0, 0, 0},
		{0, 0, 0.5, 0.5},
	})
	R, err := matrix.Reachability(P)
	require.NoError(t, err)

	var v float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ = R.At(i, j)
			require.Equalf(t, 1.0, v, "R[%d,%d]", i, j)
		}
		v, _ = R.At(i, 3)
		require.Zerof(t, v, "cycle state %d must not reach state 3", i)
	}
	v, _ = R.At(3, 0)
	require.Equal(t, 1.0, v)
}

// TestReachability_Errors rejects non-square and nil inputs.
func TestReachability_Errors(t *testing.T) {
	_, err := matrix.Reachability(mustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Reachability(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
