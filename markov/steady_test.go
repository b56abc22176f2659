package markov_test

import (
	"testing"

	"github.com/katalvlaran/stochastic/markov"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteadyState_TwoState(t *testing.T) {
	c := mustChain(t, []string{"a", "b"}, [][]float64{
		{0.9, 0.1},
		{0.2, 0.8},
	})
	d, err := markov.SteadyState(c)
	require.NoError(t, err)
	require.True(t, d.Convergence.Converged)

	pa, ok := d.Prob("a")
	require.True(t, ok)
	assert.InDelta(t, 2.0/3.0, pa, 1e-7)
	assert.InDelta(t, 1.0, d.Probs[0]+d.Probs[1], markov.DefaultTolerance)

	state, p := d.Dominant()
	assert.Equal(t, "a", state)
	assert.Equal(t, pa, p)

	_, ok = d.Prob("zzz")
	assert.False(t, ok)
}

func TestSteadyState_RepeatedState(t *testing.T) {
	c, err := markov.Build([]string{"X", "X", "X", "X", "X", "X", "X", "X", "X", "X"})
	require.NoError(t, err)
	d, err := markov.SteadyState(c)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"X": 1.0}, d.Map())
}

func TestSteadyState_IterationCap(t *testing.T) {
	c := mustChain(t, []string{"a", "b"}, [][]float64{
		{0, 1},
		{0.5, 0.5},
	})
	d, err := markov.SteadyState(c, markov.WithMaxIter(3))
	require.NoError(t, err)
	assert.False(t, d.Convergence.Converged)
	assert.Equal(t, 3, d.Convergence.Iterations)
	assert.InDelta(t, 1.0, d.Probs[0]+d.Probs[1], 1e-12)
}

func TestSteadyState_MultipleClosedClasses(t *testing.T) {
	c := mustChain(t, []string{"a", "b", "c"}, [][]float64{
		{1, 0, 0},
		{0.25, 0.5, 0.25},
		{0, 0, 1},
	})

	// Default: the mixture reached from the uniform start is reported as-is.
	d, err := markov.SteadyState(c)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, d.Probs[0], 1e-7)
	assert.InDelta(t, 0.0, d.Probs[1], 1e-7)
	assert.InDelta(t, 0.5, d.Probs[2], 1e-7)

	_, err = markov.SteadyState(c, markov.WithRejectMultipleClosedClasses())
	assert.ErrorIs(t, err, markov.ErrMultipleClosedClasses)
}

func TestSteadyState_NilChain(t *testing.T) {
	_, err := markov.SteadyState(nil)
	assert.ErrorIs(t, err, markov.ErrNilChain)
}

func TestRecurrenceTimes(t *testing.T) {
	c := mustChain(t, []string{"a", "b"}, [][]float64{
		{0.9, 0.1},
		{0.2, 0.8},
	})
	d, err := markov.SteadyState(c)
	require.NoError(t, err)

	rec := markov.RecurrenceTimes(d)
	assert.Empty(t, rec.Unreachable)
	for i, s := range d.States {
		assert.Equal(t, 1/d.Probs[i], rec.Times[s])
		assert.GreaterOrEqual(t, rec.Times[s], 1.0)
	}
	assert.InDelta(t, 1.5, rec.Times["a"], 1e-6)
	assert.InDelta(t, 3.0, rec.Times["b"], 1e-6)
}

func TestRecurrenceTimes_ZeroMass(t *testing.T) {
	d := &markov.Distribution{
		States: []string{"a", "b", "c"},
		Probs:  []float64{0.75, 0, 0.25},
	}
	rec := markov.RecurrenceTimes(d)
	assert.Equal(t, map[string]float64{"a": 4.0 / 3.0, "c": 4}, rec.Times)
	assert.Equal(t, []string{"b"}, rec.Unreachable)
}

func TestRecurrenceTimes_NilDistribution(t *testing.T) {
	var rec *markov.Recurrence
	require.NotPanics(t, func() { rec = markov.RecurrenceTimes(nil) })
	require.NotNil(t, rec)
	assert.Empty(t, rec.Times)
	assert.NotNil(t, rec.Times)
	assert.Empty(t, rec.Unreachable)
}

func TestDistribution_Dominant(t *testing.T) {
	tests := []struct {
		name  string
		d     *markov.Distribution
		state string
		p     float64
	}{
		{"nil", nil, "", 0},
		{"empty", &markov.Distribution{}, "", 0},
		{"single max", &markov.Distribution{States: []string{"a", "b", "c"}, Probs: []float64{0.2, 0.5, 0.3}}, "b", 0.5},
		{"tie keeps first", &markov.Distribution{States: []string{"a", "b", "c"}, Probs: []float64{0.25, 0.375, 0.375}}, "b", 0.375},
		{"uniform", &markov.Distribution{States: []string{"x", "y"}, Probs: []float64{0.5, 0.5}}, "x", 0.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			state, p := tc.d.Dominant()
			assert.Equal(t, tc.state, state)
			assert.Equal(t, tc.p, p)
		})
	}
}
