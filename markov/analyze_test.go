package markov_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/stochastic/markov"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_Ergodic(t *testing.T) {
	seq := []string{"Low", "Low", "High", "Moderate", "Low", "Moderate", "High", "Low"}
	c, err := markov.Build(seq)
	require.NoError(t, err)

	r, err := markov.Analyze(c)
	require.NoError(t, err)

	assert.Equal(t, []string{"High", "Low", "Moderate"}, r.States)
	assert.Len(t, r.Transitions, 3)
	assert.Nil(t, r.Absorption)
	assert.False(t, r.AbsorptionSingular)
	assert.Empty(t, r.FirstPassage.Singular)
	assert.Len(t, r.Classes, 1)

	want, _ := r.SteadyState.Dominant()
	assert.Equal(t, want, r.Dominant)
	for _, s := range r.States {
		assert.Contains(t, r.Recurrence.Times, s)
	}
}

func TestAnalyze_Absorbing(t *testing.T) {
	// "End" is only seen last: it becomes absorbing.
	c, err := markov.Build([]string{"A", "B", "A", "B", "End"})
	require.NoError(t, err)

	r, err := markov.Analyze(c)
	require.NoError(t, err)
	require.NotNil(t, r.Absorption)
	assert.Equal(t, []string{"End"}, r.Absorption.Absorbing)
	assert.Equal(t, "End", r.Dominant)
	// Every state reaches End; nothing leaves End, so targets other than End are singular.
	v, ok := r.FirstPassage.Time("A", "End")
	require.True(t, ok)
	assert.InDelta(t, 4.0, v, 1e-12)
	v, ok = r.FirstPassage.Time("B", "End")
	require.True(t, ok)
	assert.InDelta(t, 3.0, v, 1e-12)
	assert.NotEmpty(t, r.FirstPassage.Singular)
	for _, p := range r.FirstPassage.Singular {
		assert.NotEqual(t, "End", p.To)
	}

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"absorption"`)
}

func TestAnalyze_SingularAbsorption(t *testing.T) {
	c := mustChain(t, []string{"a", "b", "c"}, [][]float64{
		{0, 1, 0},
		{1, 0, 0},
		{0, 0, 1},
	})
	r, err := markov.Analyze(c)
	require.NoError(t, err)
	assert.Nil(t, r.Absorption)
	assert.True(t, r.AbsorptionSingular)
}

func TestAnalyze_RejectMultipleClosedClasses(t *testing.T) {
	c := mustChain(t, []string{"a", "b"}, [][]float64{{1, 0}, {0, 1}})
	_, err := markov.Analyze(c, markov.WithRejectMultipleClosedClasses())
	assert.ErrorIs(t, err, markov.ErrMultipleClosedClasses)

	_, err = markov.Analyze(nil)
	assert.ErrorIs(t, err, markov.ErrNilChain)
}

// TestAnalyze_ConcurrentReads fans Analyze out over one shared Chain.
func TestAnalyze_ConcurrentReads(t *testing.T) {
	c, err := markov.Build([]string{"A", "B", "A", "C", "B", "B", "A", "End"})
	require.NoError(t, err)
	want, err := markov.Analyze(c)
	require.NoError(t, err)

	for g := 0; g < 16; g++ {
		t.Run("", func(t *testing.T) {
			t.Parallel()
			for k := 0; k < 50; k++ {
				got, err := markov.Analyze(c)
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
		})
	}
}
