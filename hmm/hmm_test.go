// Package hmm_test contains unit tests for the HMM engine.
package hmm_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/stochastic/hmm"
	"github.com/katalvlaran/stochastic/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// weatherSpec is a small, hand-checkable two-state model.
func weatherSpec() hmm.Spec {
	return hmm.Spec{
		States: []string{"Rainy", "Sunny"},
		Start:  map[string]float64{"Rainy": 0.6, "Sunny": 0.4},
		Transition: map[string]map[string]float64{
			"Rainy": {"Rainy": 0.7, "Sunny": 0.3},
			"Sunny": {"Rainy": 0.4, "Sunny": 0.6},
		},
		Emission: map[string]map[string]float64{
			"Rainy": {"walk": 0.1, "shop": 0.4, "clean": 0.5},
			"Sunny": {"walk": 0.6, "shop": 0.3, "clean": 0.1},
		},
	}
}

func mustModel(t *testing.T, spec hmm.Spec, opts ...hmm.Option) *hmm.Model {
	t.Helper()
	m, err := hmm.New(spec, opts...)
	require.NoError(t, err)

	return m
}

func TestNew_IndexesTables(t *testing.T) {
	m := mustModel(t, weatherSpec())
	assert.Equal(t, []string{"Rainy", "Sunny"}, m.States())
	assert.Equal(t, []string{"clean", "shop", "walk"}, m.Symbols())
	assert.Equal(t, hmm.DefaultUnseenEmission, m.UnseenEmission())
}

func TestNew_Errors(t *testing.T) {
	_, err := hmm.New(hmm.Spec{})
	assert.ErrorIs(t, err, hmm.ErrNoStates)

	_, err = hmm.New(hmm.Spec{States: []string{"a", "a"}})
	assert.ErrorIs(t, err, hmm.ErrDuplicateState)

	bad := weatherSpec()
	bad.Transition["Rainy"]["Foggy"] = 0.1
	_, err = hmm.New(bad)
	assert.ErrorIs(t, err, hmm.ErrUnknownState)

	bad = weatherSpec()
	bad.Start["Foggy"] = 0.1
	_, err = hmm.New(bad)
	assert.ErrorIs(t, err, hmm.ErrUnknownState)

	bad = weatherSpec()
	bad.Emission["Sunny"]["walk"] = math.NaN()
	_, err = hmm.New(bad)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	bad = weatherSpec()
	bad.Start["Sunny"] = math.Inf(1)
	_, err = hmm.New(bad)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestForward_SingleObservation(t *testing.T) {
	spec := weatherSpec()
	m := mustModel(t, spec)
	for _, o := range []string{"walk", "shop", "clean"} {
		got, err := m.Forward([]string{o})
		require.NoError(t, err)
		want := spec.Start["Rainy"]*spec.Emission["Rainy"][o] + spec.Start["Sunny"]*spec.Emission["Sunny"][o]
		assert.Equal(t, want, got, o)
	}
}

func TestForward_ThreeSteps(t *testing.T) {
	m := mustModel(t, weatherSpec())
	got, err := m.Forward([]string{"walk", "shop", "clean"})
	require.NoError(t, err)

	// α0 = [0.06, 0.24]
	// α1 = [(0.06·0.7 + 0.24·0.4)·0.4, (0.06·0.3 + 0.24·0.6)·0.3] = [0.0552, 0.0486]
	// α2 = [(0.0552·0.7 + 0.0486·0.4)·0.5, (0.0552·0.3 + 0.0486·0.6)·0.1] = [0.02904, 0.004572]
	assert.InDelta(t, 0.033612, got, 1e-12)
}

func TestForward_UnseenEmission(t *testing.T) {
	spec := weatherSpec()
	// Sunny never emits "clean" explicitly.
	delete(spec.Emission["Sunny"], "clean")

	m := mustModel(t, spec)
	got, err := m.Forward([]string{"clean"})
	require.NoError(t, err)
	assert.InDelta(t, 0.6*0.5+0.4*hmm.DefaultUnseenEmission, got, 1e-15)

	// A symbol outside the alphabet uses the constant for every state.
	got, err = m.Forward([]string{"swim"})
	require.NoError(t, err)
	assert.InDelta(t, hmm.DefaultUnseenEmission, got, 1e-18)
	assert.Greater(t, got, 0.0)

	tuned := mustModel(t, spec, hmm.WithUnseenEmission(0.01))
	got, err = tuned.Forward([]string{"swim", "swim"})
	require.NoError(t, err)
	// Start and transition rows sum to 1, so P(O) = 0.01².
	assert.InDelta(t, 1e-4, got, 1e-15)

	// An explicit zero is kept as zero, not smoothed.
	spec.Emission["Sunny"]["clean"] = 0
	zeroed := mustModel(t, spec)
	got, err = zeroed.Forward([]string{"clean"})
	require.NoError(t, err)
	assert.Equal(t, 0.6*0.5, got)
}

func TestForward_Errors(t *testing.T) {
	m := mustModel(t, weatherSpec())
	_, err := m.Forward(nil)
	assert.ErrorIs(t, err, hmm.ErrEmptyObservations)

	var nilModel *hmm.Model
	_, err = nilModel.Forward([]string{"walk"})
	assert.ErrorIs(t, err, hmm.ErrNilModel)
}

func TestViterbi_Weather(t *testing.T) {
	m := mustModel(t, weatherSpec())
	obs := []string{"walk", "shop", "clean"}
	p, err := m.Viterbi(obs)
	require.NoError(t, err)
	assert.Len(t, p.States, len(obs))

	// δ0 = [0.06, 0.24]
	// δ1 = [max(0.042, 0.096)·0.4, max(0.018, 0.144)·0.3] = [0.0384 (Sunny), 0.0432 (Sunny)]
	// δ2 = [max(0.02688, 0.01728)·0.5, max(0.01152, 0.02592)·0.1] = [0.01344 (Rainy), 0.002592]
	assert.Equal(t, []string{"Sunny", "Rainy", "Rainy"}, p.States)
	assert.InDelta(t, 0.01344, p.Probability, 1e-15)
}

func TestViterbi_DominantState(t *testing.T) {
	m := mustModel(t, hmm.Spec{
		States: []string{"Other", "Boss"},
		Start:  map[string]float64{"Boss": 1},
		Transition: map[string]map[string]float64{
			"Boss":  {"Boss": 1},
			"Other": {"Other": 0.5, "Boss": 0.5},
		},
		Emission: map[string]map[string]float64{
			"Boss":  {"x": 1},
			"Other": {"x": 0.2},
		},
	})
	obs := []string{"x", "x", "x", "x", "x"}
	p, err := m.Viterbi(obs)
	require.NoError(t, err)
	assert.Equal(t, []string{"Boss", "Boss", "Boss", "Boss", "Boss"}, p.States)
}

func TestViterbi_TieBreak(t *testing.T) {
	symmetric := hmm.Spec{
		States: []string{"X", "Y"},
		Start:  map[string]float64{"X": 0.5, "Y": 0.5},
		Transition: map[string]map[string]float64{
			"X": {"X": 0.5, "Y": 0.5},
			"Y": {"X": 0.5, "Y": 0.5},
		},
		Emission: map[string]map[string]float64{
			"X": {"o": 0.5},
			"Y": {"o": 0.5},
		},
	}
	p, err := mustModel(t, symmetric).Viterbi([]string{"o", "o", "o"})
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "X", "X"}, p.States, "ties keep the lowest index")

	// All-zero start: every δ is 0, every back-pointer stays at 0.
	dead := symmetric
	dead.Start = nil
	p, err = mustModel(t, dead).Viterbi([]string{"o", "o"})
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "X"}, p.States)
	assert.Zero(t, p.Probability)
}

func TestViterbi_Errors(t *testing.T) {
	_, err := mustModel(t, weatherSpec()).Viterbi([]string{})
	assert.ErrorIs(t, err, hmm.ErrEmptyObservations)
}

func TestSteadyState(t *testing.T) {
	m := mustModel(t, weatherSpec())
	d, err := m.SteadyState()
	require.NoError(t, err)
	require.True(t, d.Convergence.Converged)
	// π_R = 0.4 / (0.3 + 0.4)
	assert.InDelta(t, 4.0/7.0, d.Probs[0], 1e-7)
	assert.InDelta(t, 3.0/7.0, d.Probs[1], 1e-7)

	// Rows scaled by 2 give the same distribution after renormalisation.
	scaled := weatherSpec()
	for from, row := range scaled.Transition {
		for to := range row {
			scaled.Transition[from][to] *= 2
		}
	}
	ds, err := mustModel(t, scaled).SteadyState()
	require.NoError(t, err)
	assert.InDelta(t, d.Probs[0], ds.Probs[0], 1e-9)

	empty := weatherSpec()
	empty.Transition = nil
	_, err = mustModel(t, empty).SteadyState()
	assert.ErrorIs(t, err, matrix.ErrZeroMass)
}

func TestDefaultSpec(t *testing.T) {
	m := mustModel(t, hmm.DefaultSpec())
	assert.Equal(t, []string{hmm.StrictPolicy, hmm.ModeratePolicy, hmm.NormalMobility}, m.States())
	assert.Equal(t, []string{hmm.HighMobility, hmm.LowMobility, hmm.ModerateMobility}, m.Symbols())

	d, err := m.SteadyState()
	require.NoError(t, err)
	for _, p := range d.Probs {
		assert.InDelta(t, 1.0/3.0, p, 1e-12)
	}

	// Fresh maps on every call.
	a := hmm.DefaultSpec()
	a.Start[hmm.StrictPolicy] = 0
	assert.Equal(t, 0.5, hmm.DefaultSpec().Start[hmm.StrictPolicy])
}

func TestAnalyze(t *testing.T) {
	m := mustModel(t, weatherSpec())
	obs := []string{"walk", "shop", "clean"}
	r, err := m.Analyze(obs)
	require.NoError(t, err)
	assert.Equal(t, obs, r.Observations)
	assert.InDelta(t, 0.033612, r.Likelihood, 1e-12)
	assert.Equal(t, []string{"Sunny", "Rainy", "Rainy"}, r.Path.States)
	assert.Equal(t, "Rainy", r.Dominant)

	_, err = m.Analyze(nil)
	assert.ErrorIs(t, err, hmm.ErrEmptyObservations)
}

func TestViterbi_TerminalTieKeepsFirstMax(t *testing.T) {
	spec := hmm.Spec{
		States: []string{"X", "Y", "Z"},
		Start:  map[string]float64{"X": 0.2, "Y": 0.4, "Z": 0.4},
		Transition: map[string]map[string]float64{
			"X": {"X": 1},
			"Y": {"Y": 1},
			"Z": {"Z": 1},
		},
		Emission: map[string]map[string]float64{
			"X": {"o": 1},
			"Y": {"o": 1},
			"Z": {"o": 1},
		},
	}
	p, err := mustModel(t, spec).Viterbi([]string{"o", "o"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Y", "Y"}, p.States)
	assert.Equal(t, 0.4, p.Probability)
}

// TestModel_ConcurrentReads fans Analyze and Viterbi out over one shared Model.
func TestModel_ConcurrentReads(t *testing.T) {
	m := mustModel(t, weatherSpec())
	obs := []string{"walk", "shop", "clean", "walk"}
	want, err := m.Analyze(obs)
	require.NoError(t, err)

	for g := 0; g < 16; g++ {
		t.Run("", func(t *testing.T) {
			t.Parallel()
			for k := 0; k < 50; k++ {
				got, err := m.Analyze(obs)
				require.NoError(t, err)
				assert.Equal(t, want, got)

				path, err := m.Viterbi(obs)
				require.NoError(t, err)
				assert.Equal(t, want.Path, path)
			}
		})
	}
}
