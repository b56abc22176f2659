package markov_test

import (
	"testing"

	"github.com/katalvlaran/stochastic/markov"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		states []string
		rows   [][]float64
		want   []markov.Class
	}{
		{
			name:   "ergodic",
			states: []string{"a", "b"},
			rows:   [][]float64{{0.9, 0.1}, {0.2, 0.8}},
			want:   []markov.Class{{States: []string{"a", "b"}, Closed: true}},
		},
		{
			name:   "one-way path",
			states: []string{"a", "b", "c"},
			rows:   [][]float64{{0.5, 0.5, 0}, {0, 0.5, 0.5}, {0, 0, 1}},
			want: []markov.Class{
				{States: []string{"a"}, Closed: false},
				{States: []string{"b"}, Closed: false},
				{States: []string{"c"}, Closed: true},
			},
		},
		{
			name:   "cycle with a feeder",
			states: []string{"f", "x", "y"},
			rows:   [][]float64{{0.5, 0.5, 0}, {0, 0, 1}, {0, 1, 0}},
			want: []markov.Class{
				{States: []string{"f"}, Closed: false},
				{States: []string{"x", "y"}, Closed: true},
			},
		},
		{
			name:   "two absorbing ends",
			states: []string{"l", "m", "r"},
			rows:   [][]float64{{1, 0, 0}, {0.5, 0, 0.5}, {0, 0, 1}},
			want: []markov.Class{
				{States: []string{"l"}, Closed: true},
				{States: []string{"m"}, Closed: false},
				{States: []string{"r"}, Closed: true},
			},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := markov.Classify(mustChain(t, tc.states, tc.rows))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassify_NilChain(t *testing.T) {
	_, err := markov.Classify(nil)
	assert.ErrorIs(t, err, markov.ErrNilChain)
}
