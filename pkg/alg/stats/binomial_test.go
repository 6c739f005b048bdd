package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinomialSum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		n, k     uint
		p        float64
		expected float64
	}{
		{name: "single_trial_no_success", n: 1, k: 0, p: 0.5, expected: 0.5},
		{name: "two_trials_at_most_one", n: 2, k: 1, p: 0.5, expected: 0.75},
		{name: "four_trials_at_most_two", n: 4, k: 2, p: 0.25, expected: 0.94921875},
		{name: "zero_probability", n: 7, k: 0, p: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.expected, BinomialSum(tt.n, tt.k, tt.p), 1e-12)
		})
	}
}

func TestBinomialSum_FullRangeSumsToOne(t *testing.T) {
	t.Parallel()

	for _, n := range []uint{1, 2, 5, 10, 40} {
		for _, p := range []float64{0.01, 0.1, 0.3, 0.5, 0.75, 0.99} {
			assert.InDelta(t, 1.0, BinomialSum(n, n, p), 1e-9, "n=%d p=%v", n, p)
		}
	}
}

func TestBinomialSum_Monotonic(t *testing.T) {
	t.Parallel()

	const n = 20

	prev := 0.0

	for k := range uint(n + 1) {
		got := BinomialSum(n, k, 0.4)
		assert.GreaterOrEqual(t, got, prev)

		prev = got
	}
}

func TestBinomialSum_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { BinomialSum(0, 0, 0.5) })
	assert.Panics(t, func() { BinomialSum(3, 4, 0.5) })
}
