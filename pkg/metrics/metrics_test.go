package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test constants to avoid magic strings/numbers.
const (
	testMetricName        = "longest"
	testMetricName2       = "count"
	testMetricDisplayName = "Longest"
	testMetricDescription = "Longest length in the input"
	testMetricType        = "length"
)

// longestMetric is a concrete implementation for testing the Metric interface.
type longestMetric struct {
	MetricMeta
}

// Compute returns the largest element.
func (m *longestMetric) Compute(input []int32) int64 {
	var best int64

	for _, v := range input {
		best = max(best, int64(v))
	}

	return best
}

func newLongestMetric() *longestMetric {
	return &longestMetric{
		MetricMeta: MetricMeta{
			MetricName:        testMetricName,
			MetricDisplayName: testMetricDisplayName,
			MetricDescription: testMetricDescription,
			MetricType:        testMetricType,
		},
	}
}

func newCountMetric() Func[[]int32, int64] {
	return Func[[]int32, int64]{
		MetricMeta: MetricMeta{MetricName: testMetricName2, MetricType: "count"},
		Fn:         func(in []int32) int64 { return int64(len(in)) },
	}
}

func TestMetricMeta(t *testing.T) {
	t.Parallel()

	meta := newLongestMetric().MetricMeta

	assert.Equal(t, testMetricName, meta.Name())
	assert.Equal(t, testMetricDisplayName, meta.DisplayName())
	assert.Equal(t, testMetricDescription, meta.Description())
	assert.Equal(t, testMetricType, meta.Type())
}

func TestFunc_Compute(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(3), newCountMetric().Compute([]int32{4, 5, 6}))
}

func TestRegistry_Names_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NewRegistry().Names())
}

func TestRegistry_Get(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	metric := newLongestMetric()
	Register(registry, metric)

	retrieved, found := registry.Get(testMetricName)
	assert.True(t, found)
	assert.Equal(t, metric, retrieved)

	retrieved, found = registry.Get("nonexistent_metric")
	assert.False(t, found)
	assert.Nil(t, retrieved)
}

func TestRegistry_NamesKeepRegistrationOrder(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	Register(registry, newLongestMetric())
	Register[[]int32, int64](registry, newCountMetric())
	Register(registry, newLongestMetric())

	assert.Equal(t, []string{testMetricName, testMetricName2}, registry.Names())
}

func TestLookup(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	Register(registry, newLongestMetric())

	metric, ok := Lookup[[]int32, int64](registry, testMetricName)
	require.True(t, ok)
	assert.Equal(t, int64(9), metric.Compute([]int32{3, 9, 1}))

	_, ok = Lookup[[]int32, float64](registry, testMetricName)
	assert.False(t, ok)

	_, ok = Lookup[[]int32, int64](registry, "missing")
	assert.False(t, ok)
}

func TestComputeAll(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	Register(registry, newLongestMetric())
	Register[[]int32, int64](registry, newCountMetric())
	Register[[]int32, float64](registry, Func[[]int32, float64]{
		MetricMeta: MetricMeta{MetricName: "ignored"},
		Fn:         func([]int32) float64 { return 1 },
	})

	results, names := ComputeAll[[]int32, int64](registry, []int32{2, 7})

	assert.Equal(t, []string{testMetricName, testMetricName2}, names)
	assert.Equal(t, map[string]int64{testMetricName: 7, testMetricName2: 2}, results)
}
