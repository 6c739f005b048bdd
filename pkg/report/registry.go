// Package report computes a summary of a length distribution and renders it
// as a text table, JSON, YAML or a Prometheus textfile.
package report

import (
	"github.com/Sumatoshi-tech/seqstats/pkg/alg/stats"
	"github.com/Sumatoshi-tech/seqstats/pkg/metrics"
	"github.com/Sumatoshi-tech/seqstats/pkg/safeconv"
)

// Metric names, in report order.
const (
	MetricCount           = "count"
	MetricTotal           = "total"
	MetricMin             = "min"
	MetricMax             = "max"
	MetricMedian          = "median"
	MetricMean            = "mean"
	MetricLenWeightedMean = "len_weighted_mean"
	MetricN50             = "n50"
	MetricN90             = "n90"
	MetricL50             = "l50"
	MetricL50Percent      = "l50_percent"
	MetricCV              = "cv"
)

// Metric categories.
const (
	typeCount  = "count"
	typeLength = "length"
	typeRatio  = "ratio"
)

type (
	intMetric   = metrics.Func[[]int32, int64]
	floatMetric = metrics.Func[[]int32, float64]
)

// NewRegistry returns a registry holding every length metric of a [Summary].
// Integer metrics produce int64, the rest float64.
func NewRegistry() *metrics.Registry {
	reg := metrics.NewRegistry()

	registerInt(reg, MetricCount, "Count", "Number of lengths", typeCount,
		func(v []int32) int64 { return int64(len(v)) })
	registerInt(reg, MetricTotal, "Total", "Sum of all lengths", typeLength, stats.Total)
	registerInt(reg, MetricMin, "Min", "Shortest length", typeLength,
		func(v []int32) int64 { return int64(stats.Min(v)) })
	registerInt(reg, MetricMax, "Max", "Longest length", typeLength,
		func(v []int32) int64 { return int64(stats.Max(v)) })
	registerFloat(reg, MetricMedian, "Median", "Median length (linear interpolation)", typeLength,
		func(v []int32) float64 { return stats.Median(stats.Floats(v)) })
	registerFloat(reg, MetricMean, "Mean", "Arithmetic mean length", typeLength, stats.Mean)
	registerFloat(reg, MetricLenWeightedMean, "Length-weighted mean",
		"Sum of squared lengths over the sum of lengths", typeLength, stats.LenWeightedMean)
	registerInt(reg, MetricN50, "N50", "Length at which the ascending cumulative sum reaches 50% of the total",
		typeLength, func(v []int32) int64 { return int64(stats.N50(v)) })
	registerInt(reg, MetricN90, "N90", "Length at which the ascending cumulative sum reaches 90% of the total",
		typeLength, func(v []int32) int64 { return int64(stats.N90(v)) })
	registerInt(reg, MetricL50, "L50", "Number of longest elements covering half of the total",
		typeCount, func(v []int32) int64 { return int64(stats.L50(v)) })
	registerFloat(reg, MetricL50Percent, "L50 %", "L50 as a percentage of the count", typeRatio, l50Percent)
	registerFloat(reg, MetricCV, "CV %", "Coefficient of variation of the lengths, population convention",
		typeRatio, func(v []int32) float64 { return stats.CV(stats.Floats(v)) })

	return reg
}

func l50Percent(v []int32) float64 {
	if len(v) == 0 {
		return 0
	}

	return stats.PercentRatio(safeconv.MustIntToUint(stats.L50(v)), safeconv.MustIntToUint(len(v)))
}

func registerInt(reg *metrics.Registry, name, display, desc, kind string, fn func([]int32) int64) {
	metrics.Register[[]int32, int64](reg, intMetric{
		MetricMeta: metrics.MetricMeta{
			MetricName:        name,
			MetricDisplayName: display,
			MetricDescription: desc,
			MetricType:        kind,
		},
		Fn: fn,
	})
}

func registerFloat(reg *metrics.Registry, name, display, desc, kind string, fn func([]int32) float64) {
	metrics.Register[[]int32, float64](reg, floatMetric{
		MetricMeta: metrics.MetricMeta{
			MetricName:        name,
			MetricDisplayName: display,
			MetricDescription: desc,
			MetricType:        kind,
		},
		Fn: fn,
	})
}
