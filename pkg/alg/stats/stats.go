// Package stats provides descriptive statistics over sequence lengths and
// numeric samples. All standard deviation calculations use population stddev
// (÷n, not ÷(n−1)).
//
// Functions are pure: inputs are never modified, and degenerate input (an
// empty slice, a zero sum) yields 0. Contract violations such as a
// non-positive length passed to N50 panic.
package stats

import (
	"cmp"
	"math"
	"slices"
)

// percentScale converts a ratio into a percentage.
const percentScale = 100.0

// Mean returns the arithmetic mean of values.
// Returns 0 for an empty slice.
func Mean(values []int32) float64 {
	count := float64(len(values))

	var sum float64

	for _, v := range values {
		sum += float64(v)
	}

	if count == 0 {
		return 0
	}

	return sum / count
}

// LenWeightedMean returns the length-weighted mean of values: the sum of
// squares divided by the sum. A value drawn at random by position (rather
// than by element) falls, on average, in an element of this length.
// Normally applied to positive values; negative input is not rejected.
// Returns 0 when the sum is zero.
func LenWeightedMean(values []int32) float64 {
	var sum, sumSq float64

	for _, v := range values {
		x := float64(v)
		sum += x
		sumSq += x * x
	}

	if sum == 0 {
		return 0
	}

	return sumSq / sum
}

// MeanStdDev returns the arithmetic mean and population standard deviation.
// Returns (0, 0) for an empty slice.
func MeanStdDev(values []float64) (mean, stddev float64) {
	count := len(values)
	if count == 0 {
		return 0, 0
	}

	for _, v := range values {
		mean += v
	}

	mean /= float64(count)

	var sumSq float64

	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}

	return mean, math.Sqrt(sumSq / float64(count))
}

// CV returns the coefficient of variation of values as a percentage
// (100 × stddev / mean). Returns 0 for an empty slice. A zero mean produces
// NaN or ±Inf, which callers must tolerate.
func CV(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	mean, stddev := MeanStdDev(values)

	return percentScale * stddev / mean
}

// Total returns the sum of lengths accumulated in 64 bits.
func Total(lengths []int32) int64 {
	var total int64

	for _, v := range lengths {
		total += int64(v)
	}

	return total
}

// PercentileMedian is the median percentile threshold.
const PercentileMedian = 0.5

// Percentile returns the p-th percentile of values using linear interpolation.
// p must be in [0, 1]. The input slice is not modified (a copy is sorted internally).
// Returns 0 for an empty slice.
func Percentile(values []float64, p float64) float64 {
	count := len(values)
	if count == 0 {
		return 0
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	idx := p * float64(count-1)
	lower := int(math.Floor(idx))
	upper := int(math.Ceil(idx))

	if lower == upper || upper >= count {
		return sorted[lower]
	}

	frac := idx - float64(lower)

	return sorted[lower]*(1-frac) + sorted[upper]*frac
}

// Median returns the 50th percentile of values.
// Returns 0 for an empty slice.
func Median(values []float64) float64 {
	return Percentile(values, PercentileMedian)
}

// Min returns the smallest element in values.
// Returns the zero value of T for an empty slice.
func Min[T cmp.Ordered](values []T) T {
	if len(values) == 0 {
		var zero T

		return zero
	}

	return slices.Min(values)
}

// Max returns the largest element in values.
// Returns the zero value of T for an empty slice.
func Max[T cmp.Ordered](values []T) T {
	if len(values) == 0 {
		var zero T

		return zero
	}

	return slices.Max(values)
}

// Floats converts integer lengths to float64 samples.
func Floats(values []int32) []float64 {
	out := make([]float64, len(values))

	for i, v := range values {
		out[i] = float64(v)
	}

	return out
}
