package stats

import "slices"

// N90 threshold as 9/10; the exact-tie test stays in integer arithmetic.
const (
	n90Numerator   = 9
	n90Denominator = 10
	n90Fraction    = 0.9
)

// N50 returns the N50 of lengths: the length at which the ascending
// cumulative sum first reaches half of the total. When the half-way point
// falls exactly between two elements, their truncated average is returned.
//
// Every length must be positive; N50 panics otherwise. Returns 0 for an
// empty slice.
func N50(lengths []int32) int32 {
	_, value := n50Crossing(lengths)

	return value
}

// N90 returns the N90 of lengths: the length at which the ascending
// cumulative sum first reaches 90% of the total, with the same tie rule as
// [N50].
//
// Every length must be positive; N90 panics otherwise. Returns 0 for an
// empty slice.
func N90(lengths []int32) int32 {
	_, value := n90Crossing(lengths)

	return value
}

// n50Crossing returns the index in the sorted copy at which the N50 is
// decided, and the N50 itself. The index is -1 for an empty slice.
func n50Crossing(lengths []int32) (int, int32) {
	sorted, total := sortedLengths(lengths)

	var half int64

	for i, v := range sorted {
		half += int64(v)

		if 2*half == total && i < len(sorted)-1 {
			return i, midpoint(v, sorted[i+1])
		}

		if 2*half >= total {
			return i, v
		}
	}

	return -1, 0
}

// n90Crossing is the N90 counterpart of n50Crossing. The exact-tie test runs
// in integers first; the threshold test compares a float ratio.
func n90Crossing(lengths []int32) (int, int32) {
	sorted, total := sortedLengths(lengths)

	var part int64

	for i, v := range sorted {
		part += int64(v)

		if n90Denominator*part == n90Numerator*total && i < len(sorted)-1 {
			return i, midpoint(v, sorted[i+1])
		}

		if float64(part)/float64(total) >= n90Fraction {
			return i, v
		}
	}

	return -1, 0
}

// sortedLengths validates lengths and returns an ascending copy with its
// 64-bit total.
func sortedLengths(lengths []int32) ([]int32, int64) {
	var total int64

	for _, v := range lengths {
		if v <= 0 {
			panic("stats: lengths must be positive")
		}

		total += int64(v)
	}

	sorted := slices.Clone(lengths)
	slices.Sort(sorted)

	return sorted, total
}

// midpoint returns the truncated average of a and b without int32 overflow.
func midpoint(a, b int32) int32 {
	return int32((int64(a) + int64(b)) / 2)
}

// L50 returns the smallest number of the longest elements whose sum reaches
// half of the total. Returns 0 for an empty slice. Panics on non-positive
// lengths.
func L50(lengths []int32) int {
	sorted, total := sortedLengths(lengths)

	var part int64

	for i := len(sorted) - 1; i >= 0; i-- {
		part += int64(sorted[i])

		if 2*part >= total {
			return len(sorted) - i
		}
	}

	return 0
}
