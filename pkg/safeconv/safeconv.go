// Package safeconv provides checked integer conversions. The Must variants
// panic on overflow and are meant for values whose range is already known.
package safeconv

import "math"

// MustIntToUint converts int to uint, panics if negative.
// Use only when negative values are logically impossible.
func MustIntToUint(v int) uint {
	if v < 0 {
		panic("safeconv: negative int to uint conversion")
	}

	return uint(v)
}

// Int64ToInt32 converts v to int32, reporting whether it was in range.
func Int64ToInt32(v int64) (int32, bool) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}

	return int32(v), true
}

// Uint64ToUint converts v to uint, reporting whether it was in range.
func Uint64ToUint(v uint64) (uint, bool) {
	if v > uint64(math.MaxUint) {
		return 0, false
	}

	return uint(v), true
}
