package stats

// AbsDiff returns |a - b| without unsigned underflow.
func AbsDiff(a, b uint) uint {
	if a <= b {
		return b - a
	}

	return a - b
}

// AbsDiffFloat returns |a - b|.
func AbsDiffFloat(a, b float64) float64 {
	if a <= b {
		return b - a
	}

	return a - b
}

// PercentRatio returns 100 × a / b. A zero b yields +Inf, or NaN when a is
// also zero.
func PercentRatio(a, b uint) float64 {
	return percentScale * float64(a) / float64(b)
}
