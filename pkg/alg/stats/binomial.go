package stats

// BinomialSum returns the binomial cumulative distribution
//
//	sum_{i=0..k} C(n,i) · p^i · (1-p)^(n-i)
//
// Successive terms are derived from the previous one by the ratio
// (n-i)/(i+1) · p/(1-p), starting from (1-p)^n. The recurrence is kept
// as-is so results stay reproducible; it is not hardened against
// underflow, overflow or p == 1.
//
// BinomialSum panics if n is zero or k exceeds n.
func BinomialSum(n, k uint, p float64) float64 {
	if n < 1 {
		panic("stats: binomial sum requires n >= 1")
	}

	if k > n {
		panic("stats: binomial sum requires k <= n")
	}

	choose := 1.0

	for range n {
		choose *= 1 - p
	}

	q := p / (1 - p)

	var sum float64

	for i := range k + 1 {
		sum += choose
		choose *= float64(n - i)
		choose /= float64(i + 1)
		choose *= q
	}

	return sum
}
