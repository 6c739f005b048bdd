// Package lcg implements a fixed linear congruential generator whose output
// can be reproduced bit for bit by any implementation using 64-bit
// two's-complement arithmetic.
//
// Parameters (Knuth MMIX):
//
//	Multiplier: 6364136223846793005
//	Increment:  1442695040888963407
//	Modulus:    2^64 (implicit via int64 overflow)
package lcg

const (
	multiplier int64 = 6364136223846793005
	increment  int64 = 1442695040888963407
)

// LCG is a linear congruential generator. It is not safe for concurrent use.
type LCG struct {
	state int64
}

// New creates an LCG starting from seed.
func New(seed int64) *LCG {
	return &LCG{state: seed}
}

// State returns the current value without advancing.
func (l *LCG) State() int64 {
	return l.state
}

// Next advances the generator and returns the new value.
func (l *LCG) Next() int64 {
	l.state = l.state*multiplier + increment

	return l.state
}

// MakeRandomVec resizes dst to n elements and fills it with the sequence
// 0, f(0), f(f(0)), ... where f is the generator step. The backing array of
// dst is reused when its capacity suffices; every element is regenerated.
// MakeRandomVec panics if n is negative.
func MakeRandomVec(dst []int64, n int) []int64 {
	if n < 0 {
		panic("lcg: negative length")
	}

	if cap(dst) >= n {
		dst = dst[:n]
	} else {
		dst = make([]int64, n)
	}

	gen := New(0)

	for i := range dst {
		if i == 0 {
			dst[i] = gen.State()

			continue
		}

		dst[i] = gen.Next()
	}

	return dst
}
