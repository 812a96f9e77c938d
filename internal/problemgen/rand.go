package problemgen

import "math/rand/v2"

// Rand is the random source generators draw from. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a PCG-backed source. A zero seed picks a random one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// between returns a uniform integer in [lo, hi].
func between(r Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

// pick returns a uniformly chosen element of xs.
func pick[T any](r Rand, xs []T) T {
	return xs[r.IntN(len(xs))]
}

// chance reports true with probability p.
func chance(r Rand, p float64) bool {
	return r.Float64() < p
}
