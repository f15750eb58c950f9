package maze

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// shuffle performs an in-place Fisher–Yates shuffle.
//
// Complexity: O(n) time, O(1) extra space.
func shuffle[T any](a []T, r *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// pick returns a uniformly random element of a non-empty slice.
func pick[T any](a []T, r *rand.Rand) T {
	return a[r.Intn(len(a))]
}

// randomEven returns a uniformly random even index in [0, n).
func randomEven(n int, r *rand.Rand) int {
	return r.Intn((n+1)/2) * 2
}
