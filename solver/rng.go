// RNG utilities shared by the random initializer and the min-conflicts
// solver, adapted from the teacher's tsp/rng.go: the same
// deterministic-seed / SplitMix64-derivation approach, rewritten here for
// user/color/satellite shuffles and picks instead of tour permutations.
//
// Concurrency: math/rand.Rand is NOT goroutine-safe. The parallel solver
// mode in package constellation derives one independent stream per
// satellite via DeriveRNG before fanning out, rather than sharing one
// *rand.Rand across goroutines.
package solver

import "math/rand"

// defaultSeed is the fixed "zero" seed used when callers pass seed==0,
// kept stable so Config{} with no explicit seed is still reproducible.
const defaultSeed int64 = 1

// RNGFromSeed returns a deterministic *rand.Rand. seed==0 maps to
// defaultSeed; any other value is used verbatim.
func RNGFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream id into a new 64-bit seed
// via a SplitMix64-style avalanche mix, so independent substreams
// (one per satellite, in the parallel solver) are well decorrelated.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRNG creates an independent deterministic RNG stream from a base
// RNG and a stream id (e.g. a satellite id in the parallel solver mode).
// If base is nil, defaultSeed is used as the parent.
func DeriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultSeed
	} else {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// shuffleInts performs an in-place Fisher-Yates shuffle of a using rng.
func shuffleInts(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
