// Package tsp - RNG utilities for the random constructor and restarts.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: randomness is always passed in explicitly; no
//     time-based or global sources are used anywhere in the package.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use deriveRNG to create independent streams for restarts.
package tsp

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic *rand.Rand for seed.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func NewRand(seed int64) *rand.Rand {
	return rngFromSeed(seed)
}

func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64 finalizer, so neighbouring stream ids give
// uncorrelated seeds.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent deterministic stream from base and a
// stream id. base.Int63() is consumed once per call; base==nil uses
// defaultRNGSeed as the parent.
//
// Complexity: O(1).
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// shuffleInPlace performs an in-place Fisher–Yates shuffle of a using rng.
// Every permutation is equally likely. rng==nil uses the default stream.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace[T any](a []T, rng *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}
	r := rng
	if r == nil {
		r = rngFromSeed(0)
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
