// Package solver - deterministic RNG derivation for multi-start runs.
//
// All randomness is routed through the SEED parameter. Each restart gets an
// independent stream derived with a SplitMix64-style avalanche mix, so runs
// are decorrelated yet fully reproducible: same seed ⇒ same tours, on every
// platform.
//
// Concurrency: math/rand.Rand is not goroutine-safe; each run owns its Rand.
package solver

import "math/rand"

// defaultRNGSeed is the fixed stream used when callers pass seed==0.
// Arbitrary but stable, to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// runRNG returns the deterministic RNG for restart number run under seed.
// Policy: seed==0 ⇒ defaultRNGSeed; run indices produce independent streams.
//
// Complexity: O(1).
func runRNG(seed int64, run uint64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(deriveSeed(s, run)))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using the canonical SplitMix64 multipliers/finalizer (Vigna 2014);
// small input changes produce large, well-distributed output changes.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// shufflePermInPlace shuffles perm[1:] with a Fisher–Yates pass, keeping
// the start vertex pinned at position 0.
//
// Complexity: O(n).
func shufflePermInPlace(perm []int, rng *rand.Rand) {
	var i, j int
	for i = len(perm) - 1; i > 1; i-- {
		j = 1 + rng.Intn(i) // j ∈ [1..i]
		perm[i], perm[j] = perm[j], perm[i]
	}
}
