// SPDX-License-Identifier: MIT
// Package: lightcurve/lightcurve
//
// rng.go - random sources used at the outer call boundary.
//
// Policy:
//   • The pipeline core (Run) never reaches for a global; it takes a source.
//   • Simulate without options uses the process-wide math/rand generator,
//     which is goroutine-safe and randomly seeded by the runtime.
//   • Batches derive one independent stream per curve from a base seed, so
//     curve i is the same whatever the scheduling.

package lightcurve

import "math/rand"

// defaultBatchSeed replaces a zero batch seed. Arbitrary but stable.
const defaultBatchSeed int64 = 1

// processSource draws from the top-level math/rand functions.
type processSource struct{}

// NormFloat64 returns a standard-normal variate from the shared generator.
func (processSource) NormFloat64() float64 { return rand.NormFloat64() }

// deriveSeed mixes a base seed and a stream index into a new seed using the
// SplitMix64 finalizer (Vigna 2014), so neighbouring indices get unrelated
// streams.
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

// streamRand returns the deterministic generator for curve index i of a
// batch seeded with seed.
func streamRand(seed int64, i int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(seed, uint64(i))))
}
