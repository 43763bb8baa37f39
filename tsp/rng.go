// Package tsp: RNG policy shared by the population and the GA engine.
//
// Goals:
//   - Determinism: same seed ⇒ identical shuffles, selections, cut points and
//     mutations, hence bit-identical runs.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//     Callers that want a fresh run choose a seed themselves (cmd/gatsp does).
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package tsp

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func NewRNG(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewSource(s))
}
