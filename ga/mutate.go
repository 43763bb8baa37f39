package ga

import (
	"math/rand"

	"github.com/katalvlaran/gatsp/tsp"
)

// Mutate visits every position i of tour and, with probability rate, swaps it
// with a second position j drawn uniformly from the other N-1 positions.
// Each triggered event draws its own j. It returns the number of swaps made.
// Tours shorter than two nodes are left untouched.
//
// RNG consumption: one Float64 per position, plus one Intn(N-1) per swap.
//
// Complexity: O(N).
func Mutate(rng *rand.Rand, tour *tsp.Tour, rate float64) int {
	var (
		n     = tour.Len()
		i     int
		j     int
		swaps int
	)
	if n < 2 {
		return 0
	}
	for i = 0; i < n; i++ {
		if rng.Float64() >= rate {
			continue
		}
		// Uniform over [0,n) \ {i}.
		j = rng.Intn(n - 1)
		if j >= i {
			j++
		}
		_ = tour.Swap(i, j)
		swaps++
	}
	return swaps
}
