package ga

import (
	"math/rand"

	"github.com/katalvlaran/gatsp/tsp"
)

// Crossover breeds one child from two parents of equal length N.
// Two cut positions start and end are drawn independently from [0, N) in that
// order; the child is then built by CrossoverAt.
//
// Errors: tsp.ErrNilRNG, tsp.ErrSizeMismatch, tsp.ErrIncompleteTour.
//
// Complexity: O(N²) due to the membership scans of CrossoverAt.
func Crossover(rng *rand.Rand, parent1, parent2 *tsp.Tour) (*tsp.Tour, error) {
	if rng == nil {
		return nil, tsp.ErrNilRNG
	}
	if parent1.Len() != parent2.Len() {
		return nil, tsp.ErrSizeMismatch
	}
	if parent1.Len() == 0 {
		return tsp.NewTour(0), nil
	}

	var (
		n     = parent1.Len()
		start = rng.Intn(n)
		end   = rng.Intn(n)
	)
	return CrossoverAt(parent1, parent2, start, end)
}

// CrossoverAt builds a child from fixed cut positions:
//
//   - start < end: positions strictly between them come from parent1.
//   - start > end: positions outside the open band (end, start) come from
//     parent1, so the segment wraps around the array boundary.
//   - start == end: nothing is copied; the child starts fully empty.
//
// The remaining slots are filled by scanning parent2 in order and placing each
// node the child does not yet contain into the child's first empty slot.
// This fill does not keep parent2's relative order inside the filled region;
// it is intentionally not the textbook order crossover.
//
// Both parents must be complete permutations of the same node set; the child
// is then a complete permutation of that set. Anything else is reported as
// tsp.ErrIncompleteTour rather than returned half-built.
//
// Complexity: O(N²).
func CrossoverAt(parent1, parent2 *tsp.Tour, start, end int) (*tsp.Tour, error) {
	if parent1.Len() != parent2.Len() {
		return nil, tsp.ErrSizeMismatch
	}
	if !parent1.IsComplete() || !parent2.IsComplete() {
		return nil, tsp.ErrIncompleteTour
	}

	var (
		n     = parent1.Len()
		child = tsp.NewTour(n)
		i     int
		node  tsp.Node
	)

	// Segment from parent1.
	for i = 0; i < n; i++ {
		if inSegment(i, start, end) {
			node, _ = parent1.Node(i)
			_ = child.SetNode(i, node)
		}
	}

	// Fill from parent2 into first-empty slots.
	var slot int
	for i = 0; i < n; i++ {
		node, _ = parent2.Node(i)
		if child.ContainsNode(node) {
			continue
		}
		slot = child.FirstEmpty()
		if slot < 0 {
			break
		}
		_ = child.SetNode(slot, node)
	}

	if !child.IsComplete() {
		return nil, tsp.ErrIncompleteTour
	}
	return child, nil
}

// inSegment reports whether position i is copied from parent1.
func inSegment(i, start, end int) bool {
	switch {
	case start < end:
		return i > start && i < end
	case start > end:
		return !(i < start && i > end)
	default:
		return false
	}
}
