// Package tsp: validation helpers for node lists and tours.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on caller input, only sentinel errors from types.go.
package tsp

// ValidateNodes checks that nodes can seed a population: at least two nodes
// and no two sharing the same (x,y). With distinct coordinates every complete
// tour has a positive distance, so fitness is always defined.
//
// Complexity: O(n) time, O(n) space.
func ValidateNodes(nodes []Node) error {
	if len(nodes) < 2 {
		return ErrTooFewNodes
	}
	seen := make(map[point]struct{}, len(nodes))

	var (
		n  Node
		ok bool
	)
	for _, n = range nodes {
		if _, ok = seen[n.key()]; ok {
			return ErrDuplicateNode
		}
		seen[n.key()] = struct{}{}
	}
	return nil
}

// ValidatePermutation checks the permutation invariant: t is complete, has
// len(nodes) slots, and every node of nodes appears in exactly one slot.
//
// Errors: ErrSizeMismatch, ErrIncompleteTour, ErrNotPermutation.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(t *Tour, nodes []Node) error {
	if t.Len() != len(nodes) {
		return ErrSizeMismatch
	}
	if !t.IsComplete() {
		return ErrIncompleteTour
	}

	want := make(map[point]int, len(nodes))
	var n Node
	for _, n = range nodes {
		want[n.key()]++
	}
	for _, n = range t.nodes {
		if want[n.key()] == 0 {
			// Either absent from nodes or already consumed by a duplicate slot.
			return ErrNotPermutation
		}
		want[n.key()]--
	}
	return nil
}
