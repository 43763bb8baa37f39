// Package tsp: distance utilities.
//
// The tour length is the sum over the closed cycle (every node to its
// successor, and the last node back to the first) of the Euclidean edge
// length, each edge truncated to an integer before it is added. Truncating
// per edge rather than the final sum is the historical convention; results
// are comparable only under it.
//
// Complexity:
//   - O(n) time for a tour of n nodes, O(1) extra space.
package tsp

import "math"

// EdgeDistance returns the Euclidean distance between a and b truncated to an integer.
//
// Complexity: O(1).
func EdgeDistance(a, b Node) int {
	var (
		dx = float64(a.X - b.X)
		dy = float64(a.Y - b.Y)
	)
	return int(math.Sqrt(dx*dx + dy*dy))
}

// Distance returns the integer length of the closed cycle.
// A tour with any unfilled slot returns ErrIncompleteTour.
// Tours of length 0 or 1 have distance 0.
//
// Complexity: O(n).
func (t *Tour) Distance() (int, error) {
	if !t.IsComplete() {
		return 0, ErrIncompleteTour
	}

	var (
		n   = len(t.nodes)
		sum int
		i   int
	)
	if n < 2 {
		return 0, nil
	}
	for i = 0; i < n-1; i++ {
		sum += EdgeDistance(t.nodes[i], t.nodes[i+1])
	}
	// Closing edge back to the start.
	sum += EdgeDistance(t.nodes[n-1], t.nodes[0])

	return sum, nil
}

// RunTimeEstimate is the display heuristic printed next to a tour's
// distance: distance/3000 + 0.1·n. It is a unitless number, not a duration.
func RunTimeEstimate(distance, n int) float64 {
	return float64(distance)/3000.0 + 0.1*float64(n)
}
