// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/gatsp/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny is the tolerance for exact-by-construction float results.
	epsTiny = 1e-12

	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(7)
)

// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

// squareNodes is the 10×10 square in cyclic order; its closed distance is 40.
func squareNodes() []tsp.Node {
	return []tsp.Node{
		tsp.NewNode(0, 0, 'a'),
		tsp.NewNode(0, 10, 'b'),
		tsp.NewNode(10, 10, 'c'),
		tsp.NewNode(10, 0, 'd'),
	}
}

// gridNodes returns w×h distinct nodes spaced 7 apart.
func gridNodes(w, h int) []tsp.Node {
	out := make([]tsp.Node, 0, w*h)
	var x, y int
	for y = 0; y < h; y++ {
		for x = 0; x < w; x++ {
			out = append(out, tsp.NewNode(7*x, 7*y, tsp.DefaultTag))
		}
	}
	return out
}

// tourOf builds a complete tour holding nodes in the given order.
func tourOf(t *testing.T, nodes ...tsp.Node) *tsp.Tour {
	t.Helper()
	tour := tsp.NewTour(len(nodes))
	for i, n := range nodes {
		if err := tour.SetNode(i, n); err != nil {
			t.Fatalf("SetNode(%d): %v", i, err)
		}
	}
	return tour
}

// -----------------------------------------------------------------------------
// Generic helpers (repeaters, assertions, numeric closeness)
// -----------------------------------------------------------------------------

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// mustFloatClose asserts |got-want| <= abs.
func mustFloatClose(t *testing.T, got, want, abs float64) {
	t.Helper()
	if math.Abs(got-want) > abs {
		t.Fatalf("float mismatch: got=%.17g want=%.17g (abs=%.1e)", got, want, abs)
	}
}
