package ga_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/tsp"
)

const seedDet = int64(5)

// letters returns n distinct nodes on a diagonal, tagged 'A', 'B', ...
func letters(n int) []tsp.Node {
	out := make([]tsp.Node, n)
	for i := range out {
		out[i] = tsp.NewNode(i*3, i*i, rune('A'+i))
	}
	return out
}

// ring returns n distinct nodes on a coarse circle-like lattice.
func ring(n int) []tsp.Node {
	out := make([]tsp.Node, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, tsp.NewNode((i*37)%101, (i*53)%97+i, tsp.DefaultTag))
	}
	return out
}

func tourOf(t *testing.T, nodes ...tsp.Node) *tsp.Tour {
	t.Helper()
	tour := tsp.NewTour(len(nodes))
	for i, n := range nodes {
		require.NoError(t, tour.SetNode(i, n))
	}
	return tour
}

// tags renders a tour as its node tags, e.g. "EBCDA".
func tags(t *testing.T, tour *tsp.Tour) string {
	t.Helper()
	out := make([]rune, 0, tour.Len())
	for _, n := range tour.Nodes() {
		out = append(out, n.Tag)
	}
	return string(out)
}

// Repeat runs fn n times as subtests.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < n; i++ {
		t.Run("", fn)
	}
}
