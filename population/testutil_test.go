package population_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/population"
	"github.com/katalvlaran/gatsp/tsp"
)

const (
	epsSum  = 1e-9
	seedDet = int64(11)
)

// square is the 10×10 square in cyclic order (distance 40).
func square() []tsp.Node {
	return []tsp.Node{
		tsp.NewNode(0, 0, 'n'),
		tsp.NewNode(0, 10, 'n'),
		tsp.NewNode(10, 10, 'n'),
		tsp.NewNode(10, 0, 'n'),
	}
}

// crossed is the same node set visited diagonally (distance 48).
func crossed() []tsp.Node {
	s := square()
	return []tsp.Node{s[0], s[2], s[1], s[3]}
}

// tourOf builds a complete tour holding nodes in order.
func tourOf(t *testing.T, nodes []tsp.Node) *tsp.Tour {
	t.Helper()
	tour := tsp.NewTour(len(nodes))
	for i, n := range nodes {
		require.NoError(t, tour.SetNode(i, n))
	}
	return tour
}

// fixedPopulation installs the given orderings and initializes fitness.
func fixedPopulation(t *testing.T, orders ...[]tsp.Node) *population.Population {
	t.Helper()
	p, err := population.New(len(orders))
	require.NoError(t, err)

	tours := make([]*tsp.Tour, len(orders))
	for i, o := range orders {
		tours[i] = tourOf(t, o)
	}
	require.NoError(t, p.Initialize(tours))
	require.NoError(t, p.InitializeFitness())
	return p
}
