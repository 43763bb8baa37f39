package ga_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/ga"
	"github.com/katalvlaran/gatsp/tsp"
)

func TestCrossoverAt_Cases(t *testing.T) {
	n := letters(5)
	p1 := tourOf(t, n...)                         // ABCDE
	p2 := tourOf(t, n[4], n[3], n[2], n[1], n[0]) // EDCBA

	tests := []struct {
		name       string
		start, end int
		want       string
	}{
		{"inner segment", 1, 4, "EBCDA"},
		{"wrapped segment", 3, 1, "ABCDE"},
		{"wrapped edges only", 4, 0, "ADCBE"},
		{"equal cuts copy nothing", 2, 2, "EDCBA"},
		{"adjacent cuts copy nothing", 0, 1, "EDCBA"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			child, err := ga.CrossoverAt(p1, p2, tc.start, tc.end)
			require.NoError(t, err)
			require.Equal(t, tc.want, tags(t, child))
			require.Zero(t, child.Fitness(), "children start without fitness")
		})
	}
}

// TestCrossoverAt_AllCutsComplete checks every (start,end) pair on shuffled parents.
func TestCrossoverAt_AllCutsComplete(t *testing.T) {
	nodes := ring(9)
	rng := tsp.NewRNG(seedDet)
	p1, p2 := tsp.NewTour(len(nodes)), tsp.NewTour(len(nodes))
	require.NoError(t, p1.GenerateIndividual(rng, nodes))
	require.NoError(t, p2.GenerateIndividual(rng, nodes))

	var start, end int
	for start = 0; start < len(nodes); start++ {
		for end = 0; end < len(nodes); end++ {
			child, err := ga.CrossoverAt(p1, p2, start, end)
			require.NoError(t, err, fmt.Sprintf("start=%d end=%d", start, end))
			require.NoError(t, tsp.ValidatePermutation(child, nodes), fmt.Sprintf("start=%d end=%d", start, end))
		}
	}
}

// TestCrossoverAt_SegmentFromParent1 checks the copied positions keep parent1's nodes.
func TestCrossoverAt_SegmentFromParent1(t *testing.T) {
	n := letters(7)
	p1 := tourOf(t, n...)
	p2 := tourOf(t, n[6], n[5], n[4], n[3], n[2], n[1], n[0])

	child, err := ga.CrossoverAt(p1, p2, 1, 5)
	require.NoError(t, err)
	for i := 2; i <= 4; i++ {
		got, ok := child.Node(i)
		require.True(t, ok)
		want, _ := p1.Node(i)
		require.Equal(t, want, got)
	}
}

func TestCrossover_Errors(t *testing.T) {
	n := letters(4)
	full := tourOf(t, n...)

	_, err := ga.Crossover(nil, full, full)
	require.ErrorIs(t, err, tsp.ErrNilRNG)

	_, err = ga.Crossover(tsp.NewRNG(1), full, tourOf(t, n[:3]...))
	require.ErrorIs(t, err, tsp.ErrSizeMismatch)

	_, err = ga.CrossoverAt(full, tsp.NewTour(4), 0, 2)
	require.ErrorIs(t, err, tsp.ErrIncompleteTour)

	empty, err := ga.Crossover(tsp.NewRNG(1), tsp.NewTour(0), tsp.NewTour(0))
	require.NoError(t, err)
	require.Equal(t, 0, empty.Len())
}

// TestCrossover_DrawsStartThenEnd aligns Crossover with CrossoverAt on the same stream.
func TestCrossover_DrawsStartThenEnd(t *testing.T) {
	nodes := ring(8)
	p1 := tourOf(t, nodes...)
	p2 := tourOf(t, nodes[7], nodes[2], nodes[5], nodes[0], nodes[6], nodes[1], nodes[4], nodes[3])

	a, b := tsp.NewRNG(seedDet), tsp.NewRNG(seedDet)
	Repeat(t, 25, func(t *testing.T) {
		got, err := ga.Crossover(a, p1, p2)
		require.NoError(t, err)

		start, end := b.Intn(len(nodes)), b.Intn(len(nodes))
		want, err := ga.CrossoverAt(p1, p2, start, end)
		require.NoError(t, err)
		require.Equal(t, want.Nodes(), got.Nodes())
	})
}
