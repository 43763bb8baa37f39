package population_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/population"
	"github.com/katalvlaran/gatsp/tsp"
)

// TestRouletteIndex_Walk checks the cumulative walk on a hand-computed population.
// Weights: square ≈ 0.4583, each crossed ≈ 0.2708.
func TestRouletteIndex_Walk(t *testing.T) {
	p := fixedPopulation(t, square(), crossed(), crossed())

	tests := []struct {
		u    float64
		want int
	}{
		{0, 0},
		{0.1, 0},
		{0.45, 0},
		{0.5, 1},
		{0.72, 1},
		{0.8, 2},
		{0.99999, 2},
		{1.5, 0}, // walk falls through
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, p.RouletteIndex(tc.u), "u=%v", tc.u)
	}
}

// TestRouletteIndex_NoFitness returns 0 when fitness was never computed.
func TestRouletteIndex_NoFitness(t *testing.T) {
	p, err := population.New(2)
	require.NoError(t, err)
	require.NoError(t, p.Initialize([]*tsp.Tour{tourOf(t, crossed()), tourOf(t, square())}))

	for _, u := range []float64{0, 0.3, 0.9} {
		require.Equal(t, 0, p.RouletteIndex(u))
	}
}

// TestRoulette_Bias checks that draw frequency tracks the amplified weight.
func TestRoulette_Bias(t *testing.T) {
	orders := make([][]tsp.Node, 10)
	for i := range orders {
		orders[i] = crossed()
	}
	orders[3] = square()
	p := fixedPopulation(t, orders...)

	const draws = 20000
	var (
		rng  = tsp.NewRNG(seedDet)
		sel  = population.Roulette{}
		hits int
		i    int
	)
	for i = 0; i < draws; i++ {
		if sel.Select(rng, p) == 3 {
			hits++
		}
	}
	want := p.Tour(3).AmplifiedFitness()
	require.Greater(t, want, p.Tour(3).RelativeFitness(), "above-average tours gain weight")
	require.InDelta(t, want, float64(hits)/draws, 0.02)
}

// TestRoulette_ConsumesOneFloat keeps the RNG stream aligned with RouletteIndex.
func TestRoulette_ConsumesOneFloat(t *testing.T) {
	p := fixedPopulation(t, square(), crossed(), crossed())
	a, b := tsp.NewRNG(seedDet), tsp.NewRNG(seedDet)

	Repeat(t, 20, func(t *testing.T) {
		require.Equal(t, p.RouletteIndex(b.Float64()), population.Roulette{}.Select(a, p))
	})
}

// TestRandomIndices_Range covers every index, including the last one.
func TestRandomIndices_Range(t *testing.T) {
	p := fixedPopulation(t, crossed(), crossed(), square())
	idx := p.RandomIndices(tsp.NewRNG(seedDet), 300)
	require.Len(t, idx, 300)

	seen := make(map[int]int)
	for _, i := range idx {
		require.GreaterOrEqual(t, i, 0)
		require.Less(t, i, p.Len())
		seen[i]++
	}
	require.Len(t, seen, 3)

	require.Nil(t, p.RandomIndices(tsp.NewRNG(1), 0))
}

// TestTournamentIndex covers large samples, ties and the k<1 clamp.
func TestTournamentIndex(t *testing.T) {
	p := fixedPopulation(t, crossed(), crossed(), square())

	t.Run("large sample finds the best", func(t *testing.T) {
		require.Equal(t, 2, p.TournamentIndex(tsp.NewRNG(seedDet), 200))
	})

	t.Run("ties go to the first sample", func(t *testing.T) {
		flat := fixedPopulation(t, crossed(), crossed(), crossed())
		a, b := tsp.NewRNG(seedDet), tsp.NewRNG(seedDet)
		Repeat(t, 10, func(t *testing.T) {
			first := flat.RandomIndices(b, 4)[0]
			require.Equal(t, first, flat.TournamentIndex(a, 4))
		})
	})

	t.Run("k below one is uniform", func(t *testing.T) {
		a, b := tsp.NewRNG(seedDet), tsp.NewRNG(seedDet)
		require.Equal(t, p.RandomIndices(b, 1)[0], p.TournamentIndex(a, 0))
	})

	t.Run("selector delegates", func(t *testing.T) {
		a, b := tsp.NewRNG(3), tsp.NewRNG(3)
		sel := population.Tournament{Size: 3}
		require.Equal(t, population.TournamentName, sel.Name())
		require.Equal(t, p.TournamentIndex(b, 3), sel.Select(a, p))
	})
}

func TestParseSelector(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		k        int
		wantName string
		wantErr  error
	}{
		{"roulette", "roulette", 0, population.RouletteName, nil},
		{"case and space", "  Tournament ", 4, population.TournamentName, nil},
		{"tournament needs k", "tournament", 0, "", population.ErrTournamentSize},
		{"unknown", "rank", 3, "", population.ErrUnknownSelector},
		{"empty", "", 3, "", population.ErrUnknownSelector},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sel, err := population.ParseSelector(tc.input, tc.k)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, sel)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantName, sel.Name())
		})
	}
}

// Repeat runs fn n times as subtests.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < n; i++ {
		t.Run("", fn)
	}
}
