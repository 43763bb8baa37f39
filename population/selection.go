package population

import (
	"math/rand"
	"strings"

	"github.com/katalvlaran/gatsp/tsp"
)

// Strategy names accepted by ParseSelector.
const (
	RouletteName   = "roulette"
	TournamentName = "tournament"
)

// Selector chooses a parent index from a population whose fitness is initialized.
type Selector interface {
	Name() string
	Select(rng *rand.Rand, p *Population) int
}

// RouletteIndex walks tours in storage order accumulating amplified fitness
// and returns the first index whose cumulative sum exceeds u (u ∈ [0,1)).
// A population with TotalFitness() <= 0, or a walk that never exceeds u due to
// floating-point gaps, yields index 0.
//
// Complexity: O(Size).
func (p *Population) RouletteIndex(u float64) int {
	if !(p.totalFitness > 0) {
		return 0
	}

	var (
		cumulative float64
		i          int
		t          *tsp.Tour
	)
	for i, t = range p.tours {
		if u < cumulative+t.AmplifiedFitness() {
			return i
		}
		cumulative += t.AmplifiedFitness()
	}
	return 0
}

// RandomIndices draws k indices uniformly from [0, Len()) with replacement.
func (p *Population) RandomIndices(rng *rand.Rand, k int) []int {
	if k <= 0 || len(p.tours) == 0 {
		return nil
	}
	out := make([]int, k)
	var i int
	for i = range out {
		out[i] = rng.Intn(len(p.tours))
	}
	return out
}

// TournamentIndex samples k indices (with replacement) and returns the one
// with the highest raw fitness; the earliest sample wins ties. k < 1 is
// treated as 1, which is a uniform random choice.
//
// Complexity: O(k).
func (p *Population) TournamentIndex(rng *rand.Rand, k int) int {
	if len(p.tours) == 0 {
		return 0
	}
	if k < 1 {
		k = 1
	}

	var (
		sample = p.RandomIndices(rng, k)
		best   = sample[0]
		idx    int
	)
	for _, idx = range sample[1:] {
		if p.tours[idx].Fitness() > p.tours[best].Fitness() {
			best = idx
		}
	}
	return best
}

// Roulette selects proportionally to amplified fitness.
type Roulette struct{}

func (Roulette) Name() string { return RouletteName }

// Select draws u from rng and returns p.RouletteIndex(u).
func (Roulette) Select(rng *rand.Rand, p *Population) int {
	return p.RouletteIndex(rng.Float64())
}

// Tournament selects the fittest of Size uniformly sampled tours.
type Tournament struct {
	Size int
}

func (Tournament) Name() string { return TournamentName }

func (s Tournament) Select(rng *rand.Rand, p *Population) int {
	return p.TournamentIndex(rng, s.Size)
}

// ParseSelector resolves a strategy name (case-insensitive) into a Selector.
// tournamentSize is used only by the tournament strategy.
//
// Errors: ErrUnknownSelector, ErrTournamentSize.
func ParseSelector(name string, tournamentSize int) (Selector, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case RouletteName:
		return Roulette{}, nil
	case TournamentName:
		if tournamentSize < 1 {
			return nil, ErrTournamentSize
		}
		return Tournament{Size: tournamentSize}, nil
	default:
		return nil, ErrUnknownSelector
	}
}
