// Package population maintains a fixed-size group of tours, their aggregate
// fitness, and the parent-selection operators that read it.
//
// A Population is created empty and filled exactly once, either by
// InitializeFromNodes (generation 0) or by Initialize with bred children.
// InitializeFitness must then run once, after every tour is complete, so that
// TotalFitness and each tour's relative/amplified fitness describe the same
// set of tours. Populations are replaced wholesale each generation, never edited.
package population

import (
	"math/rand"

	"github.com/katalvlaran/gatsp/tsp"
)

// Population is a fixed-size collection of tours plus total fitness.
type Population struct {
	size         int
	tours        []*tsp.Tour
	totalFitness float64
	amplify      float64
}

// New returns an empty population that will hold exactly size tours.
//
// Errors: ErrPopulationSize when size < 1.
func New(size int, opts ...Option) (*Population, error) {
	if size < 1 {
		return nil, ErrPopulationSize
	}
	o := gatherOptions(opts)

	return &Population{
		size:    size,
		tours:   make([]*tsp.Tour, 0, size),
		amplify: o.amplify,
	}, nil
}

// Size returns the configured tour count.
func (p *Population) Size() int { return p.size }

// Len returns the number of tours currently held: 0 or Size().
func (p *Population) Len() int { return len(p.tours) }

// TotalFitness returns the sum of every tour's fitness as of the last InitializeFitness.
func (p *Population) TotalFitness() float64 { return p.totalFitness }

// AmplifyFactor returns the factor used for amplified fitness.
func (p *Population) AmplifyFactor() float64 { return p.amplify }

// Tour returns the tour at index i, or nil when i is out of range.
// The returned tour is owned by the population.
func (p *Population) Tour(i int) *tsp.Tour {
	if i < 0 || i >= len(p.tours) {
		return nil
	}
	return p.tours[i]
}

// InitializeFromNodes fills an empty population with Size() independent
// random shuffles of nodes and computes fitness. Generation 0 starts here.
//
// Errors:
//   - ErrNotEmpty when tours were already installed.
//   - tsp.ErrNilRNG, tsp.ErrTooFewNodes, tsp.ErrDuplicateNode from validation.
//   - any fitness error from InitializeFitness.
//
// Complexity: O(Size·ShufflePasses·n).
func (p *Population) InitializeFromNodes(rng *rand.Rand, nodes []tsp.Node) error {
	if len(p.tours) != 0 {
		return ErrNotEmpty
	}
	if rng == nil {
		return tsp.ErrNilRNG
	}
	if err := tsp.ValidateNodes(nodes); err != nil {
		return err
	}

	var (
		i   int
		t   *tsp.Tour
		err error
	)
	tours := make([]*tsp.Tour, 0, p.size)
	for i = 0; i < p.size; i++ {
		t = tsp.NewTour(len(nodes))
		if err = t.GenerateIndividual(rng, nodes); err != nil {
			return err
		}
		tours = append(tours, t)
	}
	p.tours = tours

	return p.InitializeFitness()
}

// Initialize installs a freshly bred generation. Fitness is not computed.
//
// Errors: ErrNotEmpty, ErrCountMismatch, ErrNilTour.
func (p *Population) Initialize(tours []*tsp.Tour) error {
	if len(p.tours) != 0 {
		return ErrNotEmpty
	}
	if len(tours) != p.size {
		return ErrCountMismatch
	}
	var t *tsp.Tour
	for _, t = range tours {
		if t == nil {
			return ErrNilTour
		}
	}
	p.tours = append(p.tours, tours...)

	return nil
}

// InitializeFitness recomputes TotalFitness as the sum of SetFitness over
// every tour, then sets each tour's relative and amplified fitness from that
// total and average = total/Size(). Call once per generation, after all
// mutation has finished.
//
// Errors: ErrEmpty, tsp.ErrIncompleteTour, tsp.ErrDegenerateTour,
// tsp.ErrNonPositiveTotal. On error the population must be discarded.
//
// Complexity: O(Size·n).
func (p *Population) InitializeFitness() error {
	if len(p.tours) == 0 {
		return ErrEmpty
	}

	var (
		t     *tsp.Tour
		total float64
		err   error
	)
	for _, t = range p.tours {
		if err = t.SetFitness(); err != nil {
			return err
		}
		total += t.Fitness()
	}
	p.totalFitness = total

	average := total / float64(p.size)
	for _, t = range p.tours {
		if err = t.SetRelativeFitnessAmplified(total, average, p.amplify); err != nil {
			return err
		}
	}
	return nil
}

// Fittest returns the tour with maximum fitness (minimum distance).
// Ties go to the first tour in storage order.
//
// Complexity: O(Size).
func (p *Population) Fittest() (*tsp.Tour, error) {
	if len(p.tours) == 0 {
		return nil, ErrEmpty
	}
	best := p.tours[0]
	var t *tsp.Tour
	for _, t = range p.tours[1:] {
		if t.Fitness() > best.Fitness() {
			best = t
		}
	}
	return best, nil
}
