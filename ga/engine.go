// Package ga implements the generational step of the genetic TSP optimizer:
// selection → crossover → mutation → refitness.
//
// The Engine is strategy-agnostic: the roulette or tournament Selector is
// resolved once from Options and every parent draw goes through it. All
// randomness flows through the caller's *rand.Rand in a fixed order, so a
// seeded generator reproduces a run bit for bit:
//
//  1. For each of the PopulationSize children: parent1 selection, parent2
//     selection, then the two crossover cut points.
//  2. Mutation of every child, in storage order.
//
// Each child reads only its two parents and writes only its own tour; no
// state is shared between the children of one generation.
package ga

import (
	"math/rand"

	"github.com/katalvlaran/gatsp/population"
	"github.com/katalvlaran/gatsp/tsp"
)

// Engine evolves populations under a fixed Options value.
type Engine struct {
	opts     Options
	selector population.Selector
}

// NewEngine validates opts and resolves the selection strategy.
//
// Errors: wrapped ErrInvalidOptions.
func NewEngine(opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	// Validate already proved the name parses.
	sel, _ := population.ParseSelector(opts.Selection, opts.TournamentSize)
	if opts.OnInitial == nil {
		opts.OnInitial = func(*tsp.Tour) {}
	}
	if opts.OnGeneration == nil {
		opts.OnGeneration = func(int, *tsp.Tour) {}
	}

	return &Engine{opts: opts, selector: sel}, nil
}

// Options returns the engine's configuration.
func (e *Engine) Options() Options { return e.opts }

// Selector returns the resolved selection strategy.
func (e *Engine) Selector() population.Selector { return e.selector }

// NewPopulation returns an empty population sized and configured for this engine.
func (e *Engine) NewPopulation() (*population.Population, error) {
	return population.New(e.opts.PopulationSize, population.WithAmplifyFactor(e.opts.AmplifyFactor))
}

// EvolvePopulation performs one generational transition and returns the new
// population with fitness initialized. pop itself is not modified.
//
// Errors: tsp.ErrNilRNG, ErrNilPopulation, population.ErrEmpty when pop was
// never filled, and any crossover or fitness error. On error no population is
// returned; the run must stop.
//
// Complexity: O(Size·N²) for crossover plus O(Size·N) for mutation and fitness.
func (e *Engine) EvolvePopulation(rng *rand.Rand, pop *population.Population) (*population.Population, error) {
	next, _, err := e.evolve(rng, pop)
	return next, err
}

// evolve is EvolvePopulation that also reports the number of mutation swaps.
func (e *Engine) evolve(rng *rand.Rand, pop *population.Population) (*population.Population, int, error) {
	if rng == nil {
		return nil, 0, tsp.ErrNilRNG
	}
	if pop == nil {
		return nil, 0, ErrNilPopulation
	}
	if pop.Len() == 0 {
		return nil, 0, population.ErrEmpty
	}

	var (
		size     = pop.Size()
		children = make([]*tsp.Tour, 0, size)
		i        int
		p1, p2   int
		child    *tsp.Tour
		err      error
	)

	// 1. Breed.
	for i = 0; i < size; i++ {
		p1 = e.selector.Select(rng, pop)
		p2 = e.selector.Select(rng, pop)
		child, err = Crossover(rng, pop.Tour(p1), pop.Tour(p2))
		if err != nil {
			return nil, 0, err
		}
		children = append(children, child)
	}

	// 2. Install without fitness.
	next, err := population.New(size, population.WithAmplifyFactor(pop.AmplifyFactor()))
	if err != nil {
		return nil, 0, err
	}
	if err = next.Initialize(children); err != nil {
		return nil, 0, err
	}

	// 3. Mutate in place.
	var swaps int
	for i = 0; i < size; i++ {
		swaps += Mutate(rng, next.Tour(i), e.opts.MutationRate)
	}

	// 4. Refitness once the generation is stable.
	if err = next.InitializeFitness(); err != nil {
		return nil, 0, err
	}
	return next, swaps, nil
}
