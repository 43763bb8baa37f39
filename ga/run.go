package ga

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/gatsp/tsp"
)

// Run seeds generation 0 from nodes, evolves it Options.Generations times and
// reports the fittest tours before and after. OnInitial is called once
// generation 0 is seeded, OnGeneration after every generation. The returned
// tours are clones, independent of the discarded populations.
//
// Errors: any error from seeding or EvolvePopulation; the run stops at the
// first one and no partial Result is returned.
//
// Complexity: O(Generations·Size·N²).
func (e *Engine) Run(rng *rand.Rand, nodes []tsp.Node) (Result, error) {
	if rng == nil {
		return Result{}, tsp.ErrNilRNG
	}

	pop, err := e.NewPopulation()
	if err != nil {
		return Result{}, err
	}
	if err = pop.InitializeFromNodes(rng, nodes); err != nil {
		return Result{}, err
	}

	initial, err := pop.Fittest()
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Initial: initial.Clone(),
		Nodes:   len(nodes),
	}
	if res.InitialDistance, err = initial.Distance(); err != nil {
		return Result{}, err
	}
	e.opts.OnInitial(initial)

	var (
		start   = time.Now()
		gen     int
		swaps   int
		fittest *tsp.Tour
	)
	for gen = 1; gen <= e.opts.Generations; gen++ {
		if pop, swaps, err = e.evolve(rng, pop); err != nil {
			return Result{}, err
		}
		res.ToursBred += pop.Size()
		res.Mutations += swaps

		if fittest, err = pop.Fittest(); err != nil {
			return Result{}, err
		}
		e.opts.OnGeneration(gen, fittest)
	}
	res.Duration = time.Since(start)
	res.Generations = e.opts.Generations

	best, err := pop.Fittest()
	if err != nil {
		return Result{}, err
	}
	res.Best = best.Clone()
	if res.BestDistance, err = best.Distance(); err != nil {
		return Result{}, err
	}
	return res, nil
}

// RunWithSeed is Run with a generator built by tsp.NewRNG(Options.Seed).
func (e *Engine) RunWithSeed(nodes []tsp.Node) (Result, error) {
	return e.Run(tsp.NewRNG(e.opts.Seed), nodes)
}
