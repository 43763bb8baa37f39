// Package ga defines the configuration, sentinel errors and result types of
// the genetic-algorithm engine.
package ga

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/gatsp/population"
	"github.com/katalvlaran/gatsp/tsp"
)

// ErrInvalidOptions indicates a configuration value outside its documented range.
// Validate wraps it with the offending field.
var ErrInvalidOptions = errors.New("ga: invalid options")

// ErrNilPopulation indicates that EvolvePopulation was called without a population.
var ErrNilPopulation = errors.New("ga: population is nil")

// Defaults (single source of truth for DefaultOptions).
const (
	DefaultPopulationSize = 100
	DefaultMutationRate   = 0.015
	DefaultTournamentSize = 5
	DefaultAmplifyFactor  = tsp.AmplifyFactor
	DefaultSelection      = population.RouletteName
	DefaultGenerations    = 1000
)

// Options configures one run of the engine. Use DefaultOptions() as a base.
//
// Fields:
//
//	PopulationSize  tours per generation, ≥ 1.
//	MutationRate    per-position swap probability per generation, in [0,1].
//	TournamentSize  sample size for tournament selection, ≥ 1.
//	AmplifyFactor   roulette weight amplification, finite and ≥ 0.
//	Selection       "roulette" or "tournament", resolved once by NewEngine.
//	Generations     number of EvolvePopulation steps Run performs, ≥ 0.
//	Seed            RNG seed for Run callers; 0 ⇒ tsp.DefaultSeed.
//	OnInitial       hook called by Run once generation 0 is seeded.
//	OnGeneration    hook called by Run after every generation with the
//	                generation number (1-based) and its fittest tour.
type Options struct {
	PopulationSize int
	MutationRate   float64
	TournamentSize int
	AmplifyFactor  float64
	Selection      string
	Generations    int
	Seed           int64

	// Hooks must not retain or modify fittest; it is owned by the population.
	OnInitial    func(fittest *tsp.Tour)
	OnGeneration func(generation int, fittest *tsp.Tour)
}

// Option configures Options.
type Option func(*Options)

// WithPopulationSize sets Options.PopulationSize.
func WithPopulationSize(n int) Option {
	return func(o *Options) { o.PopulationSize = n }
}

// WithMutationRate sets Options.MutationRate.
func WithMutationRate(r float64) Option {
	return func(o *Options) { o.MutationRate = r }
}

// WithTournament selects tournament selection with sample size k.
func WithTournament(k int) Option {
	return func(o *Options) {
		o.Selection = population.TournamentName
		o.TournamentSize = k
	}
}

// WithRoulette selects roulette selection.
func WithRoulette() Option {
	return func(o *Options) { o.Selection = population.RouletteName }
}

// WithAmplifyFactor sets Options.AmplifyFactor.
func WithAmplifyFactor(f float64) Option {
	return func(o *Options) { o.AmplifyFactor = f }
}

// WithGenerations sets Options.Generations.
func WithGenerations(n int) Option {
	return func(o *Options) { o.Generations = n }
}

// WithSeed sets Options.Seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithOnInitial registers a hook for the fittest tour of generation 0.
func WithOnInitial(fn func(fittest *tsp.Tour)) Option {
	return func(o *Options) { o.OnInitial = fn }
}

// WithOnGeneration registers a per-generation progress hook.
func WithOnGeneration(fn func(generation int, fittest *tsp.Tour)) Option {
	return func(o *Options) { o.OnGeneration = fn }
}

// DefaultOptions returns the documented defaults: roulette selection over 100
// tours, mutation rate 0.015, tournament size 5, amplify factor 2 and 1000
// generations. Any opts are applied on top.
//
// Complexity: O(len(opts)).
func DefaultOptions(opts ...Option) Options {
	o := Options{
		PopulationSize: DefaultPopulationSize,
		MutationRate:   DefaultMutationRate,
		TournamentSize: DefaultTournamentSize,
		AmplifyFactor:  DefaultAmplifyFactor,
		Selection:      DefaultSelection,
		Generations:    DefaultGenerations,
		OnInitial:      func(*tsp.Tour) {},
		OnGeneration:   func(int, *tsp.Tour) {},
	}
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	return o
}

// Validate checks every field range. The returned error wraps ErrInvalidOptions.
func (o Options) Validate() error {
	if o.PopulationSize < 1 {
		return fmt.Errorf("%w: population size %d < 1", ErrInvalidOptions, o.PopulationSize)
	}
	if math.IsNaN(o.MutationRate) || o.MutationRate < 0 || o.MutationRate > 1 {
		return fmt.Errorf("%w: mutation rate %v outside [0,1]", ErrInvalidOptions, o.MutationRate)
	}
	if o.TournamentSize < 1 {
		return fmt.Errorf("%w: tournament size %d < 1", ErrInvalidOptions, o.TournamentSize)
	}
	if math.IsNaN(o.AmplifyFactor) || math.IsInf(o.AmplifyFactor, 0) || o.AmplifyFactor < 0 {
		return fmt.Errorf("%w: amplify factor %v", ErrInvalidOptions, o.AmplifyFactor)
	}
	if o.Generations < 0 {
		return fmt.Errorf("%w: generations %d < 0", ErrInvalidOptions, o.Generations)
	}
	if _, err := population.ParseSelector(o.Selection, o.TournamentSize); err != nil {
		return fmt.Errorf("%w: selection %q: %w", ErrInvalidOptions, o.Selection, err)
	}
	return nil
}

// Result summarizes a Run.
type Result struct {
	// Initial is the fittest tour of generation 0.
	Initial *tsp.Tour
	// Best is the fittest tour of the final generation. Without elitism it
	// may be longer than Initial.
	Best *tsp.Tour

	InitialDistance int
	BestDistance    int

	// Nodes is the problem size N.
	Nodes int
	// Generations is the number of EvolvePopulation steps performed.
	Generations int
	// ToursBred counts children produced across all generations.
	ToursBred int
	// Mutations counts swaps applied across all generations.
	Mutations int
	// Duration is the wall-clock time spent evolving, seeding excluded.
	Duration time.Duration
}

// InitialRunTime is tsp.RunTimeEstimate for the initial fittest tour.
func (r Result) InitialRunTime() float64 {
	return tsp.RunTimeEstimate(r.InitialDistance, r.Nodes)
}

// RunTime is tsp.RunTimeEstimate for the final fittest tour.
func (r Result) RunTime() float64 {
	return tsp.RunTimeEstimate(r.BestDistance, r.Nodes)
}
