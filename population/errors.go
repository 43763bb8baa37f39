package population

import "errors"

// Sentinel errors. Tour-level failures (tsp.ErrDegenerateTour,
// tsp.ErrNonPositiveTotal, ...) are returned unwrapped from the tsp package.
var (
	// ErrPopulationSize is returned by New for a size below one.
	ErrPopulationSize = errors.New("population: size must be at least 1")

	// ErrNotEmpty is returned when initializing a population that already holds tours.
	ErrNotEmpty = errors.New("population: already initialized")

	// ErrCountMismatch is returned by Initialize when the tour count differs from Size().
	ErrCountMismatch = errors.New("population: tour count does not match population size")

	// ErrEmpty is returned by queries on a population without tours.
	ErrEmpty = errors.New("population: no tours")

	// ErrNilTour is returned by Initialize when a tour is nil.
	ErrNilTour = errors.New("population: nil tour")

	// ErrUnknownSelector is returned by ParseSelector for an unrecognized strategy name.
	ErrUnknownSelector = errors.New("population: unknown selection strategy")

	// ErrTournamentSize is returned for a tournament sample size below one.
	ErrTournamentSize = errors.New("population: tournament size must be at least 1")
)
