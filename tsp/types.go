package tsp

import "errors"

// Numeric policy shared by the fitness model.
const (
	// Epsilon is the smallest distance or total fitness accepted as non-degenerate.
	Epsilon = 0.0001

	// FitnessScale is the numerator of the inverse-distance fitness.
	FitnessScale = 100.0

	// AmplifyFactor widens the gap between above- and below-average tours
	// in the roulette weight.
	AmplifyFactor = 2.0

	// ShufflePasses is the number of full random-swap passes GenerateIndividual makes.
	ShufflePasses = 100
)

// Sentinel errors. Every message is prefixed with "tsp:"; callers match with errors.Is.
var (
	// ErrSizeMismatch is returned when a node list or a second tour does not
	// have the tour's length.
	ErrSizeMismatch = errors.New("tsp: size mismatch")

	// ErrIndexOutOfRange is returned by slot accessors for an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("tsp: index out of range")

	// ErrIncompleteTour is returned when an operation needs every slot filled.
	ErrIncompleteTour = errors.New("tsp: tour has unfilled slots")

	// ErrDegenerateTour is returned by SetFitness when Distance() <= Epsilon.
	ErrDegenerateTour = errors.New("tsp: degenerate tour distance")

	// ErrNonPositiveTotal is returned by SetRelativeFitness when totalFitness <= Epsilon.
	ErrNonPositiveTotal = errors.New("tsp: total fitness is not positive")

	// ErrNotPermutation is returned when a tour is not a permutation of a node list.
	ErrNotPermutation = errors.New("tsp: tour is not a permutation of the node list")

	// ErrTooFewNodes is returned for node lists shorter than two nodes.
	ErrTooFewNodes = errors.New("tsp: at least two nodes are required")

	// ErrDuplicateNode is returned when two nodes share the same coordinates.
	ErrDuplicateNode = errors.New("tsp: duplicate node coordinates")

	// ErrNodeNotFound is returned when a requested node is absent from a tour.
	ErrNodeNotFound = errors.New("tsp: node not found in tour")

	// ErrNilRNG is returned when a random source is required but nil was passed.
	ErrNilRNG = errors.New("tsp: random source is nil")
)
