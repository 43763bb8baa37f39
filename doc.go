// Package gatsp approximates the Euclidean Travelling Salesman Problem with a
// genetic algorithm: a fixed-size population of random tours is evolved by
// fitness-weighted selection, a segment-preserving crossover and low-rate
// swap mutation, converging toward shorter round trips.
//
// Under the hood, everything is organized under a few subpackages:
//
//	tsp/         Node, Tour, integer-truncated cycle distance, fitness model, RNG policy
//	population/  fixed-size tour populations, fitness aggregation, roulette & tournament selection
//	ga/          Options, the Engine (EvolvePopulation, Run), Crossover, Mutate
//	view/        terminal plot of a tour (tcell)
//	cmd/gatsp/   command line: "x,y" arguments in, progress and result lines out
//
// Quick example:
//
//	nodes := []tsp.Node{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
//	engine, _ := ga.NewEngine(ga.DefaultOptions(ga.WithPopulationSize(20), ga.WithGenerations(200)))
//	res, _ := engine.Run(tsp.NewRNG(42), nodes)
//	fmt.Println(res.BestDistance) // usually 40, the perimeter
//
// Runs are single-threaded and fully reproducible: every random draw comes
// from the one *rand.Rand passed in.
//
//	go install github.com/katalvlaran/gatsp/cmd/gatsp@latest
package gatsp
