// Package tsp provides the solution representation used by the genetic
// Euclidean TSP optimizer: 2D nodes, tours over those nodes, and the
// inverse-distance fitness model that drives selection.
//
// A Tour is an ordered sequence of Node values with one explicit "filled"
// marker per slot. Tours start either empty (every slot unset, used while a
// child is being bred) or as a random shuffle of a node list. Only a complete
// tour has a defined Distance and fitness:
//
//   - Distance sums the closed cycle edge by edge, truncating every Euclidean
//     edge length to an integer before accumulation.
//
//   - Fitness is 100 / Distance. Shorter tours score higher.
//
//   - Relative and amplified fitness are derived from population aggregates;
//     the amplified value is the roulette weight.
//
// Any structural change (SetNode) resets all three fitness fields to zero.
//
// All randomness is supplied by the caller as an explicit *rand.Rand; the
// package holds no global random state. Failures are reported as the sentinel
// errors declared in types.go and are matched with errors.Is.
package tsp
