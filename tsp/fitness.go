package tsp

import "math"

// Fitness returns 100/Distance as set by SetFitness, or 0 when stale.
func (t *Tour) Fitness() float64 { return t.fitness }

// RelativeFitness returns fitness/totalFitness as set by SetRelativeFitness.
func (t *Tour) RelativeFitness() float64 { return t.relativeFitness }

// AmplifiedFitness returns the roulette weight set by SetRelativeFitness.
func (t *Tour) AmplifiedFitness() float64 { return t.amplifiedFitness }

// SetFitness computes fitness = FitnessScale / Distance().
//
// Errors:
//   - ErrIncompleteTour if any slot is unfilled.
//   - ErrDegenerateTour if Distance() <= Epsilon; fitness is left untouched.
func (t *Tour) SetFitness() error {
	d, err := t.Distance()
	if err != nil {
		return err
	}
	if float64(d) <= Epsilon {
		return ErrDegenerateTour
	}
	t.fitness = FitnessScale / float64(d)

	return nil
}

// SetRelativeFitness is SetRelativeFitnessAmplified with AmplifyFactor.
func (t *Tour) SetRelativeFitness(totalFitness, averageFitness float64) error {
	return t.SetRelativeFitnessAmplified(totalFitness, averageFitness, AmplifyFactor)
}

// SetRelativeFitnessAmplified sets
//
//	relative  = fitness / total
//	amplified = (fitness + (fitness − average)·amplify) / total
//
// The amplified value is the weight roulette selection walks over; it may be
// negative for tours well below average. Both values still sum to 1 across a
// population whose average is total/size.
//
// Errors: ErrNonPositiveTotal if totalFitness <= Epsilon or is not finite.
func (t *Tour) SetRelativeFitnessAmplified(totalFitness, averageFitness, amplify float64) error {
	if !(totalFitness > Epsilon) || math.IsInf(totalFitness, 0) {
		return ErrNonPositiveTotal
	}
	t.relativeFitness = t.fitness / totalFitness
	t.amplifiedFitness = (t.fitness + (t.fitness-averageFitness)*amplify) / totalFitness

	return nil
}
