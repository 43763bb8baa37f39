// Package population: functional configuration for Population.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: WithX constructors panic only on nonsensical
//     values (programmer error); user-facing validation lives in ga.Options.
package population

import (
	"math"

	"github.com/katalvlaran/gatsp/tsp"
)

// DefaultAmplifyFactor is the roulette amplification used when no option is given.
const DefaultAmplifyFactor = tsp.AmplifyFactor

const panicAmplifyInvalid = "population: WithAmplifyFactor: factor must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	amplify float64
}

func defaultOptions() options {
	return options{amplify: DefaultAmplifyFactor}
}

// WithAmplifyFactor sets the factor used for amplified (roulette) fitness.
// Zero makes the amplified weight equal to the relative fitness.
//
// Panics when f is NaN, ±Inf or negative.
func WithAmplifyFactor(f float64) Option {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		panic(panicAmplifyInvalid)
	}
	return func(o *options) { o.amplify = f }
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	var fn Option
	for _, fn = range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
