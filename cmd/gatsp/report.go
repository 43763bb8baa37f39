package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/gatsp/ga"
	"github.com/katalvlaran/gatsp/tsp"
)

// reporter prints the informational progress and result lines.
type reporter struct {
	w io.Writer
}

// start returns an OnInitial hook printing the generation-0 lines.
func (r reporter) start(n int) func(*tsp.Tour) {
	return func(fittest *tsp.Tour) {
		d, err := fittest.Distance()
		if err != nil {
			return
		}
		fmt.Fprintf(r.w, "starting fittest %d\n", d)
		fmt.Fprintf(r.w, "starting run-time %.2f\n", tsp.RunTimeEstimate(d, n))
		fmt.Fprintf(r.w, "node count %d\n", n)
	}
}

// progress returns an OnGeneration hook printing every n-th generation, or
// nil when every is 0.
func (r reporter) progress(every int) func(int, *tsp.Tour) {
	if every <= 0 {
		return nil
	}
	return func(gen int, fittest *tsp.Tour) {
		if gen%every != 0 {
			return
		}
		d, err := fittest.Distance()
		if err != nil {
			return
		}
		fmt.Fprintf(r.w, "generation %d fittest %d\n", gen, d)
	}
}

func (r reporter) finish(res ga.Result, best *tsp.Tour) {
	fmt.Fprintf(r.w, "fittest tour %s\n", formatTour(best))
	fmt.Fprintf(r.w, "ending fittest %d\n", res.BestDistance)
	fmt.Fprintf(r.w, "ending run-time %.2f\n", res.RunTime())
	fmt.Fprintf(r.w, "Time to solve problem %s\n", res.Duration)
	fmt.Fprintf(r.w, "bred %s tours over %s generations, %s mutations\n",
		humanize.Comma(int64(res.ToursBred)),
		humanize.Comma(int64(res.Generations)),
		humanize.Comma(int64(res.Mutations)),
	)
}

func formatTour(t *tsp.Tour) string {
	nodes := t.Nodes()
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
