// Command gatsp approximates a shortest round trip through 2D points with a
// genetic algorithm.
//
// Usage:
//
//	gatsp [flags] [x,y ...]
//
// Each positional argument is one integer coordinate pair. Without arguments
// (and without "nodes" in a -config file) a built-in 30-point sheet layout is
// used. Progress and results go to stdout; run metadata is logged to stderr.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/katalvlaran/gatsp/ga"
	"github.com/katalvlaran/gatsp/view"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one optimization and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run", uuid.NewString())

	nodes := demoNodes()
	if len(cfg.nodes) > 0 {
		if nodes, err = parseNodes(cfg.nodes); err != nil {
			logger.Error("invalid input", "err", err)
			return 2
		}
	}

	out := reporter{w: stdout}
	cfg.opts.OnInitial = out.start(len(nodes))
	cfg.opts.OnGeneration = out.progress(cfg.every)

	engine, err := ga.NewEngine(cfg.opts)
	if err != nil {
		logger.Error("invalid options", "err", err)
		return 2
	}
	logger.Info("run configured",
		"nodes", len(nodes),
		"population", cfg.opts.PopulationSize,
		"generations", cfg.opts.Generations,
		"selection", engine.Selector().Name(),
		"mutation_rate", cfg.opts.MutationRate,
		"seed", cfg.opts.Seed,
	)

	res, err := engine.RunWithSeed(nodes)
	if err != nil {
		logger.Error("run aborted", "err", err)
		return 1
	}

	best := res.Best
	if cfg.canonical {
		if best, err = res.Best.RotateToStart(nodes[0]); err != nil {
			logger.Error("rotate result", "err", err)
			return 1
		}
	}
	out.finish(res, best)
	logger.Debug("run finished",
		"initial_distance", res.InitialDistance,
		"best_distance", res.BestDistance,
		"mutations", res.Mutations,
		"duration", res.Duration,
	)

	if cfg.view {
		title := fmt.Sprintf("distance %d, %d nodes (any key to exit)", res.BestDistance, len(nodes))
		if err = view.Show(best, title); err != nil {
			logger.Error("view", "err", err)
			return 1
		}
	}
	return 0
}
