package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/katalvlaran/gatsp/ga"
)

// config is the resolved command line.
type config struct {
	opts      ga.Options
	every     int
	view      bool
	canonical bool
	verbose   bool
	nodes     []string
}

// fileConfig mirrors the JSON accepted by -config. Absent fields keep their defaults.
type fileConfig struct {
	Generations    *int     `json:"generations"`
	Population     *int     `json:"population"`
	MutationRate   *float64 `json:"mutation_rate"`
	Selection      *string  `json:"selection"`
	TournamentSize *int     `json:"tournament_size"`
	AmplifyFactor  *float64 `json:"amplify_factor"`
	Seed           *int64   `json:"seed"`
	Nodes          []string `json:"nodes"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err = json.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

func (fc fileConfig) apply(o *ga.Options) {
	if fc.Generations != nil {
		o.Generations = *fc.Generations
	}
	if fc.Population != nil {
		o.PopulationSize = *fc.Population
	}
	if fc.MutationRate != nil {
		o.MutationRate = *fc.MutationRate
	}
	if fc.Selection != nil {
		o.Selection = *fc.Selection
	}
	if fc.TournamentSize != nil {
		o.TournamentSize = *fc.TournamentSize
	}
	if fc.AmplifyFactor != nil {
		o.AmplifyFactor = *fc.AmplifyFactor
	}
	if fc.Seed != nil {
		o.Seed = *fc.Seed
	}
}

// parseConfig resolves defaults, then -config, then explicitly set flags.
// A zero seed after resolution is replaced by a time-based one so that each
// invocation explores differently unless a seed is pinned.
func parseConfig(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("gatsp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: gatsp [flags] [x,y ...]")
		fs.PrintDefaults()
	}

	def := ga.DefaultOptions()
	var (
		configPath  = fs.String("config", "", "JSON file with run parameters; flags set explicitly win")
		generations = fs.Int("generations", def.Generations, "number of generations to evolve")
		pop         = fs.Int("pop", def.PopulationSize, "tours per generation")
		mutation    = fs.Float64("mutation", def.MutationRate, "per-position swap probability")
		selection   = fs.String("selection", def.Selection, "parent selection: roulette or tournament")
		tournament  = fs.Int("tournament", def.TournamentSize, "tournament sample size")
		amplify     = fs.Float64("amplify", def.AmplifyFactor, "roulette amplification factor")
		seed        = fs.Int64("seed", 0, "random seed; 0 picks one from the clock")
		every       = fs.Int("every", 0, "print a progress line every N generations; 0 disables")
		view        = fs.Bool("view", false, "plot the fittest tour in the terminal when done")
		canonical   = fs.Bool("canonical", false, "print the final tour starting at the first input node")
		verbose     = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	cfg := config{
		opts:      def,
		every:     *every,
		view:      *view,
		canonical: *canonical,
		verbose:   *verbose,
		nodes:     fs.Args(),
	}
	if *configPath != "" {
		fc, err := loadFileConfig(*configPath)
		if err != nil {
			return config{}, err
		}
		fc.apply(&cfg.opts)
		if len(cfg.nodes) == 0 {
			cfg.nodes = fc.Nodes
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "generations":
			cfg.opts.Generations = *generations
		case "pop":
			cfg.opts.PopulationSize = *pop
		case "mutation":
			cfg.opts.MutationRate = *mutation
		case "selection":
			cfg.opts.Selection = *selection
		case "tournament":
			cfg.opts.TournamentSize = *tournament
		case "amplify":
			cfg.opts.AmplifyFactor = *amplify
		case "seed":
			cfg.opts.Seed = *seed
		}
	})
	if cfg.every < 0 {
		return config{}, fmt.Errorf("-every must be >= 0, got %d", cfg.every)
	}
	if cfg.opts.Seed == 0 {
		cfg.opts.Seed = time.Now().UnixNano()
	}
	if err := cfg.opts.Validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}
