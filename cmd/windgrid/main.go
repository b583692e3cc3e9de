// SPDX-License-Identifier: MIT

// Command windgrid runs one wind failure simulation from the command line.
//
// Usage:
//
//	windgrid -dataset example -wind 7 -method greedy -k 1
//	windgrid -f grid.yaml -w 9.5 -m mst -k 3 -g PLANT2 -out result.json
//	windgrid -synthetic grid:6x6 -seed 42 -g n0,n35 -k 4
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/katalvlaran/windgrid/builder"
	"github.com/katalvlaran/windgrid/core"
	"github.com/katalvlaran/windgrid/loader"
	"github.com/katalvlaran/windgrid/logging"
	"github.com/katalvlaran/windgrid/reinforce"
	"github.com/katalvlaran/windgrid/report"
	"github.com/katalvlaran/windgrid/simulation"
)

var version = "--- set from makefile ---"

// errUsage signals a bad command line; usage has already been printed.
var errUsage = errors.New("windgrid: invalid usage")

type config struct {
	file       string
	dataset    string
	synthetic  string
	seed       int64
	wind       float64
	method     string
	k          int
	generators string
	out        string
	color      bool
	workers    int
	logLevel   string
	logFormat  string
	version    bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("windgrid", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.file, "file", "", "path to a JSON or YAML grid definition")
	fs.StringVar(&cfg.file, "f", "", "shorthand for -file")
	fs.StringVar(&cfg.dataset, "dataset", "", "bundled dataset name (used when -file is empty)")
	fs.StringVar(&cfg.synthetic, "synthetic", "", "generate a topology instead of loading one: path:N, ring:N, star:N, grid:RxC, random:N:P")
	fs.Int64Var(&cfg.seed, "seed", builder.DefaultSeed, "random seed for -synthetic")
	fs.Float64Var(&cfg.wind, "wind", 7.0, "uniform wind strength")
	fs.Float64Var(&cfg.wind, "w", 7.0, "shorthand for -wind")
	fs.StringVar(&cfg.method, "method", string(reinforce.MethodGreedy), "reinforcement method: greedy, mst or none")
	fs.StringVar(&cfg.method, "m", string(reinforce.MethodGreedy), "shorthand for -method")
	fs.IntVar(&cfg.k, "k", 1, "number of lines to reinforce")
	fs.StringVar(&cfg.generators, "generators", "", "comma separated generator node IDs, added to the definition's")
	fs.StringVar(&cfg.generators, "g", "", "shorthand for -generators")
	fs.StringVar(&cfg.out, "out", "", "write the result to this .json or .yaml file")
	fs.BoolVar(&cfg.color, "color", false, "style the summary when stdout is a terminal")
	fs.IntVar(&cfg.workers, "workers", 0, "parallel greedy trials (0 = GOMAXPROCS)")
	fs.StringVar(&cfg.logLevel, "log-level", logging.LevelFromEnv(), "log level: debug, info, warn or error")
	fs.StringVar(&cfg.logFormat, "log-format", logging.FormatText, "log format: text or json")
	fs.BoolVar(&cfg.version, "version", false, "show command version")

	if err := fs.Parse(args); err != nil {
		return cfg, errUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return cfg, errUsage
	}
	if cfg.file != "" && cfg.synthetic != "" {
		fmt.Fprintln(stderr, "-file and -synthetic are mutually exclusive")
		return cfg, errUsage
	}
	if cfg.file == "" && cfg.dataset == "" && cfg.synthetic == "" {
		cfg.dataset = "example"
	}

	return cfg, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if cfg.version {
		fmt.Fprintln(stdout, version)
		return nil
	}

	logger, err := logging.New(stderr, cfg.logLevel, cfg.logFormat)
	if err != nil {
		return err
	}

	g, generators, err := loadGrid(cfg)
	if err != nil {
		logger.Error("load grid", "error", err)
		return err
	}
	logger.Debug("grid loaded", slog.Int("nodes", g.NodeCount()), slog.Int("edges", g.EdgeCount()))

	runner := simulation.NewRunner(
		simulation.WithLogger(logger),
		simulation.WithWorkers(cfg.workers),
	)
	method, err := reinforce.ParseMethod(cfg.method)
	if err != nil {
		logger.Error("parse method", "method", cfg.method, "error", err)
		return err
	}

	res, err := runner.Run(ctx, g, simulation.Params{
		Wind:       cfg.wind,
		Method:     method,
		K:          cfg.k,
		Generators: generators,
	})
	if err != nil {
		logger.Error("simulation", "error", err)
		return err
	}

	summary := report.Summary
	if cfg.color {
		summary = report.SummaryColor
	}
	if err := summary(stdout, res); err != nil {
		return err
	}

	if cfg.out != "" {
		if err := report.WriteFile(cfg.out, res); err != nil {
			logger.Error("write result", "path", cfg.out, "error", err)
			return err
		}
		fmt.Fprintf(stdout, "Wrote results to %s\n", cfg.out)
	}

	return nil
}

// loadGrid resolves the grid source and the merged generator list.
// Precedence: -synthetic, then -file, then -dataset.
func loadGrid(cfg config) (*core.Graph, []string, error) {
	extra := loader.SplitList(cfg.generators)

	if cfg.synthetic != "" {
		con, err := builder.Parse(cfg.synthetic)
		if err != nil {
			return nil, nil, err
		}
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(cfg.seed)}, con)
		if err != nil {
			return nil, nil, err
		}
		return g, extra, nil
	}

	var (
		def *loader.Definition
		err error
	)
	if cfg.file != "" {
		def, err = loader.Load(cfg.file)
	} else {
		def, err = loader.Dataset(cfg.dataset)
	}
	if err != nil {
		return nil, nil, err
	}
	g, err := def.Build()
	if err != nil {
		return nil, nil, err
	}

	return g, def.MergedGenerators(extra...), nil
}
