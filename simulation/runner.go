// SPDX-License-Identifier: MIT

package simulation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/windgrid/connectivity"
	"github.com/katalvlaran/windgrid/core"
	"github.com/katalvlaran/windgrid/failure"
	"github.com/katalvlaran/windgrid/reinforce"
)

// Runner sequences the three stages of a run. A Runner holds no per-run
// state and may be shared by concurrent callers.
type Runner struct {
	logger   *slog.Logger
	recorder Recorder
	workers  int
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithRecorder sets the telemetry sink; the default discards everything.
func WithRecorder(rec Recorder) Option {
	return func(r *Runner) {
		if rec != nil {
			r.recorder = rec
		}
	}
}

// WithWorkers bounds parallel greedy trials. Zero keeps reinforce's default.
func WithWorkers(n int) Option {
	return func(r *Runner) { r.workers = n }
}

// NewRunner returns a Runner configured by opts.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		logger:   slog.New(slog.DiscardHandler),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

var defaultRunner = NewRunner()

// Run executes p against g with a Runner that neither logs nor records.
func Run(ctx context.Context, g *core.Graph, p Params) (*Result, error) {
	return defaultRunner.Run(ctx, g, p)
}

// Run executes one simulation. g must not be mutated until Run returns.
//
// Steps:
//  1. reinforce.Select with p.Method, p.K, p.Wind and p.Generators.
//  2. failure.Simulate with the selected lines hardened.
//  3. connectivity.Analyze over the surviving lines.
//  4. Assemble Result.
//
// Errors from any stage are returned unwrapped.
func (r *Runner) Run(ctx context.Context, g *core.Graph, p Params) (*Result, error) {
	log := r.logger.With(
		slog.String("run_id", uuid.NewString()),
		slog.String("method", p.Method.String()),
		slog.Int("k", p.K),
		slog.Float64("wind", p.Wind),
	)
	start := time.Now()
	log.Debug("simulation started", slog.Int("generators", len(p.Generators)))

	res, err := r.run(ctx, g, p)
	elapsed := time.Since(start)
	if err != nil {
		r.recorder.RecordRun(p.Method.String(), StatusError, elapsed, 0, 0)
		log.Warn("simulation failed", slog.Any("error", err), slog.Duration("elapsed", elapsed))
		return nil, err
	}

	r.recorder.RecordRun(p.Method.String(), StatusOK, elapsed, len(res.Failed), len(res.Blackouts))
	log.Info("simulation finished",
		slog.Int("selected", len(res.Selected)),
		slog.Int("failed", len(res.Failed)),
		slog.Int("components", len(res.Components)),
		slog.Int("blackouts", len(res.Blackouts)),
		slog.Duration("elapsed", elapsed),
	)

	return res, nil
}

func (r *Runner) run(ctx context.Context, g *core.Graph, p Params) (*Result, error) {
	opts := []reinforce.Option{
		reinforce.WithGenerators(p.Generators...),
		reinforce.WithRoundObserver(func(_, trials int) { r.recorder.RecordGreedyRound(trials) }),
	}
	if r.workers > 0 {
		opts = append(opts, reinforce.WithWorkers(r.workers))
	}

	selected, err := reinforce.Select(ctx, g, p.Method, p.K, p.Wind, opts...)
	if err != nil {
		return nil, err
	}

	partition, err := failure.Simulate(g, core.NewEdgeSet(selected...), p.Wind)
	if err != nil {
		return nil, err
	}

	report, err := connectivity.Analyze(g, partition.Surviving, p.Generators)
	if err != nil {
		return nil, err
	}

	return &Result{
		Wind:       p.Wind,
		Method:     p.Method.String(),
		K:          p.K,
		Selected:   selected,
		Surviving:  partition.Surviving,
		Failed:     partition.Failed,
		Components: report.Components,
		Blackouts:  report.Blackouts,
	}, nil
}
