// SPDX-License-Identifier: MIT
// Package: windgrid/builder
//
// options.go - functional options for the builder package.
//
// Option constructors panic on nil functions; constructors never panic.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/windgrid/loader"
)

// DefaultSeed seeds the random source when WithSeed is not given.
const DefaultSeed int64 = 1

// Defaults for generated IDs and thresholds.
const (
	DefaultMinThreshold = 2.0
	DefaultMaxThreshold = 12.0
	DefaultNodePrefix   = "n"
	DefaultEdgePrefix   = "e"
)

// BuilderOption customizes the resolved builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig is resolved once per BuildGraph call.
type builderConfig struct {
	rng         *rand.Rand
	idFn        func(int) string
	edgePrefix  string
	thresholdFn func(*rand.Rand) float64
	costFn      func(threshold float64) float64
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:        rand.New(rand.NewSource(DefaultSeed)),
		idFn:       func(i int) string { return fmt.Sprintf("%s%d", DefaultNodePrefix, i) },
		edgePrefix: DefaultEdgePrefix,
		thresholdFn: func(r *rand.Rand) float64 {
			return DefaultMinThreshold + r.Float64()*(DefaultMaxThreshold-DefaultMinThreshold)
		},
		costFn: loader.DerivedCost,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed freezes the random source used for thresholds and RandomSparse.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithIDScheme sets the node ID generator: index -> ID. Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithEdgePrefix sets the prefix of generated line IDs ("e" by default).
func WithEdgePrefix(prefix string) BuilderOption {
	return func(c *builderConfig) { c.edgePrefix = prefix }
}

// WithThresholdFn sets the wind threshold generator. Panics on nil.
func WithThresholdFn(fn func(*rand.Rand) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithThresholdFn(nil)")
	}
	return func(c *builderConfig) { c.thresholdFn = fn }
}

// WithConstantThreshold gives every line the same threshold.
func WithConstantThreshold(t float64) BuilderOption {
	return WithThresholdFn(func(*rand.Rand) float64 { return t })
}

// WithCostFn sets the reinforcement cost as a function of threshold. Panics on nil.
func WithCostFn(fn func(threshold float64) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *builderConfig) { c.costFn = fn }
}
