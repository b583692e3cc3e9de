// SPDX-License-Identifier: MIT
// Package: windgrid/builder
//
// api.go - public entry point and shared helpers.

package builder

import (
	"fmt"

	"github.com/katalvlaran/windgrid/core"
)

// Constructor applies a deterministic mutation to g using the resolved config.
// Constructors validate parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves opts and applies cons in order.
// Constructor errors are wrapped with "BuildGraph: %w".
//
// Complexity: O(len(opts)) plus the cost of each constructor.
func BuildGraph(opts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addNodes inserts n nodes named by cfg.idFn and returns their IDs.
func addNodes(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	base := g.NodeCount()
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(base + i)
		if err := g.AddNode(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addLine inserts one line between u and v with generated attributes.
// Line IDs continue the graph's edge count so constructors compose.
func addLine(g *core.Graph, cfg builderConfig, method, u, v string) error {
	id := fmt.Sprintf("%s%d", cfg.edgePrefix, g.EdgeCount())
	t := cfg.thresholdFn(cfg.rng)
	if err := g.AddEdge(id, u, v, cfg.costFn(t), t); err != nil {
		return fmt.Errorf("%s: AddEdge(%s, %s, %s): %w", method, id, u, v, err)
	}

	return nil
}
