// SPDX-License-Identifier: MIT

package loader

import (
	"fmt"

	"github.com/katalvlaran/windgrid/core"
)

// costEpsilon keeps the derived cost finite for a zero threshold.
const costEpsilon = 1e-6

// DerivedCost is the reinforcement cost assumed for a line without one.
func DerivedCost(windThreshold float64) float64 {
	return 1 / (windThreshold + costEpsilon)
}

// Build constructs a graph from d.
//
// Steps:
//  1. Validate d.
//  2. Add nodes in listed order.
//  3. Add lines in listed order, filling in missing IDs and costs.
//  4. Check every generator names a node.
//
// Structural errors from core are wrapped with the offending position.
func (d *Definition) Build() (*core.Graph, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	g := core.NewGraph()
	for i, id := range d.Nodes {
		if err := g.AddNode(string(id)); err != nil {
			return nil, fmt.Errorf("loader: nodes[%d] %q: %w", i, id, err)
		}
	}

	for i, e := range d.Edges {
		id := e.ID
		if id == "" {
			id = fmt.Sprintf("%s-%s-%d", e.U, e.V, i)
		}
		threshold := *e.WindThreshold
		cost := DerivedCost(threshold)
		if e.Cost != nil {
			cost = *e.Cost
		}
		if err := g.AddEdge(id, string(e.U), string(e.V), cost, threshold); err != nil {
			return nil, fmt.Errorf("loader: edges[%d] %q: %w", i, id, err)
		}
	}

	for i, id := range d.Generators {
		if !g.HasNode(string(id)) {
			return nil, fmt.Errorf("loader: generators[%d] %q: %w", i, id, core.ErrUnknownNode)
		}
	}

	return g, nil
}
