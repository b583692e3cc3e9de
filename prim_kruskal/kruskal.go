// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"github.com/katalvlaran/windgrid/core"
	"github.com/katalvlaran/windgrid/unionfind"
)

// Kruskal computes the minimum spanning forest of g by reinforcement cost.
//
// Steps:
//  1. Validate graph != nil.
//  2. Copy all edges and sort them by (Cost asc, ID asc).
//  3. Register every node in a fresh UnionFind.
//  4. Keep each edge whose Union reports a merge; stop early at |V|-1 edges.
//
// Returns the forest edges in the order they were accepted (ascending cost)
// and their total cost. A graph with no edges yields an empty forest.
//
// Complexity: O(E log E + E·α(V)). Memory: O(V + E).
func Kruskal(g *core.Graph) ([]core.Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}

	edges := g.Edges()
	SortByCost(edges)

	nodes := g.Nodes()
	uf := unionfind.New(nodes)

	var (
		limit  = max(len(nodes)-1, 0)
		forest = make([]core.Edge, 0, limit)
		total  float64
	)
	for _, e := range edges {
		if len(forest) == limit {
			// A spanning tree over all nodes is already complete.
			break
		}
		merged, err := uf.Union(e.U, e.V)
		if err != nil {
			return nil, 0, err
		}
		if merged {
			forest = append(forest, e)
			total += e.Cost
		}
	}

	return forest, total, nil
}
