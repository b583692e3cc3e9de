// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/windgrid/core"
)

// Prim computes the minimum spanning forest of g by growing one tree per
// connected region, each rooted at the region's earliest-inserted node.
//
// Steps:
//  1. Validate graph != nil.
//  2. For each node in insertion order that is not yet visited, start a tree:
//     mark it visited and push its incident lines onto a (Cost, ID) min-heap.
//  3. Pop lines; skip those whose far end is visited, otherwise accept the
//     line, mark the far end and push its incident lines.
//
// Returns the forest edges in discovery order and their total cost.
//
// Complexity: O(E log E). Memory: O(V + E).
func Prim(g *core.Graph) ([]core.Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}

	nodes := g.Nodes()
	visited := make(map[string]bool, len(nodes))
	forest := make([]core.Edge, 0, max(len(nodes)-1, 0))
	var total float64

	// push adds every line incident to node whose far end is unvisited.
	push := func(pq *edgePQ, node string) error {
		seq, err := g.Neighbors(node)
		if err != nil {
			return err
		}
		for id := range seq {
			e, err := g.Edge(id)
			if err != nil {
				return err
			}
			if to := e.Other(node); !visited[to] {
				heap.Push(pq, frontier{edge: e, to: to})
			}
		}

		return nil
	}

	for _, root := range nodes {
		if visited[root] {
			continue
		}
		visited[root] = true
		pq := &edgePQ{}
		if err := push(pq, root); err != nil {
			return nil, 0, err
		}
		for pq.Len() > 0 {
			f := heap.Pop(pq).(frontier)
			if visited[f.to] {
				continue
			}
			visited[f.to] = true
			forest = append(forest, f.edge)
			total += f.edge.Cost
			if err := push(pq, f.to); err != nil {
				return nil, 0, err
			}
		}
	}

	return forest, total, nil
}

// frontier is a candidate line leaving the current tree toward node to.
type frontier struct {
	edge core.Edge
	to   string
}

// edgePQ implements heap.Interface as a min-heap ordered by CheaperFirst.
type edgePQ []frontier

func (pq edgePQ) Len() int           { return len(pq) }
func (pq edgePQ) Less(i, j int) bool { return CheaperFirst(pq[i].edge, pq[j].edge) }
func (pq edgePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a frontier entry. Called by heap.Push.
func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(frontier)) }

// Pop removes the last entry after heap adjustments. Called by heap.Pop.
func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	f := old[n-1]
	*pq = old[:n-1]

	return f
}
