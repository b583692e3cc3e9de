// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in insertion order.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "math"

// AddEdge creates a new undirected line between existing nodes u and v.
//
// Steps:
//  1. Validate id is non-empty.
//  2. Lock; reject a duplicate id.
//  3. Reject unknown endpoints, then identical endpoints.
//  4. Reject a negative/NaN/infinite cost and a NaN threshold.
//  5. Append to the edge catalog and to both incidence lists.
//
// An infinite WindThreshold is accepted: it models a line that never fails.
//
// Errors (checked in this order):
//   - ErrEmptyID, ErrDuplicateEdge, ErrUnknownEndpoint, ErrInvalidEndpoints,
//     ErrInvalidCost, ErrInvalidThreshold.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(id, u, v string, cost, windThreshold float64) error {
	if id == "" {
		return ErrEmptyID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.edges[id]; ok {
		return ErrDuplicateEdge
	}
	_, okU := g.nodes[u]
	_, okV := g.nodes[v]
	if !okU || !okV {
		return ErrUnknownEndpoint
	}
	if u == v {
		return ErrInvalidEndpoints
	}
	if cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return ErrInvalidCost
	}
	if math.IsNaN(windThreshold) {
		return ErrInvalidThreshold
	}

	pos := len(g.edgeOrder)
	g.edges[id] = pos
	g.edgeOrder = append(g.edgeOrder, Edge{ID: id, U: u, V: v, Cost: cost, WindThreshold: windThreshold})
	g.incident[u] = append(g.incident[u], pos)
	g.incident[v] = append(g.incident[v], pos)

	return nil
}

// HasEdge reports whether an edge with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasEdge(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[id]

	return ok
}

// Edge returns a copy of the edge record with the given ID.
//
// Errors:
//   - ErrUnknownEdge : no such edge.
//
// Complexity: O(1).
func (g *Graph) Edge(id string) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	pos, ok := g.edges[id]
	if !ok {
		return Edge{}, ErrUnknownEdge
	}

	return g.edgeOrder[pos], nil
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edgeOrder))
	copy(out, g.edgeOrder)

	return out
}

// EdgeIDs returns all edge IDs in insertion order.
// Complexity: O(E).
func (g *Graph) EdgeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.edgeOrder))
	for i, e := range g.edgeOrder {
		out[i] = e.ID
	}

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edgeOrder)
}
