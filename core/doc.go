// SPDX-License-Identifier: MIT

// Package core defines the grid topology model: a set of nodes (substations,
// generators, junctions) and a catalog of undirected power lines between them.
//
// The Graph G = (V,E) is deliberately passive. It validates its own invariants
// and answers structural queries; every algorithm lives in a sibling package:
//
//	unionfind/    - disjoint sets over node IDs
//	prim_kruskal/ - minimum spanning forest by reinforcement cost
//	failure/      - wind failure partition
//	connectivity/ - islands and blackout zones
//	reinforce/    - reinforcement selection (none, mst, greedy)
//	simulation/   - one full run, end to end
//
// Invariants:
//
//   - Node IDs and Edge IDs are non-empty and unique within a Graph.
//   - Every edge references two distinct, existing nodes.
//   - Edge.Cost is finite and ≥ 0; Edge.WindThreshold is not NaN.
//   - Nodes(), Edges() and Neighbors() follow insertion order, so every
//     downstream result is reproducible across runs.
//
// Core Methods:
//
//	AddNode(id string) error                                   // O(1)
//	AddEdge(id, u, v string, cost, windThreshold float64) error // O(1)
//	Neighbors(node string) (iter.Seq[string], error)           // O(1) + lazy O(deg)
//	Edge(id string) (Edge, error)                              // O(1)
//	Nodes() []string / Edges() []Edge                          // O(V) / O(E)
//
// Concurrency:
//
//	A single sync.RWMutex guards the catalogs. A graph handed to a simulation run
//	is only read, so parallel greedy trials share it without copying.
//
// Errors:
//
//	ErrEmptyID, ErrDuplicateNode, ErrDuplicateEdge, ErrUnknownEndpoint,
//	ErrInvalidEndpoints, ErrInvalidCost, ErrInvalidThreshold,
//	ErrUnknownNode, ErrUnknownEdge.
package core
