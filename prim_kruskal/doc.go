// SPDX-License-Identifier: MIT

// Package prim_kruskal computes the minimum spanning forest of a grid topology,
// weighting each line by its reinforcement cost.
//
// What & Why
//
//   - A spanning forest keeps, for every connected region of the grid, just
//     enough lines to hold that region together. Removing any forest line
//     splits its region, which makes forest lines the structurally critical
//     ones; the cheapest of them are the best value to reinforce.
//
//   - Unlike a spanning tree, a forest is defined for disconnected grids too,
//     so neither algorithm here reports a "disconnected" error.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) ([]core.Edge, float64, error)
//
//   - Strategy: sort every line by (Cost asc, ID asc) and keep a line iff
//     unionfind.Union reports its endpoints were in different sets.
//
//   - Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
//
//   - Prim(g *core.Graph) ([]core.Edge, float64, error)
//
//   - Strategy: grow one tree per region from its earliest-inserted node,
//     always taking the cheapest (Cost, ID) line leaving the tree.
//
//   - Complexity: O(E log E) time, O(V + E) memory.
//
// Determinism
//
//	Both orders break cost ties by ascending edge ID, so for a fixed graph the
//	forest, its order, and its total are reproducible. When costs are distinct
//	the two algorithms return the same edge set; with ties the sets may differ
//	but the total cost is always equal.
//
// Error Conditions
//
//   - ErrNilGraph: graph is nil.
//   - ErrUnknownMethod: Compute was given a method other than MethodKruskal or MethodPrim.
package prim_kruskal
