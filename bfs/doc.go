// SPDX-License-Identifier: MIT

// Package bfs provides a multi-source breadth-first search over a core.Graph,
// returning hop distances, parent links, feeding lines and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from the nearest source.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → hops from the nearest source
//   - Parent: map from node → its predecessor in the BFS forest
//   - Via: map from node → the line it was reached through
//   - Restricts the walk to a subset of lines via WithEdgeFilter or
//     WithAllowedEdges (e.g. only the lines that survived a storm).
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Answer "which substations can still be fed, and from how far" for a
//     damaged grid, using generators as sources.
//
// Determinism
//
//	Sources are seeded in the order given; neighbors are expanded in line
//	insertion order. The visit sequence is fully reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
