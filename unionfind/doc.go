// SPDX-License-Identifier: MIT

// Package unionfind provides a disjoint-set forest over node IDs with path
// compression and union by size.
//
// It is the shared primitive behind two grid questions:
//
//   - "Would this line close a cycle?" - Kruskal's spanning forest
//     (prim_kruskal) keeps a line only when Union reports the endpoints were
//     previously in different sets.
//   - "Which substations still reach each other?" - the connectivity analyzer
//     unions the endpoints of every surviving line and reads back Groups.
//
// A UnionFind is built fresh for each call that needs one and is never shared
// between runs.
//
// Complexity: Find and Union run in amortized O(α(n)), where α is the inverse
// Ackermann function. Groups is O(n·α(n)).
//
// Errors: operations on an ID that was not registered with New return
// core.ErrUnknownNode.
package unionfind
