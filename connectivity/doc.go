// SPDX-License-Identifier: MIT

// Package connectivity groups the nodes of a damaged grid into islands and
// flags the islands that have lost every generator.
//
// What:
//
//   - Analyze builds a fresh UnionFind over all nodes, unions the endpoints of
//     each surviving line, and reads back the groups as components. A node with
//     no surviving line is its own singleton component.
//   - A component is a blackout zone iff it contains no generator node.
//   - Feeds runs a multi-source bfs.Walk from the generators over the
//     surviving lines, giving each powered node its hop distance and feeding
//     line.
//
// Generators:
//
//	When the generator list is empty, every node is treated as able to supply
//	itself and no component is ever a blackout. This keeps "no generator data"
//	from reporting the whole grid as dark; callers that want blackout detection
//	must pass at least one generator.
//
// Determinism:
//
//	Components are ordered by the insertion position of their earliest node;
//	nodes inside a component keep insertion order. The result does not depend
//	on the order of the surviving list.
//
// Complexity: O((V + S)·α(V)) for S surviving lines.
package connectivity
