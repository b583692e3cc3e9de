// SPDX-License-Identifier: MIT

// Package loader reads grid definitions from JSON or YAML and builds
// *core.Graph values from them.
//
// A definition lists nodes, optional generators, and lines:
//
//	nodes: [A, B, C]
//	generators: [A]
//	edges:
//	  - {id: e1, u: A, v: B, cost: 1, wind_threshold: 5}
//	  - {u: B, v: C, wind_threshold: 10}
//
// Node IDs may be written as strings or numbers; numbers are kept in their
// literal form ("7", "1.5"). A line without id is named "<u>-<v>-<index>".
// A line without cost gets 1/(wind_threshold+1e-6), so stronger lines are
// cheaper to harden. Endpoints must be declared in nodes.
//
// Two small grids ship with the package and are available through Dataset.
package loader
