// SPDX-License-Identifier: MIT
// Package: windgrid/builder
//
// Package builder generates synthetic grid topologies for stress runs,
// benchmarks and property tests.
//
// One orchestrator, BuildGraph(opts, cons...), creates a fresh *core.Graph
// and applies Constructors in order: Path, Ring, Grid, Star, RandomSparse.
// Every line gets a wind threshold from the threshold function (uniform in
// [DefaultMinThreshold, DefaultMaxThreshold) by default) and a cost from the
// cost function (1/(threshold+1e-6) by default).
//
// Determinism: the same options, seed and constructor order yield identical
// graphs, including node order, line IDs, thresholds and costs.
//
// Parse turns a short textual spec ("ring:12", "grid:4x5", "random:30:0.1",
// "star:8", "path:5") into a Constructor for command-line use.
package builder
