// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus instruments for simulation runs and the
// web front end.
//
// Each Registry owns a private prometheus.Registry, so tests and embedded
// uses never collide on the global default. Registry satisfies
// simulation.Recorder and can be handed straight to simulation.WithRecorder.
package metrics
