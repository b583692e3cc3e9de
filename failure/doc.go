// SPDX-License-Identifier: MIT

// Package failure partitions a grid's lines into those that survive a wind
// event and those that come down.
//
// Rule:
//
//	effective(e) = +Inf               if e is reinforced
//	             = e.WindThreshold    otherwise
//
//	e survives  ⇔  wind <  effective(e)
//	e fails     ⇔  wind ≥  effective(e)
//
// Simulate is a pure function of (graph, reinforced set, wind): no randomness,
// no mutation of its inputs, so every run is exactly reproducible and parallel
// callers can share one graph.
//
// Errors:
//
//	ErrInvalidWind      - wind is negative, infinite or NaN.
//	core.ErrUnknownEdge - the reinforced set names an edge not in the graph.
package failure
