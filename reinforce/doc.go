// SPDX-License-Identifier: MIT

// Package reinforce chooses which lines to harden before a wind event, given a
// budget of k reinforcements.
//
// Strategies (a closed set, dispatched on Method):
//
//   - MethodNone   - reinforce nothing.
//   - MethodMST    - build the minimum spanning forest by cost (prim_kruskal)
//     and take its k cheapest lines, ties broken by ascending ID.
//     Forest lines are the ones whose loss splits a region, so the
//     cheapest of them give the best cost/criticality trade-off.
//   - MethodGreedy - k rounds of marginal improvement. Each round tries every
//     line not yet chosen, simulates the wind with that line added
//     to the current set, and commits the line minimizing
//     (blackout zones, failed lines, ID) lexicographically.
//
// Budget:
//
//	k < 0 is ErrInvalidBudget. k above what a strategy can use is clamped:
//	greedy stops after every line is chosen, MST stops at the forest size
//	(which is every line when the grid is itself a forest).
//
// Greedy search:
//
//	Each trial reads the shared graph and writes only its own score slot, so
//	candidates within a round run in parallel (errgroup, bounded by
//	WithWorkers). Rounds stay sequential and the best-candidate reduction uses
//	the documented tie-break, so the answer is identical for any worker count.
//	ctx is checked between rounds, never in the middle of one.
//	Without generators the blackout count is always zero and greedy reduces to
//	minimizing failed lines.
//
// Complexity: greedy is O(k·E·(E+V)·α(V)); MST is O(E log E).
package reinforce
