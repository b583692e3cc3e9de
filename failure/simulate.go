// SPDX-License-Identifier: MIT

package failure

import (
	"errors"
	"math"

	"github.com/katalvlaran/windgrid/core"
)

// ErrInvalidWind indicates a negative, infinite or NaN wind strength.
var ErrInvalidWind = errors.New("failure: wind strength must be a finite non-negative number")

// Partition is the outcome of one wind event. Both lists follow edge
// insertion order.
type Partition struct {
	Surviving []string
	Failed    []string
}

// ValidateWind rejects negative, infinite and NaN wind strengths. Reinforced
// lines hold at +Inf, so an infinite wind would bring them down too.
func ValidateWind(wind float64) error {
	if math.IsNaN(wind) || math.IsInf(wind, 0) || wind < 0 {
		return ErrInvalidWind
	}

	return nil
}

// EffectiveThreshold returns the wind strength at which e fails given the
// reinforced set: +Inf when e is reinforced, e.WindThreshold otherwise.
func EffectiveThreshold(e core.Edge, reinforced core.EdgeSet) float64 {
	if reinforced.Has(e.ID) {
		return math.Inf(1)
	}

	return e.WindThreshold
}

// Simulate applies wind to every line of g.
//
// Steps:
//  1. Validate wind.
//  2. Check every reinforced ID names an edge of g.
//  3. Walk edges in insertion order and compare wind to the effective threshold.
//
// Complexity: O(E + |reinforced|).
func Simulate(g *core.Graph, reinforced core.EdgeSet, wind float64) (Partition, error) {
	if err := ValidateWind(wind); err != nil {
		return Partition{}, err
	}
	for id := range reinforced {
		if !g.HasEdge(id) {
			return Partition{}, core.ErrUnknownEdge
		}
	}

	edges := g.Edges()
	p := Partition{
		Surviving: make([]string, 0, len(edges)),
		Failed:    make([]string, 0),
	}
	for _, e := range edges {
		if wind < EffectiveThreshold(e, reinforced) {
			p.Surviving = append(p.Surviving, e.ID)
		} else {
			p.Failed = append(p.Failed, e.ID)
		}
	}

	return p, nil
}

// Covers reports whether p is a complete, disjoint cover of g's edges:
// every edge appears exactly once across Surviving and Failed.
func (p Partition) Covers(g *core.Graph) bool {
	seen := make(map[string]bool, len(p.Surviving)+len(p.Failed))
	for _, list := range [][]string{p.Surviving, p.Failed} {
		for _, id := range list {
			if seen[id] || !g.HasEdge(id) {
				return false
			}
			seen[id] = true
		}
	}

	return len(seen) == g.EdgeCount()
}
