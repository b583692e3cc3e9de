// SPDX-License-Identifier: MIT

package connectivity

import (
	"github.com/katalvlaran/windgrid/core"
	"github.com/katalvlaran/windgrid/unionfind"
)

// Report lists the islands of a damaged grid and the subset without a generator.
type Report struct {
	Components [][]string
	Blackouts  [][]string
}

// Analyze computes the components induced by the surviving lines and flags
// blackout zones relative to generators.
//
// Errors:
//   - core.ErrUnknownEdge : a surviving ID is not an edge of g.
//   - core.ErrUnknownNode : a generator is not a node of g.
func Analyze(g *core.Graph, surviving []string, generators []string) (Report, error) {
	gen := make(map[string]struct{}, len(generators))
	for _, id := range generators {
		if !g.HasNode(id) {
			return Report{}, core.ErrUnknownNode
		}
		gen[id] = struct{}{}
	}

	uf := unionfind.New(g.Nodes())
	for _, id := range surviving {
		e, err := g.Edge(id)
		if err != nil {
			return Report{}, err
		}
		if _, err := uf.Union(e.U, e.V); err != nil {
			return Report{}, err
		}
	}

	comps := uf.Groups()
	r := Report{Components: comps, Blackouts: make([][]string, 0)}
	if len(gen) == 0 {
		return r, nil
	}
	for _, c := range comps {
		if !containsAny(c, gen) {
			r.Blackouts = append(r.Blackouts, c)
		}
	}

	return r, nil
}

// IsBlackout reports whether component has no node in generators.
// An empty generator list never yields a blackout.
func IsBlackout(component []string, generators []string) bool {
	if len(generators) == 0 {
		return false
	}
	gen := make(map[string]struct{}, len(generators))
	for _, id := range generators {
		gen[id] = struct{}{}
	}

	return !containsAny(component, gen)
}

func containsAny(component []string, set map[string]struct{}) bool {
	for _, n := range component {
		if _, ok := set[n]; ok {
			return true
		}
	}

	return false
}
