// SPDX-License-Identifier: MIT

package reinforce

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/windgrid/connectivity"
	"github.com/katalvlaran/windgrid/core"
	"github.com/katalvlaran/windgrid/failure"
)

// Score is the outcome of one greedy trial. Lower is better, compared
// lexicographically on (Blackouts, Failed, EdgeID).
type Score struct {
	EdgeID    string
	Blackouts int
	Failed    int
}

// Less reports whether s ranks strictly better than o.
func (s Score) Less(o Score) bool {
	if s.Blackouts != o.Blackouts {
		return s.Blackouts < o.Blackouts
	}
	if s.Failed != o.Failed {
		return s.Failed < o.Failed
	}

	return s.EdgeID < o.EdgeID
}

// Evaluate simulates wind with reinforced lines hardened and scores the result.
// EdgeID is left empty; callers fill it with the candidate being tried.
func Evaluate(g *core.Graph, reinforced core.EdgeSet, wind float64, generators []string) (Score, error) {
	p, err := failure.Simulate(g, reinforced, wind)
	if err != nil {
		return Score{}, err
	}
	r, err := connectivity.Analyze(g, p.Surviving, generators)
	if err != nil {
		return Score{}, err
	}

	return Score{Blackouts: len(r.Blackouts), Failed: len(p.Failed)}, nil
}

// selectGreedy runs min(k, E) rounds of marginal-improvement search.
func selectGreedy(ctx context.Context, g *core.Graph, k int, wind float64, o Options) ([]string, error) {
	if err := failure.ValidateWind(wind); err != nil {
		return nil, err
	}
	for _, id := range o.Generators {
		if !g.HasNode(id) {
			return nil, core.ErrUnknownNode
		}
	}

	all := g.EdgeIDs()
	rounds := min(k, len(all))
	committed := core.NewEdgeSet()
	selected := make([]string, 0, rounds)
	workers := max(o.Workers, 1)

	for round := 0; round < rounds; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		candidates := make([]string, 0, len(all)-len(selected))
		for _, id := range all {
			if !committed.Has(id) {
				candidates = append(candidates, id)
			}
		}

		// Each trial owns scores[i]; committed is only read until Wait returns.
		scores := make([]Score, len(candidates))
		var eg errgroup.Group
		eg.SetLimit(workers)
		for i, id := range candidates {
			eg.Go(func() error {
				tentative := committed.Clone(1)
				tentative.Add(id)
				s, err := Evaluate(g, tentative, wind, o.Generators)
				if err != nil {
					return err
				}
				s.EdgeID = id
				scores[i] = s

				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}

		best := scores[0]
		for _, s := range scores[1:] {
			if s.Less(best) {
				best = s
			}
		}
		committed.Add(best.EdgeID)
		selected = append(selected, best.EdgeID)

		if o.OnRound != nil {
			o.OnRound(round, len(candidates))
		}
	}

	return selected, nil
}
