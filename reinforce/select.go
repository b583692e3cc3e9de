// SPDX-License-Identifier: MIT

package reinforce

import (
	"context"

	"github.com/katalvlaran/windgrid/core"
	"github.com/katalvlaran/windgrid/prim_kruskal"
)

// Select returns the IDs of the lines to reinforce, at most k of them, in the
// order the strategy picked them.
//
// Errors:
//   - ErrUnknownMethod, ErrInvalidBudget : parameter errors, before any work.
//   - failure.ErrInvalidWind             : greedy only, bad wind strength.
//   - core.ErrUnknownNode                : greedy only, unknown generator.
//   - ctx.Err()                          : greedy only, cancelled between rounds.
func Select(ctx context.Context, g *core.Graph, method Method, k int, wind float64, opts ...Option) ([]string, error) {
	if !method.Valid() {
		return nil, ErrUnknownMethod
	}
	if k < 0 {
		return nil, ErrInvalidBudget
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch method {
	case MethodMST:
		return selectMST(g, k, o)
	case MethodGreedy:
		return selectGreedy(ctx, g, k, wind, o)
	default:
		return []string{}, nil
	}
}

// selectMST takes the k cheapest lines of the minimum spanning forest.
func selectMST(g *core.Graph, k int, o Options) ([]string, error) {
	forest, _, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(o.SpanningMethod))
	if err != nil {
		return nil, err
	}
	prim_kruskal.SortByCost(forest)

	n := min(k, len(forest))
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = forest[i].ID
	}

	return out, nil
}
