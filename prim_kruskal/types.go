// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"errors"
	"sort"

	"github.com/katalvlaran/windgrid/core"
)

// ErrNilGraph indicates a nil *core.Graph was passed.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrUnknownMethod indicates Compute was asked for an algorithm it does not know.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown spanning forest method")

// MethodPrim selects Prim's algorithm (grow each region with a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all lines and union-find).
const MethodKruskal = "kruskal"

// Options configures which forest algorithm Compute runs.
type Options struct {
	// Method is MethodKruskal or MethodPrim.
	Method string
}

// Option mutates Options.
type Option func(*Options)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// DefaultOptions returns Options selecting Kruskal.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal}
}

// Compute runs the forest algorithm selected by opts (Kruskal by default).
func Compute(g *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g)
	default:
		return nil, 0, ErrUnknownMethod
	}
}

// CheaperFirst reports whether a ranks before b for reinforcement:
// lower Cost first, ties broken by ascending ID.
func CheaperFirst(a, b core.Edge) bool {
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}

	return a.ID < b.ID
}

// SortByCost sorts edges in place by CheaperFirst.
func SortByCost(edges []core.Edge) {
	sort.Slice(edges, func(i, j int) bool { return CheaperFirst(edges[i], edges[j]) })
}
