// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/windgrid/core"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// Walk runs breadth-first search on g from every ID in sources at once,
// applying any number of functional Options. Duplicate sources are visited
// once. An empty source list yields an empty Result.
//
// Errors: ErrGraphNil, ErrSourceNotFound, ErrOptionViolation, ctx.Err(),
// or a wrapped OnVisit error.
func Walk(g *core.Graph, sources []string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, id := range sources {
		if !g.HasNode(id) {
			return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, id)
		}
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
			Via:    make(map[string]string, n),
		},
	}
	for _, id := range sources {
		if !w.res.Reached(id) {
			w.enqueue(id, 0, "", "")
		}
	}

	return w.res, w.loop()
}

// enqueue marks id reached at depth d and records how it was reached.
func (w *walker) enqueue(id string, d int, parent, via string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
		w.res.Via[id] = via
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand enqueues every unseen neighbor reachable through an allowed line.
func (w *walker) expand(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}

	lines, err := w.graph.Neighbors(item.id)
	if err != nil {
		return err
	}
	for id := range lines {
		e, err := w.graph.Edge(id)
		if err != nil {
			return err
		}
		if !w.opts.FilterEdge(e) {
			continue
		}
		if nbr := e.Other(item.id); !w.res.Reached(nbr) {
			w.enqueue(nbr, next, item.id, e.ID)
		}
	}

	return nil
}
