// SPDX-License-Identifier: MIT

package web

import (
	"fmt"
	"math"

	"github.com/katalvlaran/windgrid/bfs"
	"github.com/katalvlaran/windgrid/connectivity"
	"github.com/katalvlaran/windgrid/core"
	"github.com/katalvlaran/windgrid/simulation"
)

// Plot geometry, in SVG user units.
const (
	plotSize   = 420.0
	plotRadius = 160.0
	nodeRadius = 14.0
)

// Line classes, styled in the results template.
const (
	classSurviving = "surviving"
	classFailed    = "failed"
	classIdle      = "idle"
)

type plotNode struct {
	ID        string
	X, Y      float64
	Generator bool
	Blackout  bool
	Supply    string
}

type plotEdge struct {
	ID         string
	X1, Y1     float64
	X2, Y2     float64
	Class      string
	Reinforced bool
}

type plot struct {
	Size       float64
	NodeRadius float64
	Nodes      []plotNode
	Edges      []plotEdge
}

// layout places the nodes of g evenly on a circle in insertion order, the
// first at twelve o'clock, and colours each line by its fate in res.
// When supply reach cannot be computed the plot is still complete but its
// nodes carry no supply labels, and the error is returned alongside it.
func layout(g *core.Graph, res *simulation.Result, generators []string) (plot, error) {
	p := plot{Size: plotSize, NodeRadius: nodeRadius}
	if g == nil || res == nil {
		return p, nil
	}

	gen := make(map[string]bool, len(generators))
	for _, id := range generators {
		gen[id] = true
	}
	dark := make(map[string]bool)
	for _, zone := range res.Blackouts {
		for _, id := range zone {
			dark[id] = true
		}
	}

	feeds, feedErr := connectivity.Feeds(g, res.Surviving, generators)
	if feedErr != nil {
		feedErr = fmt.Errorf("supply reach: %w", feedErr)
	}

	nodes := g.Nodes()
	pos := make(map[string][2]float64, len(nodes))
	c := plotSize / 2
	for i, id := range nodes {
		angle := 2*math.Pi*float64(i)/float64(len(nodes)) - math.Pi/2
		x, y := c+plotRadius*math.Cos(angle), c+plotRadius*math.Sin(angle)
		pos[id] = [2]float64{x, y}
		p.Nodes = append(p.Nodes, plotNode{
			ID:        id,
			X:         x,
			Y:         y,
			Generator: gen[id],
			Blackout:  dark[id],
			Supply:    supplyLabel(feeds, id, len(generators) > 0),
		})
	}

	class := make(map[string]string, len(res.Surviving)+len(res.Failed))
	for _, id := range res.Surviving {
		class[id] = classSurviving
	}
	for _, id := range res.Failed {
		class[id] = classFailed
	}
	hard := core.NewEdgeSet(res.Selected...)

	for _, e := range g.Edges() {
		cl, ok := class[e.ID]
		if !ok {
			cl = classIdle
		}
		a, b := pos[e.U], pos[e.V]
		p.Edges = append(p.Edges, plotEdge{
			ID:         e.ID,
			X1:         a[0],
			Y1:         a[1],
			X2:         b[0],
			Y2:         b[1],
			Class:      cl,
			Reinforced: hard.Has(e.ID),
		})
	}

	return p, feedErr
}

// supplyLabel describes how id is fed, for the node tooltip.
func supplyLabel(feeds *bfs.Result, id string, haveGenerators bool) string {
	switch {
	case !haveGenerators || feeds == nil:
		return ""
	case !feeds.Reached(id):
		return "no supply"
	case feeds.Depth[id] == 0:
		return "generator"
	case feeds.Depth[id] == 1:
		return fmt.Sprintf("1 hop from supply via %s", feeds.Via[id])
	default:
		return fmt.Sprintf("%d hops from supply via %s", feeds.Depth[id], feeds.Via[id])
	}
}
