// SPDX-License-Identifier: MIT

package connectivity

import (
	"github.com/katalvlaran/windgrid/bfs"
	"github.com/katalvlaran/windgrid/core"
)

// Feeds walks the surviving lines outward from every generator at once.
// The result tells, for each node that still has power, how many hops it
// sits from its nearest generator and which line feeds it. With generators
// present, a node is unreached exactly when it lies in a blackout zone.
//
// Errors:
//   - core.ErrUnknownNode : a generator is not a node of g.
//   - core.ErrUnknownEdge : a surviving ID is not an edge of g.
func Feeds(g *core.Graph, surviving []string, generators []string) (*bfs.Result, error) {
	for _, id := range generators {
		if !g.HasNode(id) {
			return nil, core.ErrUnknownNode
		}
	}
	for _, id := range surviving {
		if !g.HasEdge(id) {
			return nil, core.ErrUnknownEdge
		}
	}

	return bfs.Walk(g, generators, bfs.WithAllowedEdges(surviving))
}
