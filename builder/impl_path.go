// SPDX-License-Identifier: MIT
// Package: windgrid/builder
//
// impl_path.go - Path(n) and Ring(n): radial feeders and loops.

package builder

import (
	"fmt"

	"github.com/katalvlaran/windgrid/core"
)

const (
	methodPath   = "Path"
	methodRing   = "Ring"
	minPathNodes = 1
	minRingNodes = 3
)

// Path returns a Constructor for n nodes joined in a chain (n-1 lines).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
		}
		ids, err := addNodes(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addLine(g, cfg, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Ring returns a Constructor for n nodes joined in a cycle (n lines).
func Ring(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewNodes)
		}
		ids, err := addNodes(g, cfg, methodRing, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addLine(g, cfg, methodRing, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
