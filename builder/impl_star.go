// SPDX-License-Identifier: MIT
// Package: windgrid/builder
//
// impl_star.go - Star(n): one substation feeding n-1 spokes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/windgrid/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for a hub (the first node) with n-1 spokes.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
		}
		ids, err := addNodes(g, cfg, methodStar, n)
		if err != nil {
			return err
		}
		for _, spoke := range ids[1:] {
			if err := addLine(g, cfg, methodStar, ids[0], spoke); err != nil {
				return err
			}
		}

		return nil
	}
}
