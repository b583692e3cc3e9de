// SPDX-License-Identifier: MIT
// Package: windgrid/builder
//
// impl_grid.go - Grid(rows, cols): meshed urban distribution.
//
// Nodes are added in row-major order; for each cell the line to the right
// neighbor is emitted before the line to the bottom neighbor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/windgrid/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols orthogonal lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewNodes)
		}
		ids, err := addNodes(g, cfg, methodGrid, rows*cols)
		if err != nil {
			return err
		}
		at := func(r, c int) string { return ids[r*cols+c] }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addLine(g, cfg, methodGrid, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addLine(g, cfg, methodGrid, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
