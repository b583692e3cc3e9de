// SPDX-License-Identifier: MIT
// Package: windgrid/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi style meshes.
//
// Pairs (i, j) with i < j are sampled in lexicographic order, so the same
// seed always yields the same line set.

package builder

import (
	"fmt"

	"github.com/katalvlaran/windgrid/core"
)

const (
	methodRandomSparse   = "RandomSparse"
	minRandomSparseNodes = 1
	probMin, probMax     = 0.0, 1.0
)

// RandomSparse returns a Constructor over n nodes where each pair is joined
// independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseNodes, ErrTooFewNodes)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		ids, err := addNodes(g, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addLine(g, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
