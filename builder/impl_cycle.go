// SPDX-License-Identifier: MIT
// Package: w33/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i -> (i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/w33/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := addIndexedVertices(g, methodCycle, n, cfg, nil)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			u, v := ids[i], ids[(i+1)%n]
			if _, err = g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodCycle, u, v, err)
			}
		}

		return nil
	}
}
