// SPDX-License-Identifier: MIT
// Package: w33/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits each unordered pair {i,j} with i<j exactly once.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges emission.

package builder

import (
	"fmt"

	"github.com/katalvlaran/w33/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addIndexedVertices(g, methodComplete, n, cfg, nil)
		if err != nil {
			return err
		}

		return addPairs(g, methodComplete, ids, func(int, int) bool { return true })
	}
}
