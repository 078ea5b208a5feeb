// SPDX-License-Identifier: MIT
// Package: w33/builder
//
// helpers.go - shared vertex/edge emission used by every constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/w33/core"
)

// addIndexedVertices adds n vertices via cfg.idFn, records their index (and
// label, when labels is non-nil) in metadata, and returns the IDs in index
// order. A non-injective ID scheme is rejected with ErrOptionViolation.
// Complexity: O(n).
func addIndexedVertices(g *core.Graph, method string, n int, cfg builderConfig, labels func(int) string) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if g.HasVertex(id) {
			return nil, fmt.Errorf("%s: vertex %q already present (index %d): %w", method, id, i, ErrOptionViolation)
		}
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
		if err := g.SetVertexMeta(id, core.MetaIndex, i); err != nil {
			return nil, fmt.Errorf("%s: SetVertexMeta(%s): %w", method, id, err)
		}
		if labels != nil {
			if err := g.SetVertexMeta(id, core.MetaLabel, labels(i)); err != nil {
				return nil, fmt.Errorf("%s: SetVertexMeta(%s): %w", method, id, err)
			}
		}
		ids[i] = id
	}

	return ids, nil
}

// addPairs emits an edge for every pair i<j with adjacent(i,j), in
// lexicographic (i,j) order.
// Complexity: O(n²) predicate calls.
func addPairs(g *core.Graph, method string, ids []string, adjacent func(i, j int) bool) error {
	n := len(ids)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !adjacent(i, j) {
				continue
			}
			if _, err := g.AddEdge(ids[i], ids[j]); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", method, ids[i], ids[j], err)
			}
		}
	}

	return nil
}

// requireSimple rejects graph modes in which a configuration graph would be
// ambiguous.
func requireSimple(g *core.Graph, method string) error {
	if g.Looped() || g.Multigraph() {
		return fmt.Errorf("%s: loops/multi-edges enabled: %w", method, ErrUnsupportedGraphMode)
	}
	return nil
}
