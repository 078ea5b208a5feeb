// SPDX-License-Identifier: MIT

// Package matrix - adjacency adapters.
//
// FromAdjacency lifts a bit-row relation to a 0/1 Dense matrix; BuildAdjacency
// does the same for a core.Graph, in the vertex order srg.FromGraph chooses,
// and returns that order so callers can map rows back to vertex IDs.

package matrix

import (
	"github.com/katalvlaran/w33/core"
	"github.com/katalvlaran/w33/srg"
)

// FromAdjacency returns the n×n 0/1 matrix of a. A nil or empty relation
// yields ErrNilMatrix / ErrInvalidDimensions.
// Complexity: O(n^2).
func FromAdjacency(a *srg.Adjacency) (*Dense, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	n := a.N()
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for _, j := range a.Neighbors(i) {
			m.data[i*n+j] = 1
		}
	}
	return m, nil
}

// BuildAdjacency returns the adjacency matrix of g and the vertex ID of each
// row.
func BuildAdjacency(g *core.Graph) (*Dense, []string, error) {
	if g == nil {
		return nil, nil, matrixErrorf(opBuild, ErrNilMatrix)
	}
	a, ids := srg.FromGraph(g)
	m, err := FromAdjacency(a)
	if err != nil {
		return nil, nil, matrixErrorf(opBuild, err)
	}
	return m, ids, nil
}
