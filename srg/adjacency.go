// SPDX-License-Identifier: MIT
// Package: w33/srg
//
// adjacency.go - immutable boolean adjacency relation over 0..n-1.
//
// Contract:
//   • An Adjacency never changes after construction; accessors that expose a
//     row return a copy.
//   • FromFunc evaluates adj(i,j) only for i<j and mirrors the result, so the
//     relation it builds is symmetric and irreflexive by construction.
//   • FromGraph copies whatever the graph holds (including loops), leaving
//     symmetry/irreflexivity checks to Verify.

package srg

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/w33/core"
)

// ErrBadPermutation reports a relabeling that is not a bijection on 0..n-1.
var ErrBadPermutation = errors.New("srg: not a permutation")

// Adjacency is a dense symmetric relation stored as bit rows.
type Adjacency struct {
	n    int
	rows []Bits
}

// newAdjacency returns an empty relation on n vertices.
func newAdjacency(n int) *Adjacency {
	a := &Adjacency{n: n, rows: make([]Bits, n)}
	for i := range a.rows {
		a.rows[i] = NewBits(n)
	}
	return a
}

// FromFunc builds the relation {i,j} (i<j) for which adj(i,j) holds.
// Complexity: O(n²) predicate calls.
func FromFunc(n int, adj func(i, j int) bool) *Adjacency {
	a := newAdjacency(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if adj(i, j) {
				a.rows[i].Set(j)
				a.rows[j].Set(i)
			}
		}
	}
	return a
}

// FromGraph converts g into an Adjacency and returns the vertex IDs in index
// order. When every vertex carries a distinct core.MetaIndex in 0..n-1 that
// index is used; otherwise vertices are numbered in g.Vertices() order.
// Complexity: O(V + E).
func FromGraph(g *core.Graph) (*Adjacency, []string) {
	ids := indexOrder(g)
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}

	a := newAdjacency(len(ids))
	for _, e := range g.Edges() {
		i, j := pos[e.From], pos[e.To]
		a.rows[i].Set(j)
		a.rows[j].Set(i)
	}
	return a, ids
}

// indexOrder returns vertex IDs ordered by core.MetaIndex when that metadata
// forms a permutation, falling back to g.Vertices().
func indexOrder(g *core.Graph) []string {
	ids := g.Vertices()
	byIndex := make([]string, len(ids))
	for _, id := range ids {
		raw, ok := g.VertexMeta(id, core.MetaIndex)
		if !ok {
			return ids
		}
		idx, ok := raw.(int)
		if !ok || idx < 0 || idx >= len(ids) || byIndex[idx] != "" {
			return ids
		}
		byIndex[idx] = id
	}
	return byIndex
}

// N returns the number of vertices.
func (a *Adjacency) N() int { return a.n }

// Adjacent reports whether i and j are related.
func (a *Adjacency) Adjacent(i, j int) bool { return a.rows[i].Has(j) }

// Row returns a copy of the neighbor set of i.
func (a *Adjacency) Row(i int) Bits { return a.rows[i].Clone() }

// Neighbors returns the neighbors of i in ascending order.
func (a *Adjacency) Neighbors(i int) []int { return a.rows[i].Members() }

// Degree returns the number of neighbors of i.
func (a *Adjacency) Degree(i int) int { return a.rows[i].Count() }

// CommonNeighbors returns |N(i) ∩ N(j)|.
func (a *Adjacency) CommonNeighbors(i, j int) int { return a.rows[i].AndCount(a.rows[j]) }

// CommonNeighborSet returns N(i) ∩ N(j) in ascending order.
func (a *Adjacency) CommonNeighborSet(i, j int) []int { return a.rows[i].And(a.rows[j]).Members() }

// Edges returns every related pair (i,j) with i<j, sorted lexicographically.
func (a *Adjacency) Edges() [][2]int {
	out := make([][2]int, 0, a.EdgeCount())
	for i := 0; i < a.n; i++ {
		for _, j := range a.rows[i].Members() {
			if j > i {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}

// EdgeCount returns the number of related pairs i<j.
func (a *Adjacency) EdgeCount() int {
	c := 0
	for i := 0; i < a.n; i++ {
		for _, j := range a.rows[i].Members() {
			if j > i {
				c++
			}
		}
	}
	return c
}

// Complement returns the relation of distinct non-adjacent pairs.
func (a *Adjacency) Complement() *Adjacency {
	return FromFunc(a.n, func(i, j int) bool { return !a.Adjacent(i, j) })
}

// Equal reports whether a and b relate exactly the same pairs.
func (a *Adjacency) Equal(b *Adjacency) bool {
	if a.n != b.n {
		return false
	}
	for i := range a.rows {
		if !a.rows[i].Equal(b.rows[i]) {
			return false
		}
	}
	return true
}

// Permute returns the relabeled relation b with b(p[i],p[j]) == a(i,j).
// Errors: ErrBadPermutation when p is not a bijection on 0..n-1.
func (a *Adjacency) Permute(p []int) (*Adjacency, error) {
	if err := validatePerm(a.n, p); err != nil {
		return nil, err
	}
	b := newAdjacency(a.n)
	for i := 0; i < a.n; i++ {
		for _, j := range a.rows[i].Members() {
			b.rows[p[i]].Set(p[j])
		}
	}
	return b, nil
}

// validatePerm checks that p is a bijection on 0..n-1.
func validatePerm(n int, p []int) error {
	if len(p) != n {
		return fmt.Errorf("length %d, want %d: %w", len(p), n, ErrBadPermutation)
	}
	seen := NewBits(n)
	for i, x := range p {
		if x < 0 || x >= n || seen.Has(x) {
			return fmt.Errorf("image %d of %d repeated or out of range: %w", x, i, ErrBadPermutation)
		}
		seen.Set(x)
	}
	return nil
}
