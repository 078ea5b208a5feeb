// SPDX-License-Identifier: MIT
// Package: w33/clique
//
// lines.go - maximal 4-cliques closed from edges.
//
// For SRG(v,k,2,μ) every edge {i,j} has exactly two common neighbors c1,c2,
// and {i,j,c1,c2} is the unique line through the edge. Each line is found
// once per internal edge (6 times); a red-black tree keyed on the sorted
// tuple keeps one copy and yields the lines in lexicographic order.

package clique

import (
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/w33/srg"
)

// LineCounts are the expected incidence numbers of a line system.
type LineCounts struct {
	Lines     int
	PerVertex int
	PerEdge   int
}

// W33Lines are the incidence numbers of W(3,3): 40 lines, 4 per point,
// 1 per collinear pair.
var W33Lines = LineCounts{Lines: 40, PerVertex: 4, PerEdge: 1}

// newQuadTree returns an ordered set of [4]int.
func newQuadTree() *redblacktree.Tree {
	return &redblacktree.Tree{
		Comparator: func(a, b interface{}) int {
			return compare4(a.([4]int), b.([4]int))
		},
	}
}

// Lines closes every edge into its line and returns the distinct lines.
//
// Errors:
//   - *srg.InvariantError (lambda) if an edge does not have exactly 2 common neighbors.
//   - ErrNotClique if the two common neighbors are not adjacent.
//   - ErrNotMaximal if a fifth vertex is adjacent to all four.
//
// Complexity: O(E·n/64).
func Lines(a *srg.Adjacency) ([]Line, error) {
	set := newQuadTree()
	for _, e := range a.Edges() {
		i, j := e[0], e[1]
		common := a.CommonNeighborSet(i, j)
		if len(common) != 2 {
			return nil, &srg.InvariantError{Invariant: srg.InvLambda, I: i, J: j, Got: len(common), Want: 2}
		}
		c1, c2 := common[0], common[1]
		q := sort4([4]int{i, j, c1, c2})
		if !a.Adjacent(c1, c2) {
			return nil, fmt.Errorf("edge (%d,%d): %v: %w", i, j, Line(q), ErrNotClique)
		}
		if _, found := set.Get(q); found {
			continue
		}
		ext := a.Row(q[0]).And(a.Row(q[1])).And(a.Row(q[2])).And(a.Row(q[3]))
		if ext.Count() != 0 {
			return nil, fmt.Errorf("%v extended by %v: %w", Line(q), ext.Members(), ErrNotMaximal)
		}
		set.Put(q, nil)
	}

	out := make([]Line, 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		out = append(out, Line(it.Key().([4]int)))
	}
	return out, nil
}

// LineIncidence returns how many lines contain each vertex and each pair
// (keyed with the smaller index first).
func LineIncidence(n int, lines []Line) (perVertex []int, perPair map[[2]int]int) {
	perVertex = make([]int, n)
	perPair = make(map[[2]int]int, len(lines)*6)
	for _, l := range lines {
		for x := 0; x < 4; x++ {
			perVertex[l[x]]++
			for y := x + 1; y < 4; y++ {
				perPair[[2]int{l[x], l[y]}]++
			}
		}
	}
	return perVertex, perPair
}

// VerifyLines checks that lines has want.Lines members, that every vertex
// lies on want.PerVertex of them and every edge of a on want.PerEdge, and
// that every line pair is an edge of a.
func VerifyLines(a *srg.Adjacency, lines []Line, want LineCounts) error {
	if len(lines) != want.Lines {
		return fmt.Errorf("got %d lines, want %d: %w", len(lines), want.Lines, ErrLineIncidence)
	}
	perVertex, perPair := LineIncidence(a.N(), lines)
	for v, c := range perVertex {
		if c != want.PerVertex {
			return fmt.Errorf("vertex %d on %d lines, want %d: %w", v, c, want.PerVertex, ErrLineIncidence)
		}
	}
	for pair := range perPair {
		if !a.Adjacent(pair[0], pair[1]) {
			return fmt.Errorf("line pair %v is not an edge: %w", pair, ErrNotClique)
		}
	}
	for _, e := range a.Edges() {
		if c := perPair[e]; c != want.PerEdge {
			return fmt.Errorf("edge %v on %d lines, want %d: %w", e, c, want.PerEdge, ErrLineIncidence)
		}
	}
	return nil
}
