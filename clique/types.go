// SPDX-License-Identifier: MIT
// Package clique derives the secondary substructures of a strongly regular
// relation: lines (maximal 4-cliques), triangles, orthonormal bases through a
// vertex, and K4 outer/center components.
//
// Every tuple produced here is sorted ascending, and every list is sorted
// lexicographically, so results are reproducible across runs and between the
// symplectic and Witting constructions once relabeled.
package clique

import (
	"errors"
	"fmt"
)

var (
	// ErrNotClique reports a derived quadruple that is not pairwise adjacent.
	ErrNotClique = errors.New("clique: candidate line is not a clique")

	// ErrNotMaximal reports a line that some fifth vertex extends.
	ErrNotMaximal = errors.New("clique: candidate line is not maximal")

	// ErrLineIncidence reports a line system with the wrong incidence counts.
	ErrLineIncidence = errors.New("clique: line incidence violated")

	// ErrK4Duality reports a component whose center is not itself a component
	// with the original outer as its center.
	ErrK4Duality = errors.New("clique: K4 center/outer duality violated")
)

// Line is a sorted 4-clique.
type Line [4]int

// Triangle is a sorted 3-clique.
type Triangle [3]int

// Basis is a sorted orthonormal tetrad (a 4-clique through a given vertex).
type Basis [4]int

// K4 is a component: four mutually non-adjacent vertices (Outer) and the
// exactly four vertices adjacent to all of them (Center).
type K4 struct {
	Outer  [4]int `json:"outer" yaml:"outer"`
	Center [4]int `json:"center" yaml:"center"`
}

// String renders "{a b c d}".
func (l Line) String() string { return fmt.Sprintf("{%d %d %d %d}", l[0], l[1], l[2], l[3]) }

// String renders "outer{...} center{...}".
func (k K4) String() string {
	return fmt.Sprintf("outer%v center%v", Line(k.Outer), Line(k.Center))
}

// compare4 orders 4-tuples lexicographically.
func compare4(a, b [4]int) int {
	for i := 0; i < 4; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// sort4 returns q sorted ascending.
func sort4(q [4]int) [4]int {
	for i := 1; i < 4; i++ {
		for j := i; j > 0 && q[j] < q[j-1]; j-- {
			q[j], q[j-1] = q[j-1], q[j]
		}
	}
	return q
}

// toQuad copies a 4-element slice into an array.
func toQuad(s []int) [4]int {
	var q [4]int
	copy(q[:], s)
	return q
}
