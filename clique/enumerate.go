// SPDX-License-Identifier: MIT
// Package: w33/clique
//
// enumerate.go - triangles, bases and K4 components by nested row
// intersection.

package clique

import (
	"fmt"

	"github.com/katalvlaran/w33/srg"
)

// Triangles returns every 3-clique (i<j<k) in lexicographic order.
// Complexity: O(E·n/64 + T).
func Triangles(a *srg.Adjacency) []Triangle {
	var out []Triangle
	for i := 0; i < a.N(); i++ {
		ri := a.Row(i)
		for _, j := range ri.Members() {
			if j <= i {
				continue
			}
			for _, k := range ri.And(a.Row(j)).Members() {
				if k > j {
					out = append(out, Triangle{i, j, k})
				}
			}
		}
	}
	return out
}

// TriangleCount returns len(Triangles(a)) without materializing the list.
func TriangleCount(a *srg.Adjacency) int {
	c := 0
	for _, e := range a.Edges() {
		c += a.CommonNeighbors(e[0], e[1])
	}
	return c / 3
}

// Bases returns every orthonormal tetrad through v: v together with a
// mutually adjacent triple of its neighbors.
func Bases(a *srg.Adjacency, v int) []Basis {
	nv := a.Row(v)
	var out []Basis
	for _, x := range nv.Members() {
		nx := nv.And(a.Row(x))
		for _, y := range nx.Members() {
			if y <= x {
				continue
			}
			for _, z := range nx.And(a.Row(y)).Members() {
				if z > y {
					out = append(out, Basis(sort4([4]int{v, x, y, z})))
				}
			}
		}
	}
	return out
}

// BasisCounts returns len(Bases(a, v)) for every v.
func BasisCounts(a *srg.Adjacency) []int {
	out := make([]int, a.N())
	for v := range out {
		out[v] = len(Bases(a, v))
	}
	return out
}

// K4Components enumerates every set of four mutually non-adjacent vertices
// adjacent in common to exactly four vertices. Outer sets are visited in
// lexicographic order.
//
// Complexity: O(C·n/64) where C is the number of 4-cocliques (9450 in W33).
func K4Components(a *srg.Adjacency) []K4 {
	n := a.N()
	non := make([]srg.Bits, n)
	for i := range non {
		closed := a.Row(i)
		closed.Set(i)
		non[i] = closed.Not(n)
	}

	var out []K4
	for i := 0; i < n; i++ {
		for _, j := range non[i].Members() {
			if j <= i {
				continue
			}
			nij := non[i].And(non[j])
			cij := a.Row(i).And(a.Row(j))
			for _, k := range nij.Members() {
				if k <= j {
					continue
				}
				nijk := nij.And(non[k])
				cijk := cij.And(a.Row(k))
				for _, l := range nijk.Members() {
					if l <= k {
						continue
					}
					center := cijk.And(a.Row(l))
					if center.Count() == 4 {
						out = append(out, K4{Outer: [4]int{i, j, k, l}, Center: toQuad(center.Members())})
					}
				}
			}
		}
	}
	return out
}

// VerifyK4Duality checks that every center is pairwise non-adjacent and is
// itself the outer set of a listed component whose center is the original
// outer set.
func VerifyK4Duality(a *srg.Adjacency, comps []K4) error {
	byOuter := make(map[[4]int][4]int, len(comps))
	for _, c := range comps {
		byOuter[c.Outer] = c.Center
	}
	for _, c := range comps {
		for x := 0; x < 4; x++ {
			for y := x + 1; y < 4; y++ {
				if a.Adjacent(c.Center[x], c.Center[y]) {
					return fmt.Errorf("%v: center vertices %d,%d adjacent: %w",
						c, c.Center[x], c.Center[y], ErrK4Duality)
				}
			}
		}
		back, ok := byOuter[c.Center]
		if !ok || back != c.Outer {
			return fmt.Errorf("%v: center is not a component with this outer: %w", c, ErrK4Duality)
		}
	}
	return nil
}

// Profile collects per-vertex substructure counts.
type Profile struct {
	Vertex    int `json:"vertex" yaml:"vertex"`
	Lines     int `json:"lines" yaml:"lines"`
	Bases     int `json:"bases" yaml:"bases"`
	Triangles int `json:"triangles" yaml:"triangles"`
	K4Outer   int `json:"k4_outer" yaml:"k4_outer"`
	K4Center  int `json:"k4_center" yaml:"k4_center"`
}

// VertexProfile tallies, for every vertex, the lines, bases, triangles and
// K4 components (as outer and as center member) it belongs to.
func VertexProfile(a *srg.Adjacency, lines []Line, comps []K4) []Profile {
	n := a.N()
	out := make([]Profile, n)
	perLine, _ := LineIncidence(n, lines)
	for v := range out {
		out[v] = Profile{Vertex: v, Lines: perLine[v], Bases: len(Bases(a, v))}
	}
	for _, t := range Triangles(a) {
		for _, v := range t {
			out[v].Triangles++
		}
	}
	for _, c := range comps {
		for x := 0; x < 4; x++ {
			out[c.Outer[x]].K4Outer++
			out[c.Center[x]].K4Center++
		}
	}
	return out
}
