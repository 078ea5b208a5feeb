// SPDX-License-Identifier: MIT
// Package: w33/group
//
// orbits.go - orbits on points and on unordered pairs.
//
// Contract:
//   • Every orbit is sorted ascending; orbits are ordered by their smallest
//     member, so output is independent of generator order.
//   • Pair orbits split into edges and non-edges of the relation; a generator
//     set of automorphisms never mixes them.

package group

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/w33/srg"
)

// unionFind is a disjoint-set forest with path halving and union by size.
type unionFind struct {
	parent []int
	size   []int
}

func newUnionFind(n int) *unionFind {
	u := &unionFind{parent: make([]int, n), size: make([]int, n)}
	for i := range u.parent {
		u.parent[i] = i
		u.size[i] = 1
	}
	return u
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(x, y int) {
	rx, ry := u.find(x), u.find(y)
	if rx == ry {
		return
	}
	if u.size[rx] < u.size[ry] {
		rx, ry = ry, rx
	}
	u.parent[ry] = rx
	u.size[rx] += u.size[ry]
}

// classes groups members 0..n-1 by root, ordered by smallest member.
func (u *unionFind) classes(n int) [][]int {
	byRoot := make(map[int]int)
	var out [][]int
	for x := 0; x < n; x++ {
		r := u.find(x)
		k, ok := byRoot[r]
		if !ok {
			k = len(out)
			byRoot[r] = k
			out = append(out, nil)
		}
		out[k] = append(out[k], x)
	}
	return out
}

// Orbits partitions 0..n-1 into the orbits of <gens>.
// Complexity: O(n·|gens|·α(n)).
func Orbits(n int, gens []Perm) ([][]int, error) {
	if err := validateAll(n, gens); err != nil {
		return nil, err
	}
	u := newUnionFind(n)
	for _, g := range gens {
		for x, y := range g {
			u.union(x, y)
		}
	}
	return u.classes(n), nil
}

// OrbitOf returns the orbit of x under <gens>, sorted ascending.
// Generators are assumed valid and of equal degree.
func OrbitOf(x int, gens []Perm) []int {
	seen := map[int]bool{x: true}
	queue := linkedlistqueue.New()
	queue.Enqueue(x)
	for !queue.Empty() {
		v, _ := queue.Dequeue()
		y := v.(int)
		for _, g := range gens {
			if z := g[y]; !seen[z] {
				seen[z] = true
				queue.Enqueue(z)
			}
		}
	}
	out := make([]int, 0, len(seen))
	for y := range seen {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}

// EdgeOrbits returns the orbits of <gens> on the edges of a.
func EdgeOrbits(a *srg.Adjacency, gens []Perm) ([][][2]int, error) {
	return pairOrbits(a, gens, true)
}

// NonEdgeOrbits returns the orbits of <gens> on the non-adjacent pairs of a.
func NonEdgeOrbits(a *srg.Adjacency, gens []Perm) ([][][2]int, error) {
	return pairOrbits(a, gens, false)
}

// pairOrbits runs union-find over the unordered pairs {i<j} with
// a(i,j) == adjacent. An image pair of the other kind is ErrNotAutomorphism.
func pairOrbits(a *srg.Adjacency, gens []Perm, adjacent bool) ([][][2]int, error) {
	n := a.N()
	if err := validateAll(n, gens); err != nil {
		return nil, err
	}
	var pairs [][2]int
	slot := make(map[[2]int]int)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if a.Adjacent(i, j) == adjacent {
				slot[[2]int{i, j}] = len(pairs)
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}

	u := newUnionFind(len(pairs))
	for gi, g := range gens {
		for k, pr := range pairs {
			x, y := g[pr[0]], g[pr[1]]
			if x > y {
				x, y = y, x
			}
			img, ok := slot[[2]int{x, y}]
			if !ok {
				return nil, fmt.Errorf("generator %d maps pair %v to %v: %w", gi, pr, [2]int{x, y}, ErrNotAutomorphism)
			}
			u.union(k, img)
		}
	}

	classes := u.classes(len(pairs))
	out := make([][][2]int, len(classes))
	for c, members := range classes {
		out[c] = make([][2]int, len(members))
		for m, k := range members {
			out[c][m] = pairs[k]
		}
	}
	return out, nil
}
