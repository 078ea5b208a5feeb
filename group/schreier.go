// SPDX-License-Identifier: MIT
// Package: w33/group
//
// schreier.go - base and strong generating set by deterministic Schreier–Sims.
//
// Structure:
//   • Level i holds base point β_i, the generators stored at i (those fixing
//     β_0..β_{i-1} but not β_i), and a transversal u[y] with β_i^{u[y]} = y for
//     every y in the basic orbit Δ_i. The strong generators of level i are the
//     generators stored at levels ≥ i.
//   • Completion follows the classic loop: walk levels from the deepest up;
//     sift every Schreier generator u_y·s·u_{y^s}⁻¹ of the current level
//     through the levels below it. A non-trivial residue is stored at the
//     level where it dropped out (extending the base if needed) and the walk
//     resumes there.
//   • |G| = Π |Δ_i|.
//
// Complexity: polynomial in n and |gens|; the 40-point W(3,3) case with 41
// generators completes in milliseconds.

package group

import (
	"fmt"
	"math/big"
)

// level is one step of the stabilizer chain.
type level struct {
	base  int
	gens  []Perm // stored here: fix earlier base points, move base
	orbit []int  // Δ in discovery order
	trans []Perm // trans[y] maps base to y; nil outside Δ
}

// Chain is a stabilizer chain G = G_0 ≥ G_1 ≥ ... ≥ G_k = 1.
type Chain struct {
	n      int
	levels []*level
}

// NewChain computes a base and strong generating set for <gens> acting on
// 0..n-1. Identity generators are ignored.
//
// Errors: ErrDegreeMismatch, ErrNotPermutation.
func NewChain(n int, gens []Perm) (*Chain, error) {
	if err := validateAll(n, gens); err != nil {
		return nil, err
	}
	c := &Chain{n: n}
	for _, g := range gens {
		if g.IsIdentity() {
			continue
		}
		c.store(append(Perm(nil), g...))
	}
	for i := range c.levels {
		c.rebuild(i)
	}
	c.complete()
	return c, nil
}

// store places g at the first level whose base point it moves, appending a
// new base point (its first moved point) when it fixes all of them.
// It returns that level.
func (c *Chain) store(g Perm) int {
	j := 0
	for j < len(c.levels) && g[c.levels[j].base] == c.levels[j].base {
		j++
	}
	if j == len(c.levels) {
		c.levels = append(c.levels, &level{base: g.firstMoved()})
	}
	c.levels[j].gens = append(c.levels[j].gens, g)
	return j
}

// strong returns the strong generators of level i.
func (c *Chain) strong(i int) []Perm {
	var out []Perm
	for j := i; j < len(c.levels); j++ {
		out = append(out, c.levels[j].gens...)
	}
	return out
}

// rebuild recomputes Δ_i and its transversal by breadth-first search.
func (c *Chain) rebuild(i int) {
	l := c.levels[i]
	gens := c.strong(i)
	l.trans = make([]Perm, c.n)
	l.trans[l.base] = Identity(c.n)
	l.orbit = []int{l.base}
	for k := 0; k < len(l.orbit); k++ {
		y := l.orbit[k]
		for _, s := range gens {
			if z := s[y]; l.trans[z] == nil {
				l.trans[z] = Compose(l.trans[y], s)
				l.orbit = append(l.orbit, z)
			}
		}
	}
}

// sift strips g through levels from..k-1. It returns the residue and the
// level where it dropped out (k when it passed every level).
func (c *Chain) sift(g Perm, from int) (Perm, int) {
	for i := from; i < len(c.levels); i++ {
		l := c.levels[i]
		u := l.trans[g[l.base]]
		if u == nil {
			return g, i
		}
		g = Compose(g, u.Inverse())
	}
	return g, len(c.levels)
}

// complete runs the Schreier–Sims loop until every Schreier generator sifts
// to the identity.
func (c *Chain) complete() {
	i := len(c.levels) - 1
	for i >= 0 {
		if j, ok := c.checkLevel(i); !ok {
			i = j
			continue
		}
		i--
	}
}

// checkLevel sifts the Schreier generators of level i. On the first
// non-trivial residue it stores it, rebuilds levels 0..j and returns
// (j, false).
func (c *Chain) checkLevel(i int) (int, bool) {
	l := c.levels[i]
	gens := c.strong(i)
	for _, y := range l.orbit {
		uy := l.trans[y]
		for _, s := range gens {
			h := Compose(Compose(uy, s), l.trans[s[y]].Inverse())
			if h.IsIdentity() {
				continue
			}
			r, _ := c.sift(h, i+1)
			if r.IsIdentity() {
				continue
			}
			j := c.store(r)
			for k := 0; k <= j; k++ {
				c.rebuild(k)
			}
			return j, false
		}
	}
	return i, true
}

// Degree returns the number of points acted on.
func (c *Chain) Degree() int { return c.n }

// Base returns the base points β_0..β_{k-1}.
func (c *Chain) Base() []int {
	out := make([]int, len(c.levels))
	for i, l := range c.levels {
		out[i] = l.base
	}
	return out
}

// OrbitSizes returns |Δ_0|..|Δ_{k-1}|.
func (c *Chain) OrbitSizes() []int {
	out := make([]int, len(c.levels))
	for i, l := range c.levels {
		out[i] = len(l.orbit)
	}
	return out
}

// StrongGenerators returns every stored generator, level by level.
func (c *Chain) StrongGenerators() []Perm { return c.strong(0) }

// Order returns Π |Δ_i|.
func (c *Chain) Order() *big.Int {
	order := big.NewInt(1)
	for _, l := range c.levels {
		order.Mul(order, big.NewInt(int64(len(l.orbit))))
	}
	return order
}

// Contains reports whether p lies in the group.
func (c *Chain) Contains(p Perm) bool {
	if len(p) != c.n || p.Validate() != nil {
		return false
	}
	r, _ := c.sift(p, 0)
	return r.IsIdentity()
}

// W33Order is |Aut(W(3,3))| = |PSp(4,3):2| = |W(E6)|.
const W33Order = 51840

// VerifyOrder checks |G| == want.
func (c *Chain) VerifyOrder(want int64) error {
	if got := c.Order(); got.Cmp(big.NewInt(want)) != 0 {
		return fmt.Errorf("VerifyOrder: got %s, want %d: %w", got, want, ErrOrderMismatch)
	}
	return nil
}

// Order returns |<gens>| acting on 0..n-1.
func Order(n int, gens []Perm) (*big.Int, error) {
	c, err := NewChain(n, gens)
	if err != nil {
		return nil, fmt.Errorf("Order: %w", err)
	}
	return c.Order(), nil
}
