// SPDX-License-Identifier: MIT
// Package: w33/srg
//
// isomorphism.go - explicit relabeling between two relations.
//
// Search:
//   • Vertices of a are placed in BFS order from 0 (remaining components are
//     appended in index order), so every placed vertex after the first in its
//     component already has a placed neighbor.
//   • A candidate c for vertex u must have deg_b(c) = deg_a(u) and agree on
//     adjacency with every previously placed vertex. This prunes the 40-vertex
//     symplectic/Witting pair to a few hundred calls.
//   • Candidate order is ascending, so the returned relabeling is deterministic.

package srg

import (
	"fmt"
	"sort"
)

// FindIsomorphism returns p with a(i,j) == b(p[i],p[j]) for all i,j.
//
// Errors: ErrIsomorphismMismatch when orders, edge counts or degree sequences
// differ, or when the search is exhausted.
func FindIsomorphism(a, b *Adjacency) ([]int, error) {
	if a.n != b.n {
		return nil, fmt.Errorf("orders %d and %d differ: %w", a.n, b.n, ErrIsomorphismMismatch)
	}
	if ea, eb := a.EdgeCount(), b.EdgeCount(); ea != eb {
		return nil, fmt.Errorf("edge counts %d and %d differ: %w", ea, eb, ErrIsomorphismMismatch)
	}
	if !sameDegrees(a, b) {
		return nil, fmt.Errorf("degree sequences differ: %w", ErrIsomorphismMismatch)
	}

	s := &isoSearch{
		a:     a,
		b:     b,
		order: bfsOrder(a),
		p:     make([]int, a.n),
		used:  NewBits(a.n),
	}
	for i := range s.p {
		s.p[i] = -1
	}
	if !s.place(0) {
		return nil, fmt.Errorf("no relabeling after %d placements: %w", s.calls, ErrIsomorphismMismatch)
	}
	return s.p, nil
}

// VerifyIsomorphism checks that p maps a onto b exactly.
func VerifyIsomorphism(a, b *Adjacency, p []int) error {
	if a.n != b.n {
		return fmt.Errorf("orders %d and %d differ: %w", a.n, b.n, ErrIsomorphismMismatch)
	}
	if err := validatePerm(a.n, p); err != nil {
		return err
	}
	for i := 0; i < a.n; i++ {
		for j := i + 1; j < a.n; j++ {
			if a.Adjacent(i, j) != b.Adjacent(p[i], p[j]) {
				return fmt.Errorf("pair (%d,%d) maps to (%d,%d) with different adjacency: %w",
					i, j, p[i], p[j], ErrIsomorphismMismatch)
			}
		}
	}
	return nil
}

// sameDegrees compares sorted degree sequences.
func sameDegrees(a, b *Adjacency) bool {
	da, db := make([]int, a.n), make([]int, b.n)
	for i := 0; i < a.n; i++ {
		da[i], db[i] = a.Degree(i), b.Degree(i)
	}
	sort.Ints(da)
	sort.Ints(db)
	for i := range da {
		if da[i] != db[i] {
			return false
		}
	}
	return true
}

// bfsOrder lists all vertices of a, component by component, in BFS order.
func bfsOrder(a *Adjacency) []int {
	order := make([]int, 0, a.n)
	seen := NewBits(a.n)
	for root := 0; root < a.n; root++ {
		if seen.Has(root) {
			continue
		}
		seen.Set(root)
		order = append(order, root)
		// order doubles as the queue: everything past head is pending.
		for head := len(order) - 1; head < len(order); head++ {
			for _, v := range a.Neighbors(order[head]) {
				if !seen.Has(v) {
					seen.Set(v)
					order = append(order, v)
				}
			}
		}
	}
	return order
}

type isoSearch struct {
	a, b  *Adjacency
	order []int
	p     []int
	used  Bits
	calls int
}

// place assigns order[k..] recursively; p and used are restored on failure.
func (s *isoSearch) place(k int) bool {
	s.calls++
	if k == len(s.order) {
		return true
	}
	u := s.order[k]
	du := s.a.Degree(u)
	for c := 0; c < s.b.n; c++ {
		if s.used.Has(c) || s.b.Degree(c) != du || !s.consistent(k, u, c) {
			continue
		}
		s.p[u] = c
		s.used.Set(c)
		if s.place(k + 1) {
			return true
		}
		s.used.Clear(c)
		s.p[u] = -1
	}
	return false
}

// consistent reports whether u ↦ c agrees with every vertex placed before k.
func (s *isoSearch) consistent(k, u, c int) bool {
	for _, w := range s.order[:k] {
		if s.a.Adjacent(u, w) != s.b.Adjacent(c, s.p[w]) {
			return false
		}
	}
	return true
}
