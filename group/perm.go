// SPDX-License-Identifier: MIT
// Package group works with permutation groups on the vertex indices
// 0..n-1 of a relation: automorphism checks, orbits, and the exact group
// order by a deterministic Schreier–Sims stabilizer chain.
//
// Convention: permutations act on the right. p.Apply(x) = p[x] and
// Compose(p, q) applies p first, then q.
package group

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotPermutation reports a slice that is not a bijection of 0..n-1.
	ErrNotPermutation = errors.New("group: not a permutation")

	// ErrDegreeMismatch reports permutations of different degrees in one call.
	ErrDegreeMismatch = errors.New("group: permutation degree mismatch")

	// ErrNotAutomorphism reports a permutation that does not preserve adjacency.
	ErrNotAutomorphism = errors.New("group: permutation is not an automorphism")

	// ErrOrderMismatch reports a generated group of unexpected order.
	ErrOrderMismatch = errors.New("group: group order mismatch")
)

// Perm is a permutation of 0..len(p)-1.
type Perm []int

// Identity returns the identity on n points.
func Identity(n int) Perm {
	p := make(Perm, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// Validate reports ErrNotPermutation unless p is a bijection.
func (p Perm) Validate() error {
	seen := make([]bool, len(p))
	for i, x := range p {
		if x < 0 || x >= len(p) || seen[x] {
			return fmt.Errorf("p[%d] = %d: %w", i, x, ErrNotPermutation)
		}
		seen[x] = true
	}
	return nil
}

// Apply returns the image of x.
func (p Perm) Apply(x int) int { return p[x] }

// Compose returns p then q: x ↦ q[p[x]]. Both must have the same degree.
func Compose(p, q Perm) Perm {
	r := make(Perm, len(p))
	for x, y := range p {
		r[x] = q[y]
	}
	return r
}

// Inverse returns p⁻¹.
func (p Perm) Inverse() Perm {
	r := make(Perm, len(p))
	for x, y := range p {
		r[y] = x
	}
	return r
}

// IsIdentity reports whether p fixes every point.
func (p Perm) IsIdentity() bool {
	for x, y := range p {
		if x != y {
			return false
		}
	}
	return true
}

// Equal reports whether p and q are the same permutation.
func (p Perm) Equal(q Perm) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// firstMoved returns the smallest x with p[x] != x, or -1.
func (p Perm) firstMoved() int {
	for x, y := range p {
		if x != y {
			return x
		}
	}
	return -1
}

// String renders p in cycle notation, e.g. "(0 2 1)(3 4)"; the identity is "()".
func (p Perm) String() string {
	var sb strings.Builder
	seen := make([]bool, len(p))
	for x := range p {
		if seen[x] || p[x] == x {
			continue
		}
		sb.WriteString("(")
		for y := x; !seen[y]; y = p[y] {
			if y != x {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "%d", y)
			seen[y] = true
		}
		sb.WriteString(")")
	}
	if sb.Len() == 0 {
		return "()"
	}
	return sb.String()
}

// validateAll checks that every generator is a permutation of degree n.
func validateAll(n int, gens []Perm) error {
	for i, g := range gens {
		if len(g) != n {
			return fmt.Errorf("generator %d has degree %d, want %d: %w", i, len(g), n, ErrDegreeMismatch)
		}
		if err := g.Validate(); err != nil {
			return fmt.Errorf("generator %d: %w", i, err)
		}
	}
	return nil
}
