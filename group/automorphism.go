// SPDX-License-Identifier: MIT
// Package: w33/group
//
// automorphism.go - adjacency preservation and matrix-induced permutations.

package group

import (
	"fmt"

	"github.com/katalvlaran/w33/gf3"
	"github.com/katalvlaran/w33/srg"
)

// IsAutomorphism reports whether p is a permutation of a's vertices with
// a(i,j) == a(p[i],p[j]) for all pairs.
func IsAutomorphism(a *srg.Adjacency, p Perm) bool {
	if len(p) != a.N() || p.Validate() != nil {
		return false
	}
	for i := 0; i < a.N(); i++ {
		for j := i + 1; j < a.N(); j++ {
			if a.Adjacent(i, j) != a.Adjacent(p[i], p[j]) {
				return false
			}
		}
	}
	return true
}

// VerifyAutomorphisms returns an error naming the first generator that is not
// an automorphism of a.
func VerifyAutomorphisms(a *srg.Adjacency, gens []Perm) error {
	if err := validateAll(a.N(), gens); err != nil {
		return err
	}
	for i, g := range gens {
		if !IsAutomorphism(a, g) {
			return fmt.Errorf("generator %d %v: %w", i, g, ErrNotAutomorphism)
		}
	}
	return nil
}

// FromMatrices returns the permutation of point indices induced by each
// matrix: p[i] is the index of mats[k]·points[i].
//
// Errors:
//   - gf3.ErrNotSimilitude if a matrix does not scale the symplectic form.
//   - ErrNotPermutation if an image falls outside points or two points collide.
func FromMatrices(points []gf3.Point, mats []gf3.Matrix) ([]Perm, error) {
	index := gf3.Index(points)
	out := make([]Perm, 0, len(mats))
	for k, m := range mats {
		if _, err := m.Multiplier(); err != nil {
			return nil, fmt.Errorf("matrix %d: %w", k, err)
		}
		p := make(Perm, len(points))
		for i, x := range points {
			y, ok := m.Apply(x)
			if !ok {
				return nil, fmt.Errorf("matrix %d sends %v to zero: %w", k, x, ErrNotPermutation)
			}
			j, found := index[y]
			if !found {
				return nil, fmt.Errorf("matrix %d sends %v to %v outside the point set: %w", k, x, y, ErrNotPermutation)
			}
			p[i] = j
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("matrix %d: %w", k, err)
		}
		out = append(out, p)
	}
	return out, nil
}
