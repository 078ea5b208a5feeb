// SPDX-License-Identifier: MIT
// Package: w33/srg
//
// params.go - strongly regular graph parameters and their verification.
//
// A relation on v vertices is SRG(v,k,λ,μ) when it is symmetric and
// irreflexive, every vertex has k neighbors, adjacent pairs share λ
// neighbors and distinct non-adjacent pairs share μ.

package srg

import (
	"fmt"
)

// Params are the (v,k,λ,μ) of a strongly regular graph.
type Params struct {
	V      int `json:"v" yaml:"v"`
	K      int `json:"k" yaml:"k"`
	Lambda int `json:"lambda" yaml:"lambda"`
	Mu     int `json:"mu" yaml:"mu"`
}

// W33 are the parameters of the symplectic polar graph W(3,3).
var W33 = Params{V: 40, K: 12, Lambda: 2, Mu: 4}

// String renders "SRG(v,k,λ,μ)".
func (p Params) String() string {
	return fmt.Sprintf("SRG(%d,%d,%d,%d)", p.V, p.K, p.Lambda, p.Mu)
}

// Feasible reports the counting identity k(k-λ-1) = (v-k-1)μ that every
// strongly regular graph satisfies.
func (p Params) Feasible() bool {
	return p.K*(p.K-p.Lambda-1) == (p.V-p.K-1)*p.Mu
}

// checkShape verifies irreflexivity and symmetry.
func checkShape(a *Adjacency) error {
	for i := 0; i < a.n; i++ {
		if a.Adjacent(i, i) {
			return &InvariantError{Invariant: InvIrreflexive, I: i, J: i, Got: 1, Want: 0}
		}
		for _, j := range a.rows[i].Members() {
			if !a.Adjacent(j, i) {
				return &InvariantError{Invariant: InvSymmetry, I: i, J: j, Got: 0, Want: 1}
			}
		}
	}
	return nil
}

// Parameters derives (v,k,λ,μ) from a. A relation without non-adjacent
// distinct pairs reports μ = 0; one without edges reports λ = 0.
//
// Errors: an *InvariantError for loops/asymmetry, otherwise
// ErrNotStronglyRegular naming the first inconsistency.
// Complexity: O(n³/64).
func Parameters(a *Adjacency) (Params, error) {
	if a.n == 0 {
		return Params{}, fmt.Errorf("empty relation: %w", ErrNotStronglyRegular)
	}
	if err := checkShape(a); err != nil {
		return Params{}, err
	}

	p := Params{V: a.n, K: a.Degree(0), Lambda: -1, Mu: -1}
	for i := 1; i < a.n; i++ {
		if d := a.Degree(i); d != p.K {
			return Params{}, fmt.Errorf("degree of %d is %d, of 0 is %d: %w", i, d, p.K, ErrNotStronglyRegular)
		}
	}
	for i := 0; i < a.n; i++ {
		for j := i + 1; j < a.n; j++ {
			c := a.CommonNeighbors(i, j)
			slot, name := &p.Mu, "mu"
			if a.Adjacent(i, j) {
				slot, name = &p.Lambda, "lambda"
			}
			if *slot < 0 {
				*slot = c
				continue
			}
			if *slot != c {
				return Params{}, fmt.Errorf("%s not constant: pair (%d,%d) has %d, expected %d: %w",
					name, i, j, c, *slot, ErrNotStronglyRegular)
			}
		}
	}
	if p.Lambda < 0 {
		p.Lambda = 0
	}
	if p.Mu < 0 {
		p.Mu = 0
	}
	return p, nil
}

// Verify checks a against want and returns the first violation as an
// *InvariantError, in the order: order, irreflexivity, symmetry, degree,
// λ over adjacent pairs, μ over non-adjacent pairs.
// Complexity: O(n³/64).
func Verify(a *Adjacency, want Params) error {
	if a.n != want.V {
		return &InvariantError{Invariant: InvOrder, I: -1, J: -1, Got: a.n, Want: want.V}
	}
	if err := checkShape(a); err != nil {
		return err
	}
	for i := 0; i < a.n; i++ {
		if d := a.Degree(i); d != want.K {
			return &InvariantError{Invariant: InvDegree, I: i, J: -1, Got: d, Want: want.K}
		}
	}
	for i := 0; i < a.n; i++ {
		for j := i + 1; j < a.n; j++ {
			c := a.CommonNeighbors(i, j)
			if a.Adjacent(i, j) {
				if c != want.Lambda {
					return &InvariantError{Invariant: InvLambda, I: i, J: j, Got: c, Want: want.Lambda}
				}
			} else if c != want.Mu {
				return &InvariantError{Invariant: InvMu, I: i, J: j, Got: c, Want: want.Mu}
			}
		}
	}
	return nil
}
