// SPDX-License-Identifier: MIT
// Package witting builds the 40 Witting states: unit vectors in C^4 whose
// exact-orthogonality graph is the symplectic polar graph W(3,3).
//
// The set consists of the four standard basis vectors followed by, for each
// (μ,ν) ∈ {0,1,2}² in row-major order, the four vectors
//
//	(0, 1, -ω^μ,  ω^ν)/√3
//	(1, 0, -ω^μ, -ω^ν)/√3
//	(1, -ω^μ, 0,  ω^ν)/√3
//	(1,  ω^μ, ω^ν, 0)/√3
//
// with ω = e^{2πi/3}. Any two distinct states are either orthogonal or have
// overlap |<u,v>|² = 1/3 exactly.
package witting

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/w33/numeric"
)

// Dim is the dimension of the ambient space C^4.
const Dim = 4

// NumStates is the number of Witting states.
const NumStates = 40

// Overlap of two distinct non-orthogonal states.
const NonOrthogonalOverlap = 1.0 / 3.0

// Omega is the primitive cube root of unity e^{2πi/3}.
var Omega = cmplx.Exp(complex(0, 2*math.Pi/3))

var (
	// ErrConstruction reports that the state family did not yield 40
	// distinct unit vectors.
	ErrConstruction = errors.New("witting: state construction failed")

	// ErrOverlap reports a non-orthogonal pair whose overlap is not 1/3.
	ErrOverlap = errors.New("witting: overlap invariant violated")
)

// Vector is a state in C^4.
type Vector [Dim]complex128

// Inner returns <u,v> = Σ conj(u_i)·v_i.
func Inner(u, v Vector) complex128 {
	var s complex128
	for i := 0; i < Dim; i++ {
		s += cmplx.Conj(u[i]) * v[i]
	}
	return s
}

// Overlap returns |<u,v>|².
func Overlap(u, v Vector) float64 {
	ip := Inner(u, v)
	return real(ip)*real(ip) + imag(ip)*imag(ip)
}

// Orthogonal reports |<u,v>|² < eps.
func Orthogonal(u, v Vector, eps numeric.Tolerance) bool {
	return numeric.IsZero(Overlap(u, v), eps)
}

// Norm returns the Euclidean norm of v.
func (v Vector) Norm() float64 {
	return math.Sqrt(real(Inner(v, v)))
}

// Equal reports componentwise equality within eps.
func (v Vector) Equal(w Vector, eps numeric.Tolerance) bool {
	for i := 0; i < Dim; i++ {
		if !numeric.CloseComplex(v[i], w[i], eps) {
			return false
		}
	}
	return true
}

// String renders the vector with 4 decimals per component.
func (v Vector) String() string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f, %.4f)", v[0], v[1], v[2], v[3])
}

// omegaPow returns ω^k for k ∈ {0,1,2}; exact for k = 0.
func omegaPow(k int) complex128 {
	if k%3 == 0 {
		return 1
	}
	return cmplx.Pow(Omega, complex(float64(k%3), 0))
}

// States returns the 40 Witting states in their canonical order.
func States() ([]Vector, error) {
	states := make([]Vector, 0, NumStates)
	for i := 0; i < Dim; i++ {
		var e Vector
		e[i] = 1
		states = append(states, e)
	}

	s := complex(1/math.Sqrt(3), 0)
	for mu := 0; mu < 3; mu++ {
		wm := omegaPow(mu)
		for nu := 0; nu < 3; nu++ {
			wn := omegaPow(nu)
			states = append(states,
				Vector{0, s, -wm * s, wn * s},
				Vector{s, 0, -wm * s, -wn * s},
				Vector{s, -wm * s, 0, wn * s},
				Vector{s, wm * s, wn * s, 0},
			)
		}
	}

	if err := Validate(states); err != nil {
		return nil, err
	}
	return states, nil
}

// Validate checks that states are 40 pairwise-distinct unit vectors.
// Failures wrap ErrConstruction.
func Validate(states []Vector) error {
	if len(states) != NumStates {
		return fmt.Errorf("got %d states, want %d: %w", len(states), NumStates, ErrConstruction)
	}
	for i, v := range states {
		if !numeric.Close(v.Norm(), 1, numeric.OverlapEps) {
			return fmt.Errorf("state %d has norm %.12g: %w", i, v.Norm(), ErrConstruction)
		}
		for j := 0; j < i; j++ {
			// Unit vectors differing only by a phase are the same state.
			if numeric.Close(Overlap(states[j], v), 1, numeric.OverlapEps) {
				return fmt.Errorf("states %d and %d coincide: %w", j, i, ErrConstruction)
			}
		}
	}
	return nil
}

// VerifyOverlaps checks that every pair of distinct states is either
// orthogonal (overlap < orthEps) or has overlap 1/3 within numeric.OverlapEps.
func VerifyOverlaps(states []Vector, orthEps numeric.Tolerance) error {
	for i := range states {
		for j := i + 1; j < len(states); j++ {
			ov := Overlap(states[i], states[j])
			if numeric.IsZero(ov, orthEps) {
				continue
			}
			if err := numeric.Check(fmt.Sprintf("overlap(%d,%d)", i, j), ov, NonOrthogonalOverlap, numeric.OverlapEps); err != nil {
				return fmt.Errorf("%w: %w", ErrOverlap, err)
			}
		}
	}
	return nil
}
