// SPDX-License-Identifier: MIT
// Package numeric centralizes floating-point tolerance policy.
//
// Every approximate comparison in this module (orthogonality of Witting
// states, overlap magnitudes, Jacobi convergence, eigenvalue grouping) goes
// through the helpers below. Values within eps are equal; values outside are
// a hard failure surfaced as ErrToleranceExceeded. Nothing is silently rounded.
package numeric

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// Tolerance is an absolute epsilon for float comparisons.
type Tolerance = float64

// Default tolerances, ordered by the amount of accumulated arithmetic behind
// the value being compared.
const (
	// OrthogonalityEps bounds |<u,v>|^2 for two states to count as orthogonal.
	OrthogonalityEps Tolerance = 1e-10

	// OverlapEps bounds deviations of unit norms and of the 1/3 overlap.
	OverlapEps Tolerance = 1e-8

	// JacobiEps is the off-diagonal convergence threshold for Eigen.
	JacobiEps Tolerance = 1e-10

	// SpectrumEps bounds eigenvalue deviations from their integer values.
	SpectrumEps Tolerance = 1e-6
)

// ErrToleranceExceeded reports a value outside its allowed tolerance.
var ErrToleranceExceeded = errors.New("numeric: value outside tolerance")

// ErrBadTolerance reports a non-positive or non-finite epsilon.
var ErrBadTolerance = errors.New("numeric: tolerance must be finite and > 0")

// ValidTolerance reports whether eps can be used as a tolerance.
func ValidTolerance(eps Tolerance) bool {
	return eps > 0 && !math.IsInf(eps, 0) && !math.IsNaN(eps)
}

// IsZero reports |x| < eps.
func IsZero(x float64, eps Tolerance) bool {
	return math.Abs(x) < eps
}

// Close reports |a-b| <= eps.
func Close(a, b float64, eps Tolerance) bool {
	return math.Abs(a-b) <= eps
}

// CloseComplex reports |a-b| <= eps.
func CloseComplex(a, b complex128, eps Tolerance) bool {
	return cmplx.Abs(a-b) <= eps
}

// Check returns nil when got is within eps of want, and an error wrapping
// ErrToleranceExceeded that names the quantity otherwise.
func Check(name string, got, want float64, eps Tolerance) error {
	if math.IsNaN(got) || !Close(got, want, eps) {
		return fmt.Errorf("%s: got %.12g, want %.12g (eps %g): %w", name, got, want, eps, ErrToleranceExceeded)
	}
	return nil
}

// Round snaps x to the nearest integer when it lies within eps of it.
func Round(x float64, eps Tolerance) (int, error) {
	r := math.Round(x)
	if !Close(x, r, eps) {
		return 0, fmt.Errorf("round %.12g: nearest integer %.0f is farther than %g: %w", x, r, eps, ErrToleranceExceeded)
	}
	return int(r), nil
}
