// SPDX-License-Identifier: MIT
// Package matrix: adjacency spectrum.
//
// Contract:
//   - Eigenvalues are grouped when they lie within eps of the group's first
//     member (values sorted descending), then snapped to integers with
//     numeric.Round. A group whose mean is not within eps of an integer is an
//     error, never a silent rounding.
//   - VerifyTrace checks Σ mult = n, Σ λ·mult = tr(A) and Σ λ²·mult = tr(A²).

package matrix

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/w33/numeric"
	"github.com/katalvlaran/w33/srg"
)

// Eigenvalue is one distinct integer eigenvalue with its multiplicity.
type Eigenvalue struct {
	Value        int `json:"value" yaml:"value"`
	Multiplicity int `json:"multiplicity" yaml:"multiplicity"`
}

// String renders "value^mult".
func (e Eigenvalue) String() string { return fmt.Sprintf("%d^%d", e.Value, e.Multiplicity) }

// W33Spectrum is the spectrum of SRG(40,12,2,4): 12 once, 2 with
// multiplicity 24, −4 with multiplicity 15.
var W33Spectrum = []Eigenvalue{{12, 1}, {2, 24}, {-4, 15}}

// SpectrumOptions configures SpectrumOf.
type SpectrumOptions struct {
	JacobiTol float64 // Jacobi convergence threshold
	MaxIter   int     // Jacobi rotation cap
	GroupEps  float64 // eigenvalue grouping and integer snapping
}

// SpectrumOption mutates SpectrumOptions.
type SpectrumOption func(*SpectrumOptions)

// DefaultSpectrumOptions returns JacobiEps, DefaultMaxIter and SpectrumEps.
func DefaultSpectrumOptions() SpectrumOptions {
	return SpectrumOptions{
		JacobiTol: numeric.JacobiEps,
		MaxIter:   DefaultMaxIter,
		GroupEps:  numeric.SpectrumEps,
	}
}

// WithJacobiTolerance sets the Jacobi convergence threshold.
// Panics if eps is not a positive finite number.
func WithJacobiTolerance(eps float64) SpectrumOption {
	if !numeric.ValidTolerance(eps) {
		panic(fmt.Sprintf("WithJacobiTolerance(%g): must be positive and finite", eps))
	}
	return func(o *SpectrumOptions) { o.JacobiTol = eps }
}

// WithMaxIterations sets the Jacobi rotation cap. Panics if n <= 0.
func WithMaxIterations(n int) SpectrumOption {
	if n <= 0 {
		panic(fmt.Sprintf("WithMaxIterations(%d): must be > 0", n))
	}
	return func(o *SpectrumOptions) { o.MaxIter = n }
}

// WithGroupingTolerance sets the eigenvalue grouping threshold.
// Panics if eps is not a positive finite number.
func WithGroupingTolerance(eps float64) SpectrumOption {
	if !numeric.ValidTolerance(eps) {
		panic(fmt.Sprintf("WithGroupingTolerance(%g): must be positive and finite", eps))
	}
	return func(o *SpectrumOptions) { o.GroupEps = eps }
}

// Spectrum groups raw eigenvalues into distinct integer values, sorted
// descending.
//
// Errors: ErrSpectrumMismatch wrapping numeric.ErrToleranceExceeded when a
// group is not integral within eps.
// Complexity: O(n log n).
func Spectrum(values []float64, eps float64) ([]Eigenvalue, error) {
	sorted := append([]float64(nil), values...)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	var out []Eigenvalue
	for i := 0; i < len(sorted); {
		j, sum := i, 0.0
		for j < len(sorted) && math.Abs(sorted[j]-sorted[i]) <= eps {
			sum += sorted[j]
			j++
		}
		v, err := numeric.Round(sum/float64(j-i), eps)
		if err != nil {
			return nil, matrixErrorf(opSpectrum, fmt.Errorf("%w: %w", ErrSpectrumMismatch, err))
		}
		out = append(out, Eigenvalue{Value: v, Multiplicity: j - i})
		i = j
	}
	return out, nil
}

// SpectrumOf diagonalizes the adjacency matrix of a and groups the result.
func SpectrumOf(a *srg.Adjacency, opts ...SpectrumOption) ([]Eigenvalue, error) {
	o := DefaultSpectrumOptions()
	for _, fn := range opts {
		fn(&o)
	}
	m, err := FromAdjacency(a)
	if err != nil {
		return nil, matrixErrorf(opSpectrum, err)
	}
	values, _, err := Eigen(m, o.JacobiTol, o.MaxIter)
	if err != nil {
		return nil, matrixErrorf(opSpectrum, err)
	}
	return Spectrum(values, o.GroupEps)
}

// VerifySpectrum reports ErrSpectrumMismatch unless got equals want entry by
// entry.
func VerifySpectrum(got, want []Eigenvalue) error {
	if len(got) != len(want) {
		return fmt.Errorf("got %v, want %v: %w", got, want, ErrSpectrumMismatch)
	}
	for i := range got {
		if got[i] != want[i] {
			return fmt.Errorf("got %v, want %v: %w", got, want, ErrSpectrumMismatch)
		}
	}
	return nil
}

// VerifyTrace checks the spectrum against the first two closed-walk traces of m.
func VerifyTrace(spec []Eigenvalue, m *Dense) error {
	traces, err := WalkTraces(m, 2)
	if err != nil {
		return err
	}
	var count, first, second int
	for _, e := range spec {
		count += e.Multiplicity
		first += e.Value * e.Multiplicity
		second += e.Value * e.Value * e.Multiplicity
	}
	if count != m.r {
		return fmt.Errorf("multiplicities sum to %d, want %d: %w", count, m.r, ErrSpectrumMismatch)
	}
	if float64(first) != traces[0] {
		return fmt.Errorf("Σλ = %d, tr(A) = %g: %w", first, traces[0], ErrSpectrumMismatch)
	}
	if float64(second) != traces[1] {
		return fmt.Errorf("Σλ² = %d, tr(A²) = %g: %w", second, traces[1], ErrSpectrumMismatch)
	}
	return nil
}
