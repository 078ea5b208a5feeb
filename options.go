// SPDX-License-Identifier: MIT
// Package: w33
//
// options.go - functional options for Build.
//
// Deterministic defaults:
//   • orthogonality = numeric.OrthogonalityEps
//   • jacobi        = numeric.JacobiEps
//   • spectrum      = numeric.SpectrumEps
//   • maxIter       = matrix.DefaultMaxIter
//   • logger        = zap.NewNop()
//   • group stage   = enabled
//
// Option constructors panic on nonsense arguments; Build itself never panics.

package w33

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/w33/matrix"
	"github.com/katalvlaran/w33/numeric"
)

// Option configures Build.
type Option func(*options)

type options struct {
	orthEps     numeric.Tolerance
	jacobiEps   numeric.Tolerance
	spectrumEps numeric.Tolerance
	maxIter     int
	logger      *zap.Logger
	group       bool
}

func newOptions(opts ...Option) options {
	o := options{
		orthEps:     numeric.OrthogonalityEps,
		jacobiEps:   numeric.JacobiEps,
		spectrumEps: numeric.SpectrumEps,
		maxIter:     matrix.DefaultMaxIter,
		logger:      zap.NewNop(),
		group:       true,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func mustTolerance(name string, eps numeric.Tolerance) {
	if !numeric.ValidTolerance(eps) {
		panic(fmt.Sprintf("%s(%g): tolerance must be positive and finite", name, eps))
	}
}

// WithTolerance sets the Witting orthogonality cutoff |<u,v>|² < eps.
func WithTolerance(eps numeric.Tolerance) Option {
	mustTolerance("WithTolerance", eps)
	return func(o *options) { o.orthEps = eps }
}

// WithJacobiTolerance sets the eigen solver convergence threshold.
func WithJacobiTolerance(eps numeric.Tolerance) Option {
	mustTolerance("WithJacobiTolerance", eps)
	return func(o *options) { o.jacobiEps = eps }
}

// WithSpectrumTolerance sets the eigenvalue grouping threshold.
func WithSpectrumTolerance(eps numeric.Tolerance) Option {
	mustTolerance("WithSpectrumTolerance", eps)
	return func(o *options) { o.spectrumEps = eps }
}

// WithEigenIterations caps Jacobi rotations. Panics if n <= 0.
func WithEigenIterations(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("WithEigenIterations(%d): must be > 0", n))
	}
	return func(o *options) { o.maxIter = n }
}

// WithLogger receives stage timings at debug level. nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithoutGroup skips the automorphism stage; GroupOrder then returns nil.
func WithoutGroup() Option {
	return func(o *options) { o.group = false }
}
