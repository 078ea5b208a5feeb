// SPDX-License-Identifier: MIT
// Package: w33/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"github.com/katalvlaran/w33/gf3"
	"github.com/katalvlaran/w33/numeric"
	"github.com/katalvlaran/w33/witting"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithTolerance sets the orthogonality cutoff used by Witting().
// Panics unless eps is finite and positive.
func WithTolerance(eps numeric.Tolerance) BuilderOption {
	if !numeric.ValidTolerance(eps) {
		panic("builder: WithTolerance(eps<=0 or non-finite)")
	}
	return func(c *builderConfig) {
		c.eps = eps
	}
}

// WithPoints supplies the point set for Symplectic() instead of enumerating
// PG(3,3). The slice is copied. It is validated at construction time so that
// a bad set surfaces as ErrOptionViolation rather than a panic.
func WithPoints(points []gf3.Point) BuilderOption {
	cp := append([]gf3.Point(nil), points...)
	return func(c *builderConfig) {
		c.points = cp
	}
}

// WithStates supplies the state set for Witting() instead of constructing
// it. The slice is copied; a bad set surfaces as ErrOptionViolation.
func WithStates(states []witting.Vector) BuilderOption {
	cp := append([]witting.Vector(nil), states...)
	return func(c *builderConfig) {
		c.states = cp
	}
}
