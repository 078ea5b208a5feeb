// SPDX-License-Identifier: MIT
// Package: w33/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • idFn   = DefaultIDFn                ("0","1","2",...)
//   • eps    = numeric.OrthogonalityEps   (Witting orthogonality cutoff)
//   • points = nil                        (enumerate PG(3,3) on demand)
//   • states = nil                        (construct Witting states on demand)

package builder

import (
	"github.com/katalvlaran/w33/gf3"
	"github.com/katalvlaran/w33/numeric"
	"github.com/katalvlaran/w33/witting"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn func(int) string

	// Orthogonality tolerance for Witting(): |<u,v>|² < eps ⇒ adjacent.
	eps numeric.Tolerance

	// Optional pre-built point set for Symplectic(); nil ⇒ gf3.ProjectivePoints.
	points []gf3.Point

	// Optional pre-built states for Witting(); nil ⇒ witting.States.
	states []witting.Vector
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: DefaultIDFn,
		eps:  numeric.OrthogonalityEps,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
