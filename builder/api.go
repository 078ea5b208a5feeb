// SPDX-License-Identifier: MIT
// Package: w33/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/w33/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect core graph mode flags (loops/multigraph).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is against
//     builder sentinels (ErrTooFewVertices, ErrConstructFailed, ...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Symplectic() builds W(3,3) on the 40 points of PG(3,3) (impl_symplectic.go).
// Witting() builds the orthogonality graph of the 40 Witting states (impl_witting.go).
// Complete(n) builds K_n (impl_complete.go).
// Cycle(n) builds C_n (impl_cycle.go).

// BuildSymplectic is a shortcut for BuildGraph(nil, opts, Symplectic()).
func BuildSymplectic(opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(nil, opts, Symplectic())
}

// BuildWitting is a shortcut for BuildGraph(nil, opts, Witting()).
func BuildWitting(opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(nil, opts, Witting())
}
