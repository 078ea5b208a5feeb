// SPDX-License-Identifier: MIT
// Package: w33/builder
//
// impl_witting.go - implementation of Witting() constructor.
//
// Contract:
//   • Vertices are the 40 Witting states in canonical order (or the WithStates
//     order), IDs via cfg.idFn(i).
//   • Edge {i,j} for i<j iff |<s_i,s_j>|² < cfg.eps.
//   • Before any edge is emitted, every non-orthogonal pair is checked to have
//     overlap 1/3; a violation fails with ErrConstructFailed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/w33/core"
	"github.com/katalvlaran/w33/witting"
)

const methodWitting = "Witting"

// Witting returns a Constructor that builds the orthogonality graph of the
// 40 Witting states.
func Witting() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireSimple(g, methodWitting); err != nil {
			return err
		}
		states, err := resolveStates(cfg)
		if err != nil {
			return err
		}
		if err = witting.VerifyOverlaps(states, cfg.eps); err != nil {
			return fmt.Errorf("%s: %w: %w", methodWitting, ErrConstructFailed, err)
		}

		ids, err := addIndexedVertices(g, methodWitting, len(states), cfg,
			func(i int) string { return states[i].String() })
		if err != nil {
			return err
		}

		return addPairs(g, methodWitting, ids, func(i, j int) bool {
			return witting.Orthogonal(states[i], states[j], cfg.eps)
		})
	}
}

// resolveStates returns cfg.states after validation, or the canonical states.
func resolveStates(cfg builderConfig) ([]witting.Vector, error) {
	if cfg.states == nil {
		states, err := witting.States()
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", methodWitting, ErrConstructFailed, err)
		}
		return states, nil
	}
	if err := witting.Validate(cfg.states); err != nil {
		return nil, fmt.Errorf("%s: WithStates: %w: %w", methodWitting, ErrOptionViolation, err)
	}
	return cfg.states, nil
}
