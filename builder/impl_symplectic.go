// SPDX-License-Identifier: MIT
// Package: w33/builder
//
// impl_symplectic.go - implementation of Symplectic() constructor.
//
// Contract:
//   • Vertices are the 40 points of PG(3,3) in lexicographic order, IDs via
//     cfg.idFn(i); metadata carries the index and the point rendering.
//   • Edge {i,j} for i<j iff ω(p_i,p_j) = 0.
//   • The graph must be simple (else ErrUnsupportedGraphMode).
//   • WithPoints input must be 40 distinct canonical points (else ErrOptionViolation).
//
// Complexity:
//   • Time: O(40²) form evaluations.

package builder

import (
	"fmt"

	"github.com/katalvlaran/w33/core"
	"github.com/katalvlaran/w33/gf3"
)

const methodSymplectic = "Symplectic"

// Symplectic returns a Constructor that builds the symplectic polar graph W(3,3).
func Symplectic() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireSimple(g, methodSymplectic); err != nil {
			return err
		}
		points, err := resolvePoints(cfg)
		if err != nil {
			return err
		}

		ids, err := addIndexedVertices(g, methodSymplectic, len(points), cfg,
			func(i int) string { return points[i].String() })
		if err != nil {
			return err
		}

		return addPairs(g, methodSymplectic, ids, func(i, j int) bool {
			return gf3.Orthogonal(points[i], points[j])
		})
	}
}

// resolvePoints returns cfg.points when set and valid, otherwise enumerates PG(3,3).
func resolvePoints(cfg builderConfig) ([]gf3.Point, error) {
	if cfg.points == nil {
		points, err := gf3.ProjectivePoints()
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", methodSymplectic, ErrConstructFailed, err)
		}
		return points, nil
	}

	if len(cfg.points) != gf3.NumPoints {
		return nil, fmt.Errorf("%s: WithPoints: got %d points, want %d: %w",
			methodSymplectic, len(cfg.points), gf3.NumPoints, ErrOptionViolation)
	}
	seen := make(map[gf3.Point]struct{}, len(cfg.points))
	for i, p := range cfg.points {
		if !gf3.IsCanonical(p) {
			return nil, fmt.Errorf("%s: WithPoints: point %d %s is not canonical: %w",
				methodSymplectic, i, p, ErrOptionViolation)
		}
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("%s: WithPoints: duplicate point %s: %w", methodSymplectic, p, ErrOptionViolation)
		}
		seen[p] = struct{}{}
	}

	return cfg.points, nil
}
