// SPDX-License-Identifier: MIT
// Package: w33
//
// build.go - the construction pipeline.
//
// Stages run in a fixed order, single-threaded; ctx is checked before each.
// Every stage either completes its verification or fails the whole build: a
// Configuration is never returned partially filled.

package w33

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/w33/builder"
	"github.com/katalvlaran/w33/clique"
	"github.com/katalvlaran/w33/gf3"
	"github.com/katalvlaran/w33/group"
	"github.com/katalvlaran/w33/matrix"
	"github.com/katalvlaran/w33/srg"
	"github.com/katalvlaran/w33/witting"
)

// Stage names, as they appear in errors and log entries.
const (
	StagePoints        = "points"
	StageSymplectic    = "symplectic"
	StageWitting       = "witting"
	StageIsomorphism   = "isomorphism"
	StageLines         = "lines"
	StageSubstructures = "substructures"
	StageSpectrum      = "spectrum"
	StageGroup         = "group"
)

// walkDepth is the highest power whose closed-walk trace is recorded.
const walkDepth = 3

type stage struct {
	name string
	run  func() error
}

// Build constructs and verifies both realizations of W(3,3) and derives
// everything exposed by Configuration.
//
// Errors keep their package sentinels (errors.Is works through the stage
// wrapping): srg.ErrInvariantViolation, srg.ErrIsomorphismMismatch,
// clique.ErrNotClique, clique.ErrLineIncidence, clique.ErrK4Duality,
// matrix.ErrSpectrumMismatch, matrix.ErrMatrixEigenFailed,
// group.ErrNotAutomorphism, group.ErrOrderMismatch, builder.ErrConstructFailed
// and ctx.Err().
func Build(ctx context.Context, opts ...Option) (*Configuration, error) {
	o := newOptions(opts...)
	c := &Configuration{}
	log := o.logger.Named("w33")

	stages := []stage{
		{StagePoints, c.buildPoints},
		{StageSymplectic, c.buildSymplectic},
		{StageWitting, func() error { return c.buildWitting(o) }},
		{StageIsomorphism, c.buildIsomorphism},
		{StageLines, c.buildLines},
		{StageSubstructures, func() error { return c.buildSubstructures(o) }},
		{StageSpectrum, func() error { return c.buildSpectrum(o) }},
	}
	if o.group {
		stages = append(stages, stage{StageGroup, c.buildGroup})
	}

	total := time.Now()
	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "w33: before stage %s", s.name)
		}
		start := time.Now()
		if err := s.run(); err != nil {
			log.Debug("stage failed", zap.String("stage", s.name), zap.Error(err))
			return nil, errors.Wrapf(err, "w33: stage %s", s.name)
		}
		log.Debug("stage complete", zap.String("stage", s.name), zap.Duration("elapsed", time.Since(start)))
	}
	log.Debug("build complete", zap.Int("stages", len(stages)), zap.Duration("elapsed", time.Since(total)))
	return c, nil
}

func (c *Configuration) buildPoints() error {
	points, err := gf3.ProjectivePoints()
	if err != nil {
		return err
	}
	c.points = points
	return nil
}

func (c *Configuration) buildSymplectic() error {
	g, err := builder.BuildSymplectic(builder.WithPoints(c.points))
	if err != nil {
		return err
	}
	a, _ := srg.FromGraph(g)
	if err = srg.Verify(a, srg.W33); err != nil {
		return err
	}
	c.symplecticGraph, c.symplectic = g, a
	c.params = srg.W33
	return nil
}

func (c *Configuration) buildWitting(o options) error {
	states, err := witting.States()
	if err != nil {
		return err
	}
	g, err := builder.BuildWitting(builder.WithStates(states), builder.WithTolerance(o.orthEps))
	if err != nil {
		return err
	}
	a, _ := srg.FromGraph(g)
	if err = srg.Verify(a, srg.W33); err != nil {
		return err
	}
	c.states, c.wittingGraph, c.witting = states, g, a
	return nil
}

func (c *Configuration) buildIsomorphism() error {
	p, err := srg.FindIsomorphism(c.symplectic, c.witting)
	if err != nil {
		return err
	}
	if err = srg.VerifyIsomorphism(c.symplectic, c.witting, p); err != nil {
		return err
	}
	c.iso = p
	return nil
}

func (c *Configuration) buildLines() error {
	lines, err := clique.Lines(c.symplectic)
	if err != nil {
		return err
	}
	if err = clique.VerifyLines(c.symplectic, lines, clique.W33Lines); err != nil {
		return err
	}
	wl, err := clique.Lines(c.witting)
	if err != nil {
		return errors.Wrap(err, "witting")
	}
	if err = clique.VerifyLines(c.witting, wl, clique.W33Lines); err != nil {
		return errors.Wrap(err, "witting")
	}
	c.lines = lines
	return nil
}

func (c *Configuration) buildSubstructures(o options) error {
	a := c.symplectic
	c.triangles = clique.Triangles(a)
	c.complementTriangles = clique.TriangleCount(a.Complement())

	bases, err := c.wittingBases(o)
	if err != nil {
		return err
	}
	c.bases = bases

	comps := clique.K4Components(a)
	if err := clique.VerifyK4Duality(a, comps); err != nil {
		return err
	}
	c.k4 = comps
	c.profile = clique.VertexProfile(a, c.lines, comps)
	return nil
}

// wittingBases enumerates the orthonormal tetrads through every state on the
// Witting relation, re-checks each against the state vectors, and relabels
// them into symplectic vertex indices through the isomorphism.
func (c *Configuration) wittingBases(o options) ([][]clique.Basis, error) {
	back := group.Perm(c.iso).Inverse()
	out := make([][]clique.Basis, len(c.iso))
	for v, w := range c.iso {
		tetrads := clique.Bases(c.witting, w)
		mapped := make([]clique.Basis, len(tetrads))
		for k, b := range tetrads {
			if err := c.orthonormal(b, o); err != nil {
				return nil, err
			}
			var m [4]int
			for x, s := range b {
				m[x] = back[s]
			}
			sort.Ints(m[:])
			mapped[k] = clique.Basis(m)
		}
		sort.Slice(mapped, func(i, j int) bool { return basisLess(mapped[i], mapped[j]) })
		out[v] = mapped
	}
	return out, nil
}

// orthonormal checks that the states of b are pairwise orthogonal.
func (c *Configuration) orthonormal(b clique.Basis, o options) error {
	for x := 0; x < 4; x++ {
		for y := x + 1; y < 4; y++ {
			if !witting.Orthogonal(c.states[b[x]], c.states[b[y]], o.orthEps) {
				return fmt.Errorf("basis %v: states %d and %d not orthogonal: %w",
					b, b[x], b[y], witting.ErrOverlap)
			}
		}
	}
	return nil
}

func basisLess(a, b clique.Basis) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func (c *Configuration) buildSpectrum(o options) error {
	m, err := matrix.FromAdjacency(c.symplectic)
	if err != nil {
		return err
	}
	values, _, err := matrix.Eigen(m, o.jacobiEps, o.maxIter)
	if err != nil {
		return err
	}
	spec, err := matrix.Spectrum(values, o.spectrumEps)
	if err != nil {
		return err
	}
	if err = matrix.VerifySpectrum(spec, matrix.W33Spectrum); err != nil {
		return err
	}
	if err = matrix.VerifyTrace(spec, m); err != nil {
		return err
	}
	traces, err := matrix.WalkTraces(m, walkDepth)
	if err != nil {
		return err
	}
	c.spectrum, c.walkTraces = spec, traces
	return nil
}

func (c *Configuration) buildGroup() error {
	gens, err := group.FromMatrices(c.points, gf3.SymplecticGenerators(c.points))
	if err != nil {
		return err
	}
	if err = group.VerifyAutomorphisms(c.symplectic, gens); err != nil {
		return err
	}
	chain, err := group.NewChain(len(c.points), gens)
	if err != nil {
		return err
	}
	if err = chain.VerifyOrder(group.W33Order); err != nil {
		return err
	}
	vertices, err := group.Orbits(len(c.points), gens)
	if err != nil {
		return err
	}
	edges, err := group.EdgeOrbits(c.symplectic, gens)
	if err != nil {
		return err
	}
	nonEdges, err := group.NonEdgeOrbits(c.symplectic, gens)
	if err != nil {
		return err
	}
	c.generators, c.chain = gens, chain
	c.vertexOrbits, c.edgeOrbits, c.nonEdgeOrbits = vertices, edges, nonEdges
	return nil
}
