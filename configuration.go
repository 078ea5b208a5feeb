// SPDX-License-Identifier: MIT
// Package: w33
//
// configuration.go - the immutable result of Build.
//
// Contract:
//   • Every accessor returns a copy (or a fresh clone for graphs), so callers
//     can never mutate the Configuration.
//   • Vertex index i means points[i] in the symplectic realization; the
//     Witting state of the same vertex is States()[Isomorphism()[i]].

package w33

import (
	"math/big"

	"github.com/katalvlaran/w33/clique"
	"github.com/katalvlaran/w33/core"
	"github.com/katalvlaran/w33/gf3"
	"github.com/katalvlaran/w33/group"
	"github.com/katalvlaran/w33/matrix"
	"github.com/katalvlaran/w33/report"
	"github.com/katalvlaran/w33/srg"
	"github.com/katalvlaran/w33/witting"
)

// Configuration holds both verified realizations of W(3,3) and everything
// derived from them.
type Configuration struct {
	points []gf3.Point
	states []witting.Vector

	symplecticGraph *core.Graph
	wittingGraph    *core.Graph
	symplectic      *srg.Adjacency
	witting         *srg.Adjacency
	params          srg.Params
	iso             []int

	lines               []clique.Line
	triangles           []clique.Triangle
	complementTriangles int
	bases               [][]clique.Basis
	k4                  []clique.K4
	profile             []clique.Profile

	spectrum   []matrix.Eigenvalue
	walkTraces []float64

	generators    []group.Perm
	chain         *group.Chain
	vertexOrbits  [][]int
	edgeOrbits    [][][2]int
	nonEdgeOrbits [][][2]int
}

// Points returns the 40 projective points in vertex order.
func (c *Configuration) Points() []gf3.Point { return append([]gf3.Point(nil), c.points...) }

// States returns the 40 Witting vectors in their canonical order.
func (c *Configuration) States() []witting.Vector {
	return append([]witting.Vector(nil), c.states...)
}

// SymplecticGraph returns a clone of the point graph.
func (c *Configuration) SymplecticGraph() *core.Graph { return c.symplecticGraph.Clone() }

// WittingGraph returns a clone of the state orthogonality graph.
func (c *Configuration) WittingGraph() *core.Graph { return c.wittingGraph.Clone() }

// Symplectic returns the point adjacency relation. Adjacency is immutable.
func (c *Configuration) Symplectic() *srg.Adjacency { return c.symplectic }

// Witting returns the state adjacency relation.
func (c *Configuration) Witting() *srg.Adjacency { return c.witting }

// Params returns the verified SRG parameters.
func (c *Configuration) Params() srg.Params { return c.params }

// Isomorphism returns p with symplectic(i,j) == witting(p[i],p[j]).
func (c *Configuration) Isomorphism() []int { return append([]int(nil), c.iso...) }

// Lines returns the 40 lines, sorted.
func (c *Configuration) Lines() []clique.Line { return append([]clique.Line(nil), c.lines...) }

// Triangles returns the 160 triangles, sorted.
func (c *Configuration) Triangles() []clique.Triangle {
	return append([]clique.Triangle(nil), c.triangles...)
}

// ComplementTriangles returns the triangle count of the non-orthogonality graph.
func (c *Configuration) ComplementTriangles() int { return c.complementTriangles }

// Bases returns the orthonormal tetrads through vertex v, or nil when v is out
// of range. They are enumerated among the Witting states and relabeled into
// symplectic vertex indices, so each tetrad lists the i with States()[p[i]]
// mutually orthogonal, p = Isomorphism().
func (c *Configuration) Bases(v int) []clique.Basis {
	if v < 0 || v >= len(c.bases) {
		return nil
	}
	return append([]clique.Basis(nil), c.bases[v]...)
}

// K4Components returns the 90 outer/center components.
func (c *Configuration) K4Components() []clique.K4 { return append([]clique.K4(nil), c.k4...) }

// Profile returns the per-vertex substructure counts.
func (c *Configuration) Profile() []clique.Profile {
	return append([]clique.Profile(nil), c.profile...)
}

// Spectrum returns the grouped adjacency spectrum, largest eigenvalue first.
func (c *Configuration) Spectrum() []matrix.Eigenvalue {
	return append([]matrix.Eigenvalue(nil), c.spectrum...)
}

// WalkTraces returns tr(A), tr(A²), tr(A³).
func (c *Configuration) WalkTraces() []float64 { return append([]float64(nil), c.walkTraces...) }

// Generators returns the automorphism generators as vertex permutations, or
// nil when the group stage was skipped.
func (c *Configuration) Generators() []group.Perm {
	if c.generators == nil {
		return nil
	}
	out := make([]group.Perm, len(c.generators))
	for i, g := range c.generators {
		out[i] = append(group.Perm(nil), g...)
	}
	return out
}

// Chain returns the stabilizer chain, or nil when the group stage was skipped.
func (c *Configuration) Chain() *group.Chain { return c.chain }

// GroupOrder returns the automorphism group order, or nil when the group
// stage was skipped.
func (c *Configuration) GroupOrder() *big.Int {
	if c.chain == nil {
		return nil
	}
	return c.chain.Order()
}

// VertexOrbits returns the orbits of the automorphism group on vertices, or
// nil when the group stage was skipped.
func (c *Configuration) VertexOrbits() [][]int {
	if c.vertexOrbits == nil {
		return nil
	}
	out := make([][]int, len(c.vertexOrbits))
	for i, o := range c.vertexOrbits {
		out[i] = append([]int(nil), o...)
	}
	return out
}

// EdgeOrbits returns the orbits on adjacent pairs, or nil without the group stage.
func (c *Configuration) EdgeOrbits() [][][2]int { return clonePairOrbits(c.edgeOrbits) }

// NonEdgeOrbits returns the orbits on non-adjacent pairs, or nil without the
// group stage.
func (c *Configuration) NonEdgeOrbits() [][][2]int { return clonePairOrbits(c.nonEdgeOrbits) }

func clonePairOrbits(orbits [][][2]int) [][][2]int {
	if orbits == nil {
		return nil
	}
	out := make([][][2]int, len(orbits))
	for i, o := range orbits {
		out[i] = append([][2]int(nil), o...)
	}
	return out
}

// Summary returns the headline counts.
func (c *Configuration) Summary() report.Counts {
	bases := 0
	if len(c.bases) > 0 {
		bases = len(c.bases[0])
	}
	return report.Counts{
		Points:              len(c.points),
		States:              len(c.states),
		Edges:               c.symplectic.EdgeCount(),
		Lines:               len(c.lines),
		Triangles:           len(c.triangles),
		ComplementTriangles: c.complementTriangles,
		BasesPerVertex:      bases,
		K4Components:        len(c.k4),
	}
}

// Report returns the serializable record. detailed adds lines, K4
// components and per-vertex profiles.
func (c *Configuration) Report(name string, detailed bool) *report.Report {
	r := &report.Report{
		Name:        name,
		Params:      c.params,
		Counts:      c.Summary(),
		Spectrum:    c.Spectrum(),
		WalkTraces:  c.WalkTraces(),
		Isomorphism: c.Isomorphism(),
	}
	if c.chain != nil {
		r.Group = &report.Group{
			Generators: len(c.generators),
			Order:      c.chain.Order().String(),
			Base:       c.chain.Base(),
			OrbitSizes: c.chain.OrbitSizes(),

			VertexOrbits:  orbitSizes(len(c.vertexOrbits), func(i int) int { return len(c.vertexOrbits[i]) }),
			EdgeOrbits:    orbitSizes(len(c.edgeOrbits), func(i int) int { return len(c.edgeOrbits[i]) }),
			NonEdgeOrbits: orbitSizes(len(c.nonEdgeOrbits), func(i int) int { return len(c.nonEdgeOrbits[i]) }),
		}
	}
	if detailed {
		r.Lines = c.Lines()
		r.K4 = c.K4Components()
		r.Profile = c.Profile()
	}
	return r
}

func orbitSizes(n int, size func(int) int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = size(i)
	}
	return out
}
