package w33_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/w33"
	"github.com/katalvlaran/w33/clique"
	"github.com/katalvlaran/w33/core"
	"github.com/katalvlaran/w33/gf3"
	"github.com/katalvlaran/w33/matrix"
	"github.com/katalvlaran/w33/numeric"
	"github.com/katalvlaran/w33/report"
	"github.com/katalvlaran/w33/srg"
	"github.com/katalvlaran/w33/witting"
)

var (
	sharedOnce sync.Once
	shared     *w33.Configuration
	sharedErr  error
)

// built returns one default Configuration shared by read-only tests.
func built(t *testing.T) *w33.Configuration {
	t.Helper()
	sharedOnce.Do(func() { shared, sharedErr = w33.Build(context.Background()) })
	require.NoError(t, sharedErr)
	return shared
}

func TestBuildSummary(t *testing.T) {
	c := built(t)
	assert.Equal(t, srg.W33, c.Params())
	assert.Equal(t, report.Counts{
		Points: 40, States: 40, Edges: 240, Lines: 40, Triangles: 160,
		ComplementTriangles: 3240, BasesPerVertex: 4, K4Components: 90,
	}, c.Summary())
	assert.Equal(t, matrix.W33Spectrum, c.Spectrum())
	assert.Equal(t, []float64{0, 480, 960}, c.WalkTraces())
	assert.Equal(t, "51840", c.GroupOrder().String())
	assert.Len(t, c.Generators(), 41)
	assert.Equal(t, 3240, c.ComplementTriangles())
}

func TestIsomorphismLinksRealizations(t *testing.T) {
	c := built(t)
	points, states, p := c.Points(), c.States(), c.Isomorphism()
	require.Len(t, p, 40)
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			assert.Equal(t,
				gf3.Orthogonal(points[i], points[j]),
				witting.Orthogonal(states[p[i]], states[p[j]], numeric.OrthogonalityEps),
				"pair (%d,%d)", i, j)
		}
	}
	require.NoError(t, srg.VerifyIsomorphism(c.Symplectic(), c.Witting(), p))
}

func TestWittingGraphCarriesStoredStates(t *testing.T) {
	c := built(t)
	g, states := c.WittingGraph(), c.States()
	require.Equal(t, len(states), g.VertexCount())
	for _, id := range g.Vertices() {
		idx, ok := g.VertexMeta(id, core.MetaIndex)
		require.True(t, ok)
		label, ok := g.VertexMeta(id, core.MetaLabel)
		require.True(t, ok)
		assert.Equal(t, states[idx.(int)].String(), label)
	}
}

func TestDerivedStructures(t *testing.T) {
	c := built(t)
	states, p := c.States(), c.Isomorphism()
	for v := 0; v < 40; v++ {
		bases := c.Bases(v)
		require.Len(t, bases, 4)
		assert.ElementsMatch(t, clique.Bases(c.Symplectic(), v), bases, "vertex %d", v)
		for _, b := range bases {
			for x := 0; x < 4; x++ {
				for y := x + 1; y < 4; y++ {
					assert.True(t, witting.Orthogonal(states[p[b[x]]], states[p[b[y]]], numeric.OrthogonalityEps))
				}
			}
		}
	}
	assert.Nil(t, c.Bases(40))
	assert.Nil(t, c.Bases(-1))

	lines := c.Lines()
	require.Len(t, lines, 40)
	require.NoError(t, clique.VerifyLines(c.Symplectic(), lines, clique.W33Lines))
	require.NoError(t, clique.VerifyK4Duality(c.Symplectic(), c.K4Components()))
	assert.Len(t, c.Triangles(), 160)

	for _, prof := range c.Profile() {
		assert.Equal(t, 4, prof.Lines)
		assert.Equal(t, 12, prof.Triangles)
		assert.Equal(t, 9, prof.K4Outer)
	}

	vertices := c.VertexOrbits()
	require.Len(t, vertices, 1)
	assert.Len(t, vertices[0], 40)
	edges := c.EdgeOrbits()
	require.Len(t, edges, 1)
	assert.Len(t, edges[0], 240)
	nonEdges := c.NonEdgeOrbits()
	require.Len(t, nonEdges, 1)
	assert.Len(t, nonEdges[0], 540)

	chain := c.Chain()
	require.NotNil(t, chain)
	for _, g := range c.Generators() {
		assert.True(t, chain.Contains(g))
	}
}

func TestAccessorsCopy(t *testing.T) {
	c := built(t)
	lines := c.Lines()
	lines[0] = clique.Line{}
	assert.NotEqual(t, clique.Line{}, c.Lines()[0])

	iso := c.Isomorphism()
	iso[0] = -1
	assert.NotEqual(t, -1, c.Isomorphism()[0])

	gens := c.Generators()
	gens[0][0] = -1
	assert.NotEqual(t, -1, c.Generators()[0][0])

	g := c.SymplecticGraph()
	_, err := g.AddEdge("0", "39")
	require.NoError(t, err)
	assert.Equal(t, 240, c.SymplecticGraph().EdgeCount())
	assert.Equal(t, 240, c.WittingGraph().EdgeCount())
}

func TestReport(t *testing.T) {
	c := built(t)
	r := c.Report("w33", false)
	assert.Equal(t, "w33", r.Name)
	require.NotNil(t, r.Group)
	assert.Equal(t, "51840", r.Group.Order)
	assert.Equal(t, 40, r.Group.OrbitSizes[0])
	assert.Equal(t, []int{40}, r.Group.VertexOrbits)
	assert.Equal(t, []int{240}, r.Group.EdgeOrbits)
	assert.Equal(t, []int{540}, r.Group.NonEdgeOrbits)
	assert.Nil(t, r.Lines)

	detailed := c.Report("w33", true)
	assert.Len(t, detailed.Lines, 40)
	assert.Len(t, detailed.K4, 90)
	assert.Len(t, detailed.Profile, 40)
}

func TestBuildWithoutGroup(t *testing.T) {
	c, err := w33.Build(context.Background(), w33.WithoutGroup())
	require.NoError(t, err)
	assert.Nil(t, c.GroupOrder())
	assert.Nil(t, c.Generators())
	assert.Nil(t, c.Chain())
	assert.Nil(t, c.VertexOrbits())
	assert.Nil(t, c.EdgeOrbits())
	assert.Nil(t, c.NonEdgeOrbits())
	assert.Nil(t, c.Report("w33", false).Group)
}

func TestBuildFailures(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := w33.Build(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "before stage points")

	// A loose cutoff makes every Witting pair orthogonal: K40 is not SRG(40,12,2,4).
	_, err = w33.Build(context.Background(), w33.WithTolerance(0.5))
	require.ErrorIs(t, err, srg.ErrInvariantViolation)
	assert.Contains(t, err.Error(), "stage witting")

	_, err = w33.Build(context.Background(), w33.WithEigenIterations(1), w33.WithoutGroup())
	require.ErrorIs(t, err, matrix.ErrMatrixEigenFailed)
	assert.Contains(t, err.Error(), "stage spectrum")
}

func TestBuildLogsStages(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := w33.Build(context.Background(), w33.WithLogger(zap.New(core)), w33.WithoutGroup())
	require.NoError(t, err)

	done := logs.FilterMessage("stage complete").All()
	require.Len(t, done, 7)
	assert.Equal(t, w33.StagePoints, done[0].ContextMap()["stage"])
	assert.Equal(t, w33.StageSpectrum, done[6].ContextMap()["stage"])
	assert.Equal(t, 1, logs.FilterMessage("build complete").Len())
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { w33.WithTolerance(0) })
	assert.Panics(t, func() { w33.WithJacobiTolerance(-1) })
	assert.Panics(t, func() { w33.WithSpectrumTolerance(0) })
	assert.Panics(t, func() { w33.WithEigenIterations(0) })
	assert.NotPanics(t, func() { w33.WithLogger(nil) })
}

func BenchmarkBuild(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = w33.Build(context.Background())
	}
}
