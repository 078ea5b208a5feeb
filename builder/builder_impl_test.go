package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/w33/builder"
	"github.com/katalvlaran/w33/core"
	"github.com/katalvlaran/w33/gf3"
	"github.com/katalvlaran/w33/witting"
)

// degrees returns the degree of every vertex in g.
func degrees(t *testing.T, g *core.Graph) map[string]int {
	t.Helper()
	out := make(map[string]int, g.VertexCount())
	for _, id := range g.Vertices() {
		d, err := g.Degree(id)
		require.NoError(t, err)
		out[id] = d
	}
	return out
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 5; i++ {
					assert.True(t, g.HasEdge(fmt.Sprint(i), fmt.Sprint((i+1)%5)))
				}
			},
		},
		{
			name:  "Complete(5)",
			ctor:  builder.Complete(5),
			wantV: 5, wantE: 10,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for id, d := range degrees(t, g) {
					assert.Equal(t, 4, d, "vertex %s", id)
				}
			},
		},
		{
			name:  "Symplectic",
			ctor:  builder.Symplectic(),
			wantV: 40, wantE: 240,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for id, d := range degrees(t, g) {
					assert.Equal(t, 12, d, "vertex %s", id)
				}
				// (0,0,0,1) and (0,0,1,0) are orthogonal; (0,0,0,1) and (0,1,0,0) are not.
				assert.True(t, g.HasEdge("0", "1"))
				label, ok := g.VertexMeta("0", core.MetaLabel)
				require.True(t, ok)
				assert.Equal(t, "(0,0,0,1)", label)
				idx, ok := g.VertexMeta("39", core.MetaIndex)
				require.True(t, ok)
				assert.Equal(t, 39, idx)
			},
		},
		{
			name:  "Witting",
			ctor:  builder.Witting(),
			wantV: 40, wantE: 240,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for id, d := range degrees(t, g) {
					assert.Equal(t, 12, d, "vertex %s", id)
				}
				// Standard basis vectors are pairwise orthogonal.
				assert.True(t, g.HasEdge("0", "1"))
				assert.True(t, g.HasEdge("2", "3"))
				assert.False(t, g.HasEdge("1", "4"))
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			tc.sampleCheck(t, g)

			// Idempotence: a second build yields the same edge set.
			g2, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			e1, e2 := g.Edges(), g2.Edges()
			require.Len(t, e2, len(e1))
			for i := range e1 {
				assert.Equal(t, e1[i].From, e2[i].From)
				assert.Equal(t, e1[i].To, e2[i].To)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildGraph(nil, nil, builder.Cycle(2))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, nil, builder.Complete(0))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildGraph([]core.GraphOption{core.WithLoops()}, nil, builder.Symplectic())
	require.ErrorIs(t, err, builder.ErrUnsupportedGraphMode)

	_, err = builder.BuildGraph([]core.GraphOption{core.WithMultiEdges()}, nil, builder.Witting())
	require.ErrorIs(t, err, builder.ErrUnsupportedGraphMode)

	// Two configurations in one graph collide on vertex IDs.
	_, err = builder.BuildGraph(nil, nil, builder.Symplectic(), builder.Witting())
	require.ErrorIs(t, err, builder.ErrOptionViolation)
}

func TestSymplecticWithPoints(t *testing.T) {
	t.Parallel()

	points, err := gf3.ProjectivePoints()
	require.NoError(t, err)

	// Reversed order is a valid relabelling.
	rev := make([]gf3.Point, len(points))
	for i, p := range points {
		rev[len(points)-1-i] = p
	}
	g, err := builder.BuildSymplectic(builder.WithPoints(rev))
	require.NoError(t, err)
	assert.Equal(t, 240, g.EdgeCount())
	label, _ := g.VertexMeta("0", core.MetaLabel)
	assert.Equal(t, "(1,2,2,2)", label)

	bad := append([]gf3.Point(nil), points...)
	bad[5] = bad[4]
	_, err = builder.BuildSymplectic(builder.WithPoints(bad))
	require.ErrorIs(t, err, builder.ErrOptionViolation)

	nonCanon := append([]gf3.Point(nil), points...)
	nonCanon[0] = gf3.Point{0, 0, 0, 2}
	_, err = builder.BuildSymplectic(builder.WithPoints(nonCanon))
	require.ErrorIs(t, err, builder.ErrOptionViolation)

	_, err = builder.BuildSymplectic(builder.WithPoints(points[:10]))
	require.ErrorIs(t, err, builder.ErrOptionViolation)
}

func TestWittingTolerance(t *testing.T) {
	t.Parallel()

	// A cutoff above 1/3 makes every pair "orthogonal": K_40.
	g, err := builder.BuildWitting(builder.WithTolerance(0.5))
	require.NoError(t, err)
	assert.Equal(t, 40*39/2, g.EdgeCount())
}

func TestWittingWithStates(t *testing.T) {
	t.Parallel()

	states, err := witting.States()
	require.NoError(t, err)

	rev := make([]witting.Vector, len(states))
	for i, v := range states {
		rev[len(states)-1-i] = v
	}
	g, err := builder.BuildWitting(builder.WithStates(rev))
	require.NoError(t, err)
	assert.Equal(t, 240, g.EdgeCount())
	label, _ := g.VertexMeta("0", core.MetaLabel)
	assert.Equal(t, states[39].String(), label)

	dup := append([]witting.Vector(nil), states...)
	dup[7] = dup[6]
	_, err = builder.BuildWitting(builder.WithStates(dup))
	require.ErrorIs(t, err, builder.ErrOptionViolation)
	require.ErrorIs(t, err, witting.ErrConstruction)

	_, err = builder.BuildWitting(builder.WithStates(states[:39]))
	require.ErrorIs(t, err, builder.ErrOptionViolation)
}

func TestIDSchemeAndPanics(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildSymplectic(builder.WithSymbNumb("p"))
	require.NoError(t, err)
	assert.True(t, g.HasVertex("p39"))
	assert.True(t, g.HasEdge("p0", "p1"))

	assert.Equal(t, "7", builder.DefaultIDFn(7))
	assert.Equal(t, "v3", builder.SymbolNumberIDFn("v")(3))
	assert.Panics(t, func() { builder.SymbolNumberIDFn("v")(-1) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithTolerance(0) })
}
