package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/w33/core"
)

const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
)

func TestAddVertexIdempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA))
	require.NoError(t, g.AddVertex(VertexA))
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex(VertexA))
	assert.False(t, g.HasVertex(""))
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestAddEdgeSimple(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge(VertexA, VertexB)
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)
	assert.True(t, g.HasEdge(VertexA, VertexB))
	assert.True(t, g.HasEdge(VertexB, VertexA), "undirected edges are mirrored")
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())

	_, err = g.AddEdge(VertexB, VertexA)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	_, err = g.AddEdge(VertexA, VertexA)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge("", VertexA)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestLoopsAndMultiEdges(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	assert.True(t, g.Looped())
	assert.True(t, g.Multigraph())

	_, err := g.AddEdge(VertexA, VertexA)
	require.NoError(t, err)
	_, err = g.AddEdge(VertexA, VertexB)
	require.NoError(t, err)
	_, err = g.AddEdge(VertexB, VertexA)
	require.NoError(t, err)

	deg, err := g.Degree(VertexA)
	require.NoError(t, err)
	assert.Equal(t, 4, deg, "loop counts twice plus two parallel edges")

	nbs, err := g.NeighborIDs(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexA, VertexB}, nbs)
}

func TestRemoveEdge(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge(VertexA, VertexB)
	require.NoError(t, err)
	require.NoError(t, g.RemoveEdge(eid))
	assert.False(t, g.HasEdge(VertexA, VertexB))
	assert.False(t, g.HasEdge(VertexB, VertexA))
	assert.Equal(t, 0, g.EdgeCount())
	require.ErrorIs(t, g.RemoveEdge(eid), core.ErrEdgeNotFound)

	// The pair is free again.
	_, err = g.AddEdge(VertexB, VertexA)
	require.NoError(t, err)
}

func TestNumericOrdering(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"10", "2", "0", "x", "1", "01"} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []string{"0", "1", "2", "10", "01", "x"}, g.Vertices())
	assert.True(t, core.LessID("9", "10"))
	assert.False(t, core.LessID("10", "9"))
	assert.True(t, core.LessID("3", "A"))
}

func TestNeighborIDsAndDegree(t *testing.T) {
	g := core.NewGraph()
	for i := 1; i <= 12; i++ {
		_, err := g.AddEdge("0", fmt.Sprint(i))
		require.NoError(t, err)
	}
	nbs, err := g.NeighborIDs("0")
	require.NoError(t, err)
	require.Len(t, nbs, 12)
	assert.Equal(t, "1", nbs[0])
	assert.Equal(t, "12", nbs[11])

	deg, err := g.Degree("0")
	require.NoError(t, err)
	assert.Equal(t, 12, deg)

	_, err = g.NeighborIDs("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestEdgesDeterministic(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("2", "10")
	_, _ = g.AddEdge("1", "3")
	_, _ = g.AddEdge("1", "2")
	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, [2]string{"1", "2"}, [2]string{edges[0].From, edges[0].To})
	assert.Equal(t, [2]string{"1", "3"}, [2]string{edges[1].From, edges[1].To})
	assert.Equal(t, [2]string{"2", "10"}, [2]string{edges[2].From, edges[2].To})
}

func TestVertexMetadata(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA))
	require.NoError(t, g.SetVertexMeta(VertexA, core.MetaLabel, "(0,0,0,1)"))
	v, ok := g.VertexMeta(VertexA, core.MetaLabel)
	require.True(t, ok)
	assert.Equal(t, "(0,0,0,1)", v)

	_, ok = g.VertexMeta(VertexA, core.MetaIndex)
	assert.False(t, ok)
	require.ErrorIs(t, g.SetVertexMeta(VertexB, core.MetaIndex, 1), core.ErrVertexNotFound)
}

func TestCloneIndependent(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(VertexA, VertexB)
	c := g.Clone()
	_, err := c.AddEdge(VertexB, VertexC)
	require.NoError(t, err)

	assert.False(t, g.HasVertex(VertexC))
	assert.True(t, c.HasEdge(VertexA, VertexB))
	assert.Equal(t, 2, c.EdgeCount())

	// Edge IDs continue the source sequence.
	edges := c.Edges()
	assert.Equal(t, "e2", edges[1].ID)

	g.Clear()
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 3, c.VertexCount())
}

func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)
	errs := make(chan error, num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			if _, err := g.AddEdge("X", fmt.Sprintf("V%d", id)); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	nbs, err := g.NeighborIDs("X")
	require.NoError(t, err)
	assert.Len(t, nbs, num)
}
