package gf3_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/w33/gf3"
)

func TestFieldArithmetic(t *testing.T) {
	for a := 0; a < gf3.Order; a++ {
		for b := 0; b < gf3.Order; b++ {
			ea, eb := gf3.Elem(a), gf3.Elem(b)
			assert.Equal(t, gf3.E(a+b), gf3.Add(ea, eb))
			assert.Equal(t, gf3.E(a-b), gf3.Sub(ea, eb))
			assert.Equal(t, gf3.E(a*b), gf3.Mul(ea, eb))
		}
		assert.Equal(t, gf3.Elem(0), gf3.Add(gf3.Elem(a), gf3.Neg(gf3.Elem(a))))
	}
	assert.Equal(t, gf3.Elem(1), gf3.Mul(2, gf3.Inv(2)))
	assert.Equal(t, gf3.Elem(2), gf3.E(-1))
	assert.Panics(t, func() { gf3.Inv(0) })
}

func TestProjectivePoints(t *testing.T) {
	points, err := gf3.ProjectivePoints()
	require.NoError(t, err)
	require.Len(t, points, gf3.NumPoints)

	seen := make(map[gf3.Point]bool, len(points))
	for i, p := range points {
		assert.False(t, seen[p], "duplicate point %s", p)
		seen[p] = true
		assert.True(t, gf3.IsCanonical(p), "point %s is not canonical", p)
		if i > 0 {
			assert.True(t, points[i-1].Less(p), "points not sorted at %d", i)
		}
	}
	assert.Equal(t, gf3.Point{0, 0, 0, 1}, points[0])
	assert.Equal(t, gf3.Point{1, 2, 2, 2}, points[39])
}

func TestProjectivePointsIdempotent(t *testing.T) {
	a, err := gf3.ProjectivePoints()
	require.NoError(t, err)
	b, err := gf3.ProjectivePoints()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCollectRejectsShortEnumeration(t *testing.T) {
	_, err := gf3.Collect([]gf3.Point{{1, 0, 0, 0}, {2, 0, 0, 0}, {0, 1, 0, 0}})
	require.ErrorIs(t, err, gf3.ErrConstruction)

	_, err = gf3.Collect([]gf3.Point{{0, 0, 0, 0}})
	require.ErrorIs(t, err, gf3.ErrConstruction)
}

func TestCanonical(t *testing.T) {
	p, ok := gf3.Canonical(gf3.Point{0, 2, 1, 0})
	require.True(t, ok)
	assert.Equal(t, gf3.Point{0, 1, 2, 0}, p)

	_, ok = gf3.Canonical(gf3.Point{})
	assert.False(t, ok)
	assert.Equal(t, "(0,1,2,0)", p.String())
}

func TestSymplecticScenarios(t *testing.T) {
	e0 := gf3.Point{1, 0, 0, 0}
	e1 := gf3.Point{0, 1, 0, 0}
	e2 := gf3.Point{0, 0, 1, 0}

	assert.Equal(t, gf3.Elem(0), gf3.Symplectic(e0, e1))
	assert.True(t, gf3.Orthogonal(e0, e1))
	assert.Equal(t, gf3.Elem(1), gf3.Symplectic(e0, e2))
	assert.False(t, gf3.Orthogonal(e0, e2))
	assert.Equal(t, gf3.Elem(2), gf3.Symplectic(e2, e0))
}

func TestSymplecticIsAlternating(t *testing.T) {
	points, err := gf3.ProjectivePoints()
	require.NoError(t, err)
	for _, x := range points {
		assert.Equal(t, gf3.Elem(0), gf3.Symplectic(x, x))
		for _, y := range points {
			assert.Equal(t, gf3.Neg(gf3.Symplectic(x, y)), gf3.Symplectic(y, x))
		}
	}
}

func TestOrthogonalDegree(t *testing.T) {
	points, err := gf3.ProjectivePoints()
	require.NoError(t, err)
	for i, x := range points {
		deg := 0
		for j, y := range points {
			if i != j && gf3.Orthogonal(x, y) {
				deg++
			}
		}
		assert.Equal(t, 12, deg, "degree of %s", x)
	}
}
