package gf3_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/w33/gf3"
)

func TestTransvectionPreservesForm(t *testing.T) {
	points, err := gf3.ProjectivePoints()
	require.NoError(t, err)

	for _, v := range points {
		m := gf3.Transvection(v)
		lambda, err := m.Multiplier()
		require.NoError(t, err)
		assert.Equal(t, gf3.Elem(1), lambda, "transvection along %s", v)

		// v spans the fixed direction.
		img, ok := m.Apply(v)
		require.True(t, ok)
		assert.Equal(t, v, img)
	}
}

func TestSimilitudeNegatesForm(t *testing.T) {
	lambda, err := gf3.Similitude().Multiplier()
	require.NoError(t, err)
	assert.Equal(t, gf3.Elem(2), lambda)
}

func TestMultiplierRejectsNonSimilitude(t *testing.T) {
	m := gf3.Identity()
	m[0][1] = 1 // image of e1 gains an e0 component, so ω(e1,e2) stops vanishing
	_, err := m.Multiplier()
	require.ErrorIs(t, err, gf3.ErrNotSimilitude)

	var zero gf3.Matrix
	_, err = zero.Multiplier()
	require.ErrorIs(t, err, gf3.ErrNotSimilitude)
}

func TestMatrixMul(t *testing.T) {
	s := gf3.Similitude()
	assert.Equal(t, gf3.Identity(), s.Mul(s))

	tv := gf3.Transvection(gf3.Point{1, 0, 0, 0})
	// A transvection has order 3 over GF(3).
	assert.Equal(t, gf3.Identity(), tv.Mul(tv).Mul(tv))
	assert.NotEqual(t, gf3.Identity(), tv)
}

func TestSymplecticGenerators(t *testing.T) {
	points, err := gf3.ProjectivePoints()
	require.NoError(t, err)
	gens := gf3.SymplecticGenerators(points)
	require.Len(t, gens, len(points)+1)
	assert.Equal(t, gf3.Similitude(), gens[len(gens)-1])

	for _, g := range gens {
		for _, x := range points {
			for _, y := range points {
				gx, ok := g.Apply(x)
				require.True(t, ok)
				gy, ok := g.Apply(y)
				require.True(t, ok)
				assert.Equal(t, gf3.Orthogonal(x, y), gf3.Orthogonal(gx, gy))
			}
		}
	}
}
