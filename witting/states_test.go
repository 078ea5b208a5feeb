package witting_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/w33/numeric"
	"github.com/katalvlaran/w33/witting"
)

func mustStates(t *testing.T) []witting.Vector {
	t.Helper()
	states, err := witting.States()
	require.NoError(t, err)
	require.Len(t, states, witting.NumStates)
	return states
}

func TestOmegaIsCubeRoot(t *testing.T) {
	w := witting.Omega
	assert.True(t, numeric.CloseComplex(w*w*w, 1, 1e-12))
	assert.True(t, numeric.CloseComplex(1+w+w*w, 0, 1e-12))
	assert.InDelta(t, 1.0, cmplx.Abs(w), 1e-12)
}

func TestStatesAreUnitAndOrdered(t *testing.T) {
	states := mustStates(t)
	for i, v := range states {
		assert.InDelta(t, 1.0, v.Norm(), numeric.OverlapEps, "state %d", i)
	}
	for i := 0; i < witting.Dim; i++ {
		var e witting.Vector
		e[i] = 1
		assert.True(t, states[i].Equal(e, 1e-15), "state %d is e%d", i, i)
	}

	// First non-basis state is (0,1,-1,1)/√3 for μ = ν = 0.
	s := complex(1/math.Sqrt(3), 0)
	assert.True(t, states[4].Equal(witting.Vector{0, s, -s, s}, 1e-12))
}

func TestStatesIdempotent(t *testing.T) {
	a := mustStates(t)
	b := mustStates(t)
	assert.Equal(t, a, b)
}

func TestOrthogonalityDegree(t *testing.T) {
	states := mustStates(t)
	for i := range states {
		deg := 0
		for j := range states {
			if i != j && witting.Orthogonal(states[i], states[j], numeric.OrthogonalityEps) {
				deg++
			}
		}
		assert.Equal(t, 12, deg, "state %d", i)
	}
}

func TestOverlapScenarios(t *testing.T) {
	states := mustStates(t)

	assert.True(t, witting.Orthogonal(states[0], states[1], numeric.OrthogonalityEps))
	assert.InDelta(t, 0.0, witting.Overlap(states[0], states[1]), 1e-15)

	// e1 against (0,1,-1,1)/√3 has overlap 1/3.
	assert.InDelta(t, 1.0/3.0, witting.Overlap(states[1], states[4]), numeric.OverlapEps)
	assert.False(t, witting.Orthogonal(states[1], states[4], numeric.OrthogonalityEps))

	require.NoError(t, witting.VerifyOverlaps(states, numeric.OrthogonalityEps))
}

func TestInnerIsConjugateLinear(t *testing.T) {
	u := witting.Vector{1i, 0, 0, 0}
	v := witting.Vector{1, 0, 0, 0}
	assert.Equal(t, complex(0, -1), witting.Inner(u, v))
	assert.Equal(t, complex(0, 1), witting.Inner(v, u))
}

func TestVerifyOverlapsRejectsBadPair(t *testing.T) {
	h := complex(1/math.Sqrt2, 0)
	bad := []witting.Vector{
		{1, 0, 0, 0},
		{h, h, 0, 0},
	}
	err := witting.VerifyOverlaps(bad, numeric.OrthogonalityEps)
	require.ErrorIs(t, err, witting.ErrOverlap)
	require.ErrorIs(t, err, numeric.ErrToleranceExceeded)
}

func TestValidateRejectsBadSets(t *testing.T) {
	states := mustStates(t)
	require.NoError(t, witting.Validate(states))

	scaled := append([]witting.Vector(nil), states...)
	scaled[3][3] = 2
	require.ErrorIs(t, witting.Validate(scaled), witting.ErrConstruction)

	require.ErrorIs(t, witting.Validate(states[1:]), witting.ErrConstruction)
}
