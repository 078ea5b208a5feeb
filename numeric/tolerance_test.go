package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/w33/numeric"
)

func TestCloseAndZero(t *testing.T) {
	assert.True(t, numeric.IsZero(1e-12, numeric.OrthogonalityEps))
	assert.False(t, numeric.IsZero(1e-9, numeric.OrthogonalityEps))
	assert.True(t, numeric.Close(1.0/3.0, 0.3333333333, numeric.OverlapEps))
	assert.False(t, numeric.Close(0.34, 1.0/3.0, numeric.OverlapEps))
	assert.True(t, numeric.CloseComplex(complex(0.5, math.Sqrt(3)/2), complex(0.5, 0.8660254037844386), 1e-12))
}

func TestCheck(t *testing.T) {
	require.NoError(t, numeric.Check("overlap", 1.0/3.0+1e-12, 1.0/3.0, numeric.OverlapEps))

	err := numeric.Check("overlap", 0.5, 1.0/3.0, numeric.OverlapEps)
	require.ErrorIs(t, err, numeric.ErrToleranceExceeded)
	assert.Contains(t, err.Error(), "overlap")

	require.ErrorIs(t, numeric.Check("nan", math.NaN(), 0, 1), numeric.ErrToleranceExceeded)
}

func TestRound(t *testing.T) {
	tests := []struct {
		in      float64
		want    int
		wantErr bool
	}{
		{in: 12.0000000001, want: 12},
		{in: -3.9999999999, want: -4},
		{in: 2.0, want: 2},
		{in: 2.1, wantErr: true},
	}
	for _, tc := range tests {
		got, err := numeric.Round(tc.in, numeric.SpectrumEps)
		if tc.wantErr {
			require.ErrorIs(t, err, numeric.ErrToleranceExceeded)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestValidTolerance(t *testing.T) {
	assert.True(t, numeric.ValidTolerance(1e-10))
	assert.False(t, numeric.ValidTolerance(0))
	assert.False(t, numeric.ValidTolerance(-1))
	assert.False(t, numeric.ValidTolerance(math.Inf(1)))
	assert.False(t, numeric.ValidTolerance(math.NaN()))
}
