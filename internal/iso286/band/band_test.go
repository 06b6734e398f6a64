package band_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"fitpick/internal/domain"
	"fitpick/internal/iso286/band"
	"fitpick/internal/store"
)

func newResolver(t *testing.T) *band.Resolver {
	t.Helper()
	ref, err := store.Load("")
	require.NoError(t, err)
	r, err := band.New(ref.Bands)
	require.NoError(t, err)
	return r
}

func TestResolve_Boundaries(t *testing.T) {
	r := newResolver(t)
	cases := []struct {
		nominal      float64
		lower, upper float64
	}{
		{0.5, 0, 3},
		{3, 0, 3},
		{3.0001, 3, 6},
		{25, 24, 30},
		{30, 24, 30},
		{30.0001, 30, 40},
		{40, 30, 40},
		{450.5, 450, 500},
		{500, 450, 500},
	}
	for _, tc := range cases {
		b, err := r.Resolve(tc.nominal)
		require.NoError(t, err, "nominal %g", tc.nominal)
		require.Equal(t, tc.lower, b.LowerMM, "nominal %g", tc.nominal)
		require.Equal(t, tc.upper, b.UpperMM, "nominal %g", tc.nominal)
	}
}

func TestResolve_StepBounds(t *testing.T) {
	r := newResolver(t)

	// 10–14 and 14–18 share the 10–18 main step.
	for _, nominal := range []float64{12, 16} {
		b, err := r.Resolve(nominal)
		require.NoError(t, err)
		require.Equal(t, 10.0, b.StepLowerMM)
		require.Equal(t, 18.0, b.StepUpperMM)
	}

	b, err := r.Resolve(1)
	require.NoError(t, err)
	require.Equal(t, 0.0, b.StepLowerMM)
	require.Equal(t, 3.0, b.StepUpperMM)
}

func TestResolve_OutOfRange(t *testing.T) {
	r := newResolver(t)
	for _, nominal := range []float64{0, -1, 500.01, 1e9, math.NaN(), math.Inf(1)} {
		_, err := r.Resolve(nominal)
		require.ErrorIs(t, err, domain.ErrOutOfRange, "nominal %g", nominal)
	}
}

func TestResolve_Partition(t *testing.T) {
	r := newResolver(t)
	bands := r.Bands()
	require.Len(t, bands, 25)
	require.Equal(t, 500.0, r.MaxSizeMM())

	for _, want := range bands {
		for _, nominal := range []float64{
			math.Nextafter(want.LowerMM, math.Inf(1)),
			(want.LowerMM + want.UpperMM) / 2,
			want.UpperMM,
		} {
			got, err := r.Resolve(nominal)
			require.NoError(t, err)
			require.Equal(t, want, got, "nominal %v", nominal)
			require.True(t, got.Contains(nominal))
		}
	}
}

func TestNew_RejectsGaps(t *testing.T) {
	_, err := band.New(nil)
	require.Error(t, err)

	_, err = band.New([]domain.SizeBand{
		{LowerMM: 0, UpperMM: 3},
		{LowerMM: 6, UpperMM: 10},
	})
	require.Error(t, err)

	_, err = band.New([]domain.SizeBand{{LowerMM: 1, UpperMM: 3}})
	require.Error(t, err)
}
