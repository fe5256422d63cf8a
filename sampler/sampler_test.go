package sampler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vectorfold/ipacore/curve/bls12381"
	"github.com/vectorfold/ipacore/sampler"
)

func TestSampleDeterministic(t *testing.T) {
	be := bls12381.New()

	a, err := sampler.Sample(be, []byte("hello"), 10)
	require.NoError(t, err)
	require.Len(t, a, 10)

	b, err := sampler.Sample(be, []byte("hello"), 10)
	require.NoError(t, err)
	require.Len(t, b, 10)

	for i := range a {
		require.True(t, a[i].Equal(b[i]), "point %d differs across runs", i)
	}
}

func TestSampleDistinctSeeds(t *testing.T) {
	be := bls12381.New()

	a, err := sampler.Sample(be, []byte("seed-a"), 4)
	require.NoError(t, err)
	b, err := sampler.Sample(be, []byte("seed-b"), 4)
	require.NoError(t, err)

	allSame := true
	for i := range a {
		if !a[i].Equal(b[i]) {
			allSame = false
		}
	}
	require.False(t, allSame)
}

func TestSampleNoIdentity(t *testing.T) {
	be := bls12381.New()

	pts, err := sampler.Sample(be, []byte("hello"), 10)
	require.NoError(t, err)
	for _, p := range pts {
		require.False(t, p.IsIdentity())
	}
}
