package polycommit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vectorfold/ipacore/curve"
	"github.com/vectorfold/ipacore/curve/bls12381"
	"github.com/vectorfold/ipacore/polycommit"
	"github.com/vectorfold/ipacore/sampler"
)

func TestOpenVerifyRoundTrip(t *testing.T) {
	be := bls12381.New()
	bases, err := sampler.Sample(be, []byte("polycommit-bases"), 4)
	require.NoError(t, err)

	coeffs := []curve.Scalar{
		be.NewScalar().SetUint64(1),
		be.NewScalar().SetUint64(2),
		be.NewScalar().SetUint64(13),
		be.NewScalar().SetUint64(17),
	}

	commitment, err := polycommit.Commit(be, coeffs, bases)
	require.NoError(t, err)

	x := be.NewScalar().SetUint64(5)
	opening := polycommit.Open(be, coeffs, x)

	ok, err := polycommit.Verify(be, commitment, bases, opening)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyRejectsWrongValue(t *testing.T) {
	be := bls12381.New()
	bases, err := sampler.Sample(be, []byte("polycommit-bases"), 2)
	require.NoError(t, err)

	coeffs := []curve.Scalar{be.NewScalar().SetUint64(3), be.NewScalar().SetUint64(5)}
	commitment, err := polycommit.Commit(be, coeffs, bases)
	require.NoError(t, err)

	opening := polycommit.Open(be, coeffs, be.NewScalar().SetUint64(2))
	opening.Value = be.NewScalar().SetUint64(999)

	ok, err := polycommit.Verify(be, commitment, bases, opening)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyRejectsWrongCommitment(t *testing.T) {
	be := bls12381.New()
	bases, err := sampler.Sample(be, []byte("polycommit-bases"), 2)
	require.NoError(t, err)

	coeffs := []curve.Scalar{be.NewScalar().SetUint64(3), be.NewScalar().SetUint64(5)}
	opening := polycommit.Open(be, coeffs, be.NewScalar().SetUint64(2))

	wrongCommitment := be.NewPoint().ScalarMul(bases[0], be.NewScalar().SetUint64(42))

	ok, err := polycommit.Verify(be, wrongCommitment, bases, opening)
	require.NoError(t, err)
	require.False(t, ok)
}
