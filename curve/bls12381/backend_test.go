package bls12381_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vectorfold/ipacore/curve/bls12381"
)

func TestScalarArithmetic(t *testing.T) {
	be := bls12381.New()

	a := be.NewScalar().SetUint64(5)
	b := be.NewScalar().SetUint64(7)

	sum := be.NewScalar().Add(a, b)
	require.Equal(t, big.NewInt(12), sum.BigInt())

	prod := be.NewScalar().Mul(a, b)
	require.Equal(t, big.NewInt(35), prod.BigInt())

	inv := be.NewScalar().Inverse(a)
	one := be.NewScalar().Mul(a, inv)
	require.True(t, one.Equal(be.ScalarOne()))
}

func TestGeneratorScalarMul(t *testing.T) {
	be := bls12381.New()

	g := be.Generator()
	two := be.NewScalar().SetUint64(2)

	doubled := be.NewPoint().ScalarMul(g, two)
	gPlusG := be.NewPoint().Add(g, g)

	require.True(t, doubled.Equal(gPlusG))
	require.False(t, doubled.IsIdentity())
}

func TestPointAddSubRoundTrip(t *testing.T) {
	be := bls12381.New()

	g := be.Generator()
	three := be.NewScalar().SetUint64(3)
	p := be.NewPoint().ScalarMul(g, three)

	back := be.NewPoint().Sub(be.NewPoint().Add(p, g), g)
	require.True(t, back.Equal(p))
}

func TestCandidateFromX(t *testing.T) {
	be := bls12381.New()

	var found bool
	start := big.NewInt(1)
	for i := 0; i < 64; i++ {
		cand := new(big.Int).Add(start, big.NewInt(int64(i)))
		if p, ok := be.CandidateFromX(cand); ok {
			require.False(t, p.IsIdentity())
			found = true
			break
		}
	}
	require.True(t, found, "expected to find an on-curve x within a small search window")
}

func TestRandomScalarNonZero(t *testing.T) {
	be := bls12381.New()
	for i := 0; i < 8; i++ {
		s, err := be.RandomScalar()
		require.NoError(t, err)
		require.False(t, s.IsZero())
	}
}
