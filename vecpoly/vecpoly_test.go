package vecpoly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vectorfold/ipacore/curve"
	"github.com/vectorfold/ipacore/curve/bls12381"
	"github.com/vectorfold/ipacore/vecpoly"
)

func sc(be curve.Backend, vs ...uint64) []curve.Scalar {
	out := make([]curve.Scalar, len(vs))
	for i, v := range vs {
		out[i] = be.NewScalar().SetUint64(v)
	}
	return out
}

func TestInnerProductCoefficients(t *testing.T) {
	be := bls12381.New()
	a := sc(be, 2, 4)
	b := sc(be, 3, 6)

	ip, err := vecpoly.InnerProduct(be, a, b)
	require.NoError(t, err)
	require.Equal(t, uint64(30), ip.BigInt().Uint64())
}

func TestEvaluateConstantPoly(t *testing.T) {
	be := bls12381.New()
	p, err := vecpoly.New([][]curve.Scalar{sc(be, 1, 2, 13, 17)})
	require.NoError(t, err)

	out := p.Evaluate(be, be.NewScalar().SetUint64(5))
	require.Equal(t, []uint64{1, 2, 13, 17}, toU64(out))
}

func TestEvaluateLinearPoly(t *testing.T) {
	be := bls12381.New()
	// p(x) = [1,2] + [3,4]*x
	p, err := vecpoly.New([][]curve.Scalar{sc(be, 1, 2), sc(be, 3, 4)})
	require.NoError(t, err)

	out := p.Evaluate(be, be.NewScalar().SetUint64(2))
	require.Equal(t, []uint64{7, 10}, toU64(out))
}

func TestPolyMulDegrees(t *testing.T) {
	be := bls12381.New()
	l, err := vecpoly.New([][]curve.Scalar{sc(be, 2, 4), sc(be, 1, 1)})
	require.NoError(t, err)
	r, err := vecpoly.New([][]curve.Scalar{sc(be, 3, 6), sc(be, 2, 2)})
	require.NoError(t, err)

	t0, err := vecpoly.PolyMul(be, l, r)
	require.NoError(t, err)
	require.Equal(t, 2, t0.Degree())

	want0, err := vecpoly.InnerProduct(be, sc(be, 2, 4), sc(be, 3, 6))
	require.NoError(t, err)
	require.True(t, t0.Coeffs[0][0].Equal(want0))
}

func TestLengthMismatch(t *testing.T) {
	be := bls12381.New()
	_, err := vecpoly.InnerProduct(be, sc(be, 1, 2), sc(be, 1))
	require.Error(t, err)
}

func toU64(s []curve.Scalar) []uint64 {
	out := make([]uint64, len(s))
	for i, v := range s {
		out[i] = v.BigInt().Uint64()
	}
	return out
}
