package zkipa_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vectorfold/ipacore/curve"
	"github.com/vectorfold/ipacore/curve/bls12381"
	"github.com/vectorfold/ipacore/sampler"
	"github.com/vectorfold/ipacore/vecpoly"
	"github.com/vectorfold/ipacore/zkipa"
)

func sc(be curve.Backend, vs ...uint64) []curve.Scalar {
	out := make([]curve.Scalar, len(vs))
	for i, v := range vs {
		out[i] = be.NewScalar().SetUint64(v)
	}
	return out
}

func testBases(t *testing.T, be curve.Backend, n int) zkipa.Bases {
	gv, err := sampler.Sample(be, []byte("zkipa-g"), n)
	require.NoError(t, err)
	hv, err := sampler.Sample(be, []byte("zkipa-h"), n)
	require.NoError(t, err)
	misc, err := sampler.Sample(be, []byte("zkipa-misc"), 2)
	require.NoError(t, err)
	return zkipa.Bases{Gv: gv, Hv: hv, G: misc[0], Bl: misc[1]}
}

func TestZkIpaAcceptsHonestProof(t *testing.T) {
	be := bls12381.New()
	bases := testBases(t, be, 3)

	w := zkipa.Witness{
		A:  sc(be, 2, 4, 1),
		B:  sc(be, 3, 6, 5),
		SL: sc(be, 7, 9, 2),
		SR: sc(be, 5, 8, 3),
	}
	bl := zkipa.Blindings{
		Alpha: be.NewScalar().SetUint64(11),
		Rho:   be.NewScalar().SetUint64(13),
		Gamma: be.NewScalar().SetUint64(17),
		Tau1:  be.NewScalar().SetUint64(19),
		Tau2:  be.NewScalar().SetUint64(23),
	}

	commitments, err := zkipa.Commit(be, w, bases, bl)
	require.NoError(t, err)

	x := be.NewScalar().SetUint64(9)
	opening, err := zkipa.Open(be, w, bl, x)
	require.NoError(t, err)

	ok, err := zkipa.Verify(be, bases, commitments, x, opening)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestZkIpaInnerProductValue(t *testing.T) {
	be := bls12381.New()
	ip, err := vecpoly.InnerProduct(be, sc(be, 2, 4, 1), sc(be, 3, 6, 5))
	require.NoError(t, err)
	require.Equal(t, uint64(2*3+4*6+1*5), ip.BigInt().Uint64())
}

func TestZkIpaRejectsTamperedOpening(t *testing.T) {
	be := bls12381.New()
	bases := testBases(t, be, 2)

	w := zkipa.Witness{
		A:  sc(be, 2, 4),
		B:  sc(be, 3, 6),
		SL: sc(be, 1, 1),
		SR: sc(be, 1, 1),
	}
	bl := zkipa.Blindings{
		Alpha: be.NewScalar().SetUint64(2),
		Rho:   be.NewScalar().SetUint64(3),
		Gamma: be.NewScalar().SetUint64(4),
		Tau1:  be.NewScalar().SetUint64(5),
		Tau2:  be.NewScalar().SetUint64(6),
	}
	commitments, err := zkipa.Commit(be, w, bases, bl)
	require.NoError(t, err)

	x := be.NewScalar().SetUint64(9)
	opening, err := zkipa.Open(be, w, bl, x)
	require.NoError(t, err)
	opening.L[0] = be.NewScalar().SetUint64(999)

	ok, err := zkipa.Verify(be, bases, commitments, x, opening)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestZkIpaLengthMismatch(t *testing.T) {
	be := bls12381.New()
	bases := testBases(t, be, 2)
	w := zkipa.Witness{A: sc(be, 1, 2), B: sc(be, 1), SL: sc(be, 1, 1), SR: sc(be, 1, 1)}
	_, err := zkipa.Commit(be, w, bases, zkipa.Blindings{})
	require.Error(t, err)
}
