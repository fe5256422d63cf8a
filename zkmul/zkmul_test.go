package zkmul_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vectorfold/ipacore/curve"
	"github.com/vectorfold/ipacore/curve/bls12381"
	"github.com/vectorfold/ipacore/sampler"
	"github.com/vectorfold/ipacore/zkmul"
)

func testBases(t *testing.T, be curve.Backend) zkmul.Bases {
	pts, err := sampler.Sample(be, []byte("zkmul-bases"), 3)
	require.NoError(t, err)
	return zkmul.Bases{G: pts[0], H: pts[1], Bl: pts[2]}
}

func TestZkMulAcceptsHonestProof(t *testing.T) {
	be := bls12381.New()
	bases := testBases(t, be)

	w := zkmul.Witness{
		A:  be.NewScalar().SetUint64(1),
		SL: be.NewScalar().SetUint64(2),
		B:  be.NewScalar().SetUint64(3),
		SR: be.NewScalar().SetUint64(4),
	}

	bl := zkmul.Blindings{
		Alpha: be.NewScalar().SetUint64(11),
		Rho:   be.NewScalar().SetUint64(13),
		Tau0:  be.NewScalar().SetUint64(17),
		Tau1:  be.NewScalar().SetUint64(19),
		Tau2:  be.NewScalar().SetUint64(23),
	}

	commitments := zkmul.Commit(be, w, bases, bl)

	x := be.NewScalar().SetUint64(7)
	opening := zkmul.Open(be, w, bl, x)

	ok, err := zkmul.Verify(be, bases, commitments, x, opening)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestComputeT(t *testing.T) {
	be := bls12381.New()
	w := zkmul.Witness{
		A:  be.NewScalar().SetUint64(1),
		SL: be.NewScalar().SetUint64(2),
		B:  be.NewScalar().SetUint64(3),
		SR: be.NewScalar().SetUint64(4),
	}
	t0, t1, t2 := zkmul.ComputeT(be, w)
	require.Equal(t, uint64(3), t0.BigInt().Uint64())  // a*b = 1*3
	require.Equal(t, uint64(10), t1.BigInt().Uint64()) // a*sr+b*sl = 4+6
	require.Equal(t, uint64(8), t2.BigInt().Uint64())  // sl*sr = 2*4
}

func TestZkMulRejectsTamperedOpening(t *testing.T) {
	be := bls12381.New()
	bases := testBases(t, be)

	w := zkmul.Witness{
		A:  be.NewScalar().SetUint64(1),
		SL: be.NewScalar().SetUint64(2),
		B:  be.NewScalar().SetUint64(3),
		SR: be.NewScalar().SetUint64(4),
	}
	bl := zkmul.Blindings{
		Alpha: be.NewScalar().SetUint64(11),
		Rho:   be.NewScalar().SetUint64(13),
		Tau0:  be.NewScalar().SetUint64(17),
		Tau1:  be.NewScalar().SetUint64(19),
		Tau2:  be.NewScalar().SetUint64(23),
	}
	commitments := zkmul.Commit(be, w, bases, bl)
	x := be.NewScalar().SetUint64(7)
	opening := zkmul.Open(be, w, bl, x)
	opening.L = be.NewScalar().SetUint64(999)

	ok, err := zkmul.Verify(be, bases, commitments, x, opening)
	require.NoError(t, err)
	require.False(t, ok)
}
