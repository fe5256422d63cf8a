package logcommit_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"

	"github.com/vectorfold/ipacore/curve"
	"github.com/vectorfold/ipacore/curve/bls12381"
	"github.com/vectorfold/ipacore/logcommit"
	"github.com/vectorfold/ipacore/pedersen"
	"github.com/vectorfold/ipacore/sampler"
)

func sc(be curve.Backend, vs ...uint64) []curve.Scalar {
	out := make([]curve.Scalar, len(vs))
	for i, v := range vs {
		out[i] = be.NewScalar().SetUint64(v)
	}
	return out
}

func challenge(be curve.Backend, seed string) curve.Scalar {
	digest := blake3.Sum256([]byte(seed))
	s := be.NewScalar().SetBytes(digest[:])
	if s.IsZero() {
		s = be.NewScalar().SetUint64(1)
	}
	return s
}

func TestLogCommitEndToEndPowerOfTwo(t *testing.T) {
	be := bls12381.New()
	a := sc(be, 2, 3, 4, 12)
	g, err := sampler.Sample(be, []byte("hello"), 4)
	require.NoError(t, err)

	c, err := pedersen.Commit(be, a, g)
	require.NoError(t, err)

	prover, err := logcommit.NewProver(be, a, g)
	require.NoError(t, err)
	verifier, err := logcommit.NewVerifier(be, c, g, len(a))
	require.NoError(t, err)

	for _, seed := range []string{"bullet", "proof"} {
		rc, err := prover.CommitRound()
		require.NoError(t, err)
		u := challenge(be, seed)
		require.NoError(t, prover.FoldRound(u))
		require.NoError(t, verifier.FoldRound(rc, u))
	}

	ok, err := verifier.Accept(prover.Final())
	require.NoError(t, err)
	require.True(t, ok)
}

func TestLogCommitPadsOddLength(t *testing.T) {
	be := bls12381.New()
	a := sc(be, 5, 9, 3)
	g, err := sampler.Sample(be, []byte("logcommit-pad"), 3)
	require.NoError(t, err)

	paddedA := append(append([]curve.Scalar(nil), a...), be.ScalarZero())
	paddedG := append(append([]curve.Point(nil), g...), be.Identity())
	c, err := pedersen.Commit(be, paddedA, paddedG)
	require.NoError(t, err)

	prover, err := logcommit.NewProver(be, a, g)
	require.NoError(t, err)
	verifier, err := logcommit.NewVerifier(be, c, g, len(a))
	require.NoError(t, err)

	for !prover.Done() {
		rc, err := prover.CommitRound()
		require.NoError(t, err)
		u := be.NewScalar().SetUint64(7)
		require.NoError(t, prover.FoldRound(u))
		require.NoError(t, verifier.FoldRound(rc, u))
	}

	ok, err := verifier.Accept(prover.Final())
	require.NoError(t, err)
	require.True(t, ok)
}
