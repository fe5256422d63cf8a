package session_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vectorfold/ipacore/curve/bls12381"
	"github.com/vectorfold/ipacore/session"
)

func TestNewSessionDeterministic(t *testing.T) {
	be := bls12381.New()

	s1, err := session.New(be, session.Config{Seed: []byte("proof-session"), VectorLen: 4})
	require.NoError(t, err)
	s2, err := session.New(be, session.Config{Seed: []byte("proof-session"), VectorLen: 4})
	require.NoError(t, err)

	for i := range s1.Gv {
		require.True(t, s1.Gv[i].Equal(s2.Gv[i]))
	}
	require.True(t, s1.G.Equal(s2.G))
	require.True(t, s1.B.Equal(s2.B))
	require.True(t, s1.Q.Equal(s2.Q))
}

func TestSessionGeneratorsAreDistinct(t *testing.T) {
	be := bls12381.New()
	s, err := session.New(be, session.Config{Seed: []byte("proof-session"), VectorLen: 2})
	require.NoError(t, err)

	require.False(t, s.G.Equal(s.B))
	require.False(t, s.B.Equal(s.Q))
	require.False(t, s.Gv[0].Equal(s.Hv[0]))
}
