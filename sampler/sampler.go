// Package sampler implements the deterministic generator sampler: given a
// seed and a count n, it derives n group elements whose discrete logarithms
// are unknown to any party, by repeated hash-to-candidate-x-coordinate
// attempts against the backend's curve equation.
package sampler

import (
	"math/big"

	"github.com/zeebo/blake3"

	"github.com/vectorfold/ipacore/curve"
)

// maxCandidatesPerDigest bounds how many consecutive x-candidates are
// tried from a single digest before the seed is rehashed. Matching
// original_source/src/random_ec_points.rs, a digest that fails this many
// times in a row is treated as exhausted rather than looped forever.
const maxCandidatesPerDigest = 256

// Sample deterministically derives n distinct group elements from seed.
// The same (backend, seed, n) always yields the same vector, and no
// discrete logarithm relation between the returned points is known to
// anyone, including the caller.
func Sample(be curve.Backend, seed []byte, n int) ([]curve.Point, error) {
	out := make([]curve.Point, 0, n)
	digestSeed := append([]byte(nil), seed...)

	for len(out) < n {
		digest := blake3.Sum256(digestSeed)
		x := new(big.Int).SetBytes(digest[:])

		found := false
		for i := 0; i < maxCandidatesPerDigest; i++ {
			candidateX := new(big.Int).Add(x, big.NewInt(int64(i)))
			candidateX.Mod(candidateX, be.BaseFieldOrder())

			p, ok := be.CandidateFromX(candidateX)
			if !ok {
				continue
			}
			out = append(out, p)
			found = true
			break
		}

		// Reseed by rehashing the digest itself, so the next attempt is
		// deterministic but independent of the previous candidates.
		next := blake3.Sum256(digest[:])
		digestSeed = next[:]

		if !found {
			continue
		}
	}

	return out, nil
}

// SampleOne is a convenience wrapper around Sample for the common case of
// deriving a single generator (the B or Q generator in the protocols that
// use this package).
func SampleOne(be curve.Backend, seed []byte) (curve.Point, error) {
	pts, err := Sample(be, seed, 1)
	if err != nil {
		return nil, err
	}
	return pts[0], nil
}
