// Package transcript supplies challenge scalars to the folding and
// argument protocols in this module. The core protocol packages never
// sample challenges themselves — they take a curve.Scalar as a plain
// parameter — so a caller can drive them with either of the Samplers
// here, or with any other source of agreed-upon randomness.
package transcript

import (
	"github.com/zeebo/blake3"

	"github.com/vectorfold/ipacore/curve"
)

// Sampler produces the next challenge in a proof session. Implementations
// must never return a zero scalar.
type Sampler interface {
	Next() (curve.Scalar, error)
}

// RandomSampler is the interactive model: each challenge is an
// independent uniformly-random nonzero field element, as if freshly
// sampled by a verifier and sent to the prover.
type RandomSampler struct {
	be curve.Backend
}

// NewRandomSampler returns a Sampler backed by the backend's own random
// scalar generation.
func NewRandomSampler(be curve.Backend) *RandomSampler {
	return &RandomSampler{be: be}
}

func (r *RandomSampler) Next() (curve.Scalar, error) {
	for {
		s, err := r.be.RandomScalar()
		if err != nil {
			return nil, err
		}
		if !s.IsZero() {
			return s, nil
		}
	}
}

// FiatShamir replaces the verifier's random samples with a hash chain
// over everything absorbed into the transcript so far, the non-interactive
// substitute spec.md's design notes call for. Grounded on
// bulletproofs/bip.go's hashIP/HashBP pattern, rehashed with blake3.
type FiatShamir struct {
	be    curve.Backend
	state []byte
}

// NewFiatShamir seeds a transcript with a domain-separation label.
func NewFiatShamir(be curve.Backend, label []byte) *FiatShamir {
	seed := blake3.Sum256(label)
	return &FiatShamir{be: be, state: seed[:]}
}

// Absorb mixes additional transcript data (commitments, public inputs)
// into the hash chain before the next challenge is derived.
func (f *FiatShamir) Absorb(data []byte) {
	h := blake3.New()
	h.Write(f.state)
	h.Write(data)
	f.state = h.Sum(nil)
}

// Next derives the next challenge from the current transcript state,
// rehashing until a nonzero scalar results (ZERO_CHALLENGE, per spec.md
// §7, is resampled internally and never surfaces to the caller).
func (f *FiatShamir) Next() (curve.Scalar, error) {
	for {
		h := blake3.New()
		h.Write(f.state)
		h.Write([]byte("challenge"))
		digest := h.Sum(nil)
		f.state = digest

		s := f.be.NewScalar().SetBytes(digest)
		if !s.IsZero() {
			return s, nil
		}
	}
}

var _ Sampler = (*RandomSampler)(nil)
var _ Sampler = (*FiatShamir)(nil)
