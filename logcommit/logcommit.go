// Package logcommit implements the log-proof-of-commitment: the
// single-vector specialization of the logarithmic inner-product argument
// that proves a commitment C opens to a specific vector a against
// generators G, without involving a second committed vector or the
// cross-term generator Q that the general two-vector argument (package
// logipa) needs. Grounded on
// original_source/src/log_proof_commitment.rs.
package logcommit

import (
	"github.com/vectorfold/ipacore/curve"
	"github.com/vectorfold/ipacore/fold"
	"github.com/vectorfold/ipacore/zkerr"
)

// padToPowerOfTwo appends zero coordinates (and matching identity
// generators) so len(a) becomes the next power of two, matching
// log_proof_commitment.rs's padding before the fold loop starts.
func padToPowerOfTwo(be curve.Backend, a []curve.Scalar, g []curve.Point) ([]curve.Scalar, []curve.Point) {
	n := 1
	for n < len(a) {
		n *= 2
	}
	if n == 0 {
		n = 1
	}
	if n == len(a) {
		return a, g
	}

	paddedA := make([]curve.Scalar, n)
	copy(paddedA, a)
	for i := len(a); i < n; i++ {
		paddedA[i] = be.ScalarZero()
	}

	paddedG := make([]curve.Point, n)
	copy(paddedG, g)
	for i := len(g); i < n; i++ {
		paddedG[i] = be.Identity()
	}

	return paddedA, paddedG
}

// RoundCommitment is the L, R pair the prover sends at the start of a
// round, before the challenge for that round is known.
type RoundCommitment struct {
	L, R curve.Point
}

// Prover holds the folding state for the witness vector and its
// generator vector. A is destroyed (overwritten with the folded vector)
// as rounds progress; call Zeroize after the final round to scrub it.
type Prover struct {
	be curve.Backend
	a  []curve.Scalar
	g  []curve.Point
}

// NewProver pads a and g to a common power-of-two length and starts a
// folding session over them.
func NewProver(be curve.Backend, a []curve.Scalar, g []curve.Point) (*Prover, error) {
	if len(a) != len(g) {
		return nil, zkerr.ErrLengthMismatch
	}
	if len(a) == 0 {
		return nil, zkerr.ErrEmptyVector
	}
	paddedA, paddedG := padToPowerOfTwo(be, a, g)
	return &Prover{
		be: be,
		a:  append([]curve.Scalar(nil), paddedA...),
		g:  append([]curve.Point(nil), paddedG...),
	}, nil
}

// Done reports whether the prover has folded down to a single coordinate.
func (p *Prover) Done() bool { return len(p.a) == 1 }

// Final returns the last remaining scalar once Done is true.
func (p *Prover) Final() curve.Scalar { return p.a[0] }

// CommitRound computes this round's cross-term commitments L, R via the
// secondary diagonal of a against g.
func (p *Prover) CommitRound() (RoundCommitment, error) {
	if p.Done() {
		return RoundCommitment{}, zkerr.ErrProofExhausted
	}
	L, R, err := fold.SecondaryDiagonal(p.be, p.a, p.g)
	if err != nil {
		return RoundCommitment{}, err
	}
	return RoundCommitment{L: L, R: R}, nil
}

// FoldRound consumes the round's challenge u, folding a by u and g by
// u^-1.
func (p *Prover) FoldRound(u curve.Scalar) error {
	if p.Done() {
		return zkerr.ErrProofExhausted
	}
	if u.IsZero() {
		return zkerr.ErrZeroChallenge
	}
	uInv := p.be.NewScalar().Inverse(u)

	aFolded, err := fold.Field(p.be, p.a, u)
	if err != nil {
		return err
	}
	gFolded, err := fold.Group(p.be, p.g, uInv)
	if err != nil {
		return err
	}
	p.a, p.g = aFolded, gFolded
	return nil
}

// Zeroize overwrites the remaining witness coordinate.
func (p *Prover) Zeroize() {
	zero := p.be.ScalarZero()
	for i := range p.a {
		p.a[i] = zero
	}
}

// Verifier mirrors the prover's folding of the generator vector and the
// running commitment C, accumulating each round's L, R, u until a single
// generator remains.
type Verifier struct {
	be curve.Backend
	g  []curve.Point
	c  curve.Point
}

// NewVerifier pads g to the same power-of-two length Prover would derive
// from a vector of length n, and starts a verifier session against
// commitment c.
func NewVerifier(be curve.Backend, c curve.Point, g []curve.Point, n int) (*Verifier, error) {
	dummy := make([]curve.Scalar, n)
	for i := range dummy {
		dummy[i] = be.ScalarZero()
	}
	_, paddedG := padToPowerOfTwo(be, dummy, g)
	if len(paddedG) == 0 {
		return nil, zkerr.ErrEmptyVector
	}
	return &Verifier{
		be: be,
		g:  append([]curve.Point(nil), paddedG...),
		c:  be.NewPoint().Set(c),
	}, nil
}

// Done reports whether the verifier has folded down to a single
// generator.
func (v *Verifier) Done() bool { return len(v.g) == 1 }

// FoldRound absorbs a round's L, R commitments and challenge u, updating
// the running commitment to C' = L*u^2 + C + R*u^-2 and folding g by
// u^-1.
func (v *Verifier) FoldRound(rc RoundCommitment, u curve.Scalar) error {
	if v.Done() {
		return zkerr.ErrProofExhausted
	}
	if u.IsZero() {
		return zkerr.ErrZeroChallenge
	}

	u2 := v.be.NewScalar().Mul(u, u)
	u2Inv := v.be.NewScalar().Inverse(u2)

	next := v.be.NewPoint().Add(v.be.NewPoint().ScalarMul(rc.L, u2), v.c)
	next.Add(next, v.be.NewPoint().ScalarMul(rc.R, u2Inv))
	v.c = next

	uInv := v.be.NewScalar().Inverse(u)
	gFolded, err := fold.Group(v.be, v.g, uInv)
	if err != nil {
		return err
	}
	v.g = gFolded
	return nil
}

// Accept checks, once Done is true, that the claimed final scalar
// satisfies C == final*G_final.
func (v *Verifier) Accept(final curve.Scalar) (bool, error) {
	if !v.Done() {
		return false, zkerr.ErrProofExhausted
	}
	want := v.be.NewPoint().ScalarMul(v.g[0], final)
	return want.Equal(v.c), nil
}
