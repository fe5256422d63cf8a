// Package logipa implements the logarithmic, Bulletproofs-style recursive
// inner-product argument: a proof that a committed pair of length-n
// vectors a, b (n a power of two) has a claimed inner product <a,b>,
// folding both vectors and their generator vectors by half each round
// until a single coordinate remains. Grounded on
// original_source/src/log_ipa_proof.rs.
package logipa

import (
	"github.com/vectorfold/ipacore/curve"
	"github.com/vectorfold/ipacore/fold"
	"github.com/vectorfold/ipacore/vecpoly"
	"github.com/vectorfold/ipacore/zkerr"
)

// RoundCommitment is the L, R pair the prover sends at the start of a
// round, before the challenge for that round is known.
type RoundCommitment struct {
	L, R curve.Point
}

// Prover holds the folding state across rounds for both vectors, their
// generator vectors, and the cross-term generator Q. A and B are
// destroyed (overwritten with the folded vectors) as rounds progress;
// call Zeroize after the final round to scrub them.
type Prover struct {
	be   curve.Backend
	a, b []curve.Scalar
	g, h []curve.Point
	q    curve.Point
}

// NewProver starts a log-IPA proof session over witness vectors a, b and
// generator vectors g, h, all of which must share a common power-of-two
// length, plus the cross-term generator q.
func NewProver(be curve.Backend, a, b []curve.Scalar, g, h []curve.Point, q curve.Point) (*Prover, error) {
	n := len(a)
	if n != len(b) || n != len(g) || n != len(h) {
		return nil, zkerr.ErrLengthMismatch
	}
	if n == 0 {
		return nil, zkerr.ErrEmptyVector
	}
	if !isPowerOfTwo(n) {
		return nil, zkerr.ErrNonPowerOfTwo
	}
	return &Prover{
		be: be,
		a:  append([]curve.Scalar(nil), a...),
		b:  append([]curve.Scalar(nil), b...),
		g:  append([]curve.Point(nil), g...),
		h:  append([]curve.Point(nil), h...),
		q:  q,
	}, nil
}

// Done reports whether the prover has folded down to a single coordinate
// in each vector.
func (p *Prover) Done() bool { return len(p.a) == 1 }

// Final returns the last remaining scalar pair once Done is true.
func (p *Prover) Final() (a, b curve.Scalar) {
	return p.a[0], p.b[0]
}

// CommitRound computes this round's L, R cross-term commitments, each
// summing the three secondary diagonals (a,G), (b,H), and the cross
// inner-product weighted by Q:
//
//	L = <a_lo,G_hi> + <b_hi,H_lo> + <a_lo,b_hi>*Q
//	R = <a_hi,G_lo> + <b_lo,H_hi> + <a_hi,b_lo>*Q
func (p *Prover) CommitRound() (RoundCommitment, error) {
	if p.Done() {
		return RoundCommitment{}, zkerr.ErrProofExhausted
	}

	aLo, aHi, err := fold.Split(p.a)
	if err != nil {
		return RoundCommitment{}, err
	}
	bLo, bHi, err := fold.Split(p.b)
	if err != nil {
		return RoundCommitment{}, err
	}
	gLo, gHi, err := fold.Split(p.g)
	if err != nil {
		return RoundCommitment{}, err
	}
	hLo, hHi, err := fold.Split(p.h)
	if err != nil {
		return RoundCommitment{}, err
	}

	cL, err := vecpoly.InnerProduct(p.be, aLo, bHi)
	if err != nil {
		return RoundCommitment{}, err
	}
	cR, err := vecpoly.InnerProduct(p.be, aHi, bLo)
	if err != nil {
		return RoundCommitment{}, err
	}

	L, err := diagonalSum(p.be, aLo, gHi, bHi, hLo, cL, p.q)
	if err != nil {
		return RoundCommitment{}, err
	}
	R, err := diagonalSum(p.be, aHi, gLo, bLo, hHi, cR, p.q)
	if err != nil {
		return RoundCommitment{}, err
	}

	return RoundCommitment{L: L, R: R}, nil
}

// diagonalSum returns <av,gv> + <bv,hv> + c*q.
func diagonalSum(be curve.Backend, av []curve.Scalar, gv []curve.Point, bv []curve.Scalar, hv []curve.Point, c curve.Scalar, q curve.Point) (curve.Point, error) {
	acc := be.Identity()
	term := be.NewPoint()
	if len(av) != len(gv) || len(bv) != len(hv) {
		return nil, zkerr.ErrLengthMismatch
	}
	for i := range av {
		term.ScalarMul(gv[i], av[i])
		acc.Add(acc, term)
	}
	for i := range bv {
		term.ScalarMul(hv[i], bv[i])
		acc.Add(acc, term)
	}
	acc.Add(acc, be.NewPoint().ScalarMul(q, c))
	return acc, nil
}

// FoldRound consumes the round's challenge u, folding a by u, b by u^-1,
// G by u^-1, and H by u, matching log_ipa_proof.rs's asymmetric folding
// of the two witness vectors and their generator vectors.
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
	bFolded, err := fold.Field(p.be, p.b, uInv)
	if err != nil {
		return err
	}
	gFolded, err := fold.Group(p.be, p.g, uInv)
	if err != nil {
		return err
	}
	hFolded, err := fold.Group(p.be, p.h, u)
	if err != nil {
		return err
	}

	p.a, p.b, p.g, p.h = aFolded, bFolded, gFolded, hFolded
	return nil
}

// Zeroize overwrites the remaining witness coordinates.
func (p *Prover) Zeroize() {
	zero := p.be.ScalarZero()
	for i := range p.a {
		p.a[i] = zero
	}
	for i := range p.b {
		p.b[i] = zero
	}
}

// Verifier mirrors the prover's folding of the generator vectors and the
// running commitment P, accumulating each round's L, R, u until a single
// generator pair remains.
type Verifier struct {
	be   curve.Backend
	g, h []curve.Point
	q    curve.Point
	p    curve.Point
}

// NewVerifier starts a verifier session over the initial combined
// commitment p = <a,G> + <b,H> + <a,b>*Q and the generator vectors g, h.
func NewVerifier(be curve.Backend, p curve.Point, g, h []curve.Point, q curve.Point) (*Verifier, error) {
	n := len(g)
	if n != len(h) {
		return nil, zkerr.ErrLengthMismatch
	}
	if n == 0 {
		return nil, zkerr.ErrEmptyVector
	}
	if !isPowerOfTwo(n) {
		return nil, zkerr.ErrNonPowerOfTwo
	}
	return &Verifier{
		be: be,
		g:  append([]curve.Point(nil), g...),
		h:  append([]curve.Point(nil), h...),
		q:  q,
		p:  be.NewPoint().Set(p),
	}, nil
}

// Done reports whether the verifier has folded down to a single
// generator pair.
func (v *Verifier) Done() bool { return len(v.g) == 1 }

// FoldRound absorbs a round's L, R commitments and challenge u, updating
// the running commitment to P' = L*u^2 + P + R*u^-2 and folding G by
// u^-1, H by u.
func (v *Verifier) FoldRound(rc RoundCommitment, u curve.Scalar) error {
	if v.Done() {
		return zkerr.ErrProofExhausted
	}
	if u.IsZero() {
		return zkerr.ErrZeroChallenge
	}

	u2 := v.be.NewScalar().Mul(u, u)
	u2Inv := v.be.NewScalar().Inverse(u2)

	next := v.be.NewPoint().Add(v.be.NewPoint().ScalarMul(rc.L, u2), v.p)
	next.Add(next, v.be.NewPoint().ScalarMul(rc.R, u2Inv))
	v.p = next

	uInv := v.be.NewScalar().Inverse(u)
	gFolded, err := fold.Group(v.be, v.g, uInv)
	if err != nil {
		return err
	}
	hFolded, err := fold.Group(v.be, v.h, u)
	if err != nil {
		return err
	}
	v.g, v.h = gFolded, hFolded
	return nil
}

// Accept checks, once Done is true, that the claimed final scalars
// satisfy P == a*G_final + b*H_final + (a*b)*Q.
func (v *Verifier) Accept(a, b curve.Scalar) (bool, error) {
	if !v.Done() {
		return false, zkerr.ErrProofExhausted
	}
	ab := v.be.NewScalar().Mul(a, b)
	want := v.be.NewPoint().Add(
		v.be.NewPoint().ScalarMul(v.g[0], a),
		v.be.NewPoint().ScalarMul(v.h[0], b),
	)
	want.Add(want, v.be.NewPoint().ScalarMul(v.q, ab))
	return want.Equal(v.p), nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
