// Package zkmul implements the ZK-Mul argument: a zero-knowledge proof
// that two committed degree-1 polynomials l(x)=a+sl*x, r(x)=b+sr*x
// multiply to a third polynomial t(x)=t0+t1*x+t2*x^2, without revealing
// a, b, sl, sr, t0, t1 or t2 individually.
package zkmul

import (
	"github.com/vectorfold/ipacore/curve"
	"github.com/vectorfold/ipacore/zkerr"
)

// Witness is the prover's secret input: the constant and linear
// coefficients of l(x) and r(x).
type Witness struct {
	A, SL curve.Scalar
	B, SR curve.Scalar
}

// Zeroize overwrites the witness scalars, best-effort, once a proof has
// been emitted.
func (w *Witness) Zeroize(be curve.Backend) {
	zero := be.ScalarZero()
	w.A, w.SL, w.B, w.SR = zero, zero, zero, zero
}

// Bases is the generator set shared by every commitment in the argument:
// two generators for the (a,b)/(sl,sr) pairs and one blinding generator.
type Bases struct {
	G, H curve.Point
	Bl   curve.Point
}

// Blindings holds the random scalars hiding each commitment.
type Blindings struct {
	Alpha, Rho         curve.Scalar
	Tau0, Tau1, Tau2   curve.Scalar
}

// Commitments is the public transcript the prover sends before the
// challenge x is sampled.
type Commitments struct {
	Ca, Cs         curve.Point
	Ct0, Ct1, Ct2  curve.Point
}

// ComputeT returns the coefficients of t(x) = l(x)*r(x) =
// (a+sl*x)*(b+sr*x) = a*b + (a*sr+b*sl)*x + sl*sr*x^2.
func ComputeT(be curve.Backend, w Witness) (t0, t1, t2 curve.Scalar) {
	t0 = be.NewScalar().Mul(w.A, w.B)

	asr := be.NewScalar().Mul(w.A, w.SR)
	bsl := be.NewScalar().Mul(w.B, w.SL)
	t1 = be.NewScalar().Add(asr, bsl)

	t2 = be.NewScalar().Mul(w.SL, w.SR)
	return t0, t1, t2
}

// Commit builds every commitment the prover sends before the verifier's
// challenge is known: Ca = a*G+b*H+alpha*Bl, Cs = sl*G+sr*H+rho*Bl, and
// Ct_i = t_i*G+tau_i*Bl for i in {0,1,2}.
func Commit(be curve.Backend, w Witness, bases Bases, bl Blindings) Commitments {
	ca := be.NewPoint().Add(
		be.NewPoint().ScalarMul(bases.G, w.A),
		be.NewPoint().ScalarMul(bases.H, w.B),
	)
	ca.Add(ca, be.NewPoint().ScalarMul(bases.Bl, bl.Alpha))

	cs := be.NewPoint().Add(
		be.NewPoint().ScalarMul(bases.G, w.SL),
		be.NewPoint().ScalarMul(bases.H, w.SR),
	)
	cs.Add(cs, be.NewPoint().ScalarMul(bases.Bl, bl.Rho))

	t0, t1, t2 := ComputeT(be, w)

	ct0 := be.NewPoint().Add(be.NewPoint().ScalarMul(bases.G, t0), be.NewPoint().ScalarMul(bases.Bl, bl.Tau0))
	ct1 := be.NewPoint().Add(be.NewPoint().ScalarMul(bases.G, t1), be.NewPoint().ScalarMul(bases.Bl, bl.Tau1))
	ct2 := be.NewPoint().Add(be.NewPoint().ScalarMul(bases.G, t2), be.NewPoint().ScalarMul(bases.Bl, bl.Tau2))

	return Commitments{Ca: ca, Cs: cs, Ct0: ct0, Ct1: ct1, Ct2: ct2}
}

// Opening is what the prover reveals once the verifier's challenge x is
// fixed: the evaluations l(x), r(x), and the two combined blindings that
// let the verifier check consistency without learning a, b, sl, sr, or
// any t_i individually.
type Opening struct {
	L, R curve.Scalar
	Mu   curve.Scalar
	TauX curve.Scalar
}

// Open evaluates l(x)=a+sl*x, r(x)=b+sr*x, and folds the per-commitment
// blindings into mu = alpha+rho*x and tau_x = tau0+tau1*x+tau2*x^2.
func Open(be curve.Backend, w Witness, bl Blindings, x curve.Scalar) Opening {
	l := be.NewScalar().Add(w.A, be.NewScalar().Mul(w.SL, x))
	r := be.NewScalar().Add(w.B, be.NewScalar().Mul(w.SR, x))

	mu := be.NewScalar().Add(bl.Alpha, be.NewScalar().Mul(bl.Rho, x))

	x2 := be.NewScalar().Mul(x, x)
	tauX := be.NewScalar().Add(bl.Tau0, be.NewScalar().Mul(bl.Tau1, x))
	tauX = be.NewScalar().Add(tauX, be.NewScalar().Mul(bl.Tau2, x2))

	return Opening{L: l, R: r, Mu: mu, TauX: tauX}
}

// Verify checks the opening against the commitments and challenge x:
//
//  1. Ca + x*Cs == l*G + r*H + mu*Bl        (l, r are consistent openings)
//  2. Ct0 + x*Ct1 + x^2*Ct2 == (l*r)*G + tau_x*Bl   (t(x) == l(x)*r(x))
func Verify(be curve.Backend, bases Bases, c Commitments, x curve.Scalar, o Opening) (bool, error) {
	if bases.G == nil || bases.H == nil || bases.Bl == nil {
		return false, zkerr.ErrBackendFailure
	}

	lhs1 := be.NewPoint().Add(c.Ca, be.NewPoint().ScalarMul(c.Cs, x))
	rhs1 := be.NewPoint().Add(
		be.NewPoint().ScalarMul(bases.G, o.L),
		be.NewPoint().ScalarMul(bases.H, o.R),
	)
	rhs1.Add(rhs1, be.NewPoint().ScalarMul(bases.Bl, o.Mu))
	if !lhs1.Equal(rhs1) {
		return false, nil
	}

	x2 := be.NewScalar().Mul(x, x)
	lhs2 := be.NewPoint().Add(c.Ct0, be.NewPoint().ScalarMul(c.Ct1, x))
	lhs2.Add(lhs2, be.NewPoint().ScalarMul(c.Ct2, x2))

	lr := be.NewScalar().Mul(o.L, o.R)
	rhs2 := be.NewPoint().Add(
		be.NewPoint().ScalarMul(bases.G, lr),
		be.NewPoint().ScalarMul(bases.Bl, o.TauX),
	)

	return lhs2.Equal(rhs2), nil
}
