// Package zkipa implements the linear zero-knowledge inner-product
// argument: a proof that a committed vector pair (a, b) has a claimed
// inner product v = <a,b>, without revealing a or b, generalizing zkmul
// from scalars to vectors.
package zkipa

import (
	"github.com/vectorfold/ipacore/curve"
	"github.com/vectorfold/ipacore/vecpoly"
	"github.com/vectorfold/ipacore/zkerr"
)

// Witness is the prover's secret input: the vectors a, b being argued
// about, and the blinding vectors sl, sr hiding l(x), r(x).
type Witness struct {
	A, SL []curve.Scalar
	B, SR []curve.Scalar
}

// Zeroize overwrites the witness vectors, best-effort, once a proof has
// been emitted.
func (w *Witness) Zeroize(be curve.Backend) {
	zero := be.ScalarZero()
	for _, v := range [][]curve.Scalar{w.A, w.SL, w.B, w.SR} {
		for i := range v {
			v[i] = zero
		}
	}
}

// Bases is the generator set: vector bases G, H for a, b, a scalar base
// G for the inner-product value, and a blinding base Bl.
type Bases struct {
	Gv, Hv []curve.Point
	G      curve.Point
	Bl     curve.Point
}

// Blindings holds the random scalars hiding each commitment.
type Blindings struct {
	Alpha, Rho curve.Scalar
	Gamma      curve.Scalar
	Tau1, Tau2 curve.Scalar
}

// Commitments is the public transcript sent before the challenge x.
type Commitments struct {
	Ca, Cs curve.Point
	Cv     curve.Point
	Ct1    curve.Point
	Ct2    curve.Point
}

func vecCommit(be curve.Backend, vals []curve.Scalar, bases []curve.Point) (curve.Point, error) {
	if len(vals) != len(bases) {
		return nil, zkerr.ErrLengthMismatch
	}
	acc := be.Identity()
	term := be.NewPoint()
	for i := range vals {
		term.ScalarMul(bases[i], vals[i])
		acc.Add(acc, term)
	}
	return acc, nil
}

// Commit builds Ca, Cs, Cv, Ct1, Ct2 from the witness and blindings.
func Commit(be curve.Backend, w Witness, bases Bases, bl Blindings) (Commitments, error) {
	if len(w.A) != len(w.B) || len(w.A) != len(w.SL) || len(w.A) != len(w.SR) {
		return Commitments{}, zkerr.ErrLengthMismatch
	}

	caA, err := vecCommit(be, w.A, bases.Gv)
	if err != nil {
		return Commitments{}, err
	}
	caB, err := vecCommit(be, w.B, bases.Hv)
	if err != nil {
		return Commitments{}, err
	}
	ca := be.NewPoint().Add(caA, caB)
	ca.Add(ca, be.NewPoint().ScalarMul(bases.Bl, bl.Alpha))

	csA, err := vecCommit(be, w.SL, bases.Gv)
	if err != nil {
		return Commitments{}, err
	}
	csB, err := vecCommit(be, w.SR, bases.Hv)
	if err != nil {
		return Commitments{}, err
	}
	cs := be.NewPoint().Add(csA, csB)
	cs.Add(cs, be.NewPoint().ScalarMul(bases.Bl, bl.Rho))

	v, err := vecpoly.InnerProduct(be, w.A, w.B)
	if err != nil {
		return Commitments{}, err
	}
	cv := be.NewPoint().Add(be.NewPoint().ScalarMul(bases.G, v), be.NewPoint().ScalarMul(bases.Bl, bl.Gamma))

	t1, t2, err := computeT1T2(be, w)
	if err != nil {
		return Commitments{}, err
	}
	ct1 := be.NewPoint().Add(be.NewPoint().ScalarMul(bases.G, t1), be.NewPoint().ScalarMul(bases.Bl, bl.Tau1))
	ct2 := be.NewPoint().Add(be.NewPoint().ScalarMul(bases.G, t2), be.NewPoint().ScalarMul(bases.Bl, bl.Tau2))

	return Commitments{Ca: ca, Cs: cs, Cv: cv, Ct1: ct1, Ct2: ct2}, nil
}

// computeT1T2 returns the degree-1 and degree-2 coefficients of
// t(x) = <l(x),r(x)> where l(x)=a+sl*x, r(x)=b+sr*x. t0 = <a,b> is
// bound to Cv rather than committed separately.
func computeT1T2(be curve.Backend, w Witness) (t1, t2 curve.Scalar, err error) {
	asr, err := vecpoly.InnerProduct(be, w.A, w.SR)
	if err != nil {
		return nil, nil, err
	}
	slb, err := vecpoly.InnerProduct(be, w.SL, w.B)
	if err != nil {
		return nil, nil, err
	}
	t1 = be.NewScalar().Add(asr, slb)

	t2, err = vecpoly.InnerProduct(be, w.SL, w.SR)
	if err != nil {
		return nil, nil, err
	}
	return t1, t2, nil
}

// Opening is what the prover reveals once x is fixed.
type Opening struct {
	L, R []curve.Scalar
	Mu   curve.Scalar
	TauX curve.Scalar
}

// Open evaluates l(x), r(x) and folds the blindings into mu and tau_x.
func Open(be curve.Backend, w Witness, bl Blindings, x curve.Scalar) (Opening, error) {
	if len(w.A) != len(w.SL) || len(w.B) != len(w.SR) {
		return Opening{}, zkerr.ErrLengthMismatch
	}

	l := make([]curve.Scalar, len(w.A))
	for i := range w.A {
		l[i] = be.NewScalar().Add(w.A[i], be.NewScalar().Mul(w.SL[i], x))
	}
	r := make([]curve.Scalar, len(w.B))
	for i := range w.B {
		r[i] = be.NewScalar().Add(w.B[i], be.NewScalar().Mul(w.SR[i], x))
	}

	mu := be.NewScalar().Add(bl.Alpha, be.NewScalar().Mul(bl.Rho, x))

	x2 := be.NewScalar().Mul(x, x)
	tauX := be.NewScalar().Add(bl.Gamma, be.NewScalar().Mul(bl.Tau1, x))
	tauX = be.NewScalar().Add(tauX, be.NewScalar().Mul(bl.Tau2, x2))

	return Opening{L: l, R: r, Mu: mu, TauX: tauX}, nil
}

// Verify checks:
//
//  1. Ca + x*Cs == <l,Gv> + <r,Hv> + mu*Bl
//  2. Cv + x*Ct1 + x^2*Ct2 == <l,r>*G + tau_x*Bl
func Verify(be curve.Backend, bases Bases, c Commitments, x curve.Scalar, o Opening) (bool, error) {
	lhs1 := be.NewPoint().Add(c.Ca, be.NewPoint().ScalarMul(c.Cs, x))

	lG, err := vecCommit(be, o.L, bases.Gv)
	if err != nil {
		return false, err
	}
	rH, err := vecCommit(be, o.R, bases.Hv)
	if err != nil {
		return false, err
	}
	rhs1 := be.NewPoint().Add(lG, rH)
	rhs1.Add(rhs1, be.NewPoint().ScalarMul(bases.Bl, o.Mu))

	if !lhs1.Equal(rhs1) {
		return false, nil
	}

	x2 := be.NewScalar().Mul(x, x)
	lhs2 := be.NewPoint().Add(c.Cv, be.NewPoint().ScalarMul(c.Ct1, x))
	lhs2.Add(lhs2, be.NewPoint().ScalarMul(c.Ct2, x2))

	lr, err := vecpoly.InnerProduct(be, o.L, o.R)
	if err != nil {
		return false, err
	}
	rhs2 := be.NewPoint().Add(be.NewPoint().ScalarMul(bases.G, lr), be.NewPoint().ScalarMul(bases.Bl, o.TauX))

	return lhs2.Equal(rhs2), nil
}
