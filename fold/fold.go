// Package fold implements the halving primitives shared by the
// logarithmic inner-product argument and its single-vector
// specialization: splitting a vector into even/odd halves, folding a
// scalar vector and a point vector by a challenge u and its inverse, and
// computing the secondary-diagonal cross-term commitments L, R.
package fold

import (
	"github.com/vectorfold/ipacore/curve"
	"github.com/vectorfold/ipacore/zkerr"
)

// Split divides a into its even-indexed half l and odd-indexed half r:
// l_i = a_2i, r_i = a_2i+1. len(a) must be even.
func Split[T any](a []T) (l, r []T, err error) {
	if len(a)%2 != 0 {
		return nil, nil, zkerr.ErrNonPowerOfTwo
	}
	n := len(a) / 2
	l = make([]T, n)
	r = make([]T, n)
	for i := 0; i < n; i++ {
		l[i] = a[2*i]
		r[i] = a[2*i+1]
	}
	return l, r, nil
}

// Field folds a scalar vector a into a'_i = a_2i*u + a_2i+1*u^-1.
func Field(be curve.Backend, a []curve.Scalar, u curve.Scalar) ([]curve.Scalar, error) {
	if u.IsZero() {
		return nil, zkerr.ErrZeroChallenge
	}
	l, r, err := Split(a)
	if err != nil {
		return nil, err
	}

	uInv := be.NewScalar().Inverse(u)
	out := make([]curve.Scalar, len(l))
	for i := range l {
		left := be.NewScalar().Mul(l[i], u)
		right := be.NewScalar().Mul(r[i], uInv)
		out[i] = be.NewScalar().Add(left, right)
	}
	return out, nil
}

// Group folds a point vector G into G'_i = G_2i*u^-1 + G_2i+1*u, the
// opposite weighting from Field: the caller passes u^-1 directly
// (mirroring the verifier, which folds generators by the inverse of the
// challenge it used to fold the field vector), and the even half takes
// that inverse while the odd half takes u, so that
// <fold_field(a,u), fold_group(G,u^-1)> == L*u^2 + C + R*u^-2, matching
// succinct_proof.rs's fold_group(g, &u_inv).
func Group(be curve.Backend, g []curve.Point, uInv curve.Scalar) ([]curve.Point, error) {
	if uInv.IsZero() {
		return nil, zkerr.ErrZeroChallenge
	}
	l, r, err := Split(g)
	if err != nil {
		return nil, err
	}

	u := be.NewScalar().Inverse(uInv)
	out := make([]curve.Point, len(l))
	for i := range l {
		left := be.NewPoint().ScalarMul(l[i], uInv)
		right := be.NewPoint().ScalarMul(r[i], u)
		out[i] = be.NewPoint().Add(left, right)
	}
	return out, nil
}

// SecondaryDiagonal computes the cross-term commitments L, R used in each
// folding round: L = commit(l, g2) (low half of a against the high half
// of the generators), R = commit(r, g1) (high half of a against the low
// half of the generators), matching succinct_proof.rs's
// compute_secondary_diagonal.
func SecondaryDiagonal(be curve.Backend, a []curve.Scalar, g []curve.Point) (L, R curve.Point, err error) {
	if len(a) != len(g) {
		return nil, nil, zkerr.ErrLengthMismatch
	}
	al, ar, err := Split(a)
	if err != nil {
		return nil, nil, err
	}
	g1, g2, err := Split(g)
	if err != nil {
		return nil, nil, err
	}

	L = be.Identity()
	term := be.NewPoint()
	for i := range al {
		term.ScalarMul(g2[i], al[i])
		L.Add(L, term)
	}

	R = be.Identity()
	for i := range ar {
		term.ScalarMul(g1[i], ar[i])
		R.Add(R, term)
	}
	return L, R, nil
}
