// Package polycommit implements the polynomial-evaluation argument: commit
// to a polynomial's coefficients with Pedersen, then open a claimed
// evaluation at a challenge point x by revealing the coefficients and
// letting the verifier recompute both the commitment and p(x).
package polycommit

import (
	"github.com/vectorfold/ipacore/curve"
	"github.com/vectorfold/ipacore/pedersen"
	"github.com/vectorfold/ipacore/zkerr"
)

// Commit returns the Pedersen commitment to coeffs under bases, one
// generator per coefficient.
func Commit(be curve.Backend, coeffs []curve.Scalar, bases []curve.Point) (curve.Point, error) {
	return pedersen.Commit(be, coeffs, bases)
}

// Opening is the revealed data backing a polynomial commitment's claimed
// evaluation.
type Opening struct {
	Coeffs []curve.Scalar
	X      curve.Scalar
	Value  curve.Scalar
}

// evaluate computes sum(coeffs[i] * x^i).
func evaluate(be curve.Backend, coeffs []curve.Scalar, x curve.Scalar) curve.Scalar {
	out := be.ScalarZero()
	xPow := be.ScalarOne()
	term := be.NewScalar()
	for _, c := range coeffs {
		term.Mul(c, xPow)
		out = be.NewScalar().Add(out, term)
		xPow = be.NewScalar().Mul(xPow, x)
	}
	return out
}

// Open evaluates the committed polynomial at x and returns the opening a
// verifier needs.
func Open(be curve.Backend, coeffs []curve.Scalar, x curve.Scalar) Opening {
	return Opening{
		Coeffs: coeffs,
		X:      x,
		Value:  evaluate(be, coeffs, x),
	}
}

// Verify checks that commitment is indeed the Pedersen commitment to
// opening.Coeffs under bases, and that opening.Value equals
// p(opening.X) for that same coefficient vector.
func Verify(be curve.Backend, commitment curve.Point, bases []curve.Point, opening Opening) (bool, error) {
	if len(opening.Coeffs) != len(bases) {
		return false, zkerr.ErrLengthMismatch
	}

	recomputed, err := Commit(be, opening.Coeffs, bases)
	if err != nil {
		return false, err
	}
	if !recomputed.Equal(commitment) {
		return false, nil
	}

	wantValue := evaluate(be, opening.Coeffs, opening.X)
	return wantValue.Equal(opening.Value), nil
}
