// Package vecpoly implements vector polynomials: polynomials whose
// coefficients are vectors of scalars rather than plain scalars, plus the
// scalar-coefficient inner-product-of-evaluations operation the ZK-IPA
// argument folds through t(x) = l(x)*r(x).
package vecpoly

import (
	"github.com/vectorfold/ipacore/curve"
	"github.com/vectorfold/ipacore/zkerr"
)

// Poly is a polynomial sum(Coeffs[i] * x^i) whose coefficients are
// equal-length scalar vectors.
type Poly struct {
	Coeffs [][]curve.Scalar
}

// New builds a Poly from its coefficient vectors, all of which must share
// a length.
func New(coeffs [][]curve.Scalar) (*Poly, error) {
	if len(coeffs) == 0 {
		return nil, zkerr.ErrEmptyVector
	}
	width := len(coeffs[0])
	for _, c := range coeffs {
		if len(c) != width {
			return nil, zkerr.ErrLengthMismatch
		}
	}
	return &Poly{Coeffs: coeffs}, nil
}

// Width returns the shared length of every coefficient vector.
func (p *Poly) Width() int {
	if len(p.Coeffs) == 0 {
		return 0
	}
	return len(p.Coeffs[0])
}

// Degree returns the polynomial's degree.
func (p *Poly) Degree() int {
	return len(p.Coeffs) - 1
}

// Evaluate returns p(x), a single scalar vector of length Width().
func (p *Poly) Evaluate(be curve.Backend, x curve.Scalar) []curve.Scalar {
	width := p.Width()
	out := make([]curve.Scalar, width)
	for i := range out {
		out[i] = be.ScalarZero()
	}

	xPow := be.ScalarOne()
	term := be.NewScalar()
	for _, coeff := range p.Coeffs {
		for i := 0; i < width; i++ {
			term.Mul(coeff[i], xPow)
			out[i] = be.NewScalar().Add(out[i], term)
		}
		xPow = be.NewScalar().Mul(xPow, x)
	}
	return out
}

// Add returns the coefficient-wise vector sum a+b.
func Add(be curve.Backend, a, b []curve.Scalar) ([]curve.Scalar, error) {
	if len(a) != len(b) {
		return nil, zkerr.ErrLengthMismatch
	}
	out := make([]curve.Scalar, len(a))
	for i := range a {
		out[i] = be.NewScalar().Add(a[i], b[i])
	}
	return out, nil
}

// Sub returns the coefficient-wise vector difference a-b.
func Sub(be curve.Backend, a, b []curve.Scalar) ([]curve.Scalar, error) {
	if len(a) != len(b) {
		return nil, zkerr.ErrLengthMismatch
	}
	out := make([]curve.Scalar, len(a))
	for i := range a {
		out[i] = be.NewScalar().Sub(a[i], b[i])
	}
	return out, nil
}

// HadamardMul returns the coordinate-wise (Hadamard) product a*b, NOT the
// inner product. Used internally where vector*vector truly means
// pairwise, as distinct from InnerProduct below.
func HadamardMul(be curve.Backend, a, b []curve.Scalar) ([]curve.Scalar, error) {
	if len(a) != len(b) {
		return nil, zkerr.ErrLengthMismatch
	}
	out := make([]curve.Scalar, len(a))
	for i := range a {
		out[i] = be.NewScalar().Mul(a[i], b[i])
	}
	return out, nil
}

// ScalarMul returns c*a, scaling every coordinate of a by c.
func ScalarMul(be curve.Backend, a []curve.Scalar, c curve.Scalar) []curve.Scalar {
	out := make([]curve.Scalar, len(a))
	for i := range a {
		out[i] = be.NewScalar().Mul(a[i], c)
	}
	return out
}

// InnerProduct returns sum(a_i * b_i), a single scalar.
func InnerProduct(be curve.Backend, a, b []curve.Scalar) (curve.Scalar, error) {
	if len(a) != len(b) {
		return nil, zkerr.ErrLengthMismatch
	}
	sum := be.ScalarZero()
	term := be.NewScalar()
	for i := range a {
		term.Mul(a[i], b[i])
		sum = be.NewScalar().Add(sum, term)
	}
	return sum, nil
}

// PolyMul returns the coefficient-wise-inner-product polynomial
// t(x) = l(x).r(x): for each total degree d, sums InnerProduct(l_i, r_j)
// over i+j=d. l and r must have equal width (their coefficients'
// vector length), though they may have different degree.
func PolyMul(be curve.Backend, l, r *Poly) (*Poly, error) {
	if l.Width() != r.Width() {
		return nil, zkerr.ErrLengthMismatch
	}

	outDeg := l.Degree() + r.Degree()
	coeffs := make([][]curve.Scalar, outDeg+1)

	for d := 0; d <= outDeg; d++ {
		// Each output "coefficient" here is degenerate: a scalar
		// inner product, represented as a length-1 vector so PolyMul's
		// result remains a Poly (width 1) per spec.md's t(x) shape.
		acc := be.ScalarZero()
		for i := 0; i <= l.Degree(); i++ {
			j := d - i
			if j < 0 || j > r.Degree() {
				continue
			}
			ip, err := InnerProduct(be, l.Coeffs[i], r.Coeffs[j])
			if err != nil {
				return nil, err
			}
			acc = be.NewScalar().Add(acc, ip)
		}
		coeffs[d] = []curve.Scalar{acc}
	}

	return &Poly{Coeffs: coeffs}, nil
}
