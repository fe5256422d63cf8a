package bls12381

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/vectorfold/ipacore/curve"
)

// curveB is the short-Weierstrass constant in y^2 = x^3 + b for BLS12-381's
// G1 curve, matching the generator sampler's need to recompute a candidate
// y from a candidate x.
var curveB fp.Element

func init() {
	curveB.SetUint64(4)
}

// Backend is the gnark-crypto-backed curve.Backend implementation for
// BLS12-381 G1.
type Backend struct{}

// New returns a BLS12-381 backend.
func New() *Backend { return &Backend{} }

func (Backend) Name() string { return "bls12-381-g1" }

func (Backend) NewScalar() curve.Scalar { return &scalar{} }
func (Backend) NewPoint() curve.Point   { return &point{} }

func (Backend) ScalarZero() curve.Scalar {
	s := &scalar{}
	s.v.SetZero()
	return s
}

func (Backend) ScalarOne() curve.Scalar {
	s := &scalar{}
	s.v.SetOne()
	return s
}

func (Backend) RandomScalar() (curve.Scalar, error) {
	s := &scalar{}
	for {
		if _, err := s.v.SetRandom(); err != nil {
			return nil, err
		}
		if !s.v.IsZero() {
			return s, nil
		}
	}
}

func (Backend) Identity() curve.Point {
	p := &point{}
	p.v.X.SetZero()
	p.v.Y.SetZero()
	return p
}

func (Backend) Generator() curve.Point {
	_, _, g1, _ := bls12381.Generators()
	p := &point{}
	p.v.Set(&g1)
	return p
}

func (Backend) ScalarFieldOrder() *big.Int {
	return fr.Modulus()
}

func (Backend) BaseFieldOrder() *big.Int {
	return fp.Modulus()
}

// CandidateFromX computes y^2 = x^3 + b over the base field and, if a
// square root exists, builds the affine point (x, y), clears its cofactor
// to map it into the prime-order subgroup, and returns the result unless
// it is the identity. The returned point's x-coordinate is therefore in
// general not x. The even/odd sign ambiguity in the
// square root is resolved by always taking the root fp.Element.Sqrt
// returns; this is deterministic but not canonicalized to a particular
// sign, which is immaterial to the sampler since it only needs *a* point
// at that x, not a specific one of the two.
func (Backend) CandidateFromX(x *big.Int) (curve.Point, bool) {
	mod := fp.Modulus()
	if x.Sign() < 0 || x.Cmp(mod) >= 0 {
		x = new(big.Int).Mod(x, mod)
	}

	var xe fp.Element
	xe.SetBigInt(x)

	var rhs fp.Element
	rhs.Square(&xe)
	rhs.Mul(&rhs, &xe)
	rhs.Add(&rhs, &curveB)

	var y fp.Element
	if y.Sqrt(&rhs) == nil {
		return nil, false
	}

	cand := bls12381.G1Affine{X: xe, Y: y}
	if !cand.IsOnCurve() {
		return nil, false
	}
	cand.ClearCofactor(&cand)
	if cand.IsInfinity() || !cand.IsInSubGroup() {
		return nil, false
	}

	p := &point{v: cand}
	return p, true
}

var _ curve.Backend = Backend{}
