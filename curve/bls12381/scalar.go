// Package bls12381 wraps github.com/consensys/gnark-crypto's BLS12-381 G1
// group behind the curve.Scalar/curve.Point/curve.Backend contract.
package bls12381

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/vectorfold/ipacore/curve"
)

// scalar wraps fr.Element, the BLS12-381 scalar field element.
type scalar struct {
	v fr.Element
}

func asScalar(x curve.Scalar) *scalar {
	s, ok := x.(*scalar)
	if !ok {
		panic("bls12381: incompatible Scalar implementation")
	}
	return s
}

func (s *scalar) Add(x, y curve.Scalar) curve.Scalar {
	s.v.Add(&asScalar(x).v, &asScalar(y).v)
	return s
}

func (s *scalar) Sub(x, y curve.Scalar) curve.Scalar {
	s.v.Sub(&asScalar(x).v, &asScalar(y).v)
	return s
}

func (s *scalar) Mul(x, y curve.Scalar) curve.Scalar {
	s.v.Mul(&asScalar(x).v, &asScalar(y).v)
	return s
}

func (s *scalar) Neg(x curve.Scalar) curve.Scalar {
	s.v.Neg(&asScalar(x).v)
	return s
}

func (s *scalar) Inverse(x curve.Scalar) curve.Scalar {
	s.v.Inverse(&asScalar(x).v)
	return s
}

func (s *scalar) Exp(x curve.Scalar, e *big.Int) curve.Scalar {
	s.v.Exp(asScalar(x).v, e)
	return s
}

func (s *scalar) Set(x curve.Scalar) curve.Scalar {
	s.v.Set(&asScalar(x).v)
	return s
}

func (s *scalar) SetUint64(v uint64) curve.Scalar {
	s.v.SetUint64(v)
	return s
}

func (s *scalar) SetBigInt(v *big.Int) curve.Scalar {
	s.v.SetBigInt(v)
	return s
}

func (s *scalar) SetBytes(b []byte) curve.Scalar {
	s.v.SetBytes(b)
	return s
}

func (s *scalar) Bytes() []byte {
	b := s.v.Bytes()
	return b[:]
}

func (s *scalar) BigInt() *big.Int {
	out := new(big.Int)
	s.v.BigInt(out)
	return out
}

func (s *scalar) IsZero() bool {
	return s.v.IsZero()
}

func (s *scalar) Equal(x curve.Scalar) bool {
	return s.v.Equal(&asScalar(x).v)
}

func (s *scalar) String() string {
	return s.v.String()
}
