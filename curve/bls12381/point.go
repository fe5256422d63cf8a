package bls12381

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/vectorfold/ipacore/curve"
)

// point wraps a BLS12-381 G1 affine point.
type point struct {
	v bls12381.G1Affine
}

func asPoint(x curve.Point) *point {
	p, ok := x.(*point)
	if !ok {
		panic("bls12381: incompatible Point implementation")
	}
	return p
}

func (p *point) Add(x, y curve.Point) curve.Point {
	p.v.Add(&asPoint(x).v, &asPoint(y).v)
	return p
}

func (p *point) Sub(x, y curve.Point) curve.Point {
	var negY bls12381.G1Affine
	negY.Neg(&asPoint(y).v)
	p.v.Add(&asPoint(x).v, &negY)
	return p
}

func (p *point) Neg(x curve.Point) curve.Point {
	p.v.Neg(&asPoint(x).v)
	return p
}

func (p *point) ScalarMul(x curve.Point, s curve.Scalar) curve.Point {
	p.v.ScalarMultiplication(&asPoint(x).v, asScalar(s).BigInt())
	return p
}

func (p *point) Set(x curve.Point) curve.Point {
	p.v.Set(&asPoint(x).v)
	return p
}

func (p *point) SetBytes(b []byte) (curve.Point, error) {
	if _, err := p.v.SetBytes(b); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *point) Bytes() []byte {
	b := p.v.Bytes()
	return b[:]
}

func (p *point) Equal(x curve.Point) bool {
	return p.v.Equal(&asPoint(x).v)
}

func (p *point) IsIdentity() bool {
	return p.v.IsInfinity()
}

func (p *point) String() string {
	return p.v.String()
}
