// Package curve declares the algebraic contract every protocol package in
// this module builds on: a scalar field F and a prime-order group G, with
// the group's backend treated as a black box by everything above it.
package curve

import "math/big"

// Scalar is an element of the field F over which the group's exponents
// (blindings, challenges, witness coordinates) live.
type Scalar interface {
	Add(x, y Scalar) Scalar
	Sub(x, y Scalar) Scalar
	Mul(x, y Scalar) Scalar
	Neg(x Scalar) Scalar
	// Inverse sets the receiver to x^-1 and returns it. Callers must not
	// invoke Inverse on a zero scalar.
	Inverse(x Scalar) Scalar
	Exp(x Scalar, e *big.Int) Scalar
	Set(x Scalar) Scalar
	SetUint64(v uint64) Scalar
	SetBigInt(v *big.Int) Scalar
	SetBytes(b []byte) Scalar
	Bytes() []byte
	BigInt() *big.Int
	IsZero() bool
	Equal(x Scalar) bool
	String() string
}

// Point is an element of the prime-order group G.
type Point interface {
	Add(x, y Point) Point
	Sub(x, y Point) Point
	Neg(x Point) Point
	// ScalarMul sets the receiver to s*X and returns it.
	ScalarMul(x Point, s Scalar) Point
	Set(x Point) Point
	SetBytes(b []byte) (Point, error)
	Bytes() []byte
	Equal(x Point) bool
	IsIdentity() bool
	String() string
}

// Backend is the factory and black-box algebraic primitive surface a
// session is built on. Protocol packages use it to allocate scalars and
// points and to obtain constants such as the identity; package sampler
// additionally uses CandidateFromX and BaseFieldOrder.
type Backend interface {
	Name() string

	NewScalar() Scalar
	NewPoint() Point

	ScalarZero() Scalar
	ScalarOne() Scalar
	// RandomScalar returns a uniformly sampled nonzero element of F.
	RandomScalar() (Scalar, error)

	Identity() Point
	Generator() Point

	// ScalarFieldOrder returns the order of F (the scalar field, size of G).
	ScalarFieldOrder() *big.Int
	// BaseFieldOrder returns the order of the field coordinates of G are
	// drawn from (the curve's base/coordinate field).
	BaseFieldOrder() *big.Int

	// CandidateFromX attempts to build a group element from the affine
	// x-coordinate x. When a curve point with that x-coordinate exists, a
	// backend may map it into the prime-order subgroup (the bls12381
	// backend clears its cofactor), so the returned point's x-coordinate
	// need not be x. It returns (point, true) when this yields a
	// non-identity point of the prime-order subgroup, or (nil, false)
	// otherwise. This is the sole primitive package sampler needs from
	// the backend; the sqrt/subgroup arithmetic it hides is intentionally
	// out of scope for the sampler itself.
	CandidateFromX(x *big.Int) (Point, bool)
}
