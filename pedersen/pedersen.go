// Package pedersen implements the vector Pedersen commitment at the base
// of every higher-level argument in this module: C = sum(v_i * G_i) [+ gamma * B].
package pedersen

import (
	"context"

	"github.com/vectorfold/ipacore/curve"
	"github.com/vectorfold/ipacore/msm"
	"github.com/vectorfold/ipacore/zkerr"
)

// Commit returns sum(values[i] * bases[i]), with no blinding term. len(values)
// must equal len(bases).
func Commit(be curve.Backend, values []curve.Scalar, bases []curve.Point) (curve.Point, error) {
	if len(values) != len(bases) {
		return nil, zkerr.ErrLengthMismatch
	}
	return msm.Sum(be, values, bases)
}

// CommitBlinded returns sum(values[i] * bases[i]) + blinding * blindingBase,
// the hiding form used everywhere a commitment must not leak its opening
// even to a computationally unbounded verifier.
func CommitBlinded(be curve.Backend, values []curve.Scalar, bases []curve.Point, blinding curve.Scalar, blindingBase curve.Point) (curve.Point, error) {
	c, err := Commit(be, values, bases)
	if err != nil {
		return nil, err
	}
	term := be.NewPoint().ScalarMul(blindingBase, blinding)
	return be.NewPoint().Add(c, term), nil
}

// CommitParallel is CommitBlinded's unblinded sibling, computed with
// msm.SumParallel for large vectors.
func CommitParallel(ctx context.Context, be curve.Backend, values []curve.Scalar, bases []curve.Point, workers int) (curve.Point, error) {
	if len(values) != len(bases) {
		return nil, zkerr.ErrLengthMismatch
	}
	return msm.SumParallel(ctx, be, values, bases, workers)
}
