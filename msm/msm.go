// Package msm provides sequential and parallel multi-scalar multiplication
// over the curve.Point/curve.Scalar interfaces, the shared primitive under
// every Pedersen-style commitment in this module.
package msm

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vectorfold/ipacore/curve"
	"github.com/vectorfold/ipacore/zkerr"
)

// Sum computes sum(scalars[i] * points[i]) sequentially.
func Sum(be curve.Backend, scalars []curve.Scalar, points []curve.Point) (curve.Point, error) {
	if len(scalars) != len(points) {
		return nil, zkerr.ErrLengthMismatch
	}

	acc := be.Identity()
	term := be.NewPoint()
	for i := range scalars {
		term.ScalarMul(points[i], scalars[i])
		acc.Add(acc, term)
	}
	return acc, nil
}

// SumParallel computes the same result as Sum, fanning the summation out
// across workers goroutines. Point addition is associative and
// commutative, so the chunked partial sums combine to a result identical
// to Sum's sequential reduction regardless of how work is chunked or in
// what order goroutines finish.
func SumParallel(ctx context.Context, be curve.Backend, scalars []curve.Scalar, points []curve.Point, workers int) (curve.Point, error) {
	if len(scalars) != len(points) {
		return nil, zkerr.ErrLengthMismatch
	}
	if workers < 1 {
		workers = 1
	}
	n := len(scalars)
	if n == 0 {
		return be.Identity(), nil
	}
	if workers > n {
		workers = n
	}

	chunkSize := (n + workers - 1) / workers
	partials := make([]curve.Point, workers)

	g, _ := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		start := w * chunkSize
		if start >= n {
			partials[w] = be.Identity()
			continue
		}
		end := start + chunkSize
		if end > n {
			end = n
		}
		g.Go(func() error {
			sub, err := Sum(be, scalars[start:end], points[start:end])
			if err != nil {
				return err
			}
			partials[w] = sub
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	acc := be.Identity()
	for _, p := range partials {
		acc.Add(acc, p)
	}
	return acc, nil
}
