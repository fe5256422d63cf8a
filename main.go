package main

import (
	"fmt"

	"github.com/vectorfold/ipacore/curve"
	"github.com/vectorfold/ipacore/curve/bls12381"
	"github.com/vectorfold/ipacore/fold"
	"github.com/vectorfold/ipacore/logcommit"
	"github.com/vectorfold/ipacore/logipa"
	"github.com/vectorfold/ipacore/pedersen"
	"github.com/vectorfold/ipacore/session"
	"github.com/vectorfold/ipacore/transcript"
	"github.com/vectorfold/ipacore/vecpoly"
)

// PublicParameters bundles the generator set and backend a demonstration
// run operates against.
type PublicParameters struct {
	Backend curve.Backend
	Session *session.Session
}

func setup() PublicParameters {
	be := bls12381.New()

	s, err := session.New(be, session.Config{
		Seed:      []byte("ipacore-demo"),
		VectorLen: 4,
		LogLevel:  "info",
	})
	if err != nil {
		panic(err)
	}

	return PublicParameters{Backend: be, Session: s}
}

// runLogIPA commits to a pair of witness vectors and their claimed inner
// product via the logarithmic inner-product argument, using a
// Fiat-Shamir transcript in place of an interactive verifier.
func runLogIPA(pp PublicParameters) bool {
	be := pp.Backend
	a := []curve.Scalar{
		be.NewScalar().SetUint64(2),
		be.NewScalar().SetUint64(3),
		be.NewScalar().SetUint64(4),
		be.NewScalar().SetUint64(12),
	}
	b := []curve.Scalar{
		be.NewScalar().SetUint64(5),
		be.NewScalar().SetUint64(1),
		be.NewScalar().SetUint64(7),
		be.NewScalar().SetUint64(2),
	}
	g, h, q := pp.Session.Gv, pp.Session.Hv, pp.Session.Q

	ag, err := pedersen.Commit(be, a, g)
	if err != nil {
		panic(err)
	}
	bh, err := pedersen.Commit(be, b, h)
	if err != nil {
		panic(err)
	}
	ip, err := vecpoly.InnerProduct(be, a, b)
	if err != nil {
		panic(err)
	}
	p := be.NewPoint().Add(ag, bh)
	p.Add(p, be.NewPoint().ScalarMul(q, ip))

	prover, err := logipa.NewProver(be, a, b, g, h, q)
	if err != nil {
		panic(err)
	}
	verifier, err := logipa.NewVerifier(be, p, g, h, q)
	if err != nil {
		panic(err)
	}

	ts := transcript.NewFiatShamir(be, []byte("ipacore-demo-logipa"))
	for !prover.Done() {
		rc, err := prover.CommitRound()
		if err != nil {
			panic(err)
		}
		ts.Absorb(rc.L.Bytes())
		ts.Absorb(rc.R.Bytes())

		u, err := ts.Next()
		if err != nil {
			panic(err)
		}

		if err := prover.FoldRound(u); err != nil {
			panic(err)
		}
		if err := verifier.FoldRound(rc, u); err != nil {
			panic(err)
		}
	}

	fa, fb := prover.Final()
	ok, err := verifier.Accept(fa, fb)
	if err != nil {
		panic(err)
	}
	prover.Zeroize()
	return ok
}

// runLogCommit commits to a single witness vector and proves its opening
// via the log-proof-of-commitment, the single-vector specialization of
// the logarithmic inner-product argument.
func runLogCommit(pp PublicParameters) bool {
	be := pp.Backend
	a := []curve.Scalar{
		be.NewScalar().SetUint64(2),
		be.NewScalar().SetUint64(3),
		be.NewScalar().SetUint64(4),
		be.NewScalar().SetUint64(12),
	}
	g := pp.Session.Gv

	c, err := pedersen.Commit(be, a, g)
	if err != nil {
		panic(err)
	}

	prover, err := logcommit.NewProver(be, a, g)
	if err != nil {
		panic(err)
	}
	verifier, err := logcommit.NewVerifier(be, c, g, len(a))
	if err != nil {
		panic(err)
	}

	ts := transcript.NewFiatShamir(be, []byte("ipacore-demo-logcommit"))
	for !prover.Done() {
		rc, err := prover.CommitRound()
		if err != nil {
			panic(err)
		}
		ts.Absorb(rc.L.Bytes())
		ts.Absorb(rc.R.Bytes())

		u, err := ts.Next()
		if err != nil {
			panic(err)
		}

		if err := prover.FoldRound(u); err != nil {
			panic(err)
		}
		if err := verifier.FoldRound(rc, u); err != nil {
			panic(err)
		}
	}

	ok, err := verifier.Accept(prover.Final())
	if err != nil {
		panic(err)
	}
	prover.Zeroize()
	return ok
}

// runFoldingIdentity exercises the raw folding primitives directly,
// checking the identity L*u^2 + C + R*u^-2 == commit(fold(a,u), fold(G,u^-1)).
func runFoldingIdentity(pp PublicParameters) bool {
	be := pp.Backend
	a := []curve.Scalar{
		be.NewScalar().SetUint64(2),
		be.NewScalar().SetUint64(3),
		be.NewScalar().SetUint64(4),
		be.NewScalar().SetUint64(12),
	}
	g := pp.Session.Gv

	c, err := pedersen.Commit(be, a, g)
	if err != nil {
		panic(err)
	}

	L, R, err := fold.SecondaryDiagonal(be, a, g)
	if err != nil {
		panic(err)
	}

	u := be.NewScalar().SetUint64(5)
	uInv := be.NewScalar().Inverse(u)

	aFolded, err := fold.Field(be, a, u)
	if err != nil {
		panic(err)
	}
	gFolded, err := fold.Group(be, g, uInv)
	if err != nil {
		panic(err)
	}

	cFolded, err := pedersen.Commit(be, aFolded, gFolded)
	if err != nil {
		panic(err)
	}

	u2 := be.NewScalar().Mul(u, u)
	u2Inv := be.NewScalar().Inverse(u2)

	lhs := be.NewPoint().Add(be.NewPoint().ScalarMul(L, u2), c)
	lhs.Add(lhs, be.NewPoint().ScalarMul(R, u2Inv))

	return lhs.Equal(cFolded)
}

func main() {
	pp := setup()

	fmt.Println("Folding identity check")
	fmt.Println("  holds:", runFoldingIdentity(pp))

	fmt.Println()
	fmt.Println("Logarithmic inner-product argument")
	fmt.Println("  accepted:", runLogIPA(pp))

	fmt.Println()
	fmt.Println("Log-proof-of-commitment")
	fmt.Println("  accepted:", runLogCommit(pp))
}
