// Package zkerr collects the sentinel errors every protocol package in
// this module reports on contract violations. Verification failure is
// never represented as an error; it is a plain bool returned by the
// relevant Verify/Accept function.
package zkerr

import "errors"

var (
	// ErrLengthMismatch is returned when two vectors that must share a
	// length (witness/generators, a/b, l/r) do not.
	ErrLengthMismatch = errors.New("zkerr: vector length mismatch")

	// ErrNonPowerOfTwo is returned when a folding round is driven on a
	// vector whose length is not a power of two.
	ErrNonPowerOfTwo = errors.New("zkerr: vector length is not a power of two")

	// ErrZeroChallenge is returned when a fold or proof step is handed a
	// zero challenge directly. Samplers are expected to resample
	// internally and never let this escape to a caller driven by them.
	ErrZeroChallenge = errors.New("zkerr: challenge must be nonzero")

	// ErrBackendFailure reports that the algebraic backend could not
	// complete an operation the caller needed (for example a square
	// root did not exist after the configured retry budget).
	ErrBackendFailure = errors.New("zkerr: backend operation failed")

	// ErrEmptyVector is returned where an operation is undefined on a
	// zero-length vector (the finalize step of the log IPA, for
	// instance, requires at least one coordinate).
	ErrEmptyVector = errors.New("zkerr: vector must be non-empty")

	// ErrProofExhausted is returned when a round-based prover or
	// verifier is driven past its final round.
	ErrProofExhausted = errors.New("zkerr: no further rounds remain")
)
