package kernel

import "errors"

// The kernel itself reports both conditions through return values. These
// sentinels let collaborators turn them into errors.
var (
	// ErrVerificationMismatch means the supplied hash is not the anchor.
	ErrVerificationMismatch = errors.New("integrity hash mismatch")

	// ErrPreconditionNotMet means an operation ran before a successful verify.
	ErrPreconditionNotMet = errors.New("integrity not verified")
)
