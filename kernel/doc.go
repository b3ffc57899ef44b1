// Package kernel owns the integrity-gated state machine.
//
// A Kernel holds an immutable Config snapshot and moves strictly forward
// through Initialized, Verified and Active. Verification compares a caller
// supplied hash against the anchor fixed at construction; activation and
// successful audits require a prior successful verification. The conscious
// state and resonance level are derived from the lifecycle and the
// verification flag, and the local epoch identifier is created once on
// first use.
//
// Nothing here talks to the network or the disk. Gateways in the Config
// are opaque strings handed to collaborators through the hand-off
// accessors.
package kernel
