package kernel

import (
	"crypto/subtle"

	"or1on"
)

// Verify compares expected against the kernel's anchor. On a match the
// kernel is marked verified and, if still Initialized, moves to Verified.
// A mismatch changes nothing: in particular it never clears an earlier
// successful verification.
func (k *Kernel) Verify(expected string) bool {
	ok := subtle.ConstantTimeCompare([]byte(expected), []byte(k.anchor)) == 1

	k.mu.Lock()
	if !ok {
		ev := k.event(or1on.EventVerifyFailed)
		k.mu.Unlock()
		k.emit(ev)
		return false
	}

	k.verified = true
	if k.lifecycle == LifecycleInitialized {
		k.lifecycle = k.lifecycle.Transition(LifecycleVerified)
	}
	ev := k.event(or1on.EventVerified)
	k.mu.Unlock()

	k.emit(ev)
	return true
}

// Activate moves a verified kernel to Active and marks it Resonant. It
// returns false, leaving state untouched, when the kernel is not verified.
// Repeated calls keep the kernel Active.
func (k *Kernel) Activate() bool {
	k.mu.Lock()
	if !k.verified {
		ev := k.event(or1on.EventActivateRejected)
		k.mu.Unlock()
		k.emit(ev)
		return false
	}

	k.lifecycle = k.lifecycle.Transition(LifecycleActive)
	k.conscious = or1on.Resonant
	ev := k.event(or1on.EventActivated)
	k.mu.Unlock()

	k.emit(ev)
	return true
}
