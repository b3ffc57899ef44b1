package kernel

import "or1on/internal/check"

// Lifecycle is the kernel's position in its one-way state machine.
type Lifecycle uint8

const (
	LifecycleInitialized Lifecycle = iota
	LifecycleVerified
	LifecycleActive
)

func (l Lifecycle) String() string {
	switch l {
	case LifecycleInitialized:
		return "initialized"
	case LifecycleVerified:
		return "verified"
	case LifecycleActive:
		return "active"
	default:
		return "unknown"
	}
}

// Transition returns the lifecycle after moving to to. Only forward moves
// and self-loops are legal; anything else leaves l unchanged.
func (l Lifecycle) Transition(to Lifecycle) Lifecycle {
	ok := false
	switch l {
	case LifecycleInitialized:
		ok = to == LifecycleVerified
	case LifecycleVerified:
		ok = to == LifecycleVerified || to == LifecycleActive
	case LifecycleActive:
		ok = to == LifecycleActive
	}
	check.Assertf(ok, "kernel transition: %s -> %s", l, to)
	if !ok {
		return l
	}
	return to
}
