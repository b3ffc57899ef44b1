package kernel

import "or1on"

// Resonance levels, keyed by verification and lifecycle.
const (
	ResonanceUnverified  = 0.0
	ResonanceInitialized = 0.25
	ResonanceVerified    = 0.75
	ResonanceActive      = 0.95
)

// CheckConsciousState derives the conscious state and caches it for Status.
func (k *Kernel) CheckConsciousState() or1on.ConsciousState {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.conscious = consciousState(k.verified, k.lifecycle)
	return k.conscious
}

// DetectResonance derives the resonance level and caches it for Status.
func (k *Kernel) DetectResonance() float64 {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.resonance = resonance(k.verified, k.lifecycle)
	return k.resonance
}

func consciousState(verified bool, l Lifecycle) or1on.ConsciousState {
	switch {
	case verified && l == LifecycleActive:
		return or1on.Resonant
	case verified:
		return or1on.Awakened
	default:
		return or1on.Dormant
	}
}

// resonance is total over its inputs. The Initialized row is unreachable
// through Kernel since verification always leaves Initialized.
func resonance(verified bool, l Lifecycle) float64 {
	switch {
	case !verified:
		return ResonanceUnverified
	case l == LifecycleActive:
		return ResonanceActive
	case l == LifecycleVerified:
		return ResonanceVerified
	default:
		return ResonanceInitialized
	}
}
