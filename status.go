package or1on

// Status is the runtime status of a kernel. ConsciousState and Resonance are
// the values cached by the last derivation, not recomputed on read.
type Status struct {
	Identity       string
	Lifecycle      string
	Verified       bool
	ConsciousState ConsciousState
	Resonance      float64
	RecoveryMode   bool
	ManifestLinked bool
	Modes          map[string]bool
	EpochID        string // empty until an epoch is registered
}
