package or1on

// MirrorConfig describes moving the kernel from one hosting account to
// another. Nothing in this module performs the move.
type MirrorConfig struct {
	Origin       string
	Target       string
	HashAnchor   string
	RecoveryMode bool
}

// GenesisRecord is what a publisher would pin to content-addressed storage
// or push to source control.
type GenesisRecord struct {
	Identity    string
	Owner       string
	GenesisDate string
	HashAnchor  string
	GitHub      string // gateway status
	IPFS        string // gateway status
}

// MobileDeployConfig is the bundle handed to a mobile deployment target.
type MobileDeployConfig struct {
	Identity         string
	HashAnchor       string
	Gateways         map[string]string
	FallbackBehavior []string
}
