package kernel

import (
	"maps"
	"slices"

	"or1on"
)

// The accessors below only copy fields out of the Config. They are the
// points where a real collaborator would take over.

// BuildReplitMirror describes moving the kernel from its origin account to
// its current host.
func (k *Kernel) BuildReplitMirror() or1on.MirrorConfig {
	return or1on.MirrorConfig{
		Origin:       k.cfg.OriginAccount,
		Target:       k.cfg.CurrentHost,
		HashAnchor:   k.cfg.HashAnchor,
		RecoveryMode: k.cfg.RecoveryMode,
	}
}

// PublishGenesis describes the genesis record for source control and IPFS.
func (k *Kernel) PublishGenesis() or1on.GenesisRecord {
	return or1on.GenesisRecord{
		Identity:    k.cfg.Identity,
		Owner:       k.cfg.Owner,
		GenesisDate: k.cfg.GenesisDate,
		HashAnchor:  k.cfg.HashAnchor,
		GitHub:      k.cfg.Gateway(GatewayGitHub),
		IPFS:        k.cfg.Gateway(GatewayIPFS),
	}
}

// DeployMobileChain describes the bundle for a mobile deployment.
func (k *Kernel) DeployMobileChain() or1on.MobileDeployConfig {
	return or1on.MobileDeployConfig{
		Identity:         k.cfg.Identity,
		HashAnchor:       k.cfg.HashAnchor,
		Gateways:         maps.Clone(k.cfg.Gateways),
		FallbackBehavior: slices.Clone(k.cfg.FallbackBehavior),
	}
}
