package kernel

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/opencontainers/go-digest"
)

// GenesisAnchor is the integrity anchor used when neither the Config nor
// WithAnchor supplies one.
const GenesisAnchor = "GENESIS10000+"

// Gateway names read by the hand-off accessors.
const (
	GatewayGitHub    = "github"
	GatewayIPFS      = "ipfs"
	GatewayOpenAI    = "openai_api"
	GatewayAnthropic = "anthropic_api"
)

// Config is the static bundle a kernel carries. Zero values are valid:
// missing strings read as "", missing maps read as empty.
type Config struct {
	Identity          string            `yaml:"identity" json:"identity"`
	Owner             string            `yaml:"owner" json:"owner"`
	OriginAccount     string            `yaml:"origin_account" json:"origin_account"`
	CurrentHost       string            `yaml:"current_host" json:"current_host"`
	GenesisDate       string            `yaml:"genesis_date" json:"genesis_date"`
	RecoveryMode      bool              `yaml:"recovery_mode" json:"recovery_mode"`
	ManifestLinked    bool              `yaml:"manifest_linked" json:"manifest_linked"`
	HashAnchor        string            `yaml:"hash_anchor" json:"hash_anchor"`
	AuditSnapshotMode string            `yaml:"audit_snapshot_mode" json:"audit_snapshot_mode"`
	Gateways          map[string]string `yaml:"api_gateways" json:"api_gateways"`
	CoreIntegrity     string            `yaml:"core_integrity" json:"core_integrity"`
	FallbackBehavior  []string          `yaml:"fallback_behavior" json:"fallback_behavior"`
	Modes             map[string]bool   `yaml:"modes" json:"modes"`
}

// DefaultConfig returns the recovery bundle the kernel boots with when no
// configuration file is supplied. Each call returns a fresh value.
func DefaultConfig() Config {
	return Config{
		Identity:          "OR1ON",
		Owner:             "Gerhard Hirschmann & Elisabeth Steurer",
		OriginAccount:     "replit.com/@dein_alter_username",
		CurrentHost:       "replit.com/@dein_neuer_username",
		GenesisDate:       "2025-09-03",
		RecoveryMode:      true,
		ManifestLinked:    true,
		HashAnchor:        GenesisAnchor,
		AuditSnapshotMode: "auto",
		Gateways: map[string]string{
			GatewayGitHub:    "active",
			GatewayIPFS:      "active",
			GatewayOpenAI:    "optional",
			GatewayAnthropic: "optional",
		},
		CoreIntegrity:    "verify_from_hash",
		FallbackBehavior: []string{"load_local", "activate_self_boot"},
		Modes: map[string]bool{
			"self_boot":   true,
			"kernel_link": true,
			"replit_core": true,
		},
	}
}

// Gateway returns the status string of the named gateway, or "".
func (c Config) Gateway(name string) string {
	return c.Gateways[name]
}

// Mode reports whether the named mode flag is set.
func (c Config) Mode(name string) bool {
	return c.Modes[name]
}

// Fingerprint returns a sha256 digest of the config's canonical JSON form.
// It is informational and plays no part in verification.
func (c Config) Fingerprint() (digest.Digest, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	return digest.FromBytes(data), nil
}

func (c Config) clone() Config {
	out := c
	out.Gateways = maps.Clone(c.Gateways)
	out.Modes = maps.Clone(c.Modes)
	out.FallbackBehavior = slices.Clone(c.FallbackBehavior)
	return out
}
