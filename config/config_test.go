package config

import (
	"os"
	"path/filepath"
	"testing"

	"or1on/kernel"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, kernel.DefaultConfig(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kernel.yaml")
	data := []byte("identity: NOVA\nhash_anchor: H\napi_gateways:\n  github: paused\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "NOVA", cfg.Identity)
	assert.Equal(t, "H", cfg.HashAnchor)
	assert.Equal(t, "paused", cfg.Gateway(kernel.GatewayGitHub))
	assert.Equal(t, "2025-09-03", cfg.GenesisDate)
	assert.True(t, cfg.RecoveryMode)
}

func TestLoad_FileMapsReplaceDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kernel.yaml")
	data := []byte("api_gateways:\n  github: active\nmodes: {}\nfallback_behavior: []\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{kernel.GatewayGitHub: "active"}, cfg.Gateways)
	assert.Empty(t, cfg.Modes)
	assert.False(t, cfg.Mode("self_boot"))
	assert.Empty(t, cfg.FallbackBehavior)
	assert.Equal(t, "OR1ON", cfg.Identity)
}

func TestLoad_EmptyFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kernel.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, kernel.DefaultConfig(), cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kernel.yaml")
	require.NoError(t, os.WriteFile(path, []byte("identity: [unterminated"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "kernel.yaml")
	cfg := kernel.DefaultConfig()
	cfg.Identity = "NOVA"
	cfg.Modes["self_boot"] = false

	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestPath_RespectsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "or1on", "kernel.yaml"), Path())
}

func TestParseSettings(t *testing.T) {
	s, err := parseSettings(env.Options{Environment: map[string]string{
		"OR1ON_CONFIG":   "/etc/or1on/kernel.yaml",
		"OR1ON_AUDIT_DB": "/var/lib/or1on/audit.db",
	}})
	require.NoError(t, err)

	assert.Equal(t, "/etc/or1on/kernel.yaml", s.ConfigPath)
	assert.Equal(t, "/var/lib/or1on/audit.db", s.AuditDB)
	assert.Equal(t, "warn", s.LogLevel)
	assert.Equal(t, "text", s.LogFormat)
}

func TestSettings_ResolvePath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	assert.Equal(t, "/flag.yaml", Settings{ConfigPath: "/env.yaml"}.ResolvePath("/flag.yaml"))
	assert.Equal(t, "/env.yaml", Settings{ConfigPath: "/env.yaml"}.ResolvePath(""))
	assert.Equal(t, filepath.Join("/xdg", "or1on", "kernel.yaml"), Settings{}.ResolvePath(""))
}
