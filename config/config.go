// Package config loads and saves the kernel configuration bundle.
//
// The bundle is stored at $XDG_CONFIG_HOME/or1on/kernel.yaml (defaults to
// ~/.config/or1on/kernel.yaml). A missing file is not an error: the kernel
// boots with kernel.DefaultConfig.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"or1on/kernel"

	"gopkg.in/yaml.v3"
)

const fileName = "kernel.yaml"

// Path returns the default config file location. It respects
// XDG_CONFIG_HOME, falling back to ~/.config/or1on/kernel.yaml.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".config", "or1on", fileName)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "or1on", fileName)
}

// Load reads the bundle at path. If the file does not exist the default
// bundle is returned. Keys absent from the file keep their default values;
// a map the file sets replaces the default map instead of extending it.
func Load(path string) (kernel.Config, error) {
	cfg := kernel.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return kernel.Config{}, fmt.Errorf("read config: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return kernel.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return cfg, nil
	}

	root := doc.Content[0]
	if hasKey(root, "api_gateways") {
		cfg.Gateways = nil
	}
	if hasKey(root, "modes") {
		cfg.Modes = nil
	}
	if err := root.Decode(&cfg); err != nil {
		return kernel.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// hasKey reports whether the mapping node n sets key.
func hasKey(n *yaml.Node, key string) bool {
	if n.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return true
		}
	}
	return false
}

// Save writes cfg to path, creating directories as needed.
func Save(path string, cfg kernel.Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg kernel.Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}
