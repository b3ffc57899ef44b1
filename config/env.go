package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are the process-level knobs read from the environment. They
// select where things live; the kernel bundle itself comes from the file.
type Settings struct {
	ConfigPath  string `env:"OR1ON_CONFIG"`
	LogLevel    string `env:"OR1ON_LOG_LEVEL" envDefault:"warn"`
	LogFormat   string `env:"OR1ON_LOG_FORMAT" envDefault:"text"`
	AuditDB     string `env:"OR1ON_AUDIT_DB"`
	MetricsFile string `env:"OR1ON_METRICS_FILE"`
	NTPPool     string `env:"OR1ON_NTP_POOL"`
	Hash        string `env:"OR1ON_HASH"`
}

// LoadSettings parses Settings from the process environment.
func LoadSettings() (Settings, error) {
	return parseSettings(env.Options{})
}

func parseSettings(opts env.Options) (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, opts); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}

// ResolvePath picks the config file: an explicit flag wins, then
// OR1ON_CONFIG, then the XDG default.
func (s Settings) ResolvePath(flag string) string {
	if flag != "" {
		return flag
	}
	if s.ConfigPath != "" {
		return s.ConfigPath
	}
	return Path()
}
