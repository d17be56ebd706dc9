package app

import (
	"gitrack/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Debug settings
	Debug bool

	// Demo runs against the offline fixture with an in-memory session.
	Demo bool

	// ConfigPath replaces the layered config lookup with a single file.
	ConfigPath string

	// Overrides applied on top of the loaded configuration. Empty means keep.
	APIURL      string
	SessionPath string
	LogLevel    string

	// Token signs in without the interactive prompt when no credential is stored.
	Token string

	Version string

	// Loaded configuration
	GitrackConfig *config.GitrackConfig
}

// NewConfig creates a new application configuration
func NewConfig(debug, demo bool, configPath string) *Config {
	return &Config{
		Debug:      debug,
		Demo:       demo,
		ConfigPath: configPath,
	}
}

// applyOverrides copies non-empty command line values onto the loaded config.
func (c *Config) applyOverrides(cfg *config.GitrackConfig) {
	if c.APIURL != "" {
		cfg.GitHub.APIURL = c.APIURL
	}
	if c.SessionPath != "" {
		cfg.Session.Path = c.SessionPath
	}
	if c.LogLevel != "" {
		cfg.UI.LogLevel = c.LogLevel
	}
	if c.Debug {
		cfg.UI.LogLevel = "debug"
	}
}
