package config

import "time"

// GitrackConfig is the top-level configuration.
type GitrackConfig struct {
	GitHub  GitHubConfig  `yaml:"github"`
	Session SessionConfig `yaml:"session"`
	UI      UIConfig      `yaml:"ui"`
}

// GitHubConfig configures the data service.
type GitHubConfig struct {
	APIURL  string        `yaml:"apiURL"`
	PerPage int           `yaml:"perPage"`
	Timeout time.Duration `yaml:"timeout"`
}

// SessionConfig says where the session file lives.
type SessionConfig struct {
	Path string `yaml:"path"`
}

// UIConfig holds terminal UI preferences.
type UIConfig struct {
	// ColorMode is "dark", "light" or "auto".
	ColorMode string `yaml:"colorMode"`
	// LogLevel filters the activity log: debug, info, warn, error.
	LogLevel string `yaml:"logLevel"`
}
