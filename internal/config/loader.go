package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/gitrack"
	projectConfigDir = ".gitrack"
	configFileName   = "config.yaml"
	sessionFileName  = "session.yaml"
)

// LoadConfig loads the configuration by layering default, user, and project settings.
func LoadConfig() (GitrackConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if config, err = overlayFile(config, userConfigPath); err != nil {
		return GitrackConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if config, err = overlayFile(config, projectConfigPath); err != nil {
		return GitrackConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	return config, nil
}

// LoadConfigFromPath loads a single file on top of the defaults. Unlike the
// layered files, this one must exist.
func LoadConfigFromPath(path string) (GitrackConfig, error) {
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return GitrackConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return mergeConfigs(GetDefaultConfig(), overlay), nil
}

func overlayFile(base GitrackConfig, path string) (GitrackConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a GitrackConfig from a YAML file.
func loadConfigFromFile(filePath string) (GitrackConfig, error) {
	var config GitrackConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return GitrackConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return GitrackConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in
// overlay leave base untouched.
func mergeConfigs(base, overlay GitrackConfig) GitrackConfig {
	merged := base

	if overlay.GitHub.APIURL != "" {
		merged.GitHub.APIURL = strings.TrimRight(overlay.GitHub.APIURL, "/")
	}
	if overlay.GitHub.PerPage > 0 {
		merged.GitHub.PerPage = overlay.GitHub.PerPage
	}
	if overlay.GitHub.Timeout > 0 {
		merged.GitHub.Timeout = overlay.GitHub.Timeout
	}
	if overlay.Session.Path != "" {
		merged.Session.Path = overlay.Session.Path
	}
	if overlay.UI.ColorMode != "" {
		merged.UI.ColorMode = overlay.UI.ColorMode
	}
	if overlay.UI.LogLevel != "" {
		merged.UI.LogLevel = overlay.UI.LogLevel
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// SessionPath resolves where the session file lives, expanding a leading "~".
func (c GitrackConfig) SessionPath() (string, error) {
	path := c.Session.Path
	if path == "" {
		dir, err := GetUserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, sessionFileName), nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := osUserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
