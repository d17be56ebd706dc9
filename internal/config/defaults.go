package config

import "time"

const (
	DefaultAPIURL  = "https://api.github.com"
	DefaultPerPage = 50
	DefaultTimeout = 15 * time.Second
)

// GetDefaultConfig returns the built-in configuration. The session path is
// left empty and resolved by SessionPath.
func GetDefaultConfig() GitrackConfig {
	return GitrackConfig{
		GitHub: GitHubConfig{
			APIURL:  DefaultAPIURL,
			PerPage: DefaultPerPage,
			Timeout: DefaultTimeout,
		},
		UI: UIConfig{
			ColorMode: "dark",
			LogLevel:  "info",
		},
	}
}
