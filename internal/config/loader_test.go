package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockPaths points the layered loader at dir and restores the originals on cleanup.
func mockPaths(t *testing.T, dir string) {
	t.Helper()
	origHome, origWd := osUserHomeDir, osGetwd
	t.Cleanup(func() {
		osUserHomeDir = origHome
		osGetwd = origWd
	})
	osUserHomeDir = func() (string, error) { return filepath.Join(dir, "home"), nil }
	osGetwd = func() (string, error) { return filepath.Join(dir, "project"), nil }
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	mockPaths(t, t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), cfg)
}

func TestLoadConfig_Layering(t *testing.T) {
	dir := t.TempDir()
	mockPaths(t, dir)

	writeFile(t, filepath.Join(dir, "home", userConfigDir, configFileName), `
github:
  apiURL: https://ghe.example.com/api/v3/
  perPage: 20
ui:
  colorMode: light
`)
	writeFile(t, filepath.Join(dir, "project", projectConfigDir, configFileName), `
github:
  perPage: 10
  timeout: 3s
`)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://ghe.example.com/api/v3", cfg.GitHub.APIURL)
	assert.Equal(t, 10, cfg.GitHub.PerPage, "project overrides user")
	assert.Equal(t, 3*time.Second, cfg.GitHub.Timeout)
	assert.Equal(t, "light", cfg.UI.ColorMode)
	assert.Equal(t, "info", cfg.UI.LogLevel, "untouched fields keep their defaults")
}

func TestLoadConfig_InvalidUserFile(t *testing.T) {
	dir := t.TempDir()
	mockPaths(t, dir)
	writeFile(t, filepath.Join(dir, "home", userConfigDir, configFileName), "github: [")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "session:\n  path: /tmp/gitrack-session.yaml\n")

	cfg, err := LoadConfigFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/gitrack-session.yaml", cfg.Session.Path)
	assert.Equal(t, DefaultAPIURL, cfg.GitHub.APIURL)

	_, err = LoadConfigFromPath(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestSessionPath(t *testing.T) {
	dir := t.TempDir()
	mockPaths(t, dir)
	home := filepath.Join(dir, "home")

	tests := []struct {
		name string
		path string
		want string
	}{
		{"default", "", filepath.Join(home, userConfigDir, sessionFileName)},
		{"home relative", "~/state/session.yaml", filepath.Join(home, "state", "session.yaml")},
		{"absolute", "/var/lib/gitrack.yaml", "/var/lib/gitrack.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			cfg.Session.Path = tt.path
			got, err := cfg.SessionPath()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
