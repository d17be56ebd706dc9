package app

import (
	"context"
	"fmt"
	"os"

	"gitrack/internal/config"
	"gitrack/pkg/logging"
)

// Application is the main application structure that bootstraps and runs gitrack
type Application struct {
	config   *Config
	services *Services
}

// NewApplication creates and initializes a new application instance
func NewApplication(cfg *Config) (*Application, error) {
	// Configure logging based on debug flag
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}

	// Initialize logging for CLI output (will be replaced for TUI mode)
	logging.InitForCLI(appLogLevel, os.Stderr)

	gitrackCfg, err := loadConfig(cfg)
	if err != nil {
		return nil, err
	}
	cfg.applyOverrides(&gitrackCfg)
	cfg.GitrackConfig = &gitrackCfg

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

func loadConfig(cfg *Config) (config.GitrackConfig, error) {
	if cfg.ConfigPath != "" {
		gitrackCfg, err := config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration from path: %s", cfg.ConfigPath)
			return config.GitrackConfig{}, fmt.Errorf("failed to load configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
		return gitrackCfg, nil
	}

	gitrackCfg, err := config.LoadConfig()
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load configuration")
		return config.GitrackConfig{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	return gitrackCfg, nil
}

// Run signs in with the configured token if needed and starts the TUI.
func (a *Application) Run(ctx context.Context) error {
	if a.config.Token != "" && !a.services.Session.HasCredential() {
		if err := a.services.SignIn(ctx, a.config.Token); err != nil {
			return err
		}
	}
	return runTUIMode(ctx, a.config, a.services)
}

// Services exposes the wired services to the commands that do not start the TUI.
func (a *Application) Services() *Services {
	return a.services
}
