package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gitrack/internal/app"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// v binds the persistent flags and GITRACK_* environment variables.
var v = viper.New()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gitrack",
	Short: "Browse GitHub issues and milestones from the terminal",
	Long: `gitrack is a terminal client for GitHub issue tracking. Sign in with a
personal access token, pick a repository, then browse its issues,
milestones and people in tabs.

Configuration is read from ~/.config/gitrack/config.yaml and
.gitrack/config.yaml in the current directory. Every flag can also be
set through a GITRACK_ environment variable, e.g. GITRACK_API_URL.
GITRACK_TOKEN signs in without the prompt when no session exists.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. a rejected token)
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runRoot,
}

// SetVersion sets the version for the root command
func SetVersion(version string) {
	rootCmd.Version = version
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "gitrack version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	application, err := newApplication(cmd.Root().Version)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

// appConfig builds the application configuration from flags and environment.
func appConfig(version string) *app.Config {
	cfg := app.NewConfig(v.GetBool("debug"), v.GetBool("demo"), v.GetString("config"))
	cfg.APIURL = v.GetString("api-url")
	cfg.SessionPath = v.GetString("session")
	cfg.LogLevel = v.GetString("log-level")
	cfg.Token = v.GetString("token")
	cfg.Version = version
	return cfg
}

func newApplication(version string) (*app.Application, error) {
	application, err := app.NewApplication(appConfig(version))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return application, nil
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newStatusCmd())

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default layers ~/.config/gitrack/config.yaml and .gitrack/config.yaml)")
	flags.Bool("debug", false, "Enable debug logging")
	flags.Bool("demo", false, "Use built-in offline data and an in-memory session")
	flags.String("api-url", "", "GitHub API base URL, e.g. for GitHub Enterprise")
	flags.String("session", "", "session file (default ~/.config/gitrack/session.yaml)")
	flags.String("log-level", "", "activity log level: debug, info, warn, error")

	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	v.SetEnvPrefix("GITRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}
