// Mascotas-admin manages the records of a remote pets registry.
//
// It provides an interactive admin panel for listing, creating, editing and
// deleting pets, one-shot commands for scripting, and a local in-memory
// registry for trying things out without touching the real one.
//
// Usage:
//
//	mascotas-admin [command] [flags]
//
// Running without arguments launches the admin panel.
// See 'mascotas-admin --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mascotas/mascotas-admin/internal/config"
	"github.com/mascotas/mascotas-admin/internal/logging"
	"github.com/mascotas/mascotas-admin/internal/petapi"
	"github.com/mascotas/mascotas-admin/internal/urls"
	"github.com/mascotas/mascotas-admin/internal/version"
)

// skipConfigAnnotation marks commands that run without loading the configuration
const skipConfigAnnotation = "skip-config"

// Global flags
var (
	configPath   string
	apiURL       string
	logLevel     string
	outputFormat string
)

// cfg is loaded once by the root PersistentPreRunE
var cfg *config.Config

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mascotas-admin",
	Short: "Pets registry administration tool",
	Long: `An administration tool for a remote pets registry.

Lists, creates, edits and deletes pet records through the registry's REST API,
including photo uploads on creation.

If no command is specified, the interactive admin panel will launch.`,
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runAdmin,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: <user config dir>/mascotas-admin/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Registry base URL (overrides api.base_url)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when empty")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "table", "Output format (table, compact, detailed, json)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print version information",
	Annotations: map[string]string{skipConfigAnnotation: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mascotas-admin %s (commit: %s)\n", version.Version, version.Commit)
	},
}

// loadConfig reads the configuration and applies the global flag overrides.
func loadConfig(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[skipConfigAnnotation] == "true" {
		return nil
	}

	switch outputFormat {
	case "table", "compact", "detailed", "json":
	default:
		return fmt.Errorf("unknown --format %q (want table, compact, detailed or json)", outputFormat)
	}

	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if apiURL != "" {
		if err := urls.ValidateBaseURL(apiURL); err != nil {
			return fmt.Errorf("--api-url: %w", err)
		}
		loaded.API.BaseURL = apiURL
	}
	if logLevel != "" {
		loaded.Log.Level = logLevel
	}

	cfg = loaded
	return nil
}

// initLogging starts zap on output ("stderr" or a file path).
func initLogging(output string) error {
	if err := logging.Initialize(cfg.Log.Level, output); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logging.Debug("Configuration loaded",
		zap.String("base_url", cfg.API.BaseURL),
		zap.String("list_path", cfg.API.Endpoints.List),
		zap.String("record_path", cfg.API.Endpoints.Record),
		zap.Duration("request_timeout", cfg.API.RequestTimeout),
	)
	return nil
}

func newClient() *petapi.Client {
	client := petapi.NewClient(cfg.API.BaseURL, cfg.API.Endpoints)
	client.SetTimeout(cfg.API.RequestTimeout)
	return client
}

// reportedError wraps an error that was already shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }
