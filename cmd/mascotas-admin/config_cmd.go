package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mascotas/mascotas-admin/internal/config"
	"github.com/mascotas/mascotas-admin/internal/ui"
)

var (
	configInitForce bool
	configInitPath  string
)

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing file")
	configInitCmd.Flags().StringVar(&configInitPath, "path", "", "Where to write the file (default: the --config path or the user config dir)")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
	Long: `Manage the YAML configuration file.

Every setting can also be given through the environment:
  MASCOTAS_API_URL, MASCOTAS_LIST_PATH, MASCOTAS_RECORD_PATH,
  MASCOTAS_REQUEST_TIMEOUT, MASCOTAS_ALERT_TIMEOUT,
  MASCOTAS_LOG_LEVEL, MASCOTAS_LOG_FILE`,
}

var configInitCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write a configuration file with the default values",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipConfigAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configInitPath
		if path == "" {
			path = configPath
		}
		if path == "" {
			p, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			path = p
		}

		if err := config.InitFile(path, configInitForce); err != nil {
			return err
		}

		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Configuration written", ui.Detail{Key: "Path", Value: path})
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the file, environment and flags are
applied, followed by the log file the admin panel writes to.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := cfg.Marshal()
		if err != nil {
			return fmt.Errorf("failed to encode configuration: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprint(out, string(data))
		fmt.Fprintf(out, "# admin panel log: %s\n", cfg.LogFilePath())
		return nil
	},
}
