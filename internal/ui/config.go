package ui

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dayslice/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the configuration",
		Long: `Print the config file location and the effective configuration.

If no config file exists, one is created with default values.

Example:
  dayslice config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			configPath := config.DefaultConfigPath()
			fmt.Printf("Config file: %s\n\n", configPath)

			cfg, err := config.LoadFrom(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			if _, err := os.Stat(configPath); os.IsNotExist(err) {
				fmt.Println("No config file found. Creating with default values...")
				if err := cfg.Save(); err != nil {
					return fmt.Errorf("saving config: %w", err)
				}
				fmt.Printf("Created %s\n\n", configPath)
			}

			printConfig(cfg)
			return nil
		},
	}
}

func printConfig(cfg *config.Config) {
	fmt.Printf("  %s\n", formatHeader("STORAGE"))
	fmt.Printf("  backend      %s\n", cfg.Storage.Backend)
	fmt.Printf("  data_dir     %s\n", cfg.Storage.DataDir)
	fmt.Printf("  db_path      %s\n", cfg.Storage.DBPath)

	fmt.Printf("\n  %s\n", formatHeader("UI"))
	fmt.Printf("  time_format  %s\n", cfg.UI.TimeFormat)
	fmt.Printf("  color        %t\n", cfg.UI.Color)
}
