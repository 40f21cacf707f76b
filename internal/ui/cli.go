// Package ui implements the dayslice command line interface.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"dayslice/internal/config"
	"dayslice/internal/store"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	store   store.Store
	config  *config.Config
	root    *cobra.Command
	noColor bool
}

// NewApp creates a new CLI application with the given store and config.
func NewApp(st store.Store, cfg *config.Config) *App {
	a := &App{store: st, config: cfg}

	a.root = &cobra.Command{
		Use:   "dayslice",
		Short: "Plan a single day as 48 half-hour slots",
		Long: `Dayslice lays out one day as 48 fixed half-hour slots.

Attach time-bounded tasks and point-in-time notes with priority tags,
then review where the day went with de-overlapped time statistics.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor || !cfg.UI.Color {
				DisableColor()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runShow(cmd, "", "", false)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable color output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.noteCmd())
	a.root.AddCommand(a.removeCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.statsCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("dayslice %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the underlying store.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}
