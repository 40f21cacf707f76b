package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"dayslice/internal/config"
	"dayslice/internal/store"
	"dayslice/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env file is optional; environment overrides follow it.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}

	app := ui.NewApp(st, cfg)
	defer func() { _ = app.Close() }()
	return app.Execute()
}

func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		return store.NewSQLite(cfg.Storage.DBPath)
	default:
		return store.NewFileStore(cfg.Storage.DataDir)
	}
}
