package main

import (
	"fmt"
	"os"

	"device-rental-backend/config"
	"device-rental-backend/internal/store"
	"device-rental-backend/internal/tui"
)

// The terminal dashboard stays quiet on stdout: log lines would tear
// the alternate screen, and everything worth reporting is on screen.
func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration from %s: %v\n", configPath, err)
		os.Exit(1)
	}

	st := store.Sample()
	if cfg.Dashboard.FleetFile != "" {
		if st, err = store.FromFile(cfg.Dashboard.FleetFile); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load fleet file %s: %v\n", cfg.Dashboard.FleetFile, err)
			os.Exit(1)
		}
	}

	if err := tui.Run(st); err != nil {
		fmt.Fprintf(os.Stderr, "dashboard error: %v\n", err)
		os.Exit(1)
	}
}
