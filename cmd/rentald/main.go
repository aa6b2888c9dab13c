package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"device-rental-backend/config"
	"device-rental-backend/internal/api"
	"device-rental-backend/internal/logger"
	"device-rental-backend/internal/store"
)

func main() {
	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration from %s: %v\n", configPath, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to configure logging: %v\n", err)
		os.Exit(1)
	}
	log.Info().Str("path", configPath).Msg("configuration loaded")

	// Pick the fleet: a configured YAML file, or the built-in sample.
	st := store.Sample()
	if cfg.Dashboard.FleetFile != "" {
		if st, err = store.FromFile(cfg.Dashboard.FleetFile); err != nil {
			log.Fatal().Err(err).Str("path", cfg.Dashboard.FleetFile).Msg("failed to load fleet file")
		}
	}
	log.Info().Str("dataset", st.Version()).Int("devices", len(st.Fleet())).Msg("fleet loaded")

	// Initialize router
	router := api.NewRouter(st, log, cfg.Server)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server ListenAndServe")
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	log.Info().Msg("shutdown signal received, stopping server")

	// Create a deadline to wait for.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("HTTP server Shutdown")
	}

	log.Info().Msg("server gracefully stopped")
}
