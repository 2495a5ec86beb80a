// Package main is the entry point for the CivicPulse smart-city monitoring
// backend. The service generates mock city telemetry, synthesizes composite
// indicators from it, and serves both over an HTTP API plus SSE/WebSocket
// live feeds.
//
// The application follows the same layering throughout:
// - Domain layer is pure (no infrastructure dependencies)
// - Telemetry generation is an explicit collaborator, never ambient state
// - Services compose generator output with the indicator synthesizer
// - HTTP handlers expose one module per dashboard section
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cityble/civicpulse/internal/config"
	"github.com/cityble/civicpulse/internal/events"
	"github.com/cityble/civicpulse/internal/scheduler"
	"github.com/cityble/civicpulse/internal/server"
	"github.com/cityble/civicpulse/internal/telemetry"
	"github.com/cityble/civicpulse/pkg/logger"
)

func main() {
	// Load configuration first to get log level
	cfg, err := config.Load()
	if err != nil {
		// Use fallback logger if config fails
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	log.Info().Msg("Starting CivicPulse")

	// Event bus connects the refresh job to the SSE and WebSocket feeds
	bus := events.NewBus(log)

	// Telemetry generator: the mock stand-in for real sensor ingestion.
	// A pinned seed (CIVICPULSE_SEED) makes demo renders reproducible.
	gen := telemetry.New(cfg.Seed, log)
	if cfg.Seed != 0 {
		log.Info().Int64("seed", cfg.Seed).Msg("Telemetry generator seeded for reproducible renders")
	}

	// Initialize HTTP server
	srv := server.New(server.Config{
		Port:      cfg.Port,
		Log:       log,
		Config:    cfg,
		Generator: gen,
		Bus:       bus,
		DevMode:   cfg.DevMode,
	})

	// Background scheduler drives the live feeds: each tick is an
	// independent fresh render, nothing is retained between ticks.
	sched := scheduler.New(log)
	refreshJob := scheduler.NewRefreshJob(gen, bus, log)
	schedule := fmt.Sprintf("@every %s", cfg.RefreshInterval)
	if err := sched.AddJob(schedule, refreshJob); err != nil {
		log.Fatal().Err(err).Msg("Failed to register snapshot refresh job")
	}
	sched.Start()

	// Start server in goroutine
	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	sched.Stop()

	// Graceful shutdown with a bounded window for in-flight requests
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
