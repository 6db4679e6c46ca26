// Package main implements the entry point for the Scry vocabulary engine.
// It loads a vocabulary list, selects the items due for review and prints a
// preview of the review queue together with a generated quiz.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/scry-vocab/internal/config"
	"github.com/phrazzld/scry-vocab/internal/platform/logger"
	"github.com/phrazzld/scry-vocab/internal/redact"
)

// main is the entry point for the scry-vocab engine.
func main() {
	cfg, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %s", redact.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApplication(cfg, slog.Default())
	if err := app.run(ctx, os.Stdout); err != nil {
		slog.Error("engine run failed", redact.ErrorAttr(err))
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up logging.
// Returns the loaded config and any initialization error.
func initializeApp() (*config.Config, error) {
	if err := config.LoadDotEnv(config.DefaultDotEnvFile); err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Stdout carries the preview, so logs go to stderr.
	if _, err := logger.SetupWithWriter(cfg.Log, os.Stderr); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Engine configuration loaded",
		"log_level", cfg.Log.Level,
		"quiz_type", cfg.Quiz.Type,
		"default_count", cfg.Quiz.DefaultCount)

	if cfg.Quiz.Seed != 0 {
		slog.Debug("Quiz generation is seeded", "seed", cfg.Quiz.Seed)
	}

	return cfg, nil
}
