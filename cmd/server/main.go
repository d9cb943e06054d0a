package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/aswini27ms/folio/internal/app"
	"github.com/aswini27ms/folio/internal/config"
	"github.com/aswini27ms/folio/internal/logging"
	"github.com/aswini27ms/folio/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil {
		// slog is not configured yet, so the standard logger reports this.
		log.Println("No .env file found, relying on environment variables")
	}

	logger := logging.New() // Initialize the structured logger

	if err := run(logger); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	container := app.NewContainer(cfg, logger, app.Options{})
	defer container.Close()

	modules, err := app.NewModules(container)
	if err != nil {
		return fmt.Errorf("failed to build modules: %w", err)
	}

	s := server.New(cfg)
	if err := s.InitModules(context.Background(), modules); err != nil {
		return err
	}
	return s.Start()
}
