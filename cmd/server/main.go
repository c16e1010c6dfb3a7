// Command server serves the sections dataset and its chart series over HTTP.
// The dataset is read once at startup from SURVEY_OUTPUT_PATH; run
// build-sections first.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/omareport/internal/config"
	"github.com/JonMunkholm/omareport/internal/logging"
	"github.com/JonMunkholm/omareport/internal/report"
	"github.com/JonMunkholm/omareport/internal/web"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists; real environment variables take precedence
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"dataset", cfg.Pipeline.OutputPath,
	)

	store, err := report.Load(cfg.Pipeline.OutputPath)
	if err != nil {
		slog.Error("failed to load dataset", "path", cfg.Pipeline.OutputPath, "error", err)
		os.Exit(1)
	}
	slog.Info("dataset loaded", "sections", store.Len())

	server := web.NewServer(store, cfg.Server)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
