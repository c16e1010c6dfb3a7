// Command build-sections converts the survey exports in the data directory
// into the sections dataset read by the reporting front end.
//
// It takes no arguments; settings come from the environment (or a .env file):
// SURVEY_DATA_DIR, SURVEY_OUTPUT_PATH, PIPELINE_WORKERS, LOG_LEVEL, LOG_FORMAT.
// The exit code is 0 whenever the dataset is written, even if some catalog
// entries had no source file.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/JonMunkholm/omareport/internal/config"
	"github.com/JonMunkholm/omareport/internal/core"
	"github.com/JonMunkholm/omareport/internal/logging"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists; real environment variables take precedence
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logging.SetupWriter(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	if envErr != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	os.Exit(run(context.Background(), cfg, core.DefaultCatalog(), os.Stdout))
}

// run executes one build and returns the process exit code.
func run(ctx context.Context, cfg *config.Config, catalog core.Catalog, stdout io.Writer) int {
	pipeline, err := core.NewPipeline(catalog, cfg.Pipeline.DataDir,
		core.WithWorkers(cfg.Pipeline.Workers),
	)
	if err != nil {
		slog.Error("failed to create pipeline", "error", err)
		return 1
	}

	result, err := pipeline.Run(ctx, cfg.Pipeline.OutputPath)
	if err != nil {
		slog.Error("build failed", "code", core.ErrorCode(err), "error", err)
		return 1
	}

	for _, sec := range result.Sections {
		fmt.Fprintf(stdout, "✓ Loaded: %s (%d rows)\n", sec.Title, len(sec.Rows))
	}
	for _, sk := range result.Skipped {
		slog.Info("section skipped",
			"source", sk.Entry.FileName(),
			"code", core.ErrorCode(sk.Err),
		)
	}
	fmt.Fprintf(stdout, "\n✓ Generated: %s (%d sections)\n", cfg.Pipeline.OutputPath, len(result.Sections))

	return 0
}
