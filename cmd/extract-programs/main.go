// Command extract-programs lists the program names found in the first column
// of one survey export and writes them, deduplicated, as JSON.
//
// The source is the catalog entry named by EXTRACT_SOURCE (default oma_csv_13)
// inside SURVEY_DATA_DIR; the output goes to PROGRAMS_OUTPUT_PATH.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/JonMunkholm/omareport/internal/config"
	"github.com/JonMunkholm/omareport/internal/core"
	"github.com/JonMunkholm/omareport/internal/logging"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	logging.SetupWriter(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)

	os.Exit(run(cfg, core.DefaultCatalog(), os.Stdout))
}

func run(cfg *config.Config, catalog core.Catalog, stdout io.Writer) int {
	entry, _, ok := catalog.Lookup(cfg.Pipeline.ExtractSource)
	if !ok {
		slog.Error("extract source is not in the catalog", "source", cfg.Pipeline.ExtractSource)
		return 1
	}

	path := entry.Path(cfg.Pipeline.DataDir)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %s", core.ErrMissingFile, entry.FileName())
		}
		slog.Error("failed to read source", "path", path, "code", core.ErrorCode(err), "error", err)
		return 1
	}

	list := core.ExtractPrograms(content)
	fmt.Fprintf(stdout, "Extracting programs from: %s\n", path)
	fmt.Fprintf(stdout, "All programs: %d total\n", list.TotalCount)
	fmt.Fprintf(stdout, "Unique programs: %d unique\n", list.UniqueCount)
	for i, p := range list.Programs {
		fmt.Fprintf(stdout, "  %d. %s\n", i+1, p)
	}

	if err := writeJSON(cfg.Pipeline.ProgramsPath, list); err != nil {
		slog.Error("failed to write program list", "path", cfg.Pipeline.ProgramsPath, "error", err)
		return 1
	}
	fmt.Fprintf(stdout, "\nPrograms exported to: %s\n", cfg.Pipeline.ProgramsPath)
	return 0
}

func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
