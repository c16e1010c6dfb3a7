package core

// pipeline.go runs the section build over a whole catalog.
//
// Each catalog entry is an independent task: read the file, parse, normalize,
// filter and assemble. Tasks run in parallel up to the configured worker
// count and write into a slot indexed by catalog position, so the reduce step
// only has to walk the slots in order. Nothing is shared between tasks except
// the read-only alias and sentinel tables.

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/JonMunkholm/omareport/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the default number of files processed in parallel.
const DefaultWorkers = 4

// ReadFileFunc loads a whole source file.
type ReadFileFunc func(path string) ([]byte, error)

// Pipeline builds sections from a catalog of source files.
type Pipeline struct {
	catalog  Catalog
	dataDir  string
	workers  int
	readFile ReadFileFunc
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithWorkers sets how many files are processed at once. Values below 1 use
// DefaultWorkers.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithReadFile replaces the file loader (os.ReadFile by default).
func WithReadFile(fn ReadFileFunc) Option {
	return func(p *Pipeline) {
		if fn != nil {
			p.readFile = fn
		}
	}
}

// NewPipeline creates a pipeline over catalog reading from dataDir.
// The catalog is copied; later changes to the caller's slice have no effect.
func NewPipeline(catalog Catalog, dataDir string, opts ...Option) (*Pipeline, error) {
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	p := &Pipeline{
		catalog:  append(Catalog(nil), catalog...),
		dataDir:  dataDir,
		workers:  DefaultWorkers,
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// fileResult is the outcome of one catalog entry's task.
type fileResult struct {
	section *Section
	skipErr error
	dropped int
}

// Build processes every catalog entry and returns the sections in catalog
// order. Per-file problems never fail the build; they are logged and reported
// in the result. An error is returned only if ctx is cancelled.
func (p *Pipeline) Build(ctx context.Context) (*BuildResult, error) {
	start := time.Now()
	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	logger := logging.FromContext(ctx)

	logger.Info("build started",
		"catalog_entries", len(p.catalog),
		"data_dir", p.dataDir,
		"workers", p.workers,
	)

	results := make([]fileResult, len(p.catalog))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, entry := range p.catalog {
		i, entry := i, entry
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("build cancelled before %s: %w", entry.FileName(), err)
			}
			results[i] = p.processFile(gctx, i, entry)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &BuildResult{RunID: runID}
	for i, r := range results {
		out.DroppedRows += r.dropped
		if r.section == nil {
			out.Skipped = append(out.Skipped, SkippedEntry{Entry: p.catalog[i], Err: r.skipErr})
			continue
		}
		out.Sections = append(out.Sections, *r.section)
	}

	logger.Info("build finished",
		"sections", len(out.Sections),
		"skipped", len(out.Skipped),
		"dropped_rows", out.DroppedRows,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// Run builds the sections and writes them to outputPath. The returned error
// wraps ErrWriteFailure when the artifact could not be persisted.
func (p *Pipeline) Run(ctx context.Context, outputPath string) (*BuildResult, error) {
	result, err := p.Build(ctx)
	if err != nil {
		return nil, err
	}
	if err := WriteSections(outputPath, result.Sections); err != nil {
		logging.FromContext(logging.WithRunID(ctx, result.RunID)).Error("dataset write failed",
			"path", outputPath,
			"code", ErrorCode(err),
			"error", err,
		)
		return result, err
	}
	return result, nil
}

// processFile runs one catalog entry through the ingestion stages.
func (p *Pipeline) processFile(ctx context.Context, position int, entry CatalogEntry) fileResult {
	logger := logging.WithFields(ctx,
		"section_id", SectionID(position),
		"file", entry.FileName(),
	)

	content, err := p.readFile(entry.Path(p.dataDir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %s", ErrMissingFile, entry.FileName())
			logger.Warn("source file missing, section skipped", "code", ErrorCode(err))
		} else {
			err = fmt.Errorf("reading %s: %w", entry.FileName(), err)
			logger.Error("source file unreadable, section skipped", "code", ErrorCode(err), "error", err)
		}
		return fileResult{skipErr: err}
	}

	data, err := ParseSource(content)
	if err != nil {
		err = fmt.Errorf("%s: %w", entry.FileName(), err)
		logger.Warn("source file empty, section skipped", "code", ErrorCode(err))
		return fileResult{skipErr: err}
	}

	section, issues := Assemble(entry, position, data)
	issues = append(data.Issues, issues...)
	for _, iss := range issues {
		logger.Warn("row dropped",
			"line", iss.Line,
			"code", ErrorCode(iss.Err),
			"error", iss.Err,
		)
	}
	if data.Filtered > 0 {
		logger.Debug("sentinel rows filtered", "count", data.Filtered)
	}

	logger.Debug("section assembled",
		"rows", len(section.Rows),
		"participants", section.ParticipantCount,
	)
	return fileResult{section: &section, dropped: len(issues)}
}
