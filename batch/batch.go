// Package batch orchestrates outline extraction over a directory of
// PDF files.
//
// A fixed pool of workers pulls file paths from a queue, runs the
// per-document processor, and persists each outline as
// <output>/<stem>.json. Per-file failures are recorded in the run
// report and as an error payload on disk; they never abort the batch.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"

	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/render"
)

// DocumentProcessor extracts the outline of a single PDF document.
type DocumentProcessor interface {
	Process(ctx context.Context, pdfPath string) (model.Outline, error)
}

// ProcessorFunc adapts a function to the DocumentProcessor interface.
type ProcessorFunc func(ctx context.Context, pdfPath string) (model.Outline, error)

// Process calls f.
func (f ProcessorFunc) Process(ctx context.Context, pdfPath string) (model.Outline, error) {
	return f(ctx, pdfPath)
}

// Options configures a batch run.
type Options struct {
	// InputDir is scanned (non-recursively) for PDF files.
	InputDir string

	// OutputDir receives one <stem>.json per input file. Created if
	// missing.
	OutputDir string

	// Workers is the number of documents processed concurrently.
	// Defaults to 4 when non-positive.
	Workers int

	// Attempts is how many times a failing document is tried before it
	// is recorded as an error. Defaults to 2 when non-positive.
	Attempts int

	// Logger receives progress events. Defaults to slog.Default().
	Logger *slog.Logger
}

// Runner executes batch runs with a fixed processor.
type Runner struct {
	opts Options
	proc DocumentProcessor
}

// NewRunner creates a batch runner.
func NewRunner(opts Options, proc DocumentProcessor) *Runner {
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if opts.Attempts <= 0 {
		opts.Attempts = 2
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Runner{opts: opts, proc: proc}
}

// Run processes every PDF in the input directory and returns the run
// report. The returned error covers setup failures only (unreadable
// input directory, uncreatable output directory); per-document failures
// are reported in the Report.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	started := time.Now()

	paths, err := render.ListPDFs(r.opts.InputDir)
	if err != nil {
		return Report{}, err
	}

	if err := os.MkdirAll(r.opts.OutputDir, 0o755); err != nil {
		return Report{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	logger := r.opts.Logger
	if len(paths) == 0 {
		logger.Warn("no PDF files found", "dir", r.opts.InputDir)
		return Report{Elapsed: time.Since(started)}, nil
	}

	logger.Info("starting batch run",
		"files", len(paths),
		"workers", r.opts.Workers,
	)

	queue := make(chan string)
	results := make([]Result, 0, len(paths))

	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < r.opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range queue {
				result := r.processOne(ctx, path)

				mu.Lock()
				results = append(results, result)
				mu.Unlock()
			}
		}()
	}

	for _, path := range paths {
		queue <- path
	}
	close(queue)
	wg.Wait()

	report := buildReport(results, time.Since(started))
	logger.Info("batch run complete",
		"total", report.Total,
		"succeeded", report.Succeeded,
		"failed", report.Failed,
		"elapsed", report.Elapsed,
	)

	return report, nil
}

// processOne extracts and persists the outline of a single file.
func (r *Runner) processOne(ctx context.Context, path string) Result {
	logger := r.opts.Logger
	jobID := uuid.NewString()
	stem := render.Stem(path)
	outPath := filepath.Join(r.opts.OutputDir, stem+".json")
	started := time.Now()

	var outline model.Outline
	err := retry.Do(
		func() error {
			var perr error
			outline, perr = r.proc.Process(ctx, path)
			return perr
		},
		retry.Context(ctx),
		retry.Attempts(uint(r.opts.Attempts)),
		retry.Delay(500*time.Millisecond),
		retry.LastErrorOnly(true),
	)

	result := Result{
		JobID:   jobID,
		File:    filepath.Base(path),
		Output:  filepath.Base(outPath),
		Elapsed: time.Since(started),
	}

	if err != nil {
		logger.Error("failed to process document", "job", jobID, "file", result.File, "error", err)
		result.Status = StatusError
		result.Error = err.Error()

		// Persist the failure payload so downstream tooling sees one
		// JSON file per input regardless of outcome.
		payload := errorPayload{Title: stem, Outline: []model.OutlineEntry{}, Error: err.Error()}
		if werr := writeJSON(outPath, payload); werr != nil {
			logger.Error("failed to write error payload", "job", jobID, "file", result.File, "error", werr)
		}
		return result
	}

	if werr := writeJSON(outPath, outline); werr != nil {
		logger.Error("failed to write outline", "job", jobID, "file", result.File, "error", werr)
		result.Status = StatusError
		result.Error = werr.Error()
		return result
	}

	logger.Info("processed document",
		"job", jobID,
		"file", result.File,
		"headings", len(outline.Outline),
		"elapsed", result.Elapsed,
	)
	result.Status = StatusSuccess
	result.Headings = len(outline.Outline)
	return result
}

// errorPayload is the on-disk shape for a document that could not be
// processed: the normal outline keys plus an error message.
type errorPayload struct {
	Title   string               `json:"title"`
	Outline []model.OutlineEntry `json:"outline"`
	Error   string               `json:"error"`
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
