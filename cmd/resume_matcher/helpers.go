package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mkobayashi/resume-matcher/internal/config"
	"github.com/mkobayashi/resume-matcher/internal/ingestion"
	"github.com/mkobayashi/resume-matcher/internal/jobextract"
	"github.com/mkobayashi/resume-matcher/internal/logger"
	"github.com/mkobayashi/resume-matcher/internal/parsing"
	"github.com/mkobayashi/resume-matcher/internal/types"
)

// newLogger builds the command logger, honoring the global --verbose flag.
func newLogger() (*zap.Logger, error) {
	return logger.New(flagVerbose)
}

// loadConfigDefaults loads the --config file when given, otherwise returns
// an empty config so flags stand alone.
func loadConfigDefaults() (config.Config, error) {
	if flagConfig == "" {
		return config.Config{}, nil
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return *cfg, nil
}

// loadResume reads and parses a resume document (.pdf or .docx).
func loadResume(path string) (types.ParsedResume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ParsedResume{}, fmt.Errorf("failed to read resume file: %w", err)
	}
	resume, err := parsing.ParseFile(data, path)
	if err != nil {
		return types.ParsedResume{}, fmt.Errorf("failed to parse resume: %w", err)
	}
	return resume, nil
}

// loadJob obtains posting text from a file or a URL and structures it.
// Exactly one of jobPath and jobURL must be set.
func loadJob(ctx context.Context, jobPath, jobURL string, useBrowser bool, log *zap.Logger) (types.ParsedJob, *ingestion.Metadata, error) {
	var (
		text string
		meta *ingestion.Metadata
		err  error
	)
	switch {
	case jobPath != "" && jobURL != "":
		return types.ParsedJob{}, nil, fmt.Errorf("--job and --job-url are mutually exclusive")
	case jobPath != "":
		text, meta, err = ingestion.IngestFromFile(jobPath)
	case jobURL != "":
		text, meta, err = ingestion.IngestFromURL(ctx, jobURL, useBrowser, log)
	default:
		return types.ParsedJob{}, nil, fmt.Errorf("either --job or --job-url is required")
	}
	if err != nil {
		return types.ParsedJob{}, nil, err
	}

	job := jobextract.FromText(text)
	jobextract.Apply(&job, jobextract.Enrichment{
		SalaryRange: jobextract.ExtractSalaryRange(job.RawText),
	})
	return job, meta, nil
}

// writeJSON marshals v with indentation and writes it to path, creating
// parent directories. An empty path writes to stdout instead.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, string(data))
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
