package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mkobayashi/resume-matcher/internal/schemas"
)

var extractJobCmd = &cobra.Command{
	Use:   "extract-job",
	Short: "Extract a job posting into structured JSON",
	Long:  "Extract a job posting from a text file or a live URL into categorized sections and requirement lists, emitting JSON that validates against the parsed_job schema.",
	RunE:  runExtractJob,
}

var (
	extractJobFile    string
	extractJobURL     string
	extractJobOut     string
	extractJobBrowser bool
)

func init() {
	extractJobCmd.Flags().StringVarP(&extractJobFile, "job", "j", "", "Path to job posting text file")
	extractJobCmd.Flags().StringVarP(&extractJobURL, "job-url", "u", "", "URL to fetch the job posting from")
	extractJobCmd.Flags().StringVarP(&extractJobOut, "out", "o", "", "Path to output JSON file (default: stdout)")
	extractJobCmd.Flags().BoolVar(&extractJobBrowser, "use-browser", false, "Use headless browser fallback for SPA job boards")

	rootCmd.AddCommand(extractJobCmd)
}

func runExtractJob(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfigDefaults()
	if err != nil {
		return err
	}
	jobFile := extractJobFile
	if jobFile == "" {
		jobFile = cfg.Job
	}
	jobURL := extractJobURL
	if jobURL == "" {
		jobURL = cfg.JobURL
	}
	useBrowser := extractJobBrowser || cfg.UseBrowser

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	job, meta, err := loadJob(context.Background(), jobFile, jobURL, useBrowser, log)
	if err != nil {
		return err
	}
	if meta != nil {
		// The hash pins the exact text this extraction saw.
		log.Debug("ingested posting",
			zap.String("ingest_id", meta.IngestID),
			zap.String("hash", meta.Hash))
	}

	jsonBytes, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := schemas.ValidateParsedJob(jsonBytes); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("generated JSON does not validate against schema: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: could not validate output against schema: %v\n", err)
	}

	if err := writeJSON(extractJobOut, job); err != nil {
		return err
	}
	if extractJobOut != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Extracted %d sections\n", len(job.Sections))
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", extractJobOut)
	}
	return nil
}
