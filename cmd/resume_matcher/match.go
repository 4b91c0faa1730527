package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mkobayashi/resume-matcher/internal/matcher"
	"github.com/mkobayashi/resume-matcher/internal/schemas"
	"github.com/mkobayashi/resume-matcher/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a job posting",
	Long:  "Parse the resume and the job posting, then report keyword coverage: the overall score, matching and missing keywords, suggested placement for each gap, and recommendations.",
	RunE:  runMatch,
}

var (
	matchResume  string
	matchJobFile string
	matchJobURL  string
	matchOut     string
	matchBrowser bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to resume file (.pdf or .docx)")
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to job posting text file")
	matchCmd.Flags().StringVarP(&matchJobURL, "job-url", "u", "", "URL to fetch the job posting from")
	matchCmd.Flags().StringVarP(&matchOut, "out", "o", "", "Path to output JSON file (default: stdout)")
	matchCmd.Flags().BoolVar(&matchBrowser, "use-browser", false, "Use headless browser fallback for SPA job boards")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfigDefaults()
	if err != nil {
		return err
	}
	resumePath := matchResume
	if resumePath == "" {
		resumePath = cfg.Resume
	}
	if resumePath == "" {
		return fmt.Errorf("--resume is required")
	}
	jobFile := matchJobFile
	if jobFile == "" {
		jobFile = cfg.Job
	}
	jobURL := matchJobURL
	if jobURL == "" {
		jobURL = cfg.JobURL
	}
	useBrowser := matchBrowser || cfg.UseBrowser

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// Resume parsing and job ingestion are independent; run them in
	// parallel.
	var (
		resume types.ParsedResume
		job    types.ParsedJob
	)
	g, gCtx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		parsed, err := loadResume(resumePath)
		if err != nil {
			return err
		}
		resume = parsed
		return nil
	})
	g.Go(func() error {
		parsed, _, err := loadJob(gCtx, jobFile, jobURL, useBrowser, log)
		if err != nil {
			return err
		}
		job = parsed
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	report := matcher.Analyze(&resume, &job)

	jsonBytes, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := schemas.ValidateMatchReport(jsonBytes); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("generated JSON does not validate against schema: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: could not validate output against schema: %v\n", err)
	}

	if err := writeJSON(matchOut, report); err != nil {
		return err
	}
	if matchOut != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Overall score: %.1f\n", report.OverallScore)
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", matchOut)
	}
	return nil
}
