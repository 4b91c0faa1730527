package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mkobayashi/resume-matcher/internal/ats"
	"github.com/mkobayashi/resume-matcher/internal/matcher"
	"github.com/mkobayashi/resume-matcher/internal/types"
	"github.com/mkobayashi/resume-matcher/internal/updater"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Rewrite resume sections to better match a job posting",
	Long:  "Run the full pipeline: parse the resume and posting, score keyword coverage, check ATS compliance, then produce updated sections with missing keywords woven in and a change log.",
	RunE:  runUpdate,
}

var (
	updateResume  string
	updateJobFile string
	updateJobURL  string
	updateOut     string
	updateBrowser bool
)

func init() {
	updateCmd.Flags().StringVarP(&updateResume, "resume", "r", "", "Path to resume file (.pdf or .docx)")
	updateCmd.Flags().StringVarP(&updateJobFile, "job", "j", "", "Path to job posting text file")
	updateCmd.Flags().StringVarP(&updateJobURL, "job-url", "u", "", "URL to fetch the job posting from")
	updateCmd.Flags().StringVarP(&updateOut, "out", "o", "", "Path to output JSON file (default: stdout)")
	updateCmd.Flags().BoolVar(&updateBrowser, "use-browser", false, "Use headless browser fallback for SPA job boards")

	rootCmd.AddCommand(updateCmd)
}

func runUpdate(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfigDefaults()
	if err != nil {
		return err
	}
	resumePath := updateResume
	if resumePath == "" {
		resumePath = cfg.Resume
	}
	if resumePath == "" {
		return fmt.Errorf("--resume is required")
	}
	jobFile := updateJobFile
	if jobFile == "" {
		jobFile = cfg.Job
	}
	jobURL := updateJobURL
	if jobURL == "" {
		jobURL = cfg.JobURL
	}
	useBrowser := updateBrowser || cfg.UseBrowser

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

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

	matchReport := matcher.Analyze(&resume, &job)
	atsReport := ats.Check(&resume)
	result := updater.Update(&resume, &matchReport, &atsReport)

	if err := writeJSON(updateOut, result); err != nil {
		return err
	}
	if updateOut != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Changes made: %d\n", len(result.ChangesMade))
		_, _ = fmt.Fprintf(os.Stdout, "Keywords added: %d\n", len(result.KeywordsAdded))
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", updateOut)
	}
	return nil
}
