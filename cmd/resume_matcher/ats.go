package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkobayashi/resume-matcher/internal/ats"
)

var atsCheckCmd = &cobra.Command{
	Use:   "ats-check",
	Short: "Check a resume for ATS compliance",
	Long:  "Parse a resume and run applicant-tracking-system compliance checks: required sections, standard headings, contact details, and content quality.",
	RunE:  runATSCheck,
}

var (
	atsResume string
	atsOut    string
)

func init() {
	atsCheckCmd.Flags().StringVarP(&atsResume, "resume", "r", "", "Path to resume file (.pdf or .docx)")
	atsCheckCmd.Flags().StringVarP(&atsOut, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(atsCheckCmd)
}

func runATSCheck(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfigDefaults()
	if err != nil {
		return err
	}
	resumePath := atsResume
	if resumePath == "" {
		resumePath = cfg.Resume
	}
	if resumePath == "" {
		return fmt.Errorf("--resume is required")
	}

	resume, err := loadResume(resumePath)
	if err != nil {
		return err
	}

	report := ats.Check(&resume)

	if err := writeJSON(atsOut, report); err != nil {
		return err
	}
	if atsOut != "" {
		_, _ = fmt.Fprintf(os.Stdout, "ATS score: %d\n", report.Score)
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", atsOut)
	}
	return nil
}
