package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkobayashi/resume-matcher/internal/schemas"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse a resume file into structured sections JSON",
	Long:  "Parse a resume document (.pdf or .docx) into categorized sections with experience entries, emitting JSON that validates against the parsed_resume schema.",
	RunE:  runParseResume,
}

var (
	parseResumeIn  string
	parseResumeOut string
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeIn, "in", "i", "", "Path to resume file (.pdf or .docx)")
	parseResumeCmd.Flags().StringVarP(&parseResumeOut, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfigDefaults()
	if err != nil {
		return err
	}
	in := parseResumeIn
	if in == "" {
		in = cfg.Resume
	}
	if in == "" {
		return fmt.Errorf("--in is required")
	}

	resume, err := loadResume(in)
	if err != nil {
		return err
	}

	jsonBytes, err := json.Marshal(resume)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := schemas.ValidateParsedResume(jsonBytes); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("generated JSON does not validate against schema: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: could not validate output against schema: %v\n", err)
	}

	if err := writeJSON(parseResumeOut, resume); err != nil {
		return err
	}
	if parseResumeOut != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Parsed %d sections\n", len(resume.Sections))
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", parseResumeOut)
	}
	return nil
}
