// Package schemas validates the tool's JSON artifacts against embedded JSON
// Schemas, keeping the on-disk contracts stable for downstream consumers.
package schemas

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed parsed_resume.schema.json
var parsedResumeSchema string

//go:embed parsed_job.schema.json
var parsedJobSchema string

//go:embed match_report.schema.json
var matchReportSchema string

// ValidationError reports schema violations with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError reports a schema that could not be loaded or parsed.
type SchemaLoadError struct {
	Schema  string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Schema, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Schema, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateParsedResume checks a parsed resume JSON document.
func ValidateParsedResume(jsonContent []byte) error {
	return validate("parsed_resume", parsedResumeSchema, jsonContent)
}

// ValidateParsedJob checks a parsed job posting JSON document.
func ValidateParsedJob(jsonContent []byte) error {
	return validate("parsed_job", parsedJobSchema, jsonContent)
}

// ValidateMatchReport checks a match report JSON document.
func ValidateMatchReport(jsonContent []byte) error {
	return validate("match_report", matchReportSchema, jsonContent)
}

// ValidateFile checks a JSON file on disk against one of the named schemas:
// parsed_resume, parsed_job, or match_report.
func ValidateFile(schemaName, jsonPath string) error {
	schema, ok := map[string]string{
		"parsed_resume": parsedResumeSchema,
		"parsed_job":    parsedJobSchema,
		"match_report":  matchReportSchema,
	}[schemaName]
	if !ok {
		return fmt.Errorf("unknown schema: %s", schemaName)
	}

	absPath, err := filepath.Abs(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to resolve JSON path: %w", err)
	}
	content, err := os.ReadFile(absPath)
	if err != nil {
		return fmt.Errorf("failed to read JSON file %s: %w", absPath, err)
	}

	return validate(schemaName, schema, content)
}

func validate(schemaName, schemaContent string, jsonContent []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewBytesLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Schema:  schemaName,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
