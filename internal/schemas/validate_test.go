package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkobayashi/resume-matcher/internal/types"
)

func TestValidateParsedResume_Valid(t *testing.T) {
	resume := types.ParsedResume{
		Sections: []types.Section{
			{
				Heading:  "Skills",
				Category: types.CategorySkills,
				Content:  []string{"Go, Python"},
			},
			{
				Heading:  "Work Experience",
				Category: types.CategoryExperience,
				Content:  []string{"Acme Corp | Remote"},
				Entries: []types.WorkEntry{
					{Company: "Acme Corp", Title: "Engineer", Location: "Remote", Dates: "2020 - Present"},
				},
			},
		},
		RawText: "Skills\nGo, Python",
	}
	data, err := json.Marshal(resume)
	require.NoError(t, err)

	assert.NoError(t, ValidateParsedResume(data))
}

func TestValidateParsedResume_BadCategory(t *testing.T) {
	doc := `{
		"sections": [
			{"heading": "Stuff", "category": "nonsense", "content": []}
		],
		"raw_text": ""
	}`

	err := ValidateParsedResume([]byte(doc))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateParsedResume_MissingRawText(t *testing.T) {
	err := ValidateParsedResume([]byte(`{"sections": []}`))
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateParsedJob_Valid(t *testing.T) {
	job := types.ParsedJob{
		Title:   "Senior Engineer",
		RawText: "Senior Engineer\nRequirements\nGo",
		Sections: map[string][]string{
			"requirements": {"Go"},
		},
		AllRequirements: []string{"Go"},
	}
	data, err := json.Marshal(job)
	require.NoError(t, err)

	assert.NoError(t, ValidateParsedJob(data))
}

func TestValidateParsedJob_WrongSectionShape(t *testing.T) {
	doc := `{
		"raw_text": "",
		"sections": {"requirements": "not an array"},
		"all_requirements": []
	}`

	err := ValidateParsedJob([]byte(doc))
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateMatchReport_Valid(t *testing.T) {
	report := types.MatchReport{
		OverallScore:     66.7,
		MatchingKeywords: []string{"go"},
		MissingKeywords:  []string{"kafka"},
		KeywordPlacement: map[string]string{"kafka": types.PlacementSkills},
		Recommendations:  []string{"Moderate match."},
	}
	data, err := json.Marshal(report)
	require.NoError(t, err)

	assert.NoError(t, ValidateMatchReport(data))
}

func TestValidateMatchReport_ScoreOutOfRange(t *testing.T) {
	doc := `{
		"overall_score": 150,
		"matching_keywords": [],
		"missing_keywords": [],
		"keyword_placement": {},
		"recommendations": []
	}`

	err := ValidateMatchReport([]byte(doc))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "overall_score", validationErr.Errors[0].Field)
}

func TestValidateMatchReport_BadPlacement(t *testing.T) {
	doc := `{
		"overall_score": 50,
		"matching_keywords": [],
		"missing_keywords": ["x"],
		"keyword_placement": {"x": "somewhere-else"},
		"recommendations": []
	}`

	err := ValidateMatchReport([]byte(doc))
	assert.Error(t, err)
}

func TestValidateFile(t *testing.T) {
	report := types.MatchReport{
		MatchingKeywords: []string{},
		MissingKeywords:  []string{},
		KeywordPlacement: map[string]string{},
	}
	data, err := json.Marshal(report)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, data, 0644))

	assert.NoError(t, ValidateFile("match_report", path))
	assert.Error(t, ValidateFile("match_report", "/nonexistent.json"))
	assert.Error(t, ValidateFile("no-such-schema", path))
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "raw_text", Message: "is required"},
	}}
	assert.Contains(t, err.Error(), "raw_text")
	assert.Contains(t, err.Error(), "is required")
}
