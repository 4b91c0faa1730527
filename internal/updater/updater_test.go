package updater

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkobayashi/resume-matcher/internal/types"
)

func sampleResume() *types.ParsedResume {
	return &types.ParsedResume{
		Sections: []types.Section{
			{
				Heading:  "About Me",
				Category: types.CategorySummary,
				Content:  []string{"Engineer with a decade of backend experience."},
			},
			{
				Heading:  "Work Experience",
				Category: types.CategoryExperience,
				Content: []string{
					"Acme Corp — Senior Engineer",
					"Built the billing pipeline",
					"Improved deploy times by 40%",
				},
			},
			{
				Heading:  "Skills",
				Category: types.CategorySkills,
				Content:  []string{"Go, Python"},
			},
		},
	}
}

func TestUpdate_AddsMissingSkills(t *testing.T) {
	match := &types.MatchReport{
		MissingKeywords: []string{"kubernetes", "terraform"},
		KeywordPlacement: map[string]string{
			"kubernetes": types.PlacementSkills,
			"terraform":  types.PlacementSkills,
		},
	}

	result := Update(sampleResume(), match, nil)

	skills := result.UpdatedSections[types.CategorySkills]
	require.NotNil(t, skills)
	assert.Equal(t, []string{"Go, Python, Kubernetes, Terraform"}, skills.Content)
	assert.Contains(t, result.KeywordsAdded, "kubernetes")
	assert.Contains(t, result.KeywordsAdded, "terraform")
	assert.Contains(t, result.ChangesMade, "Added 2 skills: kubernetes, terraform")
}

func TestUpdate_SkipsSkillsAlreadyPresent(t *testing.T) {
	match := &types.MatchReport{
		MissingKeywords:  []string{"go"},
		KeywordPlacement: map[string]string{"go": types.PlacementSkills},
	}

	result := Update(sampleResume(), match, nil)

	skills := result.UpdatedSections[types.CategorySkills]
	assert.Equal(t, []string{"Go, Python"}, skills.Content)
	assert.Empty(t, result.KeywordsAdded)
}

func TestUpdate_CreatesSkillsSectionWhenMissing(t *testing.T) {
	resume := &types.ParsedResume{
		Sections: []types.Section{
			{Heading: "Work Experience", Category: types.CategoryExperience, Content: []string{"Shipped things"}},
		},
	}
	match := &types.MatchReport{
		MissingKeywords:  []string{"aws"},
		KeywordPlacement: map[string]string{"aws": types.PlacementSkills},
	}

	result := Update(resume, match, nil)

	skills := result.UpdatedSections[types.CategorySkills]
	require.NotNil(t, skills)
	assert.Equal(t, "Skills", skills.Heading)
	assert.Equal(t, []string{"AWS"}, skills.Content)
	assert.Contains(t, result.ChangesMade, "Added missing 'Skills' section")
}

func TestUpdate_EnhancesExperienceBullets(t *testing.T) {
	match := &types.MatchReport{
		MissingKeywords:  []string{"kafka"},
		KeywordPlacement: map[string]string{"kafka": types.PlacementExperience},
	}

	result := Update(sampleResume(), match, nil)

	experience := result.UpdatedSections[types.CategoryExperience]
	require.NotNil(t, experience)
	// Title line untouched, first bullet enhanced.
	assert.Equal(t, "Acme Corp — Senior Engineer", experience.Content[0])
	assert.Equal(t, "Built the billing pipeline, utilizing Kafka.", experience.Content[1])
	assert.Equal(t, "Improved deploy times by 40%", experience.Content[2])
	assert.Contains(t, result.KeywordsAdded, "kafka")
}

func TestUpdate_OneKeywordPerBullet(t *testing.T) {
	match := &types.MatchReport{
		MissingKeywords: []string{"kafka", "redis"},
		KeywordPlacement: map[string]string{
			"kafka": types.PlacementExperience,
			"redis": types.PlacementExperience,
		},
	}

	result := Update(sampleResume(), match, nil)

	experience := result.UpdatedSections[types.CategoryExperience]
	assert.Equal(t, "Built the billing pipeline, utilizing Kafka.", experience.Content[1])
	assert.Equal(t, "Improved deploy times by 40%, utilizing Redis.", experience.Content[2])
}

func TestUpdate_UpdatesSummary(t *testing.T) {
	match := &types.MatchReport{
		MissingKeywords:  []string{"kubernetes", "terraform", "kafka", "redis", "aws", "gcp"},
		KeywordPlacement: map[string]string{},
	}

	result := Update(sampleResume(), match, nil)

	summary := result.UpdatedSections[types.CategorySummary]
	require.NotNil(t, summary)
	// Only the first three of the top five missing keywords are added.
	assert.Equal(t,
		"Engineer with a decade of backend experience. Skilled in Kubernetes, Terraform, Kafka.",
		summary.Content[0])
	assert.NotContains(t, result.KeywordsAdded, "aws")
	assert.NotContains(t, result.KeywordsAdded, "gcp")
}

func TestUpdate_SummarySkipsKeywordsAlreadyPresent(t *testing.T) {
	match := &types.MatchReport{
		MissingKeywords:  []string{"backend", "kafka"},
		KeywordPlacement: map[string]string{},
	}

	result := Update(sampleResume(), match, nil)

	summary := result.UpdatedSections[types.CategorySummary]
	assert.Equal(t,
		"Engineer with a decade of backend experience. Skilled in Kafka.",
		summary.Content[0])
}

func TestUpdate_RenamesHeadingsFromATSReport(t *testing.T) {
	ats := &types.ATSReport{
		HeadingSuggestions: map[string]string{"About Me": "Professional Summary"},
	}
	match := &types.MatchReport{}

	result := Update(sampleResume(), match, ats)

	summary := result.UpdatedSections[types.CategorySummary]
	assert.Equal(t, "Professional Summary", summary.Heading)
	assert.Contains(t, result.ChangesMade, "Renamed heading 'About Me' to 'Professional Summary'")
}

func TestUpdate_DoesNotMutateInput(t *testing.T) {
	resume := sampleResume()
	match := &types.MatchReport{
		MissingKeywords:  []string{"kubernetes"},
		KeywordPlacement: map[string]string{"kubernetes": types.PlacementSkills},
	}

	Update(resume, match, nil)

	assert.Equal(t, []string{"Go, Python"}, resume.Sections[2].Content)
	assert.Equal(t, "About Me", resume.Sections[0].Heading)
}

func TestUpdate_NilInputs(t *testing.T) {
	result := Update(nil, nil, nil)

	assert.Empty(t, result.UpdatedSections)
	assert.Empty(t, result.ChangesMade)
	assert.Empty(t, result.KeywordsAdded)
}

func TestFormatSkill(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"aws", "AWS"},
		{"gcp", "GCP"},
		{"java", "Java"},
		{"kubernetes", "Kubernetes"},
		{"c++", "c++"},
		{"node.js", "node.js"},
		{"machine learning", "machine learning"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatSkill(tt.in), tt.in)
	}
}
