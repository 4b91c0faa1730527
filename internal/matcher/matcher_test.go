package matcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkobayashi/resume-matcher/internal/types"
)

func resumeWithSkills(skills string) *types.ParsedResume {
	return &types.ParsedResume{
		Sections: []types.Section{
			{Heading: "Skills", Category: types.CategorySkills, Content: []string{skills}},
		},
	}
}

func jobWithRequirements(reqs ...string) *types.ParsedJob {
	return &types.ParsedJob{
		Sections:        map[string][]string{"requirements": reqs},
		AllRequirements: reqs,
	}
}

func TestAnalyze_CoverageScore(t *testing.T) {
	resume := resumeWithSkills("python sql")
	job := jobWithRequirements("python", "sql", "kubernetes")

	report := Analyze(resume, job)

	assert.InDelta(t, 66.7, report.OverallScore, 0.1)
	assert.Equal(t, []string{"python", "sql"}, report.MatchingKeywords)
	assert.Equal(t, []string{"kubernetes"}, report.MissingKeywords)
}

func TestAnalyze_ExtraResumeKeywordsDoNotChangeScore(t *testing.T) {
	job := jobWithRequirements("python", "sql")

	plain := Analyze(resumeWithSkills("python sql"), job)
	noisy := Analyze(resumeWithSkills("python sql haskell prolog fortran cobol erlang"), job)

	assert.Equal(t, plain.OverallScore, noisy.OverallScore)
}

func TestAnalyze_EmptyJobScoresZero(t *testing.T) {
	report := Analyze(resumeWithSkills("python"), &types.ParsedJob{Sections: map[string][]string{}})
	assert.Zero(t, report.OverallScore)
	assert.Empty(t, report.MatchingKeywords)
	assert.Empty(t, report.MissingKeywords)
	assert.NotEmpty(t, report.Recommendations)
}

func TestAnalyze_NilInputsDegrade(t *testing.T) {
	report := Analyze(nil, nil)
	assert.Zero(t, report.OverallScore)
}

func TestAnalyze_Monotonicity(t *testing.T) {
	job := jobWithRequirements("python", "kubernetes", "terraform", "airflow")

	before := Analyze(resumeWithSkills("python"), job)
	require.Contains(t, before.MissingKeywords, "kubernetes")

	after := Analyze(resumeWithSkills("python kubernetes"), job)
	assert.GreaterOrEqual(t, after.OverallScore, before.OverallScore)
	assert.NotContains(t, after.MissingKeywords, "kubernetes")
}

func TestAnalyze_CompoundTermsMatchedWhole(t *testing.T) {
	resume := resumeWithSkills("experience with machine learning systems")
	keywords := ExtractKeywords("experience with machine learning systems")

	assert.Contains(t, keywords, "machine learning")
	assert.Contains(t, keywords, "systems")

	job := jobWithRequirements("machine learning")
	report := Analyze(resume, job)
	assert.Contains(t, report.MatchingKeywords, "machine learning")
}

func TestAnalyze_FallsBackToSectionsWhenNoRequirements(t *testing.T) {
	job := &types.ParsedJob{
		Sections: map[string][]string{"general": {"must know python"}},
	}
	report := Analyze(resumeWithSkills("python"), job)
	assert.Contains(t, report.MatchingKeywords, "python")
}

func TestAnalyze_ResponsibilitiesContribute(t *testing.T) {
	job := &types.ParsedJob{
		Sections: map[string][]string{
			"requirements":     {"python"},
			"responsibilities": {"operate kafka clusters"},
		},
		AllRequirements: []string{"python"},
	}
	report := Analyze(resumeWithSkills("python"), job)
	assert.Contains(t, report.MissingKeywords, "kafka")
}

func TestSuggestPlacement(t *testing.T) {
	placement := suggestPlacement([]string{"machine learning", "sql", "c++", "orchestration"})

	assert.Equal(t, types.PlacementSkills, placement["machine learning"])
	assert.Equal(t, types.PlacementSkills, placement["sql"])
	assert.Equal(t, types.PlacementSkills, placement["c++"])
	assert.Equal(t, types.PlacementExperience, placement["orchestration"])
}

func TestBuildRecommendations_Bands(t *testing.T) {
	strong := buildRecommendations(&types.MatchReport{OverallScore: 85})
	assert.Contains(t, strong[0], "strong match")

	moderate := buildRecommendations(&types.MatchReport{OverallScore: 60})
	assert.Contains(t, moderate[0], "Moderate match")

	low := buildRecommendations(&types.MatchReport{OverallScore: 20})
	assert.Contains(t, low[0], "Low match")
}

func TestBuildRecommendations_ListsAreCapped(t *testing.T) {
	missing := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot",
		"golf", "hotel", "india", "juliett", "kilo", "lima",
		"mike", "november", "oscar", "papa",
	}
	placement := make(map[string]string, len(missing))
	for _, kw := range missing {
		placement[kw] = types.PlacementExperience
	}

	recs := buildRecommendations(&types.MatchReport{
		OverallScore:     10,
		MissingKeywords:  missing,
		KeywordPlacement: placement,
	})

	require.Len(t, recs, 3)
	assert.Contains(t, recs[1], "juliett")
	assert.NotContains(t, recs[1], "papa")
	assert.Contains(t, recs[2], "Prioritize")
}

func TestExtractKeywords_StopwordsAndShortTokensDropped(t *testing.T) {
	keywords := ExtractKeywords("We are looking for a strong team player with Go and SQL")

	assert.NotContains(t, keywords, "looking")
	assert.NotContains(t, keywords, "strong")
	assert.NotContains(t, keywords, "we")
	assert.Contains(t, keywords, "go")
	assert.Contains(t, keywords, "sql")
	assert.Contains(t, keywords, "player")
}

func TestFilterImportant_DropsNumbersAndShortWords(t *testing.T) {
	keywords := map[string]struct{}{
		"go":   {},
		"sql":  {},
		"2020": {},
		"c++":  {},
		"++":   {},
		"##":   {},
		"AI":   {},
	}
	important := filterImportant(keywords)

	assert.NotContains(t, important, "go") // lowercase 2-char, not an acronym
	assert.NotContains(t, important, "2020")
	// Letterless short tokens are symbol debris, not acronyms.
	assert.NotContains(t, important, "++")
	assert.NotContains(t, important, "##")
	assert.Contains(t, important, "sql")
	assert.Contains(t, important, "c++")
	assert.Contains(t, important, "AI")
}

func TestNormalize_KeepsTechCharacters(t *testing.T) {
	fields := strings.Fields(normalize("C++, and Node.js! (CI/CD) C#"))
	assert.Equal(t, []string{"c++", "and", "node.js", "ci/cd", "c#"}, fields)
}
