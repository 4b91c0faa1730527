// Package matcher quantifies the keyword alignment between a structured
// resume and a structured job posting. The score is job coverage: extra
// unrelated resume keywords neither help nor hurt.
package matcher

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mkobayashi/resume-matcher/internal/types"
)

// Recommendation score bands.
const (
	strongMatchScore   = 80
	moderateMatchScore = 50

	// maxListedKeywords caps how many keywords a recommendation names.
	maxListedKeywords = 10

	// manyMissingThreshold triggers the prioritization recommendation.
	manyMissingThreshold = 15
)

// Analyze compares a parsed resume against a parsed job posting and
// produces a match report. It never fails: empty inputs degrade to a zero
// score and empty keyword lists.
func Analyze(resume *types.ParsedResume, job *types.ParsedJob) types.MatchReport {
	resumeKeywords := ExtractKeywords(resumeText(resume))
	jobKeywords := ExtractKeywords(jobText(job))

	resumeImportant := filterImportant(resumeKeywords)
	jobImportant := filterImportant(jobKeywords)

	matching := []string{}
	missing := []string{}
	for kw := range jobImportant {
		if _, ok := resumeImportant[kw]; ok {
			matching = append(matching, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	sort.Strings(matching)
	sort.Strings(missing)

	report := types.MatchReport{
		MatchingKeywords: matching,
		MissingKeywords:  missing,
	}
	if len(jobImportant) > 0 {
		report.OverallScore = float64(len(matching)) / float64(len(jobImportant)) * 100
	}

	report.KeywordPlacement = suggestPlacement(missing)
	report.Recommendations = buildRecommendations(&report)
	return report
}

// resumeText flattens all resume section content into one string.
func resumeText(resume *types.ParsedResume) string {
	if resume == nil {
		return ""
	}
	var parts []string
	for _, section := range resume.Sections {
		parts = append(parts, section.Content...)
	}
	return strings.Join(parts, " ")
}

// jobText gathers the posting text that matters for matching: the
// requirement lines (all section content when none were recognized) plus
// the responsibilities.
func jobText(job *types.ParsedJob) string {
	if job == nil {
		return ""
	}
	text := strings.Join(job.AllRequirements, " ")
	if strings.TrimSpace(text) == "" {
		var parts []string
		for _, lines := range job.Sections {
			parts = append(parts, lines...)
		}
		text = strings.Join(parts, " ")
	}
	return text + " " + strings.Join(job.Sections["responsibilities"], " ")
}

// suggestPlacement decides which resume section each missing keyword
// belongs in: compound-term members and short tech abbreviations go to
// skills, everything else to experience bullets.
func suggestPlacement(missing []string) map[string]string {
	placement := make(map[string]string, len(missing))
	for _, kw := range missing {
		switch {
		case isCompoundMember(kw):
			placement[kw] = types.PlacementSkills
		case looksLikeTechAbbreviation(kw):
			placement[kw] = types.PlacementSkills
		default:
			placement[kw] = types.PlacementExperience
		}
	}
	return placement
}

// buildRecommendations turns the report numbers into actionable advice.
func buildRecommendations(report *types.MatchReport) []string {
	var recs []string

	switch {
	case report.OverallScore >= strongMatchScore:
		recs = append(recs, "Your resume is a strong match. Focus on fine-tuning bullet points.")
	case report.OverallScore >= moderateMatchScore:
		recs = append(recs, "Moderate match. Add missing keywords to strengthen your application.")
	default:
		recs = append(recs, "Low match. Significant keyword gaps exist; consider tailoring your resume more closely to this role.")
	}

	var skillsMissing, expMissing []string
	for _, kw := range report.MissingKeywords {
		switch report.KeywordPlacement[kw] {
		case types.PlacementSkills:
			skillsMissing = append(skillsMissing, kw)
		case types.PlacementExperience:
			expMissing = append(expMissing, kw)
		}
	}

	if len(skillsMissing) > 0 {
		recs = append(recs, fmt.Sprintf("Add to Skills section: %s",
			strings.Join(firstN(skillsMissing, maxListedKeywords), ", ")))
	}
	if len(expMissing) > 0 {
		recs = append(recs, fmt.Sprintf("Incorporate into Experience bullets: %s",
			strings.Join(firstN(expMissing, maxListedKeywords), ", ")))
	}

	if len(report.MissingKeywords) > manyMissingThreshold {
		recs = append(recs, "Many keywords are missing. Prioritize the most frequently mentioned terms in the job description.")
	}

	return recs
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
