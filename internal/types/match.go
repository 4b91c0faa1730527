package types

// Placement values for missing keywords.
const (
	PlacementSkills     = "skills"
	PlacementExperience = "experience"
)

// MatchReport is the result of comparing a resume against a job posting.
// The score measures job coverage: the percentage of the posting's important
// keywords that also appear in the resume.
type MatchReport struct {
	OverallScore     float64  `json:"overall_score"`
	MatchingKeywords []string `json:"matching_keywords"`
	MissingKeywords  []string `json:"missing_keywords"`
	// KeywordPlacement maps each missing keyword to the resume section it
	// should be added to ("skills" or "experience").
	KeywordPlacement map[string]string `json:"keyword_placement"`
	Recommendations  []string          `json:"recommendations"`
}
