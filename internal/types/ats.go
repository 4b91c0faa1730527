package types

// ATSIssue severity levels.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// ATSIssue is a single ATS compliance finding.
type ATSIssue struct {
	Severity   string `json:"severity"`
	Category   string `json:"category"` // structure, heading, content, formatting
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// ATSReport is a full ATS compliance report for a parsed resume.
type ATSReport struct {
	Score  int        `json:"score"` // 0-100
	Issues []ATSIssue `json:"issues"`
	// SectionStatus maps each checked category to present, missing, or
	// optional-missing.
	SectionStatus map[string]string `json:"section_status"`
	// HeadingSuggestions maps non-standard headings to ATS-standard renames.
	HeadingSuggestions map[string]string `json:"heading_suggestions"`
}
