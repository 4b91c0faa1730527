package types

// ParsedJob is the structured representation of a job posting.
// Sections maps a category name (responsibilities, requirements, preferred,
// benefits, about, or the synthetic general) to its content lines.
type ParsedJob struct {
	Title             string              `json:"title"`
	Company           string              `json:"company"`
	CompanyBackground string              `json:"company_background"`
	Location          string              `json:"location"`
	SalaryRange       string              `json:"salary_range"`
	RawText           string              `json:"raw_text"`
	Sections          map[string][]string `json:"sections"`
	// AllRequirements is the concatenation of requirements and preferred
	// content, or the general content when no heading matched.
	AllRequirements         []string `json:"all_requirements"`
	RequiredQualifications  []string `json:"required_qualifications"`
	PreferredQualifications []string `json:"preferred_qualifications"`
	Responsibilities        []string `json:"responsibilities"`
}
