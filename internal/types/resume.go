// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Category is a canonical resume section kind. The string values are a stable
// contract: downstream consumers index parsed output by these names.
type Category string

const (
	CategoryContact        Category = "contact"
	CategorySummary        Category = "summary"
	CategoryExperience     Category = "experience"
	CategoryEducation      Category = "education"
	CategorySkills         Category = "skills"
	CategoryCertifications Category = "certifications"
	CategoryProjects       Category = "projects"
	CategoryAwards         Category = "awards"
	CategoryLanguages      Category = "languages"
	CategoryReferences     Category = "references"

	// CategoryHeader is synthesized for content that precedes any recognized
	// heading (name and contact lines at the top of a resume).
	CategoryHeader Category = "header"

	// CategoryGeneral is synthesized for job postings where no heading matched.
	CategoryGeneral Category = "general"
)

// WorkEntry represents a single role within an experience section.
type WorkEntry struct {
	Company  string   `json:"company"`
	Title    string   `json:"title"`
	Location string   `json:"location"`
	Dates    string   `json:"dates"`
	Bullets  []string `json:"bullets"`
}

// Section is a single categorized section of a resume.
type Section struct {
	Heading  string   `json:"heading"`
	Category Category `json:"category"`
	Content  []string `json:"content"`
	// Entries is populated only for experience sections with non-empty content.
	Entries []WorkEntry `json:"entries,omitempty"`
}

// ParsedResume is the structured representation of a parsed resume.
// Sections preserve first-seen document order; two sections may share a category.
type ParsedResume struct {
	Sections []Section `json:"sections"`
	// RawText is the newline join of every original line, heading and blank
	// lines included, in original order.
	RawText string `json:"raw_text"`
}

// SectionsByCategory returns a category-keyed view of the sections.
// When two sections share a category the later one wins, matching how
// downstream consumers (ATS checker, updater) have always seen the data.
func (r *ParsedResume) SectionsByCategory() map[Category]*Section {
	out := make(map[Category]*Section, len(r.Sections))
	for i := range r.Sections {
		out[r.Sections[i].Category] = &r.Sections[i]
	}
	return out
}

// Section returns the last section with the given category, or nil.
func (r *ParsedResume) Section(cat Category) *Section {
	var found *Section
	for i := range r.Sections {
		if r.Sections[i].Category == cat {
			found = &r.Sections[i]
		}
	}
	return found
}
