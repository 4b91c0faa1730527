package jobextract

import (
	"regexp"
	"strings"
)

// Job posting section categories. Unlike resume categories these are plain
// strings keyed into ParsedJob.Sections.
const (
	SectionResponsibilities = "responsibilities"
	SectionRequirements     = "requirements"
	SectionPreferred        = "preferred"
	SectionBenefits         = "benefits"
	SectionAbout            = "about"
	SectionGeneral          = "general"
)

// jobPattern pairs a section category with its compiled heading pattern.
// Ordered; first match wins.
type jobPattern struct {
	section string
	pattern *regexp.Regexp
}

var jobSynonyms = []struct {
	section  string
	patterns []string
}{
	{SectionResponsibilities, []string{
		`responsibilities`,
		`what\s*you(?:'ll|.will)\s*do`,
		`role\s*(?:description|overview)`,
		`job\s*duties`,
		`key\s*responsibilities`,
		`about\s*the\s*role`,
	}},
	{SectionRequirements, []string{
		`requirements`,
		`qualifications`,
		`what\s*(?:we(?:'re)?\s*looking\s*for|you\s*(?:need|bring))`,
		`minimum\s*qualifications`,
		`basic\s*qualifications`,
		`must\s*have`,
		`required\s*(?:skills|experience|qualifications)`,
	}},
	{SectionPreferred, []string{
		`preferred\s*(?:qualifications|skills|experience)`,
		`nice\s*to\s*have`,
		`bonus\s*(?:points|qualifications)?`,
		`desired\s*(?:skills|experience|qualifications)`,
		`additional\s*qualifications`,
	}},
	{SectionBenefits, []string{
		`benefits`,
		`perks`,
		`what\s*we\s*offer`,
		`compensation`,
	}},
	{SectionAbout, []string{
		`about\s*(?:us|the\s*company|the\s*team)`,
		`who\s*we\s*are`,
		`company\s*(?:overview|description)`,
	}},
}

var jobPatterns = compileJobPatterns()

func compileJobPatterns() []jobPattern {
	compiled := make([]jobPattern, 0, len(jobSynonyms))
	for _, entry := range jobSynonyms {
		joined := ""
		for i, p := range entry.patterns {
			if i > 0 {
				joined += "|"
			}
			joined += p
		}
		compiled = append(compiled, jobPattern{
			section: entry.section,
			pattern: regexp.MustCompile(`(?i)^\s*(?:` + joined + `)\s*:?\s*$`),
		})
	}
	return compiled
}

// matchSection returns the section category a heading line belongs to.
// Trailing colons are stripped before matching.
func matchSection(line string) (string, bool) {
	stripped := strings.TrimRight(strings.TrimSpace(line), ":")
	for _, jp := range jobPatterns {
		if jp.pattern.MatchString(stripped) {
			return jp.section, true
		}
	}
	return "", false
}
