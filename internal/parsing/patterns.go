package parsing

import (
	"regexp"

	"github.com/mkobayashi/resume-matcher/internal/types"
)

// categoryPattern pairs a canonical category with its compiled heading pattern.
// The table is ordered; classification tests patterns in this order and the
// first match wins.
type categoryPattern struct {
	category types.Category
	pattern  *regexp.Regexp
}

// sectionSynonyms lists the accepted phrasings per category, in priority order.
// Each alternative matches the full line, case-insensitive, with an optional
// trailing colon.
var sectionSynonyms = []struct {
	category types.Category
	patterns []string
}{
	{types.CategoryContact, []string{
		`contact\s*info(?:rmation)?`,
		`personal\s*info(?:rmation)?`,
	}},
	{types.CategorySummary, []string{
		`summary`,
		`professional\s*summary`,
		`profile`,
		`objective`,
		`about\s*me`,
		`career\s*summary`,
		`executive\s*summary`,
	}},
	{types.CategoryExperience, []string{
		`experience`,
		`work\s*experience`,
		`professional\s*experience`,
		`employment\s*history`,
		`work\s*history`,
	}},
	{types.CategoryEducation, []string{
		`education`,
		`academic\s*background`,
		`qualifications`,
	}},
	{types.CategorySkills, []string{
		`skills`,
		`technical\s*skills`,
		`core\s*competencies`,
		`competencies`,
		`areas?\s*of\s*expertise`,
		`proficiencies`,
	}},
	{types.CategoryCertifications, []string{
		`certifications?`,
		`licenses?\s*(?:&|and)?\s*certifications?`,
		`professional\s*certifications?`,
	}},
	{types.CategoryProjects, []string{
		`projects`,
		`personal\s*projects`,
		`key\s*projects`,
	}},
	{types.CategoryAwards, []string{
		`awards?`,
		`honors?`,
		`achievements?`,
	}},
	{types.CategoryLanguages, []string{
		`languages?`,
	}},
	{types.CategoryReferences, []string{
		`references?`,
	}},
}

// sectionPatterns is the compiled heading table, built once at init and never
// mutated afterwards.
var sectionPatterns = compilePatterns()

func compilePatterns() []categoryPattern {
	compiled := make([]categoryPattern, 0, len(sectionSynonyms))
	for _, entry := range sectionSynonyms {
		joined := ""
		for i, p := range entry.patterns {
			if i > 0 {
				joined += "|"
			}
			joined += p
		}
		compiled = append(compiled, categoryPattern{
			category: entry.category,
			pattern:  regexp.MustCompile(`(?i)^\s*(?:` + joined + `)\s*:?\s*$`),
		})
	}
	return compiled
}
