// Package updater rewrites resume content to better match a job posting,
// guided by a match report and an optional ATS compliance report.
package updater

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mkobayashi/resume-matcher/internal/types"
)

// titleLinePattern identifies experience lines that look like a role header
// rather than a bullet (e.g. "Acme Corp — Senior Engineer").
var titleLinePattern = regexp.MustCompile(`^[A-Z][\w\s]+\s*[—\-–]\s*\w`)

// Update produces an edited copy of the resume's sections with missing
// keywords woven in. The input resume is never mutated. The ATS report may
// be nil; heading fixes are skipped without it.
func Update(resume *types.ParsedResume, match *types.MatchReport, ats *types.ATSReport) types.UpdateResult {
	result := types.UpdateResult{
		UpdatedSections: map[types.Category]*types.Section{},
		ChangesMade:     []string{},
		KeywordsAdded:   []string{},
	}
	if resume != nil {
		for cat, section := range resume.SectionsByCategory() {
			result.UpdatedSections[cat] = copySection(section)
		}
	}
	if match == nil {
		return result
	}

	if ats != nil {
		fixHeadings(result.UpdatedSections, ats, &result)
	}
	updateSkills(result.UpdatedSections, match, &result)
	updateExperience(result.UpdatedSections, match, &result)
	updateSummary(result.UpdatedSections, match, &result)

	return result
}

func copySection(section *types.Section) *types.Section {
	out := &types.Section{
		Heading:  section.Heading,
		Category: section.Category,
		Content:  append([]string(nil), section.Content...),
	}
	for _, entry := range section.Entries {
		copied := entry
		copied.Bullets = append([]string(nil), entry.Bullets...)
		out.Entries = append(out.Entries, copied)
	}
	return out
}

// fixHeadings applies the ATS report's suggested heading renames.
func fixHeadings(sections map[types.Category]*types.Section, ats *types.ATSReport, result *types.UpdateResult) {
	for _, section := range sections {
		if newHeading, ok := ats.HeadingSuggestions[section.Heading]; ok {
			old := section.Heading
			section.Heading = newHeading
			result.ChangesMade = append(result.ChangesMade,
				fmt.Sprintf("Renamed heading '%s' to '%s'", old, newHeading))
		}
	}
}

// updateSkills appends missing skills-placed keywords to the skills section,
// creating the section when absent.
func updateSkills(sections map[types.Category]*types.Section, match *types.MatchReport, result *types.UpdateResult) {
	var toAdd []string
	for _, kw := range match.MissingKeywords {
		if match.KeywordPlacement[kw] == types.PlacementSkills {
			toAdd = append(toAdd, kw)
		}
	}
	if len(toAdd) == 0 {
		return
	}

	skills, ok := sections[types.CategorySkills]
	if !ok {
		skills = &types.Section{
			Heading:  "Skills",
			Category: types.CategorySkills,
			Content:  []string{},
		}
		sections[types.CategorySkills] = skills
		result.ChangesMade = append(result.ChangesMade, "Added missing 'Skills' section")
	}

	existing := strings.ToLower(strings.Join(skills.Content, " "))
	var newSkills []string
	for _, kw := range toAdd {
		if !strings.Contains(existing, strings.ToLower(kw)) {
			newSkills = append(newSkills, kw)
		}
	}
	if len(newSkills) == 0 {
		return
	}

	formatted := make([]string, len(newSkills))
	for i, s := range newSkills {
		formatted[i] = formatSkill(s)
	}
	joined := strings.Join(formatted, ", ")
	if len(skills.Content) > 0 {
		last := len(skills.Content) - 1
		skills.Content[last] = strings.TrimRight(skills.Content[last], ", ") + ", " + joined
	} else {
		skills.Content = append(skills.Content, joined)
	}

	result.KeywordsAdded = append(result.KeywordsAdded, newSkills...)
	result.ChangesMade = append(result.ChangesMade,
		fmt.Sprintf("Added %d skills: %s", len(newSkills), strings.Join(firstN(newSkills, 10), ", ")))
}

// updateExperience weaves experience-placed keywords into bullet lines, one
// keyword per bullet.
func updateExperience(sections map[types.Category]*types.Section, match *types.MatchReport, result *types.UpdateResult) {
	var pending []string
	for _, kw := range match.MissingKeywords {
		if match.KeywordPlacement[kw] == types.PlacementExperience {
			pending = append(pending, kw)
		}
	}
	if len(pending) == 0 {
		return
	}

	experience, ok := sections[types.CategoryExperience]
	if !ok || len(experience.Content) == 0 {
		return
	}

	var used []string
	updated := make([]string, 0, len(experience.Content))
	for _, line := range experience.Content {
		updatedLine := line
		if !titleLinePattern.MatchString(line) && len(pending) > 0 {
			for i, kw := range pending {
				if strings.Contains(strings.ToLower(line), strings.ToLower(kw)) {
					continue
				}
				updatedLine = enhanceBullet(line, kw)
				used = append(used, kw)
				pending = append(pending[:i], pending[i+1:]...)
				break
			}
		}
		updated = append(updated, updatedLine)
	}

	experience.Content = updated
	if len(used) > 0 {
		result.KeywordsAdded = append(result.KeywordsAdded, used...)
		result.ChangesMade = append(result.ChangesMade,
			fmt.Sprintf("Enhanced %d experience bullets with keywords: %s",
				len(used), strings.Join(firstN(used, 10), ", ")))
	}
}

// updateSummary appends up to three top missing keywords to the summary as
// a trailing "Skilled in ..." clause.
func updateSummary(sections map[types.Category]*types.Section, match *types.MatchReport, result *types.UpdateResult) {
	if len(match.MissingKeywords) == 0 {
		return
	}
	summary, ok := sections[types.CategorySummary]
	if !ok || len(summary.Content) == 0 {
		return
	}

	summaryText := strings.ToLower(strings.Join(summary.Content, " "))
	var picked []string
	for _, kw := range firstN(match.MissingKeywords, 5) {
		if !strings.Contains(summaryText, strings.ToLower(kw)) {
			picked = append(picked, kw)
		}
		if len(picked) >= 3 {
			break
		}
	}
	if len(picked) == 0 {
		return
	}

	formatted := make([]string, len(picked))
	for i, kw := range picked {
		formatted[i] = formatSkill(kw)
	}
	last := len(summary.Content) - 1
	summary.Content[last] = strings.TrimRight(summary.Content[last], ".") +
		". Skilled in " + strings.Join(formatted, ", ") + "."

	result.KeywordsAdded = append(result.KeywordsAdded, picked...)
	result.ChangesMade = append(result.ChangesMade,
		fmt.Sprintf("Added key terms to summary: %s", strings.Join(picked, ", ")))
}

func enhanceBullet(bullet, keyword string) string {
	return strings.TrimRight(bullet, ".") + ", utilizing " + formatSkill(keyword) + "."
}

// formatSkill capitalizes a keyword for display. Short all-letter terms are
// treated as acronyms; terms with special characters (c++, node.js) are kept
// as-is.
func formatSkill(skill string) string {
	if isAlpha(skill) {
		if len(skill) <= 3 {
			return strings.ToUpper(skill)
		}
		return titleWords(skill)
	}
	return skill
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !('a' <= r && r <= 'z') && !('A' <= r && r <= 'Z') {
			return false
		}
	}
	return true
}

func titleWords(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		fields[i] = strings.ToUpper(f[:1]) + strings.ToLower(f[1:])
	}
	return strings.Join(fields, " ")
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
