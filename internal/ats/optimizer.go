// Package ats scores a parsed resume for applicant-tracking-system
// compliance: section coverage, standard headings, contact details, and
// content quality signals.
package ats

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mkobayashi/resume-matcher/internal/types"
)

// Sections a strong resume should have, and ones worth recommending.
var (
	requiredSections = []types.Category{
		types.CategoryHeader,
		types.CategorySummary,
		types.CategoryExperience,
		types.CategorySkills,
		types.CategoryEducation,
	}
	recommendedSections = []types.Category{
		types.CategoryCertifications,
		types.CategoryProjects,
	}
)

// headingRenames maps ATS-unfriendly heading names to standard ones.
var headingRenames = []struct {
	from, to string
}{
	{"About Me", "Professional Summary"},
	{"Objective", "Professional Summary"},
	{"Career Summary", "Professional Summary"},
	{"Executive Summary", "Professional Summary"},
	{"Profile", "Professional Summary"},
	{"Employment History", "Work Experience"},
	{"Work History", "Work Experience"},
	{"Core Competencies", "Skills"},
	{"Areas of Expertise", "Skills"},
	{"Proficiencies", "Skills"},
	{"Competencies", "Skills"},
	{"Academic Background", "Education"},
	{"Qualifications", "Education"},
}

// actionVerbs are strong bullet openers.
var actionVerbs = map[string]struct{}{}

func init() {
	for _, v := range []string{
		"led", "managed", "developed", "built", "designed", "implemented",
		"created", "improved", "reduced", "increased", "delivered",
		"launched", "optimized", "established", "achieved", "drove",
		"spearheaded", "orchestrated", "streamlined", "mentored",
	} {
		actionVerbs[v] = struct{}{}
	}
}

var (
	phonePattern   = regexp.MustCompile(`\(?\d{3}\)?[\s\-.]?\d{3}[\s\-.]?\d{4}`)
	metricsPattern = regexp.MustCompile(`\d+[%+]?`)
)

// Check runs ATS compliance checks on a parsed resume. The score starts at
// 100 and each finding subtracts from it; the result is clamped to 0-100.
func Check(resume *types.ParsedResume) types.ATSReport {
	report := types.ATSReport{
		Score:              100,
		Issues:             []types.ATSIssue{},
		SectionStatus:      map[string]string{},
		HeadingSuggestions: map[string]string{},
	}
	sections := resume.SectionsByCategory()

	checkRequiredSections(sections, &report)
	checkHeadings(resume, sections, &report)
	checkContactInfo(sections, &report)
	checkExperienceContent(sections, &report)
	checkSkillsContent(sections, &report)
	checkSummaryContent(sections, &report)

	if report.Score < 0 {
		report.Score = 0
	}
	if report.Score > 100 {
		report.Score = 100
	}
	return report
}

func checkRequiredSections(sections map[types.Category]*types.Section, report *types.ATSReport) {
	for _, cat := range requiredSections {
		if _, ok := sections[cat]; ok {
			report.SectionStatus[string(cat)] = "present"
			continue
		}
		report.SectionStatus[string(cat)] = "missing"
		report.Score -= 15
		report.Issues = append(report.Issues, types.ATSIssue{
			Severity:   types.SeverityError,
			Category:   "structure",
			Message:    fmt.Sprintf("Missing required section: %s", cat),
			Suggestion: fmt.Sprintf("Add a '%s' section to your resume.", titleCase(string(cat))),
		})
	}

	for _, cat := range recommendedSections {
		if _, ok := sections[cat]; ok {
			report.SectionStatus[string(cat)] = "present"
			continue
		}
		report.SectionStatus[string(cat)] = "optional-missing"
		report.Issues = append(report.Issues, types.ATSIssue{
			Severity:   types.SeverityInfo,
			Category:   "structure",
			Message:    fmt.Sprintf("Optional section not found: %s", cat),
			Suggestion: fmt.Sprintf("Consider adding a '%s' section.", titleCase(string(cat))),
		})
	}
}

// checkHeadings walks sections in document order so issues and deductions
// come out the same on every run; duplicates collapse to the category-keyed
// view's last-wins entry.
func checkHeadings(resume *types.ParsedResume, sections map[types.Category]*types.Section, report *types.ATSReport) {
	for i := range resume.Sections {
		section := &resume.Sections[i]
		if sections[section.Category] != section {
			continue
		}
		heading := section.Heading
		if heading == "" {
			continue
		}
		for _, rename := range headingRenames {
			if strings.EqualFold(heading, rename.from) {
				report.HeadingSuggestions[heading] = rename.to
				report.Score -= 5
				report.Issues = append(report.Issues, types.ATSIssue{
					Severity:   types.SeverityWarning,
					Category:   "heading",
					Message:    fmt.Sprintf("Non-standard heading: '%s'", heading),
					Suggestion: fmt.Sprintf("Rename to '%s' for better ATS parsing.", rename.to),
				})
				break
			}
		}
	}
}

func checkContactInfo(sections map[types.Category]*types.Section, report *types.ATSReport) {
	var content []string
	if header, ok := sections[types.CategoryHeader]; ok {
		content = header.Content
	}
	fullText := strings.ToLower(strings.Join(content, " "))

	if len(content) == 0 {
		report.Score -= 10
		report.Issues = append(report.Issues, types.ATSIssue{
			Severity:   types.SeverityError,
			Category:   "content",
			Message:    "No contact information found at the top of the resume.",
			Suggestion: "Add your name, email, phone, and location at the top.",
		})
		return
	}

	if !strings.Contains(fullText, "@") {
		report.Score -= 5
		report.Issues = append(report.Issues, types.ATSIssue{
			Severity:   types.SeverityWarning,
			Category:   "content",
			Message:    "No email address detected in contact section.",
			Suggestion: "Add a professional email address.",
		})
	}

	if !phonePattern.MatchString(fullText) {
		report.Score -= 3
		report.Issues = append(report.Issues, types.ATSIssue{
			Severity:   types.SeverityWarning,
			Category:   "content",
			Message:    "No phone number detected in contact section.",
			Suggestion: "Add a phone number.",
		})
	}
}

func checkExperienceContent(sections map[types.Category]*types.Section, report *types.ATSReport) {
	experience, ok := sections[types.CategoryExperience]
	if !ok || len(experience.Content) == 0 {
		return
	}

	hasMetrics := false
	for _, line := range experience.Content {
		if metricsPattern.MatchString(line) {
			hasMetrics = true
			break
		}
	}
	if !hasMetrics {
		report.Score -= 5
		report.Issues = append(report.Issues, types.ATSIssue{
			Severity:   types.SeverityWarning,
			Category:   "content",
			Message:    "No quantifiable achievements found in experience.",
			Suggestion: "Add metrics (e.g., 'Increased sales by 25%', 'Managed team of 10').",
		})
	}

	hasActionVerbs := false
	for _, line := range experience.Content {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if _, ok := actionVerbs[strings.ToLower(fields[0])]; ok {
			hasActionVerbs = true
			break
		}
	}
	if !hasActionVerbs {
		report.Score -= 3
		report.Issues = append(report.Issues, types.ATSIssue{
			Severity:   types.SeverityInfo,
			Category:   "content",
			Message:    "Bullet points may not start with strong action verbs.",
			Suggestion: "Start bullet points with action verbs like 'Led', 'Developed', 'Implemented'.",
		})
	}
}

func checkSkillsContent(sections map[types.Category]*types.Section, report *types.ATSReport) {
	skills, ok := sections[types.CategorySkills]
	if !ok || len(skills.Content) == 0 {
		return
	}

	fullText := strings.ReplaceAll(strings.Join(skills.Content, " "), ";", ",")
	count := 0
	for _, s := range strings.Split(fullText, ",") {
		if strings.TrimSpace(s) != "" {
			count++
		}
	}

	if count < 5 {
		report.Score -= 5
		report.Issues = append(report.Issues, types.ATSIssue{
			Severity:   types.SeverityWarning,
			Category:   "content",
			Message:    fmt.Sprintf("Only %d skills listed. Most competitive resumes have 8-15.", count),
			Suggestion: "Add more relevant technical and soft skills.",
		})
	}
}

func checkSummaryContent(sections map[types.Category]*types.Section, report *types.ATSReport) {
	summary, ok := sections[types.CategorySummary]
	if !ok || len(summary.Content) == 0 {
		return
	}

	wordCount := len(strings.Fields(strings.Join(summary.Content, " ")))
	switch {
	case wordCount < 15:
		report.Score -= 3
		report.Issues = append(report.Issues, types.ATSIssue{
			Severity:   types.SeverityInfo,
			Category:   "content",
			Message:    fmt.Sprintf("Summary is very short (%d words).", wordCount),
			Suggestion: "Aim for 30-60 words with key skills and experience highlights.",
		})
	case wordCount > 80:
		report.Score -= 3
		report.Issues = append(report.Issues, types.ATSIssue{
			Severity:   types.SeverityInfo,
			Category:   "content",
			Message:    fmt.Sprintf("Summary is quite long (%d words).", wordCount),
			Suggestion: "Keep summary concise, ideally 30-60 words.",
		})
	}
}

// titleCase uppercases the first letter of each word; used only for
// suggestion text.
func titleCase(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		fields[i] = strings.ToUpper(f[:1]) + f[1:]
	}
	return strings.Join(fields, " ")
}
