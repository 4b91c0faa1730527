// Package jobextract structures raw job posting text into categorized
// sections and qualification lists. It never fails on text input: when no
// section heading is recognized the whole posting degrades to a single
// general category.
package jobextract

import (
	"regexp"
	"strings"

	"github.com/mkobayashi/resume-matcher/internal/types"
)

// bulletPrefix strips leading bullet glyphs from content lines.
var bulletPrefix = regexp.MustCompile(`^[\x{2022}\x{2023}\x{25E6}\x{2043}\x{2219}•\-\*]\s*`)

// maxTitleLength caps first-line title inference; anything longer is
// assumed to be body text.
const maxTitleLength = 100

// FromText parses a job posting from raw text.
func FromText(text string) types.ParsedJob {
	raw := strings.TrimSpace(text)
	lines := strings.Split(raw, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return parseLines(lines, text)
}

// parseLines walks posting lines, opening a category on each recognized
// heading and collecting cleaned content beneath it.
func parseLines(lines []string, rawText string) types.ParsedJob {
	job := types.ParsedJob{
		RawText:         rawText,
		Sections:        map[string][]string{},
		AllRequirements: []string{},
	}

	current := ""
	for _, line := range lines {
		if line == "" {
			continue
		}

		if section, ok := matchSection(line); ok {
			current = section
			if _, exists := job.Sections[current]; !exists {
				job.Sections[current] = []string{}
			}
			continue
		}

		if current != "" {
			cleaned := bulletPrefix.ReplaceAllString(line, "")
			if cleaned != "" {
				job.Sections[current] = append(job.Sections[current], cleaned)
			}
		}
	}

	for _, key := range []string{SectionRequirements, SectionPreferred} {
		job.AllRequirements = append(job.AllRequirements, job.Sections[key]...)
	}

	// Nothing classified: fall back to a single general section so the
	// matcher still has something to work with.
	if len(job.Sections) == 0 {
		all := []string{}
		for _, line := range lines {
			if line != "" {
				all = append(all, line)
			}
		}
		job.Sections[SectionGeneral] = all
		job.AllRequirements = all
	}

	if job.Title == "" {
		job.Title = inferTitle(lines)
	}

	return job
}

// inferTitle guesses the posting title from the first non-blank line, as
// long as it is short and not itself a section heading.
func inferTitle(lines []string) string {
	for _, line := range lines {
		if line == "" {
			continue
		}
		if len(line) < maxTitleLength {
			if _, isHeading := matchSection(line); !isHeading {
				return line
			}
		}
		return ""
	}
	return ""
}
