package parsing

import (
	"regexp"
	"strings"

	"github.com/mkobayashi/resume-matcher/internal/types"
)

// Date forms: "Jan 2020 - Present", "2019 – 2023", "Mar 2018 - Dec 2020".
var datePattern = regexp.MustCompile(
	`(?i)(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}` +
		`|(?:19|20)\d{2}` +
		`|Present|Current`)

// Location forms: "City, ST" (two-letter state) or "Remote".
var locationPattern = regexp.MustCompile(
	`(?i)[A-Z][a-z]+(?:\s[A-Z][a-z]+)*,\s*[A-Z]{2}\b` +
		`|Remote`)

// isEntryHeader reports whether an experience line describes a company or a
// title rather than a bullet: it must contain the columnar pipe separator
// and carry a date or location. A date with no pipe stays a bullet.
func isEntryHeader(line string) bool {
	if !strings.Contains(line, " | ") {
		return false
	}
	return datePattern.MatchString(line) || locationPattern.MatchString(line)
}

// ParseExperienceEntries decomposes a section's flat content lines into
// structured per-role entries. Header lines are split on the pipe separator
// and their parts classified as date, location, or name; everything else is
// a bullet belonging to the current entry.
func ParseExperienceEntries(content []string) []types.WorkEntry {
	var entries []types.WorkEntry
	current := -1

	for _, line := range content {
		if !isEntryHeader(line) {
			if current >= 0 {
				entries[current].Bullets = append(entries[current].Bullets, line)
				continue
			}
			// Leading bullets before any header get a placeholder entry.
			entries = append(entries, types.WorkEntry{Bullets: []string{line}})
			current = len(entries) - 1
			continue
		}

		name, dates, location := splitEntryHeader(line)

		if current < 0 || entries[current].Title != "" {
			// A fresh entry: this line names the company.
			entries = append(entries, types.WorkEntry{
				Company:  name,
				Location: location,
				Dates:    dates,
			})
			current = len(entries) - 1
			continue
		}

		// Title line for the current company; dates win over an earlier
		// company-line value, location only backfills.
		entries[current].Title = name
		if dates != "" {
			entries[current].Dates = dates
		}
		if location != "" && entries[current].Location == "" {
			entries[current].Location = location
		}
	}

	return entries
}

// splitEntryHeader splits a header line on the pipe separator and classifies
// each part: the first date-matching part is the dates, the first
// location-matching part is the location, and the rest rejoin as the name.
func splitEntryHeader(line string) (name, dates, location string) {
	var parts []string
	for _, raw := range strings.Split(line, " | ") {
		p := strings.TrimSpace(strings.Trim(strings.TrimSpace(raw), "|"))
		if p != "" {
			parts = append(parts, p)
		}
	}

	var nameParts []string
	for _, part := range parts {
		switch {
		case dates == "" && datePattern.MatchString(part):
			dates = part
		case location == "" && locationPattern.MatchString(part):
			location = part
		default:
			nameParts = append(nameParts, part)
		}
	}

	if len(nameParts) > 0 {
		name = strings.Join(nameParts, " | ")
	} else if len(parts) > 0 {
		name = parts[0]
	}
	return name, dates, location
}
