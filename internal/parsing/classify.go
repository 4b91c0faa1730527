package parsing

import (
	"strings"

	"github.com/mkobayashi/resume-matcher/internal/types"
)

// ClassifyHeading maps heading text to a canonical section category.
// Patterns are tested in fixed table order and the first match wins.
// Text that matches no pattern returns ok=false and is treated as ordinary
// content by the assembler even when heading-flagged.
func ClassifyHeading(text string) (types.Category, bool) {
	stripped := strings.TrimSpace(text)
	if stripped == "" {
		return "", false
	}
	for _, cp := range sectionPatterns {
		if cp.pattern.MatchString(stripped) {
			return cp.category, true
		}
	}
	return "", false
}
