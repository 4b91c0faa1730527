package parsing

import (
	"strings"

	"github.com/mkobayashi/resume-matcher/internal/types"
)

// sectionBuilder accumulates sections in document order. The synthetic
// header section, when needed, is created exactly once and always sits at
// the front of the list; tracking it with a flag avoids shifting a growing
// slice around.
type sectionBuilder struct {
	sections  []types.Section
	rawLines  []string
	current   int // index of the open section, -1 if none
	hasHeader bool
}

func newSectionBuilder() *sectionBuilder {
	return &sectionBuilder{current: -1}
}

func (b *sectionBuilder) addRawLine(text string) {
	b.rawLines = append(b.rawLines, text)
}

func (b *sectionBuilder) openSection(heading string, category types.Category) {
	b.sections = append(b.sections, types.Section{
		Heading:  heading,
		Category: category,
		Content:  []string{},
	})
	b.current = len(b.sections) - 1
}

func (b *sectionBuilder) appendContent(line string) {
	if b.current >= 0 {
		b.sections[b.current].Content = append(b.sections[b.current].Content, line)
		return
	}
	// Content before any recognized heading lands in a synthetic header
	// section at the front (name and contact lines).
	if !b.hasHeader {
		b.sections = append([]types.Section{{Category: types.CategoryHeader, Content: []string{}}}, b.sections...)
		b.hasHeader = true
	}
	b.sections[0].Content = append(b.sections[0].Content, line)
}

func (b *sectionBuilder) build() types.ParsedResume {
	for i := range b.sections {
		s := &b.sections[i]
		if s.Category == types.CategoryExperience && len(s.Content) > 0 {
			s.Entries = ParseExperienceEntries(s.Content)
		}
	}
	return types.ParsedResume{
		Sections: b.sections,
		RawText:  strings.Join(b.rawLines, "\n"),
	}
}

// GroupIntoSections walks lines with pre-computed heading flags and groups
// them into an ordered section list. This is the format-agnostic core shared
// by the flow and fixed-layout parsers.
//
// Blank lines are preserved in the raw text but contribute no content. A
// line opens a new section only when it is both heading-flagged and
// classifiable; flagged lines that match no known category stay ordinary
// content.
func GroupIntoSections(lines []string, headingFlags []bool) types.ParsedResume {
	b := newSectionBuilder()

	for i, text := range lines {
		b.addRawLine(text)

		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}

		if headingFlags[i] {
			if category, ok := ClassifyHeading(text); ok {
				b.openSection(trimmed, category)
				continue
			}
		}
		b.appendContent(trimmed)
	}

	return b.build()
}
