// Package parsing turns raw resume documents into structured, categorized
// sections. Two input layouts are supported: flow (paragraphs with style
// metadata, as in .docx) and fixed (positioned characters with font
// metadata, as in .pdf). Both reduce to ordered lines plus per-line heading
// flags, which a shared assembler groups into sections.
package parsing

import (
	"path/filepath"
	"strings"

	"github.com/mkobayashi/resume-matcher/internal/types"
)

// maxPages caps fixed-layout parsing; resumes are typically 1-4 pages.
const maxPages = 20

// ParseFile routes raw document bytes to the right parser based on the
// file extension.
func ParseFile(data []byte, filename string) (types.ParsedResume, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".docx":
		return ParseDOCX(data)
	case ".pdf":
		return ParsePDF(data)
	default:
		return types.ParsedResume{}, &UnsupportedFormatError{Extension: ext}
	}
}

// ParseFlow parses a flow-layout document: an ordered paragraph sequence
// carrying text, style names, and per-run bold flags.
func ParseFlow(paragraphs []types.Paragraph) types.ParsedResume {
	lines := make([]string, len(paragraphs))
	flags := make([]bool, len(paragraphs))
	for i, p := range paragraphs {
		lines[i] = strings.TrimSpace(p.Text)
		flags[i] = IsFlowHeading(p)
	}
	return GroupIntoSections(lines, flags)
}

// ParseFixed parses a fixed-layout document: per-page unordered positioned
// characters. Lines are reconstructed by vertical grouping, then flagged
// using font-size, bold-font, and pattern signals against the document
// body font size.
func ParseFixed(pages []types.Page) (types.ParsedResume, error) {
	if len(pages) > maxPages {
		pages = pages[:maxPages]
	}
	if len(pages) == 0 {
		return types.ParsedResume{}, &EmptyDocumentError{Message: "document has no pages"}
	}

	if !hasTextChars(pages) {
		return types.ParsedResume{}, &ScannedDocumentError{}
	}

	bodySize := BodyFontSize(pages)

	var lines []string
	var flags []bool
	for _, page := range pages {
		for _, line := range GroupChars(page.Chars) {
			lines = append(lines, line.Text)
			flags = append(flags, IsFixedHeading(line.Text, line.Chars, bodySize))
		}
	}

	return GroupIntoSections(lines, flags), nil
}

// hasTextChars reports whether any page carries a non-whitespace character.
// A document without any signals scanned images and must be rejected rather
// than silently parsed as empty.
func hasTextChars(pages []types.Page) bool {
	for _, page := range pages {
		for _, c := range page.Chars {
			if strings.TrimSpace(c.Text) != "" {
				return true
			}
		}
	}
	return false
}
