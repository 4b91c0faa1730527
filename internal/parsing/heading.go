package parsing

import (
	"math"
	"sort"
	"strings"

	"github.com/mkobayashi/resume-matcher/internal/types"
)

// Heading detection is modeled as ordered lists of independent boolean
// signals, one list per input layout. A line is a heading if any signal
// fires. Each signal is testable on its own and new signals (underline,
// small caps) can be added without touching the others.

// flowSignal inspects a flow-layout paragraph.
type flowSignal func(p types.Paragraph) bool

// fixedSignal inspects a reconstructed fixed-layout line and its characters,
// relative to the document-wide body font size.
type fixedSignal func(line string, chars []types.Char, bodySize float64) bool

var flowSignals = []flowSignal{
	flowStyleName,
	flowBoldRuns,
	flowPatternMatch,
}

var fixedSignals = []fixedSignal{
	fixedFontSize,
	fixedBoldFont,
	fixedPatternMatch,
}

// IsFlowHeading reports whether a flow-layout paragraph is a section heading.
func IsFlowHeading(p types.Paragraph) bool {
	for _, signal := range flowSignals {
		if signal(p) {
			return true
		}
	}
	return false
}

// IsFixedHeading reports whether a reconstructed fixed-layout line is a
// section heading, given the document body font size.
func IsFixedHeading(line string, chars []types.Char, bodySize float64) bool {
	for _, signal := range fixedSignals {
		if signal(line, chars, bodySize) {
			return true
		}
	}
	return false
}

// flowStyleName fires when the declared paragraph style is a Word heading
// style ("Heading 1", "heading2", ...).
func flowStyleName(p types.Paragraph) bool {
	return strings.Contains(strings.ToLower(p.Style), "heading")
}

// flowBoldRuns fires for short paragraphs whose every non-whitespace run
// is bold.
func flowBoldRuns(p types.Paragraph) bool {
	text := strings.TrimSpace(p.Text)
	if text == "" || len(text) > 80 {
		return false
	}
	if len(p.Runs) == 0 || len(text) >= 50 {
		return false
	}
	for _, run := range p.Runs {
		if strings.TrimSpace(run.Text) == "" {
			continue
		}
		if !run.Bold {
			return false
		}
	}
	return true
}

// flowPatternMatch fires when the literal text matches the canonical
// heading table.
func flowPatternMatch(p types.Paragraph) bool {
	text := strings.TrimSpace(p.Text)
	if text == "" || len(text) > 80 {
		return false
	}
	_, ok := ClassifyHeading(text)
	return ok
}

// fixedFontSize fires when the line's median character size is well above
// the body size.
func fixedFontSize(line string, chars []types.Char, bodySize float64) bool {
	stripped := strings.TrimSpace(line)
	if stripped == "" || len(stripped) > 80 {
		return false
	}
	sizes := nonSpaceSizes(chars)
	if len(sizes) == 0 {
		return false
	}
	sort.Float64s(sizes)
	median := sizes[len(sizes)/2]
	return median >= bodySize+1.5
}

// fixedBoldFont fires for short lines where every non-whitespace character
// carries a bold-weight font name.
func fixedBoldFont(line string, chars []types.Char, _ float64) bool {
	stripped := strings.TrimSpace(line)
	if stripped == "" || len(stripped) >= 50 {
		return false
	}
	seen := false
	for _, c := range chars {
		if strings.TrimSpace(c.Text) == "" {
			continue
		}
		seen = true
		if !isBoldFont(c.FontName) {
			return false
		}
	}
	return seen
}

// fixedPatternMatch is the font-free fallback: the literal line text matches
// the canonical heading table.
func fixedPatternMatch(line string, _ []types.Char, _ float64) bool {
	stripped := strings.TrimSpace(line)
	if stripped == "" || len(stripped) > 80 {
		return false
	}
	_, ok := ClassifyHeading(stripped)
	return ok
}

// isBoldFont reports whether a font name indicates bold weight.
func isBoldFont(fontname string) bool {
	name := strings.ToLower(fontname)
	for _, kw := range []string{"bold", "-bd", "heavy", "black"} {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// defaultBodySize is used when a document carries no sized characters.
const defaultBodySize = 12.0

// BodyFontSize computes the document-wide body font size: the mode of all
// non-whitespace character sizes, rounded to one decimal place. The mode is
// used rather than the mean so a single oversized title line does not
// distort the baseline.
func BodyFontSize(pages []types.Page) float64 {
	counts := make(map[float64]int)
	var order []float64
	for _, page := range pages {
		for _, c := range page.Chars {
			if strings.TrimSpace(c.Text) == "" {
				continue
			}
			size := math.Round(c.Size*10) / 10
			if counts[size] == 0 {
				order = append(order, size)
			}
			counts[size]++
		}
	}
	if len(order) == 0 {
		return defaultBodySize
	}
	best := order[0]
	for _, size := range order[1:] {
		if counts[size] > counts[best] {
			best = size
		}
	}
	return best
}

func nonSpaceSizes(chars []types.Char) []float64 {
	sizes := make([]float64, 0, len(chars))
	for _, c := range chars {
		if strings.TrimSpace(c.Text) == "" {
			continue
		}
		sizes = append(sizes, c.Size)
	}
	return sizes
}
