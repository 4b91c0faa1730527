package parsing

import (
	"regexp"
	"sort"
	"strings"

	"github.com/mkobayashi/resume-matcher/internal/types"
)

// lineTolerance is the vertical distance (in layout units) within which
// characters are considered part of the same text line.
const lineTolerance = 3.0

// columnGap collapses runs of three or more spaces, which mark columnar
// text (e.g. a company name with a right-aligned location).
var columnGap = regexp.MustCompile(` {3,}`)

// Line is a reconstructed fixed-layout text line: its text in reading order
// plus the characters that produced it.
type Line struct {
	Text  string
	Chars []types.Char
}

// GroupChars reconstructs reading-order lines from a page's unordered
// characters. Characters within lineTolerance of an existing line key join
// that line; otherwise a new line is started. Keys are kept in a sorted
// slice and located by binary search, so grouping is near linear in
// characters and logarithmic in lines. Characters are pre-sorted by
// (top, x0), which makes the result independent of input order.
func GroupChars(chars []types.Char) []Line {
	if len(chars) == 0 {
		return nil
	}

	ordered := make([]types.Char, len(chars))
	copy(ordered, chars)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Top != ordered[j].Top {
			return ordered[i].Top < ordered[j].Top
		}
		return ordered[i].X0 < ordered[j].X0
	})

	var keys []float64
	byKey := make(map[float64][]types.Char)

	for _, c := range ordered {
		idx := sort.SearchFloat64s(keys, c.Top-lineTolerance)
		matched := false
		var key float64
		if idx < len(keys) && abs(keys[idx]-c.Top) <= lineTolerance {
			key = keys[idx]
			matched = true
		} else if idx > 0 && abs(keys[idx-1]-c.Top) <= lineTolerance {
			key = keys[idx-1]
			matched = true
		}

		if matched {
			byKey[key] = append(byKey[key], c)
			continue
		}
		keys = append(keys, 0)
		copy(keys[idx+1:], keys[idx:])
		keys[idx] = c.Top
		byKey[c.Top] = []types.Char{c}
	}

	lines := make([]Line, 0, len(keys))
	for _, key := range keys {
		lineChars := byKey[key]
		// Sort by x-position for correct reading order. Matters for
		// small-caps headings where the first letter of each word sits at
		// a slightly different offset but lands in the same line bucket.
		sort.SliceStable(lineChars, func(i, j int) bool {
			return lineChars[i].X0 < lineChars[j].X0
		})
		var b strings.Builder
		for _, c := range lineChars {
			b.WriteString(c.Text)
		}
		text := columnGap.ReplaceAllString(b.String(), " | ")
		lines = append(lines, Line{Text: text, Chars: lineChars})
	}
	return lines
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
