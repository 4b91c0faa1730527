package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkobayashi/resume-matcher/internal/types"
)

func TestIsFlowHeading_StyleName(t *testing.T) {
	p := types.Paragraph{Text: "Anything at all", Style: "Heading 1"}
	assert.True(t, IsFlowHeading(p))

	p = types.Paragraph{Text: "Anything at all", Style: "Normal"}
	assert.False(t, IsFlowHeading(p))
}

func TestIsFlowHeading_AllBoldRuns(t *testing.T) {
	bold := types.Paragraph{
		Text: "Core Strengths",
		Runs: []types.Run{{Text: "Core ", Bold: true}, {Text: "Strengths", Bold: true}},
	}
	assert.True(t, IsFlowHeading(bold))

	mixed := types.Paragraph{
		Text: "Core Strengths",
		Runs: []types.Run{{Text: "Core ", Bold: true}, {Text: "Strengths", Bold: false}},
	}
	assert.False(t, IsFlowHeading(mixed))

	// Whitespace-only runs don't break the all-bold signal.
	withSpace := types.Paragraph{
		Text: "Core Strengths",
		Runs: []types.Run{{Text: "Core", Bold: true}, {Text: "  ", Bold: false}, {Text: "Strengths", Bold: true}},
	}
	assert.True(t, IsFlowHeading(withSpace))
}

func TestIsFlowHeading_BoldButTooLong(t *testing.T) {
	long := "This bold line is far too long to plausibly be a section heading text"
	p := types.Paragraph{
		Text: long,
		Runs: []types.Run{{Text: long, Bold: true}},
	}
	assert.False(t, IsFlowHeading(p))
}

func TestIsFlowHeading_PatternFallback(t *testing.T) {
	// No style, no runs, but the literal text is a known heading.
	p := types.Paragraph{Text: "Work Experience"}
	assert.True(t, IsFlowHeading(p))
}

func TestIsFixedHeading_FontSize(t *testing.T) {
	chars := []types.Char{
		{Text: "S", Size: 14, FontName: "Calibri"},
		{Text: "k", Size: 14, FontName: "Calibri"},
		{Text: "i", Size: 14, FontName: "Calibri"},
	}
	assert.True(t, IsFixedHeading("Ski", chars, 11.0))
	assert.False(t, IsFixedHeading("Ski", chars, 13.0))
}

func TestIsFixedHeading_BoldFontNames(t *testing.T) {
	tests := []struct {
		fontname string
		want     bool
	}{
		{"Calibri-Bold", true},
		{"ARIALBD", false}, // "-bd" requires the dash
		{"Helvetica-Bd", true},
		{"Roboto Black", true},
		{"NotoSans-Heavy", true},
		{"Calibri", false},
	}
	for _, tt := range tests {
		chars := []types.Char{{Text: "X", Size: 11, FontName: tt.fontname}}
		assert.Equal(t, tt.want, IsFixedHeading("X", chars, 11.0), tt.fontname)
	}
}

func TestIsFixedHeading_PatternFallback(t *testing.T) {
	chars := []types.Char{{Text: "E", Size: 11, FontName: "Calibri"}}
	assert.True(t, IsFixedHeading("Education", chars, 11.0))
	assert.False(t, IsFixedHeading("Managed a team of eleven", chars, 11.0))
}

func TestBodyFontSize_ModeNotMean(t *testing.T) {
	// One oversized title character must not distort the baseline: 200
	// body characters at 11pt against a single 40pt character.
	var chars []types.Char
	chars = append(chars, types.Char{Text: "T", Size: 40, FontName: "Calibri"})
	for i := 0; i < 200; i++ {
		chars = append(chars, types.Char{Text: "a", Size: 11, FontName: "Calibri"})
	}
	got := BodyFontSize([]types.Page{{Chars: chars}})
	assert.Equal(t, 11.0, got)
}

func TestBodyFontSize_RoundsToOneDecimal(t *testing.T) {
	pages := []types.Page{{Chars: []types.Char{
		{Text: "a", Size: 10.96},
		{Text: "b", Size: 11.04},
		{Text: "c", Size: 11.02},
	}}}
	assert.Equal(t, 11.0, BodyFontSize(pages))
}

func TestBodyFontSize_EmptyDefaults(t *testing.T) {
	assert.Equal(t, 12.0, BodyFontSize(nil))
	assert.Equal(t, 12.0, BodyFontSize([]types.Page{{Chars: []types.Char{{Text: " ", Size: 9}}}}))
}
