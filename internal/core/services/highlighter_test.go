package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartlens-labs/chartlens-cli/internal/core/domain"
)

func TestHighlighter_Render_NoActiveCodes(t *testing.T) {
	h := NewHighlighter()
	text := "The patient has diabetes."
	anns := []domain.Annotation{{Code: "E11.9", Begin: 16, End: 24}}

	for _, active := range []map[string]bool{nil, {}} {
		segments := h.Render(text, anns, active)
		require.Len(t, segments, 1)
		assert.Equal(t, text, segments[0].Content)
		assert.False(t, segments[0].Highlighted)
	}
}

func TestHighlighter_Render_SingleSpan(t *testing.T) {
	h := NewHighlighter()
	text := "The patient has diabetes."
	anns := []domain.Annotation{
		{Code: "E11.9", CodeSystem: domain.CodeSystemDiagnosis, Begin: 16, End: 24, CoveredText: "diabetes"},
	}

	segments := h.Render(text, anns, map[string]bool{"E11.9": true})
	require.Len(t, segments, 3)

	assert.Equal(t, domain.Segment{Content: "The patient has "}, segments[0])
	assert.Equal(t, "diabetes", segments[1].Content)
	assert.True(t, segments[1].Highlighted)
	assert.Equal(t, "E11.9", segments[1].Code)
	assert.Equal(t, domain.CodeSystemDiagnosis, segments[1].CodeSystem)
	assert.Equal(t, domain.Segment{Content: "."}, segments[2])
}

func TestHighlighter_Render_FiltersInactiveCodes(t *testing.T) {
	h := NewHighlighter()
	text := "fever and chills"
	anns := []domain.Annotation{
		{Code: "R50.9", Begin: 0, End: 5},
		{Code: "R68.83", Begin: 10, End: 16},
	}

	segments := h.Render(text, anns, map[string]bool{"R68.83": true})
	require.Len(t, segments, 2)
	assert.Equal(t, "fever and ", segments[0].Content)
	assert.False(t, segments[0].Highlighted)
	assert.Equal(t, "chills", segments[1].Content)
	assert.True(t, segments[1].Highlighted)
}

func TestHighlighter_Render_RoundTrip(t *testing.T) {
	h := NewHighlighter()
	text := "Patient admitted with acute appendicitis, appendectomy performed without complication."
	anns := []domain.Annotation{
		{Code: "K35.80", Begin: 22, End: 41},
		{Code: "0DTJ0ZZ", Begin: 43, End: 55},
	}

	segments := h.Render(text, anns, map[string]bool{"K35.80": true, "0DTJ0ZZ": true})
	assert.Equal(t, text, domain.JoinSegments(segments))
	// At most 2*spans+1 segments.
	assert.LessOrEqual(t, len(segments), 5)
}

func TestHighlighter_Render_BoundarySpans(t *testing.T) {
	h := NewHighlighter()
	text := "sepsis then recovery"
	anns := []domain.Annotation{
		{Code: "A41.9", Begin: 0, End: 6},
		{Code: "Z54.0", Begin: 12, End: 20},
	}

	segments := h.Render(text, anns, map[string]bool{"A41.9": true, "Z54.0": true})
	require.Len(t, segments, 3)

	// No leading empty segment before a span at offset 0, and no trailing
	// empty segment after a span ending at len(text).
	assert.True(t, segments[0].Highlighted)
	assert.Equal(t, "sepsis", segments[0].Content)
	assert.Equal(t, " then ", segments[1].Content)
	assert.True(t, segments[2].Highlighted)
	assert.Equal(t, "recovery", segments[2].Content)
}

func TestHighlighter_Render_AdjacentSpans(t *testing.T) {
	h := NewHighlighter()
	text := "abcdef"
	anns := []domain.Annotation{
		{Code: "X", Begin: 0, End: 3},
		{Code: "Y", Begin: 3, End: 6},
	}

	segments := h.Render(text, anns, map[string]bool{"X": true, "Y": true})
	require.Len(t, segments, 2)
	assert.Equal(t, "abc", segments[0].Content)
	assert.Equal(t, "def", segments[1].Content)
	assert.Equal(t, text, domain.JoinSegments(segments))
}

func TestHighlighter_Render_DropsInvalidSpans(t *testing.T) {
	h := NewHighlighter()
	text := "0123456789"
	active := map[string]bool{"A": true}

	tests := []struct {
		name string
		ann  domain.Annotation
	}{
		{"end before begin", domain.Annotation{Code: "A", Begin: 5, End: 3}},
		{"zero length", domain.Annotation{Code: "A", Begin: 4, End: 4}},
		{"negative begin", domain.Annotation{Code: "A", Begin: -2, End: 3}},
		{"end past text", domain.Annotation{Code: "A", Begin: 2, End: 11}},
		{"begin at length", domain.Annotation{Code: "A", Begin: 10, End: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := h.Render(text, []domain.Annotation{tt.ann}, active)
			require.Len(t, segments, 1)
			assert.Equal(t, text, segments[0].Content)
			assert.False(t, segments[0].Highlighted)
		})
	}
}

func TestHighlighter_Render_StableSortOnEqualBegin(t *testing.T) {
	h := NewHighlighter()
	text := "headache"
	anns := []domain.Annotation{
		{Code: "R51", Begin: 0, End: 4},
		{Code: "G44.1", Begin: 0, End: 8},
	}

	segments := h.Render(text, anns, map[string]bool{"R51": true, "G44.1": true})
	require.Len(t, segments, 2)

	// Equal begins keep encounter order; the second span overlaps the
	// first and is passed through, duplicating covered characters.
	assert.Equal(t, "head", segments[0].Content)
	assert.Equal(t, "R51", segments[0].Code)
	assert.Equal(t, "headache", segments[1].Content)
	assert.Equal(t, "G44.1", segments[1].Code)
}

func TestHighlighter_Render_OverlapPassThrough(t *testing.T) {
	h := NewHighlighter()
	text := "chronic kidney disease"
	anns := []domain.Annotation{
		{Code: "N18.9", Begin: 0, End: 14},
		{Code: "N28.9", Begin: 8, End: 22},
	}

	segments := h.Render(text, anns, map[string]bool{"N18.9": true, "N28.9": true})
	require.Len(t, segments, 2)
	assert.Equal(t, "chronic kidney", segments[0].Content)
	assert.Equal(t, "kidney disease", segments[1].Content)
	// Overlap duplicates characters; the round-trip law does not hold here.
	assert.NotEqual(t, text, domain.JoinSegments(segments))
}

func TestHighlighter_Render_Idempotent(t *testing.T) {
	h := NewHighlighter()
	text := "stable angina at rest"
	anns := []domain.Annotation{
		{Code: "I20.9", Begin: 7, End: 13},
	}
	active := map[string]bool{"I20.9": true}

	first := h.Render(text, anns, active)
	second := h.Render(text, anns, active)
	assert.Equal(t, first, second)
}

func TestHighlighter_Render_DiabetesExample(t *testing.T) {
	h := NewHighlighter()
	text := " The patient has diabetes."
	anns := []domain.Annotation{{Code: "E11.9", Begin: 17, End: 25}}

	segments := h.Render(text, anns, map[string]bool{"E11.9": true})
	require.Len(t, segments, 3)
	assert.Equal(t, "diabetes", segments[1].Content)
	assert.True(t, segments[1].Highlighted)
	assert.Equal(t, text, domain.JoinSegments(segments))
}

func TestHighlighter_Render_UnicodeOffsets(t *testing.T) {
	h := NewHighlighter()
	// The two-byte é must not shift the span: offsets count code
	// points, not bytes.
	text := "café has pain"
	anns := []domain.Annotation{{Code: "R52", Begin: 9, End: 13}}

	segments := h.Render(text, anns, map[string]bool{"R52": true})
	require.Len(t, segments, 2)
	assert.Equal(t, "café has ", segments[0].Content)
	assert.Equal(t, "pain", segments[1].Content)
	assert.True(t, segments[1].Highlighted)
	assert.Equal(t, text, domain.JoinSegments(segments))
}

func TestHighlighter_Render_MultiByteInsideSpan(t *testing.T) {
	h := NewHighlighter()
	text := "naïve élan"
	anns := []domain.Annotation{{Code: "X", Begin: 6, End: 10}}

	segments := h.Render(text, anns, map[string]bool{"X": true})
	require.Len(t, segments, 2)
	assert.Equal(t, "élan", segments[1].Content)
	assert.Equal(t, text, domain.JoinSegments(segments))
}

func TestHighlighter_Render_ValidatesAgainstRuneLength(t *testing.T) {
	h := NewHighlighter()
	// 4 code points, 5 bytes. A span ending at code point 4 is valid
	// even though byte offset 4 falls short of the byte length.
	text := "café"
	anns := []domain.Annotation{{Code: "X", Begin: 0, End: 4}}

	segments := h.Render(text, anns, map[string]bool{"X": true})
	require.Len(t, segments, 1)
	assert.Equal(t, "café", segments[0].Content)
	assert.True(t, segments[0].Highlighted)
}

func TestHighlighter_Render_EmptyText(t *testing.T) {
	h := NewHighlighter()

	segments := h.Render("", []domain.Annotation{{Code: "A", Begin: 0, End: 1}}, map[string]bool{"A": true})
	// The span is invalid against empty text; the walk emits nothing and
	// the trailing remainder is empty too.
	assert.Empty(t, segments)

	plain := h.Render("", nil, nil)
	require.Len(t, plain, 1)
	assert.Equal(t, "", plain[0].Content)
}
