package services

import (
	"sort"

	"github.com/chartlens-labs/chartlens-cli/internal/core/domain"
	"github.com/chartlens-labs/chartlens-cli/internal/core/ports/driving"
)

// Ensure Highlighter implements the interface.
var _ driving.SpanHighlighter = (*Highlighter)(nil)

// Highlighter renders note text as an ordered sequence of plain and
// highlighted segments. It is stateless; a single instance is safe for
// concurrent use.
type Highlighter struct{}

// NewHighlighter creates a new span highlighter.
func NewHighlighter() *Highlighter {
	return &Highlighter{}
}

// Render derives the segmentation of text for the active codes.
//
// With no active codes the whole text is returned as one plain segment
// without touching the span logic. Otherwise annotations are filtered
// to active codes, spans with invalid offsets are dropped (never
// clamped), survivors are stably sorted by Begin, and segments are
// emitted left to right with plain gaps in between.
//
// Offsets count Unicode code points, not bytes, so the text is decoded
// once and sliced by rune position. Multi-byte characters before a
// span never shift it.
//
// A span that starts before the previous one ended is NOT merged or
// truncated: it emits its full covered text, duplicating characters in
// the output. Callers needing strict non-overlap must pre-merge spans.
//
// Render never fails; invalid input only degrades to more plain output.
func (h *Highlighter) Render(text string, annotations []domain.Annotation, activeCodes map[string]bool) []domain.Segment {
	if len(activeCodes) == 0 {
		return []domain.Segment{{Content: text}}
	}

	runes := []rune(text)

	spans := make([]domain.Annotation, 0, len(annotations))
	for _, ann := range annotations {
		if !activeCodes[ann.Code] {
			continue
		}
		if !ann.ValidFor(len(runes)) {
			continue
		}
		spans = append(spans, ann)
	}

	// Stable: spans sharing a Begin keep their encounter order.
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].Begin < spans[j].Begin
	})

	segments := make([]domain.Segment, 0, 2*len(spans)+1)
	lastPos := 0

	for _, span := range spans {
		if span.Begin > lastPos {
			segments = append(segments, domain.Segment{Content: string(runes[lastPos:span.Begin])})
		}
		segments = append(segments, domain.Segment{
			Content:     string(runes[span.Begin:span.End]),
			Highlighted: true,
			Code:        span.Code,
			CodeSystem:  span.CodeSystem,
		})
		lastPos = span.End
	}

	if lastPos < len(runes) {
		segments = append(segments, domain.Segment{Content: string(runes[lastPos:])})
	}

	return segments
}
