package driving

import (
	"github.com/chartlens-labs/chartlens-cli/internal/core/domain"
)

// SpanHighlighter derives the rendered segmentation of one note's text
// for a set of active codes.
//
// Render is a pure function: identical inputs always yield identical
// output, no state is retained between calls, and it never fails.
// Callers re-invoke it whenever the active code selection changes.
type SpanHighlighter interface {
	// Render returns an ordered sequence of segments covering text.
	//
	// With no active codes it returns a single plain segment spanning
	// the whole text. Otherwise annotations whose code is active and
	// whose offsets are valid are sorted by Begin (stable, so equal
	// starts keep input order) and emitted as highlighted segments,
	// with plain segments filling the gaps. Invalid spans are dropped,
	// never clamped.
	//
	// Overlapping spans are passed through as-is: a span starting
	// before the previous one ended still emits its full covered text,
	// duplicating characters in the output. Callers needing strict
	// non-overlap must pre-merge their spans.
	Render(text string, annotations []domain.Annotation, activeCodes map[string]bool) []domain.Segment
}
