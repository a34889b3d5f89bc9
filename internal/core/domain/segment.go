package domain

// Segment is one contiguous piece of rendered note text.
// A rendering of a note is an ordered sequence of segments whose
// contents concatenate back to the original text (given no overlapping
// spans in the input).
type Segment struct {
	// Content is the text of this segment.
	Content string

	// Highlighted marks the segment as covered by an active annotation.
	Highlighted bool

	// Code is the code that produced the highlight. Empty for plain segments.
	Code string

	// CodeSystem is the code system of the highlighting annotation.
	// Empty for plain segments.
	CodeSystem string
}

// JoinSegments concatenates segment contents in order.
// With valid, non-overlapping input spans this reproduces the source text.
func JoinSegments(segments []Segment) string {
	var n int
	for i := range segments {
		n += len(segments[i].Content)
	}
	b := make([]byte, 0, n)
	for i := range segments {
		b = append(b, segments[i].Content...)
	}
	return string(b)
}
