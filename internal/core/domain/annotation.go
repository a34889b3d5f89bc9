package domain

// Code system identifiers used by the annotation corpus.
const (
	// CodeSystemDiagnosis is the ICD-10 diagnosis classification.
	CodeSystemDiagnosis = "ICD-10-CM"

	// CodeSystemProcedure is the ICD-10 procedure classification.
	CodeSystemProcedure = "ICD-10-PCS"
)

// Annotation is one coded span within a note's text.
// Offsets are 0-based, half-open character positions into the owning
// note's Text, counted in Unicode code points rather than bytes: the
// span covers code points [Begin, End) of the decoded text.
// Annotations are constructed once from parsed input and never mutated.
type Annotation struct {
	// Code is the classification identifier, e.g. an ICD-10 code.
	// The empty string is a valid code (uncoded/malformed annotations
	// collapse into one group).
	Code string

	// CodeSystem is the vocabulary the code belongs to,
	// e.g. "ICD-10-CM" or "ICD-10-PCS".
	CodeSystem string

	// Description is the human-readable label for the code.
	Description string

	// Begin is the inclusive start offset into the note text.
	Begin int

	// End is the exclusive end offset into the note text.
	End int

	// CoveredText is the text the annotator claims the span covers.
	// Advisory only: it is untrusted and never used for correctness.
	CoveredText string
}

// ValidFor reports whether the annotation's offsets are valid against
// a text of the given length: 0 <= Begin < textLen and Begin < End <= textLen.
// The length is counted the same way the offsets are, i.e. in code
// points for note text. Zero and negative-length spans are invalid.
func (a Annotation) ValidFor(textLen int) bool {
	return a.Begin >= 0 && a.Begin < textLen && a.Begin < a.End && a.End <= textLen
}

// Note is one clinical text unit within a record.
type Note struct {
	// NoteID identifies the note. It is not necessarily unique
	// across records.
	NoteID string

	// Category is the note category, e.g. "Discharge summary".
	Category string

	// Description is the human-readable note description.
	Description string

	// Text is the full note body. Annotation offsets are relative
	// to this field, never to any concatenation of notes.
	Text string

	// Annotations are the coded spans in encounter order.
	Annotations []Annotation
}

// Record is an admission record: an opaque admission identifier plus
// an ordered sequence of annotated notes.
type Record struct {
	// ID is the storage identifier. Assigned on import; falls back to
	// HadmID when present.
	ID string

	// HadmID is the opaque hospital admission identifier.
	HadmID string

	// Path is the file the record was loaded from, when known.
	Path string

	// Notes are the clinical notes in document order.
	Notes []Note
}

// AnnotationCount returns the total number of annotations across all notes.
func (r Record) AnnotationCount() int {
	n := 0
	for i := range r.Notes {
		n += len(r.Notes[i].Annotations)
	}
	return n
}

// Instance is a back-reference to one annotation occurrence:
// the index of its note within the record plus the annotation itself.
type Instance struct {
	// NoteIndex is the position of the owning note in Record.Notes.
	NoteIndex int

	// Annotation is the occurrence.
	Annotation Annotation
}

// AnnotationGroup aggregates every annotation sharing one code across
// a record. CodeSystem and Description are taken from the first instance
// encountered; later instances are never re-validated against them.
// Groups hold back-references only and must be rebuilt if the source
// record is rebuilt.
type AnnotationGroup struct {
	// Code is the group key.
	Code string

	// CodeSystem is the code system of the first instance seen.
	CodeSystem string

	// Description is the description of the first instance seen.
	Description string

	// Instances lists every occurrence in record encounter order.
	Instances []Instance
}

// Count returns the number of instances in the group.
func (g AnnotationGroup) Count() int {
	return len(g.Instances)
}
