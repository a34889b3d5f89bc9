package domain

import "time"

// RecordFile describes one record document found on disk.
type RecordFile struct {
	// Path is the absolute or scan-relative file path.
	Path string

	// Name is the display name relative to the scanned directory.
	Name string

	// Size is the file size in bytes.
	Size int64
}

// RecordSummary is the listing view of a stored record.
type RecordSummary struct {
	// ID is the storage identifier.
	ID string

	// HadmID is the admission identifier.
	HadmID string

	// Path is the file the record was imported from.
	Path string

	// NoteCount is the number of notes in the record.
	NoteCount int

	// AnnotationCount is the total number of annotations across notes.
	AnnotationCount int

	// ImportedAt is when the record was stored.
	ImportedAt time.Time
}
