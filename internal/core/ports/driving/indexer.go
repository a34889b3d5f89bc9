package driving

import (
	"github.com/chartlens-labs/chartlens-cli/internal/core/domain"
)

// AnnotationIndexer groups a record's annotations by code.
//
// Build is a pure transform: it never fails, performs no I/O, and holds
// no state between calls, so it is safe to call concurrently over
// different records.
type AnnotationIndexer interface {
	// Build iterates the record's notes in document order and each
	// note's annotations in encounter order, grouping them by exact
	// code string. The empty code is a valid group key.
	//
	// The returned groups are sorted lexicographically by code.
	// The index maps each code to its position in the sorted slice.
	// Offsets are NOT validated here: every annotation is counted.
	Build(rec domain.Record) ([]domain.AnnotationGroup, map[string]int)
}
