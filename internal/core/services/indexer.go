package services

import (
	"sort"

	"github.com/chartlens-labs/chartlens-cli/internal/core/domain"
	"github.com/chartlens-labs/chartlens-cli/internal/core/ports/driving"
)

// Ensure Indexer implements the interface.
var _ driving.AnnotationIndexer = (*Indexer)(nil)

// Indexer groups a record's annotations by code.
// It is stateless; a single instance is safe for concurrent use.
type Indexer struct{}

// NewIndexer creates a new annotation indexer.
func NewIndexer() *Indexer {
	return &Indexer{}
}

// Build groups every annotation in the record by exact code string.
//
// Notes are visited in document order and each note's annotations in
// encounter order. The first instance of a code seeds the group's
// CodeSystem and Description; every instance is appended regardless.
// Offsets are not validated here, so the sum of group counts always
// equals the record's total annotation count.
//
// Groups are returned sorted lexicographically by code, and the map
// gives each code's index into the sorted slice. Build never fails and
// produces a fresh structure on every call.
func (ix *Indexer) Build(rec domain.Record) ([]domain.AnnotationGroup, map[string]int) {
	byCode := make(map[string]int)
	groups := make([]domain.AnnotationGroup, 0)

	for noteIdx := range rec.Notes {
		for _, ann := range rec.Notes[noteIdx].Annotations {
			gi, ok := byCode[ann.Code]
			if !ok {
				gi = len(groups)
				byCode[ann.Code] = gi
				groups = append(groups, domain.AnnotationGroup{
					Code:        ann.Code,
					CodeSystem:  ann.CodeSystem,
					Description: ann.Description,
				})
			}
			groups[gi].Instances = append(groups[gi].Instances, domain.Instance{
				NoteIndex:  noteIdx,
				Annotation: ann,
			})
		}
	}

	// Codes are unique group keys, so the order is total without a tiebreak.
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Code < groups[j].Code
	})
	for i := range groups {
		byCode[groups[i].Code] = i
	}

	return groups, byCode
}
