// Package memory provides in-memory store implementations, primarily
// for tests and ephemeral runs.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/chartlens-labs/chartlens-cli/internal/core/domain"
	"github.com/chartlens-labs/chartlens-cli/internal/core/ports/driven"
)

// Ensure RecordStore implements the interface.
var _ driven.RecordStore = (*RecordStore)(nil)

// RecordStore is an in-memory implementation of driven.RecordStore.
type RecordStore struct {
	mu       sync.RWMutex
	records  map[string]domain.Record
	imported map[string]time.Time
}

// NewRecordStore creates a new in-memory record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{
		records:  make(map[string]domain.Record),
		imported: make(map[string]time.Time),
	}
}

// Save stores or updates a record.
func (s *RecordStore) Save(_ context.Context, rec *domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = *rec
	if _, ok := s.imported[rec.ID]; !ok {
		s.imported[rec.ID] = time.Now().UTC()
	}
	return nil
}

// Get retrieves a record by ID.
func (s *RecordStore) Get(_ context.Context, id string) (*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

// List returns summaries of all stored records, sorted by ID.
func (s *RecordStore) List(_ context.Context) ([]domain.RecordSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]domain.RecordSummary, 0, len(s.records))
	for id := range s.records {
		rec := s.records[id]
		summaries = append(summaries, domain.RecordSummary{
			ID:              rec.ID,
			HadmID:          rec.HadmID,
			Path:            rec.Path,
			NoteCount:       len(rec.Notes),
			AnnotationCount: rec.AnnotationCount(),
			ImportedAt:      s.imported[id],
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ID < summaries[j].ID
	})
	return summaries, nil
}

// Delete removes a record.
func (s *RecordStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	delete(s.imported, id)
	return nil
}
