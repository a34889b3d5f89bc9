package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/chartlens-labs/chartlens-cli/internal/core/domain"
	"github.com/chartlens-labs/chartlens-cli/internal/core/ports/driven"
	"github.com/chartlens-labs/chartlens-cli/internal/core/ports/driving"
	"github.com/chartlens-labs/chartlens-cli/internal/logger"
)

// Ensure RecordService implements the interface.
var _ driving.RecordService = (*RecordService)(nil)

// RecordService loads, persists, and lists admission records.
type RecordService struct {
	loader driven.RecordLoader
	store  driven.RecordStore
}

// NewRecordService creates a new record service.
func NewRecordService(loader driven.RecordLoader, store driven.RecordStore) *RecordService {
	return &RecordService{
		loader: loader,
		store:  store,
	}
}

// Load decodes one record document from disk without storing it.
func (s *RecordService) Load(path string) (*domain.Record, error) {
	if s.loader == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.loader.Load(path)
}

// ListFiles recursively scans dir for record documents.
func (s *RecordService) ListFiles(dir string) ([]domain.RecordFile, error) {
	if s.loader == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.loader.Scan(dir)
}

// Watch reports paths under dir whose contents changed.
func (s *RecordService) Watch(ctx context.Context, dir string) (<-chan string, error) {
	if s.loader == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.loader.Watch(ctx, dir)
}

// Import loads a record document and persists it.
// The record keeps its hadm_id as storage ID when present; otherwise a
// fresh UUID is assigned.
func (s *RecordService) Import(ctx context.Context, path string) (*domain.Record, error) {
	if s.loader == nil || s.store == nil {
		return nil, domain.ErrNotImplemented
	}

	rec, err := s.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading record: %w", err)
	}

	if rec.ID == "" {
		rec.ID = rec.HadmID
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	if err := s.store.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("saving record: %w", err)
	}

	logger.Debug("imported record %s (%d notes, %d annotations) from %s",
		rec.ID, len(rec.Notes), rec.AnnotationCount(), path)

	return rec, nil
}

// List returns summaries of all stored records.
func (s *RecordService) List(ctx context.Context) ([]domain.RecordSummary, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.List(ctx)
}

// Get retrieves a stored record by ID.
func (s *RecordService) Get(ctx context.Context, id string) (*domain.Record, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.Get(ctx, id)
}

// Delete removes a stored record.
func (s *RecordService) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	return s.store.Delete(ctx, id)
}
