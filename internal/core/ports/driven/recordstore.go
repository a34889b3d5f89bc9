package driven

import (
	"context"

	"github.com/chartlens-labs/chartlens-cli/internal/core/domain"
)

// RecordStore persists admission records.
// Backed by SQLite for durable storage, or in-memory for tests.
type RecordStore interface {
	// Save stores or updates a record with all its notes and annotations.
	Save(ctx context.Context, rec *domain.Record) error

	// Get retrieves a record by ID, including notes and annotations.
	Get(ctx context.Context, id string) (*domain.Record, error)

	// List returns summaries of all stored records.
	List(ctx context.Context) ([]domain.RecordSummary, error)

	// Delete removes a record and its notes.
	Delete(ctx context.Context, id string) error
}
