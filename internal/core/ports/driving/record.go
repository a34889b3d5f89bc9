package driving

import (
	"context"

	"github.com/chartlens-labs/chartlens-cli/internal/core/domain"
)

// RecordService loads, persists, and lists admission records.
type RecordService interface {
	// Load decodes one record document from disk without storing it.
	Load(path string) (*domain.Record, error)

	// ListFiles recursively scans dir for record documents (*.json),
	// sorted by display name.
	ListFiles(dir string) ([]domain.RecordFile, error)

	// Watch reports paths under dir whose contents changed.
	// The channel closes when ctx is cancelled.
	Watch(ctx context.Context, dir string) (<-chan string, error)

	// Import loads a record document and persists it.
	Import(ctx context.Context, path string) (*domain.Record, error)

	// List returns summaries of all stored records.
	List(ctx context.Context) ([]domain.RecordSummary, error)

	// Get retrieves a stored record by ID.
	Get(ctx context.Context, id string) (*domain.Record, error)

	// Delete removes a stored record.
	Delete(ctx context.Context, id string) error
}
