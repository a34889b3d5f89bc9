package driven

import (
	"context"

	"github.com/chartlens-labs/chartlens-cli/internal/core/domain"
)

// RecordLoader decodes and discovers record documents on disk.
type RecordLoader interface {
	// Load decodes one record document.
	// Documents without a "notes" field are rejected with
	// domain.ErrMissingNotes; all other missing fields default to
	// empty values.
	Load(path string) (*domain.Record, error)

	// Scan recursively finds record documents (*.json) under dir,
	// sorted by display name.
	Scan(dir string) ([]domain.RecordFile, error)

	// Watch reports paths under dir whose contents changed.
	// The channel closes when ctx is cancelled.
	Watch(ctx context.Context, dir string) (<-chan string, error)
}
