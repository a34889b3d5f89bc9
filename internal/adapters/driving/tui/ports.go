// Package tui provides an interactive terminal user interface for chartlens.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/chartlens-labs/chartlens-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Record loads, lists, and watches record files.
	Record driving.RecordService

	// Indexer groups annotations by ICD-10 code.
	Indexer driving.AnnotationIndexer

	// Highlighter renders note text with annotated spans marked.
	Highlighter driving.SpanHighlighter
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	record driving.RecordService,
	indexer driving.AnnotationIndexer,
	highlighter driving.SpanHighlighter,
) *Ports {
	return &Ports{
		Record:      record,
		Indexer:     indexer,
		Highlighter: highlighter,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Record == nil {
		return ErrMissingRecordService
	}
	if p.Indexer == nil {
		return ErrMissingIndexer
	}
	if p.Highlighter == nil {
		return ErrMissingHighlighter
	}
	return nil
}
