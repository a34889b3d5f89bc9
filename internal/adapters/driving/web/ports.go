// Package web serves the local dashboard over the imported records.
// It is a driving adapter: handlers call the core services and render
// the results as HTML.
package web

import (
	"github.com/chartlens-labs/chartlens-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the dashboard.
type Ports struct {
	// Record provides access to the imported records.
	Record driving.RecordService

	// Indexer groups annotations by ICD-10 code.
	Indexer driving.AnnotationIndexer

	// Highlighter renders note text with annotated spans marked.
	Highlighter driving.SpanHighlighter
}

// Validate ensures all required ports are set.
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
