package tui

import "errors"

// ErrMissingRecordService is returned when the record service is not provided.
var ErrMissingRecordService = errors.New("tui: record service is required")

// ErrMissingIndexer is returned when the annotation indexer is not provided.
var ErrMissingIndexer = errors.New("tui: annotation indexer is required")

// ErrMissingHighlighter is returned when the span highlighter is not provided.
var ErrMissingHighlighter = errors.New("tui: span highlighter is required")
