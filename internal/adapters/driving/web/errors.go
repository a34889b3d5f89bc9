package web

import "errors"

// ErrMissingRecordService is returned when the record service is not provided.
var ErrMissingRecordService = errors.New("web: record service is required")

// ErrMissingIndexer is returned when the annotation indexer is not provided.
var ErrMissingIndexer = errors.New("web: annotation indexer is required")

// ErrMissingHighlighter is returned when the span highlighter is not provided.
var ErrMissingHighlighter = errors.New("web: span highlighter is required")
