package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
//
// The annotation indexer and span highlighter never return errors:
// malformed annotations are tolerated (counted by the indexer, dropped
// by the highlighter) so rendering layers need no error paths around them.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingNotes indicates a record document without a "notes" field.
	// Such documents are rejected at the loading boundary, before the core.
	ErrMissingNotes = errors.New("record is missing notes")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")
)
