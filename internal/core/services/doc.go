// Package services implements the core business logic for chartlens.
//
// Services implement the driving port interfaces and depend on driven
// ports for infrastructure. The Indexer and Highlighter are pure
// transforms with no stores at all; the RecordService composes the
// loader and record store.
package services
