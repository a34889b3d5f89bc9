// Package driving defines the interfaces through which the outside world
// drives the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI, TUI, and web adapters call these interfaces; core services
// implement them.
//
//   - AnnotationIndexer: groups a record's annotations by code
//   - SpanHighlighter: renders note text as plain/highlighted segments
//   - RecordService: loads, persists, and lists admission records
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driving
