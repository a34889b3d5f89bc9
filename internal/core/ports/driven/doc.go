// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
//   - RecordLoader: decodes and discovers record documents on disk
//   - RecordStore: record persistence (SQLite or in-memory)
//   - ConfigStore: application configuration (TOML file)
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
