// Package domain defines the core business entities for chartlens.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Record: An admission record containing annotated clinical notes
//   - Note: A single clinical text unit with its annotations
//   - Annotation: One ICD-10 coded span within a note's text
//   - AnnotationGroup: All annotations sharing one code across a record
//   - Segment: One contiguous piece of rendered output, plain or highlighted
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
