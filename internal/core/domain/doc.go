// Package domain defines the core entities for jsonbridge.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - JSONPayload: Text the caller asserts is a JSON document
//   - FileLocation: A path or file:// URL on the local filesystem
//   - SaveResult / LoadResult: Outcomes of the two file operations
//   - Activity: A journal record of one operation
//   - BridgeSettings: User-tunable behaviour
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
