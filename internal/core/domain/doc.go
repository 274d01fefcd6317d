// Package domain defines the core business entities for Sanhita.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Section: A single statute section within a legal code
//   - Match: A scored search hit for a section
//   - Scope: The corpus selection for a query (one corpus or all)
//   - SearchLog: An audit record of an executed query
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
