// Package kernel provides core domain primitives used throughout the bitebox
// domain model.
//
// The package currently contains a single primitive:
//   - UUID: a value object for unique identifiers with validation and comparison
//
// Kernel primitives are immutable and thread-safe, and enforce their invariants
// through factory constructors so that domain objects referencing them are
// always in a valid state.
package kernel
