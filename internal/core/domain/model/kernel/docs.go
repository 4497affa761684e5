// Package kernel provides the shared primitives of the loan audit domain model.
//
// The package includes:
//   - UUID: a validated identifier value object used for domain events
//   - Clock: the injectable time source behind every workflow timestamp
//
// Kernel types are immutable and safe for concurrent use.
package kernel
