// Package kernel provides core domain primitives for the fulfillment system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - GeoPoint: a value object for geographic coordinates in decimal degrees,
//     including great-circle distance calculation
//
// These primitives enforce domain invariants and validation rules, are
// immutable, and are safe for concurrent use.
package kernel
