// Package kernel provides core domain primitives for the fulfillment system,
// following Domain-Driven Design principles.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - GeoPoint: a validated latitude/longitude pair used for stores, delivery
//     addresses, and live driver positions
//   - Money: a non-negative decimal amount used for prices, fees, and totals
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// safe for concurrent use.
package kernel
