// Package order implements the order aggregate and its lifecycle state
// machine.
//
// An order is created from a finalized cart snapshot and a delivery
// quote, then advances through the statuses Placed, Accepted, Preparing,
// Ready, Delivering, and one of the terminal statuses Completed,
// Rejected, or Cancelled. Each transition is authorized against the
// acting party's relationship to the order and stamps the entered status
// exactly once.
//
// The package contains:
//   - Order: the aggregate root with transition methods
//   - Status: the state machine as a value object
//   - Actor: the identity/role pair transitions are authorized against
//   - LineItem: frozen order lines with price-at-order
//   - Timestamps: the append-only per-status time record
package order
