package order

import (
	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Placed ──┬──> Accepted ──> Preparing ──> Ready ──┬──> Delivering ──> Completed
//	         │        │                              │        (delivery orders)
//	         │        └──> Cancelled <───────────────┘
//	         │   (before preparing)                  └──> Completed
//	         │                                            (pickup orders)
//	         └──> Rejected
//
// Completed, Rejected, and Cancelled are terminal: no outgoing
// transitions exist and any further mutation of the order fails.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status entered when the customer confirms
	// the cart. The store has not reacted yet.
	Placed

	// Accepted means the store owner has taken the order.
	Accepted

	// Preparing means the kitchen has started working on the order.
	// Cancellation is no longer possible from here on.
	Preparing

	// Ready means the order is prepared and waiting for handoff:
	// pickup by the customer or the start of a delivery run.
	Ready

	// Delivering means a driver is en route with the order.
	// Only delivery orders enter this status.
	Delivering

	// Completed means the order reached the customer. Terminal.
	Completed

	// Rejected means the store owner declined the order. Terminal.
	Rejected

	// Cancelled means the customer or the store owner withdrew the
	// order before preparation began. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Placed:     "PLACED",
		Accepted:   "ACCEPTED",
		Preparing:  "PREPARING",
		Ready:      "READY",
		Delivering: "DELIVERING",
		Completed:  "COMPLETED",
		Rejected:   "REJECTED",
		Cancelled:  "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:     "PLACED",
		Accepted:   "ACCEPTED",
		Preparing:  "PREPARING",
		Ready:      "READY",
		Delivering: "DELIVERING",
		Completed:  "COMPLETED",
		Rejected:   "REJECTED",
		Cancelled:  "CANCELLED",
	}
}

// StatusFromString parses the persisted form of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status: " + s)
}

// Validate checks if the Status value is one of the valid lifecycle
// states. Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the persisted/displayed name of the status, "Unknown"
// for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Rejected || s == Cancelled
}

// Accept transitions PLACED -> ACCEPTED.
//
// Returns:
//   - (Accepted, nil) when the order is in Placed
//   - (0, InvalidTransitionError) otherwise, including a second accept
func (s Status) Accept() (Status, error) {
	if s != Placed {
		return 0, errs.NewInvalidTransitionError(s.String(), "accept")
	}
	return Accepted, nil
}

// Reject transitions PLACED -> REJECTED. Once an order is accepted it can
// no longer be rejected, only cancelled while that is still allowed.
func (s Status) Reject() (Status, error) {
	if s != Placed {
		return 0, errs.NewInvalidTransitionError(s.String(), "reject")
	}
	return Rejected, nil
}

// Cancel transitions PLACED or ACCEPTED -> CANCELLED. Cancellation is
// impossible once preparation has begun.
func (s Status) Cancel() (Status, error) {
	if s != Placed && s != Accepted {
		return 0, errs.NewInvalidTransitionError(s.String(), "cancel")
	}
	return Cancelled, nil
}

// StartPreparing transitions ACCEPTED -> PREPARING.
func (s Status) StartPreparing() (Status, error) {
	if s != Accepted {
		return 0, errs.NewInvalidTransitionError(s.String(), "startPreparing")
	}
	return Preparing, nil
}

// MarkReady transitions PREPARING -> READY.
func (s Status) MarkReady() (Status, error) {
	if s != Preparing {
		return 0, errs.NewInvalidTransitionError(s.String(), "markReady")
	}
	return Ready, nil
}

// StartDelivering transitions READY -> DELIVERING. The aggregate
// additionally requires the order to be a delivery order.
func (s Status) StartDelivering() (Status, error) {
	if s != Ready {
		return 0, errs.NewInvalidTransitionError(s.String(), "startDelivering")
	}
	return Delivering, nil
}

// Complete transitions READY -> COMPLETED (pickup handoff) or
// DELIVERING -> COMPLETED (delivery handoff). The aggregate enforces
// which of the two applies for the order's fulfillment type.
func (s Status) Complete() (Status, error) {
	if s != Ready && s != Delivering {
		return 0, errs.NewInvalidTransitionError(s.String(), "complete")
	}
	return Completed, nil
}
