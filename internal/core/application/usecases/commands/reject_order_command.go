package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand represents the store owner declining a placed order
// with a required reason.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderActorCommand
	reason string

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command to reject an order.
func NewRejectOrderCommand(orderID, actorID kernel.UUID, role order.Role, reason string) (RejectOrderCommand, error) {
	if reason == "" {
		return RejectOrderCommand{}, errs.NewValueIsRequiredError("rejection reason")
	}

	cmd := RejectOrderCommand{
		reason: reason,

		guard: guard.NewConstructorGuard(),
	}
	if err := cmd.set(orderID, actorID, role); err != nil {
		return RejectOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// Reason returns the rejection reason shown to the customer.
func (c RejectOrderCommand) Reason() string { return c.reason }
