package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents the store owner taking a placed order.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderActorCommand

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to accept an order.
func NewAcceptOrderCommand(orderID, actorID kernel.UUID, role order.Role) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
	if err := cmd.set(orderID, actorID, role); err != nil {
		return AcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}
