package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkReadyCommandIsNotConstructed = errors.New(
	"MarkReadyCommand must be created via NewMarkReadyCommand constructor",
)

// MarkReadyCommand represents the kitchen finishing an order, leaving it
// waiting for pickup or a delivery run.
type MarkReadyCommand struct { //nolint:recvcheck //using for validation
	orderActorCommand

	guard guard.ConstructorGuard
}

// NewMarkReadyCommand creates a command to mark an order ready.
func NewMarkReadyCommand(orderID, actorID kernel.UUID, role order.Role) (MarkReadyCommand, error) {
	cmd := MarkReadyCommand{
		guard: guard.NewConstructorGuard(),
	}
	if err := cmd.set(orderID, actorID, role); err != nil {
		return MarkReadyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkReadyCommandIsNotConstructed)
}
