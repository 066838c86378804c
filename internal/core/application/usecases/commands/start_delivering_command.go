package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrStartDeliveringCommandIsNotConstructed = errors.New(
	"StartDeliveringCommand must be created via NewStartDeliveringCommand constructor",
)

// StartDeliveringCommand represents the start of a delivery run for a
// ready delivery order. A driver actor becomes the assigned driver.
type StartDeliveringCommand struct { //nolint:recvcheck //using for validation
	orderActorCommand

	guard guard.ConstructorGuard
}

// NewStartDeliveringCommand creates a command to start a delivery run.
func NewStartDeliveringCommand(orderID, actorID kernel.UUID, role order.Role) (StartDeliveringCommand, error) {
	cmd := StartDeliveringCommand{
		guard: guard.NewConstructorGuard(),
	}
	if err := cmd.set(orderID, actorID, role); err != nil {
		return StartDeliveringCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDeliveringCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveringCommandIsNotConstructed)
}
