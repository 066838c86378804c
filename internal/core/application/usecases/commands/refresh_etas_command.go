package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

// RefreshEtasCommand triggers a re-quote of every order that is out for
// delivery, using the last recorded driver position. Run periodically so
// the customer-facing estimate stays fresh between driver pings.
type RefreshEtasCommand struct {
	guard guard.ConstructorGuard
}

var ErrRefreshEtasCommandIsNotConstructed = errors.New(
	"RefreshEtasCommand must be created via NewRefreshEtasCommand constructor",
)

// NewRefreshEtasCommand creates a command to refresh in-flight estimates.
// This is a parameterless command that processes all delivering orders.
func NewRefreshEtasCommand() RefreshEtasCommand {
	return RefreshEtasCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *RefreshEtasCommand) Validate() error {
	return c.guard.Validate(ErrRefreshEtasCommandIsNotConstructed)
}
