package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrSetLineQuantityCommandIsNotConstructed = errors.New(
	"SetLineQuantityCommand must be created via NewSetLineQuantityCommand constructor",
)

// SetLineQuantityCommand represents a request to change a cart line's
// quantity. A quantity of zero or less removes the line, so negative
// values are accepted here and resolved by the cart.
type SetLineQuantityCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	lineID    kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewSetLineQuantityCommand creates a command to set a line's quantity.
func NewSetLineQuantityCommand(sessionID string, lineID kernel.UUID, quantity int) (SetLineQuantityCommand, error) {
	cmd := SetLineQuantityCommand{
		quantity: quantity,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setLineID(lineID),
	); err != nil {
		return SetLineQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetLineQuantityCommand) Validate() error {
	return c.guard.Validate(ErrSetLineQuantityCommandIsNotConstructed)
}

// SessionID returns the cart session key.
func (c SetLineQuantityCommand) SessionID() string { return c.sessionID }

// LineID returns the line to change.
func (c SetLineQuantityCommand) LineID() kernel.UUID { return c.lineID }

// Quantity returns the requested quantity.
func (c SetLineQuantityCommand) Quantity() int { return c.quantity }

func (c *SetLineQuantityCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}

func (c *SetLineQuantityCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}
