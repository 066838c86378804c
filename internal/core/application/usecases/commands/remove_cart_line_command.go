package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRemoveCartLineCommandIsNotConstructed = errors.New(
	"RemoveCartLineCommand must be created via NewRemoveCartLineCommand constructor",
)

// RemoveCartLineCommand represents a request to remove one line from a
// session's cart.
type RemoveCartLineCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	lineID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCartLineCommand creates a command to remove a cart line.
func NewRemoveCartLineCommand(sessionID string, lineID kernel.UUID) (RemoveCartLineCommand, error) {
	cmd := RemoveCartLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setLineID(lineID),
	); err != nil {
		return RemoveCartLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartLineCommandIsNotConstructed)
}

// SessionID returns the cart session key.
func (c RemoveCartLineCommand) SessionID() string { return c.sessionID }

// LineID returns the line to remove.
func (c RemoveCartLineCommand) LineID() kernel.UUID { return c.lineID }

func (c *RemoveCartLineCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}

func (c *RemoveCartLineCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}
