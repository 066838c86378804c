package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateCartLineCommandIsNotConstructed = errors.New(
	"UpdateCartLineCommand must be created via NewUpdateCartLineCommand constructor",
)

// UpdateCartLineCommand represents a request to replace a cart line's
// customization. If the new customization collides with another line, the
// cart merges the two.
type UpdateCartLineCommand struct { //nolint:recvcheck //using for validation
	sessionID    string
	lineID       kernel.UUID
	choices      []kernel.UUID
	removed      []kernel.UUID
	instructions string

	guard guard.ConstructorGuard
}

// NewUpdateCartLineCommand creates a command to re-customize a cart line.
func NewUpdateCartLineCommand(
	sessionID string,
	lineID kernel.UUID,
	choices, removed []kernel.UUID,
	instructions string,
) (UpdateCartLineCommand, error) {
	cmd := UpdateCartLineCommand{
		choices:      choices,
		removed:      removed,
		instructions: instructions,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setLineID(lineID),
	); err != nil {
		return UpdateCartLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartLineCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartLineCommandIsNotConstructed)
}

// SessionID returns the cart session key.
func (c UpdateCartLineCommand) SessionID() string { return c.sessionID }

// LineID returns the line to re-customize.
func (c UpdateCartLineCommand) LineID() kernel.UUID { return c.lineID }

// Choices returns the new add-on choice identifiers.
func (c UpdateCartLineCommand) Choices() []kernel.UUID { return c.choices }

// Removed returns the new removed ingredient identifiers.
func (c UpdateCartLineCommand) Removed() []kernel.UUID { return c.removed }

// Instructions returns the new special instructions.
func (c UpdateCartLineCommand) Instructions() string { return c.instructions }

func (c *UpdateCartLineCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}

func (c *UpdateCartLineCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}
