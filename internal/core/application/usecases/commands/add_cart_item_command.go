package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
	ErrSessionIDIsRequired = errors.New("session id is required")
	ErrQuantityIsInvalid   = errors.New("quantity must be greater than 0")
)

// AddCartItemCommand represents a request to add a menu item with a
// customization to a session's cart.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	sessionID    string
	menuItemID   kernel.UUID
	quantity     int
	choices      []kernel.UUID
	removed      []kernel.UUID
	instructions string

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add an item to a cart.
// Choice and removed-ingredient identifiers are normalized later by the
// cart's customization rules; here they only need to be valid UUIDs.
func NewAddCartItemCommand(
	sessionID string,
	menuItemID kernel.UUID,
	quantity int,
	choices, removed []kernel.UUID,
	instructions string,
) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		choices:      choices,
		removed:      removed,
		instructions: instructions,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setMenuItemID(menuItemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// SessionID returns the cart session key.
func (c AddCartItemCommand) SessionID() string {
	return c.sessionID
}

// MenuItemID returns the menu item to add.
func (c AddCartItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Quantity returns the number of units to add.
func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

// Choices returns the selected add-on choice identifiers.
func (c AddCartItemCommand) Choices() []kernel.UUID {
	return c.choices
}

// Removed returns the removed ingredient identifiers.
func (c AddCartItemCommand) Removed() []kernel.UUID {
	return c.removed
}

// Instructions returns the free-text special instructions.
func (c AddCartItemCommand) Instructions() string {
	return c.instructions
}

func (c *AddCartItemCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}

func (c *AddCartItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
