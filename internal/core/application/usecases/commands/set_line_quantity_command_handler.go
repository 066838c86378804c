package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/ports"
)

// SetLineQuantityCommandHandler changes a line's quantity under the
// session lock, removing the line at zero.
type SetLineQuantityCommandHandler struct {
	cartStore ports.CartStore
}

// NewSetLineQuantityCommandHandler creates a handler for quantity changes.
func NewSetLineQuantityCommandHandler(cartStore ports.CartStore) SetLineQuantityCommandHandler {
	return SetLineQuantityCommandHandler{cartStore: cartStore}
}

// Handle applies the quantity change to the session's cart.
func (h *SetLineQuantityCommandHandler) Handle(ctx context.Context, cmd SetLineQuantityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.cartStore.Update(ctx, cmd.SessionID(), func(c *cart.Cart) error {
		return c.SetQuantity(cmd.LineID(), cmd.Quantity())
	})
}
