package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/ports"
)

// ClearCartCommandHandler empties the session's cart.
type ClearCartCommandHandler struct {
	cartStore ports.CartStore
}

// NewClearCartCommandHandler creates a handler for cart clearing.
func NewClearCartCommandHandler(cartStore ports.CartStore) ClearCartCommandHandler {
	return ClearCartCommandHandler{cartStore: cartStore}
}

// Handle clears the cart; an already empty cart is a successful no-op.
func (h *ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.cartStore.Update(ctx, cmd.SessionID(), func(c *cart.Cart) error {
		c.Clear()
		return nil
	})
}
