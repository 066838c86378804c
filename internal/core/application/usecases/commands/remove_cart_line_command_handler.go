package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/ports"
)

// RemoveCartLineCommandHandler removes one line from the session's cart.
type RemoveCartLineCommandHandler struct {
	cartStore ports.CartStore
}

// NewRemoveCartLineCommandHandler creates a handler for line removal.
func NewRemoveCartLineCommandHandler(cartStore ports.CartStore) RemoveCartLineCommandHandler {
	return RemoveCartLineCommandHandler{cartStore: cartStore}
}

// Handle removes the line, failing with an ObjectNotFoundError for an
// unknown line.
func (h *RemoveCartLineCommandHandler) Handle(ctx context.Context, cmd RemoveCartLineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.cartStore.Update(ctx, cmd.SessionID(), func(c *cart.Cart) error {
		return c.RemoveLine(cmd.LineID())
	})
}
