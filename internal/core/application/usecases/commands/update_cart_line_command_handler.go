package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/ports"
)

// UpdateCartLineCommandHandler re-customizes a cart line under the
// session lock.
type UpdateCartLineCommandHandler struct {
	cartStore ports.CartStore
}

// NewUpdateCartLineCommandHandler creates a handler for line re-customization.
func NewUpdateCartLineCommandHandler(cartStore ports.CartStore) UpdateCartLineCommandHandler {
	return UpdateCartLineCommandHandler{cartStore: cartStore}
}

// Handle replaces the line's customization, merging on identity collision.
func (h *UpdateCartLineCommandHandler) Handle(ctx context.Context, cmd UpdateCartLineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	customization, err := cart.NewCustomization(cmd.Choices(), cmd.Removed(), cmd.Instructions())
	if err != nil {
		return err
	}

	return h.cartStore.Update(ctx, cmd.SessionID(), func(c *cart.Cart) error {
		_, updateErr := c.UpdateCustomization(cmd.LineID(), customization)
		return updateErr
	})
}
