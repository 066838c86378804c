package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/ports"
)

// AddCartItemCommandHandler looks up the live menu item and adds it to the
// session's cart under the cart store's session lock. Merge-by-identity
// is the cart's concern; the handler only resolves the item.
type AddCartItemCommandHandler struct {
	cartStore   ports.CartStore
	menuCatalog ports.MenuCatalog
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
func NewAddCartItemCommandHandler(cartStore ports.CartStore, menuCatalog ports.MenuCatalog) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		cartStore:   cartStore,
		menuCatalog: menuCatalog,
	}
}

// Handle resolves the menu item and mutates the cart. A missing or
// unavailable item fails with an ObjectNotFoundError; an item from a
// second store fails with a StoreMismatchError.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := h.menuCatalog.GetItem(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	customization, err := cart.NewCustomization(cmd.Choices(), cmd.Removed(), cmd.Instructions())
	if err != nil {
		return err
	}

	return h.cartStore.Update(ctx, cmd.SessionID(), func(c *cart.Cart) error {
		_, addErr := c.AddItem(item, cmd.Quantity(), customization)
		return addErr
	})
}
