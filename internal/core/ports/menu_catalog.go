package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/menu"
)

// MenuCatalog is the read contract to the menu side: live name, price,
// and availability of sellable items. Carts snapshot what they need from
// the returned item; the catalog is never consulted again for an existing
// cart line.
type MenuCatalog interface {
	// GetItem returns the live menu item or an ObjectNotFoundError.
	GetItem(ctx context.Context, id kernel.UUID) (*menu.Item, error)
}
