// Package menu contains the catalog side of the fulfillment core: the menu
// items a store sells and the customization options attached to them. Items
// are reference data; carts and orders copy the fields they need at the
// moment of interaction rather than holding live pointers into the catalog.
package menu

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when validating an Item that was not
// created via NewItem or RestoreItem.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError(
	"menu item must be created via NewItem or RestoreItem")

// ErrItemUnavailable is returned when a cart operation references an item
// the store has taken off the menu.
var ErrItemUnavailable = errs.NewValueIsInvalidError("menu item is not available")

// Item is a sellable menu entry belonging to exactly one store. The price
// is the current catalog price; carts capture it at the time a line is
// added, so later catalog edits never change an existing line.
type Item struct { //nolint:recvcheck //using for validation
	id        kernel.UUID
	storeID   kernel.UUID
	name      string
	price     kernel.Money
	available bool

	guard guard.ConstructorGuard
}

// NewItem creates a menu item for a store. New items start available.
func NewItem(storeID kernel.UUID, name string, price kernel.Money) (*Item, error) {
	if err := errors.Join(
		storeID.Validate(),
		price.Validate(),
	); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Item{
		id:        kernel.NewUUID(),
		storeID:   storeID,
		name:      name,
		price:     price,
		available: true,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreItem reconstructs an item from persistence without generating a
// new identity.
func RestoreItem(id, storeID kernel.UUID, name string, price kernel.Money, available bool) (*Item, error) {
	if err := errors.Join(
		id.Validate(),
		storeID.Validate(),
		price.Validate(),
	); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Item{
		id:        id,
		storeID:   storeID,
		name:      name,
		price:     price,
		available: available,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the item was created via a constructor.
func (i *Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// StoreID returns the identifier of the store that sells this item.
func (i *Item) StoreID() kernel.UUID {
	return i.storeID
}

// Name returns the display name.
func (i *Item) Name() string {
	return i.name
}

// Price returns the current catalog price.
func (i *Item) Price() kernel.Money {
	return i.price
}

// IsAvailable reports whether the item can currently be added to carts.
func (i *Item) IsAvailable() bool {
	return i.available
}

// SetAvailable toggles item availability. Existing cart lines are not
// affected; availability is checked when a line is added.
func (i *Item) SetAvailable(available bool) {
	i.available = available
}

// SetPrice changes the catalog price. Cart lines and frozen order lines
// keep the price captured when they were created.
func (i *Item) SetPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	i.price = price
	return nil
}
