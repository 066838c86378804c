package cart

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/menu"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when validating a Line that was not
// created via newLine.
var ErrLineIsNotConstructed = errs.NewValueIsRequiredError(
	"cart line must be created via Cart.AddItem")

var errInvalidCustomization = errs.NewValueIsRequiredError(
	"customization must be created via NewCustomization")

// Line is one customization variant of a menu item inside an unconfirmed
// cart. The unit price is snapshotted when the line is created; later
// catalog price changes never affect it. A line always has quantity >= 1;
// a quantity that would drop to zero removes the line instead.
type Line struct {
	id            kernel.UUID
	itemID        kernel.UUID
	storeID       kernel.UUID
	name          string
	unitPrice     kernel.Money
	quantity      int
	customization Customization

	guard guard.ConstructorGuard
}

func newLine(item *menu.Item, quantity int, customization Customization) (*Line, error) {
	if err := errors.Join(
		item.Validate(),
		customization.Validate(),
	); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, errs.NewValueIsInvalidError("quantity must be at least 1")
	}

	return &Line{
		id:            kernel.NewUUID(),
		itemID:        item.ID(),
		storeID:       item.StoreID(),
		name:          item.Name(),
		unitPrice:     item.Price(),
		quantity:      quantity,
		customization: customization,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the line was created via its constructor.
func (l *Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ID returns the opaque line identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// ItemID returns the menu item this line was created from.
func (l *Line) ItemID() kernel.UUID {
	return l.itemID
}

// StoreID returns the store the menu item belongs to.
func (l *Line) StoreID() kernel.UUID {
	return l.storeID
}

// Name returns the item name captured when the line was created.
func (l *Line) Name() string {
	return l.name
}

// UnitPrice returns the price snapshot captured when the line was created.
func (l *Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Quantity returns the current quantity, always >= 1.
func (l *Line) Quantity() int {
	return l.quantity
}

// Customization returns the line's customization identity.
func (l *Line) Customization() Customization {
	return l.customization
}

// Total returns unit price times quantity.
func (l *Line) Total() (kernel.Money, error) {
	return l.unitPrice.MulInt(l.quantity)
}

// sameIdentity reports whether this line would merge with a line for the
// given item and customization.
func (l *Line) sameIdentity(itemID kernel.UUID, customization Customization) bool {
	return l.itemID.IsEqual(itemID) && l.customization.IsEqual(customization)
}

func (l *Line) addQuantity(delta int) {
	l.quantity += delta
}

func (l *Line) setQuantity(quantity int) {
	l.quantity = quantity
}

func (l *Line) setCustomization(customization Customization) {
	l.customization = customization
}
