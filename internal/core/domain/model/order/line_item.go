package order

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when validating a LineItem that
// was not created via NewLineItem or RestoreLineItem.
var ErrLineItemIsNotConstructed = errs.NewValueIsRequiredError(
	"line item must be created via NewLineItem or RestoreLineItem")

// LineItem is a frozen order line: the name, unit price, and customization
// captured at order-placement time. It references the menu item it came
// from for display but is immune to later menu changes. Line items are
// immutable once the order is created.
type LineItem struct {
	id           kernel.UUID
	menuItemID   kernel.UUID
	name         string
	unitPrice    kernel.Money
	quantity     int
	choices      []kernel.UUID
	removed      []kernel.UUID
	instructions string

	guard guard.ConstructorGuard
}

// NewLineItem freezes one cart line into an order line.
func NewLineItem(
	menuItemID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	quantity int,
	choices, removed []kernel.UUID,
	instructions string,
) (LineItem, error) {
	return newLineItem(kernel.NewUUID(), menuItemID, name, unitPrice, quantity, choices, removed, instructions)
}

// RestoreLineItem reconstructs a frozen line from persistence.
func RestoreLineItem(
	id, menuItemID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	quantity int,
	choices, removed []kernel.UUID,
	instructions string,
) (LineItem, error) {
	if err := id.Validate(); err != nil {
		return LineItem{}, err
	}
	return newLineItem(id, menuItemID, name, unitPrice, quantity, choices, removed, instructions)
}

func newLineItem(
	id, menuItemID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	quantity int,
	choices, removed []kernel.UUID,
	instructions string,
) (LineItem, error) {
	if err := errors.Join(
		menuItemID.Validate(),
		unitPrice.Validate(),
	); err != nil {
		return LineItem{}, err
	}
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("name")
	}
	if quantity < 1 {
		return LineItem{}, errs.NewValueIsInvalidError("quantity must be at least 1")
	}
	for _, cid := range choices {
		if err := cid.Validate(); err != nil {
			return LineItem{}, err
		}
	}
	for _, rid := range removed {
		if err := rid.Validate(); err != nil {
			return LineItem{}, err
		}
	}

	return LineItem{
		id:           id,
		menuItemID:   menuItemID,
		name:         name,
		unitPrice:    unitPrice,
		quantity:     quantity,
		choices:      append([]kernel.UUID(nil), choices...),
		removed:      append([]kernel.UUID(nil), removed...),
		instructions: instructions,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the line item was created via a constructor.
func (l LineItem) Validate() error {
	return l.guard.Validate(ErrLineItemIsNotConstructed)
}

// ID returns the line identifier.
func (l LineItem) ID() kernel.UUID {
	return l.id
}

// MenuItemID returns the menu item this line was frozen from.
func (l LineItem) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Name returns the item name at order time.
func (l LineItem) Name() string {
	return l.name
}

// UnitPrice returns the price-at-order, independent of the live menu price.
func (l LineItem) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Quantity returns the ordered quantity.
func (l LineItem) Quantity() int {
	return l.quantity
}

// Choices returns a copy of the selected add-on choice identifiers.
func (l LineItem) Choices() []kernel.UUID {
	return append([]kernel.UUID(nil), l.choices...)
}

// Removed returns a copy of the removed ingredient identifiers.
func (l LineItem) Removed() []kernel.UUID {
	return append([]kernel.UUID(nil), l.removed...)
}

// Instructions returns the special instructions, empty if absent.
func (l LineItem) Instructions() string {
	return l.instructions
}

// Total returns unit price times quantity.
func (l LineItem) Total() (kernel.Money, error) {
	return l.unitPrice.MulInt(l.quantity)
}
