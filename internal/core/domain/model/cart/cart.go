// Package cart implements the session-scoped cart: an ordered collection
// of customization-identified lines with merge-on-add semantics and a
// lazily computed subtotal. A cart holds items from at most one store;
// adding an item from a second store is rejected, never auto-cleared.
package cart

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/menu"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrCartIsNotConstructed is returned when validating a Cart that was not
// created via NewCart.
var ErrCartIsNotConstructed = errs.NewValueIsRequiredError(
	"cart must be created via NewCart")

// Cart is one customer session's in-progress order. The cart itself does
// no locking; callers serialize access per session (see the cart store).
type Cart struct {
	lines []*Line

	guard guard.ConstructorGuard
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate checks that the cart was created via its constructor.
func (c *Cart) Validate() error {
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// StoreID returns the store the cart is bound to and true when the cart is
// non-empty. An empty cart is bound to no store.
func (c *Cart) StoreID() (kernel.UUID, bool) {
	if len(c.lines) == 0 {
		return kernel.UUID{}, false
	}
	return c.lines[0].StoreID(), true
}

// AddItem adds quantity units of a menu item with the given customization.
// If a line with the same customization identity already exists its
// quantity is incremented; otherwise a new line is appended. Returns the
// affected line.
//
// Items from a store other than the cart's current store are rejected with
// a StoreMismatchError. Unavailable items are rejected.
func (c *Cart) AddItem(item *menu.Item, quantity int, customization Customization) (*Line, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if !item.IsAvailable() {
		return nil, errs.NewObjectNotFoundError("menuItemID", item.ID())
	}
	if quantity < 1 {
		return nil, errs.NewValueIsInvalidError("quantity must be at least 1")
	}
	if err := customization.Validate(); err != nil {
		return nil, err
	}

	if cartStoreID, bound := c.StoreID(); bound && !cartStoreID.IsEqual(item.StoreID()) {
		return nil, errs.NewStoreMismatchError(cartStoreID.String(), item.StoreID().String())
	}

	for _, line := range c.lines {
		if line.sameIdentity(item.ID(), customization) {
			line.addQuantity(quantity)
			return line, nil
		}
	}

	line, err := newLine(item, quantity, customization)
	if err != nil {
		return nil, err
	}
	c.lines = append(c.lines, line)

	return line, nil
}

// UpdateCustomization replaces a line's customization in place. If the new
// customization collides with another line's identity the two lines merge:
// quantities are summed onto the surviving line and the duplicate is
// removed. The merge result does not depend on which of the two lines was
// edited.
func (c *Cart) UpdateCustomization(lineID kernel.UUID, customization Customization) (*Line, error) {
	if err := customization.Validate(); err != nil {
		return nil, err
	}

	idx := c.indexOf(lineID)
	if idx < 0 {
		return nil, errs.NewObjectNotFoundError("lineID", lineID)
	}
	edited := c.lines[idx]

	for i, other := range c.lines {
		if i == idx {
			continue
		}
		if other.sameIdentity(edited.ItemID(), customization) {
			other.addQuantity(edited.Quantity())
			c.removeAt(idx)
			return other, nil
		}
	}

	edited.setCustomization(customization)
	return edited, nil
}

// SetQuantity sets a line's quantity. A quantity of zero or less removes
// the line.
func (c *Cart) SetQuantity(lineID kernel.UUID, quantity int) error {
	idx := c.indexOf(lineID)
	if idx < 0 {
		return errs.NewObjectNotFoundError("lineID", lineID)
	}

	if quantity <= 0 {
		c.removeAt(idx)
		return nil
	}

	c.lines[idx].setQuantity(quantity)
	return nil
}

// RemoveLine removes a line from the cart.
func (c *Cart) RemoveLine(lineID kernel.UUID) error {
	idx := c.indexOf(lineID)
	if idx < 0 {
		return errs.NewObjectNotFoundError("lineID", lineID)
	}

	c.removeAt(idx)
	return nil
}

// Clear removes all lines. Clearing an empty cart is a no-op.
func (c *Cart) Clear() {
	c.lines = nil
}

// Snapshot produces an immutable ordered view of the cart with the
// aggregate quantity and the subtotal. The subtotal is recomputed from the
// price-at-add snapshots on every call, never cached.
func (c *Cart) Snapshot() (Snapshot, error) {
	if err := c.Validate(); err != nil {
		return Snapshot{}, err
	}

	subtotal := kernel.ZeroMoney()
	totalQuantity := 0
	lines := make([]LineSnapshot, 0, len(c.lines))
	for _, line := range c.lines {
		lineTotal, err := line.Total()
		if err != nil {
			return Snapshot{}, err
		}
		subtotal, err = subtotal.Add(lineTotal)
		if err != nil {
			return Snapshot{}, err
		}
		totalQuantity += line.Quantity()

		lines = append(lines, LineSnapshot{
			LineID:       line.ID(),
			ItemID:       line.ItemID(),
			StoreID:      line.StoreID(),
			Name:         line.Name(),
			UnitPrice:    line.UnitPrice(),
			Quantity:     line.Quantity(),
			Choices:      line.Customization().Choices(),
			Removed:      line.Customization().Removed(),
			Instructions: line.Customization().Instructions(),
		})
	}

	return Snapshot{
		Lines:         lines,
		TotalQuantity: totalQuantity,
		Subtotal:      subtotal,
	}, nil
}

func (c *Cart) indexOf(lineID kernel.UUID) int {
	for i, line := range c.lines {
		if line.ID().IsEqual(lineID) {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(idx int) {
	c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
}

// Snapshot is the immutable read view of a cart.
type Snapshot struct {
	Lines         []LineSnapshot
	TotalQuantity int
	Subtotal      kernel.Money
}

// LineSnapshot is the immutable read view of one cart line.
type LineSnapshot struct {
	LineID       kernel.UUID
	ItemID       kernel.UUID
	StoreID      kernel.UUID
	Name         string
	UnitPrice    kernel.Money
	Quantity     int
	Choices      []kernel.UUID
	Removed      []kernel.UUID
	Instructions string
}
