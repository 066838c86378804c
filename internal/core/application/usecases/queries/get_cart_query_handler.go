package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/ports"
)

// GetCartQueryHandler reads a session's cart through the cart store. The
// snapshot is taken under the session lock, so totals and lines are always
// mutually consistent.
type GetCartQueryHandler struct {
	cartStore ports.CartStore
}

// NewGetCartQueryHandler creates a handler for cart reads.
func NewGetCartQueryHandler(cartStore ports.CartStore) GetCartQueryHandler {
	return GetCartQueryHandler{cartStore: cartStore}
}

// Handle returns the cart snapshot for the session. Unknown sessions get an
// empty cart.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	var response GetCartQueryResponse
	err := h.cartStore.View(ctx, query.SessionID(), func(c *cart.Cart) error {
		snapshot, snapErr := c.Snapshot()
		if snapErr != nil {
			return snapErr
		}

		lines := make([]CartLineResponse, 0, len(snapshot.Lines))
		for _, line := range snapshot.Lines {
			lines = append(lines, CartLineResponse{
				LineID:       line.LineID,
				ItemID:       line.ItemID,
				Name:         line.Name,
				UnitPrice:    line.UnitPrice,
				Quantity:     line.Quantity,
				Choices:      line.Choices,
				Removed:      line.Removed,
				Instructions: line.Instructions,
			})
		}

		response = GetCartQueryResponse{
			Lines:         lines,
			TotalQuantity: snapshot.TotalQuantity,
			Subtotal:      snapshot.Subtotal,
		}
		if storeID, ok := c.StoreID(); ok {
			response.StoreID = &storeID
		}
		return nil
	})
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	return response, nil
}
