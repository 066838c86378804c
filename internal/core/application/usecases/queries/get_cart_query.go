// Package queries contains the read side of the fulfillment core. Query
// handlers bypass the aggregates where a projection is enough: cart reads go
// through the session store, order reads go straight to the database.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves the current cart snapshot for a session.
type GetCartQuery struct {
	sessionID string

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for a session's cart.
func NewGetCartQuery(sessionID string) (GetCartQuery, error) {
	if sessionID == "" {
		return GetCartQuery{}, errs.NewValueIsRequiredError("sessionID")
	}

	return GetCartQuery{
		sessionID: sessionID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// SessionID returns the session whose cart is requested.
func (q GetCartQuery) SessionID() string { return q.sessionID }

// GetCartQueryResponse is the cart snapshot handed to the transport layer.
// An unknown session yields an empty cart, not an error.
type GetCartQueryResponse struct {
	StoreID       *kernel.UUID
	Lines         []CartLineResponse
	TotalQuantity int
	Subtotal      kernel.Money
}

// CartLineResponse is one cart line in the snapshot.
type CartLineResponse struct {
	LineID       kernel.UUID
	ItemID       kernel.UUID
	Name         string
	UnitPrice    kernel.Money
	Quantity     int
	Choices      []kernel.UUID
	Removed      []kernel.UUID
	Instructions string
}
