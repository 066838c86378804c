package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetDeliveryQuoteQueryIsNotConstructed = errors.New(
	"GetDeliveryQuoteQuery must be created via NewGetDeliveryQuoteQuery constructor",
)

// GetDeliveryQuoteQuery asks for an up-front delivery quote before checkout:
// what would delivery to this address from this store cost for this subtotal.
type GetDeliveryQuoteQuery struct {
	storeID     kernel.UUID
	destination kernel.GeoPoint
	subtotal    kernel.Money

	guard guard.ConstructorGuard
}

// NewGetDeliveryQuoteQuery creates a quote query.
func NewGetDeliveryQuoteQuery(
	storeID kernel.UUID,
	destination kernel.GeoPoint,
	subtotal kernel.Money,
) (GetDeliveryQuoteQuery, error) {
	if err := errors.Join(
		storeID.Validate(),
		destination.Validate(),
		subtotal.Validate(),
	); err != nil {
		return GetDeliveryQuoteQuery{}, err
	}

	return GetDeliveryQuoteQuery{
		storeID:     storeID,
		destination: destination,
		subtotal:    subtotal,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQuoteQueryIsNotConstructed)
}

// StoreID returns the store the quote originates from.
func (q GetDeliveryQuoteQuery) StoreID() kernel.UUID { return q.storeID }

// Destination returns the delivery destination.
func (q GetDeliveryQuoteQuery) Destination() kernel.GeoPoint { return q.destination }

// Subtotal returns the cart subtotal the quote is priced against.
func (q GetDeliveryQuoteQuery) Subtotal() kernel.Money { return q.subtotal }

// GetDeliveryQuoteQueryResponse carries the priced quote.
type GetDeliveryQuoteQueryResponse struct {
	DistanceKm  float64
	DurationMin int
	Fee         kernel.Money
}
