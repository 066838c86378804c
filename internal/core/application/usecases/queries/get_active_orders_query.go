package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery lists a store's open orders: everything not yet
// completed, rejected, or cancelled. This is the store owner's work queue.
type GetActiveOrdersQuery struct {
	storeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for a store's open orders.
func NewGetActiveOrdersQuery(storeID kernel.UUID) (GetActiveOrdersQuery, error) {
	if err := storeID.Validate(); err != nil {
		return GetActiveOrdersQuery{}, err
	}

	return GetActiveOrdersQuery{
		storeID: storeID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// StoreID returns the store whose queue is requested.
func (q GetActiveOrdersQuery) StoreID() kernel.UUID { return q.storeID }

// GetActiveOrdersQueryResponse is one open order in the store queue,
// ordered by placement time.
type GetActiveOrdersQueryResponse struct {
	ID          kernel.UUID
	CustomerID  kernel.UUID
	Fulfillment kernel.FulfillmentType
	Status      order.Status
	Total       kernel.Money
	PlacedAt    time.Time
}
