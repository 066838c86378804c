package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full detail view of one order.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// GetOrderQueryResponse is the detail projection of one order. Totals are
// recomputed from the frozen lines; the driver section is present only once
// a delivery run has started.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	StoreID         kernel.UUID
	Fulfillment     kernel.FulfillmentType
	Status          order.Status
	Subtotal        kernel.Money
	DeliveryFee     kernel.Money
	Total           kernel.Money
	CustomerNotes   string
	RejectionReason string
	PlacedAt        time.Time
	Lines           []OrderLineResponse
	Driver          *DriverStateResponse
}

// OrderLineResponse is one frozen order line in the detail view.
type OrderLineResponse struct {
	MenuItemID   kernel.UUID
	Name         string
	UnitPrice    kernel.Money
	Quantity     int
	Instructions string
}

// DriverStateResponse is the live delivery state of an order in flight.
type DriverStateResponse struct {
	Position            *kernel.GeoPoint
	EstimateDistanceKm  *float64
	EstimateDurationMin *int
}
