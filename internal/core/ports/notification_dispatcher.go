package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// NotificationEvent describes an order event worth telling someone about.
type NotificationEvent struct {
	OrderID    kernel.UUID
	StoreID    kernel.UUID
	CustomerID kernel.UUID
	Status     order.Status
}

// NotificationDispatcher is the fire-and-forget hook invoked after state
// transitions. Dispatch must never block the calling transition beyond a
// bounded enqueue and must never propagate a delivery failure back to it;
// implementations log and drop on failure.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, event NotificationEvent)
}
