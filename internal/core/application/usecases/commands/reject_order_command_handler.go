package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/keymutex"
)

// RejectOrderCommandHandler moves an order from PLACED to REJECTED.
type RejectOrderCommandHandler struct {
	transitioner orderTransitioner
}

// NewRejectOrderCommandHandler creates a handler for order rejection.
func NewRejectOrderCommandHandler(
	uowFactory OrderUoWFactory,
	locks *keymutex.KeyMutex,
	notifier ports.NotificationDispatcher,
) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		transitioner: orderTransitioner{uowFactory: uowFactory, locks: locks, notifier: notifier},
	}
}

// Handle applies the reject transition under the order lock.
func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor, err := cmd.actor()
	if err != nil {
		return err
	}

	return h.transitioner.apply(ctx, cmd.OrderID(), func(aggregate *order.Order, now time.Time) error {
		return aggregate.Reject(actor, cmd.Reason(), now)
	})
}
