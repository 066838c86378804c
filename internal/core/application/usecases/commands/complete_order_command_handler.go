package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/keymutex"
)

// CompleteOrderCommandHandler moves an order into the terminal COMPLETED
// status.
type CompleteOrderCommandHandler struct {
	transitioner orderTransitioner
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	locks *keymutex.KeyMutex,
	notifier ports.NotificationDispatcher,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		transitioner: orderTransitioner{uowFactory: uowFactory, locks: locks, notifier: notifier},
	}
}

// Handle applies the complete transition under the order lock.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor, err := cmd.actor()
	if err != nil {
		return err
	}

	return h.transitioner.apply(ctx, cmd.OrderID(), func(aggregate *order.Order, now time.Time) error {
		return aggregate.Complete(actor, now)
	})
}
