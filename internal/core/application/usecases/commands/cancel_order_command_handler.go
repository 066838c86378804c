package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/keymutex"
)

// CancelOrderCommandHandler moves an order from PLACED or ACCEPTED to
// CANCELLED. A cancel racing an accept resolves to whichever acquires
// the order lock first; the loser fails with an InvalidTransitionError.
type CancelOrderCommandHandler struct {
	transitioner orderTransitioner
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	locks *keymutex.KeyMutex,
	notifier ports.NotificationDispatcher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		transitioner: orderTransitioner{uowFactory: uowFactory, locks: locks, notifier: notifier},
	}
}

// Handle applies the cancel transition under the order lock.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor, err := cmd.actor()
	if err != nil {
		return err
	}

	return h.transitioner.apply(ctx, cmd.OrderID(), func(aggregate *order.Order, now time.Time) error {
		return aggregate.Cancel(actor, now)
	})
}
